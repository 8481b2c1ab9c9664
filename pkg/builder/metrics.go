// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package builder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridsynth_build_duration_seconds",
			Help:    "Duration of a full system build.",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	buildStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridsynth_build_step_duration_seconds",
			Help:    "Duration of each build step.",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"step"},
	)

	buildRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsynth_build_rows_skipped_total",
			Help: "Input rows skipped because they could not be resolved.",
		},
		[]string{"step"},
	)

	buildComponentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsynth_build_components_total",
			Help: "Components created by build step.",
		},
		[]string{"step"},
	)
)
