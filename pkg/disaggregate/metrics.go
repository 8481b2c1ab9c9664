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

package disaggregate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generatorsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsynth_disaggregate_generators_total",
			Help: "Generators considered for splitting, by outcome",
		},
		[]string{"status"}, // split, unchanged, skipped, failed
	)

	unitsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridsynth_disaggregate_units_created_total",
			Help: "Total number of unit generators created by splitting",
		},
	)

	capacityDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridsynth_disaggregate_capacity_dropped_mw_total",
			Help: "Remainder capacity dropped below the threshold, in MW",
		},
	)
)
