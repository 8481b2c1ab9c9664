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

package dataset

import (
	"log/slog"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/logging"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

// OptionalData holds the per-technology datasets joined onto capacity.
// Nil tables are skipped.
type OptionalData struct {
	FuelMap                *table.Table
	StorageDuration        *table.Table
	ConsumeCharacteristics *table.Table

	// Extra datasets are joined after the named ones, in order.
	Extra []NamedTable
}

// NamedTable is an optional dataset with a name used in logs.
type NamedTable struct {
	Name  string
	Table *table.Table
}

type settings struct {
	logger        *slog.Logger
	fuelConsuming sets.Set[string]
	joinKeys      [][]string
}

// Option configures the pipeline.
type Option func(*settings)

// WithLogger sets the sink for skipped joins and dropped rows.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithFuelConsumingCategories overrides the categories that default to the
// OTHER fuel type.
func WithFuelConsumingCategories(categories ...string) Option {
	return func(s *settings) { s.fuelConsuming = sets.New(categories...) }
}

// WithJoinKeys overrides the join key candidates, most specific first.
func WithJoinKeys(candidates ...[]string) Option {
	return func(s *settings) { s.joinKeys = candidates }
}

func newSettings(opts []Option) *settings {
	s := &settings{
		fuelConsuming: sets.New(defaults.FuelConsumingCategories...),
		joinKeys:      defaults.JoinKeyCandidates,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDefault(s.logger)
	return s
}
