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
	"log/slog"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/logging"
)

type settings struct {
	threshold      float64
	breakAttribute string
	unitField      string
	skip           sets.Set[string]
	logger         *slog.Logger
	version        string
}

// Option configures BreakGenerators.
type Option func(*settings)

// WithCapacityThreshold sets the minimum remainder, in MW, kept as its own unit.
func WithCapacityThreshold(mw float64) Option {
	return func(s *settings) { s.threshold = mw }
}

// WithSkipCategories leaves generators whose break attribute is one of
// categories untouched.
func WithSkipCategories(categories ...string) Option {
	return func(s *settings) { s.skip.Insert(categories...) }
}

// WithBreakAttribute sets the generator field used to look reference records up.
func WithBreakAttribute(name string) Option {
	return func(s *settings) { s.breakAttribute = name }
}

// WithUnitCapacityField sets the reference record field holding the unit size.
func WithUnitCapacityField(name string) Option {
	return func(s *settings) { s.unitField = name }
}

// WithLogger sets the sink for skips, drops and duplicate reference entries.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithVersion records the tool version in the report header.
func WithVersion(v string) Option {
	return func(s *settings) { s.version = v }
}

func newSettings(opts []Option) *settings {
	s := &settings{
		threshold:      defaults.CapacityThreshold,
		breakAttribute: defaults.BreakAttribute,
		unitField:      defaults.UnitCapacityField,
		skip:           sets.New[string](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDefault(s.logger)
	return s
}
