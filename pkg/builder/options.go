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
	"log/slog"

	"github.com/NVIDIA/gridsynth/pkg/disaggregate"
	"github.com/NVIDIA/gridsynth/pkg/resolve"
)

// Option is a functional option for configuring Builder instances.
type Option func(*Builder)

// WithLogger sets the logger passed to every step.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithVersion sets the version recorded in reports.
func WithVersion(v string) Option {
	return func(b *Builder) { b.version = v }
}

// WithRules replaces the field resolution rules.
func WithRules(rs *resolve.RuleSet) Option {
	return func(b *Builder) { b.rules = rs }
}

// WithBreakGenerators splits large generators into units after the build.
// A nil reference uses the reference units from the settings.
func WithBreakGenerators(ref disaggregate.ReferenceSource) Option {
	return func(b *Builder) {
		b.breakGens = true
		b.reference = ref
	}
}
