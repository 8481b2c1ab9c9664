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
	"github.com/NVIDIA/gridsynth/pkg/disaggregate"
	"github.com/NVIDIA/gridsynth/pkg/header"
)

// uncategorized keys generator capacity without a category.
const uncategorized = "uncategorized"

// Summary is the NetworkSummary document written after a build.
type Summary struct {
	header.Header `json:",inline" yaml:",inline"`

	System             string             `json:"system" yaml:"system"`
	ModelVersion       string             `json:"modelVersion,omitempty" yaml:"modelVersion,omitempty"`
	Components         map[string]int     `json:"components" yaml:"components"`
	TotalCapacity      float64            `json:"totalCapacity" yaml:"totalCapacity"`
	CapacityByCategory map[string]float64 `json:"capacityByCategory" yaml:"capacityByCategory"`
	Steps              []StepReport       `json:"steps,omitempty" yaml:"steps,omitempty"`
	Disaggregation     *BreakSummary      `json:"disaggregation,omitempty" yaml:"disaggregation,omitempty"`

	// Extensions holds selected generator extension attributes keyed by generator name.
	Extensions map[string]map[string]any `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// BreakSummary counts generator outcomes of the disaggregation pass.
type BreakSummary struct {
	Split           int     `json:"split" yaml:"split"`
	Unchanged       int     `json:"unchanged" yaml:"unchanged"`
	Skipped         int     `json:"skipped" yaml:"skipped"`
	Failed          int     `json:"failed" yaml:"failed"`
	CapacityDropped float64 `json:"capacityDropped" yaml:"capacityDropped"`
}

// SummaryOption configures Summarize.
type SummaryOption func(*summaryOptions)

type summaryOptions struct {
	extInclude []string
	extExclude []string
}

// WithExtensions reports generator extension attributes whose keys match
// one of the include patterns and none of the exclude patterns.
// Patterns use attr.MatchesPattern wildcards. No include patterns means
// no extensions are reported.
func WithExtensions(include, exclude []string) SummaryOption {
	return func(o *summaryOptions) {
		o.extInclude = include
		o.extExclude = exclude
	}
}

// Summarize describes a build result.
func Summarize(res *Result, version string, opts ...SummaryOption) *Summary {
	var o summaryOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Summary{
		Components:         make(map[string]int),
		CapacityByCategory: make(map[string]float64),
	}
	s.Init(header.KindNetworkSummary, header.APIVersion, version)
	if res == nil || res.System == nil {
		return s
	}

	s.System = res.System.Name
	s.ModelVersion = res.ModelVersion
	s.Steps = res.Steps
	for kind, n := range res.System.Counts() {
		s.Components[kind.String()] = n
	}
	for _, g := range res.System.Generators() {
		cat := g.Category
		if cat == "" {
			cat = uncategorized
		}
		s.CapacityByCategory[cat] += g.Capacity
		s.TotalCapacity += g.Capacity

		if len(o.extInclude) == 0 {
			continue
		}
		ext := g.Ext.FilterIn(o.extInclude...).FilterOut(o.extExclude...)
		if ext.Len() == 0 {
			continue
		}
		if s.Extensions == nil {
			s.Extensions = make(map[string]map[string]any)
		}
		s.Extensions[g.Name] = ext.Map()
	}
	if rep := res.Disaggregation; rep != nil {
		s.Disaggregation = &BreakSummary{
			Split:           rep.Count(disaggregate.StatusSplit),
			Unchanged:       rep.Count(disaggregate.StatusUnchanged),
			Skipped:         rep.Count(disaggregate.StatusSkipped),
			Failed:          rep.Count(disaggregate.StatusFailed),
			CapacityDropped: rep.CapacityDropped,
		}
	}
	return s
}
