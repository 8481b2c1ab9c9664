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
	"github.com/NVIDIA/gridsynth/pkg/header"
)

// Status is the outcome of one generator.
type Status string

const (
	// StatusSplit means the generator was replaced by unit generators.
	StatusSplit Status = "split"
	// StatusUnchanged means the generator fits in at most one unit.
	StatusUnchanged Status = "unchanged"
	// StatusSkipped means no usable reference applied.
	StatusSkipped Status = "skipped"
	// StatusFailed means splitting was attempted and rolled back.
	StatusFailed Status = "failed"
)

// Outcome records what happened to one generator.
type Outcome struct {
	Generator string   `json:"generator" yaml:"generator"`
	Key       string   `json:"key,omitempty" yaml:"key,omitempty"`
	Status    Status   `json:"status" yaml:"status"`
	Capacity  float64  `json:"capacity" yaml:"capacity"`
	Units     []string `json:"units,omitempty" yaml:"units,omitempty"`
	Dropped   float64  `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Reason    string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Err       error    `json:"-" yaml:"-"`
}

// Report summarizes one BreakGenerators pass.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Outcomes        []Outcome `json:"outcomes" yaml:"outcomes"`
	CapacityDropped float64   `json:"capacityDropped" yaml:"capacityDropped"`
}

func newReport(version string) *Report {
	r := &Report{}
	r.Init(header.KindDisaggregationRun, header.APIVersion, version)
	return r
}

// Count returns the number of outcomes with status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Outcome returns the outcome recorded for the named generator.
func (r *Report) Outcome(name string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Generator == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// Failed returns the outcomes that ended in an error.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}
