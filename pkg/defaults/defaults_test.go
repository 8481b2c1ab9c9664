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

package defaults

import (
	"fmt"
	"testing"
	"time"
)

func TestDisaggregationDefaults(t *testing.T) {
	if CapacityThreshold <= 0 {
		t.Errorf("CapacityThreshold (%v) must be positive", CapacityThreshold)
	}
	if BreakAttribute == "" || UnitCapacityField == "" {
		t.Error("break attribute and unit capacity field must be set")
	}
	if got := fmt.Sprintf(CloneSuffixFormat, "coal", 1); got != "coal_01" {
		t.Errorf("CloneSuffixFormat produced %q, want coal_01", got)
	}
	if got := fmt.Sprintf(CloneSuffixFormat, "coal", 12); got != "coal_12" {
		t.Errorf("CloneSuffixFormat produced %q, want coal_12", got)
	}
}

func TestJoinKeyCandidatesDegrade(t *testing.T) {
	for i := 1; i < len(JoinKeyCandidates); i++ {
		prev, cur := JoinKeyCandidates[i-1], JoinKeyCandidates[i]
		if len(cur) >= len(prev) {
			t.Errorf("candidate %d (%v) is not narrower than %v", i, cur, prev)
		}
		for j, k := range cur {
			if prev[j] != k {
				t.Errorf("candidate %d is not a prefix of candidate %d", i, i-1)
			}
		}
	}
	last := JoinKeyCandidates[len(JoinKeyCandidates)-1]
	if len(last) != 1 || last[0] != "technology" {
		t.Errorf("last candidate = %v, want [technology]", last)
	}
}

func TestCategoryDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"VariableCategories", VariableCategories, []string{"wind", "solar"}},
		{"FuelConsumingCategories", FuelConsumingCategories, []string{"thermal"}},
		{"ExcludedTechnologies", ExcludedTechnologies, []string{"can-imports", "electrolyzer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
			for i := range tt.want {
				if tt.got[i] != tt.want[i] {
					t.Errorf("%s[%d] = %q, want %q", tt.name, i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if StoreLoadTimeout >= CLIBuildTimeout {
		t.Errorf("StoreLoadTimeout (%v) should be less than CLIBuildTimeout (%v)",
			StoreLoadTimeout, CLIBuildTimeout)
	}
	if CLIBuildTimeout > 30*time.Minute {
		t.Errorf("CLIBuildTimeout (%v) is unreasonably long", CLIBuildTimeout)
	}
}
