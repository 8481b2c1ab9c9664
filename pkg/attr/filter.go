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

package attr

import "strings"

// FilterOut returns a copy of e without keys matching any pattern.
// Patterns support '*' wildcards: "prefix*", "*suffix", "*part*", "a*b".
func (e Ext) FilterOut(patterns ...string) Ext {
	var out Ext
	for k, v := range e.data {
		if !matchesAny(k, patterns) {
			out.Set(k, v)
		}
	}
	return out
}

// FilterIn returns a copy of e holding only keys matching some pattern.
func (e Ext) FilterIn(patterns ...string) Ext {
	var out Ext
	for k, v := range e.data {
		if matchesAny(k, patterns) {
			out.Set(k, v)
		}
	}
	return out
}

func matchesAny(key string, patterns []string) bool {
	for _, p := range patterns {
		if MatchesPattern(key, p) {
			return true
		}
	}
	return false
}

// MatchesPattern reports whether key matches a wildcard pattern.
func MatchesPattern(key, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	segments := strings.Split(pattern, "*")
	pos := 0
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		// anchored at start
		if i == 0 {
			if !strings.HasPrefix(key, segment) {
				return false
			}
			pos = len(segment)
			continue
		}
		// anchored at end
		if i == len(segments)-1 {
			return len(key)-pos >= len(segment) && strings.HasSuffix(key[pos:], segment)
		}
		idx := strings.Index(key[pos:], segment)
		if idx == -1 {
			return false
		}
		pos += idx + len(segment)
	}
	return true
}
