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

package config

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// mergeNode merges the mapping over into base in place. Sequences are
// concatenated without duplicate scalars; other values are replaced unless both
// sides are mappings. New keys keep the order they have in over.
func mergeNode(base, over *yaml.Node) {
	for i := 0; i+1 < len(over.Content); i += 2 {
		key, val := over.Content[i], over.Content[i+1]
		idx := mappingIndex(base, key.Value)
		if idx < 0 {
			base.Content = append(base.Content, cloneNode(key), cloneNode(val))
			continue
		}
		cur := base.Content[idx+1]
		switch {
		case cur.Kind == yaml.MappingNode && val.Kind == yaml.MappingNode:
			mergeNode(cur, val)
		case cur.Kind == yaml.SequenceNode && val.Kind == yaml.SequenceNode:
			cur.Content = mergeSequence(cur.Content, val.Content)
		default:
			base.Content[idx+1] = cloneNode(val)
		}
	}
}

func mergeSequence(base, over []*yaml.Node) []*yaml.Node {
	seen := make(map[string]bool, len(base)+len(over))
	out := make([]*yaml.Node, 0, len(base)+len(over))
	for _, n := range slices.Concat(base, over) {
		if n.Kind == yaml.ScalarNode {
			if seen[n.Value] {
				continue
			}
			seen[n.Value] = true
		}
		out = append(out, cloneNode(n))
	}
	return out
}

func mappingIndex(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = cloneNode(child)
		}
	}
	return &c
}
