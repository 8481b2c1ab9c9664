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

package classify

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

// Category is one named technology grouping.
//
// Object form ({prefixes, exact}) matches case-sensitively: exact membership
// first, then prefix. List form matches case-insensitively against the list.
type Category struct {
	Name     string
	Prefixes []string
	Exact    []string

	// List holds list-form entries; IsList distinguishes an empty list from
	// an object-form category.
	List   []string
	IsList bool

	folded []string
}

// NewPrefixCategory builds an object-form category.
func NewPrefixCategory(name string, prefixes, exact []string) Category {
	return Category{Name: name, Prefixes: prefixes, Exact: exact}
}

// NewListCategory builds a list-form category.
func NewListCategory(name string, entries ...string) Category {
	c := Category{Name: name, List: entries, IsList: true}
	c.fold()
	return c
}

func (c *Category) fold() {
	c.folded = nil
	c.folded = c.foldedList()
}

func (c *Category) foldedList() []string {
	if c.folded != nil || len(c.List) == 0 {
		return c.folded
	}
	f := cases.Fold()
	out := make([]string, len(c.List))
	for i, e := range c.List {
		out[i] = f.String(e)
	}
	return out
}

// Matches reports whether tech belongs to the category.
func (c *Category) Matches(tech string) bool {
	if c.IsList {
		ft := cases.Fold().String(tech)
		return slices.Contains(c.foldedList(), ft)
	}
	if slices.Contains(c.Exact, tech) {
		return true
	}
	for _, p := range c.Prefixes {
		if len(tech) >= len(p) && tech[:len(p)] == p {
			return true
		}
	}
	return false
}

// Canonical returns the list entry tech matched, keeping the list's casing.
// Object-form categories return tech unchanged.
func (c *Category) Canonical(tech string) (string, bool) {
	if !c.IsList {
		return tech, c.Matches(tech)
	}
	ft := cases.Fold().String(tech)
	if i := slices.Index(c.foldedList(), ft); i >= 0 {
		return c.List[i], true
	}
	return "", false
}

// Categories is an ordered category mapping. Iteration follows declaration
// order in the source document.
type Categories struct {
	items []Category
	index map[string]int
}

// NewCategories builds a mapping from categories in the given order. A later
// category with a repeated name replaces the earlier one in place.
func NewCategories(items ...Category) Categories {
	var cs Categories
	for _, c := range items {
		cs.Put(c)
	}
	return cs
}

// Put appends c, or replaces the category of the same name in place.
func (cs *Categories) Put(c Category) {
	if c.IsList && c.folded == nil {
		c.fold()
	}
	if cs.index == nil {
		cs.index = make(map[string]int)
	}
	if i, ok := cs.index[c.Name]; ok {
		cs.items[i] = c
		return
	}
	cs.index[c.Name] = len(cs.items)
	cs.items = append(cs.items, c)
}

// Get returns the named category.
func (cs Categories) Get(name string) (*Category, bool) {
	i, ok := cs.index[name]
	if !ok {
		return nil, false
	}
	return &cs.items[i], true
}

// Names returns category names in mapping order.
func (cs Categories) Names() []string {
	names := make([]string, len(cs.items))
	for i, c := range cs.items {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of categories.
func (cs Categories) Len() int { return len(cs.items) }

// All returns the categories in mapping order.
func (cs Categories) All() []Category { return slices.Clone(cs.items) }

// UnmarshalYAML decodes a mapping of category name to either a list of
// technologies or an object with prefixes and exact lists.
func (cs *Categories) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseNode(node)
	if err != nil {
		return err
	}
	*cs = parsed
	return nil
}

// MarshalYAML encodes the mapping preserving order.
func (cs Categories) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range cs.items {
		var v yaml.Node
		var body any
		if c.IsList {
			body = c.List
		} else {
			body = map[string][]string{"prefixes": c.Prefixes, "exact": c.Exact}
		}
		if err := v.Encode(body); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Name}, &v)
	}
	return root, nil
}

// ParseCategories parses YAML or JSON bytes into an ordered mapping.
func ParseCategories(data []byte) (Categories, error) {
	node, err := serializer.ParseNode(data)
	if err != nil {
		return Categories{}, errors.Wrap(errors.ErrCodeInvalidInput, "invalid category document", err)
	}
	return parseNode(node)
}

// LoadCategories reads a YAML or JSON category file.
func LoadCategories(path string) (Categories, error) {
	node, err := serializer.ReadNode(path)
	if err != nil {
		return Categories{}, errors.WrapWithContext(errors.ErrCodeInputAbsent,
			"failed to read category file", err, map[string]any{"path": path})
	}
	return parseNode(node)
}

func parseNode(node *yaml.Node) (Categories, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return Categories{}, errors.Newf(errors.ErrCodeInvalidInput,
			"category document must be a mapping (line %d)", node.Line)
	}

	var cs Categories
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		val := node.Content[i+1]

		switch val.Kind {
		case yaml.SequenceNode:
			var list []string
			if err := val.Decode(&list); err != nil {
				return Categories{}, categoryErr(name, val, err)
			}
			cs.Put(NewListCategory(name, list...))
		case yaml.MappingNode:
			var obj struct {
				Prefixes []string `yaml:"prefixes"`
				Exact    []string `yaml:"exact"`
			}
			if err := val.Decode(&obj); err != nil {
				return Categories{}, categoryErr(name, val, err)
			}
			cs.Put(NewPrefixCategory(name, obj.Prefixes, obj.Exact))
		default:
			return Categories{}, categoryErr(name, val,
				fmt.Errorf("expected a list or an object with prefixes/exact"))
		}
	}
	return cs, nil
}

func categoryErr(name string, n *yaml.Node, err error) error {
	return errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid category definition", err,
		map[string]any{"category": name, "line": n.Line})
}
