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
	"strings"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

// BaseTechnology returns the identifier that is actually classified. tech is
// used as-is when it matches any category; otherwise trailing "_<suffix>"
// segments (resource class, vintage) are removed one at a time until the
// remainder matches. When nothing matches, tech is returned unchanged.
func BaseTechnology(tech string, cats Categories) string {
	candidate := tech
	for {
		if matchesAny(candidate, cats) {
			return candidate
		}
		i := strings.LastIndexByte(candidate, '_')
		if i <= 0 {
			return tech
		}
		candidate = candidate[:i]
	}
}

func matchesAny(tech string, cats Categories) bool {
	for i := range cats.items {
		if cats.items[i].Matches(tech) {
			return true
		}
	}
	return false
}

// TechMatchesCategory reports whether tech belongs to the named category.
// An unknown category name is never an error; it simply does not match.
func TechMatchesCategory(tech, categoryName string, cats Categories) bool {
	c, ok := cats.Get(categoryName)
	if !ok {
		return false
	}
	return c.Matches(BaseTechnology(tech, cats))
}

// MatchCategories returns every category tech belongs to, in mapping order.
func MatchCategories(tech string, cats Categories) []string {
	if tech == "" {
		return nil
	}
	base := BaseTechnology(tech, cats)
	out := []string{}
	for i := range cats.items {
		if cats.items[i].Matches(base) {
			out = append(out, cats.items[i].Name)
		}
	}
	return out
}

// TechnologyCategories returns every category tech belongs to, in mapping
// order. A technology without any category yields an empty list; an empty
// technology identifier is an error.
func TechnologyCategories(tech string, cats Categories) ([]string, error) {
	if tech == "" {
		return nil, errors.New(errors.ErrCodeNotFound, "technology identifier is empty")
	}
	return MatchCategories(tech, cats), nil
}

// TechnologyCategory returns the first category tech belongs to.
func TechnologyCategory(tech string, cats Categories) (string, error) {
	matched, err := TechnologyCategories(tech, cats)
	if err != nil {
		return "", err
	}
	if len(matched) == 0 {
		return "", errors.NewWithContext(errors.ErrCodeNoMatch, "technology has no category",
			map[string]any{"technology": tech})
	}
	return matched[0], nil
}

// TypeMap maps category names to generator classes.
type TypeMap map[string]network.GeneratorClass

// ParseTypeMap validates raw category → type names.
func ParseTypeMap(raw map[string]string) (TypeMap, error) {
	tm := make(TypeMap, len(raw))
	for cat, name := range raw {
		class, err := network.ParseGeneratorClass(name)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid category type", err,
				map[string]any{"category": cat})
		}
		tm[cat] = class
	}
	return tm, nil
}

// LoadTypeMap reads a YAML or JSON category → type mapping.
func LoadTypeMap(path string) (TypeMap, error) {
	raw, err := serializer.FromFile[map[string]string](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInputAbsent, "failed to read category type file", err,
			map[string]any{"path": path})
	}
	return ParseTypeMap(*raw)
}

// GeneratorClass selects the generator class for tech: the class mapped to
// the first of its categories, in mapping order, that has an entry in types.
// When several matched categories are mapped, the earliest declared wins.
func GeneratorClass(tech string, cats Categories, types TypeMap) (network.GeneratorClass, error) {
	matched, err := TechnologyCategories(tech, cats)
	if err != nil {
		return "", err
	}
	for _, cat := range matched {
		if class, ok := types[cat]; ok {
			return class, nil
		}
	}
	return "", errors.NewWithContext(errors.ErrCodeTypeMismatch,
		"no generator type for technology "+tech,
		map[string]any{"technology": tech, "categories": matched})
}
