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
	_ "embed"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

//go:embed data/defaults.yaml
var defaultsYAML []byte

var (
	defaultsOnce sync.Once
	defaultsNode *yaml.Node
	defaultsErr  error
)

// Settings are the synthesis defaults after file and run overrides.
type Settings struct {
	ExcludedTechs           []string            `yaml:"excluded_techs"`
	VariableCategories      []string            `yaml:"variable_categories"`
	FuelTypes               []string            `yaml:"fuel_types"`
	FuelConsumingCategories []string            `yaml:"fuel_consuming_categories"`
	TechCategories          classify.Categories `yaml:"tech_categories"`
	CategoryTypes           map[string]string   `yaml:"category_types"`
	NonBreakCategories      []string            `yaml:"non_break_categories"`
	CapacityThreshold       float64             `yaml:"capacity_threshold"`
	WeatherYears            []int               `yaml:"weather_years"`

	// ReferenceUnits is a path, a list of records or a mapping of records
	// keyed by break attribute value.
	ReferenceUnits any `yaml:"reference_units,omitempty"`
}

// TypeMap parses CategoryTypes into generator classes.
func (s *Settings) TypeMap() (classify.TypeMap, error) {
	return classify.ParseTypeMap(s.CategoryTypes)
}

// builtinDefaults parses the embedded document once and returns a copy.
func builtinDefaults() (*yaml.Node, error) {
	defaultsOnce.Do(func() {
		node, err := serializer.ParseNode(defaultsYAML)
		if err != nil {
			defaultsErr = errors.Wrap(errors.ErrCodeInternal, "invalid embedded defaults", err)
			return
		}
		defaultsNode = node
	})
	if defaultsErr != nil {
		return nil, defaultsErr
	}
	return cloneNode(defaultsNode), nil
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() (*Settings, error) {
	return LoadSettings("", nil)
}

// LoadSettings merges the defaults file at path (if any) and overrides over
// the built-in defaults.
func LoadSettings(path string, overrides map[string]any) (*Settings, error) {
	root, err := builtinDefaults()
	if err != nil {
		return nil, err
	}
	if path != "" {
		file, fileErr := readDefaults(path)
		if fileErr != nil {
			return nil, fileErr
		}
		if file != nil {
			mergeNode(root, file)
		}
	}
	if err := mergeOverrides(root, overrides); err != nil {
		return nil, err
	}

	var s Settings
	if err := root.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "invalid settings", err)
	}
	return &s, nil
}

// LoadDefaults reads the defaults document at path and merges overrides into
// it. A missing file yields the overrides alone.
func LoadDefaults(path string, overrides map[string]any) (map[string]any, error) {
	root, err := readDefaults(path)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	if err := mergeOverrides(root, overrides); err != nil {
		return nil, err
	}

	out := map[string]any{}
	if err := root.Decode(&out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "invalid defaults document", err)
	}
	return out, nil
}

// readDefaults returns nil without error when path does not exist.
func readDefaults(path string) (*yaml.Node, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInputAbsent, "failed to stat defaults file", err,
			map[string]any{"path": path})
	}
	root, err := serializer.ReadNode(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "failed to parse defaults file", err,
			map[string]any{"path": path})
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "defaults file must contain a mapping",
			map[string]any{"path": path})
	}
	return root, nil
}

func mergeOverrides(root *yaml.Node, overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	var over yaml.Node
	if err := over.Encode(overrides); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, "invalid overrides", err)
	}
	mergeNode(root, &over)
	return nil
}
