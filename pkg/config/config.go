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
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/header"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

// Years is a list of years that also decodes from a single scalar year.
type Years []int

// UnmarshalYAML accepts "2030" or "[2030, 2040]".
func (y *Years) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v int
		if err := node.Decode(&v); err != nil {
			return err
		}
		*y = Years{v}
		return nil
	}
	var vs []int
	if err := node.Decode(&vs); err != nil {
		return err
	}
	*y = vs
	return nil
}

// UnmarshalJSON accepts 2030 or [2030, 2040].
func (y *Years) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*y = Years{v}
		return nil
	}
	var vs []int
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	*y = vs
	return nil
}

// RunConfig describes one synthesis run.
type RunConfig struct {
	header.Header `json:",inline" yaml:",inline"`

	SolveYears   Years  `json:"solve_years" yaml:"solve_years"`
	WeatherYears Years  `json:"weather_years" yaml:"weather_years"`
	CaseName     string `json:"case_name,omitempty" yaml:"case_name,omitempty"`
	Scenario     string `json:"scenario,omitempty" yaml:"scenario,omitempty"`

	// DefaultsPath points to a defaults document merged over the built-in one.
	DefaultsPath string `json:"defaults_path,omitempty" yaml:"defaults_path,omitempty"`

	// FileMappingPath points to a file mapping that replaces the built-in one.
	FileMappingPath string `json:"file_mapping_path,omitempty" yaml:"file_mapping_path,omitempty"`

	// Overrides are merged into the defaults: lists are appended without
	// duplicates, scalars replaced, new keys added.
	Overrides map[string]any `json:"overrides,omitempty" yaml:"overrides,omitempty"`

	// FileOverrides replace the path of named datasets in the file mapping.
	FileOverrides map[string]string `json:"file_overrides,omitempty" yaml:"file_overrides,omitempty"`
}

// Option is a functional option for RunConfig.
type Option func(*RunConfig)

// WithSolveYears sets the solve years.
func WithSolveYears(years ...int) Option {
	return func(c *RunConfig) { c.SolveYears = years }
}

// WithWeatherYears sets the weather years.
func WithWeatherYears(years ...int) Option {
	return func(c *RunConfig) { c.WeatherYears = years }
}

// WithCaseName sets the case name.
func WithCaseName(name string) Option {
	return func(c *RunConfig) { c.CaseName = name }
}

// WithScenario sets the scenario.
func WithScenario(name string) Option {
	return func(c *RunConfig) { c.Scenario = name }
}

// WithDefaultsPath sets the defaults document merged over the built-in one.
func WithDefaultsPath(path string) Option {
	return func(c *RunConfig) { c.DefaultsPath = path }
}

// WithOverrides sets defaults overrides.
func WithOverrides(overrides map[string]any) Option {
	return func(c *RunConfig) { c.Overrides = overrides }
}

// WithFileOverrides replaces dataset paths by name.
func WithFileOverrides(files map[string]string) Option {
	return func(c *RunConfig) { c.FileOverrides = files }
}

// New returns a RunConfig with defaults applied.
func New(opts ...Option) *RunConfig {
	c := &RunConfig{}
	for _, opt := range opts {
		opt(c)
	}
	c.applyDefaults()
	return c
}

// Load reads a RunConfig from a JSON or YAML file.
func Load(path string) (*RunConfig, error) {
	c, err := serializer.FromFile[RunConfig](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInputAbsent, "failed to load run config", err,
			map[string]any{"path": path})
	}
	if !c.Check(header.KindRunConfig) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "unexpected document kind",
			map[string]any{"path": path, "kind": c.Kind.String(), "apiVersion": c.APIVersion})
	}
	c.applyDefaults()
	return c, nil
}

func (c *RunConfig) applyDefaults() {
	if c.Kind == "" {
		c.Kind = header.KindRunConfig
	}
	if c.APIVersion == "" {
		c.APIVersion = header.APIVersion
	}
	if c.Scenario == "" {
		c.Scenario = defaults.DefaultScenario
	}
}

// PrimarySolveYear returns the first solve year.
func (c *RunConfig) PrimarySolveYear() (int, bool) {
	if len(c.SolveYears) == 0 {
		return 0, false
	}
	return c.SolveYears[0], true
}

// PrimaryWeatherYear returns the first weather year.
func (c *RunConfig) PrimaryWeatherYear() (int, bool) {
	if len(c.WeatherYears) == 0 {
		return 0, false
	}
	return c.WeatherYears[0], true
}

// Validate checks the configured years against what the run provides.
// An empty available list skips that check.
func (c *RunConfig) Validate(modeledYears, weatherYears []int) error {
	if len(c.SolveYears) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "Solve year not specified")
	}
	if err := checkYears("Solve year", c.SolveYears, modeledYears); err != nil {
		return err
	}
	return checkYears("Weather year", c.WeatherYears, weatherYears)
}

func checkYears(label string, want, available []int) error {
	if len(available) == 0 {
		return nil
	}
	for _, y := range want {
		if !slices.Contains(available, y) {
			return errors.NewWithContext(errors.ErrCodeInvalidInput,
				fmt.Sprintf("%s %d is not available; valid years are %v", label, y, available),
				map[string]any{"year": y, "available": available})
		}
	}
	return nil
}

// Settings loads the synthesis settings for this run.
func (c *RunConfig) Settings() (*Settings, error) {
	return LoadSettings(c.DefaultsPath, c.Overrides)
}
