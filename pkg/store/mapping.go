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

package store

import (
	_ "embed"
	"os"
	"slices"
	"sync"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

//go:embed data/files.yaml
var filesYAML []byte

var (
	mappingOnce   sync.Once
	cachedMapping Mapping
	cachedErr     error
)

// FileSpec describes one dataset file of a run folder.
type FileSpec struct {
	Name     string            `json:"name" yaml:"name"`
	Path     string            `json:"path" yaml:"path"`
	Columns  map[string]string `json:"columns,omitempty" yaml:"columns,omitempty"`
	Strings  []string          `json:"strings,omitempty" yaml:"strings,omitempty"`
	Optional bool              `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// CSVOptions returns the decoding options for the file.
func (f FileSpec) CSVOptions() table.CSVOptions {
	return table.CSVOptions{Rename: f.Columns, Strings: f.Strings}
}

// Mapping is an ordered list of dataset files.
type Mapping []FileSpec

// Get returns the named file.
func (m Mapping) Get(name string) (FileSpec, bool) {
	i := slices.IndexFunc(m, func(f FileSpec) bool { return f.Name == name })
	if i < 0 {
		return FileSpec{}, false
	}
	return m[i], true
}

// Names returns the dataset names in order.
func (m Mapping) Names() []string {
	out := make([]string, len(m))
	for i, f := range m {
		out[i] = f.Name
	}
	return out
}

// WithOverrides returns a copy of m with the paths of the named datasets
// replaced. Names not in m are ignored.
func (m Mapping) WithOverrides(paths map[string]string) Mapping {
	out := slices.Clone(m)
	for i := range out {
		if p, ok := paths[out[i].Name]; ok {
			out[i].Path = p
		}
	}
	return out
}

// DefaultMapping returns the built-in dataset mapping.
func DefaultMapping() (Mapping, error) {
	mappingOnce.Do(func() {
		m, err := serializer.FromBytes[Mapping](serializer.FormatYAML, filesYAML)
		if err != nil {
			cachedErr = errors.Wrap(errors.ErrCodeInternal, "invalid embedded file mapping", err)
			return
		}
		cachedMapping = *m
	})
	if cachedErr != nil {
		return nil, cachedErr
	}
	return slices.Clone(cachedMapping), nil
}

// LoadMapping reads a mapping from a JSON or YAML file. A missing file yields
// an empty mapping.
func LoadMapping(path string) (Mapping, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Mapping{}, nil
	}
	m, err := serializer.FromFile[Mapping](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid file mapping", err,
			map[string]any{"path": path})
	}
	for i, f := range *m {
		if f.Name == "" || f.Path == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "file mapping entry needs name and path",
				map[string]any{"path": path, "index": i})
		}
	}
	return *m, nil
}
