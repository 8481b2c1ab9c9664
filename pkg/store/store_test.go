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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/logging"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

func writeRunFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func testMapping() Mapping {
	return Mapping{
		{Name: DatasetCapacity, Path: "outputs/cap.csv",
			Columns: map[string]string{"i": "technology", "v": "vintage", "r": "region", "t": "year", "Value": "capacity"},
			Strings: []string{"vintage"}},
		{Name: DatasetFuelMap, Path: "inputs_case/fuel2tech.csv",
			Columns: map[string]string{"i": "technology", "f": "fuel_type"}, Optional: true},
		{Name: DatasetLoad, Path: "outputs/load_cat.csv", Optional: true},
	}
}

func TestDefaultMapping(t *testing.T) {
	m, err := DefaultMapping()
	require.NoError(t, err)

	capacity, ok := m.Get(DatasetCapacity)
	require.True(t, ok)
	assert.False(t, capacity.Optional)
	assert.Equal(t, "technology", capacity.Columns["i"])

	hierarchy, ok := m.Get(DatasetHierarchy)
	require.True(t, ok)
	assert.False(t, hierarchy.Optional)

	for _, name := range ExtraGeneratorDatasets {
		f, ok := m.Get(name)
		require.True(t, ok, name)
		assert.True(t, f.Optional, name)
	}

	_, ok = m.Get("nope")
	assert.False(t, ok)
}

func TestDefaultMappingIsolated(t *testing.T) {
	a, err := DefaultMapping()
	require.NoError(t, err)
	a[0].Path = "changed.csv"

	b, err := DefaultMapping()
	require.NoError(t, err)
	assert.NotEqual(t, "changed.csv", b[0].Path)
}

func TestMappingWithOverrides(t *testing.T) {
	m := Mapping{
		{Name: "data_file", Path: "*.csv"},
		{Name: "config_file", Path: "*.config", Optional: true},
	}
	got := m.WithOverrides(map[string]string{"data_file": "/custom/path/data.csv", "unknown": "x"})

	assert.Equal(t, "/custom/path/data.csv", got[0].Path)
	assert.Equal(t, "*.config", got[1].Path)
	assert.Equal(t, "*.csv", m[0].Path)
	assert.Equal(t, []string{"data_file", "config_file"}, got.Names())
}

func TestLoadMapping(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadMapping(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, m)

	writeRunFile(t, dir, "files.json", `[{"name": "data_file", "path": "a.csv"}, {"name": "b", "path": "b.csv", "optional": true}]`)
	m, err = LoadMapping(filepath.Join(dir, "files.json"))
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.True(t, m[1].Optional)

	writeRunFile(t, dir, "bad.json", "{not json")
	_, err = LoadMapping(filepath.Join(dir, "bad.json"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))

	writeRunFile(t, dir, "noname.yaml", "- path: a.csv\n")
	_, err = LoadMapping(filepath.Join(dir, "noname.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeRunFile(t, dir, "outputs/cap.csv", "i,v,r,t,Value\ngas-cc,1,p1,2030,100\nupv_1,new2030,p2,2035,50.5\n")
	writeRunFile(t, dir, "inputs_case/fuel2tech.csv", "i,f\ngas-cc,naturalgas\n")

	s, err := New(dir, WithMapping(testMapping()), WithLogger(logging.Discard()), WithConcurrency(2))
	require.NoError(t, err)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, []string{DatasetCapacity, DatasetFuelMap}, s.Names())

	capacity, ok := s.Table(DatasetCapacity)
	require.True(t, ok)
	assert.Equal(t, []string{"technology", "vintage", "region", "year", "capacity"}, capacity.Columns())
	assert.Equal(t, "1", capacity.Row(0).Get("vintage"))
	assert.Equal(t, table.KindString, capacity.ColumnKind("vintage"))

	if diff := cmp.Diff([]int{2030, 2035}, s.ModeledYears()); diff != "" {
		t.Errorf("ModeledYears() mismatch (-want +got):\n%s", diff)
	}

	_, ok = s.Table(DatasetLoad)
	assert.False(t, ok)
}

func TestStoreLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	writeRunFile(t, other, "capacity.csv", "i,r,Value\ncoal,p1,10\n")

	s, err := New(dir,
		WithMapping(testMapping()),
		WithFileOverrides(map[string]string{DatasetCapacity: filepath.Join(other, "capacity.csv")}),
		WithLogger(logging.Discard()))
	require.NoError(t, err)
	require.NoError(t, s.Load(context.Background()))

	capacity, ok := s.Table(DatasetCapacity)
	require.True(t, ok)
	assert.Equal(t, 1, capacity.Len())
	assert.Empty(t, s.ModeledYears())
}

func TestStoreLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		dir   func(t *testing.T) string
		code  errors.ErrorCode
		field string
	}{
		{
			name: "missing folder",
			dir:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "none") },
			code: errors.ErrCodeInputAbsent,
		},
		{
			name: "missing required file",
			dir:  func(t *testing.T) string { return t.TempDir() },
			code: errors.ErrCodeInputAbsent,
		},
		{
			name: "malformed csv",
			dir: func(t *testing.T) string {
				d := t.TempDir()
				writeRunFile(t, d, "outputs/cap.csv", "i,r,Value\n\"gas,p1,1\n")
				return d
			},
			code: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.dir(t), WithMapping(testMapping()), WithLogger(logging.Discard()))
			require.NoError(t, err)
			err = s.Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), err.Error())
		})
	}
}

func TestStoreLoadCanceled(t *testing.T) {
	dir := t.TempDir()
	writeRunFile(t, dir, "outputs/cap.csv", "i,r,Value\ncoal,p1,10\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := New(dir, WithMapping(testMapping()), WithLogger(logging.Discard()))
	require.NoError(t, err)
	assert.Error(t, s.Load(ctx))
}

func TestFromTables(t *testing.T) {
	capacity := table.Empty("technology", "region", "capacity")
	s := FromTables(map[string]*table.Table{DatasetCapacity: capacity, DatasetLoad: nil})

	got, ok := s.Table(DatasetCapacity)
	require.True(t, ok)
	assert.Same(t, capacity, got)
	assert.Equal(t, []string{DatasetCapacity}, s.Names())
}
