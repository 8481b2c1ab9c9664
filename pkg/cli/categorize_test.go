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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/config"
	"github.com/NVIDIA/gridsynth/pkg/header"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

func TestCategorize(t *testing.T) {
	settings, err := config.DefaultSettings()
	require.NoError(t, err)
	types, err := settings.TypeMap()
	require.NoError(t, err)

	doc, err := categorize([]string{"gas-cc", "upv_3", "mystery"}, settings.TechCategories, types)
	require.NoError(t, err)
	assert.Equal(t, header.KindCategorization, doc.Kind)

	want := []TechnologyMatch{
		{Technology: "gas-cc", Base: "gas-cc", Categories: []string{"thermal"}, Class: "thermal"},
		{Technology: "upv_3", Base: "upv", Categories: []string{"solar"}, Class: "variable"},
		{Technology: "mystery", Base: "mystery", Categories: []string{}},
	}
	if diff := cmp.Diff(want, doc.Technologies); diff != "" {
		t.Errorf("categorize() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategorizeEmptyTechnology(t *testing.T) {
	settings, err := config.DefaultSettings()
	require.NoError(t, err)
	_, err = categorize([]string{""}, settings.TechCategories, nil)
	assert.Error(t, err)
}

func TestCategorizeCmd(t *testing.T) {
	dir := t.TempDir()
	cats := filepath.Join(dir, "cats.yaml")
	require.NoError(t, os.WriteFile(cats, []byte("renewable: [wind-ons, upv]\nsolar: [upv]\n"), 0o600))
	out := filepath.Join(dir, "out.json")

	err := newRootCmd().Run(context.Background(), []string{
		name, "--log-level", "error", "categorize",
		"--categories", cats, "--format", "json", "--output", out, "upv_2", "gas-cc",
	})
	require.NoError(t, err)

	doc, err := serializer.FromFile[Categorization](out)
	require.NoError(t, err)
	require.Len(t, doc.Technologies, 2)
	assert.Equal(t, []string{"renewable", "solar"}, doc.Technologies[0].Categories)
	assert.Equal(t, "variable", doc.Technologies[0].Class)
	assert.Empty(t, doc.Technologies[1].Categories)
}

func TestCategorizeCmdRequiresTechnology(t *testing.T) {
	err := newRootCmd().Run(context.Background(), []string{name, "--log-level", "error", "categorize"})
	assert.Error(t, err)
}
