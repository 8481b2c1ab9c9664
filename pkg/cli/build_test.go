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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/builder"
	"github.com/NVIDIA/gridsynth/pkg/header"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

func writeRunFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func testRunFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeRunFile(t, dir, "outputs/cap.csv",
		"i,v,r,t,Value\ngas-cc,1,p1,2030,100\nupv_1,new,p1,2030,10\ngas-cc,1,p1,2035,120\n")
	writeRunFile(t, dir, "inputs_case/hierarchy.csv", "*r,transreg,st\np1,tr1,CO\n")
	writeRunFile(t, dir, "meta.csv", "computer,repo,branch,version,commit\nhpc,ReEDS,main,v2024.2.0,abc123\n")
	return dir
}

func TestBuildCmd(t *testing.T) {
	dir := testRunFolder(t)
	out := filepath.Join(t.TempDir(), "summary.json")

	err := newRootCmd().Run(context.Background(), []string{
		name, "--log-level", "error", "build",
		"--run", dir, "--year", "2030",
		"--format", "json", "--output", out,
	})
	require.NoError(t, err)

	sum, err := serializer.FromFile[builder.Summary](out)
	require.NoError(t, err)
	assert.Equal(t, header.KindNetworkSummary, sum.Kind)
	assert.Equal(t, "2024.2.0", sum.ModelVersion)
	assert.Equal(t, 2, sum.Components["Generator"])
	assert.Equal(t, 1, sum.Components["Region"])
	assert.InDelta(t, 110.0, sum.TotalCapacity, 1e-9)
	assert.InDelta(t, 100.0, sum.CapacityByCategory["thermal"], 1e-9)
	assert.InDelta(t, 10.0, sum.CapacityByCategory["solar"], 1e-9)
	assert.Nil(t, sum.Disaggregation)
}

func TestBuildCmdExtensions(t *testing.T) {
	dir := testRunFolder(t)
	out := filepath.Join(t.TempDir(), "summary.json")

	err := newRootCmd().Run(context.Background(), []string{
		name, "--log-level", "error", "build",
		"--run", dir, "--year", "2030", "--ext", "tech_*",
		"--format", "json", "--output", out,
	})
	require.NoError(t, err)

	sum, err := serializer.FromFile[builder.Summary](out)
	require.NoError(t, err)
	require.Contains(t, sum.Extensions, "upv_new_p1")
	assert.Equal(t, "upv_1", sum.Extensions["upv_new_p1"]["tech_class"])
	assert.NotContains(t, sum.Extensions, "gas-cc_1_p1")

	out = filepath.Join(t.TempDir(), "summary.json")
	err = newRootCmd().Run(context.Background(), []string{
		name, "--log-level", "error", "build",
		"--run", dir, "--year", "2030", "--ext", "tech_*", "--ext-exclude", "*_class",
		"--format", "json", "--output", out,
	})
	require.NoError(t, err)

	sum, err = serializer.FromFile[builder.Summary](out)
	require.NoError(t, err)
	assert.Empty(t, sum.Extensions)
}

func TestBuildCmdWithConfig(t *testing.T) {
	dir := testRunFolder(t)
	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("case_name: western\nsolve_years: 2035\n"), 0o600))
	out := filepath.Join(t.TempDir(), "summary.yaml")

	err := newRootCmd().Run(context.Background(), []string{
		name, "--log-level", "error", "build",
		"--run", dir, "--config", cfgPath, "--output", out,
	})
	require.NoError(t, err)

	sum, err := serializer.FromFile[builder.Summary](out)
	require.NoError(t, err)
	assert.Equal(t, "western", sum.System)
	assert.InDelta(t, 120.0, sum.TotalCapacity, 1e-9)
}

func TestBuildCmdErrors(t *testing.T) {
	dir := testRunFolder(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing run flag", []string{"build", "--year", "2030"}},
		{"missing run folder", []string{"build", "--run", filepath.Join(dir, "nope"), "--year", "2030"}},
		{"no solve year", []string{"build", "--run", dir}},
		{"unknown solve year", []string{"build", "--run", dir, "--year", "2040"}},
		{"bad format", []string{"build", "--run", dir, "--year", "2030", "--format", "xml"}},
		{"missing config", []string{"build", "--run", dir, "--config", filepath.Join(dir, "run.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{name, "--log-level", "error"}, tt.args...)
			err := newRootCmd().Run(context.Background(), args)
			assert.Error(t, err)
		})
	}
}
