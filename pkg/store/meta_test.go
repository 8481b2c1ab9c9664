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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/table"
	"github.com/NVIDIA/gridsynth/pkg/version"
)

func TestModelVersion(t *testing.T) {
	dir := t.TempDir()
	writeRunFile(t, dir, MetaFile, "computer,repo,branch,version,commit\nhpc,ReEDS-2.0,main,v2024.2.0,abc123\n")

	s, err := New(dir)
	require.NoError(t, err)
	got, err := s.ModelVersion()
	require.NoError(t, err)
	assert.Equal(t, version.NewVersion(2024, 2, 0), got)
}

func TestModelVersionErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"missing file", "", errors.ErrCodeInputAbsent},
		{"header only", "a,b,c,d,e\n", errors.ErrCodeInvalidInput},
		{"wrong field count", "a,b,c,d\nx,y,z,2024\n", errors.ErrCodeInvalidInput},
		{"bad version", "a,b,c,d,e\nx,y,z,latest,w\n", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != "" {
				writeRunFile(t, dir, MetaFile, tt.content)
			}
			s, err := New(dir)
			require.NoError(t, err)
			_, err = s.ModelVersion()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestModelVersionWithoutFolder(t *testing.T) {
	s := FromTables(map[string]*table.Table{})
	_, err := s.ModelVersion()
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputAbsent))
}
