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
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/version"
)

const (
	// MetaFile records the model build a run folder was produced with.
	MetaFile = "meta.csv"

	metaColumns      = 5
	metaVersionIndex = 3
)

// ModelVersion reads the model version from the run folder's meta file:
// the fourth field of the first record after the header.
func (s *Store) ModelVersion() (version.Version, error) {
	if s.dir == "" {
		return version.Version{}, errors.New(errors.ErrCodeInputAbsent, "store has no run folder")
	}
	path := filepath.Join(s.dir, MetaFile)
	f, err := os.Open(path)
	if err != nil {
		return version.Version{}, errors.WrapWithContext(errors.ErrCodeInputAbsent, "model version file not found", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return version.Version{}, errors.WrapWithContext(errors.ErrCodeInvalidInput, "failed to parse model version file", err,
			map[string]any{"path": path})
	}
	if len(records) < 2 || len(records[1]) != metaColumns {
		return version.Version{}, errors.NewWithContext(errors.ErrCodeInvalidInput, "meta file format changed",
			map[string]any{"path": path, "records": len(records)})
	}

	v, err := version.ParseVersion(strings.TrimSpace(records[1][metaVersionIndex]))
	if err != nil {
		return version.Version{}, errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid model version", err,
			map[string]any{"path": path})
	}
	return v, nil
}
