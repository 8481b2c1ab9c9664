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

// Package store reads the CSV datasets of a run folder into tables.
//
// A Mapping names each dataset, its path relative to the folder, column
// renames and whether the file may be absent. The built-in mapping is
// embedded; a replacement can be read with LoadMapping and individual paths
// replaced with WithFileOverrides.
//
// Load reads all files concurrently and returns once every file is read or
// the first required file fails:
//
//	s, err := store.New(runDir, store.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if err := s.Load(ctx); err != nil {
//	    return err
//	}
//	capacity, _ := s.Table(store.DatasetCapacity)
package store
