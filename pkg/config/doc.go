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

// Package config loads run configuration and synthesis settings.
//
// Settings start from an embedded defaults document. A defaults file and
// run-level overrides are merged over it. Lists are concatenated without
// duplicates and scalars replaced. Mapping order is kept, so category
// declaration order survives every merge.
//
//	cfg, err := config.Load("run.yaml")
//	if err != nil {
//	    return err
//	}
//	settings, err := cfg.Settings()
package config
