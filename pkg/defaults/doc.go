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

// Package defaults provides centralized constants for gridsynth.
//
// Values used by more than one package live here so that the dataset
// pipeline, the builder and the disaggregation pass agree on sentinels,
// column names and thresholds.
//
// # Groups
//
//   - Disaggregation: capacity threshold, break attribute, unit capacity field
//   - Dataset preparation: sentinel values and well-known column names
//   - Category groups: variable, fuel-consuming and excluded technologies
//   - Timeouts: run-folder loading and CLI commands
//
// # Usage
//
//	import "github.com/NVIDIA/gridsynth/pkg/defaults"
//
//	report, err := disaggregate.BreakGenerators(sys, ref,
//	    disaggregate.WithThreshold(defaults.CapacityThreshold))
//
// Slice values are shared; callers that need to modify them copy first.
package defaults
