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

// Package version parses and compares the model version recorded in a
// capacity-expansion run folder.
//
// Versions have one to three numeric components with an optional "v"
// prefix. Comparisons honor the precision of both operands, so "2024"
// equals "2024.1.3":
//
//	v, err := version.ParseVersion("v2024.2.0")
//	if err == nil && v.AtLeast(version.MustParseVersion("2024")) {
//	    // recent model build
//	}
package version
