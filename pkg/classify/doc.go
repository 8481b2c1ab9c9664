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

// Package classify maps technology identifiers to categories and categories
// to generator classes.
//
// A category is declared in one of two forms:
//
//	wind:
//	  prefixes: [wind-, wnd]
//	  exact: [wind-ons]
//	solar: [UPV, DUPV, CSP]
//
// The object form is case-sensitive (exact membership, then prefix). The list
// form compares with Unicode case folding, so "upv", "UPV" and "Upv" all match
// solar. A technology may belong to several categories; TechnologyCategories
// returns all of them in declaration order, which LoadCategories preserves
// for both YAML and JSON input.
//
// Resource-class and vintage suffixes ("upv_3", "gas-cc_v2") are trimmed by
// BaseTechnology when the full identifier does not classify.
//
// GeneratorClass picks the class mapped to the first matched category:
//
//	class, err := classify.GeneratorClass("gas-cc", cats, types)
//	if errors.IsCode(err, errors.ErrCodeTypeMismatch) {
//	    // skip the row
//	}
package classify
