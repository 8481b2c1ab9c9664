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

// Package dataset prepares generator rows from a run's capacity table.
//
// PrepareGeneratorDataset performs, in order:
//
//  1. fail with "No capacity data" when capacity is missing or empty
//  2. left-join each optional dataset on the most specific key set both
//     tables share (technology, region, vintage, year degrading to technology);
//     a failing join is logged and skipped
//  3. assign the matched categories of every technology
//  4. drop excluded technologies
//  5. resolve fuel types, defaulting fuel-consuming categories to OTHER
//  6. keep existing storage durations, filling only nulls from the join
//  7. pivot electricity efficiency out of consumption characteristics
//  8. fail with "All generators were excluded" when nothing is left
//
// PrepareGeneratorInputs then separates weather-dependent (variable) rows and
// rolls them up per (technology, region, category) with
// AggregateVariableGenerators.
package dataset
