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

// Package builder assembles a network System from the datasets of a run.
//
// Build runs a fixed sequence of steps against one System:
//
//  1. regions and reserve regions from the hierarchy
//  2. generators from prepared capacity, with resource classes for rolled-up
//     variable generators
//  3. transmission interfaces and lines
//  4. loads
//  5. reserves
//  6. emission rates, attached to the generators created in step 2
//  7. hydro energy budgets
//
// Each step resolves rows with the rules of a resolve.RuleSet. A row that
// fails to resolve is skipped and counted in the step report. Missing
// hierarchy or capacity data stops the build, other datasets are optional.
// Generators can be split into units afterwards with WithBreakGenerators.
//
// Usage:
//
//	st, err := store.New(runDir)
//	if err != nil {
//	    return err
//	}
//	if err := st.Load(ctx); err != nil {
//	    return err
//	}
//	b, err := builder.New(cfg, settings, st, builder.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	res, err := b.Build(ctx)
package builder
