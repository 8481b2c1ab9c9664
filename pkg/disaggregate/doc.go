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

// Package disaggregate splits large generators into unit-sized generators.
//
// A reference table gives the typical unit size (avg_capacity_MW) per value
// of a generator attribute, category by default. A generator of capacity K
// against unit size U becomes floor(K/U) units of U, plus one unit holding
// the remainder when it exceeds the capacity threshold (5 MW by default).
// Smaller remainders are dropped and reported. Generators with K/U below 2
// are left alone.
//
// Units are named after the parent with a two-digit suffix:
//
//	coal_p1 (110 MW, U=40)  ->  coal_p1_01 (40), coal_p1_02 (40), coal_p1_03 (30)
//
// Usage:
//
//	report, err := disaggregate.BreakGenerators(sys, "pcm_defaults.json",
//	    disaggregate.WithSkipCategories("hydro"),
//	    disaggregate.WithLogger(logger),
//	)
package disaggregate
