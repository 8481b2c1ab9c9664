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

// Package table provides the small immutable table the dataset pipeline works
// on.
//
// Cells are nil (null), string, int64, float64 or bool. Every operation
// returns a new Table and leaves its inputs untouched:
//
//	capacity, err := table.ReadCSVFile("cap.csv", table.CSVOptions{
//	    Rename:  map[string]string{"i": "technology", "r": "region"},
//	    Strings: []string{"vintage"},
//	})
//	joined, err := capacity.LeftJoin(fuels, []string{"technology"})
//	thermal := joined.Filter(func(r table.Row) bool {
//	    return r.String("category") == "thermal"
//	})
//
// GroupBy keeps groups in order of first appearance; Sum and FirstNonNull
// are the provided aggregations. Pivot spreads a parameter column into one
// column per distinct value.
package table
