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

// Package resolve maps input rows to typed component fields.
//
// A resolver has the shape func(*Context, Row) (T, error). Rows are maps,
// table rows or structs (see AsRow); a row whose accessor fails or panics
// yields an error, never a crash. Enumerated fields are case-normalized and
// report the unrecognized value; defaulted numeric fields return 1.0 when
// absent.
//
// Rules group resolvers per component kind:
//
//	rules := resolve.NewRuleSet(resolve.Rule{
//	    Name:   "reeds-reserve",
//	    Target: network.KindReserve,
//	    Fields: []resolve.Field{
//	        resolve.Bind("name", resolve.ReserveName),
//	        resolve.Bind("reserve_type", resolve.ReserveType),
//	    },
//	})
//	rule, err := rules.Select(network.KindReserve, "")
//	results := resolve.Apply(rule, ctx, rows)
package resolve
