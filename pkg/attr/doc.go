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

// Package attr provides the typed side table (Ext) that network components
// use for attributes without a dedicated field.
//
// Values are restricted at compile time to scalars through the generic
// Scalar[T] wrapper and stored behind the Value interface:
//
//	var e attr.Ext
//	e.Set("tech_class", attr.Str("upv_3"))
//	e.SetAny("avg_capacity_MW", 40)
//	size, err := e.GetFloat64("avg_capacity_MW") // 40, integers widen
//
// Ext marshals to a flat JSON object or YAML mapping, and decodes from one.
// FilterIn and FilterOut select keys with '*' wildcard patterns.
package attr
