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

// Package network holds the typed, in-memory network model that gridsynth
// builds from a capacity-expansion run.
//
// # Components
//
// Every component embeds Meta (name, UUID, attr.Ext side table) and reports
// its Kind. Names are unique per kind:
//
//   - Region, ReserveRegion
//   - Generator, with a GeneratorClass (thermal, variable, storage, hydro,
//     consuming, generic) and optional attributes as pointers
//   - Interface, TransmissionLine
//   - Reserve, Demand
//   - ResourceClass, one per variable resource class rolled into a generator
//
// # System
//
// System keeps components in insertion order and guards them with a
// sync.RWMutex:
//
//	sys := network.NewSystem("test_Pacific")
//	r := network.NewRegion("p1")
//	g := network.NewGenerator("gas-cc_p1", network.ClassThermal)
//	g.Region, g.Capacity = r, 250
//	if err := sys.Add(r, g); err != nil {
//	    return err
//	}
//
// Supplemental attributes (Emission) are addressed by UUID and may be shared
// by several components. Time series are attached per component. Removing a
// component detaches both.
package network
