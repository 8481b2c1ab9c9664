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

// Package cli implements the gridsynth command-line interface.
//
// # Commands
//
// build - Build a network from a capacity-expansion run folder:
//
//	gridsynth build --run ./runs/ref --config run.yaml [--break-gens --reference units.json]
//
// Loads the run folder datasets, builds regions, generators, transmission,
// loads, reserves, emissions and hydro budgets for the primary solve year,
// and prints a NetworkSummary document.
//
// categorize - Show which categories technologies belong to:
//
//	gridsynth categorize --categories techs.yaml gas-cc upv_3 battery_4
//
// Without --categories the built-in technology categories are used.
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Commands producing documents accept --format json|yaml|table and
// --output FILE (default: stdout).
//
// # Exit Codes
//
//	0  Success
//	1  Any failure; the error is printed to stderr
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/gridsynth/pkg/cli.version=1.0.0'"
package cli
