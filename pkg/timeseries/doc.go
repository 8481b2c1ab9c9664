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

// Package timeseries distributes monthly values over the hours of a year.
//
// Calendar is leap-year aware: February has 29 days in 2024 and the hourly
// profile of that year has 8784 values. HydroBudgets turns monthly hydro
// capacity factors into a daily energy budget per generator and solve year.
package timeseries
