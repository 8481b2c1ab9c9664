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

package defaults

import "time"

// Disaggregation defaults.
const (
	// CapacityThreshold is the minimum remainder, in MW, kept as its own unit
	// when a generator is split. Smaller remainders are dropped.
	CapacityThreshold = 5.0

	// BreakAttribute is the generator field whose value keys the reference table.
	BreakAttribute = "category"

	// UnitCapacityField is the reference record field holding the per-unit size.
	UnitCapacityField = "avg_capacity_MW"

	// CloneSuffixFormat numbers split units starting at 1.
	CloneSuffixFormat = "%s_%02d"
)

// Dataset preparation defaults.
const (
	// FuelTypeOther marks a fuel-consuming generator without a mapped fuel.
	FuelTypeOther = "OTHER"

	// MissingVintage keys emission rows that carry no vintage.
	MissingVintage = "__missing_vintage__"

	// AggregatedColumn flags rows rolled up by resource class.
	AggregatedColumn = "is_aggregated"

	// CategoryColumn holds the resolved technology category of a row.
	CategoryColumn = "category"

	// DefaultScenario is the run scenario when none is configured.
	DefaultScenario = "base"

	// SystemName names a system built without a case name.
	SystemName = "gridsynth"
)

// Category groups used when no configuration overrides them.
var (
	// VariableCategories are rolled up by resource class.
	VariableCategories = []string{"wind", "solar"}

	// FuelConsumingCategories receive a fuel type, falling back to FuelTypeOther.
	FuelConsumingCategories = []string{"thermal"}

	// FuelTypes are the recognized fuel names. Matching ignores case and
	// returns the entry as written here.
	FuelTypes = []string{
		"coal", "naturalgas", "uranium", "biomass", "oil", "hydrogen", "geothermal", "OTHER",
	}

	// WeatherYears are the weather years a run can select when the settings
	// do not list any.
	WeatherYears = []int{2007, 2008, 2009, 2010, 2011, 2012, 2013}

	// ExcludedTechnologies are removed before any synthesis.
	ExcludedTechnologies = []string{"can-imports", "electrolyzer"}

	// JoinKeyCandidates lists join keys for optional datasets, most specific first.
	JoinKeyCandidates = [][]string{
		{"technology", "region", "vintage", "year"},
		{"technology", "region", "vintage"},
		{"technology", "region"},
		{"technology"},
	}
)

// Run-folder and CLI timeouts.
const (
	// StoreLoadTimeout bounds loading every dataset of a run folder.
	StoreLoadTimeout = 2 * time.Minute

	// CLIBuildTimeout is the default timeout for the build command.
	CLIBuildTimeout = 5 * time.Minute
)

// Reference defaults.
const (
	// ReferenceKeyField is the record field used as key when reference units are
	// supplied as a list.
	ReferenceKeyField = "name"

	// HydroDispatchableCategory marks hydro generators that can be dispatched.
	HydroDispatchableCategory = "hydro_dispatchable"
)
