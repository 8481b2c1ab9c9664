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

package store

// Dataset names of the built-in mapping.
const (
	DatasetCapacity               = "capacity"
	DatasetHierarchy              = "hierarchy"
	DatasetFuelMap                = "fuel_map"
	DatasetStorageDuration        = "storage_duration"
	DatasetConsumeCharacteristics = "consume_characteristics"
	DatasetHeatRate               = "heat_rate"
	DatasetForcedOutage           = "forced_outage"
	DatasetPlannedOutage          = "planned_outage"
	DatasetVOMCost                = "vom_cost"
	DatasetTransmission           = "transmission"
	DatasetLoad                   = "load"
	DatasetReserves               = "reserves"
	DatasetEmissionRates          = "emission_rates"
	DatasetHydroCF                = "hydro_cf"
)

// ExtraGeneratorDatasets are joined onto capacity after the named optional
// datasets, in this order.
var ExtraGeneratorDatasets = []string{
	DatasetHeatRate,
	DatasetForcedOutage,
	DatasetPlannedOutage,
	DatasetVOMCost,
}
