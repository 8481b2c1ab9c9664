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

package dataset

// Column names produced or consumed by the pipeline.
const (
	ColTechnology            = "technology"
	ColRegion                = "region"
	ColCapacity              = "capacity"
	ColYear                  = "year"
	ColVintage               = "vintage"
	ColCategory              = "category"
	ColCategories            = "categories"
	ColTechClass             = "tech_class"
	ColFuelType              = "fuel_type"
	ColStorageDuration       = "storage_duration"
	ColElectricityEfficiency = "electricity_efficiency"
	ColParameter             = "parameter"
	ColValue                 = "value"
	ColIsAggregated          = "is_aggregated"
)

// AttributeColumns are the generator attribute columns every aggregated
// variable row carries, null when the input lacks them.
var AttributeColumns = []string{
	ColYear,
	ColVintage,
	ColCategories,
	ColTechClass,
	ColFuelType,
	"heat_rate",
	"forced_outage_rate",
	"planned_outage_rate",
	"fuel_price",
	"vom_cost",
	ColStorageDuration,
	"round_trip_efficiency",
	ColElectricityEfficiency,
	ColIsAggregated,
}
