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

package builder

import (
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/resolve"
)

// Rule names. Generator rules are named after the generator class they serve;
// a class without its own rule uses RuleGenerator.
const (
	RuleRegion           = "region"
	RuleReserveRegion    = "reserve_region"
	RuleGenerator        = "generator"
	RuleInterface        = "interface"
	RuleTransmissionLine = "transmission_line"
	RuleDemand           = "demand"
	RuleReserve          = "reserve"
	RuleEmission         = "emission"
)

// Field names shared by the rules and the component assembly.
const (
	fieldName        = "name"
	fieldRegion      = "region"
	fieldFrom        = "from"
	fieldTo          = "to"
	fieldTechnology  = "technology"
	fieldCapacity    = "capacity"
	fieldVintage     = "vintage"
	fieldCategory    = "category"
	fieldFuelType    = "fuel_type"
	fieldInterface   = "interface"
	fieldFlow        = "flow"
	fieldLineType    = "line_type"
	fieldDescription = "description"
)

// DefaultRules returns the rules the builder uses unless WithRules replaces
// them.
func DefaultRules() *resolve.RuleSet {
	return resolve.NewRuleSet(
		resolve.Rule{Name: RuleRegion, Target: network.KindRegion, Fields: []resolve.Field{
			resolve.Bind(fieldName, resolve.RegionName),
			resolve.Bind(fieldDescription, resolve.RegionDescription),
			resolve.Bind("transmission_region", resolve.String("transmission_region")),
			resolve.Bind("interconnect", resolve.String("interconnect")),
			resolve.Bind("state", resolve.String("state")),
			resolve.Bind("country", resolve.String("country")),
		}},
		resolve.Rule{Name: RuleReserveRegion, Target: network.KindReserveRegion, Fields: []resolve.Field{
			resolve.Bind(fieldName, resolve.RequiredString("transmission_region")),
		}},
		generatorRule(RuleGenerator),
		generatorRule(string(network.ClassStorage),
			resolve.Bind("storage_duration", resolve.StorageDuration),
			resolve.Bind("round_trip_efficiency", resolve.RoundTripEfficiency),
		),
		generatorRule(string(network.ClassHydro),
			resolve.Bind("dispatchable", resolve.IsDispatchable),
		),
		resolve.Rule{Name: RuleInterface, Target: network.KindInterface, Fields: []resolve.Field{
			resolve.Bind(fieldName, resolve.TransmissionInterfaceName),
			resolve.Bind(fieldFrom, resolve.LookupFromRegion),
			resolve.Bind(fieldTo, resolve.LookupToRegion),
		}},
		resolve.Rule{Name: RuleTransmissionLine, Target: network.KindTransmissionLine, Fields: []resolve.Field{
			resolve.Bind(fieldName, resolve.TransmissionLineName),
			resolve.Bind(fieldInterface, resolve.LookupTransmissionInterface),
			resolve.Bind(fieldFrom, resolve.LookupFromRegion),
			resolve.Bind(fieldTo, resolve.LookupToRegion),
			resolve.Bind(fieldLineType, resolve.RequiredString("trtype")),
			resolve.Bind(fieldFlow, resolve.TransmissionFlow),
			resolve.Bind("losses", resolve.OptionalFloat("losses")),
		}},
		resolve.Rule{Name: RuleDemand, Target: network.KindDemand, Fields: []resolve.Field{
			resolve.Bind(fieldName, resolve.LoadName),
			resolve.Bind(fieldRegion, resolve.LookupRegion),
			resolve.Bind("max_active_power", resolve.Float("max_active_power", "value")),
		}},
		resolve.Rule{Name: RuleReserve, Target: network.KindReserve, Fields: []resolve.Field{
			resolve.Bind(fieldName, resolve.ReserveName),
			resolve.Bind(fieldRegion, resolve.LookupReserveRegion),
			resolve.Bind("reserve_type", resolve.ReserveType),
			resolve.Bind("direction", resolve.ReserveDirection),
			resolve.Bind("time_frame", resolve.OptionalFloat("time_frame")),
			resolve.Bind("duration", resolve.OptionalFloat("duration")),
		}},
		resolve.Rule{Name: RuleEmission, Target: network.KindEmission, Fields: []resolve.Field{
			resolve.Bind(fieldTechnology, resolve.RequiredString("technology")),
			resolve.Bind(fieldRegion, resolve.RegionName),
			resolve.Bind(fieldVintage, resolve.String("vintage")),
			resolve.Bind("type", resolve.EmissionType),
			resolve.Bind("source", resolve.EmissionSource),
			resolve.Bind("rate", resolve.Float("rate", "value")),
		}},
	)
}

func generatorRule(name string, extra ...resolve.Field) resolve.Rule {
	fields := []resolve.Field{
		resolve.Bind(fieldName, resolve.GeneratorName),
		resolve.Bind(fieldRegion, resolve.LookupRegion),
		resolve.Bind(fieldTechnology, resolve.RequiredString("technology")),
		resolve.Bind(fieldCapacity, resolve.Float("capacity")),
		resolve.Bind(fieldVintage, resolve.String("vintage")),
		resolve.Bind(fieldCategory, resolve.String("category")),
		resolve.Bind(fieldFuelType, optionalFuelType),
		resolve.Bind("heat_rate", resolve.OptionalFloat("heat_rate")),
		resolve.Bind("forced_outage_rate", resolve.OptionalFloat("forced_outage_rate")),
		resolve.Bind("planned_outage_rate", resolve.OptionalFloat("planned_outage_rate")),
		resolve.Bind("fuel_price", resolve.OptionalFloat("fuel_price")),
		resolve.Bind("vom_cost", resolve.OptionalFloat("vom_cost")),
		resolve.Bind("electricity_efficiency", resolve.OptionalFloat("electricity_efficiency")),
	}
	return resolve.Rule{Name: name, Target: network.KindGenerator, Fields: append(fields, extra...)}
}

// optionalFuelType resolves fuel_type when the row carries one.
func optionalFuelType(ctx *resolve.Context, row resolve.Row) (string, error) {
	s, err := resolve.String(fieldFuelType)(ctx, row)
	if err != nil || s == "" {
		return "", err
	}
	return resolve.FuelType(ctx, row)
}
