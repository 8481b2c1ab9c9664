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

package network

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// Kind identifies the type of a component. Names are unique per kind.
type Kind string

const (
	KindRegion           Kind = "Region"
	KindReserveRegion    Kind = "ReserveRegion"
	KindGenerator        Kind = "Generator"
	KindInterface        Kind = "Interface"
	KindTransmissionLine Kind = "TransmissionLine"
	KindReserve          Kind = "Reserve"
	KindDemand           Kind = "Demand"
	KindResourceClass    Kind = "ResourceClass"

	// KindEmission labels emission records. Emissions are supplemental
	// attributes, not components, so no System holds this kind.
	KindEmission Kind = "Emission"
)

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// GeneratorClass is the concrete generator type selected for a technology.
type GeneratorClass string

const (
	ClassThermal   GeneratorClass = "thermal"
	ClassVariable  GeneratorClass = "variable"
	ClassStorage   GeneratorClass = "storage"
	ClassHydro     GeneratorClass = "hydro"
	ClassConsuming GeneratorClass = "consuming"
	ClassGeneric   GeneratorClass = "generic"
)

// GeneratorClasses lists every supported generator class.
var GeneratorClasses = []GeneratorClass{
	ClassThermal, ClassVariable, ClassStorage, ClassHydro, ClassConsuming, ClassGeneric,
}

// ParseGeneratorClass accepts a class name ("thermal") or a model type name
// ("ReEDSThermalGenerator", "HydroGenerator", "ConsumingTechnology").
func ParseGeneratorClass(s string) (GeneratorClass, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.TrimPrefix(n, "reeds")
	for _, suffix := range []string{"generator", "technology", "unit"} {
		n = strings.TrimSuffix(n, suffix)
	}
	for _, c := range GeneratorClasses {
		if string(c) == n {
			return c, nil
		}
	}
	return "", errors.Newf(errors.ErrCodeInvalidInput,
		"unknown generator class %q, expected one of %v", s, GeneratorClasses)
}

// ReserveType enumerates operating reserve products.
type ReserveType string

const (
	ReserveSpinning    ReserveType = "SPINNING"
	ReserveFlexibility ReserveType = "FLEXIBILITY"
	ReserveRegulation  ReserveType = "REGULATION"
	ReserveCombo       ReserveType = "COMBO"
)

var reserveAliases = map[string]ReserveType{
	"spinning":    ReserveSpinning,
	"spin":        ReserveSpinning,
	"flexibility": ReserveFlexibility,
	"flex":        ReserveFlexibility,
	"regulation":  ReserveRegulation,
	"reg":         ReserveRegulation,
	"combo":       ReserveCombo,
}

// ParseReserveType normalizes case and accepts the short ReEDS aliases.
func ParseReserveType(s string) (ReserveType, error) {
	if t, ok := reserveAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", errors.Newf(errors.ErrCodeInvalidInput, "unknown reserve type %q", s)
}

// ReserveDirection is the direction a reserve product moves output.
type ReserveDirection string

const (
	DirectionUp   ReserveDirection = "UP"
	DirectionDown ReserveDirection = "DOWN"
)

// ParseReserveDirection normalizes case.
func ParseReserveDirection(s string) (ReserveDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidInput, "unknown reserve direction %q", s)
	}
}

// EmissionType enumerates emitted species.
type EmissionType string

const (
	EmissionCO2  EmissionType = "CO2"
	EmissionCO2E EmissionType = "CO2E"
	EmissionCH4  EmissionType = "CH4"
	EmissionN2O  EmissionType = "N2O"
	EmissionNOX  EmissionType = "NOX"
	EmissionSO2  EmissionType = "SO2"
)

// EmissionTypes lists every supported emission type.
var EmissionTypes = []EmissionType{
	EmissionCO2, EmissionCO2E, EmissionCH4, EmissionN2O, EmissionNOX, EmissionSO2,
}

// ParseEmissionType normalizes case.
func ParseEmissionType(s string) (EmissionType, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range EmissionTypes {
		if string(t) == n {
			return t, nil
		}
	}
	return "", errors.Newf(errors.ErrCodeInvalidInput,
		"unknown emission type %q, expected one of %v", s, EmissionTypes)
}

// EmissionSource is the life-cycle stage an emission rate refers to.
type EmissionSource string

const (
	SourceCombustion    EmissionSource = "COMBUSTION"
	SourcePrecombustion EmissionSource = "PRECOMBUSTION"
)

// ParseEmissionSource normalizes case.
func ParseEmissionSource(s string) (EmissionSource, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SourceCombustion):
		return SourceCombustion, nil
	case string(SourcePrecombustion), "PRE-COMBUSTION", "UPSTREAM":
		return SourcePrecombustion, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidInput, "unknown emission source %q", s)
	}
}

// FlowLimits holds a directional transfer limit pair in MW.
type FlowLimits struct {
	FromTo float64 `json:"from_to" yaml:"from_to"`
	ToFrom float64 `json:"to_from" yaml:"to_from"`
}

// String implements fmt.Stringer.
func (f FlowLimits) String() string {
	return fmt.Sprintf("%g/%g", f.FromTo, f.ToFrom)
}
