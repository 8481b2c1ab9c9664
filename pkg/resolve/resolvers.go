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

package resolve

import (
	"slices"
	"strings"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
)

// Resolver produces one typed field value from a row.
type Resolver[T any] func(ctx *Context, row Row) (T, error)

// Row keys consulted by the resolvers, in preference order.
var (
	regionKeys       = []string{"region", "*r", "r"}
	regionIDKeys     = []string{"region_id"}
	fromRegionKeys   = []string{"from_region"}
	toRegionKeys     = []string{"to_region"}
	technologyKeys   = []string{"technology"}
	vintageKeys      = []string{"vintage"}
	reserveTypeKeys  = []string{"reserve_type"}
	directionKeys    = []string{"direction"}
	fuelTypeKeys     = []string{"fuel_type"}
	emissionTypeKeys = []string{"emission_type"}
	emissionSrcKeys  = []string{"emission_source"}
	lineTypeKeys     = []string{"trtype"}
	flowKeys         = []string{"capacity", "value"}
	storageKeys      = []string{"storage_duration"}
	efficiencyKeys   = []string{"round_trip_efficiency"}
)

const (
	defaultStorageHrs    = 1.0
	defaultEfficiency    = 1.0
	interfaceSeparator   = "||"
	regionDescriptionFmt = "ReEDS region "
)

// GeneratorName builds technology_vintage_region, omitting vintage when absent.
func GeneratorName(_ *Context, row Row) (string, error) {
	tech, err := requireString(row, technologyKeys...)
	if err != nil {
		return "", err
	}
	region, err := requireString(row, regionKeys...)
	if err != nil {
		return "", err
	}
	vintage, err := optionalString(row, vintageKeys...)
	if err != nil {
		return "", err
	}
	parts := []string{tech}
	if vintage != "" {
		parts = append(parts, vintage)
	}
	return strings.Join(append(parts, region), "_"), nil
}

// RegionName returns the first of region, *r or r.
func RegionName(_ *Context, row Row) (string, error) {
	return requireString(row, regionKeys...)
}

// RegionDescription describes a region by region_id, else by its name.
func RegionDescription(_ *Context, row Row) (string, error) {
	id, err := requireString(row, append(slices.Clone(regionIDKeys), regionKeys...)...)
	if err != nil {
		return "", err
	}
	return regionDescriptionFmt + id, nil
}

// LookupRegion returns the system region named by the row.
func LookupRegion(ctx *Context, row Row) (*network.Region, error) {
	return lookupRegionBy(ctx, row, regionKeys)
}

// LookupFromRegion returns the region named by from_region.
func LookupFromRegion(ctx *Context, row Row) (*network.Region, error) {
	return lookupRegionBy(ctx, row, fromRegionKeys)
}

// LookupToRegion returns the region named by to_region.
func LookupToRegion(ctx *Context, row Row) (*network.Region, error) {
	return lookupRegionBy(ctx, row, toRegionKeys)
}

func lookupRegionBy(ctx *Context, row Row, keys []string) (*network.Region, error) {
	name, err := requireString(row, keys...)
	if err != nil {
		return nil, err
	}
	return lookup[*network.Region](ctx, name)
}

// LookupReserveRegion returns the system reserve region named by the row.
func LookupReserveRegion(ctx *Context, row Row) (*network.ReserveRegion, error) {
	name, err := requireString(row, regionKeys...)
	if err != nil {
		return nil, err
	}
	return lookup[*network.ReserveRegion](ctx, name)
}

func lookup[T network.Component](ctx *Context, name string) (T, error) {
	var zero T
	if ctx == nil || ctx.System == nil {
		return zero, errors.New(errors.ErrCodeInternal, "no system to look components up in")
	}
	c, ok := network.Lookup[T](ctx.System, name)
	if !ok {
		return zero, errors.NewWithContext(errors.ErrCodeNoMatch, "component not found",
			map[string]any{"kind": string(zero.Kind()), "name": name})
	}
	return c, nil
}

// LoadName returns <region>_load.
func LoadName(ctx *Context, row Row) (string, error) {
	region, err := RegionName(ctx, row)
	if err != nil {
		return "", err
	}
	return region + "_load", nil
}

// ReserveName returns <region>_<reserve_type> with the reserve type as given.
func ReserveName(ctx *Context, row Row) (string, error) {
	region, err := RegionName(ctx, row)
	if err != nil {
		return "", err
	}
	rt, err := requireString(row, reserveTypeKeys...)
	if err != nil {
		return "", err
	}
	return region + "_" + rt, nil
}

// ReserveType parses reserve_type.
func ReserveType(_ *Context, row Row) (network.ReserveType, error) {
	s, err := requireString(row, reserveTypeKeys...)
	if err != nil {
		return "", err
	}
	return network.ParseReserveType(s)
}

// ReserveDirection parses direction.
func ReserveDirection(_ *Context, row Row) (network.ReserveDirection, error) {
	s, err := requireString(row, directionKeys...)
	if err != nil {
		return "", err
	}
	return network.ParseReserveDirection(s)
}

// StorageDuration returns storage_duration in hours, 1.0 when absent.
func StorageDuration(_ *Context, row Row) (float64, error) {
	return floatOrDefault(row, storageKeys, defaultStorageHrs)
}

// RoundTripEfficiency returns round_trip_efficiency, 1.0 when absent.
func RoundTripEfficiency(_ *Context, row Row) (float64, error) {
	return floatOrDefault(row, efficiencyKeys, defaultEfficiency)
}

func floatOrDefault(row Row, keys []string, def float64) (float64, error) {
	v, key, err := firstField(row, keys...)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid numeric field", err,
			map[string]any{"field": key})
	}
	return f, nil
}

// FuelType matches fuel_type against the configured fuel names ignoring case
// and returns the configured spelling.
func FuelType(ctx *Context, row Row) (string, error) {
	s, err := requireString(row, fuelTypeKeys...)
	if err != nil {
		return "", err
	}
	fuels := classify.NewListCategory("fuel_types", defaults.FuelTypes...)
	if ctx != nil && len(ctx.fuels.List) > 0 {
		fuels = ctx.fuels
	}
	if name, ok := fuels.Canonical(s); ok {
		return name, nil
	}
	return "", errors.NewWithContext(errors.ErrCodeInvalidInput, "unknown fuel type "+s,
		map[string]any{"value": s, "expected": fuels.List})
}

// EmissionType parses emission_type.
func EmissionType(_ *Context, row Row) (network.EmissionType, error) {
	s, err := requireString(row, emissionTypeKeys...)
	if err != nil {
		return "", err
	}
	return network.ParseEmissionType(s)
}

// EmissionSource parses emission_source; an absent or null source is
// combustion.
func EmissionSource(_ *Context, row Row) (network.EmissionSource, error) {
	s, err := optionalString(row, emissionSrcKeys...)
	if err != nil {
		return "", err
	}
	if s == "" {
		return network.SourceCombustion, nil
	}
	return network.ParseEmissionSource(s)
}

// IsDispatchable reports whether the technology is a dispatchable hydro
// technology. A row without technology is not dispatchable.
func IsDispatchable(ctx *Context, row Row) (bool, error) {
	tech, err := optionalString(row, technologyKeys...)
	if err != nil || tech == "" {
		return false, err
	}
	if ctx == nil {
		return false, nil
	}
	return classify.TechMatchesCategory(tech, defaults.HydroDispatchableCategory, ctx.Categories), nil
}

// TransmissionInterfaceName returns the two region names sorted and joined
// with "||", so both directions share one interface.
func TransmissionInterfaceName(_ *Context, row Row) (string, error) {
	from, err := requireString(row, fromRegionKeys...)
	if err != nil {
		return "", err
	}
	to, err := requireString(row, toRegionKeys...)
	if err != nil {
		return "", err
	}
	pair := []string{from, to}
	slices.Sort(pair)
	return strings.Join(pair, interfaceSeparator), nil
}

// TransmissionLineName returns from_to_trtype.
func TransmissionLineName(_ *Context, row Row) (string, error) {
	from, err := requireString(row, fromRegionKeys...)
	if err != nil {
		return "", err
	}
	to, err := requireString(row, toRegionKeys...)
	if err != nil {
		return "", err
	}
	lt, err := requireString(row, lineTypeKeys...)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{from, to, lt}, "_"), nil
}

// LookupTransmissionInterface returns the interface between the row's regions.
func LookupTransmissionInterface(ctx *Context, row Row) (*network.Interface, error) {
	name, err := TransmissionInterfaceName(ctx, row)
	if err != nil {
		return nil, err
	}
	return lookup[*network.Interface](ctx, name)
}

// TransmissionFlow returns a symmetric limit from capacity, or value when
// capacity is absent.
func TransmissionFlow(_ *Context, row Row) (network.FlowLimits, error) {
	v, key, err := firstField(row, flowKeys...)
	if err != nil {
		return network.FlowLimits{}, err
	}
	if v == nil {
		return network.FlowLimits{}, errors.NewWithContext(errors.ErrCodeNoMatch, "row is missing a required field",
			map[string]any{"fields": flowKeys})
	}
	f, err := toFloat(v)
	if err != nil {
		return network.FlowLimits{}, errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid flow limit", err,
			map[string]any{"field": key})
	}
	return network.FlowLimits{FromTo: f, ToFrom: f}, nil
}
