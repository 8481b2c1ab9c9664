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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	sys := network.NewSystem("test_resolvers")
	p1, p2 := network.NewRegion("p1"), network.NewRegion("p2")
	require.NoError(t, sys.Add(p1, p2, network.NewReserveRegion("rsv")))
	require.NoError(t, sys.Add(network.NewInterface("p1||p2", p1, p2)))

	cats := classify.NewCategories(
		classify.NewPrefixCategory("hydro_dispatchable", []string{"hyd"}, nil),
	)
	return NewContext(sys, WithCategories(cats))
}

type nsRow struct {
	Technology string
	Region     string
	Vintage    *string
}

type faultyRow struct {
	Region string
}

func (faultyRow) Get(string) (any, bool) { panic("boom") }

type taggedRow struct {
	Star string `row:"*r"`
}

func TestGeneratorName(t *testing.T) {
	tests := []struct {
		name string
		row  any
		want string
		code errors.ErrorCode
	}{
		{"with vintage", map[string]any{"technology": "wind", "vintage": "v1", "region": "p1"}, "wind_v1_p1", ""},
		{"struct without vintage", nsRow{Technology: "gas", Region: "p1"}, "gas_p1", ""},
		{"null vintage", map[string]any{"technology": "gas", "vintage": nil, "region": "p1"}, "gas_p1", ""},
		{"numeric vintage", map[string]any{"technology": "gas", "vintage": int64(2020), "region": "p1"}, "gas_2020_p1", ""},
		{"missing region", map[string]any{"technology": "gas"}, "", errors.ErrCodeNoMatch},
		{"missing technology", map[string]any{"region": "p1"}, "", errors.ErrCodeNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := AsRow(tt.row)
			require.NoError(t, err)
			got, err := GeneratorName(nil, row)
			if tt.code != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.code))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionName(t *testing.T) {
	tests := []struct {
		name    string
		row     any
		want    string
		wantErr bool
	}{
		{"region key", map[string]any{"region": "p1"}, "p1", false},
		{"star r key", map[string]any{"*r": "west"}, "west", false},
		{"r key", map[string]any{"r": "east"}, "east", false},
		{"region wins", map[string]any{"region": "a", "*r": "b"}, "a", false},
		{"struct", nsRow{Region: "ns"}, "ns", false},
		{"tagged struct", taggedRow{Star: "tagged"}, "tagged", false},
		{"faulty getter falls back to fields", faultyRow{Region: "south"}, "south", false},
		{"missing", map[string]any{}, "", true},
		{"empty string", map[string]any{"region": ""}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := AsRow(tt.row)
			require.NoError(t, err)
			got, err := RegionName(nil, row)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionDescription(t *testing.T) {
	got, err := RegionDescription(nil, MapRow{"region_id": "abc", "region": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "ReEDS region abc", got)

	row, err := AsRow(&nsRow{Region: "foo"})
	require.NoError(t, err)
	got, err = RegionDescription(nil, row)
	require.NoError(t, err)
	assert.Equal(t, "ReEDS region foo", got)

	_, err = RegionDescription(nil, MapRow{})
	assert.Error(t, err)
}

func TestLookups(t *testing.T) {
	ctx := testContext(t)

	r, err := LookupRegion(ctx, MapRow{"region": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "p1", r.Name)

	_, err = LookupRegion(ctx, MapRow{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoMatch))

	_, err = LookupRegion(ctx, MapRow{"region": "nowhere"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoMatch))

	from, err := LookupFromRegion(ctx, MapRow{"from_region": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "p1", from.Name)

	to, err := LookupToRegion(ctx, MapRow{"to_region": "p2"})
	require.NoError(t, err)
	assert.Equal(t, "p2", to.Name)

	_, err = LookupToRegion(ctx, MapRow{})
	assert.Error(t, err)

	rr, err := LookupReserveRegion(ctx, MapRow{"region": "rsv"})
	require.NoError(t, err)
	assert.Equal(t, "rsv", rr.Name)

	_, err = LookupReserveRegion(ctx, MapRow{})
	assert.Error(t, err)

	_, err = LookupRegion(nil, MapRow{"region": "p1"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))
}

func TestLoadAndReserveNames(t *testing.T) {
	ctx := testContext(t)

	load, err := LoadName(ctx, MapRow{"region": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "p1_load", load)

	reserve, err := ReserveName(ctx, MapRow{"region": "p1", "reserve_type": "spin"})
	require.NoError(t, err)
	assert.Equal(t, "p1_spin", reserve)

	_, err = LoadName(ctx, MapRow{})
	assert.Error(t, err)
	_, err = ReserveName(ctx, MapRow{"region": "p1"})
	assert.Error(t, err)
}

func TestReserveEnums(t *testing.T) {
	rt, err := ReserveType(nil, MapRow{"reserve_type": "SPINNING"})
	require.NoError(t, err)
	assert.Equal(t, network.ReserveSpinning, rt)

	rt, err = ReserveType(nil, MapRow{"reserve_type": "reg"})
	require.NoError(t, err)
	assert.Equal(t, network.ReserveRegulation, rt)

	_, err = ReserveType(nil, MapRow{"reserve_type": "invalid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")

	dir, err := ReserveDirection(nil, MapRow{"direction": "up"})
	require.NoError(t, err)
	assert.Equal(t, network.DirectionUp, dir)

	_, err = ReserveDirection(nil, MapRow{})
	assert.Error(t, err)
}

func TestDefaultedNumbers(t *testing.T) {
	tests := []struct {
		name    string
		fn      Resolver[float64]
		row     MapRow
		want    float64
		wantErr bool
	}{
		{"storage absent", StorageDuration, MapRow{}, 1.0, false},
		{"storage null", StorageDuration, MapRow{"storage_duration": nil}, 1.0, false},
		{"storage int", StorageDuration, MapRow{"storage_duration": 2}, 2.0, false},
		{"storage string", StorageDuration, MapRow{"storage_duration": "4"}, 4.0, false},
		{"storage garbage", StorageDuration, MapRow{"storage_duration": "long"}, 0, true},
		{"efficiency absent", RoundTripEfficiency, MapRow{}, 1.0, false},
		{"efficiency set", RoundTripEfficiency, MapRow{"round_trip_efficiency": 0.9}, 0.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(nil, tt.row)
			if tt.wantErr {
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestFuelType(t *testing.T) {
	ctx := NewContext(nil)

	got, err := FuelType(ctx, MapRow{"fuel_type": "NaturalGas"})
	require.NoError(t, err)
	assert.Equal(t, "naturalgas", got)

	got, err = FuelType(ctx, MapRow{"fuel_type": "other"})
	require.NoError(t, err)
	assert.Equal(t, "OTHER", got, "configured spelling is returned")

	_, err = FuelType(ctx, MapRow{"fuel_type": "mystery"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")

	_, err = FuelType(ctx, MapRow{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoMatch))

	custom := NewContext(nil, WithFuelTypes("H2", "Gas"))
	got, err = FuelType(custom, MapRow{"fuel_type": "h2"})
	require.NoError(t, err)
	assert.Equal(t, "H2", got)
	assert.Equal(t, []string{"H2", "Gas"}, custom.FuelTypes())

	got, err = FuelType(&Context{}, MapRow{"fuel_type": "COAL"})
	require.NoError(t, err)
	assert.Equal(t, "coal", got)
}

func TestEmissionEnums(t *testing.T) {
	et, err := EmissionType(nil, MapRow{"emission_type": "co2"})
	require.NoError(t, err)
	assert.Equal(t, network.EmissionCO2, et)

	_, err = EmissionType(nil, MapRow{"emission_type": "unknown"})
	assert.Error(t, err)

	src, err := EmissionSource(nil, MapRow{"emission_source": nil})
	require.NoError(t, err)
	assert.Equal(t, network.SourceCombustion, src)

	src, err = EmissionSource(nil, MapRow{"emission_source": "precombustion"})
	require.NoError(t, err)
	assert.Equal(t, network.SourcePrecombustion, src)

	_, err = EmissionSource(nil, MapRow{"emission_source": "mystery"})
	assert.Error(t, err)
}

func TestIsDispatchable(t *testing.T) {
	ctx := testContext(t)

	got, err := IsDispatchable(ctx, MapRow{"technology": "hyd_store"})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = IsDispatchable(ctx, MapRow{"technology": nil})
	require.NoError(t, err)
	assert.False(t, got)

	got, err = IsDispatchable(ctx, MapRow{"technology": "gas-cc"})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestTransmission(t *testing.T) {
	ctx := testContext(t)

	name, err := TransmissionInterfaceName(nil, MapRow{"from_region": "b", "to_region": "a"})
	require.NoError(t, err)
	assert.Equal(t, "a||b", name)

	_, err = TransmissionInterfaceName(nil, MapRow{"from_region": "p1"})
	assert.Error(t, err)

	line, err := TransmissionLineName(nil, MapRow{"from_region": "a", "to_region": "b", "trtype": "ac"})
	require.NoError(t, err)
	assert.Equal(t, "a_b_ac", line)

	_, err = TransmissionLineName(nil, MapRow{"from_region": "a", "to_region": "b"})
	assert.Error(t, err)

	iface, err := LookupTransmissionInterface(ctx, MapRow{"from_region": "p2", "to_region": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "p1||p2", iface.Name)

	_, err = LookupTransmissionInterface(ctx, MapRow{"from_region": "p1"})
	assert.Error(t, err)
}

func TestTransmissionFlow(t *testing.T) {
	flow, err := TransmissionFlow(nil, MapRow{"capacity": 100})
	require.NoError(t, err)
	assert.Equal(t, network.FlowLimits{FromTo: 100, ToFrom: 100}, flow)

	flow, err = TransmissionFlow(nil, MapRow{"value": 75})
	require.NoError(t, err)
	assert.Equal(t, 75.0, flow.FromTo)

	flow, err = TransmissionFlow(nil, MapRow{"capacity": 10.0, "value": 75})
	require.NoError(t, err)
	assert.Equal(t, 10.0, flow.ToFrom)

	_, err = TransmissionFlow(nil, MapRow{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoMatch))
}

func TestResolversAcceptTableRows(t *testing.T) {
	tbl, err := table.New([]string{"technology", "vintage", "region"},
		[]any{"upv", nil, "p3"},
		[]any{"gas-cc", "new", "p3"},
	)
	require.NoError(t, err)

	var got []string
	for _, r := range tbl.Rows() {
		name, err := GeneratorName(nil, r)
		require.NoError(t, err)
		got = append(got, name)
	}
	assert.Equal(t, []string{"upv_p3", "gas-cc_new_p3"}, got)
}
