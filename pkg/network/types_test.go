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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneratorClass(t *testing.T) {
	tests := []struct {
		in      string
		want    GeneratorClass
		wantErr bool
	}{
		{"thermal", ClassThermal, false},
		{"ReEDSThermalGenerator", ClassThermal, false},
		{"ReEDSVariableGenerator", ClassVariable, false},
		{"ReEDSStorage", ClassStorage, false},
		{"ReEDSHydroGenerator", ClassHydro, false},
		{"ReEDSConsumingTechnology", ClassConsuming, false},
		{" Generic ", ClassGeneric, false},
		{"ReEDSGenerator", "", true},
		{"nuclear", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGeneratorClass(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReserveType(t *testing.T) {
	tests := []struct {
		in      string
		want    ReserveType
		wantErr bool
	}{
		{"SPINNING", ReserveSpinning, false},
		{"spin", ReserveSpinning, false},
		{"Flex", ReserveFlexibility, false},
		{"reg", ReserveRegulation, false},
		{"combo", ReserveCombo, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReserveType(tt.in)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReserveDirection(t *testing.T) {
	got, err := ParseReserveDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, got)

	got, err = ParseReserveDirection("DOWN")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, got)

	_, err = ParseReserveDirection("")
	assert.Error(t, err)
}

func TestParseEmission(t *testing.T) {
	typ, err := ParseEmissionType("co2")
	require.NoError(t, err)
	assert.Equal(t, EmissionCO2, typ)

	_, err = ParseEmissionType("unknown")
	assert.Error(t, err)

	src, err := ParseEmissionSource("precombustion")
	require.NoError(t, err)
	assert.Equal(t, SourcePrecombustion, src)

	_, err = ParseEmissionSource("mystery")
	assert.Error(t, err)
}
