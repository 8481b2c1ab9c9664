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

package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

func TestCalendar(t *testing.T) {
	tests := []struct {
		name     string
		years    []int
		wantRows int
		febDays  int
	}{
		{"leap year", []int{2024}, 12, 29},
		{"common year", []int{2023}, 12, 28},
		{"century not leap", []int{2100}, 12, 28},
		{"two years", []int{2024, 2025}, 24, 29},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Calendar(tt.years)
			require.Len(t, rows, tt.wantRows)
			if tt.wantRows == 0 {
				return
			}
			feb := rows[1]
			assert.Equal(t, 2, feb.Month)
			assert.Equal(t, tt.febDays, feb.Days)
			assert.Equal(t, tt.febDays*24, feb.Hours)
		})
	}
}

func TestHoursIn(t *testing.T) {
	assert.Equal(t, 8784, HoursIn(2024))
	assert.Equal(t, 8760, HoursIn(2023))
}

func TestMonthlyToHourly(t *testing.T) {
	monthly := make([]float64, 12)
	for i := range monthly {
		monthly[i] = float64(i + 1)
	}

	hourly, err := MonthlyToHourly(2024, monthly)
	require.NoError(t, err)
	require.Len(t, hourly, 366*24)
	assert.Equal(t, 1.0, hourly[0])
	assert.Equal(t, 1.0, hourly[31*24-1])
	assert.Equal(t, 2.0, hourly[31*24])
	assert.Equal(t, 12.0, hourly[len(hourly)-1])

	hourly, err = MonthlyToHourly(2023, monthly)
	require.NoError(t, err)
	assert.Len(t, hourly, 365*24)

	_, err = MonthlyToHourly(2024, []float64{1})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))
}

func hydroGen() *network.Generator {
	g := network.NewGenerator("hyd_2020_p1", network.ClassHydro)
	g.Technology = "hyd"
	g.Region = network.NewRegion("p1")
	g.Vintage = "2020"
	g.Capacity = 100
	return g
}

func hydroTable(t *testing.T, tech string, year int, months int, cf float64) *table.Table {
	t.Helper()
	var rows [][]any
	for m := 1; m <= months; m++ {
		rows = append(rows, []any{tech, "p1", "2020", year, m, cf})
	}
	tbl, err := table.New([]string{"technology", "region", "vintage", "year", "month_num", "hydro_cf"}, rows...)
	require.NoError(t, err)
	return tbl
}

func TestHydroBudgets(t *testing.T) {
	budgets, err := HydroBudgets(hydroGen(), hydroTable(t, "hyd", 2023, 12, 1.0), []int{2023})
	require.NoError(t, err)
	require.Len(t, budgets, 1)

	b := budgets[0]
	assert.Equal(t, 2023, b.Year)
	require.Len(t, b.Hourly, 8760)
	assert.InDelta(t, 100.0*1.0*(31*24)/31, b.Hourly[0], 1e-9)

	ts := b.Series()
	assert.Equal(t, "hydro_budget", ts.Name)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), ts.InitialTime)
	assert.Equal(t, time.Hour, ts.Resolution)
	assert.Equal(t, 8760, ts.Len())
}

func TestHydroBudgetsLeapYear(t *testing.T) {
	budgets, err := HydroBudgets(hydroGen(), hydroTable(t, "hyd", 2024, 12, 0.5), []int{2024})
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Len(t, budgets[0].Hourly, 366*24)
	assert.InDelta(t, 100.0*0.5*24, budgets[0].Hourly[31*24], 1e-9, "february day")
}

func TestHydroBudgetsSkips(t *testing.T) {
	tests := []struct {
		name  string
		data  *table.Table
		years []int
	}{
		{"incomplete months", hydroTable(t, "hyd", 2024, 6, 0.5), []int{2024}},
		{"other technology", hydroTable(t, "other", 2024, 12, 0.5), []int{2024}},
		{"year not solved", hydroTable(t, "hyd", 2024, 12, 0.5), []int{2030}},
		{"no data", nil, []int{2024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets, err := HydroBudgets(hydroGen(), tt.data, tt.years)
			require.NoError(t, err)
			assert.Empty(t, budgets)
		})
	}
}

func TestHydroBudgetsErrors(t *testing.T) {
	_, err := HydroBudgets(nil, nil, nil)
	assert.Error(t, err)

	bad, err := table.New([]string{"technology", "region"}, []any{"hyd", "p1"})
	require.NoError(t, err)
	_, err = HydroBudgets(hydroGen(), bad, []int{2024})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))
}
