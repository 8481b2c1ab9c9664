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
	"slices"
	"time"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

// Hydro capacity factor columns.
const (
	ColMonth    = "month_num"
	ColHydroCF  = "hydro_cf"
	HydroSeries = "hydro_budget"
)

// Budget is the energy budget profile of one hydro generator for one year.
// Every hour of a day carries that day's budget in MWh.
type Budget struct {
	Year   int
	Hourly []float64
}

// Series wraps the budget as an hourly time series starting January 1st.
func (b Budget) Series() *network.SingleTimeSeries {
	return &network.SingleTimeSeries{
		Name:        HydroSeries,
		InitialTime: time.Date(b.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Resolution:  time.Hour,
		Data:        b.Hourly,
	}
}

// HydroBudgets computes daily energy budgets for gen from monthly capacity
// factors. Rows match on technology and region, and on vintage when both the
// generator and the data carry one. The daily budget of a month is
// capacity * cf * hours_in_month / days_in_month. A solve year without all
// twelve months is skipped.
func HydroBudgets(gen *network.Generator, cf *table.Table, solveYears []int) ([]Budget, error) {
	if gen == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "generator is nil")
	}
	if cf == nil || cf.Len() == 0 {
		return nil, nil
	}
	if !cf.HasColumns("technology", "region", "year", ColMonth, ColHydroCF) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "hydro capacity factors are missing columns",
			map[string]any{"columns": cf.Columns()})
	}

	matchVintage := gen.Vintage != "" && cf.HasColumn("vintage")
	rows := cf.Filter(func(r table.Row) bool {
		if r.String("technology") != gen.Technology || r.String("region") != gen.RegionName() {
			return false
		}
		return !matchVintage || r.String("vintage") == gen.Vintage
	})

	var out []Budget
	for _, year := range solveYears {
		monthly := make(map[int]float64, MonthsPerYear)
		for _, r := range rows.Rows() {
			y, ok := r.Float("year")
			if !ok || int(y) != year {
				continue
			}
			m, ok := r.Float(ColMonth)
			if !ok || m < 1 || m > MonthsPerYear {
				continue
			}
			v, ok := r.Float(ColHydroCF)
			if !ok {
				continue
			}
			if _, seen := monthly[int(m)]; !seen {
				monthly[int(m)] = v
			}
		}
		if len(monthly) != MonthsPerYear {
			continue
		}

		daily := make([]float64, MonthsPerYear)
		for m := 1; m <= MonthsPerYear; m++ {
			days := DaysIn(year, m)
			daily[m-1] = gen.Capacity * monthly[m] * float64(days*24) / float64(days)
		}
		hourly, err := MonthlyToHourly(year, daily)
		if err != nil {
			return nil, err
		}
		out = append(out, Budget{Year: year, Hourly: hourly})
	}
	slices.SortFunc(out, func(a, b Budget) int { return a.Year - b.Year })
	return out, nil
}
