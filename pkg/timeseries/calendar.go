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
	"time"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// MonthsPerYear is the number of monthly values a year expects.
const MonthsPerYear = 12

// MonthRow is one month of the modeled calendar.
type MonthRow struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month_num" yaml:"month_num"`
	Days  int `json:"days_in_month" yaml:"days_in_month"`
	Hours int `json:"hours_in_month" yaml:"hours_in_month"`
}

// DaysIn returns the number of days in month (1-12) of year.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// HoursIn returns the number of hours in year.
func HoursIn(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() * 24
}

// Calendar returns twelve rows per year, in the order given.
func Calendar(years []int) []MonthRow {
	out := make([]MonthRow, 0, len(years)*MonthsPerYear)
	for _, y := range years {
		for m := 1; m <= MonthsPerYear; m++ {
			d := DaysIn(y, m)
			out = append(out, MonthRow{Year: y, Month: m, Days: d, Hours: d * 24})
		}
	}
	return out
}

// MonthlyToHourly repeats each monthly value for every hour of its month.
// The result has 8760 values, or 8784 in a leap year.
func MonthlyToHourly(year int, monthly []float64) ([]float64, error) {
	if len(monthly) != MonthsPerYear {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "monthly profile must have 12 values",
			map[string]any{"year": year, "values": len(monthly)})
	}
	out := make([]float64, 0, HoursIn(year))
	for i, v := range monthly {
		hours := DaysIn(year, i+1) * 24
		for range hours {
			out = append(out, v)
		}
	}
	return out, nil
}
