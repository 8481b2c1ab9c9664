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

package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

func mustTable(t *testing.T, cols []string, rows ...[]any) *Table {
	t.Helper()
	tbl, err := New(cols, rows...)
	require.NoError(t, err)
	return tbl
}

func rowsOf(t *Table) [][]any {
	out := make([][]any, t.Len())
	for i, r := range t.Rows() {
		row := make([]any, 0, len(t.columns))
		for _, c := range t.Columns() {
			row = append(row, r.Get(c))
		}
		out[i] = row
	}
	return out
}

func TestNew(t *testing.T) {
	tbl := mustTable(t, []string{"technology", "capacity"}, []any{"coal", 10}, []any{"gas", 2.5})
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, int64(10), tbl.Row(0).Get("capacity"), "ints normalize to int64")

	_, err := New([]string{"a", "a"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))

	_, err = New([]string{"a", "b"}, []any{1})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))

	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())
}

func TestFromRecords(t *testing.T) {
	tbl, err := FromRecords([]string{"technology", "vintage"}, []map[string]any{
		{"technology": "coal", "vintage": "v1"},
		{"technology": "gas"},
	})
	require.NoError(t, err)
	assert.Nil(t, tbl.Row(1).Get("vintage"))
	_, present, _ := tbl.Row(1).Field("vintage")
	assert.False(t, present, "null cells are reported absent")
}

func TestFilterAndWithColumnAreImmutable(t *testing.T) {
	base := mustTable(t, []string{"technology", "capacity"},
		[]any{"coal", 10.0}, []any{"gas", 20.0}, []any{"wind", 30.0})

	big := base.Filter(func(r Row) bool {
		f, _ := r.Float("capacity")
		return f >= 20
	})
	assert.Equal(t, 2, big.Len())
	assert.Equal(t, 3, base.Len())

	doubled := base.WithColumn("capacity", func(r Row) any {
		f, _ := r.Float("capacity")
		return f * 2
	})
	assert.Equal(t, 20.0, doubled.Row(0).Get("capacity"))
	assert.Equal(t, 10.0, base.Row(0).Get("capacity"))

	tagged := base.WithColumn("is_aggregated", func(Row) any { return true })
	assert.Equal(t, []string{"technology", "capacity", "is_aggregated"}, tagged.Columns())
	assert.False(t, base.HasColumn("is_aggregated"))
}

func TestSelectDropRename(t *testing.T) {
	base := mustTable(t, []string{"i", "r", "MW"}, []any{"coal", "p1", 1.0})

	sel, err := base.Select("MW", "i")
	require.NoError(t, err)
	assert.Equal(t, []string{"MW", "i"}, sel.Columns())

	_, err = base.Select("missing")
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))

	assert.Equal(t, []string{"i", "MW"}, base.Drop("r", "nope").Columns())

	ren, err := base.Rename(map[string]string{"i": "technology", "r": "region", "MW": "capacity"})
	require.NoError(t, err)
	assert.Equal(t, []string{"technology", "region", "capacity"}, ren.Columns())

	_, err = base.Rename(map[string]string{"i": "r"})
	assert.Error(t, err)
}

func TestLeftJoin(t *testing.T) {
	left := mustTable(t, []string{"technology", "region", "capacity"},
		[]any{"coal", "p1", 10.0},
		[]any{"gas", "p1", 20.0},
		[]any{"wind", "p2", 5.0},
		[]any{nil, "p2", 1.0},
	)
	right := mustTable(t, []string{"technology", "fuel_type", "capacity"},
		[]any{"coal", "coal", 99.0},
		[]any{"gas", "naturalgas", 98.0},
	)

	joined, err := left.LeftJoin(right, []string{"technology"})
	require.NoError(t, err)

	assert.Equal(t, []string{"technology", "region", "capacity", "fuel_type", "capacity_right"}, joined.Columns())
	want := [][]any{
		{"coal", "p1", 10.0, "coal", 99.0},
		{"gas", "p1", 20.0, "naturalgas", 98.0},
		{"wind", "p2", 5.0, nil, nil},
		{nil, "p2", 1.0, nil, nil},
	}
	if diff := cmp.Diff(want, rowsOf(joined)); diff != "" {
		t.Errorf("LeftJoin mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, left.Len())
}

func TestLeftJoinMultipleMatchesAndNumericKeys(t *testing.T) {
	left := mustTable(t, []string{"technology", "year"}, []any{"coal", 2030}, []any{"gas", 2035})
	right := mustTable(t, []string{"technology", "year", "v"},
		[]any{"coal", 2030.0, "a"},
		[]any{"coal", 2030.0, "b"},
	)
	joined, err := left.LeftJoin(right, []string{"technology", "year"})
	require.NoError(t, err)
	want := [][]any{
		{"coal", int64(2030), "a"},
		{"coal", int64(2030), "b"},
		{"gas", int64(2035), nil},
	}
	if diff := cmp.Diff(want, rowsOf(joined)); diff != "" {
		t.Errorf("LeftJoin mismatch (-want +got):\n%s", diff)
	}
}

func TestLeftJoinErrors(t *testing.T) {
	left := mustTable(t, []string{"technology", "vintage"}, []any{"coal", "v1"})

	tests := []struct {
		name  string
		right *Table
		keys  []string
	}{
		{"no keys", Empty("technology"), nil},
		{"missing key on right", Empty("technology"), []string{"technology", "vintage"}},
		{"missing key on left", Empty("year"), []string{"year"}},
		{"kind mismatch", mustTable(t, []string{"technology", "vintage"}, []any{"coal", 1}), []string{"vintage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := left.LeftJoin(tt.right, tt.keys)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestGroupBy(t *testing.T) {
	base := mustTable(t, []string{"technology", "region", "capacity", "heat_rate"},
		[]any{"upv", "p1", 10.0, nil},
		[]any{"wind", "p1", 1.0, 7.0},
		[]any{"upv", "p1", 5.0, 3.0},
		[]any{"upv", "p1", 2, 4.0},
	)

	got, err := base.GroupBy([]string{"technology", "region"},
		Agg{Column: "capacity", Func: Sum},
		Agg{Column: "heat_rate", Func: FirstNonNull},
		Agg{Column: "vom_cost", Func: FirstNonNull},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"technology", "region", "capacity", "heat_rate", "vom_cost"}, got.Columns())
	want := [][]any{
		{"upv", "p1", 17.0, 3.0, nil},
		{"wind", "p1", 1.0, 7.0, nil},
	}
	if diff := cmp.Diff(want, rowsOf(got)); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}

	_, err = base.GroupBy([]string{"missing"})
	assert.Error(t, err)
}

func TestSumAllNull(t *testing.T) {
	assert.Nil(t, Sum([]any{nil, nil}))
	assert.Equal(t, 3.0, Sum([]any{1.0, nil, int64(2)}))
}

func TestPivot(t *testing.T) {
	base := mustTable(t, []string{"technology", "parameter", "value"},
		[]any{"electrolyzer", "electricity_efficiency", 50.0},
		[]any{"electrolyzer", "other", 1.0},
		[]any{"dac", "electricity_efficiency", 2.0},
	)
	got, err := base.Pivot([]string{"technology"}, "parameter", "value")
	require.NoError(t, err)

	assert.Equal(t, []string{"technology", "electricity_efficiency", "other"}, got.Columns())
	want := [][]any{
		{"electrolyzer", 50.0, 1.0},
		{"dac", 2.0, nil},
	}
	if diff := cmp.Diff(want, rowsOf(got)); diff != "" {
		t.Errorf("Pivot mismatch (-want +got):\n%s", diff)
	}
}

func TestConcat(t *testing.T) {
	a := mustTable(t, []string{"x"}, []any{1})
	b := mustTable(t, []string{"x"}, []any{2})
	got, err := Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	_, err = Concat(a, Empty("y"))
	assert.Error(t, err)

	empty, err := Concat()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestRowAccessors(t *testing.T) {
	tbl := mustTable(t, []string{"s", "f", "i", "n", "num"}, []any{"x", 1.5, 7, nil, "2.5"})
	r := tbl.Row(0)

	assert.Equal(t, "x", r.String("s"))
	assert.Equal(t, "1.5", r.String("f"))
	assert.Equal(t, "7", r.String("i"))
	assert.Equal(t, "", r.String("n"))
	assert.Equal(t, "", r.String("absent"))

	f, ok := r.Float("num")
	assert.True(t, ok)
	assert.InDelta(t, 2.5, f, 1e-12)
	_, ok = r.Float("s")
	assert.False(t, ok)

	_, ok = r.Lookup("n")
	assert.True(t, ok, "null cell in existing column")
	_, ok = r.Lookup("absent")
	assert.False(t, ok)

	assert.Equal(t, 0, r.Index())
	assert.Len(t, r.Map(), 5)
}

func TestReadCSV(t *testing.T) {
	input := "\ufeffi,r,t,MW,vintage,flag\n" +
		"coal,p1,2030,10,1,yes\n" +
		"upv_3,p2,2030,2.5,,no\n"

	tbl, err := ReadCSV(strings.NewReader(input), CSVOptions{
		Rename:  map[string]string{"i": "technology", "r": "region", "t": "year", "MW": "capacity"},
		Strings: []string{"vintage"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"technology", "region", "year", "capacity", "vintage", "flag"}, tbl.Columns())
	want := [][]any{
		{"coal", "p1", int64(2030), 10.0, "1", "yes"},
		{"upv_3", "p2", int64(2030), 2.5, nil, "no"},
	}
	if diff := cmp.Diff(want, rowsOf(tbl)); diff != "" {
		t.Errorf("ReadCSV mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, KindNumber, tbl.ColumnKind("year"))
	assert.Equal(t, KindString, tbl.ColumnKind("vintage"))
	assert.Equal(t, KindNull, tbl.ColumnKind("absent"))
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))

	_, err = ReadCSV(strings.NewReader("a,b\n1\n"), CSVOptions{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))

	_, err = ReadCSVFile("/nonexistent/cap.csv", CSVOptions{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputAbsent))
}
