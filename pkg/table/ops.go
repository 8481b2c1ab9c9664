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
	"slices"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// RightSuffix is appended to right-hand columns that collide with left-hand
// columns in LeftJoin.
const RightSuffix = "_right"

// LeftJoin keeps every row of t and appends the non-key columns of right
// where the key columns are equal. A left row matching several right rows is
// repeated once per match; a left row without a match gets nulls. Rows with a
// null key never match. Key columns of different kinds fail with
// ErrCodeInvalidInput.
func (t *Table) LeftJoin(right *Table, keys []string) (*Table, error) {
	if len(keys) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "join requires at least one key")
	}
	li, err := t.indices(keys)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "left table is missing a join key", err)
	}
	ri, err := right.indices(keys)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "right table is missing a join key", err)
	}
	for _, k := range keys {
		lk, rk := t.ColumnKind(k), right.ColumnKind(k)
		if lk != KindNull && rk != KindNull && lk != rk {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "join key type mismatch",
				map[string]any{"key": k, "left": string(lk), "right": string(rk)})
		}
	}

	var extraIdx []int
	cols := slices.Clone(t.columns)
	for j, c := range right.columns {
		if slices.Contains(keys, c) {
			continue
		}
		name := c
		if t.HasColumn(name) {
			name += RightSuffix
		}
		cols = append(cols, name)
		extraIdx = append(extraIdx, j)
	}

	lookup := make(map[string][]int)
	for i, r := range right.rows {
		if k, ok := right.compositeKey(r, ri); ok {
			lookup[k] = append(lookup[k], i)
		}
	}

	var rows [][]any
	for _, r := range t.rows {
		var matches []int
		if k, ok := t.compositeKey(r, li); ok {
			matches = lookup[k]
		}
		if len(matches) == 0 {
			nr := make([]any, len(cols))
			copy(nr, r)
			rows = append(rows, nr)
			continue
		}
		for _, m := range matches {
			nr := make([]any, 0, len(cols))
			nr = append(nr, r...)
			for _, j := range extraIdx {
				nr = append(nr, right.rows[m][j])
			}
			rows = append(rows, nr)
		}
	}
	return New(cols, rows...)
}

// AggFunc reduces the values of one column within a group.
type AggFunc func(values []any) any

// Sum adds numeric values, ignoring nulls. The result is float64, or nil when
// every value is null.
func Sum(values []any) any {
	var total float64
	seen := false
	for _, v := range values {
		if f, ok := toFloat(v); ok {
			total += f
			seen = true
		}
	}
	if !seen {
		return nil
	}
	return total
}

// FirstNonNull returns the first value that is not null.
func FirstNonNull(values []any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Agg describes one output column of GroupBy.
type Agg struct {
	Column string
	Func   AggFunc
}

// GroupBy groups rows by keys in order of first appearance and applies aggs.
// An aggregated column absent from t is materialized as null. Rows with a
// null key form their own group.
func (t *Table) GroupBy(keys []string, aggs ...Agg) (*Table, error) {
	ki, err := t.indices(keys)
	if err != nil {
		return nil, err
	}

	type group struct {
		key  []any
		rows [][]any
	}
	var order []string
	groups := make(map[string]*group)
	for _, r := range t.rows {
		var k string
		for _, j := range ki {
			k += keyString(r[j]) + "\x1f"
		}
		g, ok := groups[k]
		if !ok {
			key := make([]any, len(ki))
			for n, j := range ki {
				key[n] = r[j]
			}
			g = &group{key: key}
			groups[k] = g
			order = append(order, k)
		}
		g.rows = append(g.rows, r)
	}

	cols := slices.Clone(keys)
	for _, a := range aggs {
		cols = append(cols, a.Column)
	}
	rows := make([][]any, 0, len(order))
	for _, k := range order {
		g := groups[k]
		nr := slices.Clone(g.key)
		for _, a := range aggs {
			j, ok := t.index[a.Column]
			if !ok {
				nr = append(nr, nil)
				continue
			}
			vals := make([]any, len(g.rows))
			for i, r := range g.rows {
				vals[i] = r[j]
			}
			nr = append(nr, a.Func(vals))
		}
		rows = append(rows, nr)
	}
	return New(cols, rows...)
}

// Pivot turns the distinct values of column on into columns holding the
// first non-null value of values for each index group.
func (t *Table) Pivot(index []string, on, values string) (*Table, error) {
	if _, err := t.indices(append(slices.Clone(index), on, values)); err != nil {
		return nil, err
	}
	var names []string
	for _, v := range t.Column(on) {
		s, ok := v.(string)
		if ok && !slices.Contains(names, s) {
			names = append(names, s)
		}
	}

	result, err := t.Select(index...)
	if err != nil {
		return nil, err
	}
	result, err = result.GroupBy(index)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		subset := t.Filter(func(r Row) bool { return r.Get(on) == name })
		sub, err := subset.GroupBy(index, Agg{Column: values, Func: FirstNonNull})
		if err != nil {
			return nil, err
		}
		sub, err = sub.Rename(map[string]string{values: name})
		if err != nil {
			return nil, err
		}
		result, err = result.LeftJoin(sub, index)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Concat stacks tables with identical columns.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return Empty(), nil
	}
	cols := tables[0].columns
	var rows [][]any
	for _, t := range tables {
		if !slices.Equal(t.columns, cols) {
			return nil, errors.Newf(errors.ErrCodeInvalidInput,
				"cannot concat columns %v with %v", t.columns, cols)
		}
		rows = append(rows, t.rows...)
	}
	return New(cols, rows...)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
