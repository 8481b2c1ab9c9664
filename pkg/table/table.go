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
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// Table is an immutable, row-ordered table. Cell values are nil (null),
// string, int64, float64 or bool. Every transformation returns a new Table.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates a table. Every row must have one value per column.
func New(columns []string, rows ...[]any) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, errors.Newf(errors.ErrCodeInvalidInput, "duplicate column %q", c)
		}
		index[c] = i
	}
	out := make([][]any, len(rows))
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, errors.Newf(errors.ErrCodeInvalidInput,
				"row %d has %d values, want %d", i, len(r), len(columns))
		}
		norm := make([]any, len(r))
		for j, v := range r {
			norm[j] = normalize(v)
		}
		out[i] = norm
	}
	return &Table{columns: slices.Clone(columns), index: index, rows: out}, nil
}

// FromRecords creates a table from maps. Keys missing from a record are null.
func FromRecords(columns []string, records []map[string]any) (*Table, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = rec[c]
		}
		rows[i] = row
	}
	return New(columns, rows...)
}

// Empty returns a table with the given columns and no rows.
func Empty(columns ...string) *Table {
	t, _ := New(columns)
	return t
}

func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// HasColumn reports whether the column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// HasColumns reports whether every named column exists.
func (t *Table) HasColumns(names ...string) bool {
	for _, n := range names {
		if !t.HasColumn(n) {
			return false
		}
	}
	return true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns row i.
func (t *Table) Row(i int) Row { return Row{t: t, i: i} }

// Rows returns every row in order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i] = Row{t: t, i: i}
	}
	return out
}

// Column returns a copy of the named column, or nil when absent.
func (t *Table) Column(name string) []any {
	j, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[j]
	}
	return out
}

// Filter returns the rows for which keep is true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{columns: t.columns, index: t.index}
	for i, r := range t.rows {
		if keep(Row{t: t, i: i}) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// WithColumn returns a table where name holds fn(row). An existing column is
// replaced in place; a new one is appended.
func (t *Table) WithColumn(name string, fn func(Row) any) *Table {
	cols := t.columns
	j, exists := t.index[name]
	index := t.index
	if !exists {
		cols = append(slices.Clone(t.columns), name)
		index = maps.Clone(t.index)
		index[name] = len(cols) - 1
		j = len(cols) - 1
	}
	rows := make([][]any, len(t.rows))
	for i, r := range t.rows {
		nr := make([]any, len(cols))
		copy(nr, r)
		nr[j] = normalize(fn(Row{t: t, i: i}))
		rows[i] = nr
	}
	return &Table{columns: cols, index: index, rows: rows}
}

// Select returns only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	idx := make([]int, len(names))
	for k, n := range names {
		j, ok := t.index[n]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeNotFound, "column %q not found", n)
		}
		idx[k] = j
	}
	rows := make([][]any, len(t.rows))
	for i, r := range t.rows {
		nr := make([]any, len(idx))
		for k, j := range idx {
			nr[k] = r[j]
		}
		rows[i] = nr
	}
	return New(names, rows...)
}

// Drop returns the table without the named columns. Unknown names are ignored.
func (t *Table) Drop(names ...string) *Table {
	keep := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if !slices.Contains(names, c) {
			keep = append(keep, c)
		}
	}
	out, _ := t.Select(keep...)
	return out
}

// Rename returns the table with columns renamed by mapping. Renaming onto an
// existing column is an error.
func (t *Table) Rename(mapping map[string]string) (*Table, error) {
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		if n, ok := mapping[c]; ok {
			cols[i] = n
		} else {
			cols[i] = c
		}
	}
	return New(cols, t.rows...)
}

// ValueKind is the coarse type of a column used for join compatibility.
type ValueKind string

const (
	KindNull   ValueKind = "null"
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "bool"
)

func kindOf(v any) ValueKind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case int64, float64:
		return KindNumber
	case bool:
		return KindBool
	default:
		return KindString
	}
}

// ColumnKind returns the kind of the first non-null value in the column.
func (t *Table) ColumnKind(name string) ValueKind {
	j, ok := t.index[name]
	if !ok {
		return KindNull
	}
	for _, r := range t.rows {
		if r[j] != nil {
			return kindOf(r[j])
		}
	}
	return KindNull
}

func keyString(v any) string {
	switch x := v.(type) {
	case int64:
		return "n:" + strconv.FormatFloat(float64(x), 'g', -1, 64)
	case float64:
		return "n:" + strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return "s:" + x
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}

func (t *Table) compositeKey(r []any, idx []int) (string, bool) {
	var key string
	for _, j := range idx {
		if r[j] == nil {
			return "", false
		}
		key += keyString(r[j]) + "\x1f"
	}
	return key, true
}

func (t *Table) indices(names []string) ([]int, error) {
	idx := make([]int, len(names))
	for k, n := range names {
		j, ok := t.index[n]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeNotFound, "column %q not found", n)
		}
		idx[k] = j
	}
	return idx, nil
}
