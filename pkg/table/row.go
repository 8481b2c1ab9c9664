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
	"strconv"
)

// Row is a read-only view of one table row.
type Row struct {
	t *Table
	i int
}

// Get returns the value of column name, or nil when the column is absent or
// the cell is null.
func (r Row) Get(name string) any {
	j, ok := r.t.index[name]
	if !ok {
		return nil
	}
	return r.t.rows[r.i][j]
}

// Lookup returns the value of column name and whether the column exists.
func (r Row) Lookup(name string) (any, bool) {
	j, ok := r.t.index[name]
	if !ok {
		return nil, false
	}
	return r.t.rows[r.i][j], true
}

// Field implements the row accessor used by field resolvers.
func (r Row) Field(name string) (any, bool, error) {
	v, ok := r.Lookup(name)
	return v, ok && v != nil, nil
}

// String returns the cell as a string. Numbers are formatted; null is "".
func (r Row) String(name string) string {
	switch v := r.Get(name).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Float returns the cell as float64 when it is numeric or a numeric string.
func (r Row) Float(name string) (float64, bool) {
	v := r.Get(name)
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// Index returns the row position within its table.
func (r Row) Index() int { return r.i }

// Map returns the row as a column → value map.
func (r Row) Map() map[string]any {
	out := make(map[string]any, len(r.t.columns))
	for j, c := range r.t.columns {
		out[c] = r.t.rows[r.i][j]
	}
	return out
}
