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
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// Row is a single input record. Field reports the value of name, whether it
// is present and non-null, and an error when the accessor itself failed.
type Row interface {
	Field(name string) (value any, present bool, err error)
}

// Getter is implemented by records that expose their own lookup method.
// When Get fails or panics, struct fields are consulted instead.
type Getter interface {
	Get(name string) (any, bool)
}

// MapRow adapts a plain map.
type MapRow map[string]any

// Field implements Row.
func (m MapRow) Field(name string) (any, bool, error) {
	v, ok := m[name]
	return v, ok && v != nil, nil
}

// AsRow adapts v to a Row. Accepted forms are Row, map[string]any,
// map[string]string, structs and pointers to structs.
func AsRow(v any) (Row, error) {
	switch r := v.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidInput, "row is nil")
	case Row:
		return r, nil
	case map[string]any:
		return MapRow(r), nil
	case map[string]string:
		m := make(MapRow, len(r))
		for k, s := range r {
			m[k] = s
		}
		return m, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "row is a nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrCodeInvalidInput, "unsupported row type %T", v)
	}
	return &objectRow{src: v, val: rv}, nil
}

// objectRow reads exported struct fields, matched by "row" tag first and
// then by case-folded field name.
type objectRow struct {
	src any
	val reflect.Value
}

func (o *objectRow) Field(name string) (v any, present bool, err error) {
	if g, ok := o.src.(Getter); ok {
		if v, ok, gerr := safeGet(g, name); gerr == nil && ok {
			return v, v != nil, nil
		}
	}

	defer func() {
		if r := recover(); r != nil {
			v, present = nil, false
			err = errors.Newf(errors.ErrCodeInvalidInput, "reading field %q: %v", name, r)
		}
	}()

	f, ok := lookupStructField(o.val, name)
	if !ok {
		return nil, false, nil
	}
	if f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface {
		if f.IsNil() {
			return nil, false, nil
		}
		f = f.Elem()
	}
	return f.Interface(), true, nil
}

func safeGet(g Getter, name string) (v any, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = nil, false
			err = fmt.Errorf("get %q: %v", name, r)
		}
	}()
	v, ok = g.Get(name)
	return v, ok, nil
}

func lookupStructField(rv reflect.Value, name string) (reflect.Value, bool) {
	rt := rv.Type()
	folded := cases.Fold().String(name)
	fallback := -1
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, ok := sf.Tag.Lookup("row"); ok && tag == name {
			return rv.Field(i), true
		}
		if fallback < 0 && cases.Fold().String(sf.Name) == folded {
			fallback = i
		}
	}
	if fallback < 0 {
		return reflect.Value{}, false
	}
	return rv.Field(fallback), true
}

// firstField returns the first present value among keys.
func firstField(row Row, keys ...string) (any, string, error) {
	for _, k := range keys {
		v, ok, err := row.Field(k)
		if err != nil {
			return nil, k, errors.WrapWithContext(errors.ErrCodeInvalidInput, "failed to read row field", err,
				map[string]any{"field": k})
		}
		if ok {
			return v, k, nil
		}
	}
	return nil, "", nil
}

// requireString returns the first present field among keys as a non-empty
// string or a no-match error naming the keys.
func requireString(row Row, keys ...string) (string, error) {
	v, _, err := firstField(row, keys...)
	if err != nil {
		return "", err
	}
	s := stringify(v)
	if s == "" {
		return "", errors.NewWithContext(errors.ErrCodeNoMatch, "row is missing a required field",
			map[string]any{"fields": keys})
	}
	return s, nil
}

// optionalString returns "" when none of keys is present.
func optionalString(row Row, keys ...string) (string, error) {
	v, _, err := firstField(row, keys...)
	if err != nil {
		return "", err
	}
	return stringify(v), nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, "value is not numeric", err)
		}
		return f, nil
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidInput, "value %v (%T) is not numeric", v, v)
	}
}
