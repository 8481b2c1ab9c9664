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

package attr

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AllowedScalar is the compile-time constraint for values stored in an Ext.
type AllowedScalar interface {
	~int | ~int64 | ~uint64 | ~float64 | ~bool | ~string
}

// Value is the runtime interface of a stored scalar so that mixed types can
// share one map.
type Value interface {
	isValue()
	Any() any
	String() string

	json.Marshaler
	yaml.Marshaler
}

// Scalar wraps an allowed scalar type.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isValue() {}

// Any returns the wrapped value.
func (s Scalar[T]) Any() any { return s.V }

// String returns the value formatted with %v.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// MarshalJSON encodes the bare scalar.
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML encodes the bare scalar.
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// Convenience constructors.
func Int(v int) Value         { return Scalar[int]{V: v} }
func Int64(v int64) Value     { return Scalar[int64]{V: v} }
func Uint64(v uint64) Value   { return Scalar[uint64]{V: v} }
func Float64(v float64) Value { return Scalar[float64]{V: v} }
func Bool(v bool) Value       { return Scalar[bool]{V: v} }
func Str(v string) Value      { return Scalar[string]{V: v} }

// ToValue converts v into a Value. The second result is false when v had no
// scalar representation and was stored as its %v string.
func ToValue(v any) (Value, bool) {
	switch val := v.(type) {
	case Value:
		return val, true
	case int:
		return Int(val), true
	case int32:
		return Int64(int64(val)), true
	case int64:
		return Int64(val), true
	case uint:
		return Uint64(uint64(val)), true
	case uint64:
		return Uint64(val), true
	case float32:
		return Float64(float64(val)), true
	case float64:
		return Float64(val), true
	case bool:
		return Bool(val), true
	case string:
		return Str(val), true
	default:
		return Str(fmt.Sprintf("%v", val)), false
	}
}

// AsFloat64 converts any numeric Value to float64.
func AsFloat64(v Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch n := v.Any().(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
