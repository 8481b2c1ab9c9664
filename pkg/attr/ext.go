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
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Ext is a typed key-value side table. Components carry one for attributes
// that have no dedicated field. The zero value is ready to use.
type Ext struct {
	data map[string]Value
}

// NewExt builds an Ext from plain values. Non-scalar values are stored as
// strings.
func NewExt(kv map[string]any) Ext {
	var e Ext
	for k, v := range kv {
		e.SetAny(k, v)
	}
	return e
}

// Set stores v under key.
func (e *Ext) Set(key string, v Value) {
	if e.data == nil {
		e.data = make(map[string]Value)
	}
	e.data[key] = v
}

// SetAny converts v with ToValue and stores it. A nil v deletes the key.
func (e *Ext) SetAny(key string, v any) {
	if v == nil {
		e.Delete(key)
		return
	}
	val, _ := ToValue(v)
	e.Set(key, val)
}

// Delete removes key.
func (e *Ext) Delete(key string) {
	delete(e.data, key)
}

// Len returns the number of stored keys.
func (e Ext) Len() int { return len(e.data) }

// Has reports whether key is present.
func (e Ext) Has(key string) bool {
	_, ok := e.data[key]
	return ok
}

// Get returns the value for key, or nil.
func (e Ext) Get(key string) Value {
	return e.data[key]
}

// Keys returns all keys in sorted order.
func (e Ext) Keys() []string {
	return slices.Sorted(maps.Keys(e.data))
}

// Clone returns an independent copy.
func (e Ext) Clone() Ext {
	if e.data == nil {
		return Ext{}
	}
	return Ext{data: maps.Clone(e.data)}
}

// Merge copies every entry of other into e; other wins on conflicts.
func (e *Ext) Merge(other Ext) {
	for k, v := range other.data {
		e.Set(k, v)
	}
}

// Map returns the entries as plain Go values.
func (e Ext) Map() map[string]any {
	out := make(map[string]any, len(e.data))
	for k, v := range e.data {
		out[k] = v.Any()
	}
	return out
}

// GetString returns the string stored under key.
func (e Ext) GetString(key string) (string, error) {
	v := e.data[key]
	if v == nil {
		return "", fmt.Errorf("key %q not found", key)
	}
	s, ok := v.Any().(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string", key)
	}
	return s, nil
}

// GetFloat64 returns the numeric value stored under key. Integers are widened.
func (e Ext) GetFloat64(key string) (float64, error) {
	v := e.data[key]
	if v == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	f, ok := AsFloat64(v)
	if !ok {
		return 0, fmt.Errorf("key %q is not numeric", key)
	}
	return f, nil
}

// GetInt64 returns the integer stored under key.
func (e Ext) GetInt64(key string) (int64, error) {
	v := e.data[key]
	if v == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch n := v.Any().(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("key %q is not an integer", key)
	}
}

// GetBool returns the bool stored under key.
func (e Ext) GetBool(key string) (bool, error) {
	v := e.data[key]
	if v == nil {
		return false, fmt.Errorf("key %q not found", key)
	}
	b, ok := v.Any().(bool)
	if !ok {
		return false, fmt.Errorf("key %q is not a bool", key)
	}
	return b, nil
}

// MarshalJSON encodes the table as a flat object.
func (e Ext) MarshalJSON() ([]byte, error) {
	if e.data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.data)
}

// UnmarshalJSON decodes a flat object of scalars.
func (e *Ext) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = NewExt(raw)
	return nil
}

// MarshalYAML encodes the table as a flat mapping.
func (e Ext) MarshalYAML() (any, error) {
	if e.data == nil {
		return map[string]any{}, nil
	}
	return e.data, nil
}

// UnmarshalYAML decodes a flat mapping of scalars.
func (e *Ext) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*e = NewExt(raw)
	return nil
}
