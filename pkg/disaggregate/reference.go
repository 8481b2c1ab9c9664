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

package disaggregate

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/gridsynth/pkg/attr"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/serializer"
)

// ReferenceSource is where unit sizes come from: a path to a JSON or YAML
// file, a []map[string]any keyed by "name", a map[string]map[string]any,
// a map[string]any of records, or a References value.
type ReferenceSource any

// Record is one reference entry.
type Record = attr.Ext

// References maps a break-attribute value to its reference record, keeping
// first-seen order.
type References struct {
	records map[string]Record
	order   []string
}

// Get returns the record for key.
func (r References) Get(key string) (Record, bool) {
	rec, ok := r.records[key]
	return rec, ok
}

// Keys returns the keys in first-seen order.
func (r References) Keys() []string { return slices.Clone(r.order) }

// Len returns the number of records.
func (r References) Len() int { return len(r.order) }

func (r *References) put(key string, rec map[string]any, logger *slog.Logger) {
	if r.records == nil {
		r.records = make(map[string]Record)
	}
	if _, dup := r.records[key]; dup {
		logger.Warn("Duplicate entries found for key '"+defaults.ReferenceKeyField+"'",
			"key", key, "kept", "first")
		return
	}
	r.records[key] = attr.NewExt(rec)
	r.order = append(r.order, key)
}

// LoadReferences normalizes src into References. A missing file is an
// input-absent error, an unsupported source type an invalid-input error and
// an empty result an input-absent error.
func LoadReferences(src ReferenceSource, logger *slog.Logger) (References, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var refs References

	switch v := src.(type) {
	case References:
		refs = v
	case *References:
		if v != nil {
			refs = *v
		}
	case string:
		node, err := readReferenceFile(v)
		if err != nil {
			return References{}, err
		}
		if err := refs.addNode(node, logger); err != nil {
			return References{}, err
		}
	case []map[string]any:
		for _, rec := range v {
			refs.addListRecord(rec, logger)
		}
	case map[string]map[string]any:
		for _, key := range sortedKeys(v) {
			refs.put(key, v[key], logger)
		}
	case []any, map[string]any:
		if err := refs.addAny(v, logger); err != nil {
			return References{}, err
		}
	default:
		return References{}, errors.Newf(errors.ErrCodeInvalidInput,
			"unsupported reference source type %T", src)
	}

	if refs.Len() == 0 {
		return References{}, errors.New(errors.ErrCodeInputAbsent, "No reference technologies")
	}
	return refs, nil
}

func readReferenceFile(path string) (*yaml.Node, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInputAbsent, "reference file not found", err,
			map[string]any{"path": path})
	}
	node, err := serializer.ReadNode(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "failed to parse reference file", err,
			map[string]any{"path": path})
	}
	return node, nil
}

// addNode walks a parsed reference document in declaration order, so a
// repeated mapping key keeps its first record.
func (r *References) addNode(node *yaml.Node, logger *slog.Logger) error {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i].Value, node.Content[i+1]
			rec, ok := decodeRecord(val)
			if !ok {
				logger.Warn("skipping non-map reference entry", "key", key, "line", val.Line)
				continue
			}
			r.put(key, rec, logger)
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			rec, ok := decodeRecord(item)
			if !ok {
				logger.Warn("skipping non-map reference entry", "index", i, "line", item.Line)
				continue
			}
			r.addListRecord(rec, logger)
		}
	case 0, yaml.DocumentNode:
		// empty document
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return errors.Newf(errors.ErrCodeInvalidInput, "unsupported reference document (line %d)", node.Line)
		}
	default:
		return errors.Newf(errors.ErrCodeInvalidInput, "unsupported reference document (line %d)", node.Line)
	}
	return nil
}

func decodeRecord(n *yaml.Node) (map[string]any, bool) {
	if n.Kind != yaml.MappingNode {
		return nil, false
	}
	var rec map[string]any
	if err := n.Decode(&rec); err != nil {
		return nil, false
	}
	return rec, true
}

func (r *References) addAny(raw any, logger *slog.Logger) error {
	switch v := raw.(type) {
	case []any:
		for i, item := range v {
			rec, ok := item.(map[string]any)
			if !ok {
				logger.Warn("skipping non-map reference entry", "index", i, "type", fmt.Sprintf("%T", item))
				continue
			}
			r.addListRecord(rec, logger)
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			rec, ok := v[key].(map[string]any)
			if !ok {
				logger.Warn("skipping non-map reference entry", "key", key, "type", fmt.Sprintf("%T", v[key]))
				continue
			}
			r.put(key, rec, logger)
		}
	case nil:
	default:
		return errors.Newf(errors.ErrCodeInvalidInput, "unsupported reference document type %T", raw)
	}
	return nil
}

func (r *References) addListRecord(rec map[string]any, logger *slog.Logger) {
	key, ok := rec[defaults.ReferenceKeyField].(string)
	if !ok || key == "" {
		logger.Warn("skipping reference entry without a name", "field", defaults.ReferenceKeyField)
		return
	}
	r.put(key, rec, logger)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
