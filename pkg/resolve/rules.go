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
	stderrors "errors"
	"fmt"

	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
)

// FieldFunc resolves one untyped field value.
type FieldFunc func(ctx *Context, row Row) (any, error)

// Field binds a component field name to its resolver.
type Field struct {
	Name    string
	Resolve FieldFunc
}

// Bind adapts a typed resolver to a Field.
func Bind[T any](name string, r Resolver[T]) Field {
	return Field{Name: name, Resolve: func(ctx *Context, row Row) (any, error) {
		return r(ctx, row)
	}}
}

// Rule maps input rows to the fields of one component kind.
type Rule struct {
	Name   string
	Target network.Kind
	Fields []Field
}

// RuleSet groups rules by target kind, keeping declaration order.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns a RuleSet of rules in the given order.
func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Add appends rules.
func (rs *RuleSet) Add(rules ...Rule) {
	rs.rules = append(rs.rules, rules...)
}

// Targets returns the distinct target kinds in declaration order.
func (rs *RuleSet) Targets() []network.Kind {
	var out []network.Kind
	seen := make(map[network.Kind]bool)
	for _, r := range rs.rules {
		if !seen[r.Target] {
			seen[r.Target] = true
			out = append(out, r.Target)
		}
	}
	return out
}

// Select returns the rule named name for target, or the first rule for
// target when name is empty or not found. A target without rules is an error.
func (rs *RuleSet) Select(target network.Kind, name string) (*Rule, error) {
	var first *Rule
	for i := range rs.rules {
		r := &rs.rules[i]
		if r.Target != target {
			continue
		}
		if name != "" && r.Name == name {
			return r, nil
		}
		if first == nil {
			first = r
		}
	}
	if first == nil {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound, "no rule for target "+string(target),
			map[string]any{"target": string(target), "targets": rs.Targets()})
	}
	return first, nil
}

// Result is the outcome of applying a rule to one row. Values holds every
// field that resolved; Err joins the failures.
type Result struct {
	Index  int
	Values map[string]any
	Err    error
}

// OK reports whether every field resolved.
func (r Result) OK() bool { return r.Err == nil }

// Apply resolves every field of rule for each row. A failing field does not
// stop the row and a failing row does not stop the loop; panics inside a
// resolver become errors on that row.
func Apply(rule *Rule, ctx *Context, rows []Row) []Result {
	out := make([]Result, len(rows))
	logger := ctx.logger()
	failed := 0
	for i, row := range rows {
		out[i] = applyRow(rule, ctx, row)
		out[i].Index = i
		if out[i].Err != nil {
			failed++
			logger.Debug("row skipped", "rule", rule.Name, "target", string(rule.Target),
				"row", i, "error", out[i].Err)
		}
	}
	if len(rows) > 0 {
		logger.Debug("applied rule", "rule", rule.Name, "target", string(rule.Target),
			"rows", len(rows), "failed", failed)
	}
	return out
}

func applyRow(rule *Rule, ctx *Context, row Row) Result {
	res := Result{Values: make(map[string]any, len(rule.Fields))}
	var errs []error
	for _, f := range rule.Fields {
		v, err := safeResolve(f, ctx, row)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		res.Values[f.Name] = v
	}
	res.Err = stderrors.Join(errs...)
	return res
}

func safeResolve(f Field, ctx *Context, row Row) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = errors.Newf(errors.ErrCodeInternal, "resolver panicked: %v", r)
		}
	}()
	if row == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "row is nil")
	}
	return f.Resolve(ctx, row)
}
