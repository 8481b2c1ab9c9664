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

	"github.com/shopspring/decimal"

	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
)

// Split is the unit layout computed for one generator.
type Split struct {
	Units   []float64
	Dropped float64
}

// Plan computes the unit layout of capacity against unitCapacity. Whole units
// are floor(capacity / unitCapacity); the remainder becomes one more unit
// when it exceeds threshold and is dropped otherwise. ok is false when the
// generator fits in at most one unit and must not be split.
//
// Arithmetic is decimal so that the units plus the dropped remainder add up
// to capacity exactly for decimal inputs.
func Plan(capacity, unitCapacity, threshold float64) (split Split, ok bool) {
	if unitCapacity <= 0 || capacity <= 0 {
		return Split{}, false
	}
	k := decimal.NewFromFloat(capacity)
	u := decimal.NewFromFloat(unitCapacity)

	whole := k.Div(u).Floor()
	if whole.LessThanOrEqual(decimal.NewFromInt(1)) {
		return Split{}, false
	}
	remainder := k.Sub(whole.Mul(u))

	n := int(whole.IntPart())
	units := make([]float64, n, n+1)
	for i := range units {
		units[i] = unitCapacity
	}
	if remainder.GreaterThan(decimal.NewFromFloat(threshold)) {
		units = append(units, remainder.InexactFloat64())
		return Split{Units: units}, true
	}
	return Split{Units: units, Dropped: remainder.InexactFloat64()}, true
}

// UnitName returns the name of the i-th unit (1-based) of parent.
func UnitName(parent string, i int) string {
	return fmt.Sprintf(defaults.CloneSuffixFormat, parent, i)
}

// BreakGenerators replaces every generator larger than its reference unit
// size with unit-sized generators.
//
// Generators are visited in insertion order. A generator is skipped when its
// break attribute is empty, listed in the skip categories, missing from the
// references, or its reference record lacks a positive unit capacity. Each
// unit copies the parent's attributes, supplemental attributes and time
// series; the parent is removed only after every unit was inserted. A failure
// on one generator rolls back its units, is recorded in the report and does
// not stop the pass.
//
// Reference errors (missing file, unsupported type, no records) are returned
// before the system is touched.
func BreakGenerators(sys *network.System, ref ReferenceSource, opts ...Option) (*Report, error) {
	if sys == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "system is nil")
	}
	s := newSettings(opts)
	refs, err := LoadReferences(ref, s.logger)
	if err != nil {
		return nil, err
	}

	report := newReport(s.version)
	for _, g := range sys.Generators() {
		o := s.breakOne(sys, g, refs)
		generatorsProcessed.WithLabelValues(string(o.Status)).Inc()
		if o.Status == StatusSplit {
			unitsCreated.Add(float64(len(o.Units)))
		}
		if o.Dropped > 0 {
			capacityDropped.Add(o.Dropped)
			report.CapacityDropped += o.Dropped
		}
		report.Outcomes = append(report.Outcomes, o)
	}

	s.logger.Info("split generators",
		"split", report.Count(StatusSplit),
		"unchanged", report.Count(StatusUnchanged),
		"skipped", report.Count(StatusSkipped),
		"failed", report.Count(StatusFailed),
		"capacity_dropped_mw", report.CapacityDropped)
	return report, nil
}

func (s *settings) breakOne(sys *network.System, g *network.Generator, refs References) Outcome {
	o := Outcome{Generator: g.Name, Capacity: g.Capacity}

	key := breakValue(g, s.breakAttribute)
	o.Key = key
	switch {
	case key == "":
		s.logger.Debug("skipping generator without break attribute",
			"generator", g.Name, "attribute", s.breakAttribute, "trace", true)
		return skipped(o, "missing "+s.breakAttribute)
	case s.skip.Has(key):
		return skipped(o, "non-break category")
	}

	rec, ok := refs.Get(key)
	if !ok {
		s.logger.Debug("no reference for generator", "generator", g.Name, "key", key, "trace", true)
		return skipped(o, "no reference")
	}
	unit, err := rec.GetFloat64(s.unitField)
	if err != nil || unit <= 0 {
		s.logger.Debug("reference has no unit capacity",
			"generator", g.Name, "key", key, "field", s.unitField)
		return skipped(o, "no unit capacity")
	}

	split, ok := Plan(g.Capacity, unit, s.threshold)
	if !ok {
		o.Status = StatusUnchanged
		return o
	}

	units, err := insertUnits(sys, g, split.Units)
	if err != nil {
		s.logger.Warn("failed to split generator", "generator", g.Name, "error", err)
		o.Status, o.Err, o.Reason = StatusFailed, err, err.Error()
		return o
	}
	if err := sys.Remove(g); err != nil {
		rollback(sys, units)
		s.logger.Warn("failed to remove split generator", "generator", g.Name, "error", err)
		o.Status, o.Err, o.Reason = StatusFailed, err, err.Error()
		return o
	}

	if split.Dropped > 0 {
		s.logger.Debug("dropped remainder capacity", "generator", g.Name, "capacity_mw", split.Dropped)
	}
	s.logger.Debug("split generator", "generator", g.Name, "units", len(units), "unit_mw", unit, "trace", true)

	o.Status = StatusSplit
	o.Dropped = split.Dropped
	for _, u := range units {
		o.Units = append(o.Units, u.Name)
	}
	return o
}

func skipped(o Outcome, reason string) Outcome {
	o.Status, o.Reason = StatusSkipped, reason
	return o
}

// insertUnits adds one clone of g per capacity together with g's
// supplemental attributes and time series. On error the clones already
// inserted are removed again.
func insertUnits(sys *network.System, g *network.Generator, capacities []float64) ([]*network.Generator, error) {
	attrs := sys.SupplementalAttributes(g)
	series := sys.TimeSeries(g)

	units := make([]*network.Generator, 0, len(capacities))
	for i, c := range capacities {
		u := g.Clone(UnitName(g.Name, i+1), c)
		if err := sys.Add(u); err != nil {
			rollback(sys, units)
			return nil, err
		}
		units = append(units, u)
		for _, a := range attrs {
			if err := sys.AddSupplementalAttribute(u, a); err != nil {
				rollback(sys, units)
				return nil, err
			}
		}
		for _, ts := range series {
			if err := sys.AddTimeSeries(u, ts); err != nil {
				rollback(sys, units)
				return nil, err
			}
		}
	}
	return units, nil
}

func rollback(sys *network.System, units []*network.Generator) {
	for _, u := range units {
		_ = sys.Remove(u)
	}
}

// breakValue reads the named generator field, falling back to the
// generator's attribute table.
func breakValue(g *network.Generator, attribute string) string {
	switch attribute {
	case "category":
		return g.Category
	case "technology":
		return g.Technology
	case "fuel_type":
		return g.FuelType
	case "class":
		return string(g.Class)
	case "vintage":
		return g.Vintage
	}
	if v := g.Ext.Get(attribute); v != nil {
		return v.String()
	}
	return ""
}
