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

package dataset

import (
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

// electricityEfficiencyParameter is the only consumption parameter retained.
const electricityEfficiencyParameter = "electricity_efficiency"

// PrepareGeneratorDataset joins the optional per-technology datasets onto
// capacity, assigns categories, drops excluded technologies and resolves
// fuel types. The inputs are never modified.
//
// It fails with ErrCodeInputAbsent when capacity is nil or empty and with
// ErrCodeAllExcluded when no row survives.
func PrepareGeneratorDataset(
	capacity *table.Table,
	optional OptionalData,
	excluded []string,
	cats classify.Categories,
	opts ...Option,
) (*table.Table, error) {
	s := newSettings(opts)

	if capacity == nil || capacity.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInputAbsent, "No capacity data")
	}
	if !capacity.HasColumns(ColTechnology, ColRegion, ColCapacity) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput, "capacity data is missing required columns",
			map[string]any{"columns": capacity.Columns()})
	}

	data := capacity
	data = s.join(data, "fuel_map", optional.FuelMap)
	data = s.join(data, "storage_duration", optional.StorageDuration)
	if cc := consumeEfficiency(optional.ConsumeCharacteristics, s); cc != nil {
		data = s.join(data, "consume_characteristics", cc)
	}
	for _, extra := range optional.Extra {
		data = s.join(data, extra.Name, extra.Table)
	}

	data = data.WithColumn(ColCategories, func(r table.Row) any {
		return classify.MatchCategories(r.String(ColTechnology), cats)
	})
	data = data.WithColumn(ColCategory, func(r table.Row) any {
		if matched := categoriesOf(r); len(matched) > 0 {
			return matched[0]
		}
		return nil
	})

	excludedSet := sets.New(excluded...)
	before := data.Len()
	data = data.Filter(func(r table.Row) bool {
		tech := r.String(ColTechnology)
		return !excludedSet.Has(tech) && !excludedSet.Has(classify.BaseTechnology(tech, cats))
	})
	if dropped := before - data.Len(); dropped > 0 {
		s.logger.Debug("dropped excluded technologies", "rows", dropped, "excluded", sets.List(excludedSet))
	}

	data = data.WithColumn(ColFuelType, func(r table.Row) any {
		if v := r.Get(ColFuelType); v != nil {
			return v
		}
		for _, c := range categoriesOf(r) {
			if s.fuelConsuming.Has(c) {
				return defaults.FuelTypeOther
			}
		}
		return nil
	})

	if data.Len() == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeAllExcluded, "All generators were excluded",
			map[string]any{"input_rows": capacity.Len(), "excluded": excluded})
	}

	uncategorized := data.Filter(func(r table.Row) bool { return len(categoriesOf(r)) == 0 }).Len()
	s.logger.Info("prepared generator dataset",
		"rows", data.Len(), "input_rows", capacity.Len(), "uncategorized", uncategorized)
	return data, nil
}

// SplitVariable partitions prepared rows by membership of any of their
// categories in variableCategories. An empty list means the default
// {"wind", "solar"}. Variable rows keep their full identifier in tech_class
// and carry the base technology in technology.
func SplitVariable(prepared *table.Table, variableCategories []string, cats classify.Categories) (variable, nonVariable *table.Table) {
	if len(variableCategories) == 0 {
		variableCategories = defaults.VariableCategories
	}
	vset := sets.New(variableCategories...)
	isVariable := func(r table.Row) bool {
		return slices.ContainsFunc(categoriesOf(r), vset.Has)
	}

	variable = prepared.Filter(isVariable).
		WithColumn(ColTechClass, func(r table.Row) any { return r.Get(ColTechnology) }).
		WithColumn(ColTechnology, func(r table.Row) any {
			return classify.BaseTechnology(r.String(ColTechnology), cats)
		}).
		WithColumn(ColIsAggregated, func(table.Row) any { return true })

	nonVariable = prepared.Filter(func(r table.Row) bool { return !isVariable(r) }).
		WithColumn(ColIsAggregated, func(table.Row) any { return false })
	return variable, nonVariable
}

// PrepareGeneratorInputs runs PrepareGeneratorDataset, splits the result with
// SplitVariable and aggregates the variable partition by resource class.
func PrepareGeneratorInputs(
	capacity *table.Table,
	optional OptionalData,
	excluded []string,
	cats classify.Categories,
	variableCategories []string,
	opts ...Option,
) (variable, nonVariable *table.Table, err error) {
	prepared, err := PrepareGeneratorDataset(capacity, optional, excluded, cats, opts...)
	if err != nil {
		return nil, nil, err
	}
	detail, nonVariable := SplitVariable(prepared, variableCategories, cats)
	variable, err = AggregateVariableGenerators(detail)
	if err != nil {
		return nil, nil, err
	}
	newSettings(opts).logger.Info("prepared generator inputs",
		"variable", variable.Len(), "variable_classes", detail.Len(), "non_variable", nonVariable.Len())
	return variable, nonVariable, nil
}

// AggregateVariableGenerators groups rows by (technology, region, category),
// sums capacity and keeps the first non-null value of every other column.
// Every column in AttributeColumns is present in the result.
func AggregateVariableGenerators(t *table.Table) (*table.Table, error) {
	keys := []string{ColTechnology, ColRegion, ColCategory}
	aggs := []table.Agg{{Column: ColCapacity, Func: table.Sum}}
	seen := sets.New(keys...)
	seen.Insert(ColCapacity)

	for _, c := range t.Columns() {
		if !seen.Has(c) {
			aggs = append(aggs, table.Agg{Column: c, Func: table.FirstNonNull})
			seen.Insert(c)
		}
	}
	for _, c := range AttributeColumns {
		if !seen.Has(c) {
			aggs = append(aggs, table.Agg{Column: c, Func: table.FirstNonNull})
			seen.Insert(c)
		}
	}
	out, err := t.GroupBy(keys, aggs...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to aggregate variable generators", err)
	}
	return out, nil
}

func categoriesOf(r table.Row) []string {
	v, _ := r.Get(ColCategories).([]string)
	return v
}

// join left-joins right onto data on the most specific shared key set. A
// failing join is logged and skipped. Columns already present on data keep
// their value and are only filled from right where null.
func (s *settings) join(data *table.Table, name string, right *table.Table) *table.Table {
	if right == nil || right.Len() == 0 {
		return data
	}
	keys := s.sharedKeys(data, right)
	if keys == nil {
		s.logger.Warn("skipping optional dataset without shared keys",
			"dataset", name, "columns", right.Columns())
		return data
	}

	right, err := s.firstPerKey(right, name, keys)
	if err != nil {
		s.logger.Warn("skipping optional dataset after failed join",
			"dataset", name, "keys", keys, "error", err)
		return data
	}
	joined, err := data.LeftJoin(right, keys)
	if err != nil {
		s.logger.Warn("skipping optional dataset after failed join",
			"dataset", name, "keys", keys, "error", err)
		return data
	}

	for _, c := range joined.Columns() {
		base, ok := strings.CutSuffix(c, table.RightSuffix)
		if !ok || !data.HasColumn(base) {
			continue
		}
		joined = joined.WithColumn(base, func(r table.Row) any {
			if v := r.Get(base); v != nil {
				return v
			}
			return r.Get(c)
		}).Drop(c)
	}
	s.logger.Debug("joined optional dataset", "dataset", name, "keys", keys)
	return joined
}

// firstPerKey reduces right to one row per join key, keeping the first
// non-null value of every other column, so a join never multiplies rows.
func (s *settings) firstPerKey(right *table.Table, name string, keys []string) (*table.Table, error) {
	var aggs []table.Agg
	for _, c := range right.Columns() {
		if !slices.Contains(keys, c) {
			aggs = append(aggs, table.Agg{Column: c, Func: table.FirstNonNull})
		}
	}
	reduced, err := right.GroupBy(keys, aggs...)
	if err != nil {
		return nil, err
	}
	if reduced.Len() != right.Len() {
		s.logger.Warn("optional dataset has duplicate keys, keeping first",
			"dataset", name, "keys", keys, "rows", right.Len(), "unique", reduced.Len())
	}
	return reduced, nil
}

func (s *settings) sharedKeys(left, right *table.Table) []string {
	for _, candidate := range s.joinKeys {
		if left.HasColumns(candidate...) && right.HasColumns(candidate...) {
			return candidate
		}
	}
	return nil
}

// consumeEfficiency keeps electricity efficiency rows and pivots them into a
// column of the same name.
func consumeEfficiency(cc *table.Table, s *settings) *table.Table {
	if cc == nil || cc.Len() == 0 {
		return nil
	}
	if !cc.HasColumns(ColTechnology, ColParameter, ColValue) {
		s.logger.Warn("skipping consume characteristics without parameter/value columns",
			"columns", cc.Columns())
		return nil
	}
	kept := cc.Filter(func(r table.Row) bool {
		return r.String(ColParameter) == electricityEfficiencyParameter
	})
	if kept.Len() == 0 {
		return nil
	}

	var index []string
	for _, c := range kept.Columns() {
		if c != ColParameter && c != ColValue {
			index = append(index, c)
		}
	}
	pivoted, err := kept.Pivot(index, ColParameter, ColValue)
	if err != nil {
		s.logger.Warn("skipping consume characteristics after failed pivot", "error", err)
		return nil
	}
	return pivoted
}
