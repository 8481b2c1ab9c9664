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

package builder

import (
	"context"
	"fmt"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/dataset"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/resolve"
	"github.com/NVIDIA/gridsynth/pkg/store"
	"github.com/NVIDIA/gridsynth/pkg/table"
	"github.com/NVIDIA/gridsynth/pkg/timeseries"
)

const (
	colYear      = "year"
	colDirection = "direction"
	colRegion    = "region"
	colLoad      = "max_active_power"
	extTechClass = "tech_class"
)

func (b *Builder) buildRegions(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	h, ok := b.store.Table(store.DatasetHierarchy)
	if !ok || h.Len() == 0 {
		return rep, errors.New(errors.ErrCodeInputAbsent, "No hierarchy data")
	}
	rows := rowsOf(h)

	results, err := b.apply(network.KindRegion, RuleRegion, r, rows)
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			rep.Skipped++
			continue
		}
		name := value[string](res.Values, fieldName)
		if _, exists := r.sys.Get(network.KindRegion, name); exists {
			continue
		}
		reg := network.NewRegion(name)
		reg.Description = value[string](res.Values, fieldDescription)
		reg.TransmissionRegion = value[string](res.Values, "transmission_region")
		reg.Interconnect = value[string](res.Values, "interconnect")
		reg.State = value[string](res.Values, "state")
		reg.Country = value[string](res.Values, "country")
		b.add(r, reg, &rep)
	}
	if rep.Created == 0 {
		return rep, errors.NewWithContext(errors.ErrCodeAllExcluded, "No regions could be created",
			map[string]any{"rows": h.Len()})
	}

	// Reserve regions are optional; a hierarchy without transmission
	// regions yields none.
	results, err = b.apply(network.KindReserveRegion, RuleReserveRegion, r, rows)
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			continue
		}
		name := value[string](res.Values, fieldName)
		if _, exists := r.sys.Get(network.KindReserveRegion, name); exists {
			continue
		}
		b.add(r, network.NewReserveRegion(name), &rep)
	}
	return rep, nil
}

func (b *Builder) buildGenerators(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	capacity, _ := b.store.Table(store.DatasetCapacity)
	cats := b.settings.TechCategories

	prepared, err := dataset.PrepareGeneratorDataset(
		r.forYear(capacity),
		b.optionalData(r),
		b.settings.ExcludedTechs,
		cats,
		dataset.WithLogger(b.logger),
		dataset.WithFuelConsumingCategories(b.settings.FuelConsumingCategories...),
	)
	if err != nil {
		return rep, err
	}
	detail, nonVariable := dataset.SplitVariable(prepared, b.settings.VariableCategories, cats)
	variable, err := dataset.AggregateVariableGenerators(detail)
	if err != nil {
		return rep, err
	}

	aggregated := make(map[string]*network.Generator)
	for _, t := range []*table.Table{nonVariable, variable} {
		for _, row := range t.Rows() {
			g, err := b.generator(r, row)
			if err != nil {
				rep.Skipped++
				b.logger.Debug("skipping generator row", "technology", row.String(dataset.ColTechnology),
					"region", row.String(dataset.ColRegion), "error", err)
				continue
			}
			if !b.add(r, g, &rep) {
				continue
			}
			key := genKey(g.Technology, g.RegionName(), g.Vintage)
			r.gens[key] = append(r.gens[key], g)
			if g.IsAggregated {
				aggregated[classKey(row)] = g
			}
		}
	}
	if rep.Created == 0 {
		return rep, errors.NewWithContext(errors.ErrCodeAllExcluded, "No generators could be created",
			map[string]any{"rows": prepared.Len(), "skipped": rep.Skipped})
	}

	for _, row := range detail.Rows() {
		parent, ok := aggregated[classKey(row)]
		if !ok {
			continue
		}
		techClass := row.String(dataset.ColTechClass)
		name, err := resolve.GeneratorName(r.rctx, resolve.MapRow{
			"technology": techClass,
			"vintage":    row.Get(dataset.ColVintage),
			"region":     row.Get(dataset.ColRegion),
		})
		if err != nil {
			rep.Skipped++
			continue
		}
		rc := network.NewResourceClass(name, parent)
		rc.Class = techClass
		if c, ok := row.Float(dataset.ColCapacity); ok {
			rc.Capacity = c
		}
		b.add(r, rc, &rep)
	}
	return rep, nil
}

// generator classifies the row's technology, resolves the fields of the rule
// for that class and assembles the component.
func (b *Builder) generator(r *run, row table.Row) (*network.Generator, error) {
	class, err := classify.GeneratorClass(row.String(dataset.ColTechnology), b.settings.TechCategories, b.types)
	if err != nil {
		return nil, err
	}
	rule, err := b.rules.Select(network.KindGenerator, string(class))
	if err != nil {
		return nil, err
	}
	res := resolve.Apply(rule, r.rctx, []resolve.Row{row})[0]
	if !res.OK() {
		return nil, res.Err
	}
	v := res.Values

	g := network.NewGenerator(value[string](v, fieldName), class)
	g.Technology = value[string](v, fieldTechnology)
	g.Region = value[*network.Region](v, fieldRegion)
	g.Capacity = value[float64](v, fieldCapacity)
	g.Vintage = value[string](v, fieldVintage)
	g.Category = value[string](v, fieldCategory)
	g.FuelType = value[string](v, fieldFuelType)
	g.HeatRate = value[*float64](v, "heat_rate")
	g.ForcedOutageRate = value[*float64](v, "forced_outage_rate")
	g.PlannedOutageRate = value[*float64](v, "planned_outage_rate")
	g.FuelPrice = value[*float64](v, "fuel_price")
	g.VOMCost = value[*float64](v, "vom_cost")
	g.ElectricityEfficiency = value[*float64](v, "electricity_efficiency")
	if d, ok := v["storage_duration"].(float64); ok {
		g.StorageDuration = ptr.To(d)
	}
	if e, ok := v["round_trip_efficiency"].(float64); ok {
		g.RoundTripEfficiency = ptr.To(e)
	}
	if d, ok := v["dispatchable"].(bool); ok {
		g.Dispatchable = ptr.To(d)
	}
	if agg, _ := row.Get(dataset.ColIsAggregated).(bool); agg {
		g.IsAggregated = true
		if tc := row.String(dataset.ColTechClass); tc != "" {
			g.Ext.SetAny(extTechClass, tc)
		}
	}
	return g, nil
}

func (b *Builder) optionalData(r *run) dataset.OptionalData {
	get := func(name string) *table.Table {
		t, _ := b.store.Table(name)
		return r.forYear(t)
	}
	od := dataset.OptionalData{
		FuelMap:                get(store.DatasetFuelMap),
		StorageDuration:        get(store.DatasetStorageDuration),
		ConsumeCharacteristics: get(store.DatasetConsumeCharacteristics),
	}
	for _, name := range store.ExtraGeneratorDatasets {
		if t := get(name); t != nil {
			od.Extra = append(od.Extra, dataset.NamedTable{Name: name, Table: t})
		}
	}
	return od
}

func (b *Builder) buildTransmission(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	t, ok := b.store.Table(store.DatasetTransmission)
	if !ok || t.Len() == 0 {
		b.logger.Info("no transmission data")
		return rep, nil
	}
	rows := rowsOf(r.forYear(t))

	results, err := b.apply(network.KindInterface, RuleInterface, r, rows)
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			rep.Skipped++
			continue
		}
		name := value[string](res.Values, fieldName)
		if _, exists := r.sys.Get(network.KindInterface, name); exists {
			continue
		}
		from := value[*network.Region](res.Values, fieldFrom)
		to := value[*network.Region](res.Values, fieldTo)
		if from.Name > to.Name {
			from, to = to, from
		}
		b.add(r, network.NewInterface(name, from, to), &rep)
	}

	results, err = b.apply(network.KindTransmissionLine, RuleTransmissionLine, r, rows)
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			rep.Skipped++
			continue
		}
		iface := value[*network.Interface](res.Values, fieldInterface)
		line := network.NewTransmissionLine(value[string](res.Values, fieldName), iface)
		line.From = value[*network.Region](res.Values, fieldFrom)
		line.To = value[*network.Region](res.Values, fieldTo)
		line.LineType = value[string](res.Values, fieldLineType)
		line.Flow = value[network.FlowLimits](res.Values, fieldFlow)
		line.Losses = value[*float64](res.Values, "losses")
		if !b.add(r, line, &rep) {
			continue
		}
		if line.From == iface.From {
			iface.Flow.FromTo += line.Flow.FromTo
		} else {
			iface.Flow.ToFrom += line.Flow.FromTo
		}
	}
	return rep, nil
}

func (b *Builder) buildLoads(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	t, ok := b.store.Table(store.DatasetLoad)
	if !ok || t.Len() == 0 {
		b.logger.Info("no load data")
		return rep, nil
	}
	t = r.forYear(t)
	if t.HasColumns(colRegion, colLoad) {
		grouped, err := t.GroupBy([]string{colRegion}, table.Agg{Column: colLoad, Func: table.Sum})
		if err != nil {
			return rep, errors.Wrap(errors.ErrCodeInvalidInput, "failed to aggregate load", err)
		}
		t = grouped
	}

	results, err := b.apply(network.KindDemand, RuleDemand, r, rowsOf(t))
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			rep.Skipped++
			continue
		}
		d := network.NewDemand(value[string](res.Values, fieldName), value[*network.Region](res.Values, fieldRegion))
		d.MaxActivePower = value[float64](res.Values, colLoad)
		b.add(r, d, &rep)
	}
	return rep, nil
}

func (b *Builder) buildReserves(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	t, ok := b.store.Table(store.DatasetReserves)
	if !ok || t.Len() == 0 {
		b.logger.Info("no reserve data")
		return rep, nil
	}
	t = r.forYear(t)
	if !t.HasColumn(colDirection) {
		t = t.WithColumn(colDirection, func(table.Row) any { return string(network.DirectionUp) })
	}

	results, err := b.apply(network.KindReserve, RuleReserve, r, rowsOf(t))
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			rep.Skipped++
			continue
		}
		rsv := network.NewReserve(value[string](res.Values, fieldName))
		rsv.Region = value[*network.ReserveRegion](res.Values, fieldRegion)
		rsv.ReserveType = value[network.ReserveType](res.Values, "reserve_type")
		rsv.Direction = value[network.ReserveDirection](res.Values, "direction")
		rsv.TimeFrame = value[*float64](res.Values, "time_frame")
		rsv.Duration = value[*float64](res.Values, "duration")
		b.add(r, rsv, &rep)
	}
	return rep, nil
}

// buildEmissions attaches one emission record per row to every generator
// created in this build with the row's technology, region and vintage.
func (b *Builder) buildEmissions(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	t, ok := b.store.Table(store.DatasetEmissionRates)
	if !ok || t.Len() == 0 {
		b.logger.Info("no emission data")
		return rep, nil
	}

	results, err := b.apply(network.KindEmission, RuleEmission, r, rowsOf(r.forYear(t)))
	if err != nil {
		return rep, err
	}
	for _, res := range results {
		if !res.OK() {
			rep.Skipped++
			continue
		}
		v := res.Values
		key := genKey(value[string](v, fieldTechnology), value[string](v, fieldRegion), value[string](v, fieldVintage))
		gens := r.gens[key]
		if len(gens) == 0 {
			rep.Skipped++
			b.logger.Debug("no generator for emission rate", "key", key)
			continue
		}
		e := network.NewEmission(
			value[network.EmissionType](v, "type"),
			value[network.EmissionSource](v, "source"),
			value[float64](v, "rate"),
		)
		for _, g := range gens {
			if err := r.sys.AddSupplementalAttribute(g, e); err != nil {
				return rep, err
			}
		}
		rep.Created++
	}
	return rep, nil
}

func (b *Builder) buildHydroBudgets(_ context.Context, r *run) (StepReport, error) {
	var rep StepReport
	cf, ok := b.store.Table(store.DatasetHydroCF)
	if !ok || cf.Len() == 0 {
		b.logger.Info("no hydro capacity factor data")
		return rep, nil
	}

	for _, g := range r.sys.Generators() {
		if g.Class != network.ClassHydro {
			continue
		}
		budgets, err := timeseries.HydroBudgets(g, cf, b.cfg.SolveYears)
		if err != nil {
			b.logger.Warn("skipping hydro budgets", "error", err)
			return rep, nil
		}
		if len(budgets) == 0 {
			rep.Skipped++
			continue
		}
		for _, bud := range budgets {
			ts := bud.Series()
			if len(budgets) > 1 {
				ts.Name = fmt.Sprintf("%s_%d", ts.Name, bud.Year)
			}
			if err := r.sys.AddTimeSeries(g, ts); err != nil {
				return rep, err
			}
			rep.Created++
		}
	}
	return rep, nil
}

// apply selects the named rule for target and applies it to rows.
func (b *Builder) apply(target network.Kind, name string, r *run, rows []resolve.Row) ([]resolve.Result, error) {
	rule, err := b.rules.Select(target, name)
	if err != nil {
		return nil, err
	}
	results := resolve.Apply(rule, r.rctx, rows)
	for _, res := range results {
		if !res.OK() {
			b.logger.Debug("skipping row", "rule", rule.Name, "row", res.Index, "error", res.Err)
		}
	}
	return results, nil
}

// add inserts c and reports whether it was added. A name conflict skips the
// component.
func (b *Builder) add(r *run, c network.Component, rep *StepReport) bool {
	if err := r.sys.Add(c); err != nil {
		rep.Skipped++
		b.logger.Warn("skipping component", "kind", c.Kind().String(), "name", c.Base().Name, "error", err)
		return false
	}
	rep.Created++
	return true
}

// forYear keeps the rows of the primary solve year. Tables without a year
// column are returned unchanged.
func (r *run) forYear(t *table.Table) *table.Table {
	if t == nil || !r.hasYear || !t.HasColumn(colYear) {
		return t
	}
	return t.Filter(func(row table.Row) bool {
		y, ok := row.Float(colYear)
		return ok && int(y) == r.year
	})
}

func rowsOf(t *table.Table) []resolve.Row {
	rows := t.Rows()
	out := make([]resolve.Row, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out
}

func value[T any](values map[string]any, key string) T {
	v, _ := values[key].(T)
	return v
}

func genKey(tech, region, vintage string) string {
	if vintage == "" {
		vintage = defaults.MissingVintage
	}
	return tech + "|" + region + "|" + vintage
}

func classKey(row table.Row) string {
	return row.String(dataset.ColTechnology) + "|" + row.String(dataset.ColRegion) + "|" + row.String(dataset.ColCategory)
}
