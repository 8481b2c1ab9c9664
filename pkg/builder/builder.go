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
	"log/slog"
	"time"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/config"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/disaggregate"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/logging"
	"github.com/NVIDIA/gridsynth/pkg/network"
	"github.com/NVIDIA/gridsynth/pkg/resolve"
	"github.com/NVIDIA/gridsynth/pkg/store"
)

// Build step names, in execution order.
const (
	StepRegions      = "regions"
	StepGenerators   = "generators"
	StepTransmission = "transmission"
	StepLoads        = "loads"
	StepReserves     = "reserves"
	StepEmissions    = "emissions"
	StepHydroBudgets = "hydro_budgets"
)

// Builder turns the datasets of a run into a network System.
type Builder struct {
	cfg      *config.RunConfig
	settings *config.Settings
	store    *store.Store
	types    classify.TypeMap
	rules    *resolve.RuleSet
	logger   *slog.Logger
	version  string

	breakGens bool
	reference disaggregate.ReferenceSource
}

// StepReport counts what one build step did.
type StepReport struct {
	Name     string        `json:"name" yaml:"name"`
	Created  int           `json:"created" yaml:"created"`
	Skipped  int           `json:"skipped" yaml:"skipped"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result is the outcome of Build.
type Result struct {
	System         *network.System
	Steps          []StepReport
	Disaggregation *disaggregate.Report

	// ModelVersion is the model build recorded in the run folder, when known.
	ModelVersion string
}

// Step returns the report of the named step.
func (r *Result) Step(name string) (StepReport, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepReport{}, false
}

// New returns a Builder. A nil settings uses the built-in defaults.
func New(cfg *config.RunConfig, settings *config.Settings, st *store.Store, opts ...Option) (*Builder, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "run config is nil")
	}
	if st == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "data store is nil")
	}
	if settings == nil {
		var err error
		if settings, err = config.DefaultSettings(); err != nil {
			return nil, err
		}
	}
	types, err := settings.TypeMap()
	if err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:      cfg,
		settings: settings,
		store:    st,
		types:    types,
		rules:    DefaultRules(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = logging.OrDefault(b.logger)
	return b, nil
}

// run carries the state shared by the steps of one Build.
type run struct {
	sys     *network.System
	rctx    *resolve.Context
	year    int
	hasYear bool

	// gens indexes created generators by technology, region and vintage.
	gens map[string][]*network.Generator
}

type step struct {
	name string
	fn   func(context.Context, *run) (StepReport, error)
}

// Build validates the run, then creates regions, generators, transmission,
// loads, reserves, emissions and hydro budgets in that order. Rows that cannot
// be resolved are skipped and counted; a missing required dataset or a step
// that creates nothing from non-empty input stops the build.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	defer func() {
		buildDuration.Observe(time.Since(start).Seconds())
	}()

	weatherYears := b.settings.WeatherYears
	if len(weatherYears) == 0 {
		weatherYears = defaults.WeatherYears
	}
	if err := b.cfg.Validate(b.store.ModeledYears(), weatherYears); err != nil {
		return nil, err
	}

	name := b.cfg.CaseName
	if name == "" {
		name = defaults.SystemName
	}
	r := &run{
		sys:  network.NewSystem(name),
		gens: make(map[string][]*network.Generator),
	}
	r.year, r.hasYear = b.cfg.PrimarySolveYear()
	r.rctx = resolve.NewContext(r.sys,
		resolve.WithCategories(b.settings.TechCategories),
		resolve.WithFuelTypes(b.settings.FuelTypes...),
		resolve.WithLogger(b.logger),
	)

	res := &Result{System: r.sys}
	if v, err := b.store.ModelVersion(); err == nil {
		res.ModelVersion = v.String()
	} else {
		b.logger.Debug("model version unavailable", "error", err)
	}

	b.logger.Info("building system", "system", name, "solve_year", r.year,
		"scenario", b.cfg.Scenario, "model_version", res.ModelVersion)

	steps := []step{
		{StepRegions, b.buildRegions},
		{StepGenerators, b.buildGenerators},
		{StepTransmission, b.buildTransmission},
		{StepLoads, b.buildLoads},
		{StepReserves, b.buildReserves},
		{StepEmissions, b.buildEmissions},
		{StepHydroBudgets, b.buildHydroBudgets},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "build canceled", err)
		}
		stepStart := time.Now()
		rep, err := s.fn(ctx, r)
		rep.Name = s.name
		rep.Duration = time.Since(stepStart)
		buildStepDuration.WithLabelValues(s.name).Observe(rep.Duration.Seconds())
		buildComponentsCreated.WithLabelValues(s.name).Add(float64(rep.Created))
		buildRowsSkipped.WithLabelValues(s.name).Add(float64(rep.Skipped))
		if err != nil {
			b.logger.Error("build step failed", "step", s.name, "code", errors.CodeOf(err), "error", err)
			return nil, err
		}
		b.logger.Info("build step finished", "step", s.name,
			"created", rep.Created, "skipped", rep.Skipped, "duration", rep.Duration.String())
		res.Steps = append(res.Steps, rep)
	}

	if b.breakGens {
		report, err := b.disaggregate(r.sys)
		if err != nil {
			return nil, err
		}
		res.Disaggregation = report
	}

	b.logger.Info("system built", "system", name, "components", r.sys.Len(),
		"duration", time.Since(start).String())
	return res, nil
}

func (b *Builder) disaggregate(sys *network.System) (*disaggregate.Report, error) {
	ref := b.reference
	if ref == nil {
		ref = b.settings.ReferenceUnits
	}
	if ref == nil {
		return nil, errors.New(errors.ErrCodeInputAbsent, "No reference technologies configured for breaking generators")
	}
	opts := []disaggregate.Option{
		disaggregate.WithLogger(b.logger),
		disaggregate.WithVersion(b.version),
		disaggregate.WithSkipCategories(b.settings.NonBreakCategories...),
		disaggregate.WithCapacityThreshold(b.settings.CapacityThreshold),
	}
	return disaggregate.BreakGenerators(sys, ref, opts...)
}
