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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/gridsynth/pkg/builder"
	"github.com/NVIDIA/gridsynth/pkg/config"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/disaggregate"
	"github.com/NVIDIA/gridsynth/pkg/store"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build a network from a capacity-expansion run folder",
		Description: `Loads the datasets of a run folder and builds the network for the primary
solve year. The result is summarized as a NetworkSummary document with
component counts and installed capacity by category.

Large generators can be split into units with --break-gens. Unit sizes come
from --reference, or from reference_units in the merged defaults.

Generator extension attributes such as tech_class are listed under
"extensions" when selected with --ext patterns.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "run",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the run folder",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a run configuration file (JSON or YAML)",
			},
			&cli.IntSliceFlag{
				Name:  "year",
				Usage: "Solve year; overrides the configuration (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "break-gens",
				Usage: "Split generators larger than their reference unit size",
			},
			&cli.StringFlag{
				Name:  "reference",
				Usage: "Path to reference unit sizes (JSON or YAML)",
			},
			&cli.FloatFlag{
				Name:  "threshold",
				Usage: "Minimum remainder capacity in MW kept as an extra unit",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "Report generator extension attributes matching a key pattern, e.g. 'tech_*' (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "ext-exclude",
				Usage: "Drop reported extension attributes matching a key pattern (repeatable)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIBuildTimeout,
				Usage: "Overall build timeout",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := runConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			settings, err := cfg.Settings()
			if err != nil {
				return fmt.Errorf("failed to load defaults: %w", err)
			}
			if cmd.IsSet("threshold") {
				settings.CapacityThreshold = cmd.Float("threshold")
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			st, err := loadStore(ctx, cmd.String("run"), cfg)
			if err != nil {
				return err
			}

			opts := []builder.Option{
				builder.WithVersion(version),
				builder.WithLogger(slog.Default()),
			}
			if cmd.Bool("break-gens") {
				var ref disaggregate.ReferenceSource
				if p := cmd.String("reference"); p != "" {
					ref = p
				}
				opts = append(opts, builder.WithBreakGenerators(ref))
			}

			b, err := builder.New(cfg, settings, st, opts...)
			if err != nil {
				return err
			}
			res, err := b.Build(ctx)
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			summary := builder.Summarize(res, version,
				builder.WithExtensions(cmd.StringSlice("ext"), cmd.StringSlice("ext-exclude")))
			return writeDocument(ctx, cmd, outFormat, summary)
		},
	}
}

// runConfigFromCmd loads --config, or starts from an empty configuration,
// then applies command-line overrides.
func runConfigFromCmd(cmd *cli.Command) (*config.RunConfig, error) {
	cfg := config.New()
	if p := cmd.String("config"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return nil, fmt.Errorf("failed to load run config from %q: %w", p, err)
		}
		cfg = loaded
	}
	if years := cmd.IntSlice("year"); len(years) > 0 {
		cfg.SolveYears = config.Years(years)
	}
	return cfg, nil
}

// loadStore reads the run folder using the configured file mapping and
// per-dataset path overrides.
func loadStore(ctx context.Context, dir string, cfg *config.RunConfig) (*store.Store, error) {
	opts := []store.Option{
		store.WithLogger(slog.Default()),
		store.WithFileOverrides(cfg.FileOverrides),
	}
	if cfg.FileMappingPath != "" {
		m, err := store.LoadMapping(cfg.FileMappingPath)
		if err != nil {
			return nil, err
		}
		if len(m) > 0 {
			opts = append([]store.Option{store.WithMapping(m)}, opts...)
		}
	}

	st, err := store.New(dir, opts...)
	if err != nil {
		return nil, err
	}
	if err := st.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load run folder %q: %w", dir, err)
	}
	return st, nil
}
