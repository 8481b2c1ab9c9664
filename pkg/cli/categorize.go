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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/config"
	"github.com/NVIDIA/gridsynth/pkg/header"
)

// Categorization is the document printed by the categorize command.
type Categorization struct {
	header.Header `json:",inline" yaml:",inline"`

	Technologies []TechnologyMatch `json:"technologies" yaml:"technologies"`
}

// TechnologyMatch lists the categories one technology belongs to.
type TechnologyMatch struct {
	Technology string   `json:"technology" yaml:"technology"`
	Base       string   `json:"base" yaml:"base"`
	Categories []string `json:"categories" yaml:"categories"`
	Class      string   `json:"class,omitempty" yaml:"class,omitempty"`
}

func categorizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "categorize",
		Usage:     "Show the categories technologies belong to",
		ArgsUsage: "TECH [TECH...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "categories",
				Usage: "Path to a technology categories file (default: built-in categories)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			techs := cmd.Args().Slice()
			if len(techs) == 0 {
				return fmt.Errorf("at least one technology is required")
			}

			settings, err := config.DefaultSettings()
			if err != nil {
				return err
			}
			cats := settings.TechCategories
			if p := cmd.String("categories"); p != "" {
				if cats, err = classify.LoadCategories(p); err != nil {
					return fmt.Errorf("failed to load categories from %q: %w", p, err)
				}
			}
			types, err := settings.TypeMap()
			if err != nil {
				return err
			}

			doc, err := categorize(techs, cats, types)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, outFormat, doc)
		},
	}
}

// categorize matches each technology against cats. The generator class is
// filled when one of the matched categories maps to a type.
func categorize(techs []string, cats classify.Categories, types classify.TypeMap) (*Categorization, error) {
	doc := &Categorization{Technologies: make([]TechnologyMatch, 0, len(techs))}
	doc.Init(header.KindCategorization, header.APIVersion, version)
	for _, tech := range techs {
		matched, err := classify.TechnologyCategories(tech, cats)
		if err != nil {
			return nil, err
		}
		m := TechnologyMatch{
			Technology: tech,
			Base:       classify.BaseTechnology(tech, cats),
			Categories: matched,
		}
		if class, err := classify.GeneratorClass(tech, cats, types); err == nil {
			m.Class = string(class)
		}
		doc.Technologies = append(doc.Technologies, m)
	}
	return doc, nil
}
