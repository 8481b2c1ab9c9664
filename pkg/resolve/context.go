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
	"log/slog"

	"github.com/NVIDIA/gridsynth/pkg/classify"
	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/logging"
	"github.com/NVIDIA/gridsynth/pkg/network"
)

// Context carries what resolvers need beyond the row itself.
type Context struct {
	System     *network.System
	Categories classify.Categories
	Logger     *slog.Logger

	fuels classify.Category
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithCategories sets the technology categories used by IsDispatchable.
func WithCategories(cats classify.Categories) ContextOption {
	return func(c *Context) { c.Categories = cats }
}

// WithFuelTypes replaces the recognized fuel names.
func WithFuelTypes(names ...string) ContextOption {
	return func(c *Context) { c.fuels = classify.NewListCategory("fuel_types", names...) }
}

// WithLogger sets the logger used by Apply.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) { c.Logger = l }
}

// NewContext returns a Context over sys. sys may be nil for resolvers that do
// not look components up.
func NewContext(sys *network.System, opts ...ContextOption) *Context {
	c := &Context{
		System: sys,
		fuels:  classify.NewListCategory("fuel_types", defaults.FuelTypes...),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Logger = logging.OrDefault(c.Logger)
	return c
}

// FuelTypes returns the recognized fuel names.
func (c *Context) FuelTypes() []string {
	return c.fuels.List
}

func (c *Context) logger() *slog.Logger {
	if c == nil {
		return slog.Default()
	}
	return logging.OrDefault(c.Logger)
}
