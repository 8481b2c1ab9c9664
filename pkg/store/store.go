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

package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/gridsynth/pkg/defaults"
	"github.com/NVIDIA/gridsynth/pkg/errors"
	"github.com/NVIDIA/gridsynth/pkg/logging"
	"github.com/NVIDIA/gridsynth/pkg/table"
)

// Store holds the datasets of one run folder.
type Store struct {
	dir     string
	mapping Mapping
	logger  *slog.Logger
	timeout time.Duration
	limit   int

	mu     sync.RWMutex
	tables map[string]*table.Table
}

// Option configures a Store.
type Option func(*Store)

// WithMapping replaces the dataset mapping.
func WithMapping(m Mapping) Option {
	return func(s *Store) { s.mapping = m }
}

// WithFileOverrides replaces the paths of named datasets.
func WithFileOverrides(paths map[string]string) Option {
	return func(s *Store) { s.mapping = s.mapping.WithOverrides(paths) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithTimeout bounds Load.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// WithConcurrency limits the number of files read at once. Zero or less
// means no limit.
func WithConcurrency(n int) Option {
	return func(s *Store) { s.limit = n }
}

// New returns a Store for the run folder dir using the built-in mapping unless
// one is given.
func New(dir string, opts ...Option) (*Store, error) {
	m, err := DefaultMapping()
	if err != nil {
		return nil, err
	}
	s := &Store{
		dir:     dir,
		mapping: m,
		timeout: defaults.StoreLoadTimeout,
		tables:  make(map[string]*table.Table),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDefault(s.logger)
	return s, nil
}

// FromTables returns a Store that serves tables already in memory.
func FromTables(tables map[string]*table.Table) *Store {
	s := &Store{tables: make(map[string]*table.Table, len(tables)), logger: slog.Default()}
	for name, t := range tables {
		if t != nil {
			s.tables[name] = t
		}
	}
	return s
}

// Dir returns the run folder.
func (s *Store) Dir() string { return s.dir }

// Load reads every mapped dataset concurrently. A missing optional file is
// skipped; a missing required file fails with ErrCodeInputAbsent.
func (s *Store) Load(ctx context.Context) error {
	if s.dir == "" {
		return errors.New(errors.ErrCodeInputAbsent, "run folder not specified")
	}
	if info, err := os.Stat(s.dir); err != nil || !info.IsDir() {
		return errors.NewWithContext(errors.ErrCodeInputAbsent, "run folder does not exist",
			map[string]any{"path": s.dir})
	}

	start := time.Now()
	defer func() {
		storeLoadDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}
	for _, f := range s.mapping {
		g.Go(func() error {
			return s.loadOne(gctx, f)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("loaded run folder", "dir", s.dir, "datasets", len(s.Names()),
		"duration", time.Since(start).String())
	return nil
}

func (s *Store) loadOne(ctx context.Context, f FileSpec) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "loading canceled", err)
	}
	path := s.resolve(f.Path)
	if _, err := os.Stat(path); err != nil {
		if f.Optional {
			storeDatasetsTotal.WithLabelValues("missing").Inc()
			s.logger.Debug("optional dataset not found", "dataset", f.Name, "path", path)
			return nil
		}
		storeDatasetsTotal.WithLabelValues("error").Inc()
		return errors.WrapWithContext(errors.ErrCodeInputAbsent, "required dataset not found", err,
			map[string]any{"dataset": f.Name, "path": path})
	}

	t, err := table.ReadCSVFile(path, f.CSVOptions())
	if err != nil {
		storeDatasetsTotal.WithLabelValues("error").Inc()
		return errors.WrapWithContext(errors.ErrCodeInvalidInput, "failed to read dataset", err,
			map[string]any{"dataset": f.Name, "path": path})
	}

	s.mu.Lock()
	s.tables[f.Name] = t
	s.mu.Unlock()

	storeDatasetsTotal.WithLabelValues("loaded").Inc()
	s.logger.Debug("loaded dataset", "dataset", f.Name, "rows", t.Len(), "columns", t.Columns())
	return nil
}

func (s *Store) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.dir, p)
}

// Table returns the named dataset.
func (s *Store) Table(name string) (*table.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	return t, ok
}

// Names returns the loaded dataset names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.tables))
	for name := range s.tables {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// ModeledYears returns the distinct years of the capacity dataset, sorted.
func (s *Store) ModeledYears() []int {
	t, ok := s.Table(DatasetCapacity)
	if !ok || !t.HasColumn("year") {
		return nil
	}
	var years []int
	for _, r := range t.Rows() {
		if y, ok := r.Float("year"); ok && !slices.Contains(years, int(y)) {
			years = append(years, int(y))
		}
	}
	slices.Sort(years)
	return years
}
