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

package network

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// SingleTimeSeries is a fixed-resolution series attached to a component.
type SingleTimeSeries struct {
	Name        string        `json:"name" yaml:"name"`
	InitialTime time.Time     `json:"initial_time" yaml:"initial_time"`
	Resolution  time.Duration `json:"resolution" yaml:"resolution"`
	Data        []float64     `json:"data" yaml:"data"`
}

// Len returns the number of points.
func (ts *SingleTimeSeries) Len() int { return len(ts.Data) }

type componentKey struct {
	kind Kind
	name string
}

// System is the in-memory network model. Components keep insertion order.
// All methods are safe for concurrent use.
type System struct {
	Name string

	mu         sync.RWMutex
	order      []Component
	byKey      map[componentKey]Component
	byID       map[uuid.UUID]Component
	attributes map[uuid.UUID]SupplementalAttribute
	attrLinks  map[uuid.UUID][]uuid.UUID // component -> attributes
	attrUsers  map[uuid.UUID]int         // attribute -> reference count
	series     map[uuid.UUID][]*SingleTimeSeries
}

// NewSystem creates an empty System.
func NewSystem(name string) *System {
	return &System{
		Name:       name,
		byKey:      make(map[componentKey]Component),
		byID:       make(map[uuid.UUID]Component),
		attributes: make(map[uuid.UUID]SupplementalAttribute),
		attrLinks:  make(map[uuid.UUID][]uuid.UUID),
		attrUsers:  make(map[uuid.UUID]int),
		series:     make(map[uuid.UUID][]*SingleTimeSeries),
	}
}

// Add inserts components in order. A component whose name is already used by
// another component of the same kind is rejected with ErrCodeConflict; the
// components before it stay inserted.
func (s *System) Add(components ...Component) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range components {
		if c == nil {
			return errors.New(errors.ErrCodeInvalidInput, "cannot add nil component")
		}
		m := c.Base()
		if m.Name == "" {
			return errors.Newf(errors.ErrCodeInvalidInput, "%s has an empty name", c.Kind())
		}
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		key := componentKey{c.Kind(), m.Name}
		if _, ok := s.byKey[key]; ok {
			return errors.NewWithContext(errors.ErrCodeConflict, "component already exists",
				map[string]any{"kind": c.Kind().String(), "name": m.Name})
		}
		if _, ok := s.byID[m.ID]; ok {
			return errors.NewWithContext(errors.ErrCodeConflict, "component UUID already in use",
				map[string]any{"kind": c.Kind().String(), "uuid": m.ID.String()})
		}
		s.byKey[key] = c
		s.byID[m.ID] = c
		s.order = append(s.order, c)
	}
	return nil
}

// Remove deletes a component together with its attribute links and time
// series. Attributes no longer referenced by any component are dropped.
func (s *System) Remove(c Component) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := c.Base()
	if s.byID[m.ID] != c {
		return errors.NewWithContext(errors.ErrCodeNotFound, "component not in system",
			map[string]any{"kind": c.Kind().String(), "name": m.Name})
	}

	delete(s.byKey, componentKey{c.Kind(), m.Name})
	delete(s.byID, m.ID)
	s.order = slices.DeleteFunc(s.order, func(o Component) bool { return o == c })

	for _, aid := range s.attrLinks[m.ID] {
		s.attrUsers[aid]--
		if s.attrUsers[aid] <= 0 {
			delete(s.attrUsers, aid)
			delete(s.attributes, aid)
		}
	}
	delete(s.attrLinks, m.ID)
	delete(s.series, m.ID)
	return nil
}

// Get returns the component of the given kind and name.
func (s *System) Get(kind Kind, name string) (Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byKey[componentKey{kind, name}]
	return c, ok
}

// Lookup returns the component of type T with the given name.
func Lookup[T Component](s *System, name string) (T, bool) {
	var zero T
	c, ok := s.Get(zero.Kind(), name)
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}

// Components returns the components accepted by filter, in insertion order.
// A nil filter accepts everything.
func (s *System) Components(filter func(Component) bool) []Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Component, 0, len(s.order))
	for _, c := range s.order {
		if filter == nil || filter(c) {
			out = append(out, c)
		}
	}
	return out
}

// ComponentsOf returns every component of type T in insertion order.
func ComponentsOf[T Component](s *System) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, c := range s.order {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Generators returns every generator in insertion order.
func (s *System) Generators() []*Generator { return ComponentsOf[*Generator](s) }

// Regions returns every region in insertion order.
func (s *System) Regions() []*Region { return ComponentsOf[*Region](s) }

// Len returns the number of components.
func (s *System) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Counts returns the number of components per kind.
func (s *System) Counts() map[Kind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Kind]int)
	for _, c := range s.order {
		out[c.Kind()]++
	}
	return out
}

// AddSupplementalAttribute attaches a to c. The same attribute may be
// attached to many components; attaching twice to one component is a no-op.
func (s *System) AddSupplementalAttribute(c Component, a SupplementalAttribute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cid := c.Base().ID
	if s.byID[cid] != c {
		return errors.Newf(errors.ErrCodeNotFound, "%s %q not in system", c.Kind(), c.Base().Name)
	}
	aid := a.AttributeID()
	if slices.Contains(s.attrLinks[cid], aid) {
		return nil
	}
	s.attributes[aid] = a
	s.attrLinks[cid] = append(s.attrLinks[cid], aid)
	s.attrUsers[aid]++
	return nil
}

// SupplementalAttributes returns the attributes attached to c in attach order.
func (s *System) SupplementalAttributes(c Component) []SupplementalAttribute {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := s.attrLinks[c.Base().ID]
	out := make([]SupplementalAttribute, 0, len(links))
	for _, aid := range links {
		out = append(out, s.attributes[aid])
	}
	return out
}

// AttributeUsers returns the number of components referencing the attribute.
func (s *System) AttributeUsers(a SupplementalAttribute) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attrUsers[a.AttributeID()]
}

// AddTimeSeries attaches ts to c. Names are unique per component.
func (s *System) AddTimeSeries(c Component, ts *SingleTimeSeries) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cid := c.Base().ID
	if s.byID[cid] != c {
		return errors.Newf(errors.ErrCodeNotFound, "%s %q not in system", c.Kind(), c.Base().Name)
	}
	for _, existing := range s.series[cid] {
		if existing.Name == ts.Name {
			return errors.NewWithContext(errors.ErrCodeConflict, "time series already attached",
				map[string]any{"component": c.Base().Name, "series": ts.Name})
		}
	}
	s.series[cid] = append(s.series[cid], ts)
	return nil
}

// TimeSeries returns the series attached to c in attach order.
func (s *System) TimeSeries(c Component) []*SingleTimeSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.series[c.Base().ID])
}

// HasTimeSeries reports whether c has at least one attached series.
func (s *System) HasTimeSeries(c Component) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.series[c.Base().ID]) > 0
}
