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
	"github.com/google/uuid"

	"github.com/NVIDIA/gridsynth/pkg/attr"
)

// Component is any named element of a System.
type Component interface {
	Kind() Kind
	Base() *Meta
}

// Meta is embedded by every component.
type Meta struct {
	Name string    `json:"name" yaml:"name"`
	ID   uuid.UUID `json:"uuid" yaml:"uuid"`
	Ext  attr.Ext  `json:"ext,omitzero" yaml:"ext,omitempty"`
}

// Base returns the embedded metadata.
func (m *Meta) Base() *Meta { return m }

// ComponentName returns the component name.
func (m *Meta) ComponentName() string { return m.Name }

func newMeta(name string) Meta {
	return Meta{Name: name, ID: uuid.New()}
}

// Region is a model balancing area.
type Region struct {
	Meta
	Description        string `json:"description,omitempty" yaml:"description,omitempty"`
	TransmissionRegion string `json:"transmission_region,omitempty" yaml:"transmission_region,omitempty"`
	Interconnect       string `json:"interconnect,omitempty" yaml:"interconnect,omitempty"`
	State              string `json:"state,omitempty" yaml:"state,omitempty"`
	Country            string `json:"country,omitempty" yaml:"country,omitempty"`
}

// NewRegion creates a Region with a fresh UUID.
func NewRegion(name string) *Region { return &Region{Meta: newMeta(name)} }

// Kind implements Component.
func (*Region) Kind() Kind { return KindRegion }

// ReserveRegion groups regions that share reserve requirements.
type ReserveRegion struct {
	Meta
}

// NewReserveRegion creates a ReserveRegion with a fresh UUID.
func NewReserveRegion(name string) *ReserveRegion { return &ReserveRegion{Meta: newMeta(name)} }

// Kind implements Component.
func (*ReserveRegion) Kind() Kind { return KindReserveRegion }

// Generator is a generation, storage or consuming asset.
type Generator struct {
	Meta
	Class        GeneratorClass `json:"class" yaml:"class"`
	Technology   string         `json:"technology" yaml:"technology"`
	Region       *Region        `json:"-" yaml:"-"`
	Category     string         `json:"category,omitempty" yaml:"category,omitempty"`
	Capacity     float64        `json:"capacity" yaml:"capacity"`
	Vintage      string         `json:"vintage,omitempty" yaml:"vintage,omitempty"`
	FuelType     string         `json:"fuel_type,omitempty" yaml:"fuel_type,omitempty"`
	IsAggregated bool           `json:"is_aggregated,omitempty" yaml:"is_aggregated,omitempty"`

	HeatRate              *float64 `json:"heat_rate,omitempty" yaml:"heat_rate,omitempty"`
	ForcedOutageRate      *float64 `json:"forced_outage_rate,omitempty" yaml:"forced_outage_rate,omitempty"`
	PlannedOutageRate     *float64 `json:"planned_outage_rate,omitempty" yaml:"planned_outage_rate,omitempty"`
	FuelPrice             *float64 `json:"fuel_price,omitempty" yaml:"fuel_price,omitempty"`
	VOMCost               *float64 `json:"vom_cost,omitempty" yaml:"vom_cost,omitempty"`
	StorageDuration       *float64 `json:"storage_duration,omitempty" yaml:"storage_duration,omitempty"`
	RoundTripEfficiency   *float64 `json:"round_trip_efficiency,omitempty" yaml:"round_trip_efficiency,omitempty"`
	ElectricityEfficiency *float64 `json:"electricity_efficiency,omitempty" yaml:"electricity_efficiency,omitempty"`
	Dispatchable          *bool    `json:"dispatchable,omitempty" yaml:"dispatchable,omitempty"`
}

// NewGenerator creates a Generator with a fresh UUID.
func NewGenerator(name string, class GeneratorClass) *Generator {
	return &Generator{Meta: newMeta(name), Class: class}
}

// Kind implements Component.
func (*Generator) Kind() Kind { return KindGenerator }

// RegionName returns the name of the referenced region, or "".
func (g *Generator) RegionName() string {
	if g.Region == nil {
		return ""
	}
	return g.Region.Name
}

// Clone returns a copy of g with a new name, capacity and UUID. Optional
// values are copied, not shared; the region reference is shared.
func (g *Generator) Clone(name string, capacity float64) *Generator {
	c := *g
	c.Meta = Meta{Name: name, ID: uuid.New(), Ext: g.Ext.Clone()}
	c.Capacity = capacity
	c.HeatRate = clonePtr(g.HeatRate)
	c.ForcedOutageRate = clonePtr(g.ForcedOutageRate)
	c.PlannedOutageRate = clonePtr(g.PlannedOutageRate)
	c.FuelPrice = clonePtr(g.FuelPrice)
	c.VOMCost = clonePtr(g.VOMCost)
	c.StorageDuration = clonePtr(g.StorageDuration)
	c.RoundTripEfficiency = clonePtr(g.RoundTripEfficiency)
	c.ElectricityEfficiency = clonePtr(g.ElectricityEfficiency)
	c.Dispatchable = clonePtr(g.Dispatchable)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Interface is the aggregate transfer path between two regions.
type Interface struct {
	Meta
	From *Region    `json:"-" yaml:"-"`
	To   *Region    `json:"-" yaml:"-"`
	Flow FlowLimits `json:"flow" yaml:"flow"`
}

// NewInterface creates an Interface with a fresh UUID.
func NewInterface(name string, from, to *Region) *Interface {
	return &Interface{Meta: newMeta(name), From: from, To: to}
}

// Kind implements Component.
func (*Interface) Kind() Kind { return KindInterface }

// TransmissionLine is a line of one type (ac, dc, ...) on an interface.
type TransmissionLine struct {
	Meta
	Interface *Interface `json:"-" yaml:"-"`
	From      *Region    `json:"-" yaml:"-"`
	To        *Region    `json:"-" yaml:"-"`
	LineType  string     `json:"line_type" yaml:"line_type"`
	Flow      FlowLimits `json:"flow" yaml:"flow"`
	Losses    *float64   `json:"losses,omitempty" yaml:"losses,omitempty"`
}

// NewTransmissionLine creates a TransmissionLine with a fresh UUID.
func NewTransmissionLine(name string, iface *Interface) *TransmissionLine {
	l := &TransmissionLine{Meta: newMeta(name), Interface: iface}
	if iface != nil {
		l.From, l.To = iface.From, iface.To
	}
	return l
}

// Kind implements Component.
func (*TransmissionLine) Kind() Kind { return KindTransmissionLine }

// Reserve is an operating reserve requirement.
type Reserve struct {
	Meta
	ReserveType ReserveType      `json:"reserve_type" yaml:"reserve_type"`
	Direction   ReserveDirection `json:"direction" yaml:"direction"`
	Region      *ReserveRegion   `json:"-" yaml:"-"`
	TimeFrame   *float64         `json:"time_frame,omitempty" yaml:"time_frame,omitempty"`
	Duration    *float64         `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// NewReserve creates a Reserve with a fresh UUID.
func NewReserve(name string) *Reserve { return &Reserve{Meta: newMeta(name)} }

// Kind implements Component.
func (*Reserve) Kind() Kind { return KindReserve }

// Demand is the electric load of a region.
type Demand struct {
	Meta
	Region         *Region `json:"-" yaml:"-"`
	MaxActivePower float64 `json:"max_active_power" yaml:"max_active_power"`
}

// NewDemand creates a Demand with a fresh UUID.
func NewDemand(name string, region *Region) *Demand {
	return &Demand{Meta: newMeta(name), Region: region}
}

// Kind implements Component.
func (*Demand) Kind() Kind { return KindDemand }

// ResourceClass records one resource-class row that was rolled up into an
// aggregated variable generator.
type ResourceClass struct {
	Meta
	Generator *Generator `json:"-" yaml:"-"`
	Class     string     `json:"class" yaml:"class"`
	Capacity  float64    `json:"capacity" yaml:"capacity"`
}

// NewResourceClass creates a ResourceClass with a fresh UUID.
func NewResourceClass(name string, gen *Generator) *ResourceClass {
	return &ResourceClass{Meta: newMeta(name), Generator: gen}
}

// Kind implements Component.
func (*ResourceClass) Kind() Kind { return KindResourceClass }

// SupplementalAttribute is a record attached to one or more components and
// addressable on its own.
type SupplementalAttribute interface {
	AttributeID() uuid.UUID
}

// Emission is an emission rate attached to generators.
type Emission struct {
	ID     uuid.UUID      `json:"uuid" yaml:"uuid"`
	Type   EmissionType   `json:"type" yaml:"type"`
	Source EmissionSource `json:"source" yaml:"source"`
	Rate   float64        `json:"rate" yaml:"rate"`
	Unit   string         `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// NewEmission creates an Emission with a fresh UUID.
func NewEmission(t EmissionType, source EmissionSource, rate float64) *Emission {
	return &Emission{ID: uuid.New(), Type: t, Source: source, Rate: rate}
}

// AttributeID implements SupplementalAttribute.
func (e *Emission) AttributeID() uuid.UUID { return e.ID }
