/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package datapoint defines a single plotted value.
//
// A Point is constructed once, with optional decorations:
//
//	p := datapoint.New(20,
//	  datapoint.WithXAxisLabel("M"),
//	  datapoint.WithDescription("Monday"),
//	  datapoint.WithColour(color.Solid{Colour: "red"}),
//	)
//
// and is read-only thereafter.  Every Point has a unique ID; two Points are
// Equal only if they share an ID.
package datapoint

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilhamster/chartviz/color"
	"github.com/ilhamster/chartviz/label"
	"github.com/ilhamster/chartviz/util"
)

const (
	idKey     = "data_point_id"
	valueKey  = "data_point_value"
	dateKey   = "data_point_date"
	colourKey = "data_point"
)

// Point is a single plotted value.
type Point struct {
	id          string
	value       float64
	xAxisLabel  string
	description string
	date        time.Time
	colour      color.Style
}

// Option decorates a Point under construction.
type Option func(p *Point)

// WithID sets the Point's ID, replacing the generated one.
func WithID(id string) Option {
	return func(p *Point) {
		p.id = id
	}
}

// WithXAxisLabel sets the label shown under the Point on the x axis.
func WithXAxisLabel(xAxisLabel string) Option {
	return func(p *Point) {
		p.xAxisLabel = xAxisLabel
	}
}

// WithDescription sets the Point's description, shown in touch overlays and
// used as its legend text when a bar chart is coloured by data point.
func WithDescription(description string) Option {
	return func(p *Point) {
		p.description = description
	}
}

// WithDate sets the date the Point's value pertains to.
func WithDate(date time.Time) Option {
	return func(p *Point) {
		p.date = date
	}
}

// WithColour sets the Point's own colour.
func WithColour(colour color.Style) Option {
	return func(p *Point) {
		p.colour = colour
	}
}

// New returns a new Point with the provided value.
func New(value float64, options ...Option) *Point {
	p := &Point{
		id:    uuid.NewString(),
		value: value,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// ID returns the Point's unique ID.
func (p *Point) ID() string {
	return p.id
}

// Value returns the Point's plotted value.
func (p *Point) Value() float64 {
	return p.value
}

// XAxisLabel returns the Point's x-axis label, or "" if it has none.
func (p *Point) XAxisLabel() string {
	return p.xAxisLabel
}

// Description returns the Point's description, or "" if it has none.
func (p *Point) Description() string {
	return p.description
}

// Date returns the Point's date, or the zero time if it has none.
func (p *Point) Date() time.Time {
	return p.date
}

// Colour returns the Point's own colour, or nil if it has none.
func (p *Point) Colour() color.Style {
	return p.colour
}

// Equal returns true if the receiver and o are the same Point.
func (p *Point) Equal(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.id == o.id
}

// SameValue returns true if the receiver and o plot the same value with the
// same labels and date.
func (p *Point) SameValue(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.value == o.value &&
		p.xAxisLabel == o.xAxisLabel &&
		p.description == o.description &&
		p.date.Equal(o.date)
}

// Define annotates with the receiving Point.
func (p *Point) Define() util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(idKey, p.id),
		util.DoubleProperty(valueKey, p.value),
		util.If(p.xAxisLabel != "", label.XAxis(p.xAxisLabel)),
		util.If(p.description != "", label.Description(p.description)),
		util.If(!p.date.IsZero(), util.TimestampProperty(dateKey, p.date)),
		color.Define(colourKey, p.colour),
	)
}
