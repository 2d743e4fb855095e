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

// Package chart defines the contract shared by every chart variant, and the
// layout of charts within responses.
//
// The structure of a chart in a response, with each level representing a
// DataSeries or nested Datum, is:
//
//	chart
//	  properties:
//	    * chart ID and kind
//	    * metadata
//	    * chart style
//	    * <decorators>
//	  children:
//	    * axes
//	    * legends
//	    * repeated data sets
//
//	axes
//	  children:
//	    * value axis definition
//
//	legends
//	  children:
//	    * repeated legend entries
//
//	data set
//	  properties:
//	    * category definition
//	    * series style
//	  children:
//	    * repeated data points, tagged with the data set's category
package chart

import (
	"github.com/ilhamster/chartviz/category"
	continuousaxis "github.com/ilhamster/chartviz/continuous_axis"
	datapoint "github.com/ilhamster/chartviz/data_point"
	"github.com/ilhamster/chartviz/label"
	"github.com/ilhamster/chartviz/legend"
	"github.com/ilhamster/chartviz/style"
	"github.com/ilhamster/chartviz/util"
)

const (
	chartIDKey     = "chart_id"
	chartKindKey   = "chart_kind"
	titleKey       = "chart_title"
	subtitleKey    = "chart_subtitle"
	legendTitleKey = "chart_legend_title"
	xAxisLabelsKey = "chart_x_axis_labels"
	axisLabelXKey  = "x_axis_label_x"

	locationXKey = "x"
	locationYKey = "y"
)

// Kind is the kind of a chart.
type Kind string

// Supported chart kinds.
const (
	Line       Kind = "line"
	MultiLine  Kind = "multi_line"
	Bar        Kind = "bar"
	GroupedBar Kind = "grouped_bar"
)

// LegendType returns the legend chart type drawn for charts of the receiving
// Kind.
func (k Kind) LegendType() legend.ChartType {
	switch k {
	case Line, MultiLine:
		return legend.Line
	default:
		return legend.Bar
	}
}

// Geometry is the pixel size of a chart's drawing area.  It is supplied with
// each pointer event and never stored by charts.
type Geometry struct {
	Width, Height float64
}

// Location is a position within a chart's drawing area, in pixels from its
// top-leading corner.
type Location struct {
	X, Y float64
}

// Define annotates with the receiving Location under the provided key
// prefix.
func (l Location) Define(prefix string) util.PropertyUpdate {
	return util.Chain(
		util.DoubleProperty(prefix+locationXKey, l.X),
		util.DoubleProperty(prefix+locationYKey, l.Y),
	)
}

// Metadata describes a chart to its viewers.
type Metadata struct {
	Title, Subtitle, LegendTitle string
}

// Define annotates with the receiving Metadata.  Empty fields are omitted.
func (md Metadata) Define() util.PropertyUpdate {
	return util.Chain(
		util.If(md.Title != "", util.StringProperty(titleKey, md.Title)),
		util.If(md.Subtitle != "", util.StringProperty(subtitleKey, md.Subtitle)),
		util.If(md.LegendTitle != "", util.StringProperty(legendTitleKey, md.LegendTitle)),
	)
}

// AxisLabel is a single x-axis label positioned along the chart's width.
type AxisLabel struct {
	Text string
	X    float64
}

// Define annotates with the receiving AxisLabel.
func (al *AxisLabel) Define() util.PropertyUpdate {
	return util.Chain(
		label.XAxis(al.Text),
		util.DoubleProperty(axisLabelXKey, al.X),
	)
}

// Data is implemented by every chart variant.
type Data interface {
	// ID returns the chart's unique ID.
	ID() string
	// Kind returns the chart's kind.
	Kind() Kind
	// DataPoints returns the data points under the provided touch location,
	// for a chart drawn with the provided geometry.  It returns no points if
	// the touch is outside every bucket.
	DataPoints(touch Location, g Geometry) []*datapoint.Point
	// PointLocations returns the pixel locations of the points DataPoints
	// returns for the same arguments, in the same order.
	PointLocations(touch Location, g Geometry) []Location
	// Legends returns the chart's legend entries.
	Legends() []*legend.Entry
	// XAxisLabels returns the chart's x-axis labels laid out across the
	// provided geometry.
	XAxisLabels(g Geometry) []*AxisLabel
	// Define encodes the complete chart into db, which must not be used for
	// any other purpose.
	Define(db util.DataBuilder)
}

// SpreadLabels lays the provided label texts evenly across width, the first
// at 0 and the last at width.  A single label is centred.
func SpreadLabels(texts []string, width float64) []*AxisLabel {
	ret := make([]*AxisLabel, len(texts))
	for idx, text := range texts {
		x := width / 2
		if len(texts) > 1 {
			x = float64(idx) * width / float64(len(texts)-1)
		}
		ret[idx] = &AxisLabel{Text: text, X: x}
	}
	return ret
}

// Header holds everything encoded about a chart besides its data sets.
type Header struct {
	ID          string
	Kind        Kind
	Metadata    Metadata
	Style       style.ChartStyle
	XAxisLabels []string
	Axis        *continuousaxis.Axis
	Legends     []*legend.Entry
}

// Define encodes the receiver into db, along with any additional properties,
// and returns db so that data sets may be added with DefineSet.
func (h *Header) Define(db util.DataBuilder, properties ...util.PropertyUpdate) util.DataBuilder {
	db.With(
		util.StringProperty(chartIDKey, h.ID),
		util.StringProperty(chartKindKey, string(h.Kind)),
		h.Metadata.Define(),
		h.Style.Define(),
		util.If(len(h.XAxisLabels) > 0, util.StringsProperty(xAxisLabelsKey, h.XAxisLabels...)),
	).With(properties...)
	axes := db.Child() // Axis definitions
	if h.Axis != nil {
		axes.Child().With(h.Axis.Define())
	}
	legend.Define(db.Child(), h.Legends...)
	return db
}

// DefineSet adds a data set, defined by the provided category and series
// style, to a chart previously encoded with Header.Define.
func DefineSet(db util.DataBuilder, cat *category.Category, seriesStyle util.PropertyUpdate, points []*datapoint.Point) {
	set := db.Child().With(cat.Define(), seriesStyle)
	for _, p := range points {
		set.Child().With(p.Define(), cat.Tag())
	}
}
