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

// Package linechart provides line charts of one or more data sets.
//
// A single-series chart may be created via
//
//	c := linechart.New(set, options...)
//
// and a multi-series chart via
//
//	c := linechart.NewMulti(multi, options...)
//
// Each set's points are spread evenly across the chart's width, the first at
// its leading edge and the last at its trailing edge.  A touch resolves, in
// each set, to the point nearest it horizontally; sets with fewer than two
// points have no horizontal spread and never resolve.
//
// Charts are read-only after construction except through SetDataSets,
// SetMetadata and SetStyle, which notify subscribers.  Reads may proceed
// concurrently with each other, but not with those mutators.
package linechart

import (
	"math"

	"github.com/google/uuid"
	"github.com/ilhamster/chartviz/category"
	"github.com/ilhamster/chartviz/chart"
	continuousaxis "github.com/ilhamster/chartviz/continuous_axis"
	datapoint "github.com/ilhamster/chartviz/data_point"
	dataset "github.com/ilhamster/chartviz/data_set"
	"github.com/ilhamster/chartviz/legend"
	"github.com/ilhamster/chartviz/style"
	"github.com/ilhamster/chartviz/util"
)

const valueAxisID = "y_axis"

// Chart is a line chart.
type Chart struct {
	observers chart.Observers

	id          string
	kind        chart.Kind
	sets        *dataset.Multi[style.LineStyle]
	metadata    chart.Metadata
	xAxisLabels []string
	style       style.ChartStyle
	pointStyle  *style.PointStyle
	calc        dataset.Calculation
	legends     []*legend.Entry
}

// Option configures a Chart under construction.
type Option func(c *Chart)

// WithID sets the chart's ID, replacing the generated one.
func WithID(id string) Option {
	return func(c *Chart) {
		c.id = id
	}
}

// WithMetadata sets the chart's metadata.
func WithMetadata(md chart.Metadata) Option {
	return func(c *Chart) {
		c.metadata = md
	}
}

// WithXAxisLabels sets the chart's own x-axis labels, used when its style
// takes x-axis labels from chart data.
func WithXAxisLabels(labels ...string) Option {
	return func(c *Chart) {
		c.xAxisLabels = labels
	}
}

// WithStyle sets the chart's style.
func WithStyle(cs style.ChartStyle) Option {
	return func(c *Chart) {
		c.style = cs
	}
}

// WithPointStyle marks each data point with the provided style.
func WithPointStyle(ps style.PointStyle) Option {
	return func(c *Chart) {
		c.pointStyle = &ps
	}
}

// WithCalculation applies calc to every data set's points before they are
// plotted.
func WithCalculation(calc dataset.Calculation) Option {
	return func(c *Chart) {
		c.calc = calc
	}
}

// New returns a new single-series line chart.
func New(set *dataset.Set[style.LineStyle], options ...Option) *Chart {
	return newChart(chart.Line, dataset.NewMulti(set), options...)
}

// NewMulti returns a new multi-series line chart.
func NewMulti(multi *dataset.Multi[style.LineStyle], options ...Option) *Chart {
	return newChart(chart.MultiLine, multi, options...)
}

func newChart(kind chart.Kind, multi *dataset.Multi[style.LineStyle], options ...Option) *Chart {
	c := &Chart{
		id:    uuid.NewString(),
		kind:  kind,
		style: style.DefaultChartStyle(),
	}
	for _, option := range options {
		option(c)
	}
	c.setDataSets(multi)
	return c
}

func (c *Chart) setDataSets(multi *dataset.Multi[style.LineStyle]) {
	if multi == nil {
		multi = dataset.NewMulti[style.LineStyle]()
	}
	c.sets = multi.Apply(c.calc)
	c.legends = legends(c.sets)
}

func legends(multi *dataset.Multi[style.LineStyle]) []*legend.Entry {
	var ret []*legend.Entry
	for _, set := range multi.Sets {
		stroke := set.Style.Stroke
		if entry, ok := legend.ForSet(set.ID, set.LegendTitle, set.Style.Colour, &stroke, legend.Line); ok {
			ret = append(ret, entry)
		}
	}
	return ret
}

// Subscribe registers fn to be invoked whenever the receiver changes, and
// returns a function cancelling the subscription.
func (c *Chart) Subscribe(fn func(chart.Data)) (unsubscribe func()) {
	return c.observers.Subscribe(fn)
}

// SetDataSets replaces the receiver's data sets, rederiving its legends.
func (c *Chart) SetDataSets(multi *dataset.Multi[style.LineStyle]) {
	c.setDataSets(multi)
	c.observers.Notify(c)
}

// SetMetadata replaces the receiver's metadata.
func (c *Chart) SetMetadata(md chart.Metadata) {
	c.metadata = md
	c.observers.Notify(c)
}

// SetStyle replaces the receiver's style.
func (c *Chart) SetStyle(cs style.ChartStyle) {
	c.style = cs
	c.observers.Notify(c)
}

// ID returns the receiver's ID.
func (c *Chart) ID() string {
	return c.id
}

// Kind returns chart.Line or chart.MultiLine.
func (c *Chart) Kind() chart.Kind {
	return c.kind
}

// DataSets returns the receiver's plotted data sets, after any calculation.
func (c *Chart) DataSets() *dataset.Multi[style.LineStyle] {
	return c.sets
}

// Metadata returns the receiver's metadata.
func (c *Chart) Metadata() chart.Metadata {
	return c.metadata
}

// Style returns the receiver's style.
func (c *Chart) Style() style.ChartStyle {
	return c.style
}

// Legends returns the receiver's legend entries, one per data set with a
// well-formed colour.
func (c *Chart) Legends() []*legend.Entry {
	return c.legends
}

// xSection returns the horizontal distance between adjacent points of a set
// with n points, or false if such a set is not spread across the width.
func xSection(n int, width float64) (float64, bool) {
	if n < 2 || !(width > 0) {
		return 0, false
	}
	return width / float64(n-1), true
}

// hit is a resolved point within a data set.
type hit struct {
	set      *dataset.Set[style.LineStyle]
	index    int
	xSection float64
}

func (c *Chart) resolve(touch chart.Location, g chart.Geometry) []hit {
	var ret []hit
	for _, set := range c.sets.Sets {
		n := len(set.Points)
		section, ok := xSection(n, g.Width)
		if !ok {
			continue
		}
		index := math.Floor((touch.X + section/2) / section)
		if !(index >= 0 && index < float64(n)) {
			continue
		}
		ret = append(ret, hit{set: set, index: int(index), xSection: section})
	}
	return ret
}

// DataPoints returns, for each data set in order, the point nearest the
// touch horizontally.  Sets the touch falls outside of contribute nothing.
func (c *Chart) DataPoints(touch chart.Location, g chart.Geometry) []*datapoint.Point {
	hits := c.resolve(touch, g)
	ret := make([]*datapoint.Point, len(hits))
	for idx, h := range hits {
		ret[idx] = h.set.Points[h.index]
	}
	return ret
}

// PointLocations returns the pixel locations of the points DataPoints
// returns for the same arguments.  Vertical positions are scaled over the
// values of every data set.
func (c *Chart) PointLocations(touch chart.Location, g chart.Geometry) []chart.Location {
	hits := c.resolve(touch, g)
	axis := c.axis()
	ret := make([]chart.Location, len(hits))
	for idx, h := range hits {
		ret[idx] = chart.Location{
			X: float64(h.index) * h.xSection,
			Y: axis.PixelY(h.set.Points[h.index].Value(), g.Height),
		}
	}
	return ret
}

// XAxisLabels returns the receiver's x-axis labels.  Labels taken from data
// points are those of the first data set, each positioned at its point.
func (c *Chart) XAxisLabels(g chart.Geometry) []*chart.AxisLabel {
	if c.style.XAxisLabelsFrom == style.FromChartData {
		return chart.SpreadLabels(c.xAxisLabels, g.Width)
	}
	first := c.sets.First()
	if first == nil {
		return nil
	}
	var ret []*chart.AxisLabel
	section, spread := xSection(len(first.Points), g.Width)
	for idx, p := range first.Points {
		if p.XAxisLabel() == "" {
			continue
		}
		x := g.Width / 2
		if spread {
			x = float64(idx) * section
		}
		ret = append(ret, &chart.AxisLabel{Text: p.XAxisLabel(), X: x})
	}
	return ret
}

func (c *Chart) axis() *continuousaxis.Axis {
	return continuousaxis.New(category.New(valueAxisID, ""), c.style.Baseline, c.sets.Values()...)
}

// Define encodes the receiving chart into db.
func (c *Chart) Define(db util.DataBuilder) {
	h := &chart.Header{
		ID:          c.id,
		Kind:        c.kind,
		Metadata:    c.metadata,
		Style:       c.style,
		XAxisLabels: c.xAxisLabels,
		Axis:        c.axis(),
		Legends:     c.legends,
	}
	var pointStyle util.PropertyUpdate
	if c.pointStyle != nil {
		pointStyle = c.pointStyle.Define()
	}
	db = h.Define(db, pointStyle)
	for _, set := range c.sets.Sets {
		chart.DefineSet(db, set.Category(), set.Style.Define(), set.Points)
	}
}

var _ chart.Data = &Chart{}
