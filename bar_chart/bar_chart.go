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

// Package barchart provides bar charts and grouped bar charts.
//
// A bar chart of a single data set may be created via
//
//	c := barchart.New(set, options...)
//
// and divides the chart's width into one equal bucket per bar.  A grouped
// bar chart may be created via
//
//	c := barchart.NewGrouped(multi, barchart.WithGroupSpacing(px), options...)
//
// where each data set of multi is one group of bars.  Groups share the
// chart's width equally, less the spacing drawn between adjacent groups, and
// each group's bars share its width equally.  A touch within the spacing
// between groups resolves to nothing.
//
// Bars grow from the chart's baseline, which is zero unless a style
// specifying another baseline is provided.
//
// The legend of a bar chart describes its first data set: either a single
// entry for that set, when it is coloured by its bar style, or one entry per
// described point, when it is coloured by its data points.
//
// Charts are read-only after construction except through their
// SetDataSets, SetMetadata and SetStyle methods, which notify subscribers.
package barchart

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

const (
	valueAxisID = "y_axis"

	groupSpacingKey = "bar_chart_group_spacing"
)

// config holds the settings shared by bar and grouped bar charts.
type config struct {
	observers chart.Observers

	id           string
	metadata     chart.Metadata
	xAxisLabels  []string
	style        style.ChartStyle
	calc         dataset.Calculation
	groupSpacing float64
}

func newConfig(options ...Option) *config {
	cs := style.DefaultChartStyle()
	cs.Baseline = style.Zero()
	cfg := &config{
		id:    uuid.NewString(),
		style: cs,
	}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

// Option configures a bar chart under construction.
type Option func(cfg *config)

// WithID sets the chart's ID, replacing the generated one.
func WithID(id string) Option {
	return func(cfg *config) {
		cfg.id = id
	}
}

// WithMetadata sets the chart's metadata.
func WithMetadata(md chart.Metadata) Option {
	return func(cfg *config) {
		cfg.metadata = md
	}
}

// WithXAxisLabels sets the chart's own x-axis labels, used when its style
// takes x-axis labels from chart data.
func WithXAxisLabels(labels ...string) Option {
	return func(cfg *config) {
		cfg.xAxisLabels = labels
	}
}

// WithStyle sets the chart's style.
func WithStyle(cs style.ChartStyle) Option {
	return func(cfg *config) {
		cfg.style = cs
	}
}

// WithCalculation applies calc to every data set's points before they are
// plotted.
func WithCalculation(calc dataset.Calculation) Option {
	return func(cfg *config) {
		cfg.calc = calc
	}
}

// WithGroupSpacing sets the horizontal spacing, in pixels, between adjacent
// groups of a grouped bar chart.  It has no effect on other bar charts.
func WithGroupSpacing(px float64) Option {
	return func(cfg *config) {
		cfg.groupSpacing = px
	}
}

// Subscribe registers fn to be invoked whenever the chart changes, and
// returns a function cancelling the subscription.
func (cfg *config) Subscribe(fn func(chart.Data)) (unsubscribe func()) {
	return cfg.observers.Subscribe(fn)
}

// ID returns the chart's ID.
func (cfg *config) ID() string {
	return cfg.id
}

// Metadata returns the chart's metadata.
func (cfg *config) Metadata() chart.Metadata {
	return cfg.metadata
}

// Style returns the chart's style.
func (cfg *config) Style() style.ChartStyle {
	return cfg.style
}

func (cfg *config) axis(values []float64) *continuousaxis.Axis {
	return continuousaxis.New(category.New(valueAxisID, ""), cfg.style.Baseline, values...)
}

func (cfg *config) header(kind chart.Kind, axis *continuousaxis.Axis, legends []*legend.Entry) *chart.Header {
	return &chart.Header{
		ID:          cfg.id,
		Kind:        kind,
		Metadata:    cfg.metadata,
		Style:       cfg.style,
		XAxisLabels: cfg.xAxisLabels,
		Axis:        axis,
		Legends:     legends,
	}
}

// legends derives the legend entries describing set.
func legends(set *dataset.Set[style.BarStyle]) []*legend.Entry {
	if set == nil {
		return nil
	}
	if set.Style.ColourFrom == style.FromDataPoints {
		return legend.ForPoints(set.Points, legend.Bar)
	}
	if entry, ok := legend.ForSet(set.ID, set.LegendTitle, set.Style.Colour, nil, legend.Bar); ok {
		return []*legend.Entry{entry}
	}
	return nil
}

// index returns floor(offset/section) if it lies in [0, n).
func index(offset, section float64, n int) (int, bool) {
	idx := math.Floor(offset / section)
	if !(idx >= 0 && idx < float64(n)) {
		return 0, false
	}
	return int(idx), true
}

// Chart is a bar chart of a single data set.
type Chart struct {
	*config
	set     *dataset.Set[style.BarStyle]
	legends []*legend.Entry
}

// New returns a new bar chart of the provided data set.
func New(set *dataset.Set[style.BarStyle], options ...Option) *Chart {
	c := &Chart{
		config: newConfig(options...),
	}
	c.setDataSet(set)
	return c
}

func (c *Chart) setDataSet(set *dataset.Set[style.BarStyle]) {
	if set == nil {
		set = &dataset.Set[style.BarStyle]{}
	}
	c.set = set.Apply(c.calc)
	c.legends = legends(c.set)
}

// SetDataSets replaces the receiver's data set, rederiving its legends.
func (c *Chart) SetDataSets(set *dataset.Set[style.BarStyle]) {
	c.setDataSet(set)
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

// Kind returns chart.Bar.
func (c *Chart) Kind() chart.Kind {
	return chart.Bar
}

// DataSet returns the receiver's plotted data set, after any calculation.
func (c *Chart) DataSet() *dataset.Set[style.BarStyle] {
	return c.set
}

// Legends returns the receiver's legend entries.
func (c *Chart) Legends() []*legend.Entry {
	return c.legends
}

func (c *Chart) xSection(width float64) (float64, bool) {
	if len(c.set.Points) == 0 || !(width > 0) {
		return 0, false
	}
	return width / float64(len(c.set.Points)), true
}

func (c *Chart) resolve(touch chart.Location, g chart.Geometry) (idx int, section float64, ok bool) {
	section, ok = c.xSection(g.Width)
	if !ok {
		return 0, 0, false
	}
	idx, ok = index(touch.X, section, len(c.set.Points))
	return idx, section, ok
}

// DataPoints returns the bar under the touch, if any.
func (c *Chart) DataPoints(touch chart.Location, g chart.Geometry) []*datapoint.Point {
	idx, _, ok := c.resolve(touch, g)
	if !ok {
		return []*datapoint.Point{}
	}
	return []*datapoint.Point{c.set.Points[idx]}
}

// PointLocations returns the location of the top centre of the bar under
// the touch, if any.
func (c *Chart) PointLocations(touch chart.Location, g chart.Geometry) []chart.Location {
	idx, section, ok := c.resolve(touch, g)
	if !ok {
		return []chart.Location{}
	}
	axis := c.axis(c.values())
	return []chart.Location{{
		X: float64(idx)*section + section/2,
		Y: axis.PixelY(c.set.Points[idx].Value(), g.Height),
	}}
}

// XAxisLabels returns the receiver's x-axis labels.  Labels taken from data
// points are centred under their bars.
func (c *Chart) XAxisLabels(g chart.Geometry) []*chart.AxisLabel {
	if c.style.XAxisLabelsFrom == style.FromChartData {
		return chart.SpreadLabels(c.xAxisLabels, g.Width)
	}
	section, ok := c.xSection(g.Width)
	if !ok {
		return nil
	}
	var ret []*chart.AxisLabel
	for idx, p := range c.set.Points {
		if p.XAxisLabel() == "" {
			continue
		}
		ret = append(ret, &chart.AxisLabel{
			Text: p.XAxisLabel(),
			X:    float64(idx)*section + section/2,
		})
	}
	return ret
}

func (c *Chart) values() []float64 {
	ret := make([]float64, len(c.set.Points))
	for idx, p := range c.set.Points {
		ret[idx] = p.Value()
	}
	return ret
}

// Define encodes the receiving chart into db.
func (c *Chart) Define(db util.DataBuilder) {
	db = c.header(chart.Bar, c.axis(c.values()), c.legends).Define(db)
	chart.DefineSet(db, c.set.Category(), c.set.Style.Define(), c.set.Points)
}

var _ chart.Data = &Chart{}
