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

package barchart

import (
	"math"

	"github.com/ilhamster/chartviz/chart"
	datapoint "github.com/ilhamster/chartviz/data_point"
	dataset "github.com/ilhamster/chartviz/data_set"
	"github.com/ilhamster/chartviz/legend"
	"github.com/ilhamster/chartviz/style"
	"github.com/ilhamster/chartviz/util"
)

// GroupedChart is a bar chart of several groups of bars, one group per data
// set.
type GroupedChart struct {
	*config
	groups  *dataset.Multi[style.BarStyle]
	legends []*legend.Entry
}

// NewGrouped returns a new grouped bar chart of the provided data sets.
func NewGrouped(multi *dataset.Multi[style.BarStyle], options ...Option) *GroupedChart {
	c := &GroupedChart{
		config: newConfig(options...),
	}
	c.setDataSets(multi)
	return c
}

func (c *GroupedChart) setDataSets(multi *dataset.Multi[style.BarStyle]) {
	if multi == nil {
		multi = dataset.NewMulti[style.BarStyle]()
	}
	c.groups = multi.Apply(c.calc)
	c.legends = legends(c.groups.First())
}

// SetDataSets replaces the receiver's groups, rederiving its legends.
func (c *GroupedChart) SetDataSets(multi *dataset.Multi[style.BarStyle]) {
	c.setDataSets(multi)
	c.observers.Notify(c)
}

// SetMetadata replaces the receiver's metadata.
func (c *GroupedChart) SetMetadata(md chart.Metadata) {
	c.metadata = md
	c.observers.Notify(c)
}

// SetStyle replaces the receiver's style.
func (c *GroupedChart) SetStyle(cs style.ChartStyle) {
	c.style = cs
	c.observers.Notify(c)
}

// Kind returns chart.GroupedBar.
func (c *GroupedChart) Kind() chart.Kind {
	return chart.GroupedBar
}

// DataSets returns the receiver's plotted groups, after any calculation.
func (c *GroupedChart) DataSets() *dataset.Multi[style.BarStyle] {
	return c.groups
}

// GroupSpacing returns the spacing, in pixels, between adjacent groups.
func (c *GroupedChart) GroupSpacing() float64 {
	return c.groupSpacing
}

// Legends returns the receiver's legend entries.
func (c *GroupedChart) Legends() []*legend.Entry {
	return c.legends
}

// layout describes how groups and their bars divide a chart's width.
type layout struct {
	groups int
	// xSection is the width of each group, excluding spacing.
	xSection float64
	spacing  float64
}

func (c *GroupedChart) layout(width float64) (layout, bool) {
	g := len(c.groups.Sets)
	if g == 0 || !(width > 0) {
		return layout{}, false
	}
	compensation := c.groupSpacing * float64(g-1) / float64(g)
	l := layout{
		groups:   g,
		xSection: width/float64(g) - compensation,
		spacing:  c.groupSpacing,
	}
	if !(l.xSection > 0) {
		return layout{}, false
	}
	return l, true
}

// barX returns the horizontal centre of the bar at subIndex within the group
// at groupIndex, which has bars bars.
func (l layout) barX(groupIndex, subIndex, bars int) float64 {
	xSubSection := l.xSection / float64(bars)
	return float64(groupIndex)*(l.xSection+l.spacing) + float64(subIndex)*xSubSection + xSubSection/2
}

// resolve finds the group and bar under the touch.  The group is located
// twice: once ignoring spacing, and once within the spacing-compensated
// groups.  The two disagree only when the touch lies within the spacing
// between groups.
func (c *GroupedChart) resolve(touch chart.Location, g chart.Geometry) (l layout, groupIndex, subIndex int, ok bool) {
	l, ok = c.layout(g.Width)
	if !ok {
		return layout{}, 0, 0, false
	}
	superIndex := math.Floor(touch.X / (g.Width / float64(l.groups)))
	offset := touch.X - l.spacing*superIndex
	groupIndex, ok = index(offset, l.xSection, l.groups)
	if !ok || float64(groupIndex) != superIndex {
		return layout{}, 0, 0, false
	}
	bars := len(c.groups.Sets[groupIndex].Points)
	if bars == 0 {
		return layout{}, 0, 0, false
	}
	xSubSection := l.xSection / float64(bars)
	sub := math.Floor(offset/xSubSection) - float64(bars*groupIndex)
	if !(sub >= 0 && sub < float64(bars)) {
		return layout{}, 0, 0, false
	}
	return l, groupIndex, int(sub), true
}

// DataPoints returns the bar under the touch, if any.
func (c *GroupedChart) DataPoints(touch chart.Location, g chart.Geometry) []*datapoint.Point {
	_, groupIndex, subIndex, ok := c.resolve(touch, g)
	if !ok {
		return []*datapoint.Point{}
	}
	return []*datapoint.Point{c.groups.Sets[groupIndex].Points[subIndex]}
}

// PointLocations returns the location of the top centre of the bar under
// the touch, if any.
func (c *GroupedChart) PointLocations(touch chart.Location, g chart.Geometry) []chart.Location {
	l, groupIndex, subIndex, ok := c.resolve(touch, g)
	if !ok {
		return []chart.Location{}
	}
	points := c.groups.Sets[groupIndex].Points
	axis := c.axis(c.groups.Values())
	return []chart.Location{{
		X: l.barX(groupIndex, subIndex, len(points)),
		Y: axis.PixelY(points[subIndex].Value(), g.Height),
	}}
}

// XAxisLabels returns the receiver's x-axis labels.  Labels taken from data
// points are centred under their bars.
func (c *GroupedChart) XAxisLabels(g chart.Geometry) []*chart.AxisLabel {
	if c.style.XAxisLabelsFrom == style.FromChartData {
		return chart.SpreadLabels(c.xAxisLabels, g.Width)
	}
	l, ok := c.layout(g.Width)
	if !ok {
		return nil
	}
	var ret []*chart.AxisLabel
	for groupIndex, group := range c.groups.Sets {
		for subIndex, p := range group.Points {
			if p.XAxisLabel() == "" {
				continue
			}
			ret = append(ret, &chart.AxisLabel{
				Text: p.XAxisLabel(),
				X:    l.barX(groupIndex, subIndex, len(group.Points)),
			})
		}
	}
	return ret
}

// Define encodes the receiving chart into db.
func (c *GroupedChart) Define(db util.DataBuilder) {
	db = c.header(chart.GroupedBar, c.axis(c.groups.Values()), c.legends).
		Define(db, util.DoubleProperty(groupSpacingKey, c.groupSpacing))
	for _, group := range c.groups.Sets {
		chart.DefineSet(db, group.Category(), group.Style.Define(), group.Points)
	}
}

var _ chart.Data = &GroupedChart{}
