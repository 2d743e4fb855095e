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

// Package definition reads charts from YAML definitions, such as:
//
//	kind: grouped_bar
//	metadata:
//	  title: Steps
//	group_spacing: 20
//	style:
//	  baseline:
//	    kind: zero
//	data_sets:
//	  - legend_title: This week
//	    colour_from: data_points
//	    points:
//	      - value: 6000
//	        x_axis_label: M
//	        description: Monday
//	        colour: {solid: red}
//	      - value: 8000
//	        x_axis_label: T
//	        description: Tuesday
//	        colour:
//	          gradient: [orange, red]
//	          start: bottom
//	          end: top
//
// Single-series kinds (line, bar) take exactly one data set.
package definition

import (
	"bytes"
	"fmt"
	"time"

	barchart "github.com/ilhamster/chartviz/bar_chart"
	"github.com/ilhamster/chartviz/chart"
	"github.com/ilhamster/chartviz/color"
	datapoint "github.com/ilhamster/chartviz/data_point"
	dataset "github.com/ilhamster/chartviz/data_set"
	linechart "github.com/ilhamster/chartviz/line_chart"
	"github.com/ilhamster/chartviz/style"
	"gopkg.in/yaml.v3"
)

// Chart is the YAML form of a chart.
type Chart struct {
	ID           string      `yaml:"id"`
	Kind         string      `yaml:"kind"`
	Metadata     Metadata    `yaml:"metadata"`
	XAxisLabels  []string    `yaml:"x_axis_labels"`
	Style        *ChartStyle `yaml:"style"`
	PointStyle   *PointStyle `yaml:"point_style"`
	GroupSpacing float64     `yaml:"group_spacing"`
	DataSets     []DataSet   `yaml:"data_sets"`
}

// Metadata is the YAML form of chart metadata.
type Metadata struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	LegendTitle string `yaml:"legend_title"`
}

// Baseline is the YAML form of a chart baseline.
type Baseline struct {
	Kind string  `yaml:"kind"`
	Of   float64 `yaml:"of"`
}

// ChartStyle is the YAML form of a chart style.  Omitted fields take their
// default values.
type ChartStyle struct {
	InfoBoxPlacement    string    `yaml:"info_box_placement"`
	XAxisLabelsFrom     string    `yaml:"x_axis_labels_from"`
	YAxisNumberOfLabels int64     `yaml:"y_axis_number_of_labels"`
	Baseline            *Baseline `yaml:"baseline"`
}

// PointStyle is the YAML form of a line chart's point markers.
type PointStyle struct {
	PointSize float64 `yaml:"point_size"`
	Type      string  `yaml:"type"`
	Shape     string  `yaml:"shape"`
}

// Stop is the YAML form of a gradient stop.
type Stop struct {
	Colour   string  `yaml:"colour"`
	Location float64 `yaml:"location"`
}

// Colour is the YAML form of a colour style.  Exactly one of Solid,
// Gradient and Stops must be set.
type Colour struct {
	Solid    string   `yaml:"solid"`
	Gradient []string `yaml:"gradient"`
	Stops    []Stop   `yaml:"stops"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
}

// Stroke is the YAML form of a line stroke.  Omitted fields take their
// default values.
type Stroke struct {
	LineWidth float64   `yaml:"line_width"`
	Dash      []float64 `yaml:"dash"`
	DashPhase float64   `yaml:"dash_phase"`
}

// Point is the YAML form of a data point.
type Point struct {
	ID          string    `yaml:"id"`
	Value       float64   `yaml:"value"`
	XAxisLabel  string    `yaml:"x_axis_label"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
	Colour      *Colour   `yaml:"colour"`
}

// DataSet is the YAML form of a data set.  Line and bar styling fields only
// apply to charts of the matching kind.
type DataSet struct {
	ID          string  `yaml:"id"`
	LegendTitle string  `yaml:"legend_title"`
	Colour      *Colour `yaml:"colour"`
	Points      []Point `yaml:"points"`

	LineType   string  `yaml:"line_type"`
	Stroke     *Stroke `yaml:"stroke"`
	IgnoreZero bool    `yaml:"ignore_zero"`

	ColourFrom   string  `yaml:"colour_from"`
	BarWidth     float64 `yaml:"bar_width"`
	CornerRadius float64 `yaml:"corner_radius"`
}

var unitPoints = map[string]color.UnitPoint{
	"top_leading":     color.TopLeading,
	"top":             color.Top,
	"top_trailing":    color.TopTrailing,
	"leading":         color.Leading,
	"center":          color.Center,
	"trailing":        color.Trailing,
	"bottom_leading":  color.BottomLeading,
	"bottom":          color.Bottom,
	"bottom_trailing": color.BottomTrailing,
}

func unitPoint(name string, def color.UnitPoint) (color.UnitPoint, error) {
	if name == "" {
		return def, nil
	}
	up, ok := unitPoints[name]
	if !ok {
		return color.UnitPoint{}, fmt.Errorf("unknown unit point '%s'", name)
	}
	return up, nil
}

// Style returns the colour style the receiver describes.  A nil receiver
// describes no colour.
func (c *Colour) Style() (color.Style, error) {
	if c == nil {
		return nil, nil
	}
	variants := 0
	for _, set := range []bool{c.Solid != "", len(c.Gradient) > 0, len(c.Stops) > 0} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return nil, fmt.Errorf("a colour must specify exactly one of solid, gradient, or stops; got %d", variants)
	}
	if c.Solid != "" {
		return color.Solid{Colour: c.Solid}, nil
	}
	start, err := unitPoint(c.Start, color.Bottom)
	if err != nil {
		return nil, err
	}
	end, err := unitPoint(c.End, color.Top)
	if err != nil {
		return nil, err
	}
	if len(c.Gradient) > 0 {
		return color.Gradient{Colours: c.Gradient, StartPoint: start, EndPoint: end}, nil
	}
	stops := make([]color.Stop, len(c.Stops))
	for idx, stop := range c.Stops {
		stops[idx] = color.Stop{Colour: stop.Colour, Location: stop.Location}
	}
	return color.GradientStops{Stops: stops, StartPoint: start, EndPoint: end}, nil
}

func (cs *ChartStyle) chartStyle(def style.ChartStyle) (style.ChartStyle, error) {
	ret := def
	if cs == nil {
		return ret, nil
	}
	if cs.InfoBoxPlacement != "" {
		switch p := style.InfoBoxPlacement(cs.InfoBoxPlacement); p {
		case style.FloatingBox, style.InfoBox, style.Header:
			ret.InfoBoxPlacement = p
		default:
			return ret, fmt.Errorf("unknown info box placement '%s'", cs.InfoBoxPlacement)
		}
	}
	if cs.XAxisLabelsFrom != "" {
		switch lf := style.LabelsFrom(cs.XAxisLabelsFrom); lf {
		case style.FromDataPoint, style.FromChartData:
			ret.XAxisLabelsFrom = lf
		default:
			return ret, fmt.Errorf("unknown x-axis label source '%s'", cs.XAxisLabelsFrom)
		}
	}
	if cs.YAxisNumberOfLabels > 0 {
		ret.YAxisNumberOfLabels = cs.YAxisNumberOfLabels
	}
	if cs.Baseline != nil {
		switch style.BaselineKind(cs.Baseline.Kind) {
		case style.MinimumValueBaseline:
			ret.Baseline = style.MinimumValue()
		case style.ZeroBaseline:
			ret.Baseline = style.Zero()
		case style.MinimumWithMaximumBaseline:
			ret.Baseline = style.MinimumWithMaximum(cs.Baseline.Of)
		default:
			return ret, fmt.Errorf("unknown baseline '%s'", cs.Baseline.Kind)
		}
	}
	return ret, nil
}

func (ps *PointStyle) pointStyle() (style.PointStyle, error) {
	ret := style.DefaultPointStyle()
	if ps.PointSize > 0 {
		ret.PointSize = ps.PointSize
	}
	if ps.Type != "" {
		switch pt := style.PointType(ps.Type); pt {
		case style.Filled, style.Outline, style.FilledOutLine:
			ret.PointType = pt
		default:
			return ret, fmt.Errorf("unknown point type '%s'", ps.Type)
		}
	}
	if ps.Shape != "" {
		switch shape := style.PointShape(ps.Shape); shape {
		case style.Circle, style.Square, style.Rhombus:
			ret.PointShape = shape
		default:
			return ret, fmt.Errorf("unknown point shape '%s'", ps.Shape)
		}
	}
	return ret, nil
}

func (p *Point) point() (*datapoint.Point, error) {
	colour, err := p.Colour.Style()
	if err != nil {
		return nil, err
	}
	options := []datapoint.Option{
		datapoint.WithXAxisLabel(p.XAxisLabel),
		datapoint.WithDescription(p.Description),
		datapoint.WithDate(p.Date),
		datapoint.WithColour(colour),
	}
	if p.ID != "" {
		options = append(options, datapoint.WithID(p.ID))
	}
	return datapoint.New(p.Value, options...), nil
}

func (ds *DataSet) points() ([]*datapoint.Point, error) {
	ret := make([]*datapoint.Point, len(ds.Points))
	for idx := range ds.Points {
		p, err := ds.Points[idx].point()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", idx, err)
		}
		ret[idx] = p
	}
	return ret, nil
}

func newSet[S dataset.Styles](ds *DataSet, s S) (*dataset.Set[S], error) {
	points, err := ds.points()
	if err != nil {
		return nil, err
	}
	set := dataset.New(ds.LegendTitle, s, points...)
	if ds.ID != "" {
		set.ID = ds.ID
	}
	return set, nil
}

func (ds *DataSet) lineSet() (*dataset.Set[style.LineStyle], error) {
	colour, err := ds.Colour.Style()
	if err != nil {
		return nil, err
	}
	ls := style.NewLineStyle(colour)
	switch lt := style.LineType(ds.LineType); lt {
	case "":
	case style.Line, style.Curved:
		ls.LineType = lt
	default:
		return nil, fmt.Errorf("unknown line type '%s'", ds.LineType)
	}
	if ds.Stroke != nil {
		if ds.Stroke.LineWidth > 0 {
			ls.Stroke.LineWidth = ds.Stroke.LineWidth
		}
		ls.Stroke.Dash = ds.Stroke.Dash
		ls.Stroke.DashPhase = ds.Stroke.DashPhase
	}
	ls.IgnoreZero = ds.IgnoreZero
	return newSet(ds, ls)
}

func (ds *DataSet) barSet() (*dataset.Set[style.BarStyle], error) {
	colour, err := ds.Colour.Style()
	if err != nil {
		return nil, err
	}
	bs := style.NewBarStyle(colour)
	switch cf := style.ColourFrom(ds.ColourFrom); cf {
	case "":
	case style.FromBarStyle, style.FromDataPoints:
		bs.ColourFrom = cf
	default:
		return nil, fmt.Errorf("unknown colour source '%s'", ds.ColourFrom)
	}
	if ds.BarWidth > 0 {
		bs.BarWidth = ds.BarWidth
	}
	bs.CornerRadius = ds.CornerRadius
	return newSet(ds, bs)
}

func sets[S dataset.Styles](dss []DataSet, build func(ds *DataSet) (*dataset.Set[S], error)) (*dataset.Multi[S], error) {
	ret := dataset.NewMulti[S]()
	for idx := range dss {
		set, err := build(&dss[idx])
		if err != nil {
			return nil, fmt.Errorf("data set %d: %w", idx, err)
		}
		ret.Sets = append(ret.Sets, set)
	}
	return ret, nil
}

// Build returns the chart the receiver defines.
func (c *Chart) Build() (chart.Data, error) {
	if len(c.DataSets) == 0 {
		return nil, fmt.Errorf("chart defines no data sets")
	}
	md := chart.Metadata{
		Title:       c.Metadata.Title,
		Subtitle:    c.Metadata.Subtitle,
		LegendTitle: c.Metadata.LegendTitle,
	}
	switch chart.Kind(c.Kind) {
	case chart.Line, chart.MultiLine:
		cs, err := c.Style.chartStyle(style.DefaultChartStyle())
		if err != nil {
			return nil, err
		}
		options := []linechart.Option{
			linechart.WithMetadata(md),
			linechart.WithXAxisLabels(c.XAxisLabels...),
			linechart.WithStyle(cs),
		}
		if c.ID != "" {
			options = append(options, linechart.WithID(c.ID))
		}
		if c.PointStyle != nil {
			ps, err := c.PointStyle.pointStyle()
			if err != nil {
				return nil, err
			}
			options = append(options, linechart.WithPointStyle(ps))
		}
		multi, err := sets(c.DataSets, (*DataSet).lineSet)
		if err != nil {
			return nil, err
		}
		if chart.Kind(c.Kind) == chart.MultiLine {
			return linechart.NewMulti(multi, options...), nil
		}
		if len(multi.Sets) != 1 {
			return nil, fmt.Errorf("line charts take exactly one data set, got %d", len(multi.Sets))
		}
		return linechart.New(multi.Sets[0], options...), nil
	case chart.Bar, chart.GroupedBar:
		def := style.DefaultChartStyle()
		def.Baseline = style.Zero()
		cs, err := c.Style.chartStyle(def)
		if err != nil {
			return nil, err
		}
		options := []barchart.Option{
			barchart.WithMetadata(md),
			barchart.WithXAxisLabels(c.XAxisLabels...),
			barchart.WithStyle(cs),
			barchart.WithGroupSpacing(c.GroupSpacing),
		}
		if c.ID != "" {
			options = append(options, barchart.WithID(c.ID))
		}
		multi, err := sets(c.DataSets, (*DataSet).barSet)
		if err != nil {
			return nil, err
		}
		if chart.Kind(c.Kind) == chart.GroupedBar {
			return barchart.NewGrouped(multi, options...), nil
		}
		if len(multi.Sets) != 1 {
			return nil, fmt.Errorf("bar charts take exactly one data set, got %d", len(multi.Sets))
		}
		return barchart.New(multi.Sets[0], options...), nil
	default:
		return nil, fmt.Errorf("unknown chart kind '%s'", c.Kind)
	}
}

// Parse parses a YAML chart definition and returns the chart it defines.
// Unknown fields are errors.
func Parse(b []byte) (chart.Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var c Chart
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode chart definition: %w", err)
	}
	return c.Build()
}
