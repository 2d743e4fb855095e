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

package style

import "github.com/ilhamster/chartviz/util"

const (
	pointSizeKey         = keyPrefix + "point_size"
	pointBorderColourKey = keyPrefix + "point_border_colour"
	pointFillColourKey   = keyPrefix + "point_fill_colour"
	pointLineWidthKey    = keyPrefix + "point_line_width"
	pointTypeKey         = keyPrefix + "point_type"
	pointShapeKey        = keyPrefix + "point_shape"

	gridNumberOfLinesKey = keyPrefix + "grid_number_of_lines"
	gridLineColourKey    = keyPrefix + "grid_line_colour"
	gridLineWidthKey     = keyPrefix + "grid_line_width"
	gridDashKey          = keyPrefix + "grid_dash"
	gridDashPhaseKey     = keyPrefix + "grid_dash_phase"
)

// PointType is how a data point marker is filled.
type PointType string

// Supported point types.
const (
	Filled        PointType = "filled"
	Outline       PointType = "outline"
	FilledOutLine PointType = "filled_outline"
)

// PointShape is the shape of a data point marker.
type PointShape string

// Supported point shapes.
const (
	Circle  PointShape = "circle"
	Square  PointShape = "square"
	Rhombus PointShape = "rhombus"
)

// PointStyle describes the markers drawn at each point of a line.
type PointStyle struct {
	PointSize    float64
	BorderColour string
	FillColour   string
	LineWidth    float64
	PointType    PointType
	PointShape   PointShape
}

// DefaultPointStyle returns the PointStyle used when none is specified.
func DefaultPointStyle() PointStyle {
	return PointStyle{
		PointSize:    9,
		BorderColour: "blue",
		FillColour:   "red",
		LineWidth:    3,
		PointType:    FilledOutLine,
		PointShape:   Circle,
	}
}

// Define annotates with the receiving PointStyle.
func (ps PointStyle) Define() util.PropertyUpdate {
	return util.Chain(
		util.DoubleProperty(pointSizeKey, ps.PointSize),
		util.StringProperty(pointBorderColourKey, ps.BorderColour),
		util.StringProperty(pointFillColourKey, ps.FillColour),
		util.DoubleProperty(pointLineWidthKey, ps.LineWidth),
		util.StringProperty(pointTypeKey, string(ps.PointType)),
		util.StringProperty(pointShapeKey, string(ps.PointShape)),
	)
}

// GridStyle describes a chart's grid lines along one axis.
type GridStyle struct {
	NumberOfLines int64
	LineColour    string
	LineWidth     float64
	Dash          []float64
	DashPhase     float64
}

// DefaultGridStyle returns the GridStyle used when none is specified.
func DefaultGridStyle() GridStyle {
	return GridStyle{
		NumberOfLines: 10,
		LineColour:    "rgba(128, 128, 128, 0.25)",
		LineWidth:     1,
		Dash:          []float64{10},
	}
}

// Define annotates with the receiving GridStyle under the provided axis
// prefix.
func (gs GridStyle) Define(axis string) util.PropertyUpdate {
	return util.Chain(
		util.IntegerProperty(axis+"_"+gridNumberOfLinesKey, gs.NumberOfLines),
		util.StringProperty(axis+"_"+gridLineColourKey, gs.LineColour),
		util.DoubleProperty(axis+"_"+gridLineWidthKey, gs.LineWidth),
		util.If(len(gs.Dash) > 0, util.DoublesProperty(axis+"_"+gridDashKey, gs.Dash...)),
		util.If(len(gs.Dash) > 0, util.DoubleProperty(axis+"_"+gridDashPhaseKey, gs.DashPhase)),
	)
}
