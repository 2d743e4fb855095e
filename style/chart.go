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
	infoBoxPlacementKey         = keyPrefix + "info_box_placement"
	infoBoxValueColourKey       = keyPrefix + "info_box_value_colour"
	infoBoxDescriptionColourKey = keyPrefix + "info_box_description_colour"
	xAxisLabelPositionKey       = keyPrefix + "x_axis_label_position"
	xAxisLabelColourKey         = keyPrefix + "x_axis_label_colour"
	xAxisLabelsFromKey          = keyPrefix + "x_axis_labels_from"
	yAxisLabelPositionKey       = keyPrefix + "y_axis_label_position"
	yAxisLabelColourKey         = keyPrefix + "y_axis_label_colour"
	yAxisNumberOfLabelsKey      = keyPrefix + "y_axis_number_of_labels"
	baselineKey                 = keyPrefix + "baseline"
	baselineOfKey               = keyPrefix + "baseline_of"
)

// InfoBoxPlacement is where touch overlay information is shown.
type InfoBoxPlacement string

// Supported info box placements.
const (
	FloatingBox InfoBoxPlacement = "floating"
	InfoBox     InfoBoxPlacement = "info_box"
	Header      InfoBoxPlacement = "header"
)

// XAxisLabelPosition is the edge along which x-axis labels are drawn.
type XAxisLabelPosition string

// Supported x-axis label positions.
const (
	XAxisBottom XAxisLabelPosition = "bottom"
	XAxisTop    XAxisLabelPosition = "top"
)

// YAxisLabelPosition is the edge along which y-axis labels are drawn.
type YAxisLabelPosition string

// Supported y-axis label positions.
const (
	YAxisLeading  YAxisLabelPosition = "leading"
	YAxisTrailing YAxisLabelPosition = "trailing"
)

// LabelsFrom specifies where x-axis labels come from.
type LabelsFrom string

const (
	// FromDataPoint labels the x axis with each data point's x-axis label.
	FromDataPoint LabelsFrom = "data_point"
	// FromChartData labels the x axis with the chart's own label list.
	FromChartData LabelsFrom = "chart_data"
)

// BaselineKind selects how the bottom of a chart's value axis is chosen.
type BaselineKind string

// Supported baseline kinds.
const (
	MinimumValueBaseline       BaselineKind = "minimum_value"
	ZeroBaseline               BaselineKind = "zero"
	MinimumWithMaximumBaseline BaselineKind = "minimum_with_maximum"
)

// Baseline selects the bottom of a chart's value axis.  The zero Baseline
// behaves as MinimumValue.
type Baseline struct {
	Kind BaselineKind
	// Of is the highest the axis minimum may be, for
	// MinimumWithMaximumBaseline.
	Of float64
}

// MinimumValue returns a Baseline at the lowest plotted value.
func MinimumValue() Baseline {
	return Baseline{Kind: MinimumValueBaseline}
}

// Zero returns a Baseline at zero, or at the lowest plotted value if that is
// negative.
func Zero() Baseline {
	return Baseline{Kind: ZeroBaseline}
}

// MinimumWithMaximum returns a Baseline at the lowest plotted value, but no
// higher than of.
func MinimumWithMaximum(of float64) Baseline {
	return Baseline{Kind: MinimumWithMaximumBaseline, Of: of}
}

// Minimum returns the axis minimum for the provided lowest plotted value.
func (b Baseline) Minimum(dataMin float64) float64 {
	switch b.Kind {
	case ZeroBaseline:
		return min(0, dataMin)
	case MinimumWithMaximumBaseline:
		return min(b.Of, dataMin)
	default:
		return dataMin
	}
}

// Define annotates with the receiving Baseline.
func (b Baseline) Define() util.PropertyUpdate {
	kind := b.Kind
	if kind == "" {
		kind = MinimumValueBaseline
	}
	return util.Chain(
		util.StringProperty(baselineKey, string(kind)),
		util.If(kind == MinimumWithMaximumBaseline, util.DoubleProperty(baselineOfKey, b.Of)),
	)
}

// ChartStyle describes chart-level styling shared by line and bar charts.
type ChartStyle struct {
	InfoBoxPlacement         InfoBoxPlacement
	InfoBoxValueColour       string
	InfoBoxDescriptionColour string

	XAxisGridStyle     GridStyle
	XAxisLabelPosition XAxisLabelPosition
	XAxisLabelColour   string
	XAxisLabelsFrom    LabelsFrom

	YAxisGridStyle      GridStyle
	YAxisLabelPosition  YAxisLabelPosition
	YAxisLabelColour    string
	YAxisNumberOfLabels int64

	Baseline Baseline
}

// DefaultChartStyle returns the ChartStyle used when none is specified.
func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		InfoBoxPlacement:         FloatingBox,
		InfoBoxValueColour:       "black",
		InfoBoxDescriptionColour: "black",
		XAxisGridStyle:           DefaultGridStyle(),
		XAxisLabelPosition:       XAxisBottom,
		XAxisLabelColour:         "black",
		XAxisLabelsFrom:          FromDataPoint,
		YAxisGridStyle:           DefaultGridStyle(),
		YAxisLabelPosition:       YAxisLeading,
		YAxisLabelColour:         "black",
		YAxisNumberOfLabels:      10,
		Baseline:                 MinimumValue(),
	}
}

// Define annotates with the receiving ChartStyle.
func (cs ChartStyle) Define() util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(infoBoxPlacementKey, string(cs.InfoBoxPlacement)),
		util.StringProperty(infoBoxValueColourKey, cs.InfoBoxValueColour),
		util.StringProperty(infoBoxDescriptionColourKey, cs.InfoBoxDescriptionColour),
		cs.XAxisGridStyle.Define("x_axis"),
		util.StringProperty(xAxisLabelPositionKey, string(cs.XAxisLabelPosition)),
		util.StringProperty(xAxisLabelColourKey, cs.XAxisLabelColour),
		util.StringProperty(xAxisLabelsFromKey, string(cs.XAxisLabelsFrom)),
		cs.YAxisGridStyle.Define("y_axis"),
		util.StringProperty(yAxisLabelPositionKey, string(cs.YAxisLabelPosition)),
		util.StringProperty(yAxisLabelColourKey, cs.YAxisLabelColour),
		util.IntegerProperty(yAxisNumberOfLabelsKey, cs.YAxisNumberOfLabels),
		cs.Baseline.Define(),
	)
}
