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

import (
	"github.com/ilhamster/chartviz/color"
	"github.com/ilhamster/chartviz/util"
)

const (
	lineTypeKey        = keyPrefix + "line_type"
	ignoreZeroKey      = keyPrefix + "ignore_zero"
	barWidthKey        = keyPrefix + "bar_width"
	barCornerRadiusKey = keyPrefix + "bar_corner_radius"
	colourFromKey      = keyPrefix + "colour_from"

	lineColourPrefix = keyPrefix + "line"
	barColourPrefix  = keyPrefix + "bar"
)

// LineType is how consecutive points of a line are joined.
type LineType string

// Supported line types.
const (
	Line   LineType = "line"
	Curved LineType = "curved"
)

// LineStyle describes how a line data set is drawn.
type LineStyle struct {
	Colour   color.Style
	LineType LineType
	Stroke   Stroke
	// If true, points with a value of zero are not drawn.
	IgnoreZero bool
}

// NewLineStyle returns a LineStyle with the provided colour and default
// line type and stroke.
func NewLineStyle(colour color.Style) LineStyle {
	return LineStyle{
		Colour:   colour,
		LineType: Curved,
		Stroke:   DefaultStroke(),
	}
}

// Define annotates with the receiving LineStyle.
func (ls LineStyle) Define() util.PropertyUpdate {
	return util.Chain(
		color.Define(lineColourPrefix, ls.Colour),
		util.StringProperty(lineTypeKey, string(ls.LineType)),
		ls.Stroke.Define(),
		util.BoolProperty(ignoreZeroKey, ls.IgnoreZero),
	)
}

// ColourFrom specifies where a bar chart's bar colours come from.
type ColourFrom string

const (
	// FromBarStyle colours every bar in a data set with the data set's
	// colour.
	FromBarStyle ColourFrom = "bar_style"
	// FromDataPoints colours each bar with its own data point's colour.
	FromDataPoints ColourFrom = "data_points"
)

// BarStyle describes how a bar data set is drawn.
type BarStyle struct {
	// BarWidth is the fraction, from 0 to 1, of its slot a bar occupies.
	BarWidth     float64
	CornerRadius float64
	ColourFrom   ColourFrom
	Colour       color.Style
}

// NewBarStyle returns a BarStyle coloured from the bar style with the
// provided colour.
func NewBarStyle(colour color.Style) BarStyle {
	return BarStyle{
		BarWidth:   1,
		ColourFrom: FromBarStyle,
		Colour:     colour,
	}
}

// Define annotates with the receiving BarStyle.
func (bs BarStyle) Define() util.PropertyUpdate {
	return util.Chain(
		util.DoubleProperty(barWidthKey, bs.BarWidth),
		util.DoubleProperty(barCornerRadiusKey, bs.CornerRadius),
		util.StringProperty(colourFromKey, string(bs.ColourFrom)),
		color.Define(barColourPrefix, bs.Colour),
	)
}
