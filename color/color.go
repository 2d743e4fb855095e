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

// Package color supports declaring how chart items are colored.
//
// A Style is exactly one of:
//
//   - Solid, a single color;
//   - Gradient, a linear gradient over evenly spaced colors, running from a
//     start UnitPoint to an end UnitPoint;
//   - GradientStops, a linear gradient over colors at explicit locations.
//
// Colors are strings holding an HTML color representation: a color name or an
// RGB, RGBA, HSL, HSLA, or hex color specifier.  They are never interpreted
// here; the renderer resolves them.
//
// A data set's line might be styled with a red-to-blue gradient, and a single
// bar with a solid color, via:
//
//	lineColour := color.Gradient{
//	  Colours:    []string{"red", "blue"},
//	  StartPoint: color.Leading,
//	  EndPoint:   color.Trailing,
//	}
//	barColour := color.Solid{Colour: "#ff8800"}
//
// A Style is attached to a Datum under a prefix, so that one Datum may carry
// several styles (e.g., a point's fill and its border):
//
//	db.With(color.Define("fill", barColour))
package color

import "github.com/ilhamster/chartviz/util"

const (
	typeKeySuffix          = "_colour_type"
	colourKeySuffix        = "_colour"
	coloursKeySuffix       = "_colours"
	stopColoursKeySuffix   = "_stop_colours"
	stopLocationsKeySuffix = "_stop_locations"
	startPointKeySuffix    = "_start_point"
	endPointKeySuffix      = "_end_point"

	solidType         = "colour"
	gradientType      = "gradient_colour"
	gradientStopsType = "gradient_stops"
)

// UnitPoint is a normalized point within an item's bounding box: (0, 0) is
// the top-leading corner and (1, 1) the bottom-trailing corner.
type UnitPoint struct {
	X, Y float64
}

// Named UnitPoints.
var (
	TopLeading     = UnitPoint{0, 0}
	Top            = UnitPoint{0.5, 0}
	TopTrailing    = UnitPoint{1, 0}
	Leading        = UnitPoint{0, 0.5}
	Center         = UnitPoint{0.5, 0.5}
	Trailing       = UnitPoint{1, 0.5}
	BottomLeading  = UnitPoint{0, 1}
	Bottom         = UnitPoint{0.5, 1}
	BottomTrailing = UnitPoint{1, 1}
)

// Style is implemented by Solid, Gradient, and GradientStops.
type Style interface {
	define(prefix string) util.PropertyUpdate
	valid() bool
	horizontal() Style
}

// Solid is a single color.
type Solid struct {
	Colour string
}

func (s Solid) define(prefix string) util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(prefix+typeKeySuffix, solidType),
		util.StringProperty(prefix+colourKeySuffix, s.Colour),
	)
}

func (s Solid) valid() bool {
	return s.Colour != ""
}

func (s Solid) horizontal() Style {
	return s
}

// Gradient is a linear gradient over evenly spaced colors.
type Gradient struct {
	Colours              []string
	StartPoint, EndPoint UnitPoint
}

func (g Gradient) define(prefix string) util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(prefix+typeKeySuffix, gradientType),
		util.StringsProperty(prefix+coloursKeySuffix, g.Colours...),
		definePoint(prefix+startPointKeySuffix, g.StartPoint),
		definePoint(prefix+endPointKeySuffix, g.EndPoint),
	)
}

func (g Gradient) valid() bool {
	return len(g.Colours) > 0
}

func (g Gradient) horizontal() Style {
	g.StartPoint, g.EndPoint = Leading, Trailing
	return g
}

// Stop is a color at a location, from 0 to 1, along a gradient.
type Stop struct {
	Colour   string
	Location float64
}

// GradientStops is a linear gradient over colors at explicit locations.
type GradientStops struct {
	Stops                []Stop
	StartPoint, EndPoint UnitPoint
}

func (gs GradientStops) define(prefix string) util.PropertyUpdate {
	colours := make([]string, len(gs.Stops))
	locations := make([]float64, len(gs.Stops))
	for idx, stop := range gs.Stops {
		colours[idx] = stop.Colour
		locations[idx] = stop.Location
	}
	return util.Chain(
		util.StringProperty(prefix+typeKeySuffix, gradientStopsType),
		util.StringsProperty(prefix+stopColoursKeySuffix, colours...),
		util.DoublesProperty(prefix+stopLocationsKeySuffix, locations...),
		definePoint(prefix+startPointKeySuffix, gs.StartPoint),
		definePoint(prefix+endPointKeySuffix, gs.EndPoint),
	)
}

func (gs GradientStops) valid() bool {
	return len(gs.Stops) > 0
}

func (gs GradientStops) horizontal() Style {
	gs.StartPoint, gs.EndPoint = Leading, Trailing
	return gs
}

func definePoint(key string, p UnitPoint) util.PropertyUpdate {
	return util.DoublesProperty(key, p.X, p.Y)
}

// Valid returns true if the provided Style carries the payload its variant
// requires.  A nil Style is not valid.
func Valid(s Style) bool {
	return s != nil && s.valid()
}

// Horizontal returns the provided Style with any gradient running from
// Leading to Trailing, as legend swatches are drawn.
func Horizontal(s Style) Style {
	if s == nil {
		return nil
	}
	return s.horizontal()
}

// Define annotates with the provided Style under the provided key prefix.  A
// nil Style defines nothing.
func Define(prefix string, s Style) util.PropertyUpdate {
	if s == nil {
		return util.EmptyUpdate
	}
	return s.define(prefix)
}
