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

// Package style supports specifying how lines, points, bars, grids, and whole
// charts are drawn.
//
// Styles are plain values; each may be attached to a Datum with its
// `Define()` method.  Which attributes a renderer honors is up to it, but
// stroke attributes follow the names and meanings of the SVG stroke
// attributes, e.g. https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute.
package style

import (
	"fmt"

	"github.com/ilhamster/chartviz/util"
)

const (
	keyPrefix = "style_"

	strokeLineWidthKey  = keyPrefix + "stroke_line_width"
	strokeLineCapKey    = keyPrefix + "stroke_line_cap"
	strokeLineJoinKey   = keyPrefix + "stroke_line_join"
	strokeMiterLimitKey = keyPrefix + "stroke_miter_limit"
	strokeDashKey       = keyPrefix + "stroke_dash"
	strokeDashPhaseKey  = keyPrefix + "stroke_dash_phase"
)

// LineCap is the shape at the end of an open stroked line.
type LineCap string

// Supported line caps.
const (
	ButtCap   LineCap = "butt"
	RoundCap  LineCap = "round"
	SquareCap LineCap = "square"
)

// LineJoin is the shape at the corner of a stroked line.
type LineJoin string

// Supported line joins.
const (
	MiterJoin LineJoin = "miter"
	RoundJoin LineJoin = "round"
	BevelJoin LineJoin = "bevel"
)

// Stroke describes how a line is stroked.
type Stroke struct {
	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// DefaultStroke returns the Stroke used when none is specified: a 3px line
// with round caps and joins.
func DefaultStroke() Stroke {
	return Stroke{
		LineWidth:  3,
		LineCap:    RoundCap,
		LineJoin:   RoundJoin,
		MiterLimit: 10,
	}
}

// Define annotates with the receiving Stroke.
func (s Stroke) Define() util.PropertyUpdate {
	return util.Chain(
		util.DoubleProperty(strokeLineWidthKey, s.LineWidth),
		util.If(s.LineCap != "", util.StringProperty(strokeLineCapKey, string(s.LineCap))),
		util.If(s.LineJoin != "", util.StringProperty(strokeLineJoinKey, string(s.LineJoin))),
		util.DoubleProperty(strokeMiterLimitKey, s.MiterLimit),
		util.If(len(s.Dash) > 0, util.DoublesProperty(strokeDashKey, s.Dash...)),
		util.If(len(s.Dash) > 0, util.DoubleProperty(strokeDashPhaseKey, s.DashPhase)),
	)
}

// Px formats the provided value as a pixel specifier.
func Px(valPx float64) string {
	return fmt.Sprintf("%.2fpx", valPx)
}
