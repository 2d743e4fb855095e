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

// Package infoview provides the view-models of touch overlays: the state of
// the current touch on a chart, and the labels a floating overlay shows.
package infoview

import (
	"github.com/google/uuid"
	"github.com/ilhamster/chartviz/chart"
	datapoint "github.com/ilhamster/chartviz/data_point"
	"github.com/ilhamster/chartviz/util"
)

const (
	isTouchCurrentKey = "info_is_touch_current"
	touchPrefix       = "info_touch_"
	chartWidthKey     = "info_chart_width"
	chartHeightKey    = "info_chart_height"
	locationPrefix    = "info_location_"

	floatingIDKey = "info_floating_id"
	leftPrefix    = "info_left_"
	rightPrefix   = "info_right_"
	titleKey      = "title"
	colourKey     = "colour"
	fontKey       = "font"
)

// State is the state of the touch, if any, on a chart.
type State struct {
	IsTouchCurrent bool
	TouchLocation  chart.Location
	ChartSize      chart.Geometry
	// Points holds the data points under the touch, and Locations their
	// pixel locations, index for index.
	Points    []*datapoint.Point
	Locations []chart.Location
}

// Touch records a touch at the provided location on c, drawn with the
// provided geometry, resolving the data points beneath it.
func (s *State) Touch(c chart.Data, touch chart.Location, g chart.Geometry) {
	s.IsTouchCurrent = true
	s.TouchLocation = touch
	s.ChartSize = g
	s.Points = c.DataPoints(touch, g)
	s.Locations = c.PointLocations(touch, g)
}

// End clears the receiver when a touch ends.
func (s *State) End() {
	*s = State{}
}

// Define annotates db with the receiving State, adding a child of db for
// each resolved point.
func (s *State) Define(db util.DataBuilder) {
	db.With(
		util.BoolProperty(isTouchCurrentKey, s.IsTouchCurrent),
		util.If(s.IsTouchCurrent, s.TouchLocation.Define(touchPrefix)),
		util.If(s.IsTouchCurrent, util.DoubleProperty(chartWidthKey, s.ChartSize.Width)),
		util.If(s.IsTouchCurrent, util.DoubleProperty(chartHeightKey, s.ChartSize.Height)),
	)
	for idx, p := range s.Points {
		child := db.Child().With(p.Define())
		if idx < len(s.Locations) {
			child.With(s.Locations[idx].Define(locationPrefix))
		}
	}
}

// TextView is a single styled overlay label.
type TextView struct {
	Title  string
	Colour string
	Font   string
}

// Define annotates with the receiving TextView under the provided key
// prefix.  Empty fields are omitted.
func (tv TextView) Define(prefix string) util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(prefix+titleKey, tv.Title),
		util.If(tv.Colour != "", util.StringProperty(prefix+colourKey, tv.Colour)),
		util.If(tv.Font != "", util.StringProperty(prefix+fontKey, tv.Font)),
	)
}

// FloatingView is an overlay of two labels floating beside a touch.
type FloatingView struct {
	ID          string
	Left, Right TextView
}

// NewFloatingView returns a new FloatingView with a generated ID.
func NewFloatingView(left, right TextView) *FloatingView {
	return &FloatingView{
		ID:    uuid.NewString(),
		Left:  left,
		Right: right,
	}
}

// Define annotates with the receiving FloatingView.
func (fv *FloatingView) Define() util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(floatingIDKey, fv.ID),
		fv.Left.Define(leftPrefix),
		fv.Right.Define(rightPrefix),
	)
}
