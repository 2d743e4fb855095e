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

package infoview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	barchart "github.com/ilhamster/chartviz/bar_chart"
	"github.com/ilhamster/chartviz/chart"
	"github.com/ilhamster/chartviz/color"
	datapoint "github.com/ilhamster/chartviz/data_point"
	dataset "github.com/ilhamster/chartviz/data_set"
	linechart "github.com/ilhamster/chartviz/line_chart"
	"github.com/ilhamster/chartviz/style"
	testutil "github.com/ilhamster/chartviz/test_util"
	"github.com/ilhamster/chartviz/util"
)

func TestTouch(t *testing.T) {
	points := []*datapoint.Point{
		datapoint.New(10, datapoint.WithID("mon")),
		datapoint.New(20, datapoint.WithID("tue")),
	}
	c := barchart.New(dataset.New("week", style.NewBarStyle(color.Solid{Colour: "blue"}), points...))
	touch := chart.Location{X: 150, Y: 20}
	g := chart.Geometry{Width: 200, Height: 100}
	var s State
	s.Touch(c, touch, g)
	want := State{
		IsTouchCurrent: true,
		TouchLocation:  touch,
		ChartSize:      g,
		Points:         []*datapoint.Point{points[1]},
		Locations:      []chart.Location{{X: 150, Y: 0}},
	}
	if diff := cmp.Diff(want, s, cmp.Comparer(func(a, b *datapoint.Point) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("Touch() diff (-want +got):\n%s", diff)
	}
	first := s
	s.Touch(c, touch, g)
	if diff := cmp.Diff(first, s, cmp.Comparer(func(a, b *datapoint.Point) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("repeated Touch() differed (-first +second):\n%s", diff)
	}
	s.End()
	if diff := cmp.Diff(State{}, s, cmp.Comparer(func(a, b *datapoint.Point) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("End() left state (-want +got):\n%s", diff)
	}
}

func TestStateDefine(t *testing.T) {
	points := []*datapoint.Point{
		datapoint.New(1, datapoint.WithID("a0")),
		datapoint.New(2, datapoint.WithID("a1")),
	}
	c := linechart.New(dataset.New("a", style.NewLineStyle(color.Solid{Colour: "red"}), points...))
	for _, test := range []struct {
		description   string
		buildState    func(s *State)
		buildExplicit func(db testutil.TestDataBuilder)
	}{{
		description: "no touch",
		buildState:  func(s *State) {},
		buildExplicit: func(db testutil.TestDataBuilder) {
			db.With(util.BoolProperty(isTouchCurrentKey, false))
		},
	}, {
		description: "touching a point",
		buildState: func(s *State) {
			s.Touch(c, chart.Location{X: 90, Y: 5}, chart.Geometry{Width: 100, Height: 50})
		},
		buildExplicit: func(db testutil.TestDataBuilder) {
			db.With(
				util.BoolProperty(isTouchCurrentKey, true),
				util.DoubleProperty(touchPrefix+"x", 90),
				util.DoubleProperty(touchPrefix+"y", 5),
				util.DoubleProperty(chartWidthKey, 100),
				util.DoubleProperty(chartHeightKey, 50),
			).Child().With(
				points[1].Define(),
				util.DoubleProperty(locationPrefix+"x", 100),
				util.DoubleProperty(locationPrefix+"y", 0),
			)
		},
	}, {
		description: "touch ended",
		buildState: func(s *State) {
			s.Touch(c, chart.Location{X: 90, Y: 5}, chart.Geometry{Width: 100, Height: 50})
			s.End()
		},
		buildExplicit: func(db testutil.TestDataBuilder) {
			db.With(util.BoolProperty(isTouchCurrentKey, false))
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if err := testutil.CompareResponses(t,
				func(db util.DataBuilder) {
					var s State
					test.buildState(&s)
					s.Define(db)
				},
				test.buildExplicit,
			); err != nil {
				t.Fatalf("encountered unexpected error building the state: %s", err)
			}
		})
	}
}

func TestFloatingView(t *testing.T) {
	left := TextView{Title: "20 steps", Colour: "black"}
	right := TextView{Title: "Monday", Font: "caption"}
	a := NewFloatingView(left, right)
	b := NewFloatingView(left, right)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("floating views should have distinct, nonempty IDs; got %q and %q", a.ID, b.ID)
	}
	if msg, failed := testutil.NewUpdateComparator().
		WithTestUpdates(a.Define()).
		WithWantUpdates(
			util.StringProperty(floatingIDKey, a.ID),
			util.StringProperty("info_left_title", "20 steps"),
			util.StringProperty("info_left_colour", "black"),
			util.StringProperty("info_right_title", "Monday"),
			util.StringProperty("info_right_font", "caption"),
		).
		Compare(t); failed {
		t.Fatal(msg)
	}
}
