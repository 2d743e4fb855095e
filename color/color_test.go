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

package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	testutil "github.com/ilhamster/chartviz/test_util"
	"github.com/ilhamster/chartviz/util"
)

func TestDefine(t *testing.T) {
	for _, test := range []struct {
		description string
		style       Style
		wantUpdates []util.PropertyUpdate
	}{{
		description: "solid",
		style:       Solid{Colour: "red"},
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty("fill_colour_type", "colour"),
			util.StringProperty("fill_colour", "red"),
		},
	}, {
		description: "gradient",
		style: Gradient{
			Colours:    []string{"red", "blue"},
			StartPoint: Top,
			EndPoint:   Bottom,
		},
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty("fill_colour_type", "gradient_colour"),
			util.StringsProperty("fill_colours", "red", "blue"),
			util.DoublesProperty("fill_start_point", 0.5, 0),
			util.DoublesProperty("fill_end_point", 0.5, 1),
		},
	}, {
		description: "gradient stops",
		style: GradientStops{
			Stops: []Stop{
				{Colour: "red", Location: 0},
				{Colour: "blue", Location: 0.75},
			},
			StartPoint: Leading,
			EndPoint:   Trailing,
		},
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty("fill_colour_type", "gradient_stops"),
			util.StringsProperty("fill_stop_colours", "red", "blue"),
			util.DoublesProperty("fill_stop_locations", 0, 0.75),
			util.DoublesProperty("fill_start_point", 0, 0.5),
			util.DoublesProperty("fill_end_point", 1, 0.5),
		},
	}, {
		description: "nil style defines nothing",
	}} {
		t.Run(test.description, func(t *testing.T) {
			if msg, failed := testutil.NewUpdateComparator().
				WithTestUpdates(Define("fill", test.style)).
				WithWantUpdates(test.wantUpdates...).
				Compare(t); failed {
				t.Fatal(msg)
			}
		})
	}
}

func TestValid(t *testing.T) {
	for _, test := range []struct {
		description string
		style       Style
		want        bool
	}{{
		description: "nil",
	}, {
		description: "solid",
		style:       Solid{Colour: "red"},
		want:        true,
	}, {
		description: "solid without colour",
		style:       Solid{},
	}, {
		description: "gradient",
		style:       Gradient{Colours: []string{"red"}},
		want:        true,
	}, {
		description: "gradient without colours",
		style:       Gradient{},
	}, {
		description: "stops",
		style:       GradientStops{Stops: []Stop{{Colour: "red"}}},
		want:        true,
	}, {
		description: "stops without stops",
		style:       GradientStops{StartPoint: Top},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if got := Valid(test.style); got != test.want {
				t.Errorf("Valid(%v) = %t, want %t", test.style, got, test.want)
			}
		})
	}
}

func TestHorizontal(t *testing.T) {
	for _, test := range []struct {
		description string
		style       Style
		want        Style
	}{{
		description: "nil",
	}, {
		description: "solid is unchanged",
		style:       Solid{Colour: "red"},
		want:        Solid{Colour: "red"},
	}, {
		description: "gradient is made horizontal",
		style:       Gradient{Colours: []string{"red", "blue"}, StartPoint: Top, EndPoint: Bottom},
		want:        Gradient{Colours: []string{"red", "blue"}, StartPoint: Leading, EndPoint: Trailing},
	}, {
		description: "stops are made horizontal",
		style:       GradientStops{Stops: []Stop{{Colour: "red"}}, StartPoint: Bottom, EndPoint: Top},
		want:        GradientStops{Stops: []Stop{{Colour: "red"}}, StartPoint: Leading, EndPoint: Trailing},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if diff := cmp.Diff(test.want, Horizontal(test.style)); diff != "" {
				t.Errorf("Horizontal() diff (-want +got):\n%s", diff)
			}
		})
	}
}
