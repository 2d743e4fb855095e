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
	"testing"

	"github.com/ilhamster/chartviz/color"
	testutil "github.com/ilhamster/chartviz/test_util"
	"github.com/ilhamster/chartviz/util"
)

func TestStyles(t *testing.T) {
	for _, test := range []struct {
		description string
		style       util.PropertyUpdate
		wantUpdates []util.PropertyUpdate
	}{{
		description: "dashed stroke",
		style: Stroke{
			LineWidth: 2,
			LineCap:   ButtCap,
			Dash:      []float64{4, 2},
			DashPhase: 1,
		}.Define(),
		wantUpdates: []util.PropertyUpdate{
			util.DoubleProperty(strokeLineWidthKey, 2),
			util.StringProperty(strokeLineCapKey, "butt"),
			util.DoubleProperty(strokeMiterLimitKey, 0),
			util.DoublesProperty(strokeDashKey, 4, 2),
			util.DoubleProperty(strokeDashPhaseKey, 1),
		},
	}, {
		description: "line style",
		style:       NewLineStyle(color.Solid{Colour: "red"}).Define(),
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty("style_line_colour_type", "colour"),
			util.StringProperty("style_line_colour", "red"),
			util.StringProperty(lineTypeKey, "curved"),
			util.DoubleProperty(strokeLineWidthKey, 3),
			util.StringProperty(strokeLineCapKey, "round"),
			util.StringProperty(strokeLineJoinKey, "round"),
			util.DoubleProperty(strokeMiterLimitKey, 10),
			util.IntegerProperty(ignoreZeroKey, 0),
		},
	}, {
		description: "bar style from data points",
		style: BarStyle{
			BarWidth:     0.5,
			CornerRadius: 2,
			ColourFrom:   FromDataPoints,
		}.Define(),
		wantUpdates: []util.PropertyUpdate{
			util.DoubleProperty(barWidthKey, 0.5),
			util.DoubleProperty(barCornerRadiusKey, 2),
			util.StringProperty(colourFromKey, "data_points"),
		},
	}, {
		description: "grid style",
		style:       GridStyle{NumberOfLines: 4, LineColour: "grey", LineWidth: 1}.Define("y_axis"),
		wantUpdates: []util.PropertyUpdate{
			util.IntegerProperty("y_axis_"+gridNumberOfLinesKey, 4),
			util.StringProperty("y_axis_"+gridLineColourKey, "grey"),
			util.DoubleProperty("y_axis_"+gridLineWidthKey, 1),
		},
	}, {
		description: "bounded baseline",
		style:       MinimumWithMaximum(5).Define(),
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty(baselineKey, "minimum_with_maximum"),
			util.DoubleProperty(baselineOfKey, 5),
		},
	}, {
		description: "zero-valued baseline is minimum value",
		style:       Baseline{}.Define(),
		wantUpdates: []util.PropertyUpdate{
			util.StringProperty(baselineKey, "minimum_value"),
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if msg, failed := testutil.NewUpdateComparator().
				WithTestUpdates(test.style).
				WithWantUpdates(test.wantUpdates...).
				Compare(t); failed {
				t.Fatal(msg)
			}
		})
	}
}

func TestBaselineMinimum(t *testing.T) {
	for _, test := range []struct {
		description string
		baseline    Baseline
		dataMin     float64
		want        float64
	}{{
		description: "minimum value",
		baseline:    MinimumValue(),
		dataMin:     20,
		want:        20,
	}, {
		description: "unset behaves as minimum value",
		dataMin:     20,
		want:        20,
	}, {
		description: "zero",
		baseline:    Zero(),
		dataMin:     20,
		want:        0,
	}, {
		description: "zero with negative data",
		baseline:    Zero(),
		dataMin:     -5,
		want:        -5,
	}, {
		description: "bounded above",
		baseline:    MinimumWithMaximum(10),
		dataMin:     20,
		want:        10,
	}, {
		description: "bound not reached",
		baseline:    MinimumWithMaximum(10),
		dataMin:     5,
		want:        5,
	}} {
		t.Run(test.description, func(t *testing.T) {
			if got := test.baseline.Minimum(test.dataMin); got != test.want {
				t.Errorf("Minimum(%f) = %f, want %f", test.dataMin, got, test.want)
			}
		})
	}
}
