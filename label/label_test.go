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

package label

import (
	"testing"

	testutil "github.com/ilhamster/chartviz/test_util"
	"github.com/ilhamster/chartviz/util"
)

func TestLabels(t *testing.T) {
	for _, test := range []struct {
		description string
		updates     []util.PropertyUpdate
		want        []util.PropertyUpdate
	}{{
		description: "x-axis label",
		updates:     []util.PropertyUpdate{XAxis("Mon")},
		want:        []util.PropertyUpdate{util.StringProperty(xAxisLabelKey, "Mon")},
	}, {
		description: "description",
		updates:     []util.PropertyUpdate{Description("Monday steps")},
		want:        []util.PropertyUpdate{util.StringProperty(descriptionKey, "Monday steps")},
	}, {
		description: "both",
		updates:     []util.PropertyUpdate{XAxis("Mon"), Description("Monday steps")},
		want: []util.PropertyUpdate{
			util.StringProperty(descriptionKey, "Monday steps"),
			util.StringProperty(xAxisLabelKey, "Mon"),
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			if msg, failed := testutil.NewUpdateComparator().
				WithTestUpdates(test.updates...).
				WithWantUpdates(test.want...).
				Compare(t); failed {
				t.Fatal(msg)
			}
		})
	}
}
