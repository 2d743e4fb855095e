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

package testutil

import (
	"testing"

	"github.com/ilhamster/chartviz/util"
)

func TestUpdateComparator(t *testing.T) {
	for _, test := range []struct {
		description string
		comparator  *UpdateComparator
		different   bool
	}{{
		description: "equal simple updates",
		comparator: NewUpdateComparator().
			WithTestUpdates(util.StringProperty("legend", "Monday")).
			WithWantUpdates(util.StringProperty("legend", "Monday")),
	}, {
		description: "order independence",
		comparator: NewUpdateComparator().
			WithTestUpdates(
				util.StringProperty("legend", "Monday"),
				util.IntegerProperty("priority", 1),
			).
			WithWantUpdates(
				util.IntegerProperty("priority", 1),
				util.StringProperty("legend", "Monday"),
			),
	}, {
		description: "redefinition",
		comparator: NewUpdateComparator().
			WithTestUpdates(
				util.DoubleProperty("group_spacing", 5),
				util.DoubleProperty("group_spacing", 10),
			).
			WithWantUpdates(
				util.DoubleProperty("group_spacing", 10),
			),
	}, {
		description: "unequal strings",
		comparator: NewUpdateComparator().
			WithTestUpdates(util.StringProperty("legend", "Monday")).
			WithWantUpdates(util.StringProperty("legend", "Tuesday")),
		different: true,
	}, {
		description: "unequal numeric types",
		comparator: NewUpdateComparator().
			WithTestUpdates(util.IntegerProperty("priority", 1)).
			WithWantUpdates(util.DoubleProperty("priority", 1)),
		different: true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			gotMsg, different := test.comparator.Compare(t)
			if test.different != different {
				t.Errorf("Compare() yielded unexpected return message '%s'", gotMsg)
			}
		})
	}
}

func TestCompareResponses(t *testing.T) {
	err := CompareResponses(t,
		func(db util.DataBuilder) {
			db.With(util.StringProperty("title", "Week")).
				Child().With(util.DoubleProperty("value", 1))
			db.Child().With(util.DoubleProperty("value", 2))
		},
		func(db TestDataBuilder) {
			db.With(util.StringProperty("title", "Week")).
				Child().With(util.DoubleProperty("value", 1)).
				AndChild().With(util.DoubleProperty("value", 2))
		},
	)
	if err != nil {
		t.Fatalf("CompareResponses() yielded unexpected error %s", err)
	}
}
