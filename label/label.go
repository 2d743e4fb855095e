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

// Package label supports labeling chart items.
package label

import "github.com/ilhamster/chartviz/util"

const (
	// xAxisLabelKey is the label drawn for an item along the x axis.
	xAxisLabelKey = "x_axis_label"
	// descriptionKey is an item's longer description, shown in overlays.
	descriptionKey = "description"
)

// XAxis returns a PropertyUpdate that labels an item along the x axis.
func XAxis(text string) util.PropertyUpdate {
	return util.StringProperty(xAxisLabelKey, text)
}

// Description returns a PropertyUpdate that attaches a description.
func Description(text string) util.PropertyUpdate {
	return util.StringProperty(descriptionKey, text)
}
