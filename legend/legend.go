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

// Package legend derives chart legends from data sets and data points.
//
// A legend Entry pairs a title with the colour swatch drawn beside it; line
// chart entries also carry the stroke of the line they describe.  Entries
// whose colour is malformed are never produced.  Swatches are always drawn
// horizontally, so gradient entries are rewritten to run leading to
// trailing.
package legend

import (
	"github.com/ilhamster/chartviz/color"
	datapoint "github.com/ilhamster/chartviz/data_point"
	"github.com/ilhamster/chartviz/style"
	"github.com/ilhamster/chartviz/util"
)

const (
	idKey        = "legend_id"
	legendKey    = "legend"
	priorityKey  = "legend_priority"
	chartTypeKey = "legend_chart_type"
	colourKey    = "legend"

	// defaultPriority is the priority of every derived Entry.
	defaultPriority = 1
)

// ChartType is the kind of chart a legend Entry's swatch is drawn for.
type ChartType string

const (
	// Line entries are drawn as a stroked line segment.
	Line ChartType = "line"
	// Bar entries are drawn as a filled box.
	Bar ChartType = "bar"
)

// Entry is a single legend entry.
type Entry struct {
	// ID is the ID of the data set or data point the Entry describes.
	ID        string
	Legend    string
	Colour    color.Style
	Stroke    *style.Stroke
	Priority  int
	ChartType ChartType
}

// ForSet returns the legend Entry for a data set with the provided ID,
// title, colour and stroke.  It returns false if the colour is malformed.
func ForSet(id, title string, colour color.Style, stroke *style.Stroke, chartType ChartType) (*Entry, bool) {
	if !color.Valid(colour) {
		return nil, false
	}
	return &Entry{
		ID:        id,
		Legend:    title,
		Colour:    color.Horizontal(colour),
		Stroke:    stroke,
		Priority:  defaultPriority,
		ChartType: chartType,
	}, true
}

// ForPoints returns a legend Entry for each of the provided points, in
// order, labelled by the point's description.  Points lacking a description
// or a well-formed colour are skipped.
func ForPoints(points []*datapoint.Point, chartType ChartType) []*Entry {
	var ret []*Entry
	for _, p := range points {
		if p.Description() == "" {
			continue
		}
		if entry, ok := ForSet(p.ID(), p.Description(), p.Colour(), nil, chartType); ok {
			ret = append(ret, entry)
		}
	}
	return ret
}

// Define annotates with the receiving Entry.
func (e *Entry) Define() util.PropertyUpdate {
	var stroke util.PropertyUpdate
	if e.Stroke != nil {
		stroke = e.Stroke.Define()
	}
	return util.Chain(
		util.StringProperty(idKey, e.ID),
		util.StringProperty(legendKey, e.Legend),
		util.IntegerProperty(priorityKey, int64(e.Priority)),
		util.StringProperty(chartTypeKey, string(e.ChartType)),
		color.Define(colourKey, e.Colour),
		stroke,
	)
}

// Define adds a child of db for each of the provided entries.
func Define(db util.DataBuilder, entries ...*Entry) {
	for _, entry := range entries {
		db.Child().With(entry.Define())
	}
}
