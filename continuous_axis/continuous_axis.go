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

// Package continuousaxis provides the value axis of bar and line charts.
// An axis has a category naming it, and minimum and maximum points along its
// domain.  The minimum is chosen by the chart's baseline: either the smallest
// plotted value, zero, or some bounded value.
package continuousaxis

import (
	"math"

	"github.com/ilhamster/chartviz/category"
	"github.com/ilhamster/chartviz/style"
	"github.com/ilhamster/chartviz/util"
)

const (
	axisTypeKey = "axis_type"
	axisMinKey  = "axis_min"
	axisMaxKey  = "axis_max"

	doubleAxisType = "double"
)

// Axis is a continuous value axis.
type Axis struct {
	cat      *category.Category
	min, max float64
}

// New returns a new Axis spanning the provided values, with its minimum set
// by the provided baseline.  With no values, the axis spans [0, 0].
func New(cat *category.Category, baseline style.Baseline, values ...float64) *Axis {
	if len(values) == 0 {
		return &Axis{cat: cat}
	}
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range values {
		if min > v {
			min = v
		}
		if max < v {
			max = v
		}
	}
	return &Axis{
		cat: cat,
		min: baseline.Minimum(min),
		max: max,
	}
}

// Min returns the receiver's minimum value.
func (a *Axis) Min() float64 {
	return a.min
}

// Max returns the receiver's maximum value.
func (a *Axis) Max() float64 {
	return a.max
}

// Range returns the span of the receiver.  A degenerate axis, whose minimum
// and maximum coincide, reports a range of 1.
func (a *Axis) Range() float64 {
	if r := a.max - a.min; r > 0 {
		return r
	}
	return 1
}

// PixelY returns the vertical pixel offset, from the top of a chart of the
// provided height, at which v is drawn.
func (a *Axis) PixelY(v, height float64) float64 {
	return height - (v-a.min)*(height/a.Range())
}

// CategoryID returns the ID of the receiver's category.
func (a *Axis) CategoryID() string {
	return a.cat.ID()
}

// Define annotates with the receiving Axis.
func (a *Axis) Define() util.PropertyUpdate {
	return util.Chain(
		a.cat.Define(),
		util.StringProperty(axisTypeKey, doubleAxisType),
		util.DoubleProperty(axisMinKey, a.min),
		util.DoubleProperty(axisMaxKey, a.max),
	)
}
