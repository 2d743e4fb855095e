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

// Package dataset defines series of data points and groups of such series.
// A Set carries the style its chart draws it with, so it is generic over
// that style: style.LineStyle for line charts and style.BarStyle for bar
// charts.
package dataset

import (
	"github.com/google/uuid"
	"github.com/ilhamster/chartviz/category"
	datapoint "github.com/ilhamster/chartviz/data_point"
	"github.com/ilhamster/chartviz/style"
)

// Styles is the set of styles a Set may carry.
type Styles interface {
	style.LineStyle | style.BarStyle
}

// Calculation is an aggregation applied to a Set's points when a chart is
// built from it, such as a moving average.  Nil means no calculation.
type Calculation func(points []*datapoint.Point) []*datapoint.Point

// Set is a single series of data points.
type Set[S Styles] struct {
	ID          string
	Points      []*datapoint.Point
	LegendTitle string
	Style       S
}

// New returns a new Set with a generated ID.
func New[S Styles](legendTitle string, s S, points ...*datapoint.Point) *Set[S] {
	return &Set[S]{
		ID:          uuid.NewString(),
		Points:      points,
		LegendTitle: legendTitle,
		Style:       s,
	}
}

// Category returns a Category identifying the receiver in encoded charts.
func (s *Set[S]) Category() *category.Category {
	return category.New(s.ID, s.LegendTitle)
}

// IsLast returns true if p is the receiver's final point.  Points are first
// compared by identity, then by value.
func (s *Set[S]) IsLast(p *datapoint.Point) bool {
	if len(s.Points) == 0 || p == nil {
		return false
	}
	last := s.Points[len(s.Points)-1]
	return last.Equal(p) || last.SameValue(p)
}

// MinValue returns the smallest value in the receiver, or 0 if it is empty.
func (s *Set[S]) MinValue() float64 {
	return extent(func(a, b float64) bool { return a < b }, s)
}

// MaxValue returns the largest value in the receiver, or 0 if it is empty.
func (s *Set[S]) MaxValue() float64 {
	return extent(func(a, b float64) bool { return a > b }, s)
}

// Range returns the difference between the receiver's largest and smallest
// values.
func (s *Set[S]) Range() float64 {
	return s.MaxValue() - s.MinValue()
}

// Apply returns a copy of the receiver with calc applied to its points.  A
// nil calc returns the receiver unchanged.
func (s *Set[S]) Apply(calc Calculation) *Set[S] {
	if calc == nil {
		return s
	}
	ret := *s
	ret.Points = calc(s.Points)
	return &ret
}

// Multi is a group of Sets plotted together.
type Multi[S Styles] struct {
	Sets []*Set[S]
}

// NewMulti returns a new Multi containing the provided Sets.
func NewMulti[S Styles](sets ...*Set[S]) *Multi[S] {
	return &Multi[S]{Sets: sets}
}

// MinValue returns the smallest value across all the receiver's Sets, or 0
// if none have points.
func (m *Multi[S]) MinValue() float64 {
	return extent(func(a, b float64) bool { return a < b }, m.Sets...)
}

// MaxValue returns the largest value across all the receiver's Sets, or 0 if
// none have points.
func (m *Multi[S]) MaxValue() float64 {
	return extent(func(a, b float64) bool { return a > b }, m.Sets...)
}

// Range returns the difference between the largest and smallest values
// across all the receiver's Sets.
func (m *Multi[S]) Range() float64 {
	return m.MaxValue() - m.MinValue()
}

// Values returns every value across all the receiver's Sets, in order.
func (m *Multi[S]) Values() []float64 {
	var ret []float64
	for _, set := range m.Sets {
		for _, p := range set.Points {
			ret = append(ret, p.Value())
		}
	}
	return ret
}

// Apply returns a copy of the receiver with calc applied to every Set.
func (m *Multi[S]) Apply(calc Calculation) *Multi[S] {
	if calc == nil {
		return m
	}
	ret := &Multi[S]{Sets: make([]*Set[S], len(m.Sets))}
	for idx, set := range m.Sets {
		ret.Sets[idx] = set.Apply(calc)
	}
	return ret
}

// First returns the receiver's first Set, or nil if it has none.
func (m *Multi[S]) First() *Set[S] {
	if len(m.Sets) == 0 {
		return nil
	}
	return m.Sets[0]
}

func extent[S Styles](better func(a, b float64) bool, sets ...*Set[S]) float64 {
	var ret float64
	found := false
	for _, set := range sets {
		for _, p := range set.Points {
			if !found || better(p.Value(), ret) {
				ret = p.Value()
				found = true
			}
		}
	}
	return ret
}
