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

// Package testutil provides helpers for testing encoded chart data.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ilhamster/chartviz/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger returns a zap logger writing at debug level to the test's log.
func Logger(tb testing.TB) *zap.Logger {
	return zaptest.NewLogger(tb,
		zaptest.Level(zap.DebugLevel),
		zaptest.WrapOptions(zap.AddCaller(), zap.Development()),
	)
}

// UpdateComparator checks that a set of PropertyUpdates under test yields the
// same Datum as a set of wanted PropertyUpdates.  Property order within a
// Datum is irrelevant; later definitions of a key override earlier ones.
type UpdateComparator struct {
	got  []util.PropertyUpdate
	want []util.PropertyUpdate
}

// NewUpdateComparator returns a new, empty UpdateComparator.
func NewUpdateComparator() *UpdateComparator {
	return &UpdateComparator{}
}

// WithTestUpdates specifies the PropertyUpdates under test.
func (uc *UpdateComparator) WithTestUpdates(got ...util.PropertyUpdate) *UpdateComparator {
	uc.got = got
	return uc
}

// WithWantUpdates specifies the expected PropertyUpdates.
func (uc *UpdateComparator) WithWantUpdates(want ...util.PropertyUpdate) *UpdateComparator {
	uc.want = want
	return uc
}

// Compare returns a difference message and true if the receiver's test and
// want updates produce different Datums, or "" and false otherwise.
func (uc *UpdateComparator) Compare(t *testing.T) (string, bool) {
	t.Helper()
	drb := util.NewDataResponseBuilder()
	resp := drb.DataSeries(&util.DataSeriesRequest{})
	resp.Child().With(uc.got...)
	resp.Child().With(uc.want...)
	data, err := drb.Data()
	if err != nil {
		t.Fatalf("failed to build data: %s", err)
	}
	children := data.DataSeries[0].Root.Children
	diff := cmp.Diff(
		children[1].PrettyPrint("", data.StringTable),
		children[0].PrettyPrint("", data.StringTable))
	if diff != "" {
		return fmt.Sprintf("Got series %s, diff (-want +got):\n%s",
			data.DataSeries[0].PrettyPrint("", data.StringTable), diff), true
	}
	return "", false
}

// TestDataBuilder fluently assembles expected chart data in tests.
type TestDataBuilder interface {
	With(updates ...util.PropertyUpdate) TestDataBuilder
	Child() TestDataBuilder
	AndChild() TestDataBuilder
	Parent() TestDataBuilder
}

type testDataBuilder struct {
	db     util.DataBuilder
	parent *testDataBuilder
}

func (tdb *testDataBuilder) With(updates ...util.PropertyUpdate) TestDataBuilder {
	tdb.db.With(updates...)
	return tdb
}

// Child adds a child to the receiver and returns it.
func (tdb *testDataBuilder) Child() TestDataBuilder {
	return &testDataBuilder{
		db:     tdb.db.Child(),
		parent: tdb,
	}
}

// AndChild adds a sibling of the receiver and returns it.  If the receiver
// has no parent, it adds a child to the receiver instead.
func (tdb *testDataBuilder) AndChild() TestDataBuilder {
	if tdb.parent == nil {
		return tdb.Child()
	}
	return tdb.parent.Child()
}

// Parent returns the receiver's parent, or the receiver if it has none.
func (tdb *testDataBuilder) Parent() TestDataBuilder {
	if tdb.parent == nil {
		return tdb
	}
	return tdb.parent
}

func dataOf(d any) (*util.Data, error) {
	switch v := d.(type) {
	case *util.DataResponseBuilder:
		return v.Data()
	case *util.Data:
		return v, nil
	default:
		return nil, fmt.Errorf("argument must be a *util.DataResponseBuilder or a *util.Data")
	}
}

// CompareDataResponses compares got and want, which must each be a
// *util.DataResponseBuilder or a *util.Data, raising a test error on any
// difference.  It returns an error if either response could not be built.
func CompareDataResponses(t *testing.T, got, want any) error {
	t.Helper()
	gotData, err := dataOf(got)
	if err != nil {
		return err
	}
	wantData, err := dataOf(want)
	if err != nil {
		return err
	}
	if diff := cmp.Diff(wantData.PrettyPrint(), gotData.PrettyPrint()); diff != "" {
		t.Errorf("Got data %s, diff (-want, +got) %s", gotData.PrettyPrint(), diff)
	}
	return nil
}

func build(t *testing.T, buildIf any) *util.DataResponseBuilder {
	t.Helper()
	drb := util.NewDataResponseBuilder()
	series := drb.DataSeries(&util.DataSeriesRequest{})
	switch build := buildIf.(type) {
	case func(util.DataBuilder):
		build(series)
	case func(TestDataBuilder):
		build(&testDataBuilder{db: series})
	default:
		t.Fatalf("expected func(util.DataBuilder) or func(testutil.TestDataBuilder), got %T", buildIf)
	}
	return drb
}

// CompareResponses compares the chart data produced by two callbacks, each
// accepting either a util.DataBuilder or a TestDataBuilder.
func CompareResponses(t *testing.T, buildGot, buildWant any) error {
	t.Helper()
	return CompareDataResponses(t, build(t, buildGot), build(t, buildWant))
}
