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

package datasource

import (
	"context"
	"errors"
	"sync"
	"testing"

	barchart "github.com/ilhamster/chartviz/bar_chart"
	"github.com/ilhamster/chartviz/chart"
	"github.com/ilhamster/chartviz/color"
	datapoint "github.com/ilhamster/chartviz/data_point"
	dataset "github.com/ilhamster/chartviz/data_set"
	infoview "github.com/ilhamster/chartviz/info_view"
	"github.com/ilhamster/chartviz/legend"
	"github.com/ilhamster/chartviz/style"
	testutil "github.com/ilhamster/chartviz/test_util"
	"github.com/ilhamster/chartviz/util"
)

type testFetcher struct {
	mu      sync.Mutex
	charts  map[string]chart.Data
	fetches map[string]int
}

func (tf *testFetcher) Fetch(ctx context.Context, chartName string) (chart.Data, error) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.fetches[chartName]++
	c, ok := tf.charts[chartName]
	if !ok {
		return nil, errors.New("no such chart")
	}
	return c, nil
}

func testChart() chart.Data {
	set := dataset.New("week", style.NewBarStyle(color.Solid{Colour: "blue"}),
		datapoint.New(10, datapoint.WithID("mon"), datapoint.WithXAxisLabel("M")),
		datapoint.New(20, datapoint.WithID("tue"), datapoint.WithXAxisLabel("T")),
	)
	set.ID = "week"
	return barchart.New(set, barchart.WithID("weekly"))
}

func newTestDataSource(t *testing.T, cap int) (*DataSource, *testFetcher) {
	tf := &testFetcher{
		charts: map[string]chart.Data{
			"weekly.yaml": testChart(),
			"other.yaml":  testChart(),
		},
		fetches: map[string]int{},
	}
	ds, err := New(testutil.Logger(t), cap, tf)
	if err != nil {
		t.Fatalf("failed to create DataSource: %s", err)
	}
	return ds, tf
}

func chartFilter(name string) map[string]*util.V {
	return map[string]*util.V{chartNameKey: util.StringValue(name)}
}

func TestQueries(t *testing.T) {
	c := testChart()
	g := chart.Geometry{Width: 200, Height: 100}
	for _, test := range []struct {
		description   string
		globalFilters map[string]*util.V
		req           *util.DataSeriesRequest
		buildExplicit func(db util.DataBuilder)
		wantErr       bool
	}{{
		description:   "chart",
		globalFilters: chartFilter("weekly.yaml"),
		req:           &util.DataSeriesRequest{QueryName: chartQuery},
		buildExplicit: c.Define,
	}, {
		description:   "legends",
		globalFilters: chartFilter("weekly.yaml"),
		req:           &util.DataSeriesRequest{QueryName: legendsQuery},
		buildExplicit: func(db util.DataBuilder) {
			legend.Define(db, c.Legends()...)
		},
	}, {
		description:   "touch",
		globalFilters: chartFilter("weekly.yaml"),
		req: &util.DataSeriesRequest{
			QueryName: touchQuery,
			Options: map[string]*util.V{
				touchXKey: util.DoubleValue(150),
				touchYKey: util.DoubleValue(10),
				widthKey:  util.IntegerValue(200),
				heightKey: util.IntegerValue(100),
			},
		},
		buildExplicit: func(db util.DataBuilder) {
			var s infoview.State
			s.Touch(c, chart.Location{X: 150, Y: 10}, g)
			s.Define(db)
		},
	}, {
		description:   "x-axis labels",
		globalFilters: chartFilter("weekly.yaml"),
		req: &util.DataSeriesRequest{
			QueryName: xAxisLabelsQuery,
			Options: map[string]*util.V{
				widthKey:  util.DoubleValue(200),
				heightKey: util.DoubleValue(100),
			},
		},
		buildExplicit: func(db util.DataBuilder) {
			for _, al := range c.XAxisLabels(g) {
				db.Child().With(al.Define())
			}
		},
	}, {
		description:   "touch missing an option",
		globalFilters: chartFilter("weekly.yaml"),
		req: &util.DataSeriesRequest{
			QueryName: touchQuery,
			Options: map[string]*util.V{
				touchXKey: util.DoubleValue(150),
				widthKey:  util.DoubleValue(200),
				heightKey: util.DoubleValue(100),
			},
		},
		wantErr: true,
	}, {
		description:   "malformed option",
		globalFilters: chartFilter("weekly.yaml"),
		req: &util.DataSeriesRequest{
			QueryName: xAxisLabelsQuery,
			Options: map[string]*util.V{
				widthKey:  util.StringValue("wide"),
				heightKey: util.DoubleValue(100),
			},
		},
		wantErr: true,
	}, {
		description:   "missing chart name",
		globalFilters: map[string]*util.V{},
		req:           &util.DataSeriesRequest{QueryName: chartQuery},
		wantErr:       true,
	}, {
		description:   "non-string chart name",
		globalFilters: map[string]*util.V{chartNameKey: util.IntegerValue(3)},
		req:           &util.DataSeriesRequest{QueryName: chartQuery},
		wantErr:       true,
	}, {
		description:   "unknown chart",
		globalFilters: chartFilter("missing.yaml"),
		req:           &util.DataSeriesRequest{QueryName: chartQuery},
		wantErr:       true,
	}, {
		description:   "unsupported query",
		globalFilters: chartFilter("weekly.yaml"),
		req:           &util.DataSeriesRequest{QueryName: "charts.pie"},
		wantErr:       true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			ds, _ := newTestDataSource(t, 2)
			drb := util.NewDataResponseBuilder()
			err := ds.HandleDataSeriesRequests(context.Background(), test.globalFilters, drb, []*util.DataSeriesRequest{test.req})
			if (err != nil) != test.wantErr {
				t.Fatalf("HandleDataSeriesRequests() yielded error %v, wanted error: %t", err, test.wantErr)
			}
			if test.wantErr {
				return
			}
			want := util.NewDataResponseBuilder()
			test.buildExplicit(want.DataSeries(test.req))
			if err := testutil.CompareDataResponses(t, drb, want); err != nil {
				t.Fatalf("encountered unexpected error building responses: %s", err)
			}
		})
	}
}

func TestCaching(t *testing.T) {
	ds, tf := newTestDataSource(t, 1)
	fetch := func(name string) {
		t.Helper()
		drb := util.NewDataResponseBuilder()
		if err := ds.HandleDataSeriesRequests(context.Background(), chartFilter(name), drb,
			[]*util.DataSeriesRequest{{QueryName: legendsQuery}}); err != nil {
			t.Fatalf("HandleDataSeriesRequests() yielded unexpected error %s", err)
		}
	}
	fetch("weekly.yaml")
	fetch("weekly.yaml")
	if got := tf.fetches["weekly.yaml"]; got != 1 {
		t.Errorf("cached chart fetched %d times, want 1", got)
	}
	fetch("other.yaml")
	fetch("weekly.yaml")
	if got := tf.fetches["weekly.yaml"]; got != 2 {
		t.Errorf("evicted chart fetched %d times, want 2", got)
	}
}

func TestConcurrentRequests(t *testing.T) {
	ds, _ := newTestDataSource(t, 2)
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		name := "weekly.yaml"
		if i%2 == 1 {
			name = "other.yaml"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			drb := util.NewDataResponseBuilder()
			errs <- ds.HandleDataSeriesRequests(context.Background(), chartFilter(name), drb,
				[]*util.DataSeriesRequest{{QueryName: chartQuery}})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent HandleDataSeriesRequests() yielded error %s", err)
		}
	}
}
