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

// Package datasource provides a data source serving charts, their legends,
// their x-axis labels, and the resolution of touches upon them.
package datasource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/ilhamster/chartviz/chart"
	infoview "github.com/ilhamster/chartviz/info_view"
	"github.com/ilhamster/chartviz/legend"
	"github.com/ilhamster/chartviz/util"
	"go.uber.org/zap"
)

const (
	chartQuery       = "charts.chart"
	legendsQuery     = "charts.legends"
	touchQuery       = "charts.touch"
	xAxisLabelsQuery = "charts.x_axis_labels"

	chartNameKey = "chart_name"
	touchXKey    = "touch_x"
	touchYKey    = "touch_y"
	widthKey     = "width"
	heightKey    = "height"
)

// ChartFetcher describes types capable of fetching charts by name.
type ChartFetcher interface {
	// Fetch fetches the chart specified by chartName, returning an error if
	// a failure is encountered.
	Fetch(ctx context.Context, chartName string) (chart.Data, error)
}

// DataSource implements querydispatcher.DataSource for charts.  It caches
// the most recently used charts.
type DataSource struct {
	logger *zap.Logger
	// Guards lru, which is not safe for concurrent use.
	mu sync.Mutex
	// An LRU cache holding the most recently-accessed charts.
	lru *simplelru.LRU
	// A chart fetcher used to fetch uncached charts.
	fetcher ChartFetcher
}

// New returns a new DataSource with the specified cache capacity, and using
// the provided chart fetcher.
func New(logger *zap.Logger, cap int, fetcher ChartFetcher) (*DataSource, error) {
	lru, err := simplelru.NewLRU(cap, func(key, _ any) {
		logger.Debug("evicted chart", zap.Any("chart_name", key))
	})
	if err != nil {
		return nil, err
	}
	return &DataSource{
		logger:  logger,
		lru:     lru,
		fetcher: fetcher,
	}, nil
}

// SupportedDataSeriesQueries returns the DataSeriesRequest query names
// supported by DataSource.
func (ds *DataSource) SupportedDataSeriesQueries() []string {
	return []string{
		chartQuery,
		legendsQuery,
		touchQuery,
		xAxisLabelsQuery,
	}
}

// fetchChart returns the specified chart from the LRU if it's present
// there.  If it isn't already in the LRU, it is fetched and added to the LRU
// before being returned.
func (ds *DataSource) fetchChart(ctx context.Context, chartName string) (chart.Data, error) {
	ds.mu.Lock()
	cIf, ok := ds.lru.Get(chartName)
	ds.mu.Unlock()
	if ok {
		c, ok := cIf.(chart.Data)
		if !ok {
			return nil, fmt.Errorf("cached entry for '%s' wasn't a chart", chartName)
		}
		return c, nil
	}
	c, err := ds.fetcher.Fetch(ctx, chartName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chart '%s': %w", chartName, err)
	}
	ds.mu.Lock()
	ds.lru.Add(chartName, c)
	ds.mu.Unlock()
	return c, nil
}

func expectDoubleOption(opts map[string]*util.V, key string) (float64, error) {
	v, ok := opts[key]
	if !ok {
		return 0, fmt.Errorf("missing required option '%s'", key)
	}
	f, err := util.ExpectDoubleValue(v)
	if err != nil {
		return 0, fmt.Errorf("option '%s': %w", key, err)
	}
	return f, nil
}

func geometry(opts map[string]*util.V) (chart.Geometry, error) {
	width, err := expectDoubleOption(opts, widthKey)
	if err != nil {
		return chart.Geometry{}, err
	}
	height, err := expectDoubleOption(opts, heightKey)
	if err != nil {
		return chart.Geometry{}, err
	}
	return chart.Geometry{Width: width, Height: height}, nil
}

func handleTouchQuery(c chart.Data, series util.DataBuilder, opts map[string]*util.V) error {
	g, err := geometry(opts)
	if err != nil {
		return err
	}
	x, err := expectDoubleOption(opts, touchXKey)
	if err != nil {
		return err
	}
	y, err := expectDoubleOption(opts, touchYKey)
	if err != nil {
		return err
	}
	var state infoview.State
	state.Touch(c, chart.Location{X: x, Y: y}, g)
	state.Define(series)
	return nil
}

func handleXAxisLabelsQuery(c chart.Data, series util.DataBuilder, opts map[string]*util.V) error {
	g, err := geometry(opts)
	if err != nil {
		return err
	}
	for _, al := range c.XAxisLabels(g) {
		series.Child().With(al.Define())
	}
	return nil
}

// HandleDataSeriesRequests handles the provided set of DataSeriesRequests,
// with the provided global filters.  It assembles its responses in the
// provided DataResponseBuilder.
func (ds *DataSource) HandleDataSeriesRequests(ctx context.Context, globalFilters map[string]*util.V, drb *util.DataResponseBuilder, reqs []*util.DataSeriesRequest) error {
	// Log how long it takes to handle each DataRequest.
	start := time.Now()
	queryNames := make([]string, 0, len(reqs))
	for _, req := range reqs {
		queryNames = append(queryNames, req.QueryName)
	}
	defer func() {
		ds.logger.Debug("handled queries",
			zap.Strings("queries", queryNames),
			zap.Duration("elapsed", time.Since(start)))
	}()
	// Pull the chart name from the global filters.
	chartNameVal, ok := globalFilters[chartNameKey]
	if !ok {
		return fmt.Errorf("missing required filter option '%s'", chartNameKey)
	}
	chartName, err := util.ExpectStringValue(chartNameVal)
	if err != nil {
		return fmt.Errorf("required filter option '%s' must be a string", chartNameKey)
	}
	// Fetch the chart, from the cache if it's there.
	c, err := ds.fetchChart(ctx, chartName)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		series := drb.DataSeries(req)
		var err error
		switch req.QueryName {
		case chartQuery:
			c.Define(series)
		case legendsQuery:
			legend.Define(series, c.Legends()...)
		case touchQuery:
			err = handleTouchQuery(c, series, req.Options)
		case xAxisLabelsQuery:
			err = handleXAxisLabelsQuery(c, series, req.Options)
		default:
			err = fmt.Errorf("unsupported data query")
		}
		if err != nil {
			return fmt.Errorf("error handling query `%s`: %w", req.QueryName, err)
		}
	}
	return nil
}
