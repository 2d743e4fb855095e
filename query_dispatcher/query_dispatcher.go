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

// Package querydispatcher provides QueryDispatcher, a type for multiplexing
// chart data sources by the queries they serve.
package querydispatcher

import (
	"context"
	"fmt"

	"github.com/ilhamster/chartviz/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DataSource is a single source of chart data.  DataSource instances must
// support concurrent HandleDataSeriesRequests calls.
type DataSource interface {
	// SupportedDataSeriesQueries returns the list of
	// DataSeriesRequest.QueryNames this DataSource is able to handle.  Query
	// names must be unique across the DataSources of a QueryDispatcher, so
	// should be prefixed with the DataSource's name (e.g. "charts.chart").
	SupportedDataSeriesQueries() []string
	// HandleDataSeriesRequests handles a set of DataSeriesRequests with the
	// supplied global filters.  DataSource implementations should use the
	// provided DataResponseBuilder to add and populate a new DataSeries per
	// request.  Any returned error will cancel the entire DataRequest and
	// surface to the client.
	HandleDataSeriesRequests(ctx context.Context, globalFilters map[string]*util.V, drb *util.DataResponseBuilder, reqs []*util.DataSeriesRequest) error
}

// QueryDispatcher multiplexes multiple DataSources, each serving its own
// set of queries, so that a single DataRequest may draw on all of them.
type QueryDispatcher struct {
	logger      *zap.Logger
	dataSources []DataSource
	// Maps data series query names to indices (in dataSources) of the
	// DataSources that handle those queries.
	dataSeriesQueryHandlers map[string]int
}

// New returns a *QueryDispatcher wrapping the provided DataSources.
func New(logger *zap.Logger, dss ...DataSource) (*QueryDispatcher, error) {
	qd := &QueryDispatcher{
		logger:                  logger,
		dataSeriesQueryHandlers: map[string]int{},
	}
	for dsIdx, ds := range dss {
		qd.dataSources = append(qd.dataSources, ds)
		for _, queryName := range ds.SupportedDataSeriesQueries() {
			if _, ok := qd.dataSeriesQueryHandlers[queryName]; ok {
				return nil, fmt.Errorf(
					"multiple DataSources handle query `%s`", queryName)
			}
			qd.dataSeriesQueryHandlers[queryName] = dsIdx
		}
	}
	return qd, nil
}

// HandleDataRequest distributes the provided DataRequest's constituent
// DataSeriesRequests to their appropriate DataSources, which run
// concurrently, then assembles the resulting DataSeries into a single Data
// response.
func (qd *QueryDispatcher) HandleDataRequest(ctx context.Context, req *util.DataRequest) (*util.Data, error) {
	drb := util.NewDataResponseBuilder()
	// A mapping from DataSource index to the set of DataSeriesRequests that
	// source will handle.
	groupedReqs := map[int][]*util.DataSeriesRequest{}
	for _, seriesReq := range req.SeriesRequests {
		dsIdx, ok := qd.dataSeriesQueryHandlers[seriesReq.QueryName]
		if !ok {
			return nil, fmt.Errorf("unsupported data query `%s`", seriesReq.QueryName)
		}
		groupedReqs[dsIdx] = append(groupedReqs[dsIdx], seriesReq)
	}
	qd.logger.Debug("dispatching data request",
		zap.Int("series", len(req.SeriesRequests)),
		zap.Int("data_sources", len(groupedReqs)))
	errg, ctx := errgroup.WithContext(ctx)
	for dsIdx, seriesReqs := range groupedReqs {
		ds := qd.dataSources[dsIdx]
		errg.Go(func() error {
			return ds.HandleDataSeriesRequests(ctx, req.GlobalFilters, drb, seriesReqs)
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return drb.Data()
}
