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

// Package service assembles the chartviz HTTP service from a directory of
// YAML chart definitions.
package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ilhamster/chartviz/chart"
	datasource "github.com/ilhamster/chartviz/data_source"
	"github.com/ilhamster/chartviz/definition"
	"github.com/ilhamster/chartviz/handlers"
	querydispatcher "github.com/ilhamster/chartviz/query_dispatcher"
	"go.uber.org/zap"
)

// fileFetcher reads chart definitions from files under chartRoot.
type fileFetcher struct {
	chartRoot string
	logger    *zap.Logger
}

func (ff *fileFetcher) Fetch(ctx context.Context, chartName string) (chart.Data, error) {
	if !filepath.IsLocal(chartName) {
		return nil, fmt.Errorf("chart name '%s' must be a relative path within the chart root", chartName)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Join(ff.chartRoot, chartName))
	if err != nil {
		return nil, err
	}
	c, err := definition.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart '%s': %w", chartName, err)
	}
	ff.logger.Debug("loaded chart definition", zap.String("chart", chartName), zap.String("kind", string(c.Kind())))
	return c, nil
}

// Service serves chart data queries over HTTP.
type Service struct {
	queryHandler handlers.QueryHandler
}

// New returns a Service serving the charts defined under chartRoot, caching
// up to cacheSize parsed charts.
func New(chartRoot string, cacheSize int, logger *zap.Logger) (*Service, error) {
	ff := &fileFetcher{
		chartRoot: chartRoot,
		logger:    logger.Named("fetcher"),
	}
	ds, err := datasource.New(logger.Named("data_source"), cacheSize, ff)
	if err != nil {
		return nil, err
	}
	qd, err := querydispatcher.New(logger.Named("dispatcher"), ds)
	if err != nil {
		return nil, err
	}
	return &Service{
		queryHandler: handlers.NewQueryHandler(qd, logger.Named("handler")),
	}, nil
}

// RegisterHandlers registers the Service's handlers on the provided mux.
func (s *Service) RegisterHandlers(mux *http.ServeMux) {
	for path, handler := range s.queryHandler.HandlersByPath() {
		mux.HandleFunc(path, handler)
	}
}
