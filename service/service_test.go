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

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ilhamster/chartviz/chart"
	testutil "github.com/ilhamster/chartviz/test_util"
)

const weekly = `
id: weekly
kind: bar
data_sets:
  - id: week
    legend_title: Week
    colour: {solid: blue}
    points:
      - {id: mon, value: 10, x_axis_label: M}
      - {id: tue, value: 20, x_axis_label: T}
`

func writeChart(t *testing.T, root, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write chart %s: %s", name, err)
	}
}

func TestFileFetcher(t *testing.T) {
	root := t.TempDir()
	writeChart(t, root, "weekly.yaml", weekly)
	writeChart(t, root, "broken.yaml", "kind: [")
	ff := &fileFetcher{chartRoot: root, logger: testutil.Logger(t)}
	for _, test := range []struct {
		description string
		chartName   string
		wantKind    chart.Kind
		wantErr     bool
	}{{
		description: "existing chart",
		chartName:   "weekly.yaml",
		wantKind:    chart.Bar,
	}, {
		description: "missing chart",
		chartName:   "monthly.yaml",
		wantErr:     true,
	}, {
		description: "malformed chart",
		chartName:   "broken.yaml",
		wantErr:     true,
	}, {
		description: "escaping the chart root",
		chartName:   "../weekly.yaml",
		wantErr:     true,
	}, {
		description: "absolute path",
		chartName:   filepath.Join(root, "weekly.yaml"),
		wantErr:     true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			c, err := ff.Fetch(context.Background(), test.chartName)
			if (err != nil) != test.wantErr {
				t.Fatalf("Fetch() yielded error %v, wanted error: %t", err, test.wantErr)
			}
			if test.wantErr {
				return
			}
			if c.Kind() != test.wantKind {
				t.Errorf("got kind %s, want %s", c.Kind(), test.wantKind)
			}
		})
	}
}

func TestService(t *testing.T) {
	root := t.TempDir()
	writeChart(t, root, "weekly.yaml", weekly)
	svc, err := New(root, 4, testutil.Logger(t))
	if err != nil {
		t.Fatalf("failed to create Service: %s", err)
	}
	mux := http.NewServeMux()
	svc.RegisterHandlers(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	for _, test := range []struct {
		description string
		reqJSON     string
		wantStatus  int
		wantStrings []string
	}{{
		description: "touching the first bar",
		reqJSON: `{
			"GlobalFilters": { "chart_name": [ 1, "weekly.yaml" ] },
			"SeriesRequests": [ {
				"QueryName": "charts.touch",
				"SeriesName": "touch",
				"Options": {
					"touch_x": [ 6, 50 ],
					"touch_y": [ 6, 10 ],
					"width": [ 6, 200 ],
					"height": [ 6, 100 ]
				}
			} ]
		}`,
		wantStatus:  http.StatusOK,
		wantStrings: []string{"info_is_touch_current", "mon"},
	}, {
		description: "full chart",
		reqJSON: `{
			"GlobalFilters": { "chart_name": [ 1, "weekly.yaml" ] },
			"SeriesRequests": [ { "QueryName": "charts.chart", "SeriesName": "chart" } ]
		}`,
		wantStatus:  http.StatusOK,
		wantStrings: []string{"weekly", "week", "mon", "tue", "Week"},
	}, {
		description: "missing chart",
		reqJSON: `{
			"GlobalFilters": { "chart_name": [ 1, "monthly.yaml" ] },
			"SeriesRequests": [ { "QueryName": "charts.chart", "SeriesName": "chart" } ]
		}`,
		wantStatus: http.StatusInternalServerError,
	}} {
		t.Run(test.description, func(t *testing.T) {
			resp, err := http.PostForm(server.URL+"/GetData", url.Values{"req": []string{test.reqJSON}})
			if err != nil {
				t.Fatalf("request failed: %s", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != test.wantStatus {
				t.Fatalf("got status %d, want %d", resp.StatusCode, test.wantStatus)
			}
			if test.wantStatus != http.StatusOK {
				return
			}
			var data struct {
				StringTable []string
			}
			if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
				t.Fatalf("failed to decode response: %s", err)
			}
			for _, want := range test.wantStrings {
				if !slices.Contains(data.StringTable, want) {
					t.Errorf("response string table %v is missing %q", data.StringTable, want)
				}
			}
		})
	}
}
