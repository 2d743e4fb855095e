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

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	querydispatcher "github.com/ilhamster/chartviz/query_dispatcher"
	testutil "github.com/ilhamster/chartviz/test_util"
	"github.com/ilhamster/chartviz/util"
)

type echoDataSource struct{}

func (echoDataSource) SupportedDataSeriesQueries() []string {
	return []string{"test.echo"}
}

func (echoDataSource) HandleDataSeriesRequests(ctx context.Context, globalFilters map[string]*util.V, drb *util.DataResponseBuilder, reqs []*util.DataSeriesRequest) error {
	if req, err := RequestOf(ctx); err != nil || req == nil {
		return errors.New("missing HTTP request in context")
	}
	name, err := util.ExpectStringValue(globalFilters["chart_name"])
	if err != nil {
		return err
	}
	if name == "fail" {
		return errors.New("oops")
	}
	for _, req := range reqs {
		drb.DataSeries(req).With(util.StringProperty("chart_name", name))
	}
	return nil
}

func TestGetData(t *testing.T) {
	qd, err := querydispatcher.New(testutil.Logger(t), echoDataSource{})
	if err != nil {
		t.Fatalf("failed to create QueryDispatcher: %s", err)
	}
	var wrapped int
	handler := NewQueryHandler(qd, testutil.Logger(t)).Wrap(func(hf HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			wrapped++
			hf(w, req)
		}
	})
	dataHandler := handler.HandlersByPath()[dataMethod]
	for _, test := range []struct {
		description string
		reqJSON     string
		wantStatus  int
		wantBody    string
	}{{
		description: "successful request",
		reqJSON: `{
			"GlobalFilters": { "chart_name": [ 1, "weekly.yaml" ] },
			"SeriesRequests": [ { "QueryName": "test.echo", "SeriesName": "s" } ]
		}`,
		wantStatus: http.StatusOK,
		wantBody: `{
			"StringTable": [ "chart_name", "weekly.yaml" ],
			"DataSeries": [
				{ "SeriesName": "s", "Root": [ [ [ 0, [ 2, 1 ] ] ], [] ] }
			]
		}`,
	}, {
		description: "malformed request",
		reqJSON:     `{`,
		wantStatus:  http.StatusBadRequest,
	}, {
		description: "unsupported query",
		reqJSON: `{
			"GlobalFilters": { "chart_name": [ 1, "weekly.yaml" ] },
			"SeriesRequests": [ { "QueryName": "test.nope", "SeriesName": "s" } ]
		}`,
		wantStatus: http.StatusInternalServerError,
	}, {
		description: "failing data source",
		reqJSON: `{
			"GlobalFilters": { "chart_name": [ 1, "fail" ] },
			"SeriesRequests": [ { "QueryName": "test.echo", "SeriesName": "s" } ]
		}`,
		wantStatus: http.StatusInternalServerError,
	}} {
		t.Run(test.description, func(t *testing.T) {
			form := url.Values{reqField: []string{test.reqJSON}}
			req := httptest.NewRequest(http.MethodPost, dataMethod, strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			dataHandler(rec, req)
			if rec.Code != test.wantStatus {
				t.Fatalf("got status %d, want %d (body %q)", rec.Code, test.wantStatus, rec.Body.String())
			}
			if test.wantBody == "" {
				return
			}
			var got, want any
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to unmarshal response: %s", err)
			}
			if err := json.Unmarshal([]byte(test.wantBody), &want); err != nil {
				t.Fatalf("failed to unmarshal wanted response: %s", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("got response %s, diff (-want +got):\n%s", rec.Body.String(), diff)
			}
		})
	}
	if wrapped != 4 {
		t.Errorf("wrapper invoked %d times, want 4", wrapped)
	}
}
