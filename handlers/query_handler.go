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

// Package handlers provides the HTTP handlers serving chart data requests.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	querydispatcher "github.com/ilhamster/chartviz/query_dispatcher"
	"github.com/ilhamster/chartviz/util"
	"go.uber.org/zap"
)

// HandlerFunc is a HTTP handler function.
type HandlerFunc func(http.ResponseWriter, *http.Request)

// WrapFunc is a function that rewrites a HandlerFunc.
type WrapFunc func(HandlerFunc) HandlerFunc

// Handler describes a chart HTTP handler.
type Handler interface {
	HandlersByPath() map[string]func(http.ResponseWriter, *http.Request)
}

// QueryHandler is a Handler for data queries.  It supports a Wrap method that
// wraps all handlers, e.g. adding cookies.
type QueryHandler interface {
	Handler
	Wrap(...WrapFunc) Handler
}

// sendHTTPResponse serializes the provided Data and sends it along the
// provided http.ResponseWriter.  Any failures during serialization yield an
// HTTP internal status error.
func sendHTTPResponse(resp *util.Data, w http.ResponseWriter) error {
	respStr, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Failed to marshal response: "+err.Error(), http.StatusInternalServerError)
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = fmt.Fprint(w, string(respStr))
	return err
}

// queryHandler is an http.Handler serving chart data queries.
type queryHandler struct {
	qd       *querydispatcher.QueryDispatcher
	logger   *zap.Logger
	wrappers []WrapFunc
}

// NewQueryHandler returns a new Handler serving chart data requests using
// the provided QueryDispatcher.
func NewQueryHandler(qd *querydispatcher.QueryDispatcher, logger *zap.Logger) QueryHandler {
	return &queryHandler{
		qd:     qd,
		logger: logger,
	}
}

const (
	dataMethod = "/GetData"
	reqField   = "req"
)

type contextKey string

var (
	httpReqKey contextKey = "chartviz_http_req"
)

// RequestOf returns the http Request attached to the provided Context, or nil
// if no Request is attached.  Returns an error if something other than a
// Request is stored in the Context.
func RequestOf(ctx context.Context) (*http.Request, error) {
	reqIf := ctx.Value(httpReqKey)
	if reqIf == nil {
		return nil, nil
	}
	req, ok := reqIf.(*http.Request)
	if !ok {
		return nil, fmt.Errorf("expected *http.Request to be stored in context, but got something else")
	}
	return req, nil
}

func (qh *queryHandler) Wrap(wrappers ...WrapFunc) Handler {
	qh.wrappers = append(qh.wrappers, wrappers...)
	return qh
}

// HandlersByPath returns a mapping of HTTP request path to HTTP handler for
// this Handler.
func (qh *queryHandler) HandlersByPath() map[string]func(http.ResponseWriter, *http.Request) {
	var dh HandlerFunc = qh.getDataHandler
	for _, wrapper := range qh.wrappers {
		dh = wrapper(dh)
	}
	return map[string]func(http.ResponseWriter, *http.Request){
		dataMethod: dh,
	}
}

func (qh *queryHandler) getDataHandler(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		qh.logger.Warn("failed to parse form", zap.Error(err))
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	dataReq, err := util.DataRequestFromJSON([]byte(req.Form.Get(reqField)))
	if err != nil {
		qh.logger.Warn("failed to parse DataRequest", zap.Error(err))
		http.Error(w, "Failed to parse DataRequest: "+err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := qh.qd.HandleDataRequest(context.WithValue(req.Context(), httpReqKey, req), dataReq)
	if err != nil {
		qh.logger.Error("DataRequest failed", zap.Error(err))
		http.Error(w, "DataRequest failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sendHTTPResponse(resp, w); err != nil {
		qh.logger.Error("failed to send response", zap.Error(err))
	}
}
