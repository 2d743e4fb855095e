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

// Package util defines utilities for encoding chart data for a renderer:
//
// DataResponseBuilder, for populating responses to DataRequests;
//
// {type}Value functions (type={String, Strings, Integer, Double, Doubles,
// Timestamp}) for safely constructing Values of the specified type;
//
// Expect{type}Value functions, over the same types, for safely retrieving
// values of the specified types from Values, returning an error if there's a
// type mismatch;
//
// DataBuilder and PropertyUpdate, for assembling chart data
// programmatically.
package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type valueType int

// Enumerated value types.
const (
	unsetValue valueType = iota
	StringValueType
	StringIndexValueType
	StringsValueType
	StringIndicesValueType
	IntegerValueType
	DoubleValueType
	DoublesValueType
	TimestampValueType
)

// V represents a value in a chart data request or response.
type V struct {
	V any
	T valueType
}

// PrettyPrint returns the receiver, deterministically prettyprinted.
// String-index-type values prettyprint the same as the corresponding
// literal-string-type values.  Only for use in tests.
func (v *V) PrettyPrint(st []string) string {
	switch v.T {
	case unsetValue:
		return "unset"
	case StringValueType:
		return "'" + v.V.(string) + "'"
	case StringIndexValueType:
		return "'" + st[v.V.(int64)] + "'"
	case StringsValueType:
		return "[ '" + strings.Join(v.V.([]string), "', '") + "' ]"
	case StringIndicesValueType:
		idxs := v.V.([]int64)
		strs := make([]string, len(idxs))
		for i, idx := range idxs {
			strs[i] = st[idx]
		}
		return "[ '" + strings.Join(strs, "', '") + "' ]"
	case IntegerValueType:
		return strconv.FormatInt(v.V.(int64), 10)
	case DoubleValueType:
		return fmt.Sprintf("%.6f", v.V.(float64))
	case DoublesValueType:
		dbls := v.V.([]float64)
		strs := make([]string, len(dbls))
		for i, d := range dbls {
			strs[i] = fmt.Sprintf("%.6f", d)
		}
		return "[ " + strings.Join(strs, ", ") + " ]"
	case TimestampValueType:
		ts, err := ExpectTimestampValue(v)
		if err != nil {
			return "error: " + err.Error()
		}
		return ts.UTC().String()
	}
	return fmt.Sprintf("error: unknown value type %d", v.T)
}

type timestamp struct {
	UnixSeconds int64
	UnixNanos   int64
}

func (ts timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{ts.UnixSeconds, ts.UnixNanos})
}

// MarshalJSON encodes a V as the JS tuple `[type, value]`, where value is
// null, a string, a number, a string or number array, or, for timestamps,
// [secs, nanos] from the epoch.
func (v *V) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{v.T, v.V})
}

func numbers(raw any) ([]json.Number, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a number array")
	}
	ret := make([]json.Number, len(items))
	for idx, item := range items {
		num, ok := item.(json.Number)
		if !ok {
			return nil, fmt.Errorf("expected a number array")
		}
		ret[idx] = num
	}
	return ret, nil
}

func (v *V) fromAny(got []any) error {
	if len(got) != 2 {
		return fmt.Errorf("value must be a [type, value] pair")
	}
	typeNum, ok := got[0].(json.Number)
	if !ok {
		return fmt.Errorf("value type must be a number")
	}
	t, err := typeNum.Int64()
	if err != nil {
		return err
	}
	v.T = valueType(t)
	raw := got[1]
	switch v.T {
	case StringValueType:
		str, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected a string value")
		}
		v.V = str
	case StringsValueType:
		items, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("expected a string array value")
		}
		strs := make([]string, len(items))
		for idx, item := range items {
			if strs[idx], ok = item.(string); !ok {
				return fmt.Errorf("expected a string array value")
			}
		}
		v.V = strs
	case StringIndexValueType, IntegerValueType:
		num, ok := raw.(json.Number)
		if !ok {
			return fmt.Errorf("expected an integer value")
		}
		v.V, err = num.Int64()
	case DoubleValueType:
		num, ok := raw.(json.Number)
		if !ok {
			return fmt.Errorf("expected a double value")
		}
		v.V, err = num.Float64()
	case StringIndicesValueType:
		nums, err := numbers(raw)
		if err != nil {
			return err
		}
		ints := make([]int64, len(nums))
		for idx, num := range nums {
			if ints[idx], err = num.Int64(); err != nil {
				return err
			}
		}
		v.V = ints
	case DoublesValueType:
		nums, err := numbers(raw)
		if err != nil {
			return err
		}
		dbls := make([]float64, len(nums))
		for idx, num := range nums {
			if dbls[idx], err = num.Float64(); err != nil {
				return err
			}
		}
		v.V = dbls
	case TimestampValueType:
		parts, err := numbers(raw)
		if err != nil {
			return err
		}
		if len(parts) != 2 {
			return fmt.Errorf("timestamp Value is improperly formed")
		}
		secs, err := parts[0].Int64()
		if err != nil {
			return err
		}
		nanos, err := parts[1].Int64()
		if err != nil {
			return err
		}
		v.V = timestamp{UnixSeconds: secs, UnixNanos: nanos}
	default:
		v.V = raw
	}
	return err
}

// UnmarshalJSON unmarshals the provided JSON bytes into the receiving V.
func (v *V) UnmarshalJSON(data []byte) error {
	var got []any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&got); err != nil {
		return err
	}
	return v.fromAny(got)
}

// Datum represents a single node of encoded chart data.
type Datum struct {
	Properties map[int64]*V
	Children   []*Datum
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (d *Datum) PrettyPrint(indent string, st []string) string {
	ret := []string{}
	keys := make([]int64, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	// Emit properties in increasing alphabetic order.
	sort.Slice(keys, func(a, b int) bool {
		return st[keys[a]] < st[keys[b]]
	})
	for _, k := range keys {
		ret = append(ret,
			fmt.Sprintf("%sProp '%s': %s", indent, st[k], d.Properties[k].PrettyPrint(st)),
		)
	}
	for _, child := range d.Children {
		ret = append(ret,
			fmt.Sprintf("%sChild:", indent),
			child.PrettyPrint(indent+"  ", st),
		)
	}
	return strings.Join(ret, "\n")
}

// MarshalJSON encodes a Datum as the JS tuple `[KV[], Datum[]]`, where each
// KV is a `[key string index, V]` pair, in increasing key order.
func (d *Datum) MarshalJSON() ([]byte, error) {
	keys := make([]int64, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		return keys[a] < keys[b]
	})
	props := make([]any, len(keys))
	for idx, k := range keys {
		props[idx] = []any{k, d.Properties[k]}
	}
	children := d.Children
	if children == nil {
		children = []*Datum{}
	}
	return json.Marshal([]any{props, children})
}

// DataSeriesRequest is a request for a specific data series.
type DataSeriesRequest struct {
	QueryName  string
	SeriesName string
	Options    map[string]*V
}

// DataSeries represents a complete data series response.
type DataSeries struct {
	SeriesName string
	Root       *Datum
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (ds *DataSeries) PrettyPrint(indent string, st []string) string {
	return strings.Join([]string{
		fmt.Sprintf("%sSeries %s", indent, ds.SeriesName),
		indent + "  " + "Root:",
		ds.Root.PrettyPrint(indent+"    ", st),
	}, "\n")
}

// DataRequest is a request for one or more data series.
type DataRequest struct {
	GlobalFilters  map[string]*V
	SeriesRequests []*DataSeriesRequest
}

// DataRequestFromJSON attempts to construct a DataRequest from the provided
// JSON.
func DataRequestFromJSON(j []byte) (*DataRequest, error) {
	ret := &DataRequest{}
	err := json.Unmarshal(j, ret)
	return ret, err
}

// Data represents a complete data response.
type Data struct {
	StringTable []string
	DataSeries  []*DataSeries
}

// PrettyPrint returns the receiver deterministically prettyprinted.
// Only for use in tests.
func (d *Data) PrettyPrint() string {
	ret := []string{"Data:"}
	for _, series := range d.DataSeries {
		ret = append(ret, series.PrettyPrint("  ", d.StringTable))
	}
	return strings.Join(ret, "\n")
}

// stringTable associates strings with unique integers.  It is thread-safe.
type stringTable struct {
	mu               sync.Mutex
	stringsToIndices map[string]int64
	stringsByIndex   []string
}

func newStringTable(strs ...string) *stringTable {
	ret := &stringTable{
		stringsToIndices: map[string]int64{},
	}
	for _, str := range strs {
		ret.stringIndex(str)
	}
	return ret
}

// stringIndex returns the index of the provided string, adding it to the
// receiver if necessary.
func (st *stringTable) stringIndex(str string) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	if idx, ok := st.stringsToIndices[str]; ok {
		return idx
	}
	idx := int64(len(st.stringsByIndex))
	st.stringsByIndex = append(st.stringsByIndex, str)
	st.stringsToIndices[str] = idx
	return idx
}

func (st *stringTable) strings() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]string{}, st.stringsByIndex...)
}

// buildErrors collects errors raised by PropertyUpdates anywhere in a
// response.
type buildErrors struct {
	mu   sync.Mutex
	errs []error
}

func (be *buildErrors) add(err error) {
	be.mu.Lock()
	defer be.mu.Unlock()
	be.errs = append(be.errs, err)
}

func (be *buildErrors) failed() bool {
	be.mu.Lock()
	defer be.mu.Unlock()
	return len(be.errs) > 0
}

func (be *buildErrors) toError() error {
	be.mu.Lock()
	defer be.mu.Unlock()
	if len(be.errs) == 0 {
		return nil
	}
	msgs := make([]string, len(be.errs))
	for idx, err := range be.errs {
		msgs[idx] = err.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}

// DataResponseBuilder streamlines assembling responses to DataRequests.
type DataResponseBuilder struct {
	st   *stringTable
	errs *buildErrors
	mu   sync.Mutex
	d    *Data
}

// NewDataResponseBuilder returns a new, empty DataResponseBuilder.
func NewDataResponseBuilder() *DataResponseBuilder {
	return &DataResponseBuilder{
		st:   newStringTable(),
		errs: &buildErrors{},
		d: &Data{
			StringTable: []string{},
			DataSeries:  []*DataSeries{},
		},
	}
}

// DataBuilder is implemented by types that can assemble chart data.
type DataBuilder interface {
	With(updates ...PropertyUpdate) DataBuilder
	Child() DataBuilder
}

// DataSeries returns a new DataBuilder for assembling the response to the
// provided DataSeriesRequest.  DataSeries is safe for concurrent use.
func (drb *DataResponseBuilder) DataSeries(req *DataSeriesRequest) DataBuilder {
	ret := newDatumBuilder(drb.errs, drb.st)
	drb.mu.Lock()
	drb.d.DataSeries = append(drb.d.DataSeries, &DataSeries{
		SeriesName: req.SeriesName,
		Root:       ret.d,
	})
	drb.mu.Unlock()
	return ret
}

// Data completes and returns the Data under construction.
func (drb *DataResponseBuilder) Data() (*Data, error) {
	if err := drb.errs.toError(); err != nil {
		return nil, err
	}
	drb.d.StringTable = drb.st.strings()
	return drb.d, nil
}

// StringValue returns a new Value wrapping the provided string.
func StringValue(str string) *V {
	return &V{V: str, T: StringValueType}
}

// StringIndexValue returns a new Value wrapping the provided string index.
func StringIndexValue(strIdx int64) *V {
	return &V{V: strIdx, T: StringIndexValueType}
}

// StringsValue returns a new Value wrapping the provided strings.
func StringsValue(strs ...string) *V {
	return &V{V: strs, T: StringsValueType}
}

// StringIndicesValue returns a new Value wrapping the provided string
// indices.
func StringIndicesValue(strIdxs ...int64) *V {
	return &V{V: strIdxs, T: StringIndicesValueType}
}

// IntegerValue returns a new Value wrapping the provided int64.
func IntegerValue(i int64) *V {
	return &V{V: i, T: IntegerValueType}
}

// DoubleValue returns a new Value wrapping the provided float64.
func DoubleValue(f float64) *V {
	return &V{V: f, T: DoubleValueType}
}

// DoublesValue returns a new Value wrapping the provided float64s.
func DoublesValue(fs ...float64) *V {
	return &V{V: fs, T: DoublesValueType}
}

// TimestampValue returns a new Value wrapping the provided Timestamp.
func TimestampValue(t time.Time) *V {
	return &V{
		V: timestamp{
			UnixSeconds: t.Unix(),
			UnixNanos:   int64(t.Nanosecond()),
		},
		T: TimestampValueType,
	}
}

// ExpectStringValue expects the provided Value to be a string, returning
// that string or an error if it isn't.
func ExpectStringValue(val *V) (string, error) {
	if val.T != StringValueType {
		return "", fmt.Errorf("expected value type 'str'")
	}
	return val.V.(string), nil
}

// ExpectStringsValue expects the provided Value to be a Strings, returning
// its string slice, or an error if it isn't.
func ExpectStringsValue(val *V) ([]string, error) {
	if val.T != StringsValueType {
		return nil, fmt.Errorf("expected value type 'strs'")
	}
	return val.V.([]string), nil
}

// ExpectIntegerValue expects the provided Value to be an integer, returning
// that integer or an error if it isn't.
func ExpectIntegerValue(val *V) (int64, error) {
	if val.T != IntegerValueType {
		return 0, fmt.Errorf("expected value type 'int'")
	}
	return val.V.(int64), nil
}

// ExpectDoubleValue expects the provided Value to be a number, returning it
// as a float64 or an error if it isn't.  Integers are accepted, since
// clients frequently send whole pixel coordinates as integers.
func ExpectDoubleValue(val *V) (float64, error) {
	switch val.T {
	case DoubleValueType:
		return val.V.(float64), nil
	case IntegerValueType:
		return float64(val.V.(int64)), nil
	}
	return 0, fmt.Errorf("expected value type 'dbl'")
}

// ExpectTimestampValue expects the provided Value to be a timestamp, returning
// that timestamp or an error if it isn't.
func ExpectTimestampValue(val *V) (time.Time, error) {
	if val.T != TimestampValueType {
		return time.Time{}, fmt.Errorf("expected value type 'timestamp'")
	}
	ts := val.V.(timestamp)
	return time.Unix(ts.UnixSeconds, ts.UnixNanos), nil
}

// PropertyUpdate is a function that updates a provided datumBuilder.  A nil
// PropertyUpdate does nothing.
type PropertyUpdate func(db *datumBuilder) error

// EmptyUpdate is a PropertyUpdate that does nothing.
var EmptyUpdate PropertyUpdate = nil

// ErrorProperty injects an error into the response under construction.
func ErrorProperty(err error) PropertyUpdate {
	return func(db *datumBuilder) error {
		return err
	}
}

// datumBuilder assembles a single Datum.
type datumBuilder struct {
	errs *buildErrors
	st   *stringTable
	d    *Datum
}

func newDatumBuilder(errs *buildErrors, st *stringTable) *datumBuilder {
	return &datumBuilder{
		errs: errs,
		st:   st,
		d: &Datum{
			Properties: map[int64]*V{},
			Children:   []*Datum{},
		},
	}
}

// With applies the provided PropertyUpdates to the receiver in order.  Once
// any update fails, later updates anywhere in the response are skipped.
func (db *datumBuilder) With(updates ...PropertyUpdate) DataBuilder {
	if db.errs.failed() {
		return db
	}
	for _, update := range updates {
		if update == nil {
			continue
		}
		if err := update(db); err != nil {
			db.errs.add(err)
			break
		}
	}
	return db
}

// Child adds and returns a new child of the receiver.
func (db *datumBuilder) Child() DataBuilder {
	child := newDatumBuilder(db.errs, db.st)
	db.d.Children = append(db.d.Children, child.d)
	return child
}

func (db *datumBuilder) set(key string, val *V) {
	db.d.Properties[db.st.stringIndex(key)] = val
}

// If applies the provided PropertyUpdate if the provided predicate is true.
func If(predicate bool, pu PropertyUpdate) PropertyUpdate {
	if predicate {
		return pu
	}
	return EmptyUpdate
}

// Chain applies the provided PropertyUpdates in order.
func Chain(updates ...PropertyUpdate) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.With(updates...)
		return nil
	}
}

// StringProperty returns a PropertyUpdate adding the specified string
// property.
func StringProperty(key, value string) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, StringIndexValue(db.st.stringIndex(value)))
		return nil
	}
}

// StringsProperty returns a PropertyUpdate adding the specified string slice
// property.
func StringsProperty(key string, values ...string) PropertyUpdate {
	return func(db *datumBuilder) error {
		idxs := make([]int64, len(values))
		for i, val := range values {
			idxs[i] = db.st.stringIndex(val)
		}
		db.set(key, StringIndicesValue(idxs...))
		return nil
	}
}

// IntegerProperty returns a PropertyUpdate adding the specified integer
// property.
func IntegerProperty(key string, value int64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, IntegerValue(value))
		return nil
	}
}

// DoubleProperty returns a PropertyUpdate adding the specified double
// property.
func DoubleProperty(key string, value float64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, DoubleValue(value))
		return nil
	}
}

// DoublesProperty returns a PropertyUpdate adding the specified double slice
// property.
func DoublesProperty(key string, values ...float64) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, DoublesValue(values...))
		return nil
	}
}

// TimestampProperty returns a PropertyUpdate adding the specified timestamp
// property.
func TimestampProperty(key string, value time.Time) PropertyUpdate {
	return func(db *datumBuilder) error {
		db.set(key, TimestampValue(value))
		return nil
	}
}

// BoolProperty returns a PropertyUpdate adding the specified boolean
// property, encoded as an integer 0 or 1.
func BoolProperty(key string, value bool) PropertyUpdate {
	var i int64
	if value {
		i = 1
	}
	return IntegerProperty(key, i)
}
