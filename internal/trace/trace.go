// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package trace derives canonical schemas from Go values and types by
// reflection. It backs the public from-value, from-type and from-samples
// entry points.
package trace

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/aqora-io/serde-arrow/schema"
)

var timeType = reflect.TypeOf(time.Time{})

var (
	utcDateTimeRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|\+00:00)$`)
	naiveDateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`)
)

type tracer struct {
	opts schema.TracingOptions
}

// FromType derives a schema from static type information alone. The type
// must describe a record, i.e. a struct; a bare optional (pointer or
// interface) at the top level fails because there is no field list to
// extract from it.
func FromType(t reflect.Type, opts schema.TracingOptions) (*schema.Schema, error) {
	tr := &tracer{opts: opts}
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface:
		return nil, fmt.Errorf("%w: cannot extract record fields from a bare optional type %s",
			schema.ErrInvalid, t)
	case reflect.Struct:
		fields, err := tr.structFieldsFromType(t, 0)
		if err != nil {
			return nil, err
		}
		return finish(fields)
	default:
		return nil, fmt.Errorf("%w: records must be structs, not %s", schema.ErrInvalid, t)
	}
}

// FromValue derives a schema from one concrete, already populated record.
func FromValue(v interface{}, opts schema.TracingOptions) (*schema.Schema, error) {
	tr := &tracer{opts: opts}
	fields, err := tr.recordFields(reflect.ValueOf(v), 0)
	if err != nil {
		return nil, err
	}
	if err := tr.resolveNullFields(fields); err != nil {
		return nil, err
	}
	return finish(fields)
}

// FromSamples derives a schema from a slice or array of representative
// records, merging the per-sample observations field by field. An empty
// sample collection fails: there is nothing to infer from.
func FromSamples(samples interface{}, opts schema.TracingOptions) (*schema.Schema, error) {
	tr := &tracer{opts: opts}

	v := reflect.ValueOf(samples)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: cannot trace nil samples", schema.ErrInvalid)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: samples must be a slice or array, not %s",
			schema.ErrInvalid, v.Type())
	}
	if v.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot trace schema from an empty sample collection",
			schema.ErrInvalid)
	}

	var (
		merged     []schema.Field
		sawNilOnly = true
	)
	for i := 0; i < v.Len(); i++ {
		sample := v.Index(i)
		if isNil(sample) {
			continue
		}
		sawNilOnly = false
		fields, err := tr.recordFields(sample, 0)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = fields
			continue
		}
		merged, err = tr.mergeFieldSets(merged, fields)
		if err != nil {
			return nil, err
		}
	}
	if sawNilOnly {
		return nil, fmt.Errorf("%w: all samples are null", schema.ErrInvalid)
	}
	if nilCount(v) > 0 {
		for i := range merged {
			merged[i].Nullable = true
		}
	}

	if err := tr.resolveNullFields(merged); err != nil {
		return nil, err
	}
	return finish(merged)
}

func finish(fields []schema.Field) (*schema.Schema, error) {
	s := &schema.Schema{Fields: fields}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func nilCount(samples reflect.Value) int {
	n := 0
	for i := 0; i < samples.Len(); i++ {
		if isNil(samples.Index(i)) {
			n++
		}
	}
	return n
}

// recordFields extracts the top-level columns of one record value. A
// record is a struct or a map with string keys (columns sorted by key).
func (tr *tracer) recordFields(v reflect.Value, depth int) ([]schema.Field, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: cannot extract record fields from a null value",
				schema.ErrInvalid)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return tr.structFieldsFromValue(v, depth)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: record maps must have string keys, not %s",
				schema.ErrInvalid, v.Type().Key())
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		fields := make([]schema.Field, 0, len(keys))
		for _, k := range keys {
			f, err := tr.traceValue(k, v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())), depth+1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("%w: records must be structs or maps, not %s",
			schema.ErrInvalid, v.Type())
	}
}

// structMember is one visible member of a struct type, after applying
// json tags the way encoding/json does.
type structMember struct {
	name  string
	index []int
	typ   reflect.Type
}

func visibleMembers(t reflect.Type) ([]structMember, error) {
	var members []structMember
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		tag := sf.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if sf.Anonymous && name == "" {
			embedded := sf.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				inner, err := visibleMembers(embedded)
				if err != nil {
					return nil, err
				}
				for _, m := range inner {
					m.index = append([]int{i}, m.index...)
					members = append(members, m)
				}
				continue
			}
		}
		if name == "" {
			name = sf.Name
		}
		members = append(members, structMember{name: name, index: sf.Index, typ: sf.Type})
	}
	return members, nil
}

func (tr *tracer) structFieldsFromType(t reflect.Type, depth int) ([]schema.Field, error) {
	members, err := visibleMembers(t)
	if err != nil {
		return nil, err
	}
	fields := make([]schema.Field, 0, len(members))
	for _, m := range members {
		f, err := tr.traceType(m.name, m.typ, depth+1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (tr *tracer) structFieldsFromValue(v reflect.Value, depth int) ([]schema.Field, error) {
	members, err := visibleMembers(v.Type())
	if err != nil {
		return nil, err
	}
	fields := make([]schema.Field, 0, len(members))
	for _, m := range members {
		member := fieldByIndex(v, m.index)
		var f schema.Field
		if member.IsValid() {
			f, err = tr.traceValue(m.name, member, depth+1)
		} else {
			// member sits behind a nil embedded pointer
			f, err = tr.traceType(m.name, m.typ, depth+1)
			f.Nullable = true
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// fieldByIndex resolves a possibly embedded member; members behind a nil
// embedded pointer resolve to an invalid value.
func fieldByIndex(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 {
			if v.Kind() == reflect.Ptr {
				if v.IsNil() {
					return reflect.Value{}
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}
	return v
}

// traceType derives a field from static type information only.
func (tr *tracer) traceType(name string, t reflect.Type, depth int) (schema.Field, error) {
	if depth >= schema.MaxNestingDepth {
		return schema.Field{}, fmt.Errorf("%w: field %q exceeds maximum nesting depth %d",
			schema.ErrInvalid, name, schema.MaxNestingDepth)
	}

	switch t.Kind() {
	case reflect.Ptr:
		f, err := tr.traceType(name, t.Elem(), depth)
		if err != nil {
			return schema.Field{}, err
		}
		f.Nullable = true
		return f, nil
	case reflect.Bool:
		return schema.Field{Name: name, DataType: schema.Of(schema.Bool)}, nil
	case reflect.Int, reflect.Int64:
		return schema.Field{Name: name, DataType: schema.Of(schema.I64)}, nil
	case reflect.Int32:
		return schema.Field{Name: name, DataType: schema.Of(schema.I32)}, nil
	case reflect.Int16:
		return schema.Field{Name: name, DataType: schema.Of(schema.I16)}, nil
	case reflect.Int8:
		return schema.Field{Name: name, DataType: schema.Of(schema.I8)}, nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return schema.Field{Name: name, DataType: schema.Of(schema.U64)}, nil
	case reflect.Uint32:
		return schema.Field{Name: name, DataType: schema.Of(schema.U32)}, nil
	case reflect.Uint16:
		return schema.Field{Name: name, DataType: schema.Of(schema.U16)}, nil
	case reflect.Uint8:
		return schema.Field{Name: name, DataType: schema.Of(schema.U8)}, nil
	case reflect.Float32:
		return schema.Field{Name: name, DataType: schema.Of(schema.F32)}, nil
	case reflect.Float64:
		return schema.Field{Name: name, DataType: schema.Of(schema.F64)}, nil
	case reflect.String:
		return tr.stringField(name), nil
	case reflect.Slice, reflect.Array:
		elem, err := tr.traceType("element", t.Elem(), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		nullable := t.Kind() == reflect.Slice
		return schema.Field{
			Name:     name,
			DataType: schema.Of(schema.List),
			Nullable: nullable,
			Children: []schema.Field{elem},
		}, nil
	case reflect.Map:
		if tr.opts.MapAsStruct {
			return schema.Field{}, fmt.Errorf("%w: cannot trace maps as structs without sample data (field %q)",
				schema.ErrInvalid, name)
		}
		return tr.mapField(name, t, depth)
	case reflect.Struct:
		if t == timeType {
			return schema.Field{Name: name, DataType: schema.TimestampOf(schema.Nanosecond, "UTC")}, nil
		}
		children, err := tr.structFieldsFromType(t, depth)
		if err != nil {
			return schema.Field{}, err
		}
		return schema.Field{Name: name, DataType: schema.Of(schema.Struct), Children: children}, nil
	case reflect.Interface:
		return schema.Field{}, fmt.Errorf("%w: cannot trace interface type for field %q without sample data",
			schema.ErrInvalid, name)
	default:
		return schema.Field{}, fmt.Errorf("%w: cannot trace Go type %s for field %q",
			schema.ErrInvalid, t, name)
	}
}

func (tr *tracer) mapField(name string, t reflect.Type, depth int) (schema.Field, error) {
	key, err := tr.traceType("key", t.Key(), depth+2)
	if err != nil {
		return schema.Field{}, err
	}
	value, err := tr.traceType("value", t.Elem(), depth+2)
	if err != nil {
		return schema.Field{}, err
	}
	value.Nullable = true
	entries := schema.Field{
		Name:     "entries",
		DataType: schema.Of(schema.Struct),
		Children: []schema.Field{key, value},
	}
	return schema.Field{
		Name:     name,
		DataType: schema.Of(schema.Map),
		Nullable: true,
		Children: []schema.Field{entries},
	}, nil
}

func (tr *tracer) stringField(name string) schema.Field {
	if tr.opts.StringDictionary {
		return schema.Field{
			Name:     name,
			DataType: schema.Of(schema.Dictionary),
			Children: []schema.Field{
				{DataType: schema.Of(schema.U32)},
				{DataType: schema.Of(schema.Utf8)},
			},
		}
	}
	return schema.Field{Name: name, DataType: schema.Of(schema.Utf8)}
}

// traceValue derives a field from one observed value.
func (tr *tracer) traceValue(name string, v reflect.Value, depth int) (schema.Field, error) {
	if depth >= schema.MaxNestingDepth {
		return schema.Field{}, fmt.Errorf("%w: field %q exceeds maximum nesting depth %d",
			schema.ErrInvalid, name, schema.MaxNestingDepth)
	}

	switch v.Kind() {
	case reflect.Invalid:
		return schema.Field{Name: name, DataType: schema.Of(schema.Null), Nullable: true}, nil
	case reflect.Ptr:
		if v.IsNil() {
			f, err := tr.traceType(name, v.Type().Elem(), depth)
			if err != nil {
				return schema.Field{}, err
			}
			f.Nullable = true
			return f, nil
		}
		f, err := tr.traceValue(name, v.Elem(), depth)
		if err != nil {
			return schema.Field{}, err
		}
		f.Nullable = true
		return f, nil
	case reflect.Interface:
		if v.IsNil() {
			return schema.Field{Name: name, DataType: schema.Of(schema.Null), Nullable: true}, nil
		}
		return tr.traceValue(name, v.Elem(), depth)
	case reflect.String:
		if tr.opts.GuessDates {
			s := v.String()
			if utcDateTimeRe.MatchString(s) {
				return schema.Field{
					Name:     name,
					DataType: schema.Of(schema.Date64),
					Strategy: schema.StrategyUtcStrAsDate64,
				}, nil
			}
			if naiveDateTimeRe.MatchString(s) {
				return schema.Field{
					Name:     name,
					DataType: schema.Of(schema.Date64),
					Strategy: schema.StrategyNaiveStrAsDate64,
				}, nil
			}
		}
		return tr.stringField(name), nil
	case reflect.Slice, reflect.Array:
		return tr.listFieldFromValue(name, v, depth)
	case reflect.Map:
		if tr.opts.MapAsStruct {
			return tr.structFieldFromMapValue(name, v, depth)
		}
		return tr.mapFieldFromValue(name, v, depth)
	case reflect.Struct:
		if v.Type() == timeType {
			return schema.Field{Name: name, DataType: schema.TimestampOf(schema.Nanosecond, "UTC")}, nil
		}
		children, err := tr.structFieldsFromValue(v, depth)
		if err != nil {
			return schema.Field{}, err
		}
		return schema.Field{Name: name, DataType: schema.Of(schema.Struct), Children: children}, nil
	default:
		// scalar kinds resolve the same way as in static tracing
		return tr.traceType(name, v.Type(), depth)
	}
}

func (tr *tracer) listFieldFromValue(name string, v reflect.Value, depth int) (schema.Field, error) {
	var (
		elem   schema.Field
		traced bool
	)
	for i := 0; i < v.Len(); i++ {
		f, err := tr.traceValue("element", v.Index(i), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		if !traced {
			elem, traced = f, true
			continue
		}
		elem, err = tr.mergeField(elem, f)
		if err != nil {
			return schema.Field{}, err
		}
	}
	if !traced {
		f, err := tr.traceType("element", v.Type().Elem(), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		elem = f
	}
	return schema.Field{
		Name:     name,
		DataType: schema.Of(schema.List),
		Nullable: v.Kind() == reflect.Slice,
		Children: []schema.Field{elem},
	}, nil
}

func (tr *tracer) mapFieldFromValue(name string, v reflect.Value, depth int) (schema.Field, error) {
	var (
		key, value schema.Field
		traced     bool
		err        error
	)
	iter := v.MapRange()
	for iter.Next() {
		k, kerr := tr.traceValue("key", iter.Key(), depth+2)
		if kerr != nil {
			return schema.Field{}, kerr
		}
		val, verr := tr.traceValue("value", iter.Value(), depth+2)
		if verr != nil {
			return schema.Field{}, verr
		}
		if !traced {
			key, value, traced = k, val, true
			continue
		}
		if key, err = tr.mergeField(key, k); err != nil {
			return schema.Field{}, err
		}
		if value, err = tr.mergeField(value, val); err != nil {
			return schema.Field{}, err
		}
	}
	if !traced {
		return tr.mapField(name, v.Type(), depth)
	}
	key.Nullable = false
	value.Nullable = true
	entries := schema.Field{
		Name:     "entries",
		DataType: schema.Of(schema.Struct),
		Children: []schema.Field{key, value},
	}
	return schema.Field{
		Name:     name,
		DataType: schema.Of(schema.Map),
		Nullable: true,
		Children: []schema.Field{entries},
	}, nil
}

// structFieldFromMapValue traces a string-keyed map as a struct column,
// one member per observed key, marked with the MapAsStruct strategy.
func (tr *tracer) structFieldFromMapValue(name string, v reflect.Value, depth int) (schema.Field, error) {
	if v.Type().Key().Kind() != reflect.String {
		return schema.Field{}, fmt.Errorf("%w: cannot trace map with %s keys as struct (field %q)",
			schema.ErrInvalid, v.Type().Key(), name)
	}
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	children := make([]schema.Field, 0, len(keys))
	for _, k := range keys {
		f, err := tr.traceValue(k, v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		children = append(children, f)
	}
	return schema.Field{
		Name:     name,
		DataType: schema.Of(schema.Struct),
		Nullable: v.IsNil(),
		Children: children,
		Strategy: schema.StrategyMapAsStruct,
	}, nil
}

// resolveNullFields rejects fields for which only null values were
// observed, unless AllowNullFields keeps them as Null columns.
func (tr *tracer) resolveNullFields(fields []schema.Field) error {
	if tr.opts.AllowNullFields {
		return nil
	}
	for i := range fields {
		f := &fields[i]
		if f.DataType.Type == schema.Null {
			return fmt.Errorf("%w: field %q has no concrete type, only null values were observed (set AllowNullFields to keep it)",
				schema.ErrInvalid, f.Name)
		}
		if err := tr.resolveNullFields(f.Children); err != nil {
			return err
		}
	}
	return nil
}
