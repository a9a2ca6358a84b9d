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

package arrowconv

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/aqora-io/serde-arrow/schema"
)

// DecodeField converts an Arrow field into a canonical field. The result
// is validated before it is returned; Arrow types without a canonical
// counterpart and type-system features the model rejects (sorted
// dictionaries, sparse or explicitly indexed unions, out-of-range decimal
// parameters) fail with a descriptive error.
func DecodeField(f arrow.Field) (schema.Field, error) {
	return decodeField(f, 0)
}

func decodeField(f arrow.Field, depth int) (schema.Field, error) {
	if depth >= schema.MaxNestingDepth {
		return schema.Field{}, fmt.Errorf("%w: field %q exceeds maximum nesting depth %d",
			schema.ErrInvalid, f.Name, schema.MaxNestingDepth)
	}

	strategy := schema.StrategyNone
	if idx := f.Metadata.FindKey(schema.StrategyKey); idx >= 0 {
		var err error
		strategy, err = schema.ParseStrategy(f.Metadata.Values()[idx])
		if err != nil {
			return schema.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	var (
		dataType schema.DataType
		children []schema.Field
	)

	switch f.Type.ID() {
	case arrow.NULL:
		dataType = schema.Of(schema.Null)
	case arrow.BOOL:
		dataType = schema.Of(schema.Bool)
	case arrow.INT8:
		dataType = schema.Of(schema.I8)
	case arrow.INT16:
		dataType = schema.Of(schema.I16)
	case arrow.INT32:
		dataType = schema.Of(schema.I32)
	case arrow.INT64:
		dataType = schema.Of(schema.I64)
	case arrow.UINT8:
		dataType = schema.Of(schema.U8)
	case arrow.UINT16:
		dataType = schema.Of(schema.U16)
	case arrow.UINT32:
		dataType = schema.Of(schema.U32)
	case arrow.UINT64:
		dataType = schema.Of(schema.U64)
	case arrow.FLOAT16:
		dataType = schema.Of(schema.F16)
	case arrow.FLOAT32:
		dataType = schema.Of(schema.F32)
	case arrow.FLOAT64:
		dataType = schema.Of(schema.F64)
	case arrow.STRING:
		dataType = schema.Of(schema.Utf8)
	case arrow.LARGE_STRING:
		dataType = schema.Of(schema.LargeUtf8)
	case arrow.DATE32:
		dataType = schema.Of(schema.Date32)
	case arrow.DATE64:
		dataType = schema.Of(schema.Date64)
	case arrow.TIME64:
		typ := f.Type.(*arrow.Time64Type)
		unit, err := decodeTimeUnit(typ.Unit)
		if err != nil {
			return schema.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		if unit != schema.Microsecond && unit != schema.Nanosecond {
			return schema.Field{}, fmt.Errorf("%w: field %q has invalid time unit %s for Time64",
				schema.ErrInvalid, f.Name, unit)
		}
		dataType = schema.Time64Of(unit)
	case arrow.TIMESTAMP:
		typ := f.Type.(*arrow.TimestampType)
		unit, err := decodeTimeUnit(typ.Unit)
		if err != nil {
			return schema.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		dataType = schema.TimestampOf(unit, typ.TimeZone)
	case arrow.DECIMAL128:
		typ := f.Type.(*arrow.Decimal128Type)
		if typ.Precision < 0 || typ.Precision > 255 || typ.Scale < 0 || typ.Scale > 127 {
			return schema.Field{}, fmt.Errorf("%w: field %q: cannot represent precision/scale (%d, %d) of the decimal",
				schema.ErrNotImplemented, f.Name, typ.Precision, typ.Scale)
		}
		dataType = schema.Decimal128Of(uint8(typ.Precision), int8(typ.Scale))
	case arrow.LIST:
		elem, err := decodeField(f.Type.(*arrow.ListType).ElemField(), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		dataType = schema.Of(schema.List)
		children = []schema.Field{elem}
	case arrow.LARGE_LIST:
		elem, err := decodeField(f.Type.(*arrow.LargeListType).ElemField(), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		dataType = schema.Of(schema.LargeList)
		children = []schema.Field{elem}
	case arrow.STRUCT:
		typ := f.Type.(*arrow.StructType)
		children = make([]schema.Field, 0, len(typ.Fields()))
		for _, member := range typ.Fields() {
			child, err := decodeField(member, depth+1)
			if err != nil {
				return schema.Field{}, err
			}
			children = append(children, child)
		}
		dataType = schema.Of(schema.Struct)
	case arrow.MAP:
		typ := f.Type.(*arrow.MapType)
		if typ.KeysSorted {
			return schema.Field{}, fmt.Errorf("%w: field %q: maps with sorted keys are not supported",
				schema.ErrNotImplemented, f.Name)
		}
		entries, err := decodeField(typ.ValueField(), depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		dataType = schema.Of(schema.Map)
		children = []schema.Field{entries}
	case arrow.SPARSE_UNION:
		return schema.Field{}, fmt.Errorf("%w: field %q: only dense unions are supported",
			schema.ErrNotImplemented, f.Name)
	case arrow.DENSE_UNION:
		typ := f.Type.(*arrow.DenseUnionType)
		for i, code := range typ.TypeCodes() {
			if int(code) != i {
				return schema.Field{}, fmt.Errorf("%w: field %q: unions with explicit type ids are not supported",
					schema.ErrNotImplemented, f.Name)
			}
		}
		children = make([]schema.Field, 0, len(typ.Fields()))
		for _, variant := range typ.Fields() {
			child, err := decodeField(variant, depth+1)
			if err != nil {
				return schema.Field{}, err
			}
			children = append(children, child)
		}
		dataType = schema.Of(schema.Union)
	case arrow.DICTIONARY:
		typ := f.Type.(*arrow.DictionaryType)
		if typ.Ordered {
			return schema.Field{}, fmt.Errorf("%w: field %q: sorted dictionaries are not supported",
				schema.ErrNotImplemented, f.Name)
		}
		keyType, err := decodeDictionaryKey(typ.IndexType)
		if err != nil {
			return schema.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		value, err := decodeField(arrow.Field{Type: typ.ValueType}, depth+1)
		if err != nil {
			return schema.Field{}, err
		}
		dataType = schema.Of(schema.Dictionary)
		children = []schema.Field{{DataType: schema.Of(keyType)}, value}
	default:
		return schema.Field{}, fmt.Errorf("%w: field %q: cannot convert data type %s",
			schema.ErrNotImplemented, f.Name, f.Type)
	}

	field := schema.Field{
		Name:     f.Name,
		DataType: dataType,
		Nullable: f.Nullable,
		Children: children,
		Strategy: strategy,
	}
	if err := field.Validate(); err != nil {
		return schema.Field{}, err
	}
	return field, nil
}

// EncodeField converts a canonical field into an Arrow field. Canonical
// states Arrow cannot express, e.g. decimals with negative scale or
// dictionaries keyed by a non-integer type, fail with a descriptive
// error. The field's Strategy, if any, is written to the Arrow field's
// metadata under schema.StrategyKey.
func EncodeField(f schema.Field) (arrow.Field, error) {
	return encodeField(f, 0)
}

func encodeField(f schema.Field, depth int) (arrow.Field, error) {
	if depth >= schema.MaxNestingDepth {
		return arrow.Field{}, fmt.Errorf("%w: field %q exceeds maximum nesting depth %d",
			schema.ErrInvalid, f.Name, schema.MaxNestingDepth)
	}

	var dataType arrow.DataType

	switch f.DataType.Type {
	case schema.Null:
		dataType = arrow.Null
	case schema.Bool:
		dataType = arrow.FixedWidthTypes.Boolean
	case schema.I8:
		dataType = arrow.PrimitiveTypes.Int8
	case schema.I16:
		dataType = arrow.PrimitiveTypes.Int16
	case schema.I32:
		dataType = arrow.PrimitiveTypes.Int32
	case schema.I64:
		dataType = arrow.PrimitiveTypes.Int64
	case schema.U8:
		dataType = arrow.PrimitiveTypes.Uint8
	case schema.U16:
		dataType = arrow.PrimitiveTypes.Uint16
	case schema.U32:
		dataType = arrow.PrimitiveTypes.Uint32
	case schema.U64:
		dataType = arrow.PrimitiveTypes.Uint64
	case schema.F16:
		dataType = arrow.FixedWidthTypes.Float16
	case schema.F32:
		dataType = arrow.PrimitiveTypes.Float32
	case schema.F64:
		dataType = arrow.PrimitiveTypes.Float64
	case schema.Utf8:
		dataType = arrow.BinaryTypes.String
	case schema.LargeUtf8:
		dataType = arrow.BinaryTypes.LargeString
	case schema.Date32:
		dataType = arrow.FixedWidthTypes.Date32
	case schema.Date64:
		dataType = arrow.FixedWidthTypes.Date64
	case schema.Time64:
		switch f.DataType.Unit {
		case schema.Microsecond:
			dataType = arrow.FixedWidthTypes.Time64us
		case schema.Nanosecond:
			dataType = arrow.FixedWidthTypes.Time64ns
		default:
			return arrow.Field{}, fmt.Errorf("%w: field %q has invalid time unit %s for Time64",
				schema.ErrInvalid, f.Name, f.DataType.Unit)
		}
	case schema.Timestamp:
		unit, err := encodeTimeUnit(f.DataType.Unit)
		if err != nil {
			return arrow.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		dataType = &arrow.TimestampType{Unit: unit, TimeZone: f.DataType.TimeZone}
	case schema.Decimal128:
		if f.DataType.Scale < 0 {
			return arrow.Field{}, fmt.Errorf("%w: field %q: decimals with negative scale are not supported",
				schema.ErrNotImplemented, f.Name)
		}
		dataType = &arrow.Decimal128Type{
			Precision: int32(f.DataType.Precision),
			Scale:     int32(f.DataType.Scale),
		}
	case schema.List, schema.LargeList:
		if len(f.Children) != 1 {
			return arrow.Field{}, fmt.Errorf("%w: field %q of type %s must have a single child",
				schema.ErrInvalid, f.Name, f.DataType)
		}
		elem, err := encodeField(f.Children[0], depth+1)
		if err != nil {
			return arrow.Field{}, err
		}
		if f.DataType.Type == schema.List {
			dataType = arrow.ListOfField(elem)
		} else {
			dataType = arrow.LargeListOfField(elem)
		}
	case schema.Struct:
		members := make([]arrow.Field, 0, len(f.Children))
		for _, child := range f.Children {
			member, err := encodeField(child, depth+1)
			if err != nil {
				return arrow.Field{}, err
			}
			members = append(members, member)
		}
		dataType = arrow.StructOf(members...)
	case schema.Map:
		mapType, err := encodeMap(f, depth)
		if err != nil {
			return arrow.Field{}, err
		}
		dataType = mapType
	case schema.Union:
		variants := make([]arrow.Field, 0, len(f.Children))
		codes := make([]arrow.UnionTypeCode, 0, len(f.Children))
		for i, child := range f.Children {
			variant, err := encodeField(child, depth+1)
			if err != nil {
				return arrow.Field{}, err
			}
			variants = append(variants, variant)
			codes = append(codes, arrow.UnionTypeCode(i))
		}
		dataType = arrow.DenseUnionOf(variants, codes)
	case schema.Dictionary:
		if len(f.Children) != 2 {
			return arrow.Field{}, fmt.Errorf("%w: dictionary field %q must have exactly two children (key, value)",
				schema.ErrInvalid, f.Name)
		}
		keyType, err := encodeDictionaryKey(f.Children[0].DataType.Type)
		if err != nil {
			return arrow.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		value, err := encodeField(f.Children[1], depth+1)
		if err != nil {
			return arrow.Field{}, err
		}
		dataType = &arrow.DictionaryType{IndexType: keyType, ValueType: value.Type}
	default:
		return arrow.Field{}, fmt.Errorf("%w: field %q: cannot convert data type %s",
			schema.ErrNotImplemented, f.Name, f.DataType)
	}

	field := arrow.Field{Name: f.Name, Type: dataType, Nullable: f.Nullable}
	if f.Strategy != schema.StrategyNone {
		if !f.Strategy.IsValid() {
			return arrow.Field{}, fmt.Errorf("%w: field %q carries unknown strategy %q",
				schema.ErrInvalid, f.Name, f.Strategy)
		}
		field.Metadata = arrow.NewMetadata(
			[]string{schema.StrategyKey}, []string{f.Strategy.String()})
	}
	return field, nil
}

// encodeMap rebuilds an Arrow map type from the canonical entries struct.
// Arrow constructs the entries struct itself, fixing the conventional
// field names and a non-nullable key, so canonical maps outside that
// shape cannot be represented and fail here.
func encodeMap(f schema.Field, depth int) (*arrow.MapType, error) {
	if len(f.Children) != 1 {
		return nil, fmt.Errorf("%w: map field %q must have a single entries child",
			schema.ErrInvalid, f.Name)
	}
	entries := f.Children[0]
	if entries.DataType.Type != schema.Struct || len(entries.Children) != 2 {
		return nil, fmt.Errorf("%w: map field %q requires its entries child to be a two-member struct (key, value)",
			schema.ErrInvalid, f.Name)
	}
	if entries.Nullable {
		return nil, fmt.Errorf("%w: map field %q: nullable entries are not supported",
			schema.ErrNotImplemented, f.Name)
	}

	key, err := encodeField(entries.Children[0], depth+2)
	if err != nil {
		return nil, err
	}
	if key.Nullable {
		return nil, fmt.Errorf("%w: map field %q: nullable keys are not supported",
			schema.ErrNotImplemented, f.Name)
	}
	value, err := encodeField(entries.Children[1], depth+2)
	if err != nil {
		return nil, err
	}

	mapType := arrow.MapOf(key.Type, value.Type)
	mapType.SetItemNullable(value.Nullable)
	return mapType, nil
}

func decodeTimeUnit(unit arrow.TimeUnit) (schema.TimeUnit, error) {
	switch unit {
	case arrow.Second:
		return schema.Second, nil
	case arrow.Millisecond:
		return schema.Millisecond, nil
	case arrow.Microsecond:
		return schema.Microsecond, nil
	case arrow.Nanosecond:
		return schema.Nanosecond, nil
	}
	return schema.Second, fmt.Errorf("%w: unknown time unit %s", schema.ErrNotImplemented, unit)
}

func encodeTimeUnit(unit schema.TimeUnit) (arrow.TimeUnit, error) {
	switch unit {
	case schema.Second:
		return arrow.Second, nil
	case schema.Millisecond:
		return arrow.Millisecond, nil
	case schema.Microsecond:
		return arrow.Microsecond, nil
	case schema.Nanosecond:
		return arrow.Nanosecond, nil
	}
	return arrow.Second, fmt.Errorf("%w: unknown time unit %s", schema.ErrInvalid, unit)
}

func decodeDictionaryKey(indexType arrow.DataType) (schema.Type, error) {
	switch indexType.ID() {
	case arrow.INT8:
		return schema.I8, nil
	case arrow.INT16:
		return schema.I16, nil
	case arrow.INT32:
		return schema.I32, nil
	case arrow.INT64:
		return schema.I64, nil
	case arrow.UINT8:
		return schema.U8, nil
	case arrow.UINT16:
		return schema.U16, nil
	case arrow.UINT32:
		return schema.U32, nil
	case arrow.UINT64:
		return schema.U64, nil
	}
	return schema.Null, fmt.Errorf("%w: invalid key type %s for dictionary",
		schema.ErrNotImplemented, indexType)
}

func encodeDictionaryKey(t schema.Type) (arrow.DataType, error) {
	switch t {
	case schema.I8:
		return arrow.PrimitiveTypes.Int8, nil
	case schema.I16:
		return arrow.PrimitiveTypes.Int16, nil
	case schema.I32:
		return arrow.PrimitiveTypes.Int32, nil
	case schema.I64:
		return arrow.PrimitiveTypes.Int64, nil
	case schema.U8:
		return arrow.PrimitiveTypes.Uint8, nil
	case schema.U16:
		return arrow.PrimitiveTypes.Uint16, nil
	case schema.U32:
		return arrow.PrimitiveTypes.Uint32, nil
	case schema.U64:
		return arrow.PrimitiveTypes.Uint64, nil
	}
	return nil, fmt.Errorf("%w: invalid key type %s for dictionary",
		schema.ErrNotImplemented, t)
}
