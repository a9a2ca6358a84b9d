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

package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the set of logical column types understood by the schema model.
type Type int8

const (
	Null Type = iota
	Bool
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F16
	F32
	F64
	Utf8
	LargeUtf8
	Date32
	Date64
	Time64
	Timestamp
	Decimal128
	List
	LargeList
	Struct
	Map
	Union
	Dictionary
)

var typeNames = [...]string{
	Null:       "Null",
	Bool:       "Bool",
	I8:         "I8",
	I16:        "I16",
	I32:        "I32",
	I64:        "I64",
	U8:         "U8",
	U16:        "U16",
	U32:        "U32",
	U64:        "U64",
	F16:        "F16",
	F32:        "F32",
	F64:        "F64",
	Utf8:       "Utf8",
	LargeUtf8:  "LargeUtf8",
	Date32:     "Date32",
	Date64:     "Date64",
	Time64:     "Time64",
	Timestamp:  "Timestamp",
	Decimal128: "Decimal128",
	List:       "List",
	LargeList:  "LargeList",
	Struct:     "Struct",
	Map:        "Map",
	Union:      "Union",
	Dictionary: "Dictionary",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// IsInteger reports whether t is one of the eight integer types. Only
// integer types may key a Dictionary.
func (t Type) IsInteger() bool {
	switch t {
	case I8, I16, I32, I64, U8, U16, U32, U64:
		return true
	}
	return false
}

// IsNested reports whether t carries child fields.
func (t Type) IsNested() bool {
	switch t {
	case List, LargeList, Struct, Map, Union, Dictionary:
		return true
	}
	return false
}

// TimeUnit is the resolution of a Time64 or Timestamp column.
type TimeUnit int8

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

var timeUnitNames = [...]string{
	Second:      "Second",
	Millisecond: "Millisecond",
	Microsecond: "Microsecond",
	Nanosecond:  "Nanosecond",
}

func (u TimeUnit) String() string {
	if u < 0 || int(u) >= len(timeUnitNames) {
		return "TimeUnit(" + strconv.Itoa(int(u)) + ")"
	}
	return timeUnitNames[u]
}

// DataType is a logical type together with its parameters. Only the
// parameters relevant for Type are meaningful: Unit for Time64 and
// Timestamp, TimeZone for Timestamp (empty means no timezone), Precision
// and Scale for Decimal128. DataType values are comparable with ==.
type DataType struct {
	Type      Type
	Unit      TimeUnit
	TimeZone  string
	Precision uint8
	Scale     int8
}

// Of returns the DataType for a type without parameters.
func Of(t Type) DataType { return DataType{Type: t} }

// Time64Of returns a Time64 DataType with the given unit.
func Time64Of(unit TimeUnit) DataType { return DataType{Type: Time64, Unit: unit} }

// TimestampOf returns a Timestamp DataType with the given unit and
// timezone. An empty timezone means the timestamps are not zoned.
func TimestampOf(unit TimeUnit, tz string) DataType {
	return DataType{Type: Timestamp, Unit: unit, TimeZone: tz}
}

// Decimal128Of returns a Decimal128 DataType with the given precision and
// scale.
func Decimal128Of(precision uint8, scale int8) DataType {
	return DataType{Type: Decimal128, Precision: precision, Scale: scale}
}

// String renders the canonical textual form of the data type, e.g. "I32",
// "Time64(Microsecond)", "Timestamp(Second, UTC)" or "Decimal128(38, 2)".
// ParseDataType is its exact inverse.
func (dt DataType) String() string {
	switch dt.Type {
	case Time64:
		return fmt.Sprintf("Time64(%s)", dt.Unit)
	case Timestamp:
		if dt.TimeZone == "" {
			return fmt.Sprintf("Timestamp(%s)", dt.Unit)
		}
		return fmt.Sprintf("Timestamp(%s, %s)", dt.Unit, dt.TimeZone)
	case Decimal128:
		return fmt.Sprintf("Decimal128(%d, %d)", dt.Precision, dt.Scale)
	default:
		return dt.Type.String()
	}
}

// ParseDataType parses the textual form produced by DataType.String.
func ParseDataType(s string) (DataType, error) {
	name, args, parameterized := strings.Cut(s, "(")
	if parameterized {
		if !strings.HasSuffix(args, ")") {
			return DataType{}, fmt.Errorf("%w: malformed data type %q", ErrInvalid, s)
		}
		args = strings.TrimSuffix(args, ")")
	}

	typ, ok := typeByName(name)
	if !ok {
		return DataType{}, fmt.Errorf("%w: unknown data type %q", ErrInvalid, s)
	}

	switch typ {
	case Time64:
		unit, err := parseTimeUnit(args)
		if err != nil {
			return DataType{}, fmt.Errorf("%w in %q", err, s)
		}
		return Time64Of(unit), nil
	case Timestamp:
		unitStr, tz, _ := strings.Cut(args, ",")
		unit, err := parseTimeUnit(strings.TrimSpace(unitStr))
		if err != nil {
			return DataType{}, fmt.Errorf("%w in %q", err, s)
		}
		return TimestampOf(unit, strings.TrimSpace(tz)), nil
	case Decimal128:
		precStr, scaleStr, found := strings.Cut(args, ",")
		if !found {
			return DataType{}, fmt.Errorf("%w: malformed decimal type %q", ErrInvalid, s)
		}
		prec, err := strconv.ParseUint(strings.TrimSpace(precStr), 10, 8)
		if err != nil {
			return DataType{}, fmt.Errorf("%w: invalid decimal precision in %q", ErrInvalid, s)
		}
		scale, err := strconv.ParseInt(strings.TrimSpace(scaleStr), 10, 8)
		if err != nil {
			return DataType{}, fmt.Errorf("%w: invalid decimal scale in %q", ErrInvalid, s)
		}
		return Decimal128Of(uint8(prec), int8(scale)), nil
	default:
		if parameterized {
			return DataType{}, fmt.Errorf("%w: data type %s takes no parameters", ErrInvalid, name)
		}
		return Of(typ), nil
	}
}

func typeByName(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}
	return Null, false
}

func parseTimeUnit(s string) (TimeUnit, error) {
	for u, n := range timeUnitNames {
		if n == s {
			return TimeUnit(u), nil
		}
	}
	return Second, fmt.Errorf("%w: unknown time unit %q", ErrInvalid, s)
}
