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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeStringRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		dt  DataType
		str string
	}{
		{Of(Null), "Null"},
		{Of(Bool), "Bool"},
		{Of(I8), "I8"},
		{Of(I16), "I16"},
		{Of(I32), "I32"},
		{Of(I64), "I64"},
		{Of(U8), "U8"},
		{Of(U16), "U16"},
		{Of(U32), "U32"},
		{Of(U64), "U64"},
		{Of(F16), "F16"},
		{Of(F32), "F32"},
		{Of(F64), "F64"},
		{Of(Utf8), "Utf8"},
		{Of(LargeUtf8), "LargeUtf8"},
		{Of(Date32), "Date32"},
		{Of(Date64), "Date64"},
		{Time64Of(Microsecond), "Time64(Microsecond)"},
		{Time64Of(Nanosecond), "Time64(Nanosecond)"},
		{TimestampOf(Second, ""), "Timestamp(Second)"},
		{TimestampOf(Millisecond, "UTC"), "Timestamp(Millisecond, UTC)"},
		{TimestampOf(Nanosecond, "Europe/Berlin"), "Timestamp(Nanosecond, Europe/Berlin)"},
		{Decimal128Of(38, 2), "Decimal128(38, 2)"},
		{Decimal128Of(255, 127), "Decimal128(255, 127)"},
		{Decimal128Of(10, -5), "Decimal128(10, -5)"},
		{Of(List), "List"},
		{Of(LargeList), "LargeList"},
		{Of(Struct), "Struct"},
		{Of(Map), "Map"},
		{Of(Union), "Union"},
		{Of(Dictionary), "Dictionary"},
	} {
		t.Run(tc.str, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.dt.String())

			parsed, err := ParseDataType(tc.str)
			require.NoError(t, err)
			assert.Equal(t, tc.dt, parsed)
		})
	}
}

func TestParseDataTypeErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"Int32",
		"Time64",             // missing unit
		"Time64(Fortnight)",  // unknown unit
		"Time64(Microsecond", // unbalanced
		"Timestamp(Decade, UTC)",
		"Decimal128",
		"Decimal128(38)",
		"Decimal128(256, 0)",  // precision out of range
		"Decimal128(10, 130)", // scale out of range
		"Decimal128(x, y)",
		"Bool(1)", // parameters on parameterless type
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseDataType(s)
			assert.Error(t, err)
		})
	}
}

func TestTypeIsInteger(t *testing.T) {
	for _, typ := range []Type{I8, I16, I32, I64, U8, U16, U32, U64} {
		assert.True(t, typ.IsInteger(), "%s", typ)
	}
	for _, typ := range []Type{Null, Bool, F32, Utf8, Date32, Timestamp, List, Dictionary} {
		assert.False(t, typ.IsInteger(), "%s", typ)
	}
}
