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

func utf8Field(name string) Field {
	return Field{Name: name, DataType: Of(Utf8)}
}

func TestValidateArity(t *testing.T) {
	element := Field{Name: "element", DataType: Of(I32)}

	for _, tc := range []struct {
		name  string
		field Field
		ok    bool
	}{
		{"scalar without children", Field{Name: "a", DataType: Of(I32)}, true},
		{"scalar with child", Field{Name: "a", DataType: Of(I32), Children: []Field{element}}, false},
		{"list with one child", Field{Name: "a", DataType: Of(List), Children: []Field{element}}, true},
		{"list without children", Field{Name: "a", DataType: Of(List)}, false},
		{"list with two children", Field{Name: "a", DataType: Of(List), Children: []Field{element, element}}, false},
		{"large list with one child", Field{Name: "a", DataType: Of(LargeList), Children: []Field{element}}, true},
		{"empty struct", Field{Name: "a", DataType: Of(Struct)}, true},
		{"struct with members", Field{Name: "a", DataType: Of(Struct), Children: []Field{element, utf8Field("b")}}, true},
		{"union with variants", Field{Name: "a", DataType: Of(Union), Children: []Field{element, utf8Field("b")}}, true},
		{
			"dictionary with two children",
			Field{Name: "a", DataType: Of(Dictionary), Children: []Field{
				{DataType: Of(U32)}, {DataType: Of(Utf8)},
			}},
			true,
		},
		{
			"dictionary with one child",
			Field{Name: "a", DataType: Of(Dictionary), Children: []Field{{DataType: Of(U32)}}},
			false,
		},
		{
			"dictionary with three children",
			Field{Name: "a", DataType: Of(Dictionary), Children: []Field{
				{DataType: Of(U32)}, {DataType: Of(Utf8)}, {DataType: Of(Utf8)},
			}},
			false,
		},
		{
			"dictionary with non-integer key",
			Field{Name: "a", DataType: Of(Dictionary), Children: []Field{
				{DataType: Of(Utf8)}, {DataType: Of(Utf8)},
			}},
			false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.field.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestValidateMapEntriesShape(t *testing.T) {
	valid := Field{Name: "m", DataType: Of(Map), Children: []Field{{
		Name:     "entries",
		DataType: Of(Struct),
		Children: []Field{utf8Field("key"), {Name: "value", DataType: Of(I64), Nullable: true}},
	}}}
	assert.NoError(t, valid.Validate())

	// entries must be a struct
	invalid := Field{Name: "m", DataType: Of(Map), Children: []Field{utf8Field("entries")}}
	assert.ErrorIs(t, invalid.Validate(), ErrInvalid)

	// entries must have exactly two members
	invalid = Field{Name: "m", DataType: Of(Map), Children: []Field{{
		Name:     "entries",
		DataType: Of(Struct),
		Children: []Field{utf8Field("key")},
	}}}
	assert.ErrorIs(t, invalid.Validate(), ErrInvalid)

	invalid = Field{Name: "m", DataType: Of(Map)}
	assert.ErrorIs(t, invalid.Validate(), ErrInvalid)
}

func TestValidateTimeUnits(t *testing.T) {
	assert.NoError(t, (&Field{Name: "t", DataType: Time64Of(Microsecond)}).Validate())
	assert.NoError(t, (&Field{Name: "t", DataType: Time64Of(Nanosecond)}).Validate())
	assert.ErrorIs(t, (&Field{Name: "t", DataType: Time64Of(Second)}).Validate(), ErrInvalid)
	assert.ErrorIs(t, (&Field{Name: "t", DataType: Time64Of(Millisecond)}).Validate(), ErrInvalid)

	for _, unit := range []TimeUnit{Second, Millisecond, Microsecond, Nanosecond} {
		assert.NoError(t, (&Field{Name: "t", DataType: TimestampOf(unit, "UTC")}).Validate())
	}
}

func TestValidateNestedFailurePropagates(t *testing.T) {
	field := Field{Name: "outer", DataType: Of(Struct), Children: []Field{
		{Name: "inner", DataType: Of(List)}, // missing element child
	}}
	err := field.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "inner")
}

func TestValidateUnknownStrategy(t *testing.T) {
	field := Field{Name: "a", DataType: Of(I32), Strategy: Strategy("FancyEncoding")}
	assert.ErrorIs(t, field.Validate(), ErrInvalid)
}

func TestValidateDepthLimit(t *testing.T) {
	field := Field{Name: "leaf", DataType: Of(I32)}
	for i := 0; i < MaxNestingDepth+1; i++ {
		field = Field{Name: "element", DataType: Of(List), Children: []Field{field}}
	}
	field.Name = "deep"

	err := field.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "nesting depth")
}

func TestSchemaValidate(t *testing.T) {
	s := &Schema{Fields: []Field{
		{Name: "a", DataType: Of(I32)},
		{Name: "b", DataType: Of(List)}, // invalid
	}}
	assert.ErrorIs(t, s.Validate(), ErrInvalid)

	s = &Schema{Fields: []Field{
		{Name: "a", DataType: Of(I32)},
		{Name: "b", DataType: Of(Utf8), Nullable: true},
	}}
	assert.NoError(t, s.Validate())
}
