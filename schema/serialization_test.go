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

func testSchema() *Schema {
	return &Schema{Fields: []Field{
		{Name: "id", DataType: Of(I64)},
		{Name: "name", DataType: Of(Utf8), Nullable: true},
		{Name: "when", DataType: TimestampOf(Millisecond, "UTC")},
		{Name: "price", DataType: Decimal128Of(38, 2)},
		{
			Name:     "date",
			DataType: Of(Date64),
			Strategy: StrategyUtcStrAsDate64,
		},
		{
			Name:     "tags",
			DataType: Of(List),
			Nullable: true,
			Children: []Field{{Name: "element", DataType: Of(Utf8)}},
		},
	}}
}

func TestSchemaJSONRoundTrip(t *testing.T) {
	s := testSchema()

	data, err := s.ToJSON()
	require.NoError(t, err)

	parsed, err := FromJSON(data)
	require.NoError(t, err)
	assert.True(t, s.Equal(parsed), "got %s", parsed)
}

func TestSchemaFromJSONDocument(t *testing.T) {
	parsed, err := FromJSON([]byte(`{
		"fields": [
			{"name": "a", "data_type": "I32"},
			{"name": "b", "data_type": "Timestamp(Second, UTC)", "nullable": true},
			{"name": "c", "data_type": "List",
			 "children": [{"name": "element", "data_type": "U8"}]}
		]
	}`))
	require.NoError(t, err)

	expected := &Schema{Fields: []Field{
		{Name: "a", DataType: Of(I32)},
		{Name: "b", DataType: TimestampOf(Second, "UTC"), Nullable: true},
		{Name: "c", DataType: Of(List), Children: []Field{{Name: "element", DataType: Of(U8)}}},
	}}
	assert.True(t, expected.Equal(parsed), "got %s", parsed)
}

func TestSchemaFromJSONErrors(t *testing.T) {
	// unknown data type
	_, err := FromJSON([]byte(`{"fields": [{"name": "a", "data_type": "Int32"}]}`))
	assert.ErrorIs(t, err, ErrInvalid)

	// unknown strategy
	_, err = FromJSON([]byte(`{"fields": [{"name": "a", "data_type": "I32", "strategy": "Nope"}]}`))
	assert.ErrorIs(t, err, ErrInvalid)

	// structurally invalid schema
	_, err = FromJSON([]byte(`{"fields": [{"name": "a", "data_type": "List"}]}`))
	assert.ErrorIs(t, err, ErrInvalid)

	// malformed document
	_, err = FromJSON([]byte(`{"fields":`))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSchemaYAMLRoundTrip(t *testing.T) {
	s := testSchema()

	data, err := s.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)
	assert.True(t, s.Equal(parsed), "got %s", parsed)
}

func TestSchemaFromYAMLDocument(t *testing.T) {
	parsed, err := FromYAML([]byte(`
fields:
  - name: a
    data_type: Decimal128(10, 2)
  - name: b
    data_type: Utf8
    nullable: true
`))
	require.NoError(t, err)

	expected := &Schema{Fields: []Field{
		{Name: "a", DataType: Decimal128Of(10, 2)},
		{Name: "b", DataType: Of(Utf8), Nullable: true},
	}}
	assert.True(t, expected.Equal(parsed), "got %s", parsed)
}
