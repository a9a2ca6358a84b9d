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

package serdearrow_test

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serdearrow "github.com/aqora-io/serde-arrow"
	"github.com/aqora-io/serde-arrow/arrowconv"
	"github.com/aqora-io/serde-arrow/schema"
)

type measurement struct {
	Sensor  string   `json:"sensor"`
	Reading float64  `json:"reading"`
	Comment *string  `json:"comment"`
	History []uint16 `json:"history"`
}

func TestSchemaFromTypeToArrow(t *testing.T) {
	fields, err := serdearrow.FieldsFromType[measurement, arrow.Field](arrowconv.Converter{}, schema.TracingOptions{})
	require.NoError(t, err)
	require.Len(t, fields, 4)

	assert.Equal(t, "sensor", fields[0].Name)
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, fields[0].Type))
	assert.False(t, fields[0].Nullable)

	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float64, fields[1].Type))

	assert.Equal(t, "comment", fields[2].Name)
	assert.True(t, fields[2].Nullable)

	require.Equal(t, arrow.LIST, fields[3].Type.ID())
	elem := fields[3].Type.(*arrow.ListType).ElemField()
	assert.Equal(t, "element", elem.Name)
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint16, elem.Type))
}

func TestSchemaFromValueToArrow(t *testing.T) {
	fields, err := serdearrow.FieldsFromValue[arrow.Field](arrowconv.Converter{}, measurement{
		Sensor:  "s1",
		Reading: 1.5,
		History: []uint16{1, 2},
	})
	require.NoError(t, err)
	require.Len(t, fields, 4)
	assert.Equal(t, "reading", fields[1].Name)
}

func TestSchemaFromSamplesToArrow(t *testing.T) {
	samples := []map[string]interface{}{
		{"a": int64(1), "b": "x"},
		{"a": int64(2)},
	}

	fields, err := serdearrow.FieldsFromSamples[arrow.Field](arrowconv.Converter{}, samples, schema.TracingOptions{})
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.False(t, fields[0].Nullable)
	assert.True(t, fields[1].Nullable)
}

func TestFacadeErrorsPropagate(t *testing.T) {
	_, err := serdearrow.FieldsFromType[*measurement, arrow.Field](arrowconv.Converter{}, schema.TracingOptions{})
	assert.ErrorIs(t, err, schema.ErrInvalid)

	_, err = serdearrow.FieldsFromSamples[arrow.Field](arrowconv.Converter{}, []measurement{}, schema.TracingOptions{})
	assert.ErrorIs(t, err, schema.ErrInvalid)
}

func TestItemWrapping(t *testing.T) {
	values := []int32{13, 21, 34}
	items := serdearrow.WrapItems(values)
	require.Len(t, items, 3)
	assert.Equal(t, values, serdearrow.UnwrapItems(items))

	data, err := json.Marshal(serdearrow.NewItem(int64(42)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":42}`, string(data))

	var parsed serdearrow.Item[int64]
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, int64(42), parsed.Item)
}

func TestItemsTraceAsSingleColumn(t *testing.T) {
	fields, err := serdearrow.FieldsFromSamples[arrow.Field](arrowconv.Converter{},
		serdearrow.WrapItems([]int32{13, 21}), schema.TracingOptions{})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "item", fields[0].Name)
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int32, fields[0].Type))
}
