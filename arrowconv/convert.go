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
	"github.com/apache/arrow/go/v17/arrow"

	serdearrow "github.com/aqora-io/serde-arrow"
	"github.com/aqora-io/serde-arrow/schema"
)

// ToFields validates a canonical schema and projects it onto Arrow
// fields, one per top-level column.
func ToFields(s *schema.Schema) ([]arrow.Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	fields := make([]arrow.Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		encoded, err := EncodeField(f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, encoded)
	}
	return fields, nil
}

// FromFields decodes a list of Arrow fields into a canonical schema.
func FromFields(fields []arrow.Field) (*schema.Schema, error) {
	s := &schema.Schema{Fields: make([]schema.Field, 0, len(fields))}
	for _, f := range fields {
		decoded, err := DecodeField(f)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, decoded)
	}
	return s, nil
}

// ToArrowSchema projects a canonical schema onto an *arrow.Schema
// without schema-level metadata.
func ToArrowSchema(s *schema.Schema) (*arrow.Schema, error) {
	fields, err := ToFields(s)
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema(fields, nil), nil
}

// FromArrowSchema decodes an *arrow.Schema into a canonical schema.
// Schema-level metadata is ignored; only field-level metadata under
// schema.StrategyKey is interpreted.
func FromArrowSchema(sc *arrow.Schema) (*schema.Schema, error) {
	return FromFields(sc.Fields())
}

// Converter adapts this package to the generic backend contract.
type Converter struct{}

var _ serdearrow.Converter[arrow.Field] = Converter{}

func (Converter) ToBackendFields(s *schema.Schema) ([]arrow.Field, error) {
	return ToFields(s)
}

func (Converter) FromBackendFields(fields []arrow.Field) (*schema.Schema, error) {
	return FromFields(fields)
}

// FieldsFromValue traces the schema of one record value and projects it
// onto Arrow fields.
func FieldsFromValue(v interface{}) ([]arrow.Field, error) {
	return serdearrow.FieldsFromValue[arrow.Field](Converter{}, v)
}

// FieldsFromType traces the schema of the record type T and projects it
// onto Arrow fields.
func FieldsFromType[T any](opts schema.TracingOptions) ([]arrow.Field, error) {
	return serdearrow.FieldsFromType[T, arrow.Field](Converter{}, opts)
}

// FieldsFromSamples traces the schema of a sample collection and
// projects it onto Arrow fields.
func FieldsFromSamples(samples interface{}, opts schema.TracingOptions) ([]arrow.Field, error) {
	return serdearrow.FieldsFromSamples[arrow.Field](Converter{}, samples, opts)
}
