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

package serdearrow

import (
	"github.com/aqora-io/serde-arrow/schema"
)

// Converter maps canonical schemas to and from a backend's field type F.
// Implementations exist per backend; neither the canonical model nor the
// tracing side knows any backend-specific details.
//
// Both directions must be validating inverses on the backend-representable
// subset: every field list FromBackendFields accepts re-encodes through
// ToBackendFields to an equal field list, and canonical states the
// backend cannot express fail ToBackendFields instead of being
// approximated.
type Converter[F any] interface {
	ToBackendFields(*schema.Schema) ([]F, error)
	FromBackendFields([]F) (*schema.Schema, error)
}

// FieldsFromValue traces the schema of one record value and projects it
// onto the backend served by c.
func FieldsFromValue[F any](c Converter[F], v interface{}) ([]F, error) {
	s, err := SchemaFromValue(v)
	if err != nil {
		return nil, err
	}
	return c.ToBackendFields(s)
}

// FieldsFromType traces the schema of the record type T and projects it
// onto the backend served by c.
func FieldsFromType[T any, F any](c Converter[F], opts schema.TracingOptions) ([]F, error) {
	s, err := SchemaFromType[T](opts)
	if err != nil {
		return nil, err
	}
	return c.ToBackendFields(s)
}

// FieldsFromSamples traces the schema of a sample collection and
// projects it onto the backend served by c.
func FieldsFromSamples[F any](c Converter[F], samples interface{}, opts schema.TracingOptions) ([]F, error) {
	s, err := SchemaFromSamples(samples, opts)
	if err != nil {
		return nil, err
	}
	return c.ToBackendFields(s)
}
