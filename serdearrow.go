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
	"reflect"

	"github.com/aqora-io/serde-arrow/internal/trace"
	"github.com/aqora-io/serde-arrow/schema"
)

// SchemaFromValue derives the canonical schema from one concrete,
// already populated record value.
func SchemaFromValue(v interface{}) (*schema.Schema, error) {
	return trace.FromValue(v, schema.TracingOptions{})
}

// SchemaFromType derives the canonical schema from the static type T
// alone, without any data. T must be a struct type describing the
// record; a bare optional such as *T at the top level fails because it
// carries no field structure to anchor column extraction.
func SchemaFromType[T any](opts schema.TracingOptions) (*schema.Schema, error) {
	return trace.FromType(reflect.TypeOf((*T)(nil)).Elem(), opts)
}

// SchemaFromSamples derives the canonical schema from a slice or array
// of representative records, merging the observations field by field
// under the given tracing options.
func SchemaFromSamples(samples interface{}, opts schema.TracingOptions) (*schema.Schema, error) {
	return trace.FromSamples(samples, opts)
}
