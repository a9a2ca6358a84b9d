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

// Package serdearrow derives columnar schemas for Go values.
//
// Schemas are traced from a representative value, from static type
// information, or from a collection of samples, into a backend-agnostic
// canonical model (package schema), and projected from there onto a
// concrete columnar type system. The arrowconv package provides the
// projection for Arrow:
//
//	type Event struct {
//		ID   int32  `json:"id"`
//		Name string `json:"name"`
//	}
//
//	fields, err := arrowconv.FieldsFromType[Event](schema.TracingOptions{})
//
// The canonical model is deliberately more expressive than any single
// backend. Projections validate: schema states the backend cannot
// represent fail with a descriptive error instead of being silently
// coerced.
package serdearrow
