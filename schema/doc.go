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

// Package schema defines the backend-agnostic schema model used as the
// pivot representation when converting between Go values and columnar
// type systems.
//
// A Schema is an ordered list of Fields, each describing one column of a
// record. Fields form immutable trees: nested types such as lists,
// structs, maps, unions and dictionaries carry their child types as child
// Fields. The model is deliberately more expressive than any single
// backend; conversions to a concrete type system reject what that backend
// cannot represent instead of silently coercing it.
package schema
