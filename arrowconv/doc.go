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

// Package arrowconv converts between the canonical schema model and the
// Arrow type system.
//
// The conversion is bidirectional and validating: every Arrow field a
// decode accepts re-encodes to an equal field, and every canonical field
// that validates and stays within the Arrow-representable subset survives
// an encode/decode round trip unchanged. Constructs Arrow cannot express
// (negative decimal scales, sorted dictionaries, sparse or explicitly
// indexed unions) fail fast instead of being approximated.
package arrowconv
