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

// TracingOptions configures schema tracing from values, types and sample
// collections. The zero value is the default configuration.
type TracingOptions struct {
	// AllowNullFields keeps columns for which only null values were
	// observed as Null-typed fields instead of failing the trace.
	AllowNullFields bool
	// MapAsStruct traces Go maps with string keys as Struct columns whose
	// members are the observed keys, marked with the MapAsStruct
	// strategy, instead of Map columns. Requires sample data.
	MapAsStruct bool
	// StringDictionary traces strings as dictionary-encoded columns with
	// an U32 key and Utf8 values.
	StringDictionary bool
	// CoerceNumbers widens mixed numeric observations across samples to
	// a common type instead of failing the trace.
	CoerceNumbers bool
	// GuessDates detects string columns that consistently hold ISO 8601
	// datetimes and traces them as Date64 with the matching strategy.
	GuessDates bool
}
