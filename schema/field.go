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
	"fmt"
	"strings"
)

// Field describes a single column or a child type of a nested column.
//
// The number and meaning of Children depend on the data type: List and
// LargeList carry their element type as a single child, Struct carries
// one child per member in order, Map carries a single entries child that
// must itself be a two-member Struct (key, value), Union carries one
// child per dense variant in variant-index order, and Dictionary carries
// exactly two children, the integer key type and the value type. Scalar
// types carry no children.
//
// Fields are value trees; each node owns its children and nothing is
// shared. Treat them as immutable once built.
type Field struct {
	Name     string   `json:"name" yaml:"name"`
	DataType DataType `json:"data_type" yaml:"data_type"`
	Nullable bool     `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Children []Field  `json:"children,omitempty" yaml:"children,omitempty"`
	Strategy Strategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// Equal reports whether f and o describe the same field, including all
// descendants and strategies.
func (f Field) Equal(o Field) bool {
	switch {
	case f.Name != o.Name:
		return false
	case f.DataType != o.DataType:
		return false
	case f.Nullable != o.Nullable:
		return false
	case f.Strategy != o.Strategy:
		return false
	case len(f.Children) != len(o.Children):
		return false
	}
	for i := range f.Children {
		if !f.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (f Field) String() string {
	var o strings.Builder
	fmt.Fprintf(&o, "%s: %s", f.Name, f.DataType)
	if f.Nullable {
		o.WriteString(", nullable")
	}
	if f.Strategy != StrategyNone {
		fmt.Fprintf(&o, ", strategy=%s", f.Strategy)
	}
	if len(f.Children) > 0 {
		o.WriteString("<")
		for i, c := range f.Children {
			if i > 0 {
				o.WriteString("; ")
			}
			o.WriteString(c.String())
		}
		o.WriteString(">")
	}
	return o.String()
}

// Schema is an ordered sequence of top-level fields describing the
// columns of a record. It is the unit of schema exchange between the
// tracing side and the backend converters.
type Schema struct {
	Fields []Field `json:"fields" yaml:"fields"`
}

// Equal reports whether both schemas have equal fields in the same order.
func (s *Schema) Equal(o *Schema) bool {
	if len(s.Fields) != len(o.Fields) {
		return false
	}
	for i := range s.Fields {
		if !s.Fields[i].Equal(o.Fields[i]) {
			return false
		}
	}
	return true
}

func (s *Schema) String() string {
	var o strings.Builder
	o.WriteString("schema<")
	for i, f := range s.Fields {
		if i > 0 {
			o.WriteString("; ")
		}
		o.WriteString(f.String())
	}
	o.WriteString(">")
	return o.String()
}
