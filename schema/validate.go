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

import "fmt"

// MaxNestingDepth is the maximum schema nesting depth accepted by
// validation and by the backend converters. Schemas can originate from
// untrusted input; the cap keeps recursion bounded.
const MaxNestingDepth = 64

// Validate checks the structural invariants of every field in the schema
// and returns the first violation found.
func (s *Schema) Validate() error {
	for i := range s.Fields {
		if err := validateField(&s.Fields[i], 0); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the structural invariants of the field and all of its
// descendants: child arity per data type, the Dictionary key-type
// restriction, the Time64 unit restriction, the Map entries shape, and
// the nesting depth cap. The first violation found is returned.
func (f *Field) Validate() error {
	return validateField(f, 0)
}

func validateField(f *Field, depth int) error {
	if depth >= MaxNestingDepth {
		return fmt.Errorf("%w: field %q exceeds maximum nesting depth %d",
			ErrInvalid, f.Name, MaxNestingDepth)
	}
	if !f.Strategy.IsValid() {
		return fmt.Errorf("%w: field %q carries unknown strategy %q",
			ErrInvalid, f.Name, f.Strategy)
	}

	switch f.DataType.Type {
	case Null, Bool, I8, I16, I32, I64, U8, U16, U32, U64,
		F16, F32, F64, Utf8, LargeUtf8, Date32, Date64, Decimal128:
		if len(f.Children) != 0 {
			return fmt.Errorf("%w: field %q of type %s cannot have children",
				ErrInvalid, f.Name, f.DataType)
		}
	case Time64:
		if len(f.Children) != 0 {
			return fmt.Errorf("%w: field %q of type %s cannot have children",
				ErrInvalid, f.Name, f.DataType)
		}
		if f.DataType.Unit != Microsecond && f.DataType.Unit != Nanosecond {
			return fmt.Errorf("%w: field %q has invalid time unit %s for Time64",
				ErrInvalid, f.Name, f.DataType.Unit)
		}
	case Timestamp:
		if len(f.Children) != 0 {
			return fmt.Errorf("%w: field %q of type %s cannot have children",
				ErrInvalid, f.Name, f.DataType)
		}
		switch f.DataType.Unit {
		case Second, Millisecond, Microsecond, Nanosecond:
		default:
			return fmt.Errorf("%w: field %q has invalid time unit %s for Timestamp",
				ErrInvalid, f.Name, f.DataType.Unit)
		}
	case List, LargeList:
		if len(f.Children) != 1 {
			return fmt.Errorf("%w: field %q of type %s must have a single child, found %d",
				ErrInvalid, f.Name, f.DataType, len(f.Children))
		}
	case Struct:
		// any number of members
	case Map:
		if len(f.Children) != 1 {
			return fmt.Errorf("%w: map field %q must have a single entries child, found %d",
				ErrInvalid, f.Name, len(f.Children))
		}
		entries := &f.Children[0]
		if entries.DataType.Type != Struct || len(entries.Children) != 2 {
			return fmt.Errorf("%w: map field %q requires its entries child to be a two-member struct (key, value)",
				ErrInvalid, f.Name)
		}
	case Union:
		// one child per dense variant, any number
	case Dictionary:
		if len(f.Children) != 2 {
			return fmt.Errorf("%w: dictionary field %q must have exactly two children (key, value), found %d",
				ErrInvalid, f.Name, len(f.Children))
		}
		if !f.Children[0].DataType.Type.IsInteger() {
			return fmt.Errorf("%w: dictionary field %q has non-integer key type %s",
				ErrInvalid, f.Name, f.Children[0].DataType)
		}
	default:
		return fmt.Errorf("%w: field %q has unknown data type %s",
			ErrInvalid, f.Name, f.DataType)
	}

	for i := range f.Children {
		if err := validateField(&f.Children[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}
