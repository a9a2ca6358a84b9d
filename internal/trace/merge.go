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

package trace

import (
	"fmt"

	"github.com/aqora-io/serde-arrow/schema"
)

// mergeFieldSets merges the column observations of two samples. Columns
// keep the order of their first appearance; a column missing from either
// side becomes nullable.
func (tr *tracer) mergeFieldSets(a, b []schema.Field) ([]schema.Field, error) {
	index := make(map[string]int, len(a))
	for i, f := range a {
		index[f.Name] = i
	}

	merged := append([]schema.Field(nil), a...)
	seen := make(map[string]bool, len(b))
	for _, f := range b {
		seen[f.Name] = true
		i, ok := index[f.Name]
		if !ok {
			f.Nullable = true
			merged = append(merged, f)
			continue
		}
		m, err := tr.mergeField(merged[i], f)
		if err != nil {
			return nil, err
		}
		merged[i] = m
	}
	for i := range merged {
		if !seen[merged[i].Name] {
			merged[i].Nullable = true
		}
	}
	return merged, nil
}

// mergeField reconciles two observations of the same column. Nullability
// is the union of both sides; data types must agree, modulo the widening
// and date-guessing rules below, or the merge fails naming the field.
func (tr *tracer) mergeField(a, b schema.Field) (schema.Field, error) {
	nullable := a.Nullable || b.Nullable

	// a null observation constrains nothing beyond nullability
	if a.DataType.Type == schema.Null && b.DataType.Type != schema.Null {
		b.Nullable = true
		return b, nil
	}
	if b.DataType.Type == schema.Null && a.DataType.Type != schema.Null {
		a.Nullable = true
		return a, nil
	}

	if a.DataType == b.DataType && a.Strategy == b.Strategy {
		switch a.DataType.Type {
		case schema.Struct:
			children, err := tr.mergeMembers(a.Children, b.Children, a.Name)
			if err != nil {
				return schema.Field{}, err
			}
			a.Children = children
		case schema.List, schema.LargeList, schema.Map, schema.Union, schema.Dictionary:
			if len(a.Children) != len(b.Children) {
				return schema.Field{}, fmt.Errorf("%w: field %q has inconsistent child counts across samples",
					schema.ErrInvalid, a.Name)
			}
			for i := range a.Children {
				child, err := tr.mergeField(a.Children[i], b.Children[i])
				if err != nil {
					return schema.Field{}, err
				}
				a.Children[i] = child
			}
		}
		a.Nullable = nullable
		return a, nil
	}

	// datetime strings degrade to plain strings when observations disagree
	if isStringLike(a) && isStringLike(b) {
		return schema.Field{
			Name:     a.Name,
			DataType: schema.Of(schema.Utf8),
			Nullable: nullable,
		}, nil
	}

	if widened, ok := tr.widenNumeric(a.DataType.Type, b.DataType.Type); ok {
		return schema.Field{
			Name:     a.Name,
			DataType: schema.Of(widened),
			Nullable: nullable,
		}, nil
	}

	return schema.Field{}, fmt.Errorf("%w: field %q has inconsistent types across samples: %s vs %s",
		schema.ErrInvalid, a.Name, a.DataType, b.DataType)
}

// mergeMembers merges struct members by name, keeping the order of the
// first sample and appending members only the second sample has.
func (tr *tracer) mergeMembers(a, b []schema.Field, structName string) ([]schema.Field, error) {
	merged, err := tr.mergeFieldSets(a, b)
	if err != nil {
		return nil, fmt.Errorf("in struct field %q: %w", structName, err)
	}
	return merged, nil
}

// isStringLike reports whether the field is a plain string column or a
// guessed datetime-string column.
func isStringLike(f schema.Field) bool {
	if f.DataType.Type == schema.Utf8 && f.Strategy == schema.StrategyNone {
		return true
	}
	if f.DataType.Type == schema.Date64 &&
		(f.Strategy == schema.StrategyUtcStrAsDate64 || f.Strategy == schema.StrategyNaiveStrAsDate64) {
		return true
	}
	return false
}

// widenNumeric reconciles two numeric observations under CoerceNumbers:
// same-signedness integers widen to the larger width, mixed-signedness
// integers widen to I64, and any float involvement widens to F64.
func (tr *tracer) widenNumeric(a, b schema.Type) (schema.Type, bool) {
	if !tr.opts.CoerceNumbers {
		return schema.Null, false
	}
	ca, wa, oka := numericClass(a)
	cb, wb, okb := numericClass(b)
	if !oka || !okb {
		return schema.Null, false
	}
	switch {
	case ca == classFloat || cb == classFloat:
		return schema.F64, true
	case ca != cb:
		return schema.I64, true
	case ca == classSigned:
		return signedOfWidth(max(wa, wb)), true
	default:
		return unsignedOfWidth(max(wa, wb)), true
	}
}

type numClass int8

const (
	classSigned numClass = iota
	classUnsigned
	classFloat
)

func numericClass(t schema.Type) (numClass, int, bool) {
	switch t {
	case schema.I8:
		return classSigned, 8, true
	case schema.I16:
		return classSigned, 16, true
	case schema.I32:
		return classSigned, 32, true
	case schema.I64:
		return classSigned, 64, true
	case schema.U8:
		return classUnsigned, 8, true
	case schema.U16:
		return classUnsigned, 16, true
	case schema.U32:
		return classUnsigned, 32, true
	case schema.U64:
		return classUnsigned, 64, true
	case schema.F16:
		return classFloat, 16, true
	case schema.F32:
		return classFloat, 32, true
	case schema.F64:
		return classFloat, 64, true
	}
	return classSigned, 0, false
}

func signedOfWidth(w int) schema.Type {
	switch w {
	case 8:
		return schema.I8
	case 16:
		return schema.I16
	case 32:
		return schema.I32
	default:
		return schema.I64
	}
}

func unsignedOfWidth(w int) schema.Type {
	switch w {
	case 8:
		return schema.U8
	case 16:
		return schema.U16
	case 32:
		return schema.U32
	default:
		return schema.U64
	}
}
