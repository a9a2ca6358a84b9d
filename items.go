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

// Item wraps a single value so it behaves as a record with a single
// "item" column. It lets scalar sequences pass through the record-shaped
// schema path without a hand-written wrapper struct:
//
//	fields, err := arrowconv.FieldsFromSamples(conv,
//		serdearrow.WrapItems([]int32{13, 21}), schema.TracingOptions{})
//
// traces the single column {"item", I32}. Serialized with a JSON codec,
// Item(42) renders as {"item":42}.
type Item[T any] struct {
	Item T `json:"item"`
}

// NewItem wraps a single value.
func NewItem[T any](v T) Item[T] { return Item[T]{Item: v} }

// WrapItems wraps every element of a sequence in an Item.
func WrapItems[T any](values []T) []Item[T] {
	items := make([]Item[T], len(values))
	for i, v := range values {
		items[i] = Item[T]{Item: v}
	}
	return items
}

// UnwrapItems inverts WrapItems.
func UnwrapItems[T any](items []Item[T]) []T {
	values := make([]T, len(items))
	for i, it := range items {
		values[i] = it.Item
	}
	return values
}
