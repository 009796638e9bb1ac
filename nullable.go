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

package sparrow

import "fmt"

// Nullable pairs a value with its validity. Valid=false does not imply the
// value is zeroed: a null may carry a stale payload, and mutation code that
// only flips validity preserves it.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// NullableOf returns a valid Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true}
}

// NullOf returns a null Nullable with a zero payload.
func NullOf[T any]() Nullable[T] {
	return Nullable[T]{}
}

func (n Nullable[T]) String() string {
	if !n.Valid {
		return "(null)"
	}
	return fmt.Sprintf("%v", n.Value)
}

// ValidityOf extracts the validity bits of vals.
func ValidityOf[T any](vals []Nullable[T]) []bool {
	out := make([]bool, len(vals))
	for i, v := range vals {
		out[i] = v.Valid
	}
	return out
}

// ValuesOf extracts the raw payloads of vals, nulls included.
func ValuesOf[T any](vals []Nullable[T]) []T {
	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = v.Value
	}
	return out
}

// NullablesOf zips values and validity into a Nullable slice. valid may be
// nil, meaning everything is valid.
func NullablesOf[T any](values []T, valid []bool) []Nullable[T] {
	out := make([]Nullable[T], len(values))
	for i, v := range values {
		out[i] = Nullable[T]{Value: v, Valid: valid == nil || valid[i]}
	}
	return out
}
