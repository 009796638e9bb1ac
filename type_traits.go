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

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IntType covers the signed integer go types usable as array values.
type IntType interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UintType covers the unsigned integer go types usable as array values.
type UintType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FloatType covers the floating point go types usable as array values.
type FloatType interface {
	~float32 | ~float64
}

// NumericType covers all fixed-width numeric go types, including the value
// aliases Timestamp and Float16.
type NumericType interface {
	IntType | UintType | FloatType
}

// FixedWidthType covers every go type with a fixed in-memory width that can
// back a primitive layout's data buffer.
type FixedWidthType interface {
	NumericType | ~bool | Decimal128 | Decimal256
}

// OffsetType covers the two offset widths used by variable-size and list
// layouts.
type OffsetType interface {
	~int32 | ~int64
}

// DictKeyType covers the integer key widths permitted for dictionary
// encoding: the fixed-width subset of constraints.Integer.
type DictKeyType interface {
	constraints.Integer
	IntType | UintType
}

// RunEndsType covers the widths permitted for run ends.
type RunEndsType interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

// CastFromBytes reinterprets the slice b to a slice of type T.
//
// NOTE: len(b) must be a multiple of T's size.
func CastFromBytes[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(&b[0]))
	size := int(unsafe.Sizeof(*ptr))
	return unsafe.Slice(ptr, cap(b)/size)[:len(b)/size]
}

// CastToBytes reinterprets the slice s to a slice of bytes.
func CastToBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
}
