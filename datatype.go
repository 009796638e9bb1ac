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
	"strings"
)

// Type is a logical type tag. Every concrete array layout is selected at
// runtime by one of these values.
type Type int

const (
	// NULL type having no physical storage
	NULL Type = iota

	// BOOL is a 1 bit, LSB bit-packed ordering
	BOOL

	// UINT8 is an Unsigned 8-bit little-endian integer
	UINT8

	// INT8 is a Signed 8-bit little-endian integer
	INT8

	// UINT16 is an Unsigned 16-bit little-endian integer
	UINT16

	// INT16 is a Signed 16-bit little-endian integer
	INT16

	// UINT32 is an Unsigned 32-bit little-endian integer
	UINT32

	// INT32 is a Signed 32-bit little-endian integer
	INT32

	// UINT64 is an Unsigned 64-bit little-endian integer
	UINT64

	// INT64 is a Signed 64-bit little-endian integer
	INT64

	// FLOAT16 is a 2-byte floating point value
	FLOAT16

	// FLOAT32 is a 4-byte floating point value
	FLOAT32

	// FLOAT64 is an 8-byte floating point value
	FLOAT64

	// STRING is a UTF8 variable-length string with 32-bit offsets
	STRING

	// LARGE_STRING is like STRING but with 64-bit offsets
	LARGE_STRING

	// BINARY is a variable-length byte type (no guarantee of UTF8-ness)
	BINARY

	// LARGE_BINARY is like BINARY but with 64-bit offsets
	LARGE_BINARY

	// TIMESTAMP is an exact timestamp encoded as int64 since the UNIX epoch
	TIMESTAMP

	// DECIMAL128 is a precision- and scale-based decimal type with 128-bit storage
	DECIMAL128

	// DECIMAL256 is a precision- and scale-based decimal type with 256-bit storage
	DECIMAL256

	// LIST is a list of some logical data type with 32-bit offsets
	LIST

	// LARGE_LIST is like LIST but with 64-bit offsets
	LARGE_LIST

	// LIST_VIEW is a list delimited by (offset, size) pairs with 32-bit entries
	LIST_VIEW

	// LARGE_LIST_VIEW is like LIST_VIEW but with 64-bit entries
	LARGE_LIST_VIEW

	// FIXED_SIZE_LIST is a list where every element has the same stride
	FIXED_SIZE_LIST

	// STRUCT of logical types
	STRUCT

	// MAP is a repeated struct logical type
	MAP

	// DENSE_UNION of logical types with a compacting offsets buffer
	DENSE_UNION

	// SPARSE_UNION of logical types, all children union-length
	SPARSE_UNION

	// DICTIONARY aka Category type
	DICTIONARY

	// RUN_END_ENCODED is a compressed representation of contiguous runs
	RUN_END_ENCODED
)

// DataType is the representation of a columnar logical type.
type DataType interface {
	ID() Type
	// Name is the name of the data type.
	Name() string
	// Format returns the type's code in the schema format mini-language.
	Format() string
	String() string
}

// FixedWidthDataType is the representation of a type that requires a fixed
// number of bits in memory for each element.
type FixedWidthDataType interface {
	DataType
	// BitWidth returns the number of bits required to store a single element in memory.
	BitWidth() int
}

// NestedType is a type which has child fields.
type NestedType interface {
	DataType
	Fields() []Field
	NumFields() int
}

// BinaryDataType covers the variable-size binary layouts.
type BinaryDataType interface {
	DataType
	IsUtf8() bool
	Layout() int // offset byte width, 4 or 8
}

// Field represents a named type plus its nullability and metadata, the unit
// a schema is made of.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
	Metadata Metadata
}

func (f Field) Equal(o Field) bool {
	return f.Name == o.Name && f.Nullable == o.Nullable && TypeEqual(f.Type, o.Type)
}

func (f Field) String() string {
	o := new(strings.Builder)
	nullable := ""
	if f.Nullable {
		nullable = ", nullable"
	}
	o.WriteString(f.Name + ": type=" + f.Type.String() + nullable)
	return o.String()
}

// TypeEqual reports whether two types describe the same layout, recursing
// into child fields for nested types.
func TypeEqual(l, r DataType) bool {
	switch {
	case l == nil || r == nil:
		return l == nil && r == nil
	case l.ID() != r.ID():
		return false
	}

	switch lt := l.(type) {
	case *TimestampType:
		rt := r.(*TimestampType)
		return lt.Unit == rt.Unit && lt.TimeZone == rt.TimeZone
	case *Decimal128Type:
		rt := r.(*Decimal128Type)
		return lt.Precision == rt.Precision && lt.Scale == rt.Scale
	case *Decimal256Type:
		rt := r.(*Decimal256Type)
		return lt.Precision == rt.Precision && lt.Scale == rt.Scale
	case *FixedSizeListType:
		rt := r.(*FixedSizeListType)
		return lt.ListSize() == rt.ListSize() && fieldsEqual(lt.Fields(), rt.Fields())
	case *DictionaryType:
		rt := r.(*DictionaryType)
		return lt.Ordered == rt.Ordered && TypeEqual(lt.IndexType, rt.IndexType) &&
			TypeEqual(lt.ValueType, rt.ValueType)
	case *MapType:
		rt := r.(*MapType)
		return lt.KeysSorted == rt.KeysSorted && fieldsEqual(lt.Fields(), rt.Fields())
	case UnionType:
		rt := r.(UnionType)
		if len(lt.TypeCodes()) != len(rt.TypeCodes()) {
			return false
		}
		for i, c := range lt.TypeCodes() {
			if c != rt.TypeCodes()[i] {
				return false
			}
		}
		return fieldsEqual(lt.Fields(), rt.Fields())
	case NestedType:
		return fieldsEqual(lt.Fields(), r.(NestedType).Fields())
	default:
		return true
	}
}

func fieldsEqual(l, r []Field) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if !l[i].Equal(r[i]) {
			return false
		}
	}
	return true
}
