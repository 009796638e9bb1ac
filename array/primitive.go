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

package array

import (
	"unsafe"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/bitmap"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// fixedWidth covers the value types storable in a one-value-per-slot data
// buffer.
type fixedWidth interface {
	sparrow.NumericType | sparrow.Decimal128 | sparrow.Decimal256
}

func sizeOf[T fixedWidth]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// Number is the mutable layout for all fixed-width value types: buffer 0 is
// the validity bitmap, buffer 1 holds one T per slot.
type Number[T fixedWidth] struct {
	array
	values []T
}

func newNumber[T fixedWidth](data *Data) *Number[T] {
	a := &Number[T]{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewNumberData returns a layout of element type T adopting data zero-copy.
func NewNumberData[T fixedWidth](data *Data) *Number[T] {
	return newNumber[T](data)
}

// NewNumberArray builds a fresh array of type dt from vals.
func NewNumberArray[T fixedWidth](mem memory.Allocator, dt sparrow.DataType, vals []sparrow.Nullable[T]) *Number[T] {
	validity := bitmap.NewFromBools(mem, sparrow.ValidityOf(vals))

	values := memory.NewResizableBuffer(mem)
	values.Resize(len(vals) * sizeOf[T]())
	copy(sparrow.CastFromBytes[T](values.Bytes()), sparrow.ValuesOf(vals))

	data := NewData(dt, len(vals), []*memory.Buffer{validity.Buffer(), values}, nil, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	values.Release()
	return newNumber[T](data)
}

func (a *Number[T]) setData(data *Data) {
	a.array.setData(data)
	if vals := data.buffers[1]; vals != nil {
		a.values = sparrow.CastFromBytes[T](vals.Bytes())
	} else {
		a.values = nil
	}
}

func (a *Number[T]) update() { a.setData(a.data) }

// Value returns the raw payload of element i, stale payloads of nulls
// included.
func (a *Number[T]) Value(i int) T {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	return a.values[a.data.offset+i]
}

// Values returns the logical window of raw payloads.
func (a *Number[T]) Values() []T {
	return a.values[a.data.offset : a.data.offset+a.data.length]
}

// ValueNullable returns element i with its validity.
func (a *Number[T]) ValueNullable(i int) sparrow.Nullable[T] {
	return sparrow.Nullable[T]{Value: a.Value(i), Valid: a.IsValid(i)}
}

// Set writes element i. Setting a null only clears the validity bit: the
// previous payload is intentionally left in place.
func (a *Number[T]) Set(i int, v sparrow.Nullable[T]) {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	if v.Valid {
		a.values[a.data.offset+i] = v.Value
	}
	a.data.SetValid(i, v.Valid)
	a.update()
}

// Insert inserts vals at position pos, shifting subsequent elements.
func (a *Number[T]) Insert(pos int, vals []sparrow.Nullable[T]) {
	insertTyped[T](a, pos, vals)
}

// Append appends a valid value.
func (a *Number[T]) Append(v T) {
	a.Insert(a.Len(), []sparrow.Nullable[T]{sparrow.NullableOf(v)})
}

// AppendNull appends a null element.
func (a *Number[T]) AppendNull() {
	a.Insert(a.Len(), []sparrow.Nullable[T]{{}})
}

func (a *Number[T]) insertRaw(pos int, vals []T) {
	off := (a.data.offset + pos) * sizeOf[T]()
	a.data.buffers[1].Insert(off, sparrow.CastToBytes(vals))
}

func (a *Number[T]) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*Number[T])
	off := s.data.offset
	a.insertRaw(pos, s.values[off+beg:off+end])
}

func (a *Number[T]) eraseValues(pos, n int) {
	size := sizeOf[T]()
	a.data.buffers[1].Erase((a.data.offset+pos)*size, n*size)
}

func (a *Number[T]) resizeValues(n int) {
	a.data.buffers[1].Resize((a.data.offset + n) * sizeOf[T]())
}

func (a *Number[T]) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	switch v := any(a.Value(i)).(type) {
	case sparrow.Float16:
		return v.Float32()
	case sparrow.Decimal128:
		return v.String()
	case sparrow.Decimal256:
		return v.String()
	default:
		return v
	}
}

func (a *Number[T]) String() string { return stringOf(a) }

func (a *Number[T]) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

// Aliases for the usual spellings of the primitive layouts.
type (
	Int8       = Number[int8]
	Uint8      = Number[uint8]
	Int16      = Number[int16]
	Uint16     = Number[uint16]
	Int32      = Number[int32]
	Uint32     = Number[uint32]
	Int64      = Number[int64]
	Uint64     = Number[uint64]
	Float16    = Number[sparrow.Float16]
	Float32    = Number[float32]
	Float64    = Number[float64]
	Timestamp  = Number[sparrow.Timestamp]
	Decimal128 = Number[sparrow.Decimal128]
	Decimal256 = Number[sparrow.Decimal256]
)

// NewInt32Array builds an int32 array from values and an optional validity
// slice (nil means all valid). The other widths follow the same shape.
func NewInt32Array(mem memory.Allocator, values []int32, valid []bool) *Int32 {
	return NewNumberArray[int32](mem, sparrow.PrimitiveTypes.Int32, sparrow.NullablesOf(values, valid))
}

func NewInt8Array(mem memory.Allocator, values []int8, valid []bool) *Int8 {
	return NewNumberArray[int8](mem, sparrow.PrimitiveTypes.Int8, sparrow.NullablesOf(values, valid))
}

func NewUint8Array(mem memory.Allocator, values []uint8, valid []bool) *Uint8 {
	return NewNumberArray[uint8](mem, sparrow.PrimitiveTypes.Uint8, sparrow.NullablesOf(values, valid))
}

func NewInt16Array(mem memory.Allocator, values []int16, valid []bool) *Int16 {
	return NewNumberArray[int16](mem, sparrow.PrimitiveTypes.Int16, sparrow.NullablesOf(values, valid))
}

func NewUint16Array(mem memory.Allocator, values []uint16, valid []bool) *Uint16 {
	return NewNumberArray[uint16](mem, sparrow.PrimitiveTypes.Uint16, sparrow.NullablesOf(values, valid))
}

func NewUint32Array(mem memory.Allocator, values []uint32, valid []bool) *Uint32 {
	return NewNumberArray[uint32](mem, sparrow.PrimitiveTypes.Uint32, sparrow.NullablesOf(values, valid))
}

func NewInt64Array(mem memory.Allocator, values []int64, valid []bool) *Int64 {
	return NewNumberArray[int64](mem, sparrow.PrimitiveTypes.Int64, sparrow.NullablesOf(values, valid))
}

func NewUint64Array(mem memory.Allocator, values []uint64, valid []bool) *Uint64 {
	return NewNumberArray[uint64](mem, sparrow.PrimitiveTypes.Uint64, sparrow.NullablesOf(values, valid))
}

func NewFloat32Array(mem memory.Allocator, values []float32, valid []bool) *Float32 {
	return NewNumberArray[float32](mem, sparrow.PrimitiveTypes.Float32, sparrow.NullablesOf(values, valid))
}

func NewFloat64Array(mem memory.Allocator, values []float64, valid []bool) *Float64 {
	return NewNumberArray[float64](mem, sparrow.PrimitiveTypes.Float64, sparrow.NullablesOf(values, valid))
}

func NewFloat16Array(mem memory.Allocator, values []sparrow.Float16, valid []bool) *Float16 {
	return NewNumberArray[sparrow.Float16](mem, sparrow.PrimitiveTypes.Float16, sparrow.NullablesOf(values, valid))
}

// NewTimestampArray builds a timestamp array; dt carries the unit and
// timezone.
func NewTimestampArray(mem memory.Allocator, dt *sparrow.TimestampType, values []sparrow.Timestamp, valid []bool) *Timestamp {
	return NewNumberArray[sparrow.Timestamp](mem, dt, sparrow.NullablesOf(values, valid))
}

// NewDecimal128Array builds a decimal array; dt carries precision and scale.
func NewDecimal128Array(mem memory.Allocator, dt *sparrow.Decimal128Type, values []sparrow.Decimal128, valid []bool) *Decimal128 {
	return NewNumberArray[sparrow.Decimal128](mem, dt, sparrow.NullablesOf(values, valid))
}

// NewDecimal256Array builds a decimal array; dt carries precision and scale.
func NewDecimal256Array(mem memory.Allocator, dt *sparrow.Decimal256Type, values []sparrow.Decimal256, valid []bool) *Decimal256 {
	return NewNumberArray[sparrow.Decimal256](mem, dt, sparrow.NullablesOf(values, valid))
}

var (
	_ MutableArray = (*Int32)(nil)
	_ MutableArray = (*Float64)(nil)
	_ MutableArray = (*Decimal128)(nil)
)
