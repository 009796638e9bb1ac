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
	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/bitmap"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// ListValue is a read-only view of one list element, a window of the
// flattened values array. The view is invalidated by any mutation of the
// owning list.
type ListValue struct {
	arr      Array
	beg, end int
}

func (v ListValue) Len() int               { return v.end - v.beg }
func (v ListValue) Values() Array          { return v.arr }
func (v ListValue) Bounds() (beg, end int) { return v.beg, v.end }

// Element returns the marshal-friendly value of element i of the view.
func (v ListValue) Element(i int) interface{} {
	debug.Assert(i >= 0 && i < v.Len(), "index out of range")
	return Element(v.arr, v.beg+i)
}

// List is the variable-size list layout: buffer 0 is the validity bitmap,
// buffer 1 holds length+1 offsets into the single flattened child.
type List[O sparrow.OffsetType] struct {
	array
	offsets []O
	values  Array
}

type LargeList = List[int64]

func newList[O sparrow.OffsetType](data *Data) *List[O] {
	a := &List[O]{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewListData returns a list layout adopting data zero-copy. O must match
// the offset width of the datatype.
func NewListData[O sparrow.OffsetType](data *Data) *List[O] {
	return newList[O](data)
}

// NewListArrayFromSizes builds a fresh list array over values, taking
// ownership semantics by reference: values is retained, per-row extents are
// given as sizes and converted to offsets. Null rows must carry size 0.
func NewListArrayFromSizes(mem memory.Allocator, values Array, sizes []sparrow.Nullable[int32]) *List[int32] {
	return newListFromSizes[int32](mem, sparrow.ListOf(values.DataType()), values, sizes)
}

// NewLargeListArrayFromSizes is NewListArrayFromSizes with 64-bit offsets.
func NewLargeListArrayFromSizes(mem memory.Allocator, values Array, sizes []sparrow.Nullable[int64]) *List[int64] {
	return newListFromSizes[int64](mem, sparrow.LargeListOf(values.DataType()), values, sizes)
}

func newListFromSizes[O sparrow.OffsetType](mem memory.Allocator, dt sparrow.DataType, values Array, sizes []sparrow.Nullable[O]) *List[O] {
	validity := bitmap.NewFromBools(mem, sparrow.ValidityOf(sizes))
	offsets := OffsetsFromSizes(sparrow.ValuesOf(sizes))
	debug.Assert(int(offsets[len(offsets)-1]) == values.Len(), "sizes do not sum to the length of values")

	offbuf := memory.NewResizableBuffer(mem)
	offbuf.Resize(len(offsets) * sizeOf[O]())
	copy(sparrow.CastFromBytes[O](offbuf.Bytes()), offsets)

	data := NewData(dt, len(sizes),
		[]*memory.Buffer{validity.Buffer(), offbuf},
		[]*Data{values.Data()}, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	offbuf.Release()
	return newList[O](data)
}

func (a *List[O]) setData(data *Data) {
	a.array.setData(data)
	if a.values != nil {
		a.values.Release()
	}
	if off := data.buffers[1]; off != nil {
		a.offsets = sparrow.CastFromBytes[O](off.Bytes())
	} else {
		a.offsets = nil
	}
	a.values = MakeFromData(data.childData[0])
}

func (a *List[O]) update() { a.setData(a.data) }

func (a *List[O]) Retain() {
	a.array.Retain()
	a.values.Retain()
}

func (a *List[O]) Release() {
	a.array.Release()
	a.values.Release()
}

// ListValues returns the flattened values array.
func (a *List[O]) ListValues() Array { return a.values }

// Offsets returns the logical window of the offsets buffer, length+1
// entries.
func (a *List[O]) Offsets() []O {
	return a.offsets[a.data.offset : a.data.offset+a.data.length+1]
}

// ValueOffsets returns the extent of list element i in the flattened
// values array.
func (a *List[O]) ValueOffsets(i int) (beg, end int64) {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	j := a.data.offset + i
	return int64(a.offsets[j]), int64(a.offsets[j+1])
}

// ValueLen returns the number of values in list element i.
func (a *List[O]) ValueLen(i int) int {
	beg, end := a.ValueOffsets(i)
	return int(end - beg)
}

// Value returns a view of list element i.
func (a *List[O]) Value(i int) ListValue {
	beg, end := a.ValueOffsets(i)
	return ListValue{arr: a.values, beg: int(beg), end: int(end)}
}

// insertValuesFrom splices the source rows' flattened values into the child
// and their extents into the offsets buffer. The source rows are contiguous
// in the source child, so the child sees a single insertion.
func (a *List[O]) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*List[O])
	sBeg, _ := s.ValueOffsets(beg)
	_, sEnd := s.ValueOffsets(end - 1)

	j := a.data.offset + pos
	childPos := int(a.offsets[j])
	InsertFrom(a.values.(MutableArray), childPos, s.values, int(sBeg), int(sEnd))

	sizes := make([]O, end-beg)
	for i := range sizes {
		sizes[i] = O(s.ValueLen(beg + i))
	}
	a.spliceOffsets(j, sizes)
}

func (a *List[O]) eraseValues(pos, n int) {
	j := a.data.offset + pos
	lo, hi := a.offsets[j], a.offsets[j+n]
	Erase(a.values.(MutableArray), int(lo), int(hi-lo))

	osize := sizeOf[O]()
	a.data.buffers[1].Erase((j+1)*osize, n*osize)
	a.offsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
	for k := j + 1; k < len(a.offsets); k++ {
		a.offsets[k] -= hi - lo
	}
}

func (a *List[O]) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		a.spliceOffsets(a.data.offset+cur, make([]O, n-cur))
	}
}

// spliceOffsets inserts one offset entry per size after position j and
// shifts every later entry by the sum of the sizes.
func (a *List[O]) spliceOffsets(j int, sizes []O) {
	var total O
	entries := make([]O, len(sizes))
	acc := a.offsets[j]
	for i, sz := range sizes {
		acc += sz
		entries[i] = acc
		total += sz
	}
	osize := sizeOf[O]()
	a.data.buffers[1].Insert((j+1)*osize, sparrow.CastToBytes(entries))

	a.offsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
	for k := j + 1 + len(entries); k < len(a.offsets); k++ {
		a.offsets[k] += total
	}
}

func (a *List[O]) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	v := a.Value(i)
	out := make([]interface{}, v.Len())
	for k := range out {
		out[k] = v.Element(k)
	}
	return out
}

func (a *List[O]) String() string { return stringOf(a) }

func (a *List[O]) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*List[int32])(nil)
	_ MutableArray = (*LargeList)(nil)
)
