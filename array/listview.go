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

// ListView is the list-view layout: buffer 0 is the validity bitmap,
// buffer 1 holds one offset per element and buffer 2 one size per element.
// Elements may point anywhere in the child, overlap, and appear in any
// order.
type ListView[O sparrow.OffsetType] struct {
	array
	offsets []O
	sizes   []O
	values  Array
}

type LargeListView = ListView[int64]

func newListView[O sparrow.OffsetType](data *Data) *ListView[O] {
	a := &ListView[O]{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewListViewData returns a list-view layout adopting data zero-copy. O
// must match the offset width of the datatype.
func NewListViewData[O sparrow.OffsetType](data *Data) *ListView[O] {
	return newListView[O](data)
}

// NewListViewArray builds a fresh list-view array over values from
// explicit per-row extents. Null rows must carry a zero extent.
func NewListViewArray(mem memory.Allocator, values Array, extents []sparrow.Nullable[[2]int32]) *ListView[int32] {
	return newListViewFromExtents[int32](mem, sparrow.ListViewOf(values.DataType()), values, extents)
}

// NewLargeListViewArray is NewListViewArray with 64-bit offsets.
func NewLargeListViewArray(mem memory.Allocator, values Array, extents []sparrow.Nullable[[2]int64]) *ListView[int64] {
	return newListViewFromExtents[int64](mem, sparrow.LargeListViewOf(values.DataType()), values, extents)
}

func newListViewFromExtents[O sparrow.OffsetType](mem memory.Allocator, dt sparrow.DataType, values Array, extents []sparrow.Nullable[[2]O]) *ListView[O] {
	validity := bitmap.NewFromBools(mem, sparrow.ValidityOf(extents))

	offsets := make([]O, len(extents))
	sizes := make([]O, len(extents))
	for i, e := range extents {
		offsets[i], sizes[i] = e.Value[0], e.Value[1]
		debug.Assert(int(offsets[i]+sizes[i]) <= values.Len(), "extent outside the values array")
	}

	offbuf := memory.NewResizableBuffer(mem)
	offbuf.Resize(len(offsets) * sizeOf[O]())
	copy(sparrow.CastFromBytes[O](offbuf.Bytes()), offsets)
	szbuf := memory.NewResizableBuffer(mem)
	szbuf.Resize(len(sizes) * sizeOf[O]())
	copy(sparrow.CastFromBytes[O](szbuf.Bytes()), sizes)

	data := NewData(dt, len(extents),
		[]*memory.Buffer{validity.Buffer(), offbuf, szbuf},
		[]*Data{values.Data()}, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	offbuf.Release()
	szbuf.Release()
	return newListView[O](data)
}

func (a *ListView[O]) setData(data *Data) {
	a.array.setData(data)
	if a.values != nil {
		a.values.Release()
	}
	if off := data.buffers[1]; off != nil {
		a.offsets = sparrow.CastFromBytes[O](off.Bytes())
	} else {
		a.offsets = nil
	}
	if sz := data.buffers[2]; sz != nil {
		a.sizes = sparrow.CastFromBytes[O](sz.Bytes())
	} else {
		a.sizes = nil
	}
	a.values = MakeFromData(data.childData[0])
}

func (a *ListView[O]) update() { a.setData(a.data) }

func (a *ListView[O]) Retain() {
	a.array.Retain()
	a.values.Retain()
}

func (a *ListView[O]) Release() {
	a.array.Release()
	a.values.Release()
}

// ListValues returns the shared values array.
func (a *ListView[O]) ListValues() Array { return a.values }

// ValueOffsets returns the extent of element i in the values array.
func (a *ListView[O]) ValueOffsets(i int) (beg, end int64) {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	j := a.data.offset + i
	return int64(a.offsets[j]), int64(a.offsets[j] + a.sizes[j])
}

// ValueLen returns the number of values in element i.
func (a *ListView[O]) ValueLen(i int) int {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	return int(a.sizes[a.data.offset+i])
}

// Value returns a view of element i.
func (a *ListView[O]) Value(i int) ListValue {
	beg, end := a.ValueOffsets(i)
	return ListValue{arr: a.values, beg: int(beg), end: int(end)}
}

// insertValuesFrom appends the source rows' values at the end of the child
// and points the new entries there. Existing entries are unaffected, which
// is the point of the view layout.
func (a *ListView[O]) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*ListView[O])
	n := end - beg

	offsets := make([]O, n)
	sizes := make([]O, n)
	childPos := a.values.Len()
	for i := 0; i < n; i++ {
		sBeg, sEnd := s.ValueOffsets(beg + i)
		offsets[i], sizes[i] = O(childPos), O(sEnd-sBeg)
		InsertFrom(a.values.(MutableArray), childPos, s.values, int(sBeg), int(sEnd))
		childPos += int(sEnd - sBeg)
	}

	j := a.data.offset + pos
	osize := sizeOf[O]()
	a.data.buffers[1].Insert(j*osize, sparrow.CastToBytes(offsets))
	a.data.buffers[2].Insert(j*osize, sparrow.CastToBytes(sizes))
	a.offsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
	a.sizes = sparrow.CastFromBytes[O](a.data.buffers[2].Bytes())
}

// eraseValues drops the entries only. The child rows they pointed at stay
// in place since other entries may share them.
func (a *ListView[O]) eraseValues(pos, n int) {
	j := a.data.offset + pos
	osize := sizeOf[O]()
	a.data.buffers[1].Erase(j*osize, n*osize)
	a.data.buffers[2].Erase(j*osize, n*osize)
	a.offsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
	a.sizes = sparrow.CastFromBytes[O](a.data.buffers[2].Bytes())
}

func (a *ListView[O]) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		j := a.data.offset + cur
		osize := sizeOf[O]()
		grow := make([]O, n-cur)
		a.data.buffers[1].Insert(j*osize, sparrow.CastToBytes(grow))
		a.data.buffers[2].Insert(j*osize, sparrow.CastToBytes(grow))
		a.offsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
		a.sizes = sparrow.CastFromBytes[O](a.data.buffers[2].Bytes())
	}
}

func (a *ListView[O]) getOneForMarshal(i int) interface{} {
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

func (a *ListView[O]) String() string { return stringOf(a) }

func (a *ListView[O]) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*ListView[int32])(nil)
	_ MutableArray = (*LargeListView)(nil)
)
