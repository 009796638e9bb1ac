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

// Binary is the variable-size binary layout: buffer 0 is the validity
// bitmap, buffer 1 holds length+1 monotonically non-decreasing offsets
// delimiting the value bytes in buffer 2.
type Binary[O sparrow.OffsetType] struct {
	array
	valueOffsets []O
	valueBytes   []byte
}

// String and friends are the usual spellings of the four variable-size
// binary layouts; they differ only in offset width and datatype.
type (
	String      = Binary[int32]
	LargeString = Binary[int64]
)

func newBinary[O sparrow.OffsetType](data *Data) *Binary[O] {
	a := &Binary[O]{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewBinaryData returns a variable-size binary layout adopting data
// zero-copy. O must match the offset width of the datatype.
func NewBinaryData[O sparrow.OffsetType](data *Data) *Binary[O] {
	return newBinary[O](data)
}

// NewStringArray builds a fresh utf8 array from vals.
func NewStringArray(mem memory.Allocator, vals []sparrow.Nullable[string]) *String {
	return newBinaryFromValues[int32](mem, sparrow.BinaryTypes.String, stringsToBytes(vals))
}

// NewLargeStringArray builds a fresh large_utf8 array from vals.
func NewLargeStringArray(mem memory.Allocator, vals []sparrow.Nullable[string]) *LargeString {
	return newBinaryFromValues[int64](mem, sparrow.BinaryTypes.LargeString, stringsToBytes(vals))
}

// NewBinaryArray builds a fresh binary array from vals.
func NewBinaryArray(mem memory.Allocator, vals []sparrow.Nullable[[]byte]) *Binary[int32] {
	return newBinaryFromValues[int32](mem, sparrow.BinaryTypes.Binary, vals)
}

// NewLargeBinaryArray builds a fresh large binary array from vals.
func NewLargeBinaryArray(mem memory.Allocator, vals []sparrow.Nullable[[]byte]) *Binary[int64] {
	return newBinaryFromValues[int64](mem, sparrow.BinaryTypes.LargeBinary, vals)
}

func stringsToBytes(vals []sparrow.Nullable[string]) []sparrow.Nullable[[]byte] {
	out := make([]sparrow.Nullable[[]byte], len(vals))
	for i, v := range vals {
		out[i] = sparrow.Nullable[[]byte]{Value: []byte(v.Value), Valid: v.Valid}
	}
	return out
}

func newBinaryFromValues[O sparrow.OffsetType](mem memory.Allocator, dt sparrow.DataType, vals []sparrow.Nullable[[]byte]) *Binary[O] {
	validity := bitmap.NewFromBools(mem, sparrow.ValidityOf(vals))

	sizes := make([]O, len(vals))
	total := 0
	for i, v := range vals {
		sizes[i] = O(len(v.Value))
		total += len(v.Value)
	}
	offsets := OffsetsFromSizes(sizes)

	offbuf := memory.NewResizableBuffer(mem)
	offbuf.Resize(len(offsets) * sizeOf[O]())
	copy(sparrow.CastFromBytes[O](offbuf.Bytes()), offsets)

	databuf := memory.NewResizableBuffer(mem)
	databuf.Resize(total)
	pos := 0
	for _, v := range vals {
		pos += copy(databuf.Bytes()[pos:], v.Value)
	}

	data := NewData(dt, len(vals),
		[]*memory.Buffer{validity.Buffer(), offbuf, databuf}, nil, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	offbuf.Release()
	databuf.Release()
	return newBinary[O](data)
}

func (a *Binary[O]) setData(data *Data) {
	a.array.setData(data)
	if off := data.buffers[1]; off != nil {
		a.valueOffsets = sparrow.CastFromBytes[O](off.Bytes())
	} else {
		a.valueOffsets = nil
	}
	if vals := data.buffers[2]; vals != nil {
		a.valueBytes = vals.Bytes()
	} else {
		a.valueBytes = nil
	}
}

func (a *Binary[O]) update() { a.setData(a.data) }

// Value returns the bytes of element i as a view into the data buffer; the
// view is invalidated by any mutation of the array.
func (a *Binary[O]) Value(i int) []byte {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	j := a.data.offset + i
	return a.valueBytes[a.valueOffsets[j]:a.valueOffsets[j+1]]
}

// ValueStr returns the value of element i as a string copy.
func (a *Binary[O]) ValueStr(i int) string { return string(a.Value(i)) }

// ValueLen returns the byte length of element i.
func (a *Binary[O]) ValueLen(i int) int {
	j := a.data.offset + i
	return int(a.valueOffsets[j+1] - a.valueOffsets[j])
}

// ValueOffsets returns the logical window of the offsets buffer,
// length+1 entries.
func (a *Binary[O]) ValueOffsets() []O {
	return a.valueOffsets[a.data.offset : a.data.offset+a.data.length+1]
}

func (a *Binary[O]) ValueNullable(i int) sparrow.Nullable[[]byte] {
	return sparrow.Nullable[[]byte]{Value: a.Value(i), Valid: a.IsValid(i)}
}

// Insert inserts vals at position pos, shifting subsequent elements and
// their offsets.
func (a *Binary[O]) Insert(pos int, vals []sparrow.Nullable[[]byte]) {
	insertTyped[[]byte](a, pos, vals)
}

// InsertStrings inserts string vals at position pos.
func (a *Binary[O]) InsertStrings(pos int, vals []sparrow.Nullable[string]) {
	a.Insert(pos, stringsToBytes(vals))
}

func (a *Binary[O]) Append(v []byte) {
	a.Insert(a.Len(), []sparrow.Nullable[[]byte]{sparrow.NullableOf(v)})
}

func (a *Binary[O]) AppendString(v string) { a.Append([]byte(v)) }

func (a *Binary[O]) AppendNull() {
	a.Insert(a.Len(), []sparrow.Nullable[[]byte]{{}})
}

func (a *Binary[O]) insertRaw(pos int, vals [][]byte) {
	j := a.data.offset + pos
	insertAt := a.valueOffsets[j]

	// splice the value bytes in one block
	var total O
	for _, v := range vals {
		total += O(len(v))
	}
	block := make([]byte, 0, int(total))
	for _, v := range vals {
		block = append(block, v...)
	}
	a.data.buffers[2].Insert(int(insertAt), block)

	// new offset entries continue from the insertion point
	newOffsets := make([]O, len(vals))
	acc := insertAt
	for i, v := range vals {
		acc += O(len(v))
		newOffsets[i] = acc
	}
	osize := sizeOf[O]()
	a.data.buffers[1].Insert((j+1)*osize, sparrow.CastToBytes(newOffsets))

	// shift everything after the spliced entries
	a.valueOffsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
	for k := j + 1 + len(vals); k < len(a.valueOffsets); k++ {
		a.valueOffsets[k] += total
	}
}

func (a *Binary[O]) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*Binary[O])
	vals := make([][]byte, end-beg)
	for i := range vals {
		vals[i] = s.Value(beg + i)
	}
	a.insertRaw(pos, vals)
}

func (a *Binary[O]) eraseValues(pos, n int) {
	j := a.data.offset + pos
	lo, hi := a.valueOffsets[j], a.valueOffsets[j+n]
	delta := hi - lo

	a.data.buffers[2].Erase(int(lo), int(delta))

	osize := sizeOf[O]()
	a.data.buffers[1].Erase((j+1)*osize, n*osize)

	a.valueOffsets = sparrow.CastFromBytes[O](a.data.buffers[1].Bytes())
	for k := j + 1; k < len(a.valueOffsets); k++ {
		a.valueOffsets[k] -= delta
	}
}

func (a *Binary[O]) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		// new slots are empty: replicate the final offset
		last := a.valueOffsets[a.data.offset+cur]
		grow := make([]O, n-cur)
		for i := range grow {
			grow[i] = last
		}
		osize := sizeOf[O]()
		a.data.buffers[1].Insert((a.data.offset+cur+1)*osize, sparrow.CastToBytes(grow))
	}
}

func (a *Binary[O]) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	if bt, ok := a.DataType().(sparrow.BinaryDataType); ok && bt.IsUtf8() {
		return a.ValueStr(i)
	}
	return a.Value(i)
}

func (a *Binary[O]) String() string { return stringOf(a) }

func (a *Binary[O]) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*String)(nil)
	_ MutableArray = (*LargeString)(nil)
)
