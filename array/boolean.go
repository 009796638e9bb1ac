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
	"github.com/man-group/sparrow-sub000/bitutil"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// Boolean is the bit-packed boolean layout: buffer 0 is the validity
// bitmap, buffer 1 packs one value bit per slot.
type Boolean struct {
	array
	values []byte
}

// NewBooleanData returns a boolean layout adopting data zero-copy.
func NewBooleanData(data *Data) *Boolean {
	a := &Boolean{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewBooleanArray builds a fresh boolean array from values and an optional
// validity slice (nil means all valid).
func NewBooleanArray(mem memory.Allocator, values []bool, valid []bool) *Boolean {
	validity := bitmap.NewFromBools(mem, boolsOrValid(len(values), valid))
	vals := bitmap.NewFromBools(mem, values)

	data := NewData(sparrow.FixedWidthTypes.Boolean, len(values),
		[]*memory.Buffer{validity.Buffer(), vals.Buffer()}, nil, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	vals.Buffer().Release()
	return NewBooleanData(data)
}

func boolsOrValid(n int, valid []bool) []bool {
	if valid != nil {
		return valid
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

func (a *Boolean) setData(data *Data) {
	a.array.setData(data)
	if vals := data.buffers[1]; vals != nil {
		a.values = vals.Bytes()
	} else {
		a.values = nil
	}
}

func (a *Boolean) update() { a.setData(a.data) }

// Value returns the raw payload bit of element i.
func (a *Boolean) Value(i int) bool {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	return bitutil.BitIsSet(a.values, a.data.offset+i)
}

func (a *Boolean) ValueNullable(i int) sparrow.Nullable[bool] {
	return sparrow.Nullable[bool]{Value: a.Value(i), Valid: a.IsValid(i)}
}

// Set writes element i. Setting a null only clears the validity bit.
func (a *Boolean) Set(i int, v sparrow.Nullable[bool]) {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	if v.Valid {
		bitutil.SetBitTo(a.values, a.data.offset+i, v.Value)
	}
	a.data.SetValid(i, v.Valid)
	a.update()
}

// Insert inserts vals at position pos, shifting subsequent elements.
func (a *Boolean) Insert(pos int, vals []sparrow.Nullable[bool]) {
	insertTyped[bool](a, pos, vals)
}

func (a *Boolean) Append(v bool) {
	a.Insert(a.Len(), []sparrow.Nullable[bool]{sparrow.NullableOf(v)})
}

func (a *Boolean) AppendNull() {
	a.Insert(a.Len(), []sparrow.Nullable[bool]{{}})
}

// valuesBitmap wraps the packed value bits for shifting. The null count a
// Bitmap maintains is meaningless here and discarded.
func (a *Boolean) valuesBitmap() *bitmap.Bitmap {
	return bitmap.Wrap(a.data.mem, a.data.buffers[1], a.data.offset, a.data.length, 0)
}

func (a *Boolean) insertRaw(pos int, vals []bool) {
	bm := a.valuesBitmap()
	bm.Insert(pos, vals)
	a.data.buffers[1] = bm.Buffer()
}

func (a *Boolean) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*Boolean)
	vals := make([]bool, end-beg)
	for i := range vals {
		vals[i] = s.Value(beg + i)
	}
	a.insertRaw(pos, vals)
}

func (a *Boolean) eraseValues(pos, n int) {
	bm := a.valuesBitmap()
	bm.Erase(pos, n)
}

func (a *Boolean) resizeValues(n int) {
	bm := a.valuesBitmap()
	bm.Resize(n, false)
	a.data.buffers[1] = bm.Buffer()
}

func (a *Boolean) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func (a *Boolean) String() string { return stringOf(a) }

func (a *Boolean) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*Boolean)(nil)
	_ MutableArray = (*Boolean)(nil)
)
