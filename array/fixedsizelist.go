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

// FixedSizeList is the fixed-size list layout: buffer 0 is the validity
// bitmap, the single child holds exactly ListSize values per element and no
// offsets buffer exists.
type FixedSizeList struct {
	array
	n      int
	values Array
}

// NewFixedSizeListData returns a fixed-size list layout adopting data
// zero-copy.
func NewFixedSizeListData(data *Data) *FixedSizeList {
	a := &FixedSizeList{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewFixedSizeListArray builds a fresh fixed-size list over values, which
// must hold n values per element. Null rows still occupy n child slots.
func NewFixedSizeListArray(mem memory.Allocator, n int32, values Array, valid []bool) *FixedSizeList {
	debug.Assert(values.Len() == int(n)*len(valid), "values length is not a multiple of the list size")

	validity := bitmap.NewFromBools(mem, valid)
	data := NewData(sparrow.FixedSizeListOf(n, values.DataType()), len(valid),
		[]*memory.Buffer{validity.Buffer()},
		[]*Data{values.Data()}, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	return NewFixedSizeListData(data)
}

func (a *FixedSizeList) setData(data *Data) {
	a.array.setData(data)
	a.n = int(data.dtype.(*sparrow.FixedSizeListType).ListSize())
	if a.values != nil {
		a.values.Release()
	}
	a.values = MakeFromData(data.childData[0])
}

func (a *FixedSizeList) update() { a.setData(a.data) }

func (a *FixedSizeList) Retain() {
	a.array.Retain()
	a.values.Retain()
}

func (a *FixedSizeList) Release() {
	a.array.Release()
	a.values.Release()
}

// ListValues returns the flattened values array.
func (a *FixedSizeList) ListValues() Array { return a.values }

// ListSize returns the number of values per element.
func (a *FixedSizeList) ListSize() int { return a.n }

func (a *FixedSizeList) ValueLen(i int) int { return a.n }

// Value returns a view of element i.
func (a *FixedSizeList) Value(i int) ListValue {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	beg := (a.data.offset + i) * a.n
	return ListValue{arr: a.values, beg: beg, end: beg + a.n}
}

func (a *FixedSizeList) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*FixedSizeList)
	childPos := (a.data.offset + pos) * a.n
	sBeg := (s.data.offset + beg) * a.n
	sEnd := (s.data.offset + end) * a.n
	InsertFrom(a.values.(MutableArray), childPos, s.values, sBeg, sEnd)
}

func (a *FixedSizeList) eraseValues(pos, n int) {
	childPos := (a.data.offset + pos) * a.n
	Erase(a.values.(MutableArray), childPos, n*a.n)
}

func (a *FixedSizeList) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		Resize(a.values.(MutableArray), a.values.Len()+(n-cur)*a.n)
	}
}

func (a *FixedSizeList) getOneForMarshal(i int) interface{} {
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

func (a *FixedSizeList) String() string { return stringOf(a) }

func (a *FixedSizeList) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*FixedSizeList)(nil)
	_ MutableArray = (*FixedSizeList)(nil)
)
