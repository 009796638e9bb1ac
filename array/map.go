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

// Map is the map layout, physically a list of non-nullable
// struct<key, value> entries with 32-bit offsets.
type Map struct {
	List[int32]
	keys, items Array
}

// NewMapData returns a map layout adopting data zero-copy.
func NewMapData(data *Data) *Map {
	a := &Map{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewMapArray builds a fresh map array over parallel keys and items
// children, with per-row entry counts given as sizes. Null rows must carry
// size 0. Whether the keys of every row are sorted is detected here and
// recorded on the datatype.
func NewMapArray(mem memory.Allocator, keys, items Array, sizes []sparrow.Nullable[int32]) *Map {
	debug.Assert(keys.Len() == items.Len(), "keys and items lengths differ")

	dt := sparrow.MapOf(keys.DataType(), items.DataType())
	offsets := OffsetsFromSizes(sparrow.ValuesOf(sizes))
	dt.KeysSorted = mapKeysInOrder(keys, offsets)
	debug.Assert(int(offsets[len(offsets)-1]) == keys.Len(), "sizes do not sum to the length of the children")

	validity := bitmap.NewFromBools(mem, sparrow.ValidityOf(sizes))
	offbuf := memory.NewResizableBuffer(mem)
	offbuf.Resize(len(offsets) * sizeOf[int32]())
	copy(sparrow.CastFromBytes[int32](offbuf.Bytes()), offsets)

	entries := NewData(dt.Entries().Type, keys.Len(),
		[]*memory.Buffer{nil},
		[]*Data{keys.Data(), items.Data()}, 0, 0)

	data := NewData(dt, len(sizes),
		[]*memory.Buffer{validity.Buffer(), offbuf},
		[]*Data{entries}, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	offbuf.Release()
	entries.Release()
	return NewMapData(data)
}

// mapKeysInOrder reports whether the keys inside every row are in
// non-decreasing order. Key types without a natural scalar order report
// false.
func mapKeysInOrder(keys Array, offsets []int32) bool {
	for r := 0; r+1 < len(offsets); r++ {
		for k := int(offsets[r]) + 1; k < int(offsets[r+1]); k++ {
			less, ok := scalarLess(Element(keys, k), Element(keys, k-1))
			if !ok || less {
				return false
			}
		}
	}
	return true
}

func scalarLess(a, b interface{}) (less, ok bool) {
	switch x := a.(type) {
	case int8:
		return x < b.(int8), true
	case int16:
		return x < b.(int16), true
	case int32:
		return x < b.(int32), true
	case int64:
		return x < b.(int64), true
	case uint8:
		return x < b.(uint8), true
	case uint16:
		return x < b.(uint16), true
	case uint32:
		return x < b.(uint32), true
	case uint64:
		return x < b.(uint64), true
	case float32:
		return x < b.(float32), true
	case float64:
		return x < b.(float64), true
	case string:
		return x < b.(string), true
	}
	return false, false
}

func (a *Map) setData(data *Data) {
	a.List.setData(data)
	entries := a.values.(*Struct)
	a.keys = entries.Field(0)
	a.items = entries.Field(1)
}

func (a *Map) update() { a.setData(a.data) }

// KeysSorted reports whether the keys of every row were sorted when the
// array was built.
func (a *Map) KeysSorted() bool { return a.data.dtype.(*sparrow.MapType).KeysSorted }

// Keys returns the flattened keys child.
func (a *Map) Keys() Array { return a.keys }

// Items returns the flattened items child.
func (a *Map) Items() Array { return a.items }

func (a *Map) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*Map)
	a.List.insertValuesFrom(pos, &s.List, beg, end)
}

var (
	_ Array        = (*Map)(nil)
	_ MutableArray = (*Map)(nil)
)
