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

	"github.com/zeebo/xxh3"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// Dictionary is the dictionary-encoded layout: buffer 0 is the validity
// bitmap, buffer 1 holds one integer key per element and the distinct
// values live in a separate dictionary array shared through Data.
type Dictionary[K sparrow.DictKeyType] struct {
	array
	keys   *Number[K]
	values Array
}

func newDictionary[K sparrow.DictKeyType](data *Data) *Dictionary[K] {
	a := &Dictionary[K]{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewDictionaryData returns a dictionary layout adopting data zero-copy.
// K must match the index width of the datatype.
func NewDictionaryData[K sparrow.DictKeyType](data *Data) *Dictionary[K] {
	debug.Assert(data.dictionary != nil, "dictionary data without a dictionary")
	return newDictionary[K](data)
}

// NewDictionaryArray builds a fresh dictionary array from explicit keys
// into values. Every valid key must be in [0, values.Len()).
func NewDictionaryArray[K sparrow.DictKeyType](mem memory.Allocator, keys []sparrow.Nullable[K], values Array) *Dictionary[K] {
	for _, k := range keys {
		debug.Assert(!k.Valid || int64(k.Value) >= 0 && int64(k.Value) < int64(values.Len()), "key outside the dictionary")
	}

	dt := &sparrow.DictionaryType{IndexType: keyDataType[K](), ValueType: values.DataType()}
	inner := NewNumberArray(mem, dt.IndexType, keys)
	defer inner.Release()

	data := NewData(dt, len(keys), inner.Data().buffers, nil, inner.NullN(), 0)
	defer data.Release()
	data.SetDictionary(values.Data())
	return newDictionary[K](data)
}

// DictionaryFromStrings dictionary-encodes vals: distinct strings become
// the dictionary in order of first appearance, repeated strings share a
// key.
func DictionaryFromStrings(mem memory.Allocator, vals []sparrow.Nullable[string]) *Dictionary[int32] {
	memo := newMemoTable()
	keys := make([]sparrow.Nullable[int32], len(vals))
	var uniques []sparrow.Nullable[string]
	for i, v := range vals {
		if !v.Valid {
			continue
		}
		k, found := memo.getOrInsert(v.Value)
		if !found {
			uniques = append(uniques, v)
		}
		keys[i] = sparrow.NullableOf(k)
	}

	values := NewStringArray(mem, uniques)
	defer values.Release()
	return NewDictionaryArray(mem, keys, values)
}

// memoTable maps strings to dense int32 ids, hashing with xxh3 and chaining
// on collision.
type memoTable struct {
	entries map[uint64][]memoEntry
	n       int32
}

type memoEntry struct {
	val string
	id  int32
}

func newMemoTable() *memoTable {
	return &memoTable{entries: make(map[uint64][]memoEntry)}
}

func (m *memoTable) getOrInsert(v string) (id int32, found bool) {
	h := xxh3.HashString(v)
	for _, e := range m.entries[h] {
		if e.val == v {
			return e.id, true
		}
	}
	id = m.n
	m.n++
	m.entries[h] = append(m.entries[h], memoEntry{val: v, id: id})
	return id, false
}

// keyDataType maps the go key type K onto its datatype by width and sign.
func keyDataType[K sparrow.DictKeyType]() sparrow.DataType {
	var z K
	signed := z-1 < 0
	switch unsafe.Sizeof(z) {
	case 1:
		if signed {
			return sparrow.PrimitiveTypes.Int8
		}
		return sparrow.PrimitiveTypes.Uint8
	case 2:
		if signed {
			return sparrow.PrimitiveTypes.Int16
		}
		return sparrow.PrimitiveTypes.Uint16
	case 4:
		if signed {
			return sparrow.PrimitiveTypes.Int32
		}
		return sparrow.PrimitiveTypes.Uint32
	default:
		if signed {
			return sparrow.PrimitiveTypes.Int64
		}
		return sparrow.PrimitiveTypes.Uint64
	}
}

func (a *Dictionary[K]) setData(data *Data) {
	a.array.setData(data)
	if a.keys != nil {
		a.keys.Release()
	}
	if a.values != nil {
		a.values.Release()
	}
	a.keys = newNumber[K](data)
	a.values = MakeFromData(data.dictionary)
}

func (a *Dictionary[K]) update() { a.setData(a.data) }

func (a *Dictionary[K]) Retain() {
	a.array.Retain()
	a.keys.Retain()
	a.values.Retain()
}

func (a *Dictionary[K]) Release() {
	a.array.Release()
	a.keys.Release()
	a.values.Release()
}

// Dictionary returns the distinct values array.
func (a *Dictionary[K]) Dictionary() Array { return a.values }

// Keys returns the keys as a primitive array over the same storage.
func (a *Dictionary[K]) Keys() *Number[K] { return a.keys }

// Key returns the key of element i, which must be valid.
func (a *Dictionary[K]) Key(i int) K { return a.keys.Value(i) }

// GetValueIndex returns the dictionary position element i points at.
func (a *Dictionary[K]) GetValueIndex(i int) int {
	debug.Assert(a.IsValid(i), "null element has no value index")
	return int(a.keys.Value(i))
}

// Insert inserts keys at position pos. Values for fresh keys must already
// be present in the dictionary.
func (a *Dictionary[K]) Insert(pos int, vals []sparrow.Nullable[K]) {
	for _, k := range vals {
		debug.Assert(!k.Valid || int64(k.Value) >= 0 && int64(k.Value) < int64(a.values.Len()), "key outside the dictionary")
	}
	insertTyped[K](a, pos, vals)
}

func (a *Dictionary[K]) Append(k K) {
	a.Insert(a.Len(), []sparrow.Nullable[K]{sparrow.NullableOf(k)})
}

func (a *Dictionary[K]) AppendNull() {
	a.Insert(a.Len(), []sparrow.Nullable[K]{{}})
}

func (a *Dictionary[K]) insertRaw(pos int, vals []K) { a.keys.insertRaw(pos, vals) }

// insertValuesFrom requires the source to share the destination's
// dictionary storage, otherwise the copied keys would point at different
// values.
func (a *Dictionary[K]) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*Dictionary[K])
	debug.Assert(a.data.dictionary == s.data.dictionary, "source shares no dictionary with destination")
	a.keys.insertValuesFrom(pos, s.keys, beg, end)
}

func (a *Dictionary[K]) eraseValues(pos, n int) { a.keys.eraseValues(pos, n) }
func (a *Dictionary[K]) resizeValues(n int)     { a.keys.resizeValues(n) }

func (a *Dictionary[K]) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return Element(a.values, a.GetValueIndex(i))
}

func (a *Dictionary[K]) String() string { return stringOf(a) }

func (a *Dictionary[K]) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*Dictionary[int32])(nil)
	_ MutableArray = (*Dictionary[uint16])(nil)
)
