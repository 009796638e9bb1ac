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

// Struct is the struct layout: buffer 0 is the validity bitmap and each
// field is a child of the same length. A null element still has values in
// every field child.
type Struct struct {
	array
	fields []Array
}

// NewStructData returns a struct layout adopting data zero-copy.
func NewStructData(data *Data) *Struct {
	a := &Struct{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewStructArray builds a fresh struct array over the given field arrays,
// which must all share the same length.
func NewStructArray(mem memory.Allocator, names []string, fields []Array, valid []bool) *Struct {
	debug.Assert(len(names) == len(fields), "one name per field required")

	fs := make([]sparrow.Field, len(fields))
	children := make([]*Data, len(fields))
	for i, f := range fields {
		debug.Assert(f.Len() == len(valid), "field lengths differ")
		fs[i] = sparrow.Field{Name: names[i], Type: f.DataType(), Nullable: true}
		children[i] = f.Data()
	}

	validity := bitmap.NewFromBools(mem, valid)
	data := NewData(sparrow.StructOf(fs...), len(valid),
		[]*memory.Buffer{validity.Buffer()}, children, validity.NullN(), 0)
	defer data.Release()
	validity.Buffer().Release()
	return NewStructData(data)
}

func (a *Struct) setData(data *Data) {
	a.array.setData(data)
	for _, f := range a.fields {
		f.Release()
	}
	a.fields = make([]Array, len(data.childData))
	for i, child := range data.childData {
		a.fields[i] = MakeFromData(child)
	}
}

func (a *Struct) update() { a.setData(a.data) }

func (a *Struct) Retain() {
	a.array.Retain()
	for _, f := range a.fields {
		f.Retain()
	}
}

func (a *Struct) Release() {
	a.array.Release()
	for _, f := range a.fields {
		f.Release()
	}
}

// NumField returns the number of fields.
func (a *Struct) NumField() int { return len(a.fields) }

// Field returns the child array of field i.
func (a *Struct) Field(i int) Array { return a.fields[i] }

// FieldByName returns the child array of the named field, or nil when no
// such field exists.
func (a *Struct) FieldByName(name string) Array {
	st := a.data.dtype.(*sparrow.StructType)
	i, ok := st.FieldIdx(name)
	if !ok {
		return nil
	}
	return a.fields[i]
}

// Value returns a non-owning view of row i, indexing into the children
// without copying them. The view is invalidated by any mutation of the
// owning struct.
func (a *Struct) Value(i int) StructValue {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	return StructValue{arr: a, row: a.data.offset + i}
}

// StructValue is a lightweight view of one struct row.
type StructValue struct {
	arr *Struct
	row int
}

func (v StructValue) NumField() int { return v.arr.NumField() }

// Field returns the marshal-friendly value of child j at this row.
func (v StructValue) Field(j int) interface{} {
	return Element(v.arr.fields[j], v.row)
}

// FieldByName is like Field, addressing the child by name.
func (v StructValue) FieldByName(name string) interface{} {
	return Element(v.arr.FieldByName(name), v.row)
}

func (a *Struct) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*Struct)
	for i, f := range a.fields {
		InsertFrom(f.(MutableArray), a.data.offset+pos, s.fields[i], s.data.offset+beg, s.data.offset+end)
	}
}

func (a *Struct) eraseValues(pos, n int) {
	for _, f := range a.fields {
		Erase(f.(MutableArray), a.data.offset+pos, n)
	}
}

func (a *Struct) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		for _, f := range a.fields {
			Resize(f.(MutableArray), f.Len()+(n-cur))
		}
	}
}

func (a *Struct) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	st := a.data.dtype.(*sparrow.StructType)
	out := make(map[string]interface{}, len(a.fields))
	for k, f := range a.fields {
		out[st.Field(k).Name] = Element(f, a.data.offset+i)
	}
	return out
}

func (a *Struct) String() string { return stringOf(a) }

func (a *Struct) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*Struct)(nil)
	_ MutableArray = (*Struct)(nil)
)
