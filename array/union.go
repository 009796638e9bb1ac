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
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// Union is the interface shared by sparse and dense union layouts.
type Union interface {
	Array

	// UnionType returns the datatype as a union type.
	UnionType() sparrow.UnionType

	// TypeCode returns the type id selecting the child of element i.
	TypeCode(i int) sparrow.UnionTypeCode

	// ChildID returns the index of the child selected for element i.
	ChildID(i int) int

	// Field returns child j.
	Field(j int) Array

	// NumFields returns the number of children.
	NumFields() int
}

// union is the behavior common to both modes: a type ids buffer selecting
// one child per element, no validity bitmap of its own.
type union struct {
	array
	unionType sparrow.UnionType
	typecodes []sparrow.UnionTypeCode
	children  []Array
}

func (a *union) setData(data *Data) {
	a.array.setData(data)
	a.unionType = data.dtype.(sparrow.UnionType)
	if ids := data.buffers[0]; ids != nil {
		a.typecodes = sparrow.CastFromBytes[sparrow.UnionTypeCode](ids.Bytes())
	} else {
		a.typecodes = nil
	}
	for _, c := range a.children {
		c.Release()
	}
	a.children = make([]Array, len(data.childData))
	for j, child := range data.childData {
		a.children[j] = MakeFromData(child)
	}
}

func (a *union) Retain() {
	a.array.Retain()
	for _, c := range a.children {
		c.Retain()
	}
}

func (a *union) Release() {
	a.array.Release()
	for _, c := range a.children {
		c.Release()
	}
}

func (a *union) UnionType() sparrow.UnionType { return a.unionType }
func (a *union) NumFields() int               { return len(a.children) }
func (a *union) Field(j int) Array            { return a.children[j] }

func (a *union) TypeCode(i int) sparrow.UnionTypeCode {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	return a.typecodes[a.data.offset+i]
}

func (a *union) ChildID(i int) int {
	id := a.unionType.ChildIDs()[uint8(a.TypeCode(i))]
	debug.Assert(id != sparrow.InvalidUnionChildID, "type id selects no child")
	return id
}

// typeIDBuffer renders per-row codes as the raw bytes of the type ids
// buffer.
func typeIDBuffer(mem memory.Allocator, ids []sparrow.UnionTypeCode) *memory.Buffer {
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(len(ids))
	copy(buf.Bytes(), sparrow.CastToBytes(ids))
	return buf
}

// SparseUnion is the sparse union layout: every child has one row per
// element and the type ids buffer picks which child a row is read from.
type SparseUnion struct {
	union
}

// NewSparseUnionData returns a sparse union layout adopting data zero-copy.
func NewSparseUnionData(data *Data) *SparseUnion {
	a := &SparseUnion{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewSparseUnionArray builds a fresh sparse union over equally long
// children. typeIDs holds one code per row; fields names the children and
// codes their type ids, parallel slices.
func NewSparseUnionArray(mem memory.Allocator, fields []sparrow.Field, codes []sparrow.UnionTypeCode, children []Array, typeIDs []sparrow.UnionTypeCode) *SparseUnion {
	dt := sparrow.SparseUnionOf(fields, codes)
	childData := make([]*Data, len(children))
	for j, c := range children {
		debug.Assert(c.Len() == len(typeIDs), "sparse union children must match the row count")
		childData[j] = c.Data()
	}

	ids := typeIDBuffer(mem, typeIDs)
	data := NewData(dt, len(typeIDs), []*memory.Buffer{ids}, childData, 0, 0)
	defer data.Release()
	ids.Release()
	return NewSparseUnionData(data)
}

func (a *SparseUnion) setData(data *Data) {
	a.union.setData(data)
	debug.Assert(data.dtype.ID() == sparrow.SPARSE_UNION, "invalid datatype for sparse union")
	a.data.nullN = a.scanNulls()
}

func (a *SparseUnion) update() { a.setData(a.data) }

func (a *SparseUnion) scanNulls() int {
	nulls := 0
	for i := 0; i < a.data.length; i++ {
		if a.IsNull(i) {
			nulls++
		}
	}
	return nulls
}

func (a *SparseUnion) IsNull(i int) bool {
	return a.children[a.ChildID(i)].IsNull(a.data.offset + i)
}

func (a *SparseUnion) IsValid(i int) bool { return !a.IsNull(i) }

func (a *SparseUnion) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*SparseUnion)
	for j, c := range a.children {
		InsertFrom(c.(MutableArray), a.data.offset+pos, s.children[j], s.data.offset+beg, s.data.offset+end)
	}
	a.data.buffers[0].Insert(a.data.offset+pos, sparrow.CastToBytes(s.typecodes[s.data.offset+beg:s.data.offset+end]))
}

func (a *SparseUnion) eraseValues(pos, n int) {
	for _, c := range a.children {
		Erase(c.(MutableArray), a.data.offset+pos, n)
	}
	a.data.buffers[0].Erase(a.data.offset+pos, n)
}

func (a *SparseUnion) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		// new rows select the first child, grown with nulls
		for _, c := range a.children {
			Resize(c.(MutableArray), c.Len()+(n-cur))
		}
		ids := make([]sparrow.UnionTypeCode, n-cur)
		for i := range ids {
			ids[i] = a.unionType.TypeCodes()[0]
		}
		a.data.buffers[0].Insert(a.data.offset+cur, sparrow.CastToBytes(ids))
	}
}

func (a *SparseUnion) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return Element(a.children[a.ChildID(i)], a.data.offset+i)
}

func (a *SparseUnion) String() string { return stringOf(a) }

func (a *SparseUnion) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

// DenseUnion is the dense union layout: the type ids buffer picks the
// child and a second offsets buffer picks the row inside it, so children
// only hold the rows that actually use them.
type DenseUnion struct {
	union
	offsets []int32
}

// NewDenseUnionData returns a dense union layout adopting data zero-copy.
func NewDenseUnionData(data *Data) *DenseUnion {
	a := &DenseUnion{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewDenseUnionArray builds a fresh dense union. typeIDs and offsets hold
// one entry per row; offsets index into the child each row's code selects.
func NewDenseUnionArray(mem memory.Allocator, fields []sparrow.Field, codes []sparrow.UnionTypeCode, children []Array, typeIDs []sparrow.UnionTypeCode, offsets []int32) *DenseUnion {
	debug.Assert(len(typeIDs) == len(offsets), "one offset per row required")

	dt := sparrow.DenseUnionOf(fields, codes)
	childData := make([]*Data, len(children))
	for j, c := range children {
		childData[j] = c.Data()
	}

	ids := typeIDBuffer(mem, typeIDs)
	offbuf := memory.NewResizableBuffer(mem)
	offbuf.Resize(len(offsets) * sizeOf[int32]())
	copy(sparrow.CastFromBytes[int32](offbuf.Bytes()), offsets)

	data := NewData(dt, len(typeIDs), []*memory.Buffer{ids, offbuf}, childData, 0, 0)
	defer data.Release()
	ids.Release()
	offbuf.Release()
	return NewDenseUnionData(data)
}

func (a *DenseUnion) setData(data *Data) {
	a.union.setData(data)
	debug.Assert(data.dtype.ID() == sparrow.DENSE_UNION, "invalid datatype for dense union")
	if off := data.buffers[1]; off != nil {
		a.offsets = sparrow.CastFromBytes[int32](off.Bytes())
	} else {
		a.offsets = nil
	}
	a.data.nullN = a.scanNulls()
}

func (a *DenseUnion) update() { a.setData(a.data) }

func (a *DenseUnion) scanNulls() int {
	nulls := 0
	for i := 0; i < a.data.length; i++ {
		if a.IsNull(i) {
			nulls++
		}
	}
	return nulls
}

// ValueOffset returns the row inside the selected child that element i
// reads from.
func (a *DenseUnion) ValueOffset(i int) int {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	return int(a.offsets[a.data.offset+i])
}

func (a *DenseUnion) IsNull(i int) bool {
	return a.children[a.ChildID(i)].IsNull(a.ValueOffset(i))
}

func (a *DenseUnion) IsValid(i int) bool { return !a.IsNull(i) }

// insertValuesFrom appends each inserted row's value at the end of the
// child its code selects and points a fresh offset entry there.
func (a *DenseUnion) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*DenseUnion)
	n := end - beg

	ids := make([]sparrow.UnionTypeCode, n)
	offsets := make([]int32, n)
	for i := 0; i < n; i++ {
		code := s.TypeCode(beg + i)
		child := a.children[a.unionType.ChildIDs()[uint8(code)]]
		ids[i] = code
		offsets[i] = int32(child.Len())
		InsertFrom(child.(MutableArray), child.Len(), s.children[s.ChildID(beg+i)], s.ValueOffset(beg+i), s.ValueOffset(beg+i)+1)
	}

	j := a.data.offset + pos
	a.data.buffers[0].Insert(j, sparrow.CastToBytes(ids))
	a.data.buffers[1].Insert(j*sizeOf[int32](), sparrow.CastToBytes(offsets))
	a.offsets = sparrow.CastFromBytes[int32](a.data.buffers[1].Bytes())
}

// eraseValues drops type id and offset entries only. The child rows they
// pointed at are left in place, unreferenced.
func (a *DenseUnion) eraseValues(pos, n int) {
	j := a.data.offset + pos
	a.data.buffers[0].Erase(j, n)
	a.data.buffers[1].Erase(j*sizeOf[int32](), n*sizeOf[int32]())
	a.offsets = sparrow.CastFromBytes[int32](a.data.buffers[1].Bytes())
}

func (a *DenseUnion) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		// new rows are nulls appended to the first child
		first := a.children[0].(MutableArray)
		ids := make([]sparrow.UnionTypeCode, n-cur)
		offsets := make([]int32, n-cur)
		for i := range ids {
			ids[i] = a.unionType.TypeCodes()[0]
			offsets[i] = int32(first.Len())
			Resize(first, first.Len()+1)
		}
		j := a.data.offset + cur
		a.data.buffers[0].Insert(j, sparrow.CastToBytes(ids))
		a.data.buffers[1].Insert(j*sizeOf[int32](), sparrow.CastToBytes(offsets))
		a.offsets = sparrow.CastFromBytes[int32](a.data.buffers[1].Bytes())
	}
}

func (a *DenseUnion) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return Element(a.children[a.ChildID(i)], a.ValueOffset(i))
}

func (a *DenseUnion) String() string { return stringOf(a) }

func (a *DenseUnion) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Union        = (*SparseUnion)(nil)
	_ Union        = (*DenseUnion)(nil)
	_ MutableArray = (*SparseUnion)(nil)
	_ MutableArray = (*DenseUnion)(nil)
)
