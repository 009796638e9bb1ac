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

package sparrow

import (
	"fmt"
	"strconv"
	"strings"
)

// ListType describes a nested type in which each array slot contains a
// variable-size sequence of values, delimited by 32-bit offsets.
type ListType struct {
	elem Field
}

// ListOf returns the list type with element type t.
// For example, if t represents int32, ListOf(t) represents []int32.
func ListOf(t DataType) *ListType {
	if t == nil {
		panic("sparrow: nil DataType")
	}
	return &ListType{elem: Field{Name: "item", Type: t, Nullable: true}}
}

// ListOfField returns the list type with the given element field.
func ListOfField(f Field) *ListType {
	if f.Type == nil {
		panic("sparrow: nil DataType")
	}
	return &ListType{elem: f}
}

func (*ListType) ID() Type       { return LIST }
func (*ListType) Name() string   { return "list" }
func (*ListType) Format() string { return "+l" }
func (t *ListType) String() string {
	if t.elem.Nullable {
		return fmt.Sprintf("list<%s: %s, nullable>", t.elem.Name, t.elem.Type)
	}
	return fmt.Sprintf("list<%s: %s>", t.elem.Name, t.elem.Type)
}

// Elem returns the ListType's element type.
func (t *ListType) Elem() DataType   { return t.elem.Type }
func (t *ListType) ElemField() Field { return t.elem }
func (t *ListType) Fields() []Field  { return []Field{t.elem} }
func (t *ListType) NumFields() int   { return 1 }

// OffsetByteWidth returns the width of one offset entry in bytes.
func (*ListType) OffsetByteWidth() int { return 4 }

// LargeListType is like ListType but with 64-bit offsets.
type LargeListType struct {
	ListType
}

func (*LargeListType) ID() Type       { return LARGE_LIST }
func (*LargeListType) Name() string   { return "large_list" }
func (*LargeListType) Format() string { return "+L" }
func (t *LargeListType) String() string {
	return "large_" + t.ListType.String()
}
func (*LargeListType) OffsetByteWidth() int { return 8 }

func LargeListOf(t DataType) *LargeListType {
	return &LargeListType{ListType: *ListOf(t)}
}

func LargeListOfField(f Field) *LargeListType {
	return &LargeListType{ListType: *ListOfField(f)}
}

// ListViewType is a list whose elements are located by independent
// (offset, size) pairs, permitting out-of-order and overlapping views into
// the child array.
type ListViewType struct {
	ListType
}

func (*ListViewType) ID() Type       { return LIST_VIEW }
func (*ListViewType) Name() string   { return "list_view" }
func (*ListViewType) Format() string { return "+vl" }
func (t *ListViewType) String() string {
	return strings.Replace(t.ListType.String(), "list<", "list_view<", 1)
}

func ListViewOf(t DataType) *ListViewType {
	return &ListViewType{ListType: *ListOf(t)}
}

func ListViewOfField(f Field) *ListViewType {
	return &ListViewType{ListType: *ListOfField(f)}
}

// LargeListViewType is like ListViewType but with 64-bit offsets and sizes.
type LargeListViewType struct {
	ListType
}

func (*LargeListViewType) ID() Type       { return LARGE_LIST_VIEW }
func (*LargeListViewType) Name() string   { return "large_list_view" }
func (*LargeListViewType) Format() string { return "+vL" }
func (t *LargeListViewType) String() string {
	return strings.Replace(t.ListType.String(), "list<", "large_list_view<", 1)
}
func (*LargeListViewType) OffsetByteWidth() int { return 8 }

func LargeListViewOf(t DataType) *LargeListViewType {
	return &LargeListViewType{ListType: *ListOf(t)}
}

func LargeListViewOfField(f Field) *LargeListViewType {
	return &LargeListViewType{ListType: *ListOfField(f)}
}

// FixedSizeListType describes a nested type in which each array slot contains
// a fixed-size sequence of values: element i covers child rows
// [i*stride, (i+1)*stride).
type FixedSizeListType struct {
	n    int32
	elem Field
}

// FixedSizeListOf returns the fixed-size list type with n values of type t.
func FixedSizeListOf(n int32, t DataType) *FixedSizeListType {
	if t == nil {
		panic("sparrow: nil DataType")
	}
	if n <= 0 {
		panic("sparrow: invalid size")
	}
	return &FixedSizeListType{n: n, elem: Field{Name: "item", Type: t, Nullable: true}}
}

func FixedSizeListOfField(n int32, f Field) *FixedSizeListType {
	if f.Type == nil {
		panic("sparrow: nil DataType")
	}
	if n <= 0 {
		panic("sparrow: invalid size")
	}
	return &FixedSizeListType{n: n, elem: f}
}

func (*FixedSizeListType) ID() Type       { return FIXED_SIZE_LIST }
func (*FixedSizeListType) Name() string   { return "fixed_size_list" }
func (t *FixedSizeListType) Format() string {
	return "+w:" + strconv.Itoa(int(t.n))
}
func (t *FixedSizeListType) String() string {
	if t.elem.Nullable {
		return fmt.Sprintf("fixed_size_list<%s: %s, nullable>[%d]", t.elem.Name, t.elem.Type, t.n)
	}
	return fmt.Sprintf("fixed_size_list<%s: %s>[%d]", t.elem.Name, t.elem.Type, t.n)
}

// Elem returns the FixedSizeListType's element type.
func (t *FixedSizeListType) Elem() DataType { return t.elem.Type }

// ListSize returns the fixed stride of the list.
func (t *FixedSizeListType) ListSize() int32 { return t.n }

func (t *FixedSizeListType) ElemField() Field { return t.elem }
func (t *FixedSizeListType) Fields() []Field  { return []Field{t.elem} }
func (t *FixedSizeListType) NumFields() int   { return 1 }

// StructType describes a nested type parameterized by an ordered sequence of
// named, typed fields. Every child array has the struct's length.
type StructType struct {
	fields []Field
	index  map[string]int
}

// StructOf returns the struct type with fields fs.
func StructOf(fs ...Field) *StructType {
	n := len(fs)
	t := &StructType{
		fields: make([]Field, n),
		index:  make(map[string]int, n),
	}
	for i, f := range fs {
		if f.Type == nil {
			panic("sparrow: field with nil DataType")
		}
		t.fields[i] = f
		if _, dup := t.index[f.Name]; dup {
			panic(fmt.Errorf("%w: duplicate field name %q", ErrInvalid, f.Name))
		}
		t.index[f.Name] = i
	}
	return t
}

func (*StructType) ID() Type       { return STRUCT }
func (*StructType) Name() string   { return "struct" }
func (*StructType) Format() string { return "+s" }
func (t *StructType) String() string {
	o := new(strings.Builder)
	o.WriteString("struct<")
	for i, f := range t.fields {
		if i > 0 {
			o.WriteString(", ")
		}
		fmt.Fprintf(o, "%s: %v", f.Name, f.Type)
	}
	o.WriteString(">")
	return o.String()
}

func (t *StructType) Fields() []Field   { return t.fields }
func (t *StructType) NumFields() int    { return len(t.fields) }
func (t *StructType) Field(i int) Field { return t.fields[i] }

func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

func (t *StructType) FieldIdx(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// MapType describes a repeated struct logical type: a list of
// struct<key, item> entries. Keys are not nullable.
type MapType struct {
	value      *ListType
	KeysSorted bool
}

func MapOf(key, item DataType) *MapType {
	if key == nil || item == nil {
		panic("sparrow: nil DataType")
	}
	return &MapType{value: ListOfField(Field{
		Name: "entries",
		Type: StructOf(
			Field{Name: "key", Type: key},
			Field{Name: "value", Type: item, Nullable: true},
		),
	})}
}

func (*MapType) ID() Type       { return MAP }
func (*MapType) Name() string   { return "map" }
func (*MapType) Format() string { return "+m" }
func (t *MapType) String() string {
	var o strings.Builder
	o.WriteString("map<")
	o.WriteString(t.KeyType().String())
	o.WriteString(", ")
	o.WriteString(t.ItemType().String())
	if t.KeysSorted {
		o.WriteString(", keys_sorted")
	}
	o.WriteString(">")
	return o.String()
}

func (t *MapType) KeyType() DataType    { return t.KeyField().Type }
func (t *MapType) ItemType() DataType   { return t.ItemField().Type }
func (t *MapType) KeyField() Field      { return t.Entries().Type.(*StructType).Field(0) }
func (t *MapType) ItemField() Field     { return t.Entries().Type.(*StructType).Field(1) }
func (t *MapType) Entries() Field       { return t.value.ElemField() }
func (t *MapType) ValueType() *ListType { return t.value }
func (t *MapType) Fields() []Field      { return t.value.Fields() }
func (t *MapType) NumFields() int       { return 1 }

// UnionTypeCode is an alias to the type of the ids in a union array's type
// ids buffer.
type UnionTypeCode = int8

const (
	// MaxUnionTypeCode is the maximum value for a type id in a union.
	MaxUnionTypeCode UnionTypeCode = 127
	// InvalidUnionChildID is the id returned from the type id map for
	// type codes that do not select any child.
	InvalidUnionChildID = -1
)

// UnionMode is either SparseMode or DenseMode.
type UnionMode int8

const (
	SparseMode UnionMode = iota
	DenseMode
)

// UnionType is an interface to encompass both Dense and Sparse unions.
//
// A union is a nested type where each logical value is taken from a single
// child, with the active child selected by a 1-byte type id per element.
type UnionType interface {
	NestedType
	Mode() UnionMode
	// TypeCodes returns the type id used for each child.
	TypeCodes() []UnionTypeCode
	// ChildIDs returns the lookup table mapping a type id to the index of
	// the child it selects, with InvalidUnionChildID for unused ids. It is
	// computed once at construction.
	ChildIDs() *[256]int
}

type unionType struct {
	children  []Field
	typeCodes []UnionTypeCode
	childIDs  [256]int
}

func (t *unionType) init(fields []Field, typeCodes []UnionTypeCode) {
	if len(fields) != len(typeCodes) {
		panic(fmt.Errorf("%w: union types must have the same number of fields and type codes", ErrInvalid))
	}

	t.children = fields
	t.typeCodes = typeCodes
	for i := range t.childIDs {
		t.childIDs[i] = InvalidUnionChildID
	}
	for i, tc := range t.typeCodes {
		if tc < 0 {
			panic(fmt.Errorf("%w: union type codes must be non-negative", ErrInvalid))
		}
		t.childIDs[tc] = i
	}
}

func (t *unionType) Fields() []Field            { return t.children }
func (t *unionType) NumFields() int             { return len(t.children) }
func (t *unionType) TypeCodes() []UnionTypeCode { return t.typeCodes }
func (t *unionType) ChildIDs() *[256]int        { return &t.childIDs }

func (t *unionType) format(mode byte) string {
	var o strings.Builder
	o.WriteString("+u")
	o.WriteByte(mode)
	o.WriteByte(':')
	for i, tc := range t.typeCodes {
		if i > 0 {
			o.WriteByte(',')
		}
		o.WriteString(strconv.Itoa(int(tc)))
	}
	return o.String()
}

func (t *unionType) fieldList() string {
	var o strings.Builder
	for i, f := range t.children {
		if i > 0 {
			o.WriteString(", ")
		}
		fmt.Fprintf(&o, "%s: %v=%d", f.Name, f.Type, t.typeCodes[i])
	}
	return o.String()
}

// SparseUnionType is a union where every child has the same length as the
// union itself; element i of the union is element i of its active child.
type SparseUnionType struct {
	unionType
}

func SparseUnionOf(fields []Field, typeCodes []UnionTypeCode) *SparseUnionType {
	t := &SparseUnionType{}
	t.init(fields, typeCodes)
	return t
}

func (*SparseUnionType) ID() Type         { return SPARSE_UNION }
func (*SparseUnionType) Name() string     { return "sparse_union" }
func (*SparseUnionType) Mode() UnionMode  { return SparseMode }
func (t *SparseUnionType) Format() string { return t.format('s') }
func (t *SparseUnionType) String() string {
	return t.Name() + "<" + t.fieldList() + ">"
}

// DenseUnionType is a union where children are compacted: a per-element
// int32 offsets buffer gives the element's position within its child.
type DenseUnionType struct {
	unionType
}

func DenseUnionOf(fields []Field, typeCodes []UnionTypeCode) *DenseUnionType {
	t := &DenseUnionType{}
	t.init(fields, typeCodes)
	return t
}

func (*DenseUnionType) ID() Type         { return DENSE_UNION }
func (*DenseUnionType) Name() string     { return "dense_union" }
func (*DenseUnionType) Mode() UnionMode  { return DenseMode }
func (t *DenseUnionType) Format() string { return t.format('d') }
func (t *DenseUnionType) String() string {
	return t.Name() + "<" + t.fieldList() + ">"
}

// UnionOf returns a union of mode with the given fields and type codes.
func UnionOf(mode UnionMode, fields []Field, typeCodes []UnionTypeCode) UnionType {
	switch mode {
	case SparseMode:
		return SparseUnionOf(fields, typeCodes)
	case DenseMode:
		return DenseUnionOf(fields, typeCodes)
	default:
		panic("sparrow: invalid union mode")
	}
}

var (
	_ NestedType = (*ListType)(nil)
	_ NestedType = (*LargeListType)(nil)
	_ NestedType = (*ListViewType)(nil)
	_ NestedType = (*LargeListViewType)(nil)
	_ NestedType = (*FixedSizeListType)(nil)
	_ NestedType = (*StructType)(nil)
	_ NestedType = (*MapType)(nil)
	_ UnionType  = (*SparseUnionType)(nil)
	_ UnionType  = (*DenseUnionType)(nil)
)
