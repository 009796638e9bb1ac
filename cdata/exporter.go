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

package cdata

import (
	"unsafe"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/array"
)

// ExportArray exports arr as a schema/array struct pair. The array keeps a
// reference on the underlying storage until the consumer calls Release on
// the exported array.
func ExportArray(arr array.Array) (*CArrowArray, *CArrowSchema) {
	return ExportField(sparrow.Field{Name: "", Type: arr.DataType(), Nullable: true}, arr.Data())
}

// ExportField exports data under an explicit field, keeping the field's
// name, nullability and metadata on the schema side.
func ExportField(field sparrow.Field, data *array.Data) (*CArrowArray, *CArrowSchema) {
	return exportData(data), exportSchema(field)
}

func exportSchema(field sparrow.Field) *CArrowSchema {
	out := &CArrowSchema{
		Format:   field.Type.Format(),
		Name:     field.Name,
		Metadata: sparrow.EncodeMetadata(field.Metadata),
		release:  func() {},
	}
	if field.Nullable {
		out.Flags |= FlagNullable
	}

	switch dt := field.Type.(type) {
	case *sparrow.DictionaryType:
		if dt.Ordered {
			out.Flags |= FlagDictionaryOrdered
		}
		out.Dictionary = exportSchema(sparrow.Field{Name: "", Type: dt.ValueType, Nullable: true})
	case *sparrow.MapType:
		if dt.KeysSorted {
			out.Flags |= FlagMapKeysSorted
		}
	}

	if nested, ok := field.Type.(sparrow.NestedType); ok {
		out.Children = make([]*CArrowSchema, nested.NumFields())
		for i, f := range nested.Fields() {
			out.Children[i] = exportSchema(f)
		}
	}
	return out
}

func exportData(data *array.Data) *CArrowArray {
	data.Retain()
	out := &CArrowArray{
		Length:    int64(data.Len()),
		NullCount: int64(data.NullN()),
		Offset:    int64(data.Offset()),
		release:   func() { data.Release() },
	}

	out.Buffers = make([]unsafe.Pointer, len(data.Buffers()))
	for i, b := range data.Buffers() {
		if b == nil || b.Len() == 0 {
			continue
		}
		out.Buffers[i] = unsafe.Pointer(unsafe.SliceData(b.Bytes()))
	}

	out.Children = make([]*CArrowArray, len(data.Children()))
	for i, child := range data.Children() {
		out.Children[i] = exportData(child)
	}
	if dict := data.Dictionary(); dict != nil {
		out.Dictionary = exportData(dict)
	}
	return out
}
