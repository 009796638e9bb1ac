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

	"golang.org/x/xerrors"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/array"
	"github.com/man-group/sparrow-sub000/bitutil"
	"github.com/man-group/sparrow-sub000/memory"
)

// ImportField rebuilds the field a schema describes.
func ImportField(schema *CArrowSchema) (sparrow.Field, error) {
	children := make([]sparrow.Field, len(schema.Children))
	for i, c := range schema.Children {
		f, err := ImportField(c)
		if err != nil {
			return sparrow.Field{}, err
		}
		children[i] = f
	}

	dt, err := sparrow.TypeFromFormat(schema.Format, children)
	if err != nil {
		return sparrow.Field{}, err
	}

	if schema.Dictionary != nil {
		values, err := ImportField(schema.Dictionary)
		if err != nil {
			return sparrow.Field{}, err
		}
		dt = &sparrow.DictionaryType{
			IndexType: dt,
			ValueType: values.Type,
			Ordered:   schema.Flags&FlagDictionaryOrdered != 0,
		}
	}
	if mt, ok := dt.(*sparrow.MapType); ok {
		mt.KeysSorted = schema.Flags&FlagMapKeysSorted != 0
	}

	md, err := sparrow.DecodeMetadata(schema.Metadata)
	if err != nil {
		return sparrow.Field{}, err
	}
	return sparrow.Field{
		Name:     schema.Name,
		Type:     dt,
		Nullable: schema.Flags&FlagNullable != 0,
		Metadata: md,
	}, nil
}

// ImportArray rebuilds an array from an exported pair. The buffers are
// adopted zero-copy, so carr must only be released once the returned array
// is no longer in use.
func ImportArray(carr *CArrowArray, schema *CArrowSchema) (array.Array, error) {
	field, err := ImportField(schema)
	if err != nil {
		return nil, err
	}
	data, err := importData(carr, field.Type)
	if err != nil {
		return nil, err
	}
	defer data.Release()
	return array.MakeFromData(data), nil
}

func importData(c *CArrowArray, dt sparrow.DataType) (*array.Data, error) {
	n, off := int(c.Length), int(c.Offset)

	buffers, err := importBuffers(c, dt, n, off)
	if err != nil {
		return nil, err
	}

	var childTypes []sparrow.Field
	if nested, ok := dt.(sparrow.NestedType); ok {
		childTypes = nested.Fields()
	}
	if len(c.Children) != len(childTypes) {
		return nil, xerrors.Errorf("cdata: %w: datatype %v expects %d children, got %d",
			sparrow.ErrInvalid, dt, len(childTypes), len(c.Children))
	}

	children := make([]*array.Data, len(c.Children))
	for i, cc := range c.Children {
		child, err := importData(cc, childTypes[i].Type)
		if err != nil {
			return nil, err
		}
		children[i] = child
		defer child.Release()
	}

	nulls := int(c.NullCount)
	if nulls < 0 {
		nulls = computeNulls(buffers, dt, n, off)
	}

	data := array.NewData(dt, n, buffers, children, nulls, off)
	if dict, ok := dt.(*sparrow.DictionaryType); ok {
		if c.Dictionary == nil {
			return nil, xerrors.Errorf("cdata: %w: dictionary array without dictionary values", sparrow.ErrInvalid)
		}
		values, err := importData(c.Dictionary, dict.ValueType)
		if err != nil {
			data.Release()
			return nil, err
		}
		data.SetDictionary(values)
		values.Release()
	}
	return data, nil
}

// importBuffers wraps the raw pointers, sizing each buffer from the
// datatype and lengths the way the C interface requires.
func importBuffers(c *CArrowArray, dt sparrow.DataType, n, off int) ([]*memory.Buffer, error) {
	p := c.Buffers
	id := dt.ID()
	if dict, ok := dt.(*sparrow.DictionaryType); ok {
		id = dict.IndexType.ID()
	}

	validity := func() *memory.Buffer {
		return wrapBuffer(p[0], int(bitutil.BytesForBits(int64(off+n))))
	}

	switch id {
	case sparrow.NULL, sparrow.RUN_END_ENCODED:
		return []*memory.Buffer{nil}, nil

	case sparrow.BOOL:
		return []*memory.Buffer{validity(), wrapBuffer(p[1], int(bitutil.BytesForBits(int64(off+n))))}, nil

	case sparrow.UINT8, sparrow.INT8, sparrow.UINT16, sparrow.INT16,
		sparrow.UINT32, sparrow.INT32, sparrow.UINT64, sparrow.INT64,
		sparrow.FLOAT16, sparrow.FLOAT32, sparrow.FLOAT64,
		sparrow.TIMESTAMP, sparrow.DECIMAL128, sparrow.DECIMAL256:
		w := fixedByteWidth(dt)
		return []*memory.Buffer{validity(), wrapBuffer(p[1], (off+n)*w)}, nil

	case sparrow.STRING, sparrow.BINARY:
		offsets := wrapBuffer(p[1], (off+n+1)*4)
		last := int(sparrow.CastFromBytes[int32](offsets.Bytes())[off+n])
		return []*memory.Buffer{validity(), offsets, wrapBuffer(p[2], last)}, nil

	case sparrow.LARGE_STRING, sparrow.LARGE_BINARY:
		offsets := wrapBuffer(p[1], (off+n+1)*8)
		last := int(sparrow.CastFromBytes[int64](offsets.Bytes())[off+n])
		return []*memory.Buffer{validity(), offsets, wrapBuffer(p[2], last)}, nil

	case sparrow.LIST, sparrow.MAP:
		return []*memory.Buffer{validity(), wrapBuffer(p[1], (off+n+1)*4)}, nil
	case sparrow.LARGE_LIST:
		return []*memory.Buffer{validity(), wrapBuffer(p[1], (off+n+1)*8)}, nil

	case sparrow.LIST_VIEW:
		return []*memory.Buffer{validity(), wrapBuffer(p[1], (off+n)*4), wrapBuffer(p[2], (off+n)*4)}, nil
	case sparrow.LARGE_LIST_VIEW:
		return []*memory.Buffer{validity(), wrapBuffer(p[1], (off+n)*8), wrapBuffer(p[2], (off+n)*8)}, nil

	case sparrow.FIXED_SIZE_LIST, sparrow.STRUCT:
		return []*memory.Buffer{validity()}, nil

	case sparrow.SPARSE_UNION:
		return []*memory.Buffer{wrapBuffer(p[0], off + n)}, nil
	case sparrow.DENSE_UNION:
		return []*memory.Buffer{wrapBuffer(p[0], off + n), wrapBuffer(p[1], (off+n)*4)}, nil
	}
	return nil, xerrors.Errorf("cdata: %w: cannot size buffers for datatype %v", sparrow.ErrNotImplemented, dt)
}

func fixedByteWidth(dt sparrow.DataType) int {
	return dt.(sparrow.FixedWidthDataType).BitWidth() / 8
}

func wrapBuffer(p unsafe.Pointer, nbytes int) *memory.Buffer {
	if p == nil {
		return nil
	}
	return memory.NewBufferBytes(unsafe.Slice((*byte)(p), nbytes))
}

func computeNulls(buffers []*memory.Buffer, dt sparrow.DataType, n, off int) int {
	switch dt.ID() {
	case sparrow.NULL:
		return n
	case sparrow.RUN_END_ENCODED, sparrow.SPARSE_UNION, sparrow.DENSE_UNION:
		// nullness lives in the children, recomputed when the concrete
		// layout binds the data
		return 0
	}
	if len(buffers) == 0 || buffers[0] == nil {
		return 0
	}
	return n - bitutil.CountSetBits(buffers[0].Bytes(), off, n)
}
