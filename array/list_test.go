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

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/array"
	"github.com/man-group/sparrow-sub000/memory"
)

func sizevals(sizes ...int32) []sparrow.Nullable[int32] {
	out := make([]sparrow.Nullable[int32], len(sizes))
	for i, s := range sizes {
		out[i] = sparrow.NullableOf(s)
	}
	return out
}

func TestNewListArrayFromSizes(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2, 3, 4, 5}, nil)
	defer values.Release()

	arr := array.NewListArrayFromSizes(mem, values, sizevals(2, 0, 3))
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Zero(t, arr.NullN())
	assert.Equal(t, sparrow.LIST, arr.DataType().ID())
	assert.Equal(t, []int32{0, 2, 2, 5}, arr.Offsets())
	assert.Equal(t, 2, arr.ValueLen(0))
	assert.Zero(t, arr.ValueLen(1))
	assert.Equal(t, 3, arr.ValueLen(2))

	v := arr.Value(2)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, int32(3), v.Element(0))
	assert.Equal(t, int32(5), v.Element(2))
}

func TestListNullRows(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{7, 8}, nil)
	defer values.Release()

	arr := array.NewListArrayFromSizes(mem, values, []sparrow.Nullable[int32]{
		sparrow.NullableOf[int32](2),
		sparrow.NullOf[int32](),
	})
	defer arr.Release()

	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.True(t, arr.IsNull(1))
	assert.Zero(t, arr.ValueLen(1))
}

func TestListInsertFrom(t *testing.T) {
	mem := memory.NewGoAllocator()

	dstValues := array.NewInt32Array(mem, []int32{1, 2, 5, 6}, nil)
	defer dstValues.Release()
	dst := array.NewListArrayFromSizes(mem, dstValues, sizevals(2, 2))
	defer dst.Release()

	srcValues := array.NewInt32Array(mem, []int32{3, 4}, nil)
	defer srcValues.Release()
	src := array.NewListArrayFromSizes(mem, srcValues, sizevals(1, 1))
	defer src.Release()

	array.InsertFrom(dst, 1, src, 0, 2)
	assert.Equal(t, 4, dst.Len())
	assert.Equal(t, []int32{0, 2, 3, 4, 6}, dst.Offsets())

	flat := dst.ListValues().(*array.Int32)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, flat.Values())
}

func TestListErase(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2, 3, 4, 5, 6}, nil)
	defer values.Release()
	arr := array.NewListArrayFromSizes(mem, values, sizevals(2, 3, 1))
	defer arr.Release()

	array.Erase(arr, 1, 1)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, []int32{0, 2, 3}, arr.Offsets())

	flat := arr.ListValues().(*array.Int32)
	assert.Equal(t, []int32{1, 2, 6}, flat.Values())
}

func TestListResize(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{9}, nil)
	defer values.Release()
	arr := array.NewListArrayFromSizes(mem, values, sizevals(1))
	defer arr.Release()

	array.Resize(arr, 3)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 2, arr.NullN())
	assert.Equal(t, []int32{0, 1, 1, 1}, arr.Offsets())

	array.Resize(arr, 1)
	assert.Equal(t, 1, arr.Len())
	assert.Equal(t, []int32{0, 1}, arr.Offsets())
}

func TestLargeListArray(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, strvals("a", "b", "c"))
	defer values.Release()

	arr := array.NewLargeListArrayFromSizes(mem, values, []sparrow.Nullable[int64]{
		sparrow.NullableOf[int64](1),
		sparrow.NullableOf[int64](2),
	})
	defer arr.Release()

	assert.Equal(t, sparrow.LARGE_LIST, arr.DataType().ID())
	assert.Equal(t, []int64{0, 1, 3}, arr.Offsets())

	v := arr.Value(1)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "b", v.Element(0))
}

func TestListMarshalJSON(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2, 3}, nil)
	defer values.Release()
	arr := array.NewListArrayFromSizes(mem, values, []sparrow.Nullable[int32]{
		sparrow.NullableOf[int32](2),
		sparrow.NullOf[int32](),
		sparrow.NullableOf[int32](1),
	})
	defer arr.Release()

	b, err := arr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[[1, 2], null, [3]]`, string(b))
}
