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

func TestNewFixedSizeListArray(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2, 3, 4, 5, 6}, nil)
	defer values.Release()

	arr := array.NewFixedSizeListArray(mem, 2, values, []bool{true, false, true})
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, sparrow.FIXED_SIZE_LIST, arr.DataType().ID())
	assert.Equal(t, 2, arr.ListSize())
	assert.Equal(t, 2, arr.ValueLen(0))

	v := arr.Value(2)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, int32(5), v.Element(0))
	assert.Equal(t, int32(6), v.Element(1))
}

func TestFixedSizeListInsertFrom(t *testing.T) {
	mem := memory.NewGoAllocator()

	dstValues := array.NewInt32Array(mem, []int32{1, 2, 5, 6}, nil)
	defer dstValues.Release()
	dst := array.NewFixedSizeListArray(mem, 2, dstValues, []bool{true, true})
	defer dst.Release()

	srcValues := array.NewInt32Array(mem, []int32{3, 4}, nil)
	defer srcValues.Release()
	src := array.NewFixedSizeListArray(mem, 2, srcValues, []bool{true})
	defer src.Release()

	array.InsertFrom(dst, 1, src, 0, 1)
	assert.Equal(t, 3, dst.Len())

	flat := dst.ListValues().(*array.Int32)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, flat.Values())
}

func TestFixedSizeListErase(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2, 3, 4, 5, 6}, nil)
	defer values.Release()
	arr := array.NewFixedSizeListArray(mem, 3, values, []bool{true, true})
	defer arr.Release()

	array.Erase(arr, 0, 1)
	assert.Equal(t, 1, arr.Len())

	flat := arr.ListValues().(*array.Int32)
	assert.Equal(t, []int32{4, 5, 6}, flat.Values())
}

func TestFixedSizeListResize(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2}, nil)
	defer values.Release()
	arr := array.NewFixedSizeListArray(mem, 2, values, []bool{true})
	defer arr.Release()

	array.Resize(arr, 3)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 2, arr.NullN())
	assert.Equal(t, 6, arr.ListValues().Len())
}

func TestFixedSizeListMarshalJSON(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{1, 2, 3, 4}, nil)
	defer values.Release()
	arr := array.NewFixedSizeListArray(mem, 2, values, []bool{true, false})
	defer arr.Release()

	b, err := arr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[[1, 2], null]`, string(b))
}
