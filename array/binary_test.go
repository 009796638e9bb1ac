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

func strvals(vals ...string) []sparrow.Nullable[string] {
	out := make([]sparrow.Nullable[string], len(vals))
	for i, v := range vals {
		out[i] = sparrow.NullableOf(v)
	}
	return out
}

func TestNewStringArray(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("hello"),
		sparrow.NullOf[string](),
		sparrow.NullableOf("world"),
	})
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, sparrow.STRING, arr.DataType().ID())
	assert.Equal(t, "hello", arr.ValueStr(0))
	assert.True(t, arr.IsNull(1))
	assert.Equal(t, "world", arr.ValueStr(2))
	assert.Equal(t, []int32{0, 5, 5, 10}, arr.ValueOffsets())
	assert.Equal(t, 5, arr.ValueLen(2))
	assert.Zero(t, arr.ValueLen(1))
}

func TestLargeStringArray(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewLargeStringArray(mem, strvals("a", "bc"))
	defer arr.Release()

	assert.Equal(t, sparrow.LARGE_STRING, arr.DataType().ID())
	assert.Equal(t, []int64{0, 1, 3}, arr.ValueOffsets())
	assert.Equal(t, "bc", arr.ValueStr(1))
}

func TestBinaryArray(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewBinaryArray(mem, []sparrow.Nullable[[]byte]{
		sparrow.NullableOf([]byte{0xDE, 0xAD}),
		sparrow.NullableOf([]byte{0xBE, 0xEF}),
	})
	defer arr.Release()

	assert.Equal(t, sparrow.BINARY, arr.DataType().ID())
	assert.Equal(t, []byte{0xDE, 0xAD}, arr.Value(0))
	assert.Equal(t, []byte{0xBE, 0xEF}, arr.Value(1))
}

func TestStringInsert(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewStringArray(mem, strvals("aa", "dd"))
	defer arr.Release()

	arr.InsertStrings(1, []sparrow.Nullable[string]{
		sparrow.NullableOf("bb"),
		sparrow.NullOf[string](),
	})
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, "aa", arr.ValueStr(0))
	assert.Equal(t, "bb", arr.ValueStr(1))
	assert.True(t, arr.IsNull(2))
	assert.Equal(t, "dd", arr.ValueStr(3))
	assert.Equal(t, []int32{0, 2, 4, 4, 6}, arr.ValueOffsets())

	arr.AppendString("ee")
	arr.AppendNull()
	assert.Equal(t, 6, arr.Len())
	assert.Equal(t, "ee", arr.ValueStr(4))
	assert.True(t, arr.IsNull(5))
}

func TestStringInsertFrom(t *testing.T) {
	mem := memory.NewGoAllocator()

	dst := array.NewStringArray(mem, strvals("x", "y"))
	defer dst.Release()
	src := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("long-enough-value"),
		sparrow.NullOf[string](),
	})
	defer src.Release()

	array.InsertFrom(dst, 1, src, 0, 2)
	assert.Equal(t, 4, dst.Len())
	assert.Equal(t, "x", dst.ValueStr(0))
	assert.Equal(t, "long-enough-value", dst.ValueStr(1))
	assert.True(t, dst.IsNull(2))
	assert.Equal(t, "y", dst.ValueStr(3))
}

func TestStringErase(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewStringArray(mem, strvals("one", "two", "three", "four"))
	defer arr.Release()

	array.Erase(arr, 1, 2)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, "one", arr.ValueStr(0))
	assert.Equal(t, "four", arr.ValueStr(1))
	assert.Equal(t, []int32{0, 3, 7}, arr.ValueOffsets())
}

func TestStringResize(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewStringArray(mem, strvals("ab"))
	defer arr.Release()

	array.Resize(arr, 3)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 2, arr.NullN())
	assert.Equal(t, []int32{0, 2, 2, 2}, arr.ValueOffsets())
	assert.Zero(t, arr.ValueLen(1))
}

func TestStringMarshalJSON(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("a"),
		sparrow.NullOf[string](),
	})
	defer arr.Release()

	b, err := arr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["a", null]`, string(b))
}
