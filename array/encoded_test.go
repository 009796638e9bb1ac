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

func TestNewRunEndEncodedFromLengths(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, strvals("x", "y"))
	defer values.Release()

	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{3, 2})
	defer arr.Release()

	assert.Equal(t, 5, arr.Len())
	assert.Zero(t, arr.NullN())
	assert.Equal(t, sparrow.RUN_END_ENCODED, arr.DataType().ID())
	assert.Equal(t, 2, arr.NumRuns())

	ends := arr.RunEndsArr().(*array.Int32)
	assert.Equal(t, []int32{3, 5}, ends.Values())

	assert.Equal(t, 0, arr.GetPhysicalIndex(0))
	assert.Equal(t, 0, arr.GetPhysicalIndex(2))
	assert.Equal(t, 1, arr.GetPhysicalIndex(3))
	assert.Equal(t, 1, arr.GetPhysicalIndex(4))
}

func TestRunEndEncodedNullRuns(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("x"),
		sparrow.NullOf[string](),
	})
	defer values.Release()

	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{2, 3})
	defer arr.Release()

	assert.Equal(t, 5, arr.Len())
	assert.Equal(t, 3, arr.NullN())
	assert.True(t, arr.IsValid(1))
	assert.True(t, arr.IsNull(2))
	assert.True(t, arr.IsNull(4))
}

func TestRunEndEncodedInsertSplitsRun(t *testing.T) {
	mem := memory.NewGoAllocator()

	dstValues := array.NewStringArray(mem, strvals("x", "y"))
	defer dstValues.Release()
	dst := array.NewRunEndEncodedFromLengths(mem, dstValues, []int32{3, 2})
	defer dst.Release()

	srcValues := array.NewStringArray(mem, strvals("z"))
	defer srcValues.Release()
	src := array.NewRunEndEncodedFromLengths(mem, srcValues, []int32{1})
	defer src.Release()

	array.InsertFrom(dst, 1, src, 0, 1)
	assert.Equal(t, 6, dst.Len())

	// the covering run is split, the inserted row gets its own run
	ends := dst.RunEndsArr().(*array.Int32)
	assert.Equal(t, []int32{1, 2, 4, 6}, ends.Values())

	vals := dst.Values().(*array.String)
	assert.Equal(t, "x", vals.ValueStr(0))
	assert.Equal(t, "z", vals.ValueStr(1))
	assert.Equal(t, "x", vals.ValueStr(2))
	assert.Equal(t, "y", vals.ValueStr(3))
}

func TestRunEndEncodedInsertAtRunBoundary(t *testing.T) {
	mem := memory.NewGoAllocator()

	dstValues := array.NewStringArray(mem, strvals("x", "y"))
	defer dstValues.Release()
	dst := array.NewRunEndEncodedFromLengths(mem, dstValues, []int32{2, 2})
	defer dst.Release()

	srcValues := array.NewStringArray(mem, strvals("z"))
	defer srcValues.Release()
	src := array.NewRunEndEncodedFromLengths(mem, srcValues, []int32{1})
	defer src.Release()

	// no split needed when the position falls on a run edge
	array.InsertFrom(dst, 2, src, 0, 1)
	assert.Equal(t, 5, dst.Len())
	assert.Equal(t, 3, dst.NumRuns())

	ends := dst.RunEndsArr().(*array.Int32)
	assert.Equal(t, []int32{2, 3, 5}, ends.Values())
	assert.Equal(t, "z", dst.Values().(*array.String).ValueStr(1))
}

func TestRunEndEncodedEraseAcrossRuns(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, strvals("x", "y"))
	defer values.Release()
	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{3, 2})
	defer arr.Release()

	array.Erase(arr, 2, 2)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 2, arr.NumRuns())

	ends := arr.RunEndsArr().(*array.Int32)
	assert.Equal(t, []int32{2, 3}, ends.Values())
}

func TestRunEndEncodedEraseDropsRun(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, strvals("x", "y", "z"))
	defer values.Release()
	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{1, 2, 1})
	defer arr.Release()

	// the middle run is fully consumed and disappears
	array.Erase(arr, 1, 2)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 2, arr.NumRuns())

	vals := arr.Values().(*array.String)
	assert.Equal(t, "x", vals.ValueStr(0))
	assert.Equal(t, "z", vals.ValueStr(1))
}

func TestRunEndEncodedResize(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, strvals("x"))
	defer values.Release()
	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{2})
	defer arr.Release()

	array.Resize(arr, 5)
	assert.Equal(t, 5, arr.Len())
	assert.Equal(t, 3, arr.NullN())
	assert.Equal(t, 2, arr.NumRuns())
	assert.True(t, arr.IsNull(4))

	array.Resize(arr, 1)
	assert.Equal(t, 1, arr.Len())
	assert.Zero(t, arr.NullN())
}

func TestRunEndEncodedInt64Ends(t *testing.T) {
	mem := memory.NewGoAllocator()

	ends := array.NewInt64Array(mem, []int64{4}, nil)
	defer ends.Release()
	values := array.NewInt32Array(mem, []int32{7}, nil)
	defer values.Release()

	arr := array.NewRunEndEncodedArray(ends, values, 4)
	defer arr.Release()

	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, 0, arr.GetPhysicalIndex(3))
}

func TestRunEndEncodedIterator(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("x"),
		sparrow.NullOf[string](),
		sparrow.NullableOf("y"),
	})
	defer values.Release()

	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{3, 1, 2})
	defer arr.Release()

	// expanding through the iterator matches per-element lookups
	i := 0
	for it := arr.Iterate(); it.Next(); i++ {
		assert.Equal(t, arr.GetPhysicalIndex(i), it.RunIndex(), "element %d", i)
		assert.Equal(t, arr.IsNull(i), it.IsNull(), "element %d", i)
		assert.Equal(t, array.Element(arr, i), it.Value(), "element %d", i)
	}
	assert.Equal(t, arr.Len(), i)
}

func TestRunEndEncodedIteratorSliced(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, strvals("x", "y", "z"))
	defer values.Release()

	full := array.NewRunEndEncodedFromLengths(mem, values, []int32{2, 2, 2})
	defer full.Release()

	// window [1, 5) starts and ends mid-run
	data := array.NewData(full.DataType(), 4,
		[]*memory.Buffer{nil},
		[]*array.Data{full.RunEndsArr().Data(), full.Values().Data()}, 0, 1)
	defer data.Release()
	arr := array.NewRunEndEncodedData(data)
	defer arr.Release()

	got := make([]interface{}, 0, arr.Len())
	for it := arr.Iterate(); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []interface{}{"x", "y", "y", "z"}, got)
}

func TestRunEndEncodedMarshalJSON(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt32Array(mem, []int32{7, 0}, []bool{true, false})
	defer values.Release()
	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{2, 1})
	defer arr.Release()

	b, err := arr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[7, 7, null]`, string(b))
}
