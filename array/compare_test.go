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

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/array"
	"github.com/man-group/sparrow-sub000/memory"
)

func TestEqualPrimitive(t *testing.T) {
	mem := memory.NewGoAllocator()

	a := array.NewInt32Array(mem, []int32{1, 2, 3}, []bool{true, false, true})
	defer a.Release()
	b := array.NewInt32Array(mem, []int32{1, 99, 3}, []bool{true, false, true})
	defer b.Release()
	c := array.NewInt32Array(mem, []int32{1, 2, 4}, []bool{true, false, true})
	defer c.Release()

	// stale payloads behind nulls do not matter
	assert.True(t, array.Equal(a, b))
	assert.False(t, array.Equal(a, c))
}

func TestEqualTypeMismatch(t *testing.T) {
	mem := memory.NewGoAllocator()

	a := array.NewInt32Array(mem, []int32{1}, nil)
	defer a.Release()
	b := array.NewInt64Array(mem, []int64{1}, nil)
	defer b.Release()

	assert.False(t, array.Equal(a, b))
}

func TestEqualNullMismatch(t *testing.T) {
	mem := memory.NewGoAllocator()

	a := array.NewInt32Array(mem, []int32{1, 2}, []bool{true, false})
	defer a.Release()
	b := array.NewInt32Array(mem, []int32{1, 2}, nil)
	defer b.Release()

	assert.False(t, array.Equal(a, b))
}

func TestEqualNested(t *testing.T) {
	mem := memory.NewGoAllocator()

	v1 := array.NewInt32Array(mem, []int32{1, 2, 3}, nil)
	defer v1.Release()
	a := array.NewListArrayFromSizes(mem, v1, sizevals(2, 1))
	defer a.Release()

	v2 := array.NewInt32Array(mem, []int32{1, 2, 3}, nil)
	defer v2.Release()
	b := array.NewListArrayFromSizes(mem, v2, sizevals(2, 1))
	defer b.Release()

	c := array.NewListArrayFromSizes(mem, v2, sizevals(1, 2))
	defer c.Release()

	assert.True(t, array.Equal(a, b))
	assert.False(t, array.Equal(a, c))
}

func TestSliceEqual(t *testing.T) {
	mem := memory.NewGoAllocator()

	a := array.NewStringArray(mem, strvals("a", "b", "c", "d"))
	defer a.Release()
	b := array.NewStringArray(mem, strvals("b", "c"))
	defer b.Release()

	assert.True(t, array.SliceEqual(a, 1, 3, b, 0, 2))
	assert.False(t, array.SliceEqual(a, 0, 2, b, 0, 2))
	assert.False(t, array.SliceEqual(a, 0, 1, b, 0, 2))
}

func TestEqualAcrossLayouts(t *testing.T) {
	mem := memory.NewGoAllocator()

	// same element sequence through two different encodings
	plain := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("x"),
		sparrow.NullableOf("x"),
		sparrow.NullOf[string](),
	})
	defer plain.Release()

	reeValues := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("x"),
		sparrow.NullOf[string](),
	})
	defer reeValues.Release()
	ree := array.NewRunEndEncodedFromLengths(mem, reeValues, []int32{2, 1})
	defer ree.Release()

	// datatypes differ, so Equal is false, but the element slices agree
	assert.False(t, array.Equal(plain, ree))
	assert.True(t, array.SliceEqual(plain, 0, 3, ree, 0, 3))
}
