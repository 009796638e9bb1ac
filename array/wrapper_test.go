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

func TestWrapperOwn(t *testing.T) {
	mem := memory.NewGoAllocator()

	w := array.Own(array.NewInt32Array(mem, []int32{1, 2}, nil))
	defer w.Release()

	assert.Equal(t, array.OwnedMode, w.Mode())
	assert.Equal(t, 2, w.Get().Len())
	assert.True(t, sparrow.TypeEqual(sparrow.PrimitiveTypes.Int32, w.DataType()))
	assert.False(t, w.IsDictionary())

	array.Resize(w.Mutable(), 3)
	assert.Equal(t, 3, w.Get().Len())
}

func TestWrapperOwnCloneIsIndependent(t *testing.T) {
	mem := memory.NewGoAllocator()

	w := array.Own(array.NewInt32Array(mem, []int32{1, 2}, nil))
	defer w.Release()

	c := w.Clone()
	defer c.Release()
	assert.Equal(t, array.OwnedMode, c.Mode())
	assert.True(t, array.Equal(w.Get(), c.Get()))

	// mutating the clone leaves the original alone
	array.Resize(c.Mutable(), 5)
	assert.Equal(t, 5, c.Get().Len())
	assert.Equal(t, 2, w.Get().Len())
}

func TestWrapperShareCloneAliases(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewInt32Array(mem, []int32{1, 2}, nil)
	defer arr.Release()

	w := array.Share(arr)
	defer w.Release()
	assert.Equal(t, array.SharedMode, w.Mode())

	c := w.Clone()
	assert.Equal(t, array.SharedMode, c.Mode())
	assert.Same(t, w.Get().Data(), c.Get().Data())
	c.Release()
}

func TestWrapperBorrow(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewInt32Array(mem, []int32{7}, nil)
	defer arr.Release()

	w := array.Borrow(arr)
	assert.Equal(t, array.BorrowedMode, w.Mode())
	assert.Equal(t, int32(7), w.Get().(*array.Int32).Value(0))

	c := w.Clone()
	assert.Equal(t, array.BorrowedMode, c.Mode())

	// releasing borrowed wrappers must not drop the owner's reference
	w.Release()
	c.Release()
	assert.Equal(t, 1, arr.Len())
}

func TestWrapModeString(t *testing.T) {
	assert.Equal(t, "owned", array.OwnedMode.String())
	assert.Equal(t, "shared", array.SharedMode.String())
	assert.Equal(t, "borrowed", array.BorrowedMode.String())
	assert.Equal(t, "invalid", array.WrapMode(9).String())
}

func TestWrapperDictionary(t *testing.T) {
	mem := memory.NewGoAllocator()

	w := array.Own(array.DictionaryFromStrings(mem, strvals("a", "b", "a")))
	defer w.Release()

	assert.True(t, w.IsDictionary())
	assert.Equal(t, sparrow.DICTIONARY, w.DataType().ID())
}

func TestWrapperNested(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("a"),
		sparrow.NullableOf("b"),
	})
	defer values.Release()
	list := array.NewListArrayFromSizes(mem, values, sizevals(1, 1))

	w := array.Own(list)
	defer w.Release()

	c := w.Clone()
	defer c.Release()

	array.PopBack(c.Mutable())
	assert.Equal(t, 1, c.Get().Len())
	assert.Equal(t, 2, w.Get().Len())
}
