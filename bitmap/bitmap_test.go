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

package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/man-group/sparrow-sub000/bitmap"
	"github.com/man-group/sparrow-sub000/bitutil"
	"github.com/man-group/sparrow-sub000/memory"
)

func TestNewFromBools(t *testing.T) {
	mem := memory.NewGoAllocator()

	bm := bitmap.NewFromBools(mem, []bool{true, false, true, true, false})
	defer bm.Buffer().Release()

	assert.Equal(t, 5, bm.Len())
	assert.Equal(t, 2, bm.NullN())
	assert.Equal(t, []bool{true, false, true, true, false}, bm.Bools())
}

func TestGetSet(t *testing.T) {
	mem := memory.NewGoAllocator()

	bm := bitmap.NewFromBools(mem, []bool{true, true, true})
	defer bm.Buffer().Release()

	bm.Set(1, false)
	assert.False(t, bm.Get(1))
	assert.Equal(t, 1, bm.NullN())

	bm.Set(1, true)
	assert.True(t, bm.Get(1))
	assert.Zero(t, bm.NullN())
}

func TestInsert(t *testing.T) {
	mem := memory.NewGoAllocator()

	bm := bitmap.NewFromBools(mem, []bool{true, false})
	defer bm.Buffer().Release()

	bm.Insert(1, []bool{false, true})
	assert.Equal(t, []bool{true, false, true, false}, bm.Bools())
	assert.Equal(t, 2, bm.NullN())

	bm.Insert(4, []bool{true})
	assert.Equal(t, []bool{true, false, true, false, true}, bm.Bools())
	assert.Equal(t, 2, bm.NullN())

	bm.Insert(0, []bool{false})
	assert.Equal(t, []bool{false, true, false, true, false, true}, bm.Bools())
	assert.Equal(t, 3, bm.NullN())
}

func TestInsertCrossesBytes(t *testing.T) {
	mem := memory.NewGoAllocator()

	vals := make([]bool, 12)
	for i := range vals {
		vals[i] = i%2 == 0
	}
	bm := bitmap.NewFromBools(mem, vals)
	defer bm.Buffer().Release()

	bm.Insert(7, []bool{false, false, false})
	want := append(append(append([]bool{}, vals[:7]...), false, false, false), vals[7:]...)
	assert.Equal(t, want, bm.Bools())
	assert.Equal(t, 9, bm.NullN())
}

func TestErase(t *testing.T) {
	mem := memory.NewGoAllocator()

	bm := bitmap.NewFromBools(mem, []bool{true, false, false, true, true})
	defer bm.Buffer().Release()

	bm.Erase(1, 2)
	assert.Equal(t, []bool{true, true, true}, bm.Bools())
	assert.Zero(t, bm.NullN())

	bm.Erase(0, 3)
	assert.Zero(t, bm.Len())
}

func TestResize(t *testing.T) {
	mem := memory.NewGoAllocator()

	bm := bitmap.NewFromBools(mem, []bool{true})
	defer bm.Buffer().Release()

	bm.Resize(4, false)
	assert.Equal(t, []bool{true, false, false, false}, bm.Bools())
	assert.Equal(t, 3, bm.NullN())

	bm.Resize(2, false)
	assert.Equal(t, []bool{true, false}, bm.Bools())
	assert.Equal(t, 1, bm.NullN())
}

func TestNewSlicedWithinByte(t *testing.T) {
	mem := memory.NewGoAllocator()

	buf := memory.NewResizableBuffer(mem)
	defer buf.Release()
	buf.Resize(1)
	buf.Bytes()[0] = 0xFF

	bm := bitmap.New(mem, buf, 1, 2)
	assert.Equal(t, 0, bm.NullN())
	assert.True(t, bm.Get(0))
	assert.True(t, bm.Get(1))

	bitutil.ClearBit(buf.Bytes(), 2)
	bm = bitmap.New(mem, buf, 1, 2)
	assert.Equal(t, 1, bm.NullN())
}

func TestNilBufferAllValid(t *testing.T) {
	mem := memory.NewGoAllocator()

	// a nil buffer means every element is valid until a false bit is
	// written
	bm := bitmap.Wrap(mem, nil, 0, 3, 0)
	assert.True(t, bm.Get(0))
	assert.Zero(t, bm.NullN())

	bm.Insert(1, []bool{false})
	assert.Equal(t, []bool{true, false, true, true}, bm.Bools())
	assert.Equal(t, 1, bm.NullN())
	bm.Buffer().Release()
}
