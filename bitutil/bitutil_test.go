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

package bitutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/man-group/sparrow-sub000/bitutil"
)

func TestBitIsSet(t *testing.T) {
	buf := []byte{0b10100101, 0b00000001}
	set := []int{0, 2, 5, 7, 8}

	got := make([]int, 0, len(set))
	for i := 0; i < 16; i++ {
		if bitutil.BitIsSet(buf, i) {
			got = append(got, i)
		}
	}
	assert.Equal(t, set, got)
}

func TestSetClearBit(t *testing.T) {
	buf := make([]byte, 2)
	for _, i := range []int{0, 3, 9, 15} {
		bitutil.SetBit(buf, i)
	}
	assert.Equal(t, []byte{0b00001001, 0b10000010}, buf)

	bitutil.ClearBit(buf, 3)
	bitutil.SetBitTo(buf, 15, false)
	bitutil.SetBitTo(buf, 1, true)
	assert.Equal(t, []byte{0b00000011, 0b00000010}, buf)
}

func TestCountSetBits(t *testing.T) {
	tests := []struct {
		buf    []byte
		offset int
		n      int
		want   int
	}{
		{[]byte{0xFF}, 0, 8, 8},
		{[]byte{0xFF}, 3, 5, 5},
		{[]byte{0x00}, 0, 8, 0},
		{[]byte{0b10100101}, 0, 8, 4},
		{[]byte{0b10100101}, 1, 6, 2},
		{[]byte{0xFF, 0xFF, 0xFF, 0x0F}, 0, 28, 28},
		{[]byte{0xFF, 0x00, 0xFF, 0x0F}, 4, 20, 12},
		// ranges confined to a single byte at a nonzero offset
		{[]byte{0xFF}, 1, 2, 2},
		{[]byte{0xFF}, 5, 1, 1},
		{[]byte{0b01000010}, 1, 3, 1},
		{[]byte{0b01000010}, 2, 5, 1},
		{[]byte{0x00, 0xFF}, 9, 3, 3},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("offset=%d n=%d", tc.offset, tc.n), func(t *testing.T) {
			assert.Equal(t, tc.want, bitutil.CountSetBits(tc.buf, tc.offset, tc.n))
		})
	}
}

func TestCountSetBitsLong(t *testing.T) {
	// long enough to exercise the word-at-a-time path
	buf := make([]byte, 128)
	want := 0
	for i := 0; i < len(buf)*8; i += 3 {
		bitutil.SetBit(buf, i)
		want++
	}
	assert.Equal(t, want, bitutil.CountSetBits(buf, 0, len(buf)*8))
	assert.Equal(t, want-1, bitutil.CountSetBits(buf, 1, len(buf)*8-1))
}

func TestSetBitsTo(t *testing.T) {
	buf := make([]byte, 4)
	bitutil.SetBitsTo(buf, 3, 10, true)
	for i := 0; i < 32; i++ {
		assert.Equal(t, i >= 3 && i < 13, bitutil.BitIsSet(buf, i), "bit %d", i)
	}

	bitutil.SetBitsTo(buf, 5, 4, false)
	for i := 0; i < 32; i++ {
		want := (i >= 3 && i < 5) || (i >= 9 && i < 13)
		assert.Equal(t, want, bitutil.BitIsSet(buf, i), "bit %d", i)
	}
}

func TestCopyBitmap(t *testing.T) {
	src := []byte{0b10110100, 0b00000111}
	dst := make([]byte, 2)
	bitutil.CopyBitmap(src, 2, 9, dst, 1)
	for i := 0; i < 9; i++ {
		assert.Equal(t, bitutil.BitIsSet(src, 2+i), bitutil.BitIsSet(dst, 1+i), "bit %d", i)
	}
}

func TestBytesForBits(t *testing.T) {
	assert.EqualValues(t, 0, bitutil.BytesForBits(0))
	assert.EqualValues(t, 1, bitutil.BytesForBits(1))
	assert.EqualValues(t, 1, bitutil.BytesForBits(8))
	assert.EqualValues(t, 2, bitutil.BytesForBits(9))
}
