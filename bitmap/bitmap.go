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

// Package bitmap provides a bit-packed validity sequence with a maintained
// null count, supporting insertion and removal at arbitrary positions.
package bitmap

import (
	"github.com/man-group/sparrow-sub000/bitutil"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// Bitmap wraps the validity buffer of an array. Bit i set means element i is
// valid (non-null). A nil underlying buffer means every element is valid.
//
// All positions are logical: the stored offset is applied internally.
type Bitmap struct {
	mem    memory.Allocator
	buf    *memory.Buffer
	offset int
	length int
	nulls  int
}

// New wraps buf as a validity bitmap of length bits starting at the given
// bit offset. The null count is computed once here and maintained
// incrementally afterwards.
func New(mem memory.Allocator, buf *memory.Buffer, offset, length int) *Bitmap {
	b := &Bitmap{mem: mem, buf: buf, offset: offset, length: length}
	b.nulls = b.countNulls()
	return b
}

// Wrap is like New but seeds the maintained null count from a caller-held
// cache instead of rescanning the buffer.
func Wrap(mem memory.Allocator, buf *memory.Buffer, offset, length, nulls int) *Bitmap {
	return &Bitmap{mem: mem, buf: buf, offset: offset, length: length, nulls: nulls}
}

// NewFromBools builds a fresh bitmap from valid, backed by a new resizable
// buffer.
func NewFromBools(mem memory.Allocator, valid []bool) *Bitmap {
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(int(bitutil.BytesForBits(int64(len(valid)))))
	nulls := 0
	for i, v := range valid {
		bitutil.SetBitTo(buf.Bytes(), i, v)
		if !v {
			nulls++
		}
	}
	return &Bitmap{mem: mem, buf: buf, length: len(valid), nulls: nulls}
}

func (b *Bitmap) countNulls() int {
	if b.buf == nil || b.length == 0 {
		return 0
	}
	return b.length - bitutil.CountSetBits(b.buf.Bytes(), b.offset, b.length)
}

// Buffer returns the underlying buffer, which may be nil.
func (b *Bitmap) Buffer() *memory.Buffer { return b.buf }

// Len returns the number of bits in the bitmap.
func (b *Bitmap) Len() int { return b.length }

// NullN returns the maintained count of zero bits.
func (b *Bitmap) NullN() int { return b.nulls }

// Get returns whether bit i is set.
func (b *Bitmap) Get(i int) bool {
	debug.Assert(i >= 0 && i < b.length, "bitmap index out of range")
	if b.buf == nil {
		return true
	}
	return bitutil.BitIsSet(b.buf.Bytes(), b.offset+i)
}

// Set sets bit i to v, keeping the null count current.
func (b *Bitmap) Set(i int, v bool) {
	debug.Assert(i >= 0 && i < b.length, "bitmap index out of range")
	if b.buf == nil {
		if v {
			return
		}
		b.materialize()
	}
	cur := bitutil.BitIsSet(b.buf.Bytes(), b.offset+i)
	if cur == v {
		return
	}
	bitutil.SetBitTo(b.buf.Bytes(), b.offset+i, v)
	if v {
		b.nulls--
	} else {
		b.nulls++
	}
}

// materialize allocates an all-set backing buffer for a bitmap that was
// previously nil (all valid).
func (b *Bitmap) materialize() {
	buf := memory.NewResizableBuffer(b.mem)
	buf.Resize(int(bitutil.BytesForBits(int64(b.offset + b.length))))
	bitutil.SetBitsTo(buf.Bytes(), 0, int64(b.offset+b.length), true)
	b.buf = buf
}

// Insert inserts the given validity bits at position i, shifting all
// subsequent bits towards the end.
func (b *Bitmap) Insert(i int, valid []bool) {
	debug.Assert(i >= 0 && i <= b.length, "bitmap insert position out of range")
	if len(valid) == 0 {
		return
	}
	if b.buf == nil {
		allSet := true
		for _, v := range valid {
			if !v {
				allSet = false
				break
			}
		}
		if allSet {
			b.length += len(valid)
			return
		}
		b.materialize()
	}

	n := len(valid)
	oldEnd := b.offset + b.length
	b.buf.ResizeNoShrink(int(bitutil.BytesForBits(int64(oldEnd + n))))
	bs := b.buf.Bytes()

	for j := oldEnd - 1; j >= b.offset+i; j-- {
		bitutil.SetBitTo(bs, j+n, bitutil.BitIsSet(bs, j))
	}
	for j, v := range valid {
		bitutil.SetBitTo(bs, b.offset+i+j, v)
		if !v {
			b.nulls++
		}
	}
	b.length += n
}

// Erase removes n bits starting at position i, shifting all subsequent bits
// towards the front.
func (b *Bitmap) Erase(i, n int) {
	debug.Assert(i >= 0 && n >= 0 && i+n <= b.length, "bitmap erase range out of bounds")
	if n == 0 {
		return
	}
	if b.buf == nil {
		b.length -= n
		return
	}

	bs := b.buf.Bytes()
	for j := b.offset + i; j < b.offset+b.length-n; j++ {
		bitutil.SetBitTo(bs, j, bitutil.BitIsSet(bs, j+n))
	}
	b.length -= n
	b.nulls = b.countNulls()
}

// Resize grows or shrinks the bitmap to n bits, filling any new bits with
// value.
func (b *Bitmap) Resize(n int, value bool) {
	debug.Assert(n >= 0, "bitmap resize to negative length")
	switch {
	case n > b.length:
		grow := make([]bool, n-b.length)
		for i := range grow {
			grow[i] = value
		}
		b.Insert(b.length, grow)
	case n < b.length:
		b.Erase(n, b.length-n)
	}
}

// Bools expands the bitmap into a boolean slice.
func (b *Bitmap) Bools() []bool {
	out := make([]bool, b.length)
	for i := range out {
		out[i] = b.Get(i)
	}
	return out
}
