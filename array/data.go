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

package array

import (
	"sync/atomic"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/bitmap"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// Data is the single owner of the physical storage of one array: its
// buffers, child data, optional dictionary, and the logical window
// (offset, length) into them. It plays the role of the imported/exported
// side of the C data interface struct pair.
//
// The cached null count is recomputed only by the bitmap mutators.
type Data struct {
	refCount   int64
	dtype      sparrow.DataType
	nullN      int
	length     int
	offset     int
	buffers    []*memory.Buffer
	childData  []*Data
	dictionary *Data
	mem        memory.Allocator
}

// NewData creates a new Data from the given buffers and children, retaining
// all of them.
func NewData(dtype sparrow.DataType, length int, buffers []*memory.Buffer, childData []*Data, nulls, offset int) *Data {
	for _, b := range buffers {
		if b != nil {
			b.Retain()
		}
	}
	for _, child := range childData {
		if child != nil {
			child.Retain()
		}
	}

	return &Data{
		refCount:  1,
		dtype:     dtype,
		nullN:     nulls,
		length:    length,
		offset:    offset,
		buffers:   buffers,
		childData: childData,
		mem:       memory.DefaultAllocator,
	}
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (d *Data) Retain() {
	atomic.AddInt64(&d.refCount, 1)
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (d *Data) Release() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "too many releases")

	if atomic.AddInt64(&d.refCount, -1) == 0 {
		for _, b := range d.buffers {
			if b != nil {
				b.Release()
			}
		}
		for _, child := range d.childData {
			child.Release()
		}
		if d.dictionary != nil {
			d.dictionary.Release()
		}
		d.buffers, d.childData, d.dictionary = nil, nil, nil
	}
}

func (d *Data) DataType() sparrow.DataType { return d.dtype }
func (d *Data) NullN() int                 { return d.nullN }
func (d *Data) Len() int                   { return d.length }
func (d *Data) Offset() int                { return d.offset }
func (d *Data) Buffers() []*memory.Buffer  { return d.buffers }
func (d *Data) Children() []*Data          { return d.childData }
func (d *Data) Dictionary() *Data          { return d.dictionary }

// SetDictionary stores dict as the dictionary values of this data, retaining
// it and releasing any previous dictionary.
func (d *Data) SetDictionary(dict *Data) {
	if d.dictionary != nil {
		d.dictionary.Release()
		d.dictionary = nil
	}
	if dict != nil {
		dict.Retain()
		d.dictionary = dict
	}
}

// SetLength updates the logical length. In the mutation protocol this is
// only called after the bitmap and value buffers have both been adjusted.
func (d *Data) SetLength(n int) {
	debug.Assert(n >= 0, "negative length")
	d.length = n
}

// hasValidityBitmap reports whether this layout carries a top-level validity
// bitmap in buffers[0]. Null, run-end-encoded and union layouts do not:
// their element nullness lives elsewhere.
func (d *Data) hasValidityBitmap() bool {
	switch d.dtype.ID() {
	case sparrow.NULL, sparrow.RUN_END_ENCODED, sparrow.SPARSE_UNION, sparrow.DENSE_UNION:
		return false
	}
	return true
}

// validityBitmap wraps the current validity buffer, seeding the maintained
// null count from the cache instead of rescanning.
func (d *Data) validityBitmap(length int) *bitmap.Bitmap {
	return bitmap.Wrap(d.mem, d.buffers[0], d.offset, length, d.nullN)
}

// InsertBitmap inserts the given validity bits at position i of the bitmap,
// shifting subsequent bits, and refreshes the cached null count. The logical
// length is deliberately left untouched.
func (d *Data) InsertBitmap(i int, valid []bool) {
	if !d.hasValidityBitmap() {
		if d.dtype.ID() == sparrow.NULL {
			d.nullN += len(valid)
		}
		return
	}

	bm := d.validityBitmap(d.length)
	bm.Insert(i, valid)
	d.buffers[0] = bm.Buffer()
	d.nullN = bm.NullN()
}

// EraseBitmap removes n bits starting at position i of the bitmap and
// refreshes the cached null count.
func (d *Data) EraseBitmap(i, n int) {
	if !d.hasValidityBitmap() {
		if d.dtype.ID() == sparrow.NULL {
			d.nullN -= n
		}
		return
	}

	bm := d.validityBitmap(d.length)
	bm.Erase(i, n)
	d.buffers[0] = bm.Buffer()
	d.nullN = bm.NullN()
}

// ResizeBitmap grows or shrinks the bitmap to n bits, filling new bits with
// value, and refreshes the cached null count.
func (d *Data) ResizeBitmap(n int, value bool) {
	if !d.hasValidityBitmap() {
		if d.dtype.ID() == sparrow.NULL {
			d.nullN = n
		}
		return
	}

	bm := d.validityBitmap(d.length)
	bm.Resize(n, value)
	d.buffers[0] = bm.Buffer()
	d.nullN = bm.NullN()
}

// SetValid flips the validity of element i. Clearing validity intentionally
// leaves the element's payload untouched, so a null may carry a stale value.
func (d *Data) SetValid(i int, valid bool) {
	debug.Assert(i >= 0 && i < d.length, "index out of range")
	if !d.hasValidityBitmap() {
		return
	}
	bm := d.validityBitmap(d.length)
	bm.Set(i, valid)
	d.buffers[0] = bm.Buffer()
	d.nullN = bm.NullN()
}

// IsValid reports whether element i is valid according to the top-level
// bitmap. Layouts whose nullness lives elsewhere override this at the array
// level.
func (d *Data) IsValid(i int) bool {
	debug.Assert(i >= 0 && i < d.length, "index out of range")
	if d.dtype.ID() == sparrow.NULL {
		return false
	}
	if len(d.buffers) == 0 || d.buffers[0] == nil {
		return true
	}
	return d.validityBitmap(d.length).Get(i)
}

// Clone deep-copies the data: fresh resizable buffers, recursively cloned
// children and dictionary. The clone shares nothing with the source.
func (d *Data) Clone() *Data {
	buffers := make([]*memory.Buffer, len(d.buffers))
	for i, b := range d.buffers {
		if b == nil {
			continue
		}
		nb := memory.NewResizableBuffer(d.mem)
		nb.Resize(b.Len())
		copy(nb.Bytes(), b.Bytes())
		buffers[i] = nb
	}

	children := make([]*Data, len(d.childData))
	for i, child := range d.childData {
		children[i] = child.Clone()
		defer children[i].Release()
	}

	out := NewData(d.dtype, d.length, buffers, children, d.nullN, d.offset)
	for _, b := range buffers {
		if b != nil {
			b.Release()
		}
	}
	if d.dictionary != nil {
		dict := d.dictionary.Clone()
		out.SetDictionary(dict)
		dict.Release()
	}
	return out
}
