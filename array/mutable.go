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
	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/internal/debug"
)

// MutableArray is implemented by every layout that supports structural
// mutation. The unexported methods adjust value storage only; validity and
// length bookkeeping is owned by the protocol functions below, which are the
// single place the ordering rules live.
type MutableArray interface {
	Array

	// insertValuesFrom inserts the value payloads of rows [beg, end) of
	// src at position pos, shifting subsequent values. src has the same
	// layout as the receiver. Validity and length are not touched.
	insertValuesFrom(pos int, src Array, beg, end int)

	// eraseValues removes the value payloads of n rows starting at pos.
	eraseValues(pos, n int)

	// resizeValues grows the value storage with zero/empty rows up to n,
	// or truncates it down to n.
	resizeValues(n int)

	// update refreshes any cached views into buffers that the preceding
	// value mutation may have reallocated.
	update()
}

// InsertFrom inserts rows [beg, end) of src into dst at position pos.
// src must have the same layout (data type) as dst.
//
// The steps run in a fixed order: validity bits first, then value storage,
// then the logical length, then the cache refresh. Length must come last
// because bitmap and value accessors bound iteration by the current length;
// bumping it earlier would expose ranges larger than their backing storage.
// A panic out of the value step leaves the bitmap already grown and the
// length not yet updated: there is no rollback, the array is then
// inconsistent and must be discarded.
func InsertFrom(dst MutableArray, pos int, src Array, beg, end int) {
	debug.Assert(pos >= 0 && pos <= dst.Len(), "insert position out of range")
	debug.Assert(beg >= 0 && beg <= end && end <= src.Len(), "source range out of bounds")
	debug.Assert(sparrow.TypeEqual(dst.DataType(), src.DataType()), "layout mismatch between source and destination")

	n := end - beg
	if n == 0 {
		return
	}

	valid := make([]bool, n)
	for i := range valid {
		valid[i] = src.IsValid(beg + i)
	}

	data := dst.Data()
	data.InsertBitmap(pos, valid)
	dst.insertValuesFrom(pos, src, beg, end)
	data.SetLength(data.Len() + n)
	dst.update()
}

// Erase removes n rows from dst starting at pos. It is the mirror of
// InsertFrom and follows the same ordering rules.
func Erase(dst MutableArray, pos, n int) {
	debug.Assert(pos >= 0 && n >= 0 && pos+n <= dst.Len(), "erase range out of bounds")

	if n == 0 {
		return
	}

	data := dst.Data()
	data.EraseBitmap(pos, n)
	dst.eraseValues(pos, n)
	data.SetLength(data.Len() - n)
	dst.update()
}

// PushBackFrom appends row i of src to dst.
func PushBackFrom(dst MutableArray, src Array, i int) {
	InsertFrom(dst, dst.Len(), src, i, i+1)
}

// PopBack removes the last row of dst.
func PopBack(dst MutableArray) {
	Erase(dst, dst.Len()-1, 1)
}

// Resize grows dst with null rows, or shrinks it by truncation, to exactly
// n rows.
func Resize(dst MutableArray, n int) {
	debug.Assert(n >= 0, "resize to negative length")

	cur := dst.Len()
	switch {
	case n < cur:
		Erase(dst, n, cur-n)
	case n > cur:
		data := dst.Data()
		data.ResizeBitmap(n, false)
		dst.resizeValues(n)
		data.SetLength(n)
		dst.update()
	}
}

// typedLayout is the extra surface of the flat layouts whose rows are single
// Go values: primitives, booleans, byte strings, decimals.
type typedLayout[T any] interface {
	MutableArray
	insertRaw(pos int, vals []T)
}

// insertTyped runs the mutation protocol for a typed value slice instead of
// a source array.
func insertTyped[T any](a typedLayout[T], pos int, vals []sparrow.Nullable[T]) {
	debug.Assert(pos >= 0 && pos <= a.Len(), "insert position out of range")

	if len(vals) == 0 {
		return
	}

	data := a.Data()
	data.InsertBitmap(pos, sparrow.ValidityOf(vals))
	a.insertRaw(pos, sparrow.ValuesOf(vals))
	data.SetLength(data.Len() + len(vals))
	a.update()
}
