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
	"fmt"
	"sync/atomic"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/bitutil"
	"github.com/man-group/sparrow-sub000/internal/debug"
)

// Array is the generic, read-only interface satisfied by every concrete
// layout.
type Array interface {
	fmt.Stringer

	// DataType returns the logical type of the array.
	DataType() sparrow.DataType

	// Data returns the underlying storage of the array.
	Data() *Data

	// Len returns the number of elements in the array.
	Len() int

	// NullN returns the number of null elements.
	NullN() int

	// IsNull reports whether element i is null.
	IsNull(i int) bool

	// IsValid reports whether element i is valid (non-null).
	IsValid(i int) bool

	Retain()
	Release()

	getOneForMarshal(i int) interface{}
}

// arraymarshal is how composite layouts reach a child's element rendering
// without knowing its concrete type.
type arraymarshal interface {
	getOneForMarshal(i int) interface{}
}

// array is the common read-only behavior embedded in every layout: length,
// offset-adjusted indexing and validity checks against a cached view of the
// bitmap buffer.
type array struct {
	refCount        int64
	data            *Data
	nullBitmapBytes []byte
}

// setData rebinds the base to data and refreshes the cached bitmap bytes.
// Layout update() hooks call this again after mutations that may have
// reallocated buffers.
func (a *array) setData(data *Data) {
	if a.data != data {
		data.Retain()
		if a.data != nil {
			a.data.Release()
		}
		a.data = data
	}
	if len(data.buffers) > 0 && data.buffers[0] != nil {
		a.nullBitmapBytes = data.buffers[0].Bytes()
	} else {
		a.nullBitmapBytes = nil
	}
}

func (a *array) DataType() sparrow.DataType { return a.data.dtype }
func (a *array) Data() *Data                { return a.data }
func (a *array) Len() int                   { return a.data.length }
func (a *array) NullN() int                 { return a.data.nullN }
func (a *array) Offset() int                { return a.data.offset }

func (a *array) IsNull(i int) bool { return !a.IsValid(i) }

func (a *array) IsValid(i int) bool {
	debug.Assert(i >= 0 && i < a.data.length, "index out of range")
	if a.nullBitmapBytes == nil {
		return true
	}
	return bitutil.BitIsSet(a.nullBitmapBytes, a.data.offset+i)
}

func (a *array) Retain() {
	atomic.AddInt64(&a.refCount, 1)
}

func (a *array) Release() {
	debug.Assert(atomic.LoadInt64(&a.refCount) > 0, "too many releases")

	if atomic.AddInt64(&a.refCount, -1) == 0 {
		a.data.Release()
		a.data, a.nullBitmapBytes = nil, nil
	}
}
