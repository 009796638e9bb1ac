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

// WrapMode states how a Wrapper relates to the array it holds.
type WrapMode int8

const (
	// OwnedMode means the wrapper holds the only reference and may
	// mutate the array freely.
	OwnedMode WrapMode = iota
	// SharedMode means the wrapper holds one reference among several.
	SharedMode
	// BorrowedMode means someone else owns the array and its reference
	// count; the wrapper must not release it.
	BorrowedMode
)

func (m WrapMode) String() string {
	switch m {
	case OwnedMode:
		return "owned"
	case SharedMode:
		return "shared"
	case BorrowedMode:
		return "borrowed"
	}
	return "invalid"
}

// Wrapper pairs an array with the ownership the holder has over it, so
// composite structures can hold children they own next to children they
// merely reference.
type Wrapper struct {
	mode WrapMode
	arr  Array
}

// Own wraps a, taking over the caller's reference. The caller must not
// release a afterwards.
func Own(a Array) Wrapper {
	return Wrapper{mode: OwnedMode, arr: a}
}

// Share wraps a with shared ownership, adding a reference.
func Share(a Array) Wrapper {
	a.Retain()
	return Wrapper{mode: SharedMode, arr: a}
}

// Borrow wraps a without touching its reference count. The wrapped array
// must outlive the wrapper.
func Borrow(a Array) Wrapper {
	return Wrapper{mode: BorrowedMode, arr: a}
}

// Get returns the wrapped array.
func (w Wrapper) Get() Array { return w.arr }

// Mode returns how the wrapper relates to the array.
func (w Wrapper) Mode() WrapMode { return w.mode }

// DataType returns the datatype of the wrapped array.
func (w Wrapper) DataType() sparrow.DataType { return w.arr.DataType() }

// IsDictionary reports whether the wrapped array is dictionary encoded.
func (w Wrapper) IsDictionary() bool {
	return w.arr.DataType().ID() == sparrow.DICTIONARY
}

// Mutable returns the wrapped array as a mutable layout. Only owned
// wrappers may mutate.
func (w Wrapper) Mutable() MutableArray {
	debug.Assert(w.mode == OwnedMode, "mutating through a non-owning wrapper")
	return w.arr.(MutableArray)
}

// Clone copies the wrapper. An owned array is deep-copied so the clone is
// independently mutable; shared and borrowed wrappers alias the same array,
// adding a reference in the shared case.
func (w Wrapper) Clone() Wrapper {
	switch w.mode {
	case OwnedMode:
		data := w.arr.Data().Clone()
		defer data.Release()
		return Wrapper{mode: OwnedMode, arr: MakeFromData(data)}
	case SharedMode:
		return Share(w.arr)
	default:
		return Wrapper{mode: BorrowedMode, arr: w.arr}
	}
}

// Release drops the wrapper's reference where it holds one.
func (w Wrapper) Release() {
	if w.mode != BorrowedMode {
		w.arr.Release()
	}
}
