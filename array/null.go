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
	"github.com/man-group/sparrow-sub000/memory"
)

// Null is the layout with no buffers at all; every element is null and
// only a length is tracked.
type Null struct {
	array
}

// NewNullData returns a null layout adopting data.
func NewNullData(data *Data) *Null {
	a := &Null{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewNullArray builds a null array of n elements.
func NewNullArray(n int) *Null {
	data := NewData(sparrow.Null, n, []*memory.Buffer{nil}, nil, n, 0)
	defer data.Release()
	return NewNullData(data)
}

func (a *Null) setData(data *Data) {
	a.array.setData(data)
	a.data.nullN = a.data.length
}

func (a *Null) update() { a.setData(a.data) }

func (a *Null) IsNull(i int) bool  { return true }
func (a *Null) IsValid(i int) bool { return false }

// AppendNulls lengthens the array by n null elements.
func (a *Null) AppendNulls(n int) {
	a.data.length += n
	a.data.nullN = a.data.length
}

func (a *Null) insertValuesFrom(pos int, src Array, beg, end int) {}
func (a *Null) eraseValues(pos, n int)                            {}
func (a *Null) resizeValues(n int)                                {}

func (a *Null) getOneForMarshal(i int) interface{} { return nil }

func (a *Null) String() string { return stringOf(a) }

func (a *Null) MarshalJSON() ([]byte, error) { return marshalJSON(a) }

var (
	_ Array        = (*Null)(nil)
	_ MutableArray = (*Null)(nil)
)
