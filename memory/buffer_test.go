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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/man-group/sparrow-sub000/memory"
)

func TestNewResizableBuffer(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	buf := memory.NewResizableBuffer(mem)
	exp := 10
	buf.Resize(exp)
	assert.NotNil(t, buf.Bytes())
	assert.Equal(t, exp, len(buf.Bytes()))
	assert.Equal(t, exp, buf.Len())

	buf.Release()
	assert.Nil(t, buf.Bytes())
	assert.Zero(t, buf.Len())
	mem.AssertSize(t, 0)
}

func TestBufferResizeShrink(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	buf := memory.NewResizableBuffer(mem)
	buf.Resize(64)
	copy(buf.Bytes(), "some leading data")
	buf.Resize(0)
	assert.Zero(t, buf.Len())

	buf.Resize(8)
	assert.Equal(t, 8, buf.Len())
	buf.Release()
	mem.AssertSize(t, 0)
}

func TestBufferInsert(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	buf := memory.NewResizableBuffer(mem)
	buf.Resize(4)
	copy(buf.Bytes(), "abef")

	buf.Insert(2, []byte("cd"))
	assert.Equal(t, 6, buf.Len())
	assert.Equal(t, "abcdef", string(buf.Bytes()))

	buf.Insert(6, []byte("gh"))
	assert.Equal(t, "abcdefgh", string(buf.Bytes()))

	buf.Insert(0, []byte("__"))
	assert.Equal(t, "__abcdefgh", string(buf.Bytes()))

	buf.Release()
	mem.AssertSize(t, 0)
}

func TestBufferErase(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	buf := memory.NewResizableBuffer(mem)
	buf.Resize(6)
	copy(buf.Bytes(), "abcdef")

	buf.Erase(1, 2)
	assert.Equal(t, "adef", string(buf.Bytes()))

	buf.Erase(2, 2)
	assert.Equal(t, "ad", string(buf.Bytes()))

	buf.Erase(0, 2)
	assert.Zero(t, buf.Len())

	buf.Release()
	mem.AssertSize(t, 0)
}

func TestBufferExtract(t *testing.T) {
	mem := memory.NewGoAllocator()

	buf := memory.NewResizableBuffer(mem)
	buf.Resize(3)
	copy(buf.Bytes(), "xyz")

	out := buf.Extract()
	assert.Equal(t, "xyz", string(out))
	assert.Zero(t, buf.Len())
	assert.Nil(t, buf.Bytes())
	buf.Release()
}

func TestNewBufferBytes(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	buf := memory.NewBufferBytes(raw)
	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, raw, buf.Bytes())
	buf.Release()
}
