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

package memory

import "sync/atomic"

// CheckedAllocator wraps an allocator and tracks the number of live bytes,
// so tests can assert that every allocation was handed back.
type CheckedAllocator struct {
	mem Allocator
	sz  int64
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

func (a *CheckedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	atomic.AddInt64(&a.sz, int64(size))
	return a.mem.Allocate(size)
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	atomic.AddInt64(&a.sz, int64(size-len(b)))
	return a.mem.Reallocate(size, b)
}

func (a *CheckedAllocator) Free(b []byte) {
	atomic.AddInt64(&a.sz, int64(-len(b)))
	a.mem.Free(b)
}

// TestingT is the interface of *testing.T the checked allocator needs.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize reports a test error when the number of live bytes differs
// from sz.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()
	if cur := a.CurrentAlloc(); cur != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
	}
}

var _ Allocator = (*CheckedAllocator)(nil)
