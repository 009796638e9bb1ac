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

// Package cdata moves arrays across ownership boundaries through a pair of
// structs mirroring the Arrow C data interface: a schema carrying the
// format string tree and an array carrying raw buffer pointers with a
// release callback. Buffer byte lengths are never transmitted, the
// importing side recomputes them from the format and lengths alone.
package cdata

import "unsafe"

// Schema flags, matching the ARROW_FLAG_* constants of the C interface.
const (
	FlagDictionaryOrdered int64 = 1 << iota
	FlagNullable
	FlagMapKeysSorted
)

// CArrowSchema describes one field: its format string, name, encoded
// metadata and children, plus the dictionary value schema for
// dictionary-encoded fields.
type CArrowSchema struct {
	Format     string
	Name       string
	Metadata   []byte
	Flags      int64
	Children   []*CArrowSchema
	Dictionary *CArrowSchema

	release func()
}

// Release invokes the producer's release callback, once.
func (s *CArrowSchema) Release() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
	for _, c := range s.Children {
		c.Release()
	}
	if s.Dictionary != nil {
		s.Dictionary.Release()
	}
}

// CArrowArray carries the physical side: lengths and raw buffer pointers.
// The producer keeps the memory alive until Release is called.
type CArrowArray struct {
	Length     int64
	NullCount  int64
	Offset     int64
	Buffers    []unsafe.Pointer
	Children   []*CArrowArray
	Dictionary *CArrowArray

	release func()
}

// Release hands the buffers back to the producer, once. Children and the
// dictionary are released with their parent.
func (a *CArrowArray) Release() {
	if a.release != nil {
		a.release()
		a.release = nil
	}
	for _, c := range a.Children {
		c.Release()
	}
	if a.Dictionary != nil {
		a.Dictionary.Release()
	}
}
