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

/*
Package sparrow defines the logical types, schemas and value primitives of a
columnar, typed, nullable in-memory data representation compatible with the
Arrow C data interface: a small number of contiguous buffers plus a
bit-packed validity mask per array, exchangeable zero-copy across process and
language boundaries.

The concrete array layouts and their mutation protocol live in the array
subpackage; raw storage is in memory and bitmap; the C-ABI struct pair and
its import/export live in cdata.

Arrays are safe for concurrent reading. Mutation is single-threaded by
contract: a mutation concurrent with any other access must be serialized by
the caller.
*/
package sparrow
