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

package sparrow

import (
	"fmt"
	"math/big"
)

// Decimal128 is a 128-bit fixed-point value stored as two little-endian
// words. Storage and formatting only; decimal arithmetic is out of scope.
type Decimal128 struct {
	lo uint64
	hi int64
}

// NewDecimal128 constructs a value from its high and low words.
func NewDecimal128(hi int64, lo uint64) Decimal128 {
	return Decimal128{lo: lo, hi: hi}
}

// Decimal128FromI64 constructs a value from an int64.
func Decimal128FromI64(v int64) Decimal128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Decimal128{lo: uint64(v), hi: hi}
}

func (n Decimal128) LowBits() uint64 { return n.lo }
func (n Decimal128) HighBits() int64 { return n.hi }
func (n Decimal128) Sign() int {
	if n.lo == 0 && n.hi == 0 {
		return 0
	}
	if n.hi < 0 {
		return -1
	}
	return 1
}

// BigInt returns the value as an arbitrary precision integer.
func (n Decimal128) BigInt() *big.Int {
	hi := new(big.Int).SetInt64(n.hi)
	hi.Lsh(hi, 64)
	return hi.Add(hi, new(big.Int).SetUint64(n.lo))
}

func (n Decimal128) String() string { return n.BigInt().String() }

// Decimal256 is a 256-bit fixed-point value stored as four little-endian
// 64-bit words.
type Decimal256 struct {
	words [4]uint64
}

// NewDecimal256 constructs a value from its four little-endian words.
func NewDecimal256(w0, w1, w2, w3 uint64) Decimal256 {
	return Decimal256{words: [4]uint64{w0, w1, w2, w3}}
}

// Decimal256FromI64 constructs a value from an int64.
func Decimal256FromI64(v int64) Decimal256 {
	var ext uint64
	if v < 0 {
		ext = ^uint64(0)
	}
	return Decimal256{words: [4]uint64{uint64(v), ext, ext, ext}}
}

func (n Decimal256) Words() [4]uint64 { return n.words }

// BigInt returns the value as an arbitrary precision integer.
func (n Decimal256) BigInt() *big.Int {
	out := new(big.Int).SetInt64(int64(n.words[3]))
	for i := 2; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Add(out, new(big.Int).SetUint64(n.words[i]))
	}
	return out
}

func (n Decimal256) String() string { return n.BigInt().String() }

var (
	_ fmt.Stringer = Decimal128{}
	_ fmt.Stringer = Decimal256{}
)
