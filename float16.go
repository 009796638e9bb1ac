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
	"math"
	"strconv"
)

// Float16 is a IEEE 754 half-precision value stored as its raw 16 bits.
// Only conversion and formatting are provided here; arithmetic is out of
// scope.
type Float16 uint16

// Float16FromFloat32 converts f to the nearest representable half-precision
// value.
func Float16FromFloat32(f float32) Float16 {
	b := math.Float32bits(f)
	sn := uint16((b >> 31) & 0x1)
	exp := (b >> 23) & 0xff
	res := int16(exp) - 127 + 15
	fc := uint16(b>>13) & 0x3ff
	switch {
	case exp == 0:
		res = 0
	case exp == 0xff:
		res = 0x1f
	case res > 0x1e:
		res = 0x1f
		fc = 0
	case res < 0x01:
		res = 0
		fc = 0
	}
	return Float16((sn << 15) | uint16(res)<<10 | fc)
}

// Float32 expands the half-precision value to float32.
func (f Float16) Float32() float32 {
	sn := uint32((f >> 15) & 0x1)
	exp := (f >> 10) & 0x1f
	res := uint32(exp) + 127 - 15
	fc := uint32(f & 0x3ff)
	switch {
	case exp == 0:
		res = 0
	case exp == 0x1f:
		res = 0xff
	}
	return math.Float32frombits((sn << 31) | (res << 23) | (fc << 13))
}

func (f Float16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}
