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

package bitutil

import (
	"math/bits"
	"unsafe"
)

var (
	BitMask        = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	FlippedBitMask = [8]byte{254, 253, 251, 247, 239, 223, 191, 127}
)

// IsMultipleOf8 returns whether v is a multiple of 8.
func IsMultipleOf8(v int64) bool { return v&7 == 0 }

// CeilByte rounds size up to the next multiple of 8.
func CeilByte(size int) int { return (size + 7) &^ 7 }

// CeilByte64 rounds size up to the next multiple of 8.
func CeilByte64(size int64) int64 { return (size + 7) &^ 7 }

// BytesForBits returns the number of bytes required to store bits bits.
func BytesForBits(bits int64) int64 { return (bits + 7) >> 3 }

// BitIsSet returns true if the bit at index i in buf is set (1).
func BitIsSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) != 0 }

// BitIsNotSet returns true if the bit at index i in buf is not set (0).
func BitIsNotSet(buf []byte, i int) bool { return (buf[uint(i)/8] & BitMask[byte(i)%8]) == 0 }

// SetBit sets the bit at index i in buf to 1.
func SetBit(buf []byte, i int) { buf[uint(i)/8] |= BitMask[byte(i)%8] }

// ClearBit sets the bit at index i in buf to 0.
func ClearBit(buf []byte, i int) { buf[uint(i)/8] &= FlippedBitMask[byte(i)%8] }

// SetBitTo sets the bit at index i in buf to val.
func SetBitTo(buf []byte, i int, val bool) {
	if val {
		SetBit(buf, i)
	} else {
		ClearBit(buf, i)
	}
}

// CountSetBits counts the number of 1's in buf up to n bits.
func CountSetBits(buf []byte, offset, n int) int {
	if offset > 0 {
		return countSetBitsWithOffset(buf, offset, n)
	}

	count := 0

	uint64Bytes := n / 64 * 8
	for _, v := range bytesToUint64(buf[:uint64Bytes]) {
		count += bits.OnesCount64(v)
	}

	for _, v := range buf[uint64Bytes : CeilByte(n)/8] {
		count += bits.OnesCount8(v)
	}

	// Subtract any bits past n that were counted as part of the last byte.
	if rem := n % 8; rem != 0 {
		lastByte := buf[CeilByte(n)/8-1]
		count -= bits.OnesCount8(lastByte >> uint(rem))
	}

	return count
}

func countSetBitsWithOffset(buf []byte, offset, n int) int {
	count := 0

	beg := offset
	end := offset + n

	begU8 := roundUp(beg, 8)

	init := min(n, begU8-beg)
	for i := beg; i < beg+init; i++ {
		if BitIsSet(buf, i) {
			count++
		}
	}

	begBytes := begU8 / 8
	endBytes := end / 8
	for i := begBytes; i < endBytes; i++ {
		count += bits.OnesCount8(buf[i])
	}

	// The leading loop already covered any bits of the last byte that lie
	// before beg+init, so ranges confined to a single byte are not counted
	// twice.
	for i := max(endBytes*8, beg+init); i < end; i++ {
		if BitIsSet(buf, i) {
			count++
		}
	}

	return count
}

func roundUp(v, f int) int {
	return (v + (f - 1)) / f * f
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SetBitsTo sets the bits in the range [offset, offset+length) to the
// given value, preserving the bits on either side of the range.
func SetBitsTo(bits []byte, offset, length int64, areSet bool) {
	if length == 0 {
		return
	}

	var fill byte
	if areSet {
		fill = 0xFF
	}

	beg, end := offset, offset+length
	byteBeg, byteEnd := beg/8, (end+7)/8

	// masks selecting the in-range bits of the first and last byte.
	firstMask := byte(0xFF) &^ precedingBitmask[beg%8]
	lastMask := precedingBitmask[end%8]
	if end%8 == 0 {
		lastMask = 0xFF
	}

	if byteEnd == byteBeg+1 {
		m := firstMask & lastMask
		bits[byteBeg] = (bits[byteBeg] &^ m) | (fill & m)
		return
	}

	bits[byteBeg] = (bits[byteBeg] &^ firstMask) | (fill & firstMask)
	for i := byteBeg + 1; i < byteEnd-1; i++ {
		bits[i] = fill
	}
	bits[byteEnd-1] = (bits[byteEnd-1] &^ lastMask) | (fill & lastMask)
}

var (
	precedingBitmask = [8]byte{0, 1, 3, 7, 15, 31, 63, 127}
)

func bytesToUint64(b []byte) []uint64 {
	if len(b) < 8 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), len(b)/8)
}

// CopyBitmap copies the bitmap indicated by src, starting at bit offset
// srcOffset, and copying length bits into dst, starting at bit offset
// dstOffset.
func CopyBitmap(src []byte, srcOffset, length int, dst []byte, dstOffset int) {
	for i := 0; i < length; i++ {
		SetBitTo(dst, dstOffset+i, BitIsSet(src, srcOffset+i))
	}
}
