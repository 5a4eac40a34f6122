// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package varint

import (
	"github.com/Workday/OpenFrame-sub026/core/fault"
)

// MaxLength32 is the largest number of bytes a 32 bit value encodes to.
const MaxLength32 = 5

const (
	// ErrTruncated is returned when the data ends before the last byte of a
	// value.
	ErrTruncated = fault.Const("varint: truncated value")
	// ErrTooLong is returned when the fifth byte of a value still has its
	// continuation bit set.
	ErrTooLong = fault.Const("varint: value longer than 5 bytes")
)

const (
	more = 0x80
	bits = 0x7f
)

// Parse32 decodes the value at the start of data, never looking past the end
// of data. It returns the value and the number of bytes it occupied.
// On failure the count is 0.
func Parse32(data []byte) (uint32, int, error) {
	v := uint32(0)
	for i := 0; i < MaxLength32; i++ {
		if i >= len(data) {
			return 0, 0, ErrTruncated
		}
		b := data[i]
		// The top 3 bits of the fifth group do not fit and are dropped.
		v |= uint32(b&bits) << (7 * uint(i))
		if b&more == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrTooLong
}

// Encode32 writes the encoding of v to the start of dst and returns the
// number of bytes written. dst must have room for MaxLength32 bytes.
func Encode32(dst []byte, v uint32) int {
	i := 0
	for v >= more {
		dst[i] = byte(v) | more
		v >>= 7
		i++
	}
	dst[i] = byte(v)
	return i + 1
}

// Append32 appends the encoding of v to dst.
func Append32(dst []byte, v uint32) []byte {
	var tmp [MaxLength32]byte
	n := Encode32(tmp[:], v)
	return append(dst, tmp[:n]...)
}

// Length32 returns the number of bytes Encode32 would use for v.
func Length32(v uint32) int {
	n := 1
	for v >= more {
		v >>= 7
		n++
	}
	return n
}

// FromSigned folds v into an unsigned value with the sign in the low bit.
func FromSigned(v int32) uint32 {
	if v < 0 {
		return uint32(^v)<<1 | 1
	}
	return uint32(v) << 1
}

// ToSigned reverses FromSigned.
func ToSigned(u uint32) int32 {
	v := int32(u >> 1)
	if u&1 != 0 {
		v = ^v
	}
	return v
}

// ParseSigned32 decodes a signed value at the start of data.
func ParseSigned32(data []byte) (int32, int, error) {
	u, n, err := Parse32(data)
	if err != nil {
		return 0, 0, err
	}
	return ToSigned(u), n, nil
}

// AppendSigned32 appends the encoding of the signed value v to dst.
func AppendSigned32(dst []byte, v int32) []byte {
	return Append32(dst, FromSigned(v))
}
