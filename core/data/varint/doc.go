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

// Package varint implements the variable length encoding used for every
// integer in a stream set.
//
// An unsigned 32 bit integer is split into 7 bit groups, least significant
// group first. Each group is stored in the low 7 bits of a byte, and the high
// bit of the byte is set when another byte follows. A uint32 therefore takes
// between 1 and 5 bytes:
//
//	0          → 00
//	127        → 7f
//	128        → 80 01
//	300        → ac 02
//	0xffffffff → ff ff ff ff 0f
//
// The unsigned form is bit compatible with the protocol buffer varint for
// values that fit in 32 bits.
//
// Signed integers are folded into unsigned integers before encoding, so that
// values close to zero in either direction get short encodings. A
// non-negative n maps to 2n, a negative n maps to 2(^n)+1, giving the order
// [0, -1, +1, -2, +2] → [0, 1, 2, 3, 4]. The complement is used rather than
// negation, so math.MinInt32 maps to 0xffffffff without overflow.
package varint
