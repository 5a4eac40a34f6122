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

package streams

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Workday/OpenFrame-sub026/core/data/varint"
)

// SinkStream is an append-only byte buffer.
// The zero value is an empty sink ready for writing.
type SinkStream struct {
	buf []byte
}

// Length returns the number of bytes held.
func (s *SinkStream) Length() int { return len(s.buf) }

// Bytes returns the bytes held. The slice is only valid until the next write
// and must not be modified.
func (s *SinkStream) Bytes() []byte { return s.buf }

// room checks that n more bytes fit.
func (s *SinkStream) room(n int) error {
	if n < 0 || uint64(len(s.buf))+uint64(n) > MaxSinkLength {
		return ErrAllocation
	}
	return nil
}

// Reserve makes room for n more bytes without changing the contents.
func (s *SinkStream) Reserve(n int) error {
	if err := s.room(n); err != nil {
		return err
	}
	if cap(s.buf)-len(s.buf) >= n {
		return nil
	}
	buf := make([]byte, len(s.buf), len(s.buf)+n)
	copy(buf, s.buf)
	s.buf = buf
	return nil
}

// Write implements io.Writer. It writes all of p or nothing.
func (s *SinkStream) Write(p []byte) (int, error) {
	if err := s.room(len(p)); err != nil {
		return 0, err
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (s *SinkStream) WriteByte(c byte) error {
	if err := s.room(1); err != nil {
		return err
	}
	s.buf = append(s.buf, c)
	return nil
}

// WriteVarint32 appends the varint encoding of v.
func (s *SinkStream) WriteVarint32(v uint32) error {
	if err := s.room(varint.Length32(v)); err != nil {
		return err
	}
	s.buf = varint.Append32(s.buf, v)
	return nil
}

// WriteVarint32Signed appends the signed varint encoding of v.
func (s *SinkStream) WriteVarint32Signed(v int32) error {
	return s.WriteVarint32(varint.FromSigned(v))
}

// WriteSizeVarint32 appends a size as an unsigned varint. Sizes that do not
// fit in 32 bits are rejected with ErrSizeOverflow.
func (s *SinkStream) WriteSizeVarint32(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return errors.Wrapf(ErrSizeOverflow, "size %d", n)
	}
	return s.WriteVarint32(uint32(n))
}

// Append moves the contents of other to the end of s, leaving other empty.
// If it fails neither sink changes.
func (s *SinkStream) Append(other *SinkStream) error {
	if other == s {
		return errors.New("streams: sink appended to itself")
	}
	if err := s.room(other.Length()); err != nil {
		return err
	}
	s.buf = append(s.buf, other.Take()...)
	return nil
}

// Take returns the bytes held and retires the sink. The caller owns the
// returned slice.
func (s *SinkStream) Take() []byte {
	buf := s.buf
	s.Retire()
	return buf
}

// Retire empties the sink and releases its buffer.
func (s *SinkStream) Retire() {
	s.buf = nil
}
