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
	"io"

	"github.com/Workday/OpenFrame-sub026/core/data/varint"
)

// SourceStream reads from a byte slice it does not own.
// The slice must not be modified while any stream views it.
// The zero value is an empty stream.
type SourceStream struct {
	data    []byte
	current int
}

// NewSourceStream returns a stream positioned at the start of data.
func NewSourceStream(data []byte) *SourceStream {
	s := &SourceStream{}
	s.Init(data)
	return s
}

// Init points the stream at data and rewinds it.
func (s *SourceStream) Init(data []byte) {
	// Clip the capacity so nothing can append through the view.
	s.data = data[:len(data):len(data)]
	s.current = 0
}

// InitSink points the stream at the bytes sink holds right now.
// Later writes to sink are not seen by the stream.
func (s *SourceStream) InitSink(sink *SinkStream) {
	s.Init(sink.Bytes())
}

// OriginalLength returns the length of the data the stream was initialized
// with.
func (s *SourceStream) OriginalLength() int { return len(s.data) }

// Remaining returns the number of unread bytes.
func (s *SourceStream) Remaining() int { return len(s.data) - s.current }

// Empty returns true if there are no unread bytes.
func (s *SourceStream) Empty() bool { return s.current == len(s.data) }

// Bytes returns the unread bytes without consuming them.
// The returned slice aliases the stream's data and must not be modified.
func (s *SourceStream) Bytes() []byte { return s.data[s.current:] }

// Data fills dst from the stream. If fewer than len(dst) bytes remain, it
// returns ErrTruncated and reads nothing.
func (s *SourceStream) Data(dst []byte) error {
	if len(dst) > s.Remaining() {
		return ErrTruncated
	}
	s.current += copy(dst, s.data[s.current:])
	return nil
}

// Read implements io.Reader. Unlike Data it may return fewer bytes than
// requested.
func (s *SourceStream) Read(p []byte) (int, error) {
	if s.Empty() {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, s.data[s.current:])
	s.current += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (s *SourceStream) ReadByte() (byte, error) {
	if s.Empty() {
		return 0, io.EOF
	}
	b := s.data[s.current]
	s.current++
	return b, nil
}

// ReadVarint32 decodes an unsigned varint.
// On failure the stream does not move.
func (s *SourceStream) ReadVarint32() (uint32, error) {
	v, n, err := varint.Parse32(s.data[s.current:])
	if err != nil {
		return 0, varintErr(err)
	}
	s.current += n
	return v, nil
}

// ReadVarint32Signed decodes a signed varint.
// On failure the stream does not move.
func (s *SourceStream) ReadVarint32Signed() (int32, error) {
	v, err := s.ReadVarint32()
	if err != nil {
		return 0, err
	}
	return varint.ToSigned(v), nil
}

// ShareSubstream returns a new stream over length bytes starting offset bytes
// past the current position. The stream itself does not move.
func (s *SourceStream) ShareSubstream(offset, length int) (*SourceStream, error) {
	sub := &SourceStream{}
	if err := s.ShareSubstreamInto(offset, length, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ShareSubstreamInto is ShareSubstream re-initializing an existing stream.
// sub is left untouched on failure.
func (s *SourceStream) ShareSubstreamInto(offset, length int, sub *SourceStream) error {
	remaining := s.Remaining()
	if offset < 0 || length < 0 || offset > remaining || length > remaining-offset {
		return ErrTruncated
	}
	start := s.current + offset
	sub.Init(s.data[start : start+length])
	return nil
}

// ReadSubstream returns a new stream over the next length bytes and moves
// past them.
func (s *SourceStream) ReadSubstream(length int) (*SourceStream, error) {
	sub := &SourceStream{}
	if err := s.ReadSubstreamInto(length, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ReadSubstreamInto is ReadSubstream re-initializing an existing stream.
func (s *SourceStream) ReadSubstreamInto(length int, sub *SourceStream) error {
	if err := s.ShareSubstreamInto(0, length, sub); err != nil {
		return err
	}
	s.current += length
	return nil
}

// Skip moves past n bytes.
func (s *SourceStream) Skip(n int) error {
	if n < 0 || n > s.Remaining() {
		return ErrTruncated
	}
	s.current += n
	return nil
}
