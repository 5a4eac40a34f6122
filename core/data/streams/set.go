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
	"fmt"

	"github.com/pkg/errors"

	"github.com/Workday/OpenFrame-sub026/core/data/varint"
)

const (
	// MaxStreams is the number of streams in a stream set.
	MaxStreams = 10
	// FormatVersion identifies the stream set header layout. Headers with any
	// other version are rejected.
	FormatVersion = 20090218
)

// SourceStreamSet is a set of streams read from a serialized stream set.
// The zero value is a set of empty streams.
type SourceStreamSet struct {
	count   int
	streams [MaxStreams]SourceStream
}

// Init parses the stream set serialized in data. The streams of the set view
// data directly.
// On failure the set is left empty.
func (s *SourceStreamSet) Init(data []byte) error {
	if err := s.init(data); err != nil {
		s.reset()
		logger.Debugf("rejected stream set of %d bytes: %v", len(data), err)
		return err
	}
	return nil
}

// InitStream parses the stream set held in the rest of src, consuming it.
// src does not move if parsing fails.
func (s *SourceStreamSet) InitStream(src *SourceStream) error {
	if err := s.Init(src.Bytes()); err != nil {
		return err
	}
	return src.Skip(src.Remaining())
}

func (s *SourceStreamSet) init(data []byte) error {
	src := NewSourceStream(data)
	version, err := src.ReadVarint32()
	if err != nil {
		return errors.Wrap(err, "reading stream set version")
	}
	if version != FormatVersion {
		return errors.Wrapf(ErrVersion, "got version %d, expected %d", version, FormatVersion)
	}
	count, err := src.ReadVarint32()
	if err != nil {
		return errors.Wrap(err, "reading stream count")
	}
	if count > MaxStreams {
		return errors.Wrapf(ErrCapacity, "header declares %d streams, limit is %d", count, MaxStreams)
	}
	lengths, total, err := readLengths(src, int(count))
	if err != nil {
		return err
	}
	if total != uint64(src.Remaining()) {
		return errors.Wrapf(ErrLengthMismatch, "header declares %d bytes, %d bytes follow", total, src.Remaining())
	}
	streams := [MaxStreams]SourceStream{}
	for i := 0; i < int(count); i++ {
		// Cannot fail, the lengths add up to what remains.
		if err := src.ReadSubstreamInto(int(lengths[i]), &streams[i]); err != nil {
			return errors.Wrapf(err, "reading stream %d", i)
		}
	}
	s.count, s.streams = int(count), streams
	return nil
}

// readLengths reads count varint lengths, returning them with their sum.
func readLengths(src *SourceStream, count int) ([MaxStreams]uint32, uint64, error) {
	lengths := [MaxStreams]uint32{}
	total := uint64(0)
	for i := 0; i < count; i++ {
		l, err := src.ReadVarint32()
		if err != nil {
			return lengths, 0, errors.Wrapf(err, "reading length of stream %d", i)
		}
		lengths[i] = l
		total += uint64(l)
	}
	return lengths, total, nil
}

func (s *SourceStreamSet) reset() {
	s.count = 0
	s.streams = [MaxStreams]SourceStream{}
}

// Count returns the number of streams declared by the parsed header.
// Streams at or beyond Count are empty.
func (s *SourceStreamSet) Count() int { return s.count }

// Stream returns the stream at index i, which must be less than MaxStreams.
func (s *SourceStreamSet) Stream(i int) *SourceStream {
	if i < 0 || i >= MaxStreams {
		panic(fmt.Sprintf("streams: stream index %d out of range [0, %d)", i, MaxStreams))
	}
	return &s.streams[i]
}

// Empty returns true if every stream in the set has been read to the end.
func (s *SourceStreamSet) Empty() bool {
	for i := range s.streams {
		if !s.streams[i].Empty() {
			return false
		}
	}
	return true
}

// ReadSet reads a set nested in s by SinkStreamSet.WriteSet. The stream count
// and lengths come from stream 0 of s, then nested stream i is read from
// stream i of s.
// On failure s is unchanged and set is left empty.
func (s *SourceStreamSet) ReadSet(set *SourceStreamSet) error {
	if set == s {
		return errors.New("streams: stream set read from itself")
	}
	saved := s.streams
	if err := s.readSet(set); err != nil {
		s.streams = saved
		set.reset()
		logger.Debugf("rejected nested stream set: %v", err)
		return err
	}
	return nil
}

func (s *SourceStreamSet) readSet(set *SourceStreamSet) error {
	control := &s.streams[0]
	count, err := control.ReadVarint32()
	if err != nil {
		return errors.Wrap(err, "reading nested stream count")
	}
	if count > MaxStreams {
		return errors.Wrapf(ErrCapacity, "nested set declares %d streams, limit is %d", count, MaxStreams)
	}
	lengths, _, err := readLengths(control, int(count))
	if err != nil {
		return err
	}
	streams := [MaxStreams]SourceStream{}
	for i := 0; i < int(count); i++ {
		channel := &s.streams[i]
		if uint64(lengths[i]) > uint64(channel.Remaining()) {
			return errors.Wrapf(ErrTruncated, "nested stream %d needs %d bytes, %d remain", i, lengths[i], channel.Remaining())
		}
		if err := channel.ReadSubstreamInto(int(lengths[i]), &streams[i]); err != nil {
			return errors.Wrapf(err, "reading nested stream %d", i)
		}
	}
	set.count, set.streams = int(count), streams
	return nil
}

// SinkStreamSet is a set of streams being written.
// The zero value is a set of MaxStreams empty streams.
type SinkStreamSet struct {
	limited bool
	limit   int
	streams [MaxStreams]SinkStream
}

// Init limits the set to the first limit streams. limit must not exceed
// MaxStreams, and the streams past the limit must be empty.
func (s *SinkStreamSet) Init(limit int) error {
	if limit < 0 || limit > MaxStreams {
		return errors.Wrapf(ErrCapacity, "stream limit %d outside [0, %d]", limit, MaxStreams)
	}
	for i := limit; i < MaxStreams; i++ {
		if s.streams[i].Length() != 0 {
			return errors.Wrapf(ErrCapacity, "stream %d holds data past limit %d", i, limit)
		}
	}
	s.limited, s.limit = true, limit
	return nil
}

// Count returns the number of streams available in the set.
func (s *SinkStreamSet) Count() int {
	if !s.limited {
		return MaxStreams
	}
	return s.limit
}

// Stream returns the stream at index i, which must be less than Count.
func (s *SinkStreamSet) Stream(i int) *SinkStream {
	if i < 0 || i >= s.Count() {
		panic(fmt.Sprintf("streams: stream index %d out of range [0, %d)", i, s.Count()))
	}
	return &s.streams[i]
}

// used returns one more than the index of the last non-empty stream.
func (s *SinkStreamSet) used() int {
	count := 0
	for i := 0; i < s.Count(); i++ {
		if s.streams[i].Length() > 0 {
			count = i + 1
		}
	}
	return count
}

func (s *SinkStreamSet) headerLength() int {
	count := s.used()
	n := varint.Length32(FormatVersion) + varint.Length32(uint32(count))
	for i := 0; i < count; i++ {
		n += varint.Length32(uint32(s.streams[i].Length()))
	}
	return n
}

// Len returns the number of bytes CopyTo would write.
func (s *SinkStreamSet) Len() int {
	n := s.headerLength()
	for i := 0; i < s.used(); i++ {
		n += s.streams[i].Length()
	}
	return n
}

// CopyHeaderTo writes the stream set header to header.
func (s *SinkStreamSet) CopyHeaderTo(header *SinkStream) error {
	tmp := &SinkStream{}
	if err := tmp.Reserve(s.headerLength()); err != nil {
		return err
	}
	if err := tmp.WriteVarint32(FormatVersion); err != nil {
		return err
	}
	if err := writeLengths(tmp, s.streams[:s.used()]); err != nil {
		return err
	}
	return header.Append(tmp)
}

// writeLengths writes the number of streams followed by their lengths.
func writeLengths(to *SinkStream, streams []SinkStream) error {
	if err := to.WriteSizeVarint32(len(streams)); err != nil {
		return err
	}
	for i := range streams {
		if err := to.WriteSizeVarint32(streams[i].Length()); err != nil {
			return errors.Wrapf(err, "writing length of stream %d", i)
		}
	}
	return nil
}

// CopyTo serializes the set to out, header first, retiring every stream.
// If it fails nothing is written and no stream is retired.
func (s *SinkStreamSet) CopyTo(out *SinkStream) error {
	for i := range s.streams {
		if out == &s.streams[i] {
			return errors.Errorf("streams: stream set copied into its own stream %d", i)
		}
	}
	total := uint64(s.Len())
	if uint64(out.Length())+total > MaxSinkLength {
		return errors.Wrapf(ErrAllocation, "stream set of %d bytes does not fit", total)
	}
	if err := out.Reserve(int(total)); err != nil {
		return err
	}
	if err := s.CopyHeaderTo(out); err != nil {
		return err
	}
	for i := 0; i < s.used(); i++ {
		if err := out.Append(&s.streams[i]); err != nil {
			return errors.Wrapf(err, "appending stream %d", i)
		}
	}
	return nil
}

// WriteSet nests set in s, retiring the streams of set. Stream 0 of s gets
// the nested stream count and lengths, then nested stream i is appended to
// stream i of s. ReadSet reverses this.
// If it fails neither set changes.
func (s *SinkStreamSet) WriteSet(set *SinkStreamSet) error {
	if set == s {
		return errors.New("streams: stream set written into itself")
	}
	count := set.used()
	if count > s.Count() || s.Count() == 0 {
		return errors.Wrapf(ErrCapacity, "nested set uses %d streams, set holds %d", count, s.Count())
	}
	control := &SinkStream{}
	if err := writeLengths(control, set.streams[:count]); err != nil {
		return err
	}
	// Check every channel first so a failure leaves both sets untouched.
	grow := [MaxStreams]uint64{}
	grow[0] = uint64(control.Length())
	for i := 0; i < count; i++ {
		grow[i] += uint64(set.streams[i].Length())
	}
	for i, n := range grow {
		if uint64(s.streams[i].Length())+n > MaxSinkLength {
			return errors.Wrapf(ErrAllocation, "stream %d would exceed %d bytes", i, uint64(MaxSinkLength))
		}
	}
	if err := s.streams[0].Append(control); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := s.streams[i].Append(&set.streams[i]); err != nil {
			return errors.Wrapf(err, "appending nested stream %d", i)
		}
	}
	return nil
}
