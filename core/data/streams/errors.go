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

	"github.com/juju/loggo"

	"github.com/Workday/OpenFrame-sub026/core/data/varint"
	"github.com/Workday/OpenFrame-sub026/core/fault"
)

var logger = loggo.GetLogger("streams")

const (
	// ErrTruncated is returned when a read needs more bytes than remain.
	ErrTruncated = fault.Const("streams: not enough data")
	// ErrMalformedVarint is returned when a varint does not terminate within
	// varint.MaxLength32 bytes.
	ErrMalformedVarint = varint.ErrTooLong
	// ErrVersion is returned when a stream set header has the wrong format
	// version.
	ErrVersion = fault.Const("streams: unsupported stream set version")
	// ErrCapacity is returned when a stream count exceeds the limit of the set.
	ErrCapacity = fault.Const("streams: too many streams")
	// ErrLengthMismatch is returned when the declared stream lengths do not
	// add up to the data that follows the header.
	ErrLengthMismatch = fault.Const("streams: stream lengths do not match data")
	// ErrAllocation is returned when a sink would grow beyond MaxSinkLength.
	ErrAllocation = fault.Const("streams: sink too large")
	// ErrSizeOverflow is returned when a size does not fit in 32 bits.
	ErrSizeOverflow = fault.Const("streams: size does not fit in 32 bits")
)

// MaxSinkLength is the largest number of bytes a SinkStream will hold, the
// largest length a stream set header can describe.
const MaxSinkLength = math.MaxUint32

// varintErr maps a varint failure to the stream error taxonomy.
func varintErr(err error) error {
	if err == varint.ErrTruncated {
		return ErrTruncated
	}
	return err
}
