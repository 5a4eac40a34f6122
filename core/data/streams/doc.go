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

// Package streams provides the byte streams and stream sets used to carry
// several independent channels of data in one flat buffer.
//
// A SourceStream is a read cursor over an immutable byte slice. A SinkStream
// is an append-only buffer. A stream set groups up to MaxStreams streams and
// serializes them as a header followed by the stream contents:
//
//	version     varint32   // FormatVersion
//	count       varint32   // 1 + index of the last non-empty stream
//	length[0]   varint32
//	...
//	length[count-1]
//	data[0] data[1] ... data[count-1]
//
// All integers use the encoding of package varint. A set can also be nested
// inside the streams of another set with SinkStreamSet.WriteSet and
// SourceStreamSet.ReadSet, which frame the nested set through channel 0 of the
// outer set.
//
// Failed reads never move a cursor, and failed writes never change a sink.
// None of the types are safe for concurrent use.
package streams
