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

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workday/OpenFrame-sub026/core/data/streams"
	"github.com/Workday/OpenFrame-sub026/core/fault"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func runVerb(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(args, stdout, stderr)
	return stdout.String(), err
}

func TestPackInfoUnpack(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "AB")
	c := writeFile(t, dir, "c", "C")
	set := filepath.Join(dir, "set.bin")

	_, err := runVerb(t, "pack", "-o", set, a, "-", c)
	require.NoError(t, err)
	data, err := ioutil.ReadFile(set)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xea, 0x9a, 0xca, 0x09, 3, 2, 0, 1, 'A', 'B', 'C'}, data)

	out, err := runVerb(t, "info", set)
	require.NoError(t, err)
	assert.Contains(t, out, "version 20090218, 3 streams, 11 B")
	assert.Contains(t, out, "stream 0: 2 bytes")
	assert.Contains(t, out, "stream 1: 0 bytes")
	assert.Contains(t, out, "stream 2: 1 bytes")

	outDir := filepath.Join(dir, "out")
	out, err = runVerb(t, "--log", "<root>=ERROR", "unpack", "-d", outDir, set)
	require.NoError(t, err)
	for i, want := range []string{"AB", "", "C"} {
		name := filepath.Join(outDir, "stream."+string(rune('0'+i)))
		assert.Contains(t, out, name)
		got, err := ioutil.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestPackTooManyInputs(t *testing.T) {
	dir := t.TempDir()
	set := filepath.Join(dir, "set.bin")
	_, err := runVerb(t, "pack", "--streams", "2", "-o", set, "-", "-", "-")
	require.Error(t, err)
	assert.True(t, fault.Is(err, streams.ErrCapacity), "got %v", err)

	_, err = runVerb(t, "pack", "--streams", "11", "-o", set)
	require.Error(t, err)
	assert.True(t, fault.Is(err, streams.ErrCapacity), "got %v", err)
}

func TestPackNeedsOutput(t *testing.T) {
	_, err := runVerb(t, "pack", "-")
	assert.EqualError(t, err, "no output file given")
}

func TestInfoCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad", "\x01\x00")
	good := filepath.Join(dir, "good")
	_, err := runVerb(t, "pack", "-o", good, writeFile(t, dir, "x", "xyz"))
	require.NoError(t, err)
	missing := filepath.Join(dir, "missing")

	out, err := runVerb(t, "info", bad, good, missing)
	require.Error(t, err)
	list, ok := err.(fault.List)
	require.True(t, ok, "got %T", err)
	require.Len(t, list, 2)
	assert.True(t, fault.Is(list[0], streams.ErrVersion))
	assert.Contains(t, list[1].Error(), missing)
	assert.Contains(t, out, good+": version")
}

func TestUnpackRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad", "\xea\x9a\xca\x09\x01\x05ab")
	_, err := runVerb(t, "unpack", "-d", dir, bad)
	require.Error(t, err)
	assert.True(t, fault.Is(err, streams.ErrLengthMismatch), "got %v", err)

	_, err = runVerb(t, "unpack")
	assert.Error(t, err)
}

func TestUnpackKeepsGoingAfterWriteFailure(t *testing.T) {
	dir := t.TempDir()
	set := writeFile(t, dir, "set.bin", "\xea\x9a\xca\x09\x03\x02\x00\x01ABC")
	outDir := filepath.Join(dir, "out")
	// Directories in the way of stream.0 and stream.1 make both writes fail.
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "stream.0"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "stream.1"), 0755))

	out, err := runVerb(t, "--log", "<root>=CRITICAL", "unpack", "-d", outDir, set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(outDir, "stream.0"))
	assert.NotContains(t, err.Error(), filepath.Join(outDir, "stream.1"))

	last := filepath.Join(outDir, "stream.2")
	assert.Equal(t, last+"\n", out)
	got, err := ioutil.ReadFile(last)
	require.NoError(t, err)
	assert.Equal(t, "C", string(got))
}

func TestUnknownVerb(t *testing.T) {
	_, err := runVerb(t, "frobnicate")
	assert.EqualError(t, err, `unknown verb "frobnicate"`)
	_, err = runVerb(t)
	assert.EqualError(t, err, "no verb given")
	_, err = runVerb(t, "--log", "streams=NOTALEVEL", "info")
	assert.Error(t, err)
}
