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
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Workday/OpenFrame-sub026/core/data/streams"
	"github.com/Workday/OpenFrame-sub026/core/fault"
)

func init() {
	register(verb{
		name:  "unpack",
		usage: "[-d DIR] FILE",
		help:  "write each stream of a stream set file to DIR/stream.<i>",
		run:   unpack,
	})
}

func unpack(args []string, stdout, stderr io.Writer) error {
	flags := verbFlags("unpack", stderr)
	dir := flags.String("d", ".", "directory to write the streams to")
	if err := flags.Parse(true, args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errors.New("expected exactly one stream set file")
	}
	path := flags.Arg(0)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	set := &streams.SourceStreamSet{}
	if err := set.Init(data); err != nil {
		return errors.Wrap(err, path)
	}
	if err := os.MkdirAll(*dir, 0755); err != nil {
		return err
	}
	failed := fault.One{}
	written := 0
	for i := 0; i < set.Count(); i++ {
		name := filepath.Join(*dir, fmt.Sprintf("stream.%d", i))
		if err := ioutil.WriteFile(name, set.Stream(i).Bytes(), 0644); err != nil {
			logger.Warningf("stream %d: %v", i, err)
			failed.Collect(err)
			continue
		}
		written++
		fmt.Fprintln(stdout, name)
	}
	logger.Infof("unpacked %d of %d streams from %s", written, set.Count(), path)
	return failed.First()
}
