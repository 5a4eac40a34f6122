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

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/Workday/OpenFrame-sub026/core/data/streams"
	"github.com/Workday/OpenFrame-sub026/core/fault"
)

func init() {
	register(verb{
		name:  "info",
		usage: "FILE...",
		help:  "describe the streams held in stream set files",
		run:   info,
	})
}

func info(args []string, stdout, stderr io.Writer) error {
	flags := verbFlags("info", stderr)
	if err := flags.Parse(true, args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("no files given")
	}
	errs := fault.List{}
	for _, path := range flags.Args() {
		if err := describe(path, stdout); err != nil {
			logger.Warningf("skipping %s: %v", path, err)
			errs.Collect(errors.Wrap(err, path))
		}
	}
	return errs.Err()
}

func describe(path string, w io.Writer) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	set := &streams.SourceStreamSet{}
	if err := set.Init(data); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: version %d, %d streams, %s\n",
		path, streams.FormatVersion, set.Count(), humanize.Bytes(uint64(len(data))))
	for i := 0; i < set.Count(); i++ {
		n := set.Stream(i).Remaining()
		fmt.Fprintf(w, "  stream %d: %s bytes (%s)\n", i, humanize.Comma(int64(n)), humanize.Bytes(uint64(n)))
	}
	return nil
}
