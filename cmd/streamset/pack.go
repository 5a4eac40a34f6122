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
	"io"
	"io/ioutil"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/Workday/OpenFrame-sub026/core/data/streams"
)

// emptyInput names an input that contributes an empty stream.
const emptyInput = "-"

func init() {
	register(verb{
		name:  "pack",
		usage: "-o OUT FILE...",
		help:  "build a stream set whose stream i holds FILE i ('-' for empty)",
		run:   pack,
	})
}

func pack(args []string, stdout, stderr io.Writer) error {
	flags := verbFlags("pack", stderr)
	output := flags.String("o", "", "stream set file to write")
	limit := flags.Int("streams", streams.MaxStreams, "largest number of streams allowed")
	if err := flags.Parse(true, args); err != nil {
		return err
	}
	if *output == "" {
		flags.Usage()
		return errors.New("no output file given")
	}
	inputs := flags.Args()

	set := &streams.SinkStreamSet{}
	if err := set.Init(*limit); err != nil {
		return err
	}
	if len(inputs) > set.Count() {
		return errors.Wrapf(streams.ErrCapacity, "%d inputs for %d streams", len(inputs), set.Count())
	}
	for i, path := range inputs {
		if path == emptyInput {
			continue
		}
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := set.Stream(i).Write(data); err != nil {
			return errors.Wrapf(err, "stream %d (%s)", i, path)
		}
		logger.Debugf("stream %d: %s, %d bytes", i, path, len(data))
	}

	out := &streams.SinkStream{}
	if err := set.CopyTo(out); err != nil {
		return err
	}
	if err := ioutil.WriteFile(*output, out.Bytes(), 0644); err != nil {
		return err
	}
	logger.Infof("wrote %s to %s", humanize.Bytes(uint64(out.Length())), *output)
	return nil
}
