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

// The streamset command inspects, builds and splits stream set files.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"github.com/pkg/errors"
)

var logger = loggo.GetLogger("streamset")

type verb struct {
	name  string
	usage string
	help  string
	run   func(args []string, stdout, stderr io.Writer) error
}

var verbs = map[string]verb{}

func register(v verb) { verbs[v.name] = v }

func main() {
	if _, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(os.Stderr, loggo.DefaultFormatter)); err != nil {
		fmt.Fprintf(os.Stderr, "streamset: %v\n", err)
		os.Exit(1)
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "streamset: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := gnuflag.NewFlagSet("streamset", gnuflag.ContinueOnError)
	flags.SetOutput(stderr)
	logSpec := flags.String("log", "<root>=WARNING", "logging configuration, e.g. streams=DEBUG")
	flags.Usage = func() { usage(stderr, flags) }
	// Global flags stop at the verb.
	if err := flags.Parse(false, args); err != nil {
		return err
	}
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		return errors.Wrap(err, "configuring logging")
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("no verb given")
	}
	name := flags.Arg(0)
	v, ok := verbs[name]
	if !ok {
		flags.Usage()
		return errors.Errorf("unknown verb %q", name)
	}
	logger.Debugf("running %s %v", name, flags.Args()[1:])
	return v.run(flags.Args()[1:], stdout, stderr)
}

func usage(w io.Writer, flags *gnuflag.FlagSet) {
	fmt.Fprintln(w, "usage: streamset [flags] <verb> [verb flags] [args]")
	fmt.Fprintln(w, "\nverbs:")
	names := make([]string, 0, len(verbs))
	for name := range verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, verbs[name].help)
	}
	fmt.Fprintln(w, "\nflags:")
	flags.PrintDefaults()
}

// verbFlags returns the flag set for a verb, printing the verb's usage line
// on errors.
func verbFlags(name string, stderr io.Writer) *gnuflag.FlagSet {
	flags := gnuflag.NewFlagSet(name, gnuflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: streamset %s %s\n", name, verbs[name].usage)
		flags.PrintDefaults()
	}
	return flags
}
