// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getarg - flat option store for `-key` and `-key=value` command line arguments.

There are no option definitions: every option passed on the command line is
stored and later queried with a typed getter that carries its own default.

Usage

		import "github.com/DavidGamba/go-getarg"

		// Build the store once at startup, os.Args[0] is skipped.
		args := getarg.Parse(os.Args)

		// Query it as many times as needed.
		if args.GetBoolArg("debug", false) {
			getarg.Logger.SetOutput(os.Stderr)
		}
		dataDir := args.GetArg("datadir", "/var/lib/app")
		port := args.GetArgInt("port", 8333)

Syntax

* `-key` and `--key` are the same option, given without a value.

* `-key=value` takes everything after the first `=` as the value.

* `-nokey` negates `key` for GetBoolArg unless `-key` itself was given.

* When the same option is given more than once the last one wins.
All values are still available through GetArgs.

Concurrency

The Store is not safe for concurrent writes.
Build it, apply SoftSetArg defaults and config files, then share it read-only.
*/
package getarg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.NewWithOptions(io.Discard, log.Options{
	Prefix:       "getarg",
	Level:        log.DebugLevel,
	ReportCaller: true,
})

// Store - Parsed command line options.
//
// Keys are stored with a single leading dash, for example `-h4h`.
type Store struct {
	args      map[string]string   // last value seen for each key
	multiArgs map[string][]string // every value seen for each key, in order
	windows   bool                // accept /key and lowercase key names
}

// New - Returns an empty Store.
func New() *Store {
	return &Store{
		args:      make(map[string]string),
		multiArgs: make(map[string][]string),
	}
}

// Parse - Builds a new Store from the given argument list.
// The first element is the program name and it is ignored.
//
//	args := getarg.Parse(os.Args)
func Parse(args []string) *Store {
	return New().Parse(args)
}

// SetWindowsMode - Accept `/key` as an option and lowercase option names.
// It takes effect on the next call to Parse.
func (s *Store) SetWindowsMode(windows bool) *Store {
	s.windows = windows
	return s
}

// Parse - Replaces the contents of the Store with the options in args.
// The first element is the program name and it is ignored.
//
// Nothing from a previous Parse survives, including values added with SoftSetArg.
func (s *Store) Parse(args []string) *Store {
	s.args = make(map[string]string)
	s.multiArgs = make(map[string][]string)
	if len(args) == 0 {
		return s
	}
	for i, arg := range args[1:] {
		opt, ok := isOption(arg, s.windows)
		if !ok {
			Logger.Debug("ignoring argument", "index", i+1, "arg", arg)
			continue
		}
		Logger.Debug("option", "index", i+1, "key", opt.Option, "value", opt.Arg)
		s.set(opt.Option, opt.Arg)
	}
	return s
}

func (s *Store) set(key, value string) {
	s.args[key] = value
	s.multiArgs[key] = append(s.multiArgs[key], value)
}

// Keys - Returns the sorted list of keys present in the Store.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.args))
	for k := range s.args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String - Debug representation of the Store, for example `Store{-bar="12", -h4h=""}`.
func (s *Store) String() string {
	parts := []string{}
	for _, k := range s.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%q", k, s.args[k]))
	}
	return "Store{" + strings.Join(parts, ", ") + "}"
}
