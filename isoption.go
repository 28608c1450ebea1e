// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getarg

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: option name, must start with a letter
// 3: =arg
var isOptionRegex = regexp.MustCompile(`(?s)^(--?)([A-Za-z][^=]*)(=.*)?$`)

// 1: leading dashes or /
// 2: option name, must start with a letter
// 3: =arg
var isOptionRegexWindows = regexp.MustCompile(`(?s)^(--?|/)([A-Za-z][^=]*)(=.*)?$`)

type optionPair struct {
	// Option key normalized to a single leading dash.
	Option string
	// Arg holds everything after the first '='.
	Arg string
	// HasArg tells '-opt' and '-opt=' apart.
	HasArg bool
}

/*
isOption - Check if the given string is an option (starts with - or --, or / when windows support mode is set).
Return the option normalized to a single leading dash and its argument if the string contained one.

The argument is everything after the first '=', so '-opt=a=b' has argument 'a=b'.
Tokens where the dashes are not immediately followed by a letter are not options:
'-', '--', '---opt' and negative numbers like '-5' are all rejected.

When windows support mode is set the option name is lowercased, the argument keeps its case.
For example: /BaudRate=115200 -baudrate=115200 --baudrate=115200 are all the same option.
*/
func isOption(s string, windows bool) (optionPair, bool) {
	var match []string
	if windows {
		match = isOptionRegexWindows.FindStringSubmatch(s)
	} else {
		match = isOptionRegex.FindStringSubmatch(s)
	}
	if len(match) == 0 {
		return optionPair{}, false
	}
	opt := optionPair{Option: "-" + match[2]}
	if windows {
		opt.Option = strings.ToLower(opt.Option)
	}
	if strings.HasPrefix(match[3], "=") {
		opt.Arg = strings.TrimPrefix(match[3], "=")
		opt.HasArg = true
	}
	return opt, true
}

// normalizeKey - Returns the key with a single leading dash.
// Accessors take 'h4h', '-h4h' and '--h4h' as the same key.
func normalizeKey(key string) string {
	return "-" + strings.TrimLeft(key, "-")
}

// negatedKeyOf - Returns the negation carrier key for the given key: '-h4h' -> '-noh4h'.
func negatedKeyOf(key string) string {
	return "-no" + strings.TrimLeft(key, "-")
}
