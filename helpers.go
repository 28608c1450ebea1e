// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getarg

import (
	"errors"
	"strconv"
	"strings"
)

// atoi64 - Converts the leading numeric part of s to an int64.
//
// Leading white space is skipped and an optional sign is allowed.
// Parsing stops at the first non digit and a string without digits returns 0.
// Values out of range are clamped to the int64 limits.
func atoi64(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	i, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ParseInt already returns the clamped value
			Logger.Debug("integer out of range", "value", s[:end], "clamped", i)
			return i
		}
		return 0
	}
	return i
}
