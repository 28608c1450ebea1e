// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getarg

import (
	"math"
	"testing"
)

func TestAtoi64(t *testing.T) {
	cases := []struct {
		in       string
		expected int64
	}{
		{"", 0},
		{"0", 0},
		{"11", 11},
		{"-11", -11},
		{"+11", 11},
		{"007", 7},
		{"  42", 42},
		{"\t-3", -3},
		{"42 ", 42},
		{"12abc", 12},
		{"1.5", 1},
		{"1e3", 1},
		{"NaN", 0},
		{"NotANumber", 0},
		{"-", 0},
		{"+", 0},
		{"--1", 0},
		{"- 1", 0},
		{"0x10", 0},
		{"9223372036854775807", math.MaxInt64},
		{"9223372036854775808", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
		{"-9223372036854775809", math.MinInt64},
	}
	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()
			if got := atoi64(tt.in); got != tt.expected {
				t.Errorf("atoi64(%q) got %d, want %d", tt.in, got, tt.expected)
			}
		})
	}
}
