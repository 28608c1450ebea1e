// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getarg

// IsArgSet - Indicates if the option was given, `-noKEY` doesn't count as `-KEY`.
func (s *Store) IsArgSet(key string) bool {
	_, ok := s.args[normalizeKey(key)]
	return ok
}

// GetArg - Returns the value of the option or def if it wasn't given.
//
// An option given without a value, `-key` or `-key=`, returns the empty string.
func (s *Store) GetArg(key, def string) string {
	if v, ok := s.args[normalizeKey(key)]; ok {
		return v
	}
	return def
}

// GetArgInt - Returns the value of the option converted to an int64 or def if it wasn't given.
//
// The conversion uses the leading numeric part of the value, `-key=12abc` returns 12.
// A value without a numeric prefix returns 0, not def: the option was given.
func (s *Store) GetArgInt(key string, def int64) int64 {
	if v, ok := s.args[normalizeKey(key)]; ok {
		return atoi64(v)
	}
	return def
}

// GetBoolArg - Returns the boolean value of the option.
//
// Resolution order:
//
//	-key      true unless its value is "0".
//	-nokey    false unless its value is "0".
//	def
//
// `-key` always wins over `-nokey` regardless of their position.
func (s *Store) GetBoolArg(key string, def bool) bool {
	if v, ok := s.args[normalizeKey(key)]; ok {
		return isTrue(v)
	}
	if v, ok := s.args[negatedKeyOf(key)]; ok {
		return !isTrue(v)
	}
	return def
}

// GetArgs - Returns every value given for the option in command line order.
// Returns nil if the option wasn't given.
func (s *Store) GetArgs(key string) []string {
	values, ok := s.multiArgs[normalizeKey(key)]
	if !ok {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// SoftSetArg - Sets the option only if it wasn't already given.
// Returns true if the value was set.
//
// The value is always recorded in GetArgs.
func (s *Store) SoftSetArg(key, value string) bool {
	k := normalizeKey(key)
	if _, ok := s.args[k]; ok {
		Logger.Debug("soft set skipped", "key", k, "value", value, "current", s.args[k])
		s.multiArgs[k] = append(s.multiArgs[k], value)
		return false
	}
	s.set(k, value)
	return true
}

// SoftSetBoolArg - Same as SoftSetArg but stores "1" or "0".
func (s *Store) SoftSetBoolArg(key string, value bool) bool {
	if value {
		return s.SoftSetArg(key, "1")
	}
	return s.SoftSetArg(key, "0")
}

// isTrue - Only the literal "0" is false.
func isTrue(v string) bool {
	return v != "0"
}
