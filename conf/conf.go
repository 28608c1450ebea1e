// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package conf - loads config files into a getarg.Store.
//
// Two formats are supported, chosen by file extension:
//
//	# app.conf
//	datadir=/srv/app
//	nolisten
//	connect=10.0.0.1
//	connect=10.0.0.2
//
//	# app.toml
//	datadir = "/srv/app"
//	listen = false
//	connect = ["10.0.0.1", "10.0.0.2"]
//
// Config values never override options already in the Store, command line options win.
package conf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-getarg"
	"github.com/pelletier/go-toml/v2"
)

// Pair - A single key value entry read from a config file.
type Pair struct {
	Key   string
	Value string
}

// ReadConfigFile - Reads the config file at path and soft sets its values into s.
//
// Files ending in `.toml` are parsed as TOML, anything else as `key=value` lines.
// A missing file returns an error wrapping getarg.ErrorNotFound.
func ReadConfigFile(s *getarg.Store, path string) error {
	pairs, err := ParseFile(path)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if !s.SoftSetArg(p.Key, p.Value) {
			getarg.Logger.Debug("config value overridden", "file", path, "key", p.Key, "value", p.Value)
		}
	}
	return nil
}

// ParseFile - Returns the entries of the config file at path without applying them.
// Keys are returned with a single leading dash.
func ParseFile(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file '%s': %w", path, getarg.ErrorNotFound)
		}
		return nil, fmt.Errorf("reading config file '%s': %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Parse - Parses `key=value` lines.
//
// Blank lines and lines starting with '#' are skipped.
// A line without '=' is a flag with an empty value.
func Parse(data []byte) ([]Pair, error) {
	pairs := []Pair{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimLeft(strings.TrimSpace(key), "-")
		if key == "" {
			return nil, fmt.Errorf("%w: line %d: missing key in '%s'", getarg.ErrorParsing, n, line)
		}
		pairs = append(pairs, Pair{Key: "-" + key, Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", getarg.ErrorParsing, err)
	}
	return pairs, nil
}

// ParseTOML - Parses the top level keys of a TOML document.
//
// Booleans become "1" or "0", numbers their decimal form and arrays one entry per element.
// Tables are rejected, the store is flat.
func ParseTOML(data []byte) ([]Pair, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", getarg.ErrorParsing, err)
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	// map order is random, keep the output stable
	sort.Strings(keys)

	pairs := []Pair{}
	for _, k := range keys {
		key := "-" + strings.TrimLeft(k, "-")
		switch v := doc[k].(type) {
		case []any:
			for i, e := range v {
				value, err := tomlValue(e)
				if err != nil {
					return nil, fmt.Errorf("%w: key '%s'[%d]: %w", getarg.ErrorParsing, k, i, err)
				}
				pairs = append(pairs, Pair{Key: key, Value: value})
			}
		default:
			value, err := tomlValue(v)
			if err != nil {
				return nil, fmt.Errorf("%w: key '%s': %w", getarg.ErrorParsing, k, err)
			}
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
	}
	return pairs, nil
}

func tomlValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		// dates and times
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
