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
	"fmt"
)

// ErrorParsing - Indicates that there was an error parsing a config source.
// The Store getters never fail, this is only returned by loaders like the conf package.
var ErrorParsing = errors.New("parsing error")

// ErrorNotFound - Generic not found error
var ErrorNotFound = fmt.Errorf("not found")
