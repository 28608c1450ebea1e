// This file is part of go-getarg.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getarg

import (
	"context"
	"testing"
)

func TestContext(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Errorf("FromContext found a store in an empty context")
	}

	s := resetArgs("-h4h=1")
	ctx := NewContext(context.Background(), s)
	got, ok := FromContext(ctx)
	if !ok || got != s {
		t.Fatalf("FromContext got (%v, %v), want (%v, true)", got, ok, s)
	}
	if !got.GetBoolArg("h4h", false) {
		t.Errorf("GetBoolArg(h4h) through context got false")
	}

	if _, ok := FromContext(NewContext(context.Background(), nil)); ok {
		t.Errorf("FromContext reported a nil store")
	}
}
