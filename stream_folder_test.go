// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "testing"

func TestStreamFolderRangeAndReserve(t *testing.T) {
	state := newSerState()
	f := StreamFolder{
		NameAndChildCount: NewHashWithData(NewHash40(1, 1), 3),
		ChildStartIndex:   10,
	}

	start, count := f.StreamPathRange()
	if start != 10 || count != 3 {
		t.Fatalf("StreamPathRange() = (%d, %d), want (10, 3)", start, count)
	}

	f.Reserve(state)
	if got := iterOriginal[StreamPath](state); len(got) != 3 {
		t.Errorf("iterOriginal[StreamPath] len = %d, want 3", len(got))
	}
}

func TestStreamFolderReinternalize(t *testing.T) {
	state := newSerState()
	reserve[StreamPath](state, 10)

	f := StreamFolder{ChildStartIndex: 10}
	f.Reinternalize(state)

	if f.ChildStartIndex != 0 {
		t.Errorf("ChildStartIndex = %d, want 0", f.ChildStartIndex)
	}
}

func TestStreamFolderSetStreamPathStart(t *testing.T) {
	f := StreamFolder{}
	f.SetStreamPathStart(42)
	if f.ChildStartIndex != 42 {
		t.Errorf("ChildStartIndex = %d, want 42", f.ChildStartIndex)
	}
}
