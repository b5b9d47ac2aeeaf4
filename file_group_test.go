// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "testing"

func TestFileGroupChildRange(t *testing.T) {
	g := FileGroup{ChildStart: 10, ChildCount: 3}
	start, count := g.ChildRange()
	if start != 10 || count != 3 {
		t.Errorf("ChildRange() = (%d, %d), want (10, 3)", start, count)
	}
}

func TestFileGroupReserveDataSharesChildren(t *testing.T) {
	state := newSerState()
	g := FileGroup{ChildStart: 0, ChildCount: 2}
	g.Reserve(state, true)
	g.Reserve(state, true) // a second owning group sharing the same FileData range

	if got := iterOriginal[FileData](state); len(got) != 2 {
		t.Errorf("shared FileData children were reserved twice: %v", got)
	}
}

func TestFileGroupReserveInfoExclusive(t *testing.T) {
	state := newSerState()
	g := FileGroup{ChildStart: 0, ChildCount: 2}
	g.Reserve(state, false)

	if got := iterOriginal[FileInfo](state); len(got) != 2 {
		t.Errorf("iterOriginal[FileInfo] = %v, want 2 entries", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic reserving an info range twice (exclusive ownership)")
		}
	}()
	g.Reserve(state, false)
}

func TestFileGroupReinternalizeDataRedirectionToGroup(t *testing.T) {
	state := newSerState()
	reserve[FileData](state, 0)
	reserve[FileGroup](state, 9) // >= packageLen, so Redirection indexes FileGroup

	g := FileGroup{ChildStart: 0, Redirection: 9}
	g.ReinternalizeData(state, 5)

	if g.Redirection != 0 {
		t.Errorf("Redirection = %d, want 0 (dense FileGroup index)", g.Redirection)
	}
}

func TestFileGroupReinternalizeDataRedirectionToPackage(t *testing.T) {
	state := newSerState()
	reserve[FileData](state, 0)
	reserve[FilePackage](state, 3) // < packageLen, so Redirection indexes FilePackage

	g := FileGroup{ChildStart: 0, Redirection: 3}
	g.ReinternalizeData(state, 5)

	if g.Redirection != 0 {
		t.Errorf("Redirection = %d, want 0 (dense FilePackage index)", g.Redirection)
	}
}

func TestFileGroupReinternalizeDataInvalidRedirection(t *testing.T) {
	state := newSerState()
	reserve[FileData](state, 0)

	g := FileGroup{ChildStart: 0, Redirection: InvalidIndex}
	g.ReinternalizeData(state, 5)

	if g.Redirection != InvalidIndex {
		t.Errorf("Redirection = %d, want InvalidIndex preserved", g.Redirection)
	}
}

func TestFileGroupReinternalizeInfoAlwaysRewritesRedirection(t *testing.T) {
	state := newSerState()
	reserve[FileInfo](state, 0)
	reserve[FileGroup](state, 4) // self-reference

	g := FileGroup{ChildStart: 0, Redirection: 4}
	g.ReinternalizeInfo(state)

	if g.Redirection != 0 {
		t.Errorf("Redirection = %d, want 0 (dense self-reference)", g.Redirection)
	}
}
