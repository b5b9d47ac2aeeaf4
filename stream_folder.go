// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// StreamFolder groups StreamPath records under a shared folder name, the
// streaming counterpart of a directory. Unlike FilePackage it carries no
// flags or children of its own beyond the one contiguous StreamPath slice.
type StreamFolder struct {
	// NameAndChildCount packs the folder's name hash (without the "stream:"
	// prefix) together with the number of StreamPath children it owns.
	NameAndChildCount HashWithData

	// ChildStartIndex is the first index into the StreamPath table.
	ChildStartIndex uint32
}

// StreamPathRange returns the checked range of StreamPath indices this
// folder owns.
func (f *StreamFolder) StreamPathRange() (start, count uint32) {
	return checkedRange(f.ChildStartIndex, f.NameAndChildCount.Data())
}

// SetStreamPathStart rewrites ChildStartIndex.
func (f *StreamFolder) SetStreamPathStart(index uint32) { f.ChildStartIndex = index }

// Reserve marks every StreamPath this folder owns as referenced.
func (f *StreamFolder) Reserve(state *SerState) {
	reserveRange[StreamPath](state, f.ChildStartIndex, f.NameAndChildCount.Data())
}

// Reinternalize rewrites ChildStartIndex to its dense index.
func (f *StreamFolder) Reinternalize(state *SerState) {
	f.ChildStartIndex = get[StreamPath](state, f.ChildStartIndex)
}
