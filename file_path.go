// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FilePath is 1-1 with every non-streamed file path in the archive.
type FilePath struct {
	// PathAndEntity packs this file's path hash together with the index of
	// the FileEntity that is the source of truth for its data.
	PathAndEntity HashWithData

	// ExtAndVersion packs the file's extension hash together with an index
	// into the versioned-file tables for this file's previous revision.
	// The versioned-file tables themselves are out of scope; Reinternalize
	// unconditionally erases the data half to InvalidIndex.
	ExtAndVersion HashWithData

	// Parent is the hash of this file's containing folder.
	Parent hashRecord

	// FileName is the hash of this file's name, including extension.
	FileName hashRecord
}

// Path returns the file's path hash.
func (p *FilePath) Path() Hash40 { return p.PathAndEntity.Hash40() }

// FileEntityIndex returns the index of the owning FileEntity.
func (p *FilePath) FileEntityIndex() uint32 { return p.PathAndEntity.Data() }

// SetFileEntityIndex rewrites the owning FileEntity index.
func (p *FilePath) SetFileEntityIndex(index uint32) { p.PathAndEntity.SetData(index) }

// Reinternalize rewrites the FileEntity index to its dense index, and
// unconditionally erases ExtAndVersion's payload to InvalidIndex: the
// versioned-file history this field used to index is dropped on rewrite
// (spec §9, the one other unconditional INVALID case besides FileDesc's
// Owned payload).
func (p *FilePath) Reinternalize(state *SerState) {
	index := p.PathAndEntity.Data()
	p.PathAndEntity.SetData(get[FileEntity](state, index))

	p.ExtAndVersion.SetData(InvalidIndex)
}
