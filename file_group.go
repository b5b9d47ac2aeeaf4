// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FileGroup is a contiguous chunk of archive data, addressed as a unit so a
// loader can decompress it on one thread while another inflates it. A
// FileGroup's children are positionally polymorphic: the same struct either
// owns a run of FileData (a "data group") or a run of FileInfo (an "info
// group"), disambiguated by which table the group was reached from rather
// than by any flag on the group itself.
type FileGroup struct {
	// ArchiveOffset is this chunk's starting offset, split into two u32
	// words to keep the struct 4-byte aligned.
	ArchiveOffset [2]uint32

	// DecompressedSize is the size of all of this group's contents once
	// decompressed.
	DecompressedSize uint32

	// CompressedSize is the size of all of this group's contents as stored.
	CompressedSize uint32

	// ChildStart is the first index into whichever table this group's
	// children live in (FileData for a data group, FileInfo for an info
	// group).
	ChildStart uint32

	// ChildCount is the number of children.
	ChildCount uint32

	// Redirection is context-dependent: for a data group it points at
	// either an info group or a FilePackage (or is InvalidIndex); for an
	// info group it always points back at a FileGroup, possibly itself.
	Redirection uint32
}

// ChildRange returns the checked range of child indices.
func (g *FileGroup) ChildRange() (start, count uint32) {
	return checkedRange(g.ChildStart, g.ChildCount)
}

// RedirectionIndex returns the raw, context-dependent Redirection value.
func (g *FileGroup) RedirectionIndex() uint32 { return g.Redirection }

// Reserve marks this group's children as referenced. For a data group
// (isData true) each FileData child may be shared with other groups, so
// each is try-reserved; for an info group the FileInfo children are
// exclusively owned by this group and are reserved as one contiguous range.
func (g *FileGroup) Reserve(state *SerState, isData bool) {
	if isData {
		start, count := g.ChildRange()
		for i := start; i < start+count; i++ {
			tryReserve[FileData](state, i)
		}
		return
	}
	reserveRange[FileInfo](state, g.ChildStart, g.ChildCount)
}

// ReinternalizeData rewrites a data group's ChildStart and, if present, its
// Redirection (which may point at either a FileGroup or a FilePackage,
// disambiguated by packageLen).
func (g *FileGroup) ReinternalizeData(state *SerState, packageLen uint32) {
	g.ChildStart = get[FileData](state, g.ChildStart)

	if g.Redirection != InvalidIndex {
		if g.Redirection >= packageLen {
			g.Redirection = get[FileGroup](state, g.Redirection)
		} else {
			g.Redirection = get[FilePackage](state, g.Redirection)
		}
	}
}

// ReinternalizeInfo rewrites an info group's ChildStart and Redirection,
// both always present.
func (g *FileGroup) ReinternalizeInfo(state *SerState) {
	g.ChildStart = get[FileInfo](state, g.ChildStart)
	g.Redirection = get[FileGroup](state, g.Redirection)
}
