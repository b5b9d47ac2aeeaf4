// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FileInfo represents one file's bookkeeping. Unlike FileEntity (1-1 with
// actual data) and FilePath (1-1 with a path), several FileInfo records can
// describe the same underlying file: one per owning package/group, plus one
// per non-authoritative reference to shared data.
type FileInfo struct {
	// Path indexes the FilePath this info represents. Not necessarily the
	// reverse of that FilePath's own entity reference.
	Path uint32

	// Entity indexes the FileEntity that is the source of truth for this
	// file's data.
	Entity uint32

	// Desc indexes the first FileDesc this info owns.
	Desc uint32

	// Flags is a bitmask of InfoIs* constants.
	Flags uint32
}

// DescriptorRange returns the checked range of FileDesc indices this info
// owns: LocaleCount+1 if localized, RegionCount+1 if regional, else 1.
func (i *FileInfo) DescriptorRange() (start, count uint32) {
	var n uint32
	switch {
	case i.Flags&InfoIsLocalized != 0:
		n = LocaleCount + 1
	case i.Flags&InfoIsRegional != 0:
		n = RegionCount + 1
	default:
		n = 1
	}
	return checkedRange(i.Desc, n)
}

// Reserve marks this info's FileDesc range as referenced.
func (i *FileInfo) Reserve(state *SerState) {
	_, count := i.DescriptorRange()
	reserveRange[FileDesc](state, i.Desc, count)
}

// Reinternalize rewrites Path, Entity, and Desc to their dense indices.
func (i *FileInfo) Reinternalize(state *SerState) {
	i.Path = get[FilePath](state, i.Path)
	i.Entity = get[FileEntity](state, i.Entity)
	i.Desc = get[FileDesc](state, i.Desc)
}
