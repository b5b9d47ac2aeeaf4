// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FilePackage is a named, bulk-loadable collection of files. Packages often
// correspond to a directory-like concept (fighter/mario/c03) but can also
// act as a symlink to another package's contents, and can be regional or
// localized the same way FileInfo can.
type FilePackage struct {
	// PathAndGroup packs the package's full path hash together with the
	// start index of its FileGroup data-group range.
	PathAndGroup HashWithData

	// Name is this package's leaf name, e.g. "c03" in "fighter/mario/c03".
	Name hashRecord

	// Parent is the hash of this package's parent in the traditional
	// filesystem sense — not necessarily another FilePackage.
	Parent hashRecord

	// Lifetime is observed but unread by any known loader path.
	Lifetime hashRecord

	// InfoStart is the first index into the FileInfo table.
	InfoStart uint32

	// InfoCount is the number of FileInfo records this package owns.
	InfoCount uint32

	// ChildStart is the first index into the FilePackageChild table.
	ChildStart uint32

	// ChildCount is the number of child packages.
	ChildCount uint32

	// Flags is a bitmask of PackageIs*/PackageHas* constants.
	Flags uint32
}

// FilePackageChild is an entry in a package's child-package list: the hash
// half is unused context, the data half is a FilePackage index. A package
// that is self-recursive here would cause the resource loader to recurse
// forever, so this is treated as a logical invariant rather than checked.
type FilePackageChild struct {
	Inner HashWithData
}

// Reinternalize rewrites the referenced FilePackage index to its dense
// index.
func (c *FilePackageChild) Reinternalize(state *SerState) {
	c.Inner.SetData(get[FilePackage](state, c.Inner.Data()))
}

// Path returns the package's full path hash.
func (p *FilePackage) Path() Hash40 { return p.PathAndGroup.Hash40() }

// InfoRange returns the checked range of FileInfo indices this package owns.
func (p *FilePackage) InfoRange() (start, count uint32) {
	return checkedRange(p.InfoStart, p.InfoCount)
}

// ChildPackageRange returns the checked range of FilePackageChild indices.
func (p *FilePackage) ChildPackageRange() (start, count uint32) {
	return checkedRange(p.ChildStart, p.ChildCount)
}

// DataGroupRange returns the checked range of FileGroup indices this
// package's data groups occupy: LocaleCount+1 if localized, RegionCount+1
// if regional, else 1.
func (p *FilePackage) DataGroupRange() (start, count uint32) {
	var n uint32
	switch {
	case p.Flags&PackageIsLocalized != 0:
		n = LocaleCount + 1
	case p.Flags&PackageIsRegional != 0:
		n = RegionCount + 1
	default:
		n = 1
	}
	return checkedRange(p.PathAndGroup.Data(), n)
}

// SetInfoStart rewrites InfoStart.
func (p *FilePackage) SetInfoStart(index uint32) { p.InfoStart = index }

// SetChildStart rewrites ChildStart.
func (p *FilePackage) SetChildStart(index uint32) { p.ChildStart = index }

// SetDataGroupStart rewrites the data-group start index packed into
// PathAndGroup.
func (p *FilePackage) SetDataGroupStart(index uint32) { p.PathAndGroup.SetData(index) }

// Reserve marks this package's children, infos, and data groups as
// referenced.
func (p *FilePackage) Reserve(state *SerState) {
	reserveRange[FilePackageChild](state, p.ChildStart, p.ChildCount)
	reserveRange[FileInfo](state, p.InfoStart, p.InfoCount)
	_, count := p.DataGroupRange()
	reserveRange[FileGroup](state, p.PathAndGroup.Data(), count)
}

// Reinternalize rewrites ChildStart, InfoStart, and the data-group start
// index to their dense indices. A zero-count child or info range is
// rewritten to InvalidIndex rather than the dense index of a range that was
// never reserved.
func (p *FilePackage) Reinternalize(state *SerState) {
	if p.ChildCount == 0 {
		p.ChildStart = InvalidIndex
	} else {
		p.ChildStart = get[FilePackageChild](state, p.ChildStart)
	}

	if p.InfoCount == 0 {
		p.InfoStart = InvalidIndex
	} else {
		p.InfoStart = get[FileInfo](state, p.InfoStart)
	}

	index := p.PathAndGroup.Data()
	p.PathAndGroup.SetData(get[FileGroup](state, index))
}
