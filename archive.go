// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// Archive is the reference facade over a loaded resource section: the
// small, read-mostly accessor surface callers are expected to use instead
// of reaching into ResourceTables directly.
type Archive struct {
	Metadata ArchiveMetadata
	resource *ResourceTables
}

// NewArchive wraps already-loaded resource tables and their container
// metadata into an Archive.
func NewArchive(metadata ArchiveMetadata, resource *ResourceTables) *Archive {
	return &Archive{Metadata: metadata, resource: resource}
}

// Resource exposes the underlying tables for callers that need direct
// access beyond this facade (the re-serializer is one such caller).
func (a *Archive) Resource() *ResourceTables { return a.resource }

// TableRef is a table record paired with the archive it came from, letting
// a record's accessor methods reach into other tables without threading an
// Archive parameter through every call site.
type TableRef[T any] struct {
	Archive *Archive
	Index   uint32
	Value   *T
}

func newTableRef[T any](archive *Archive, table Table[T], index uint32) (TableRef[T], bool) {
	v, ok := table.Get(index)
	if !ok {
		return TableRef[T]{}, false
	}
	return TableRef[T]{Archive: archive, Index: index, Value: v}, true
}

// TableSliceRef is a contiguous run of table records paired with their
// archive, as returned by a group's child accessor.
type TableSliceRef[T any] struct {
	Archive *Archive
	Start   uint32
	Values  []T
}

func newTableSliceRef[T any](archive *Archive, table Table[T], start, count uint32) (TableSliceRef[T], bool) {
	values, ok := table.Slice(start, count)
	if !ok {
		return TableSliceRef[T]{}, false
	}
	return TableSliceRef[T]{Archive: archive, Start: start, Values: values}, true
}

// Accessors. One pair per table: Get<Name> for a single record, and for
// group-shaped tables Get<Name>Slice for a contiguous run.

func (a *Archive) NumFilePath() int      { return a.resource.FilePath.Len() }
func (a *Archive) NumFileEntity() int    { return a.resource.FileEntity.Len() }
func (a *Archive) NumFileInfo() int      { return a.resource.FileInfo.Len() }
func (a *Archive) NumFileDesc() int      { return a.resource.FileDesc.Len() }
func (a *Archive) NumFileData() int      { return a.resource.FileData.Len() }
func (a *Archive) NumFilePackage() int   { return a.resource.FilePackage.Len() }
func (a *Archive) NumFileGroup() int     { return a.resource.FileGroup.Len() }
func (a *Archive) NumStreamFolder() int  { return a.resource.StreamFolder.Len() }
func (a *Archive) NumStreamPath() int    { return a.resource.StreamPath.Len() }
func (a *Archive) NumStreamDesc() int    { return a.resource.StreamDesc.Len() }
func (a *Archive) NumStreamData() int    { return a.resource.StreamData.Len() }

func (a *Archive) GetFilePath(index uint32) (*FilePath, bool) { return a.resource.FilePath.Get(index) }
func (a *Archive) GetFileEntity(index uint32) (*FileEntity, bool) {
	return a.resource.FileEntity.Get(index)
}
func (a *Archive) GetFileInfo(index uint32) (*FileInfo, bool) { return a.resource.FileInfo.Get(index) }
func (a *Archive) GetFileDesc(index uint32) (*FileDesc, bool) { return a.resource.FileDesc.Get(index) }
func (a *Archive) GetFileData(index uint32) (*FileData, bool) { return a.resource.FileData.Get(index) }
func (a *Archive) GetFilePackageChild(index uint32) (*FilePackageChild, bool) {
	return a.resource.FilePackageChild.Get(index)
}
func (a *Archive) GetFileGroup(index uint32) (*FileGroup, bool) {
	return a.resource.FileGroup.Get(index)
}
func (a *Archive) GetStreamFolder(index uint32) (*StreamFolder, bool) {
	return a.resource.StreamFolder.Get(index)
}
func (a *Archive) GetStreamPath(index uint32) (*StreamPath, bool) {
	return a.resource.StreamPath.Get(index)
}
func (a *Archive) GetStreamDesc(index uint32) (*StreamDesc, bool) {
	return a.resource.StreamDesc.Get(index)
}
func (a *Archive) GetStreamData(index uint32) (*StreamData, bool) {
	return a.resource.StreamData.Get(index)
}

// GetFilePackage returns a FilePackage wrapped with the archive it came
// from, so its SubPackage/DataGroup/GetSymLink methods can resolve the
// FileGroup and sibling FilePackage records they reference.
func (a *Archive) GetFilePackage(index uint32) (TableRef[FilePackage], bool) {
	return newTableRef(a, a.resource.FilePackage, index)
}

func (a *Archive) GetFileInfoSlice(start, count uint32) (TableSliceRef[FileInfo], bool) {
	return newTableSliceRef(a, a.resource.FileInfo, start, count)
}

func (a *Archive) GetFileDataSlice(start, count uint32) (TableSliceRef[FileData], bool) {
	return newTableSliceRef(a, a.resource.FileData, start, count)
}

// LookupFilePath resolves a path hash to its FilePath, via the bucketed
// file path lookup table.
func (a *Archive) LookupFilePath(hash Hash40) (*FilePath, bool) {
	index, ok := a.resource.FilePathLookup.Get(hash)
	if !ok {
		return nil, false
	}
	return a.resource.FilePath.Get(index)
}

// LookupStreamPath resolves a stream path hash to its StreamPath.
func (a *Archive) LookupStreamPath(hash Hash40) (*StreamPath, bool) {
	index, ok := a.resource.StreamPathLookup.Get(hash)
	if !ok {
		return nil, false
	}
	return a.resource.StreamPath.Get(index)
}

// LookupFilePackage resolves a package path hash to its FilePackage.
func (a *Archive) LookupFilePackage(hash Hash40) (TableRef[FilePackage], bool) {
	index, ok := a.resource.FilePackageLookup.Get(hash)
	if !ok {
		return TableRef[FilePackage]{}, false
	}
	return a.GetFilePackage(index)
}

// SubPackageKind distinguishes the two shapes a FilePackage's sub-package
// can take (spec §4.4).
type SubPackageKind int

const (
	// SubPackageNone means the package has no sub-package.
	SubPackageNone SubPackageKind = iota
	// SubPackageFileGroup means the sub-package is an info-disposition
	// FileGroup belonging to this same package.
	SubPackageFileGroup
	// SubPackageSymLink means the sub-package is another FilePackage whose
	// content supersedes this one's.
	SubPackageSymLink
)

// SubPackage describes a FilePackage's resolved sub-package, if any.
type SubPackage struct {
	Kind           SubPackageKind
	FileGroupIndex uint32 // valid when Kind == SubPackageFileGroup
	SymLinkIndex   uint32 // valid when Kind == SubPackageSymLink
}

// SubPackage resolves pkg's sub-package redirection, if PackageHasSubPackage
// is set: either a sibling info-disposition FileGroup, or (if
// PackageIsSymLink is also set) another FilePackage entirely.
func (a *Archive) SubPackage(pkg *FilePackage) (SubPackage, bool) {
	if pkg.Flags&PackageHasSubPackage == 0 {
		return SubPackage{}, false
	}

	group, ok := a.resource.FileGroup.Get(pkg.PathAndGroup.Data())
	if !ok {
		panic("arcres: file group should exist")
	}
	redirection := group.Redirection

	if pkg.Flags&PackageIsSymLink != 0 {
		return SubPackage{Kind: SubPackageSymLink, SymLinkIndex: redirection}, true
	}
	if redirection != InvalidIndex {
		return SubPackage{Kind: SubPackageFileGroup, FileGroupIndex: redirection}, true
	}
	return SubPackage{}, false
}

// DataGroup returns the FileGroup that holds pkg's own file data.
func (a *Archive) DataGroup(pkg *FilePackage) *FileGroup {
	group, ok := a.resource.FileGroup.Get(pkg.PathAndGroup.Data())
	if !ok {
		panic("arcres: file group should exist")
	}
	return group
}

// GetSymLink resolves pkg's symlink target, if it has one. It panics if
// PackageHasSubPackage|PackageIsSymLink is set but the data group's
// Redirection is InvalidIndex: a symlink package whose data group does not
// name a target package is a corrupt archive, not a recoverable case (spec
// §4.4 note on FilePackage.GetSymLink).
func (a *Archive) GetSymLink(pkg *FilePackage) (TableRef[FilePackage], bool) {
	if pkg.Flags&(PackageHasSubPackage|PackageIsSymLink) != PackageHasSubPackage|PackageIsSymLink {
		return TableRef[FilePackage]{}, false
	}

	group := a.DataGroup(pkg)
	if group.Redirection == InvalidIndex {
		panic("arcres: data group on sym link must refer to file package")
	}

	symLink, ok := a.GetFilePackage(group.Redirection)
	if !ok {
		panic("arcres: file package for sym link should exist")
	}
	return symLink, true
}

// FileInfoGroup returns the FileGroup at groupIndex (for example a
// SubPackage's FileGroupIndex) as a ref. It does not check the group's
// disposition.
func (a *Archive) FileInfoGroup(groupIndex uint32) (TableRef[FileGroup], bool) {
	return newTableRef(a, a.resource.FileGroup, groupIndex)
}

// FileInfoOf returns the FileInfo slice an info-disposition FileGroup owns.
func (a *Archive) FileInfoOf(group TableRef[FileGroup]) (TableSliceRef[FileInfo], bool) {
	start, count := group.Value.ChildRange()
	return a.GetFileInfoSlice(start, count)
}

// FileDataOf returns the FileData slice a data-disposition FileGroup owns.
func (a *Archive) FileDataOf(group TableRef[FileGroup]) (TableSliceRef[FileData], bool) {
	start, count := group.Value.ChildRange()
	return a.GetFileDataSlice(start, count)
}
