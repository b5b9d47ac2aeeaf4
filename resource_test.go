// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "testing"

// buildFixture assembles a minimal but fully-connected resource graph: one
// package owning one file directly and, through a PackageHasSubPackage
// redirection, one info-disposition FileGroup owning a second file. An
// unreferenced FileData record is also present, to exercise dense-index
// compaction dropping orphans.
func buildFixture() (*ResourceTables, *Archive) {
	pkg := FilePackage{
		PathAndGroup: NewHashWithData(NewHash40(0x1, 3), 0), // data group 0
		InfoStart:    0,
		InfoCount:    1,
		Flags:        PackageHasSubPackage,
	}

	dataGroup := FileGroup{ChildStart: 0, ChildCount: 1, Redirection: 1} // -> info group 1
	infoGroup := FileGroup{ChildStart: 1, ChildCount: 1, Redirection: 1} // self

	fileData := []FileData{
		{InGroupOffset: 0, CompressedSize: 10, DecompressedSize: 10},
		{InGroupOffset: 100, CompressedSize: 20, DecompressedSize: 20},
		{InGroupOffset: 999, CompressedSize: 1, DecompressedSize: 1}, // orphan
	}

	fileInfo := []FileInfo{
		{Path: 0, Entity: 0, Desc: 0},
		{Path: 1, Entity: 1, Desc: 1},
	}

	fileDesc := []FileDesc{
		{Group: 0, FileData: 0, LoadMethod: packLoadMethod(loadMethodUnowned, 0)},
		{Group: 1, FileData: 1, LoadMethod: packLoadMethod(loadMethodUnowned, 1)},
	}

	fileEntity := []FileEntity{
		{PackageOrGroup: 0, Info: 0}, // 0 < packageLen(1) -> FilePackage
		{PackageOrGroup: 1, Info: 1}, // 1 >= packageLen(1) -> FileGroup
	}

	filePath := []FilePath{
		{PathAndEntity: NewHashWithData(NewHash40(0x10, 1), 0), ExtAndVersion: NewHashWithData(NewHash40(0x20, 1), 5)},
		{PathAndEntity: NewHashWithData(NewHash40(0x11, 1), 1), ExtAndVersion: NewHashWithData(0, 0)},
	}

	tables := &ResourceTables{
		FilePackage:      Table[FilePackage]{fixed: []FilePackage{pkg}},
		FileGroup:        Table[FileGroup]{fixed: []FileGroup{dataGroup, infoGroup}},
		FileData:         Table[FileData]{fixed: fileData},
		FileInfo:         Table[FileInfo]{fixed: fileInfo},
		FileDesc:         Table[FileDesc]{fixed: fileDesc},
		FileEntity:       Table[FileEntity]{fixed: fileEntity},
		FilePath:         Table[FilePath]{fixed: filePath},
		FilePackageChild: Table[FilePackageChild]{},
		StreamFolder:     Table[StreamFolder]{},
		StreamPath:       Table[StreamPath]{},
		StreamDesc:       Table[StreamDesc]{},
		StreamData:       Table[StreamData]{},
	}

	archive := NewArchive(ArchiveMetadata{}, tables)
	return tables, archive
}

func TestReserializeDropsOrphans(t *testing.T) {
	tables, archive := buildFixture()

	out, err := tables.Reserialize(archive)
	if err != nil {
		t.Fatalf("Reserialize() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Reserialize() produced no output")
	}

	wantSize := 2*int(sizeOf[FileData]()) + 2*int(sizeOf[FileInfo]()) + 2*int(sizeOf[FileDesc]()) +
		2*int(sizeOf[FileEntity]()) + 2*int(sizeOf[FilePath]()) + 1*int(sizeOf[FilePackage]()) +
		2*int(sizeOf[FileGroup]()) + 8 // file path lookup length + bucket count words
	if len(out) != wantSize {
		t.Errorf("output size = %d, want %d (the orphan FileData record should have been dropped)", len(out), wantSize)
	}
}

func TestReserializeIsDeterministic(t *testing.T) {
	tables1, archive1 := buildFixture()
	out1, err := tables1.Reserialize(archive1)
	if err != nil {
		t.Fatalf("Reserialize() error = %v", err)
	}

	tables2, archive2 := buildFixture()
	out2, err := tables2.Reserialize(archive2)
	if err != nil {
		t.Fatalf("second Reserialize() error = %v", err)
	}

	if len(out1) != len(out2) {
		t.Fatalf("output sizes differ: %d vs %d", len(out1), len(out2))
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("output byte %d differs: %#x vs %#x", i, out1[i], out2[i])
		}
	}

	// The source tables are untouched: writeTable rewrites a copy, never the
	// original record.
	pkg, _ := tables2.FilePackage.Get(0)
	if pkg.PathAndGroup.Data() != 0 {
		t.Errorf("FilePackage data group index = %d, want 0 unchanged", pkg.PathAndGroup.Data())
	}
}

func TestReserializeErasesFilePathVersionData(t *testing.T) {
	tables, archive := buildFixture()
	out, err := tables.Reserialize(archive)
	if err != nil {
		t.Fatalf("Reserialize() error = %v", err)
	}

	// The fixture has no stream tables and an empty file path lookup, so the
	// first emitted FilePath follows the 8-byte lookup length/bucket header.
	path0 := castOne[FilePath](out[8:])
	if got := path0.ExtAndVersion.Data(); got != InvalidIndex {
		t.Errorf("FilePath[0].ExtAndVersion.Data() = %#x, want InvalidIndex", got)
	}
}

func TestReserializePanicsWithoutReachableInfoGroup(t *testing.T) {
	tables, archive := buildFixture()

	// Strip the sub-package redirection: no info-disposition FileGroup is
	// reachable from any package, which is an invariant violation.
	pkg, _ := tables.FilePackage.Get(0)
	pkg.Flags = 0

	defer func() {
		if recover() == nil {
			t.Error("expected panic when no package reaches an info-disposition file group")
		}
	}()
	_, _ = tables.Reserialize(archive)
}

func TestSafeReserializeRecoversPanic(t *testing.T) {
	tables, archive := buildFixture()
	pkg, _ := tables.FilePackage.Get(0)
	pkg.Flags = 0

	_, err := tables.SafeReserialize(archive, nil)
	if err == nil {
		t.Error("SafeReserialize() error = nil, want a recovered error")
	}
}

func TestQuickSerializeIsPassthrough(t *testing.T) {
	tables, _ := buildFixture()
	out := tables.QuickSerialize()

	wantSize := 3*int(sizeOf[FileData]()) + 2*int(sizeOf[FileInfo]()) + 2*int(sizeOf[FileDesc]()) +
		2*int(sizeOf[FileEntity]()) + 2*int(sizeOf[FilePath]()) + 1*int(sizeOf[FilePackage]()) +
		2*int(sizeOf[FileGroup]()) + 8 // file path lookup length + bucket count words
	if len(out) != wantSize {
		t.Errorf("QuickSerialize() size = %d, want %d (no records dropped)", len(out), wantSize)
	}
}
