// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import (
	"bytes"
	"encoding/binary"
)

// ResourceTableHeader is the fixed-size header at the start of a
// decompressed resource section. Its table-length fields describe the
// sequential table layout that follows it (spec §4.6): every table and
// lookup after the header is read back to back, in the order Load walks
// them (stream tables first), not in the field order below.
type ResourceTableHeader struct {
	ResourceDataSize uint32
	FilePathCount    uint32
	FileEntityCount  uint32

	FilePackageCount      uint32
	FileDataGroupCount    uint32
	FilePackageChildCount uint32
	FilePackageInfoCount  uint32
	FilePackageDescCount  uint32
	FilePackageDataCount  uint32

	FileInfoGroupCount uint32
	FileGroupInfoCount uint32

	Padding [0xC]byte

	LocaleCount uint8
	RegionCount uint8

	Padding2 [0x2]byte

	VersionPatch uint8
	VersionMinor uint8
	VersionMajor uint16

	VersionedFileGroupCount uint32
	VersionedFileCount      uint32
	Padding3                [0x4]byte
	VersionedFileInfoCount  uint32
	VersionedFileDescCount  uint32
	VersionedFileDataCount  uint32

	// LocalRegionHashToRegion maps a locale to its 3-entry fallback region
	// list, used when a localized file has no descriptor for the running
	// locale (one row per locale, see FileDesc's UnsupportedRegionLocale).
	LocalRegionHashToRegion [14][3]uint32

	StreamFolderCount uint32
	StreamPathCount   uint32
	StreamDescCount   uint32
	StreamDataCount   uint32
}

// ResourceTables is the loaded, still-byte-identical-to-disk resource
// section: every table and lookup from spec §4.6, plus the raw bytes they
// were cast from (tables hold zero-copy views into RawData).
type ResourceTables struct {
	RawData []byte

	StreamFolder     Table[StreamFolder]
	StreamPathLookup IndexLookup
	StreamPath       Table[StreamPath]
	StreamDesc       Table[StreamDesc]
	StreamData       Table[StreamData]

	FilePathLookup    BucketLookup
	FilePath          Table[FilePath]
	FileEntity        Table[FileEntity]
	FilePackageLookup IndexLookup
	FilePackage       Table[FilePackage]
	FileGroup         Table[FileGroup]
	FilePackageChild  Table[FilePackageChild]
	FileInfo          Table[FileInfo]
	FileDesc          Table[FileDesc]
	FileData          Table[FileData]
}

// Load parses a decompressed resource section into ResourceTables. It
// performs zero-copy casts into data, so data must outlive the returned
// value and must not be mutated while it is in use.
func Load(data []byte) (*ResourceTables, error) {
	if uintptr(len(data)) < sizeOf[ResourceTableHeader]() {
		return nil, ErrHeaderTooSmall
	}

	header := *castOne[ResourceTableHeader](data)
	if header.LocaleCount != LocaleCount {
		return nil, ErrLocaleCount
	}
	if header.RegionCount != RegionCount {
		return nil, ErrRegionCount
	}

	c := newCursor(data)
	c.takeBytes(int(sizeOf[ResourceTableHeader]()))

	streamFolder := newTable[StreamFolder](c, int(header.StreamFolderCount))
	streamPathLookup := newIndexLookup(c, int(header.StreamPathCount))
	streamPath := newTable[StreamPath](c, int(header.StreamPathCount))
	streamDesc := newTable[StreamDesc](c, int(header.StreamDescCount))
	streamData := newTable[StreamData](c, int(header.StreamDataCount))

	filePathLookupCount := binary.LittleEndian.Uint32(c.takeBytes(4))
	filePathBucketCount := binary.LittleEndian.Uint32(c.takeBytes(4))
	filePathLookup := newBucketLookup(c, int(filePathLookupCount), int(filePathBucketCount))

	filePath := newTable[FilePath](c, int(header.FilePathCount))
	fileEntity := newTable[FileEntity](c, int(header.FileEntityCount))
	filePackageLookup := newIndexLookup(c, int(header.FilePackageCount))
	filePackage := newTable[FilePackage](c, int(header.FilePackageCount))

	// The FileGroup table holds three logically distinct runs back to
	// back: data-disposition groups, info-disposition groups, and groups
	// belonging to the out-of-scope versioned-file history.
	fileGroup := newTable[FileGroup](c, int(header.FileInfoGroupCount+header.FileDataGroupCount+header.VersionedFileGroupCount))

	filePackageChild := newTable[FilePackageChild](c, int(header.FilePackageChildCount))

	// FileInfo/FileDesc/FileData table lengths all reuse FileGroupInfoCount
	// alongside their own per-table count: a FileGroup's info-disposition
	// children live in the same index space as a FilePackage's, so the
	// header counts them once but the loader must still add that count in
	// three places to size each table correctly.
	fileInfo := newTable[FileInfo](c, int(header.FilePackageInfoCount+header.FileGroupInfoCount+header.VersionedFileInfoCount))
	fileDesc := newTable[FileDesc](c, int(header.FilePackageDescCount+header.FileGroupInfoCount+header.VersionedFileDescCount))
	fileData := newTable[FileData](c, int(header.FilePackageDataCount+header.FileGroupInfoCount+header.VersionedFileDataCount))

	return &ResourceTables{
		RawData:           data,
		StreamFolder:      streamFolder,
		StreamPathLookup:  streamPathLookup,
		StreamPath:        streamPath,
		StreamDesc:        streamDesc,
		StreamData:        streamData,
		FilePathLookup:    filePathLookup,
		FilePath:          filePath,
		FileEntity:        fileEntity,
		FilePackageLookup: filePackageLookup,
		FilePackage:       filePackage,
		FileGroup:         fileGroup,
		FilePackageChild:  filePackageChild,
		FileInfo:          fileInfo,
		FileDesc:          fileDesc,
		FileData:          fileData,
	}, nil
}

// writeTable appends table[index] for each index in order, after applying
// reinternalize, to buf. It panics if an index is not present in table,
// which would indicate a reservation was made against the wrong table.
func writeTable[T any](table Table[T], indexes []uint32, reinternalize func(*T) error, buf *bytes.Buffer) error {
	for _, index := range indexes {
		v, ok := table.Get(index)
		if !ok {
			panic("arcres: reserved index missing from source table")
		}
		value := *v
		if err := reinternalize(&value); err != nil {
			return err
		}
		buf.Write(castBytes(&value))
	}
	return nil
}

// writeLookup appends one rewritten HashWithData per lookup entry, mapping
// each entry's payload index through state into its dense index for T.
func writeLookup[T any](entries []HashWithData, state *SerState, buf *bytes.Buffer) error {
	for _, e := range entries {
		rewritten := NewHashWithData(e.Hash40(), get[T](state, e.Data()))
		buf.Write(castBytes(&rewritten))
	}
	return nil
}

func noop[T any](*T) error { return nil }

// Reserialize performs dense-index compaction: it walks the resource graph
// from its roots (every FilePackage, then the info-disposition FileGroups
// they reach through a sub-package, then every FilePath/FileEntity, then
// every StreamFolder) to discover which records are actually referenced,
// assigns each a new dense index in discovery order, and emits a byte-for-
// byte-equivalent but gap-free resource section (spec §4.7).
//
// Records never reached from a root — orphaned entries left behind by
// earlier edits — are silently dropped. This is the point of the rewrite.
func (r *ResourceTables) Reserialize(archive *Archive) ([]byte, error) {
	cache := newSerState()

	var infoGroups []uint32

	r.FilePackage.Iter(func(index uint32, pkg *FilePackage) {
		reserve[FilePackage](cache, index)
		pkg.Reserve(cache)

		start, count := pkg.DataGroupRange()
		for i := start; i < start+count; i++ {
			group, ok := r.FileGroup.Get(i)
			if !ok {
				panic("arcres: file data group is missing")
			}
			group.Reserve(cache, true)
		}

		istart, icount := pkg.InfoRange()
		for i := istart; i < istart+icount; i++ {
			info, ok := r.FileInfo.Get(i)
			if !ok {
				panic("arcres: file info is missing")
			}
			info.Reserve(cache)
		}

		if sub, ok := archive.SubPackage(pkg); ok && sub.Kind == SubPackageFileGroup {
			infoGroups = append(infoGroups, sub.FileGroupIndex)
		}
	})

	var infoStart uint32
	haveInfoStart := false

	for _, groupIndex := range infoGroups {
		if !tryReserve[FileGroup](cache, groupIndex) {
			continue
		}
		if !haveInfoStart {
			infoStart = groupIndex
			haveInfoStart = true
		}

		group, ok := r.FileGroup.Get(groupIndex)
		if !ok {
			panic("arcres: file group index should be valid")
		}
		group.Reserve(cache, false)

		start, count := group.ChildRange()
		for i := start; i < start+count; i++ {
			info, ok := r.FileInfo.Get(i)
			if !ok {
				panic("arcres: file info index should be valid")
			}
			info.Reserve(cache)

			dstart, dcount := info.DescriptorRange()
			for j := dstart; j < dstart+dcount; j++ {
				desc, ok := r.FileDesc.Get(j)
				if !ok {
					panic("arcres: file desc index should be valid")
				}
				desc.Reserve(cache)
			}
		}
	}

	if !haveInfoStart {
		panic("arcres: no info-disposition file group reachable from any package")
	}

	r.FilePath.Iter(func(index uint32, _ *FilePath) {
		reserve[FilePath](cache, index)
	})

	r.FileEntity.Iter(func(index uint32, _ *FileEntity) {
		reserve[FileEntity](cache, index)
	})

	r.StreamFolder.Iter(func(index uint32, folder *StreamFolder) {
		reserve[StreamFolder](cache, index)
		folder.Reserve(cache)

		start, count := folder.StreamPathRange()
		for i := start; i < start+count; i++ {
			path, ok := r.StreamPath.Get(i)
			if !ok {
				panic("arcres: stream path index should be valid")
			}
			path.Reserve(cache)

			dstart, dcount := path.DescriptorRange()
			for j := dstart; j < dstart+dcount; j++ {
				desc, ok := r.StreamDesc.Get(j)
				if !ok {
					panic("arcres: stream desc index should be valid")
				}
				desc.Reserve(cache)
			}
		}
	})

	var buf bytes.Buffer
	buf.Grow(len(r.RawData))

	if err := writeTable(r.StreamFolder, iterOriginal[StreamFolder](cache), func(v *StreamFolder) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeLookup[StreamPath](r.StreamPathLookup.Entries(), cache, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.StreamPath, iterOriginal[StreamPath](cache), func(v *StreamPath) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.StreamDesc, iterOriginal[StreamDesc](cache), func(v *StreamDesc) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.StreamData, iterOriginal[StreamData](cache), noop[StreamData], &buf); err != nil {
		return nil, err
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(r.FilePathLookup.Len()))
	buf.Write(lenBuf[:])
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(r.FilePathLookup.BucketCount()))
	buf.Write(lenBuf[:])
	for _, bucket := range r.FilePathLookup.Buckets() {
		b := bucket
		buf.Write(castBytes(&b))
	}

	if err := writeLookup[FilePath](r.FilePathLookup.Entries(), cache, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.FilePath, iterOriginal[FilePath](cache), func(v *FilePath) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}

	packageLen := uint32(r.FilePackage.Len())
	if err := writeTable(r.FileEntity, iterOriginal[FileEntity](cache), func(v *FileEntity) error {
		v.Reinternalize(cache, packageLen)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeLookup[FilePackage](r.FilePackageLookup.Entries(), cache, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.FilePackage, iterOriginal[FilePackage](cache), func(v *FilePackage) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}

	groupOriginals := iterOriginal[FileGroup](cache)
	splitAt := len(groupOriginals)
	for i, idx := range groupOriginals {
		if idx >= infoStart {
			splitAt = i
			break
		}
	}
	if err := writeTable(r.FileGroup, groupOriginals[:splitAt], func(v *FileGroup) error {
		v.ReinternalizeData(cache, packageLen)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.FileGroup, groupOriginals[splitAt:], func(v *FileGroup) error {
		v.ReinternalizeInfo(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}

	if err := writeTable(r.FilePackageChild, iterOriginal[FilePackageChild](cache), func(v *FilePackageChild) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.FileInfo, iterOriginal[FileInfo](cache), func(v *FileInfo) error {
		v.Reinternalize(cache)
		return nil
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.FileDesc, iterOriginal[FileDesc](cache), func(v *FileDesc) error {
		return v.Reinternalize(cache)
	}, &buf); err != nil {
		return nil, err
	}
	if err := writeTable(r.FileData, iterOriginal[FileData](cache), noop[FileData], &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// QuickSerialize re-emits every table verbatim, in on-disk order, with no
// compaction and no rewriting. It is a passthrough used when the caller
// only needs a byte-identical round trip (spec §4 supplement) rather than
// the dense-index rewrite Reserialize performs.
func (r *ResourceTables) QuickSerialize() []byte {
	var buf bytes.Buffer

	quickSerializeTable(r.StreamFolder, &buf)
	quickSerializeLookup(r.StreamPathLookup.Entries(), &buf)
	quickSerializeTable(r.StreamPath, &buf)
	quickSerializeTable(r.StreamDesc, &buf)
	quickSerializeTable(r.StreamData, &buf)

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(r.FilePathLookup.Len()))
	buf.Write(lenBuf[:])
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(r.FilePathLookup.BucketCount()))
	buf.Write(lenBuf[:])
	for _, bucket := range r.FilePathLookup.Buckets() {
		b := bucket
		buf.Write(castBytes(&b))
	}
	quickSerializeLookup(r.FilePathLookup.Entries(), &buf)

	quickSerializeTable(r.FilePath, &buf)
	quickSerializeTable(r.FileEntity, &buf)
	quickSerializeLookup(r.FilePackageLookup.Entries(), &buf)
	quickSerializeTable(r.FilePackage, &buf)
	quickSerializeTable(r.FileGroup, &buf)
	quickSerializeTable(r.FilePackageChild, &buf)
	quickSerializeTable(r.FileInfo, &buf)
	quickSerializeTable(r.FileDesc, &buf)
	quickSerializeTable(r.FileData, &buf)

	return buf.Bytes()
}

func quickSerializeTable[T any](table Table[T], buf *bytes.Buffer) {
	buf.Write(castSliceBytes(table.Fixed()))
	buf.Write(castSliceBytes(table.Dynamic()))
}

func quickSerializeLookup(entries []HashWithData, buf *bytes.Buffer) {
	buf.Write(castSliceBytes(entries))
}
