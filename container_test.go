// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
)

// appendCompressedBlock writes one ZSTD-framed block (header + compressed
// payload) for the given decompressed contents.
func appendCompressedBlock(t *testing.T, buf *bytes.Buffer, decompressed []byte) {
	t.Helper()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter() error = %v", err)
	}
	defer enc.Close()

	compressed := enc.EncodeAll(decompressed, nil)

	var header [compressedBlockHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:4], compressedBlockHeaderSize)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(decompressed)))
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(compressed)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(header)+len(compressed)))

	buf.Write(header[:])
	buf.Write(compressed)
}

func minimalResourceSection() []byte {
	header := ResourceTableHeader{
		LocaleCount: LocaleCount,
		RegionCount: RegionCount,
	}
	data := make([]byte, sizeOf[ResourceTableHeader]())
	copy(data, castBytes(&header))
	// The bucket-lookup prefix (entry count, bucket count) follows every
	// empty table the header declares zero-length.
	data = append(data, make([]byte, 8)...)
	return data
}

func TestReadArchiveBadMagic(t *testing.T) {
	var buf bytes.Buffer
	meta := ArchiveMetadata{Magic: 0x1}
	buf.Write(castBytes(&meta))

	if _, err := ReadArchive(newMMapReader(buf.Bytes())); err == nil {
		t.Error("ReadArchive() error = nil, want ErrBadMagic")
	}
}

func TestReadArchiveRoundTrip(t *testing.T) {
	section := minimalResourceSection()

	var body bytes.Buffer
	appendCompressedBlock(t, &body, section)

	meta := ArchiveMetadata{
		Magic:               archiveMagic,
		ResourceTableOffset: uint64(sizeOf[ArchiveMetadata]()),
	}

	var full bytes.Buffer
	full.Write(castBytes(&meta))
	full.Write(body.Bytes())

	archive, err := ReadArchive(newMMapReader(full.Bytes()))
	if err != nil {
		t.Fatalf("ReadArchive() error = %v", err)
	}
	if got := archive.NumFilePath(); got != 0 {
		t.Errorf("NumFilePath() = %d, want 0", got)
	}
}

func TestReadCompressedBlockBadHeaderSize(t *testing.T) {
	var buf bytes.Buffer
	var header [compressedBlockHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:4], 0xFF)
	buf.Write(header[:])

	if _, err := readCompressedBlock(newMMapReader(buf.Bytes())); err == nil {
		t.Error("readCompressedBlock() error = nil, want a header size mismatch error")
	}
}

func TestMMapReaderSeekAndRead(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := newMMapReader(data)

	buf := make([]byte, 2)
	if n, err := r.Read(buf); err != nil || n != 2 || buf[0] != 1 || buf[1] != 2 {
		t.Fatalf("Read() = (%d, %v), buf = %v", n, err, buf)
	}

	if pos, err := r.Seek(-1, io.SeekEnd); err != nil || pos != 4 {
		t.Fatalf("Seek(SeekEnd) = (%d, %v), want (4, nil)", pos, err)
	}
	if n, err := r.Read(buf); err != nil || n != 1 || buf[0] != 5 {
		t.Fatalf("Read() after seek = (%d, %v, %v)", n, err, buf)
	}
}
