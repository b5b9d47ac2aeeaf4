// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/zstd"
)

// archiveMagic identifies the outer archive container.
const archiveMagic uint64 = 0xABCDEF9876543210

// ErrBadMagic is returned when an outer archive's magic does not match.
var ErrBadMagic = errors.New("arcres: archive magic mismatch")

// ArchiveMetadata is the 56-byte header at the very start of an archive
// file: the table of offsets locating each of the archive's major sections.
// Only ResourceTableOffset is used by this package; the rest are exposed
// for callers that need to locate a file's raw data.
type ArchiveMetadata struct {
	Magic                uint64
	StreamDataOffset     uint64
	FileDataOffset       uint64
	SharedFileDataOffset uint64
	ResourceTableOffset  uint64
	UserTableOffset      uint64
	UnknownTableOffset   uint64
}

const compressedBlockHeaderSize = 0x10

// ReadArchive reads an outer archive's 56-byte metadata header, seeks to
// its resource table, decompresses the ZSTD-framed block there, and loads
// the resource section it contains.
func ReadArchive(r io.ReadSeeker) (*Archive, error) {
	var metaBuf [56]byte
	if _, err := io.ReadFull(r, metaBuf[:]); err != nil {
		return nil, err
	}
	metadata := *castOne[ArchiveMetadata](metaBuf[:])
	if metadata.Magic != archiveMagic {
		return nil, fmt.Errorf("%w: got %#x", ErrBadMagic, metadata.Magic)
	}

	if _, err := r.Seek(int64(metadata.ResourceTableOffset), io.SeekStart); err != nil {
		return nil, err
	}

	data, err := readCompressedBlock(r)
	if err != nil {
		return nil, err
	}

	resource, err := Load(data)
	if err != nil {
		return nil, err
	}

	return NewArchive(metadata, resource), nil
}

// readCompressedBlock reads one ZSTD-framed block: a fixed 0x10 header
// (block-header size, decompressed size, compressed size, offset from the
// block's start to whatever follows it) followed by that many compressed
// bytes. On return r is positioned at offsetToNext past the block's start.
func readCompressedBlock(r io.ReadSeeker) ([]byte, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	var header [compressedBlockHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	tableSize := binary.LittleEndian.Uint32(header[0:4])
	if tableSize != compressedBlockHeaderSize {
		return nil, fmt.Errorf("arcres: expected block header size %#x, got %#x", compressedBlockHeaderSize, tableSize)
	}
	decompressedSize := binary.LittleEndian.Uint32(header[4:8])
	compressedSize := binary.LittleEndian.Uint32(header[8:12])
	offsetToNext := binary.LittleEndian.Uint32(header[12:16])

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(compressed, make([]byte, 0, decompressedSize))
	if err != nil {
		return nil, err
	}
	if uint32(len(decompressed)) != decompressedSize {
		return nil, fmt.Errorf("arcres: expected decompressed size %#x, got %#x", decompressedSize, len(decompressed))
	}

	if _, err := r.Seek(start+int64(offsetToNext), io.SeekStart); err != nil {
		return nil, err
	}

	return decompressed, nil
}

// OpenArchiveFile memory-maps f and reads the archive contained in it. The
// returned mmap.MMap must be kept alive (and Unmap'd when done) for as long
// as the Archive is used: its resource tables are zero-copy views into the
// mapping, not independent copies.
func OpenArchiveFile(f *os.File) (*Archive, mmap.MMap, error) {
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, err
	}

	archive, err := ReadArchive(newMMapReader(m))
	if err != nil {
		_ = m.Unmap()
		return nil, nil, err
	}

	return archive, m, nil
}

// mmapReader adapts a byte slice (an mmap.MMap, in practice) to
// io.ReadSeeker without copying it.
type mmapReader struct {
	data []byte
	pos  int64
}

func newMMapReader(data []byte) *mmapReader { return &mmapReader{data: data} }

func (r *mmapReader) Read(p []byte) (int, error) {
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

func (r *mmapReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, errors.New("arcres: invalid seek whence")
	}
	if abs < 0 {
		return 0, errors.New("arcres: negative seek position")
	}
	r.pos = abs
	return abs, nil
}
