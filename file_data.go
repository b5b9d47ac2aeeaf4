// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FileData describes how to read one file's bytes off disk: where within its
// owning FileGroup's chunk the data starts, and how large it is compressed
// and decompressed. It is a leaf record — it holds no references into any
// other table, so it needs neither Reserve nor Reinternalize.
type FileData struct {
	// InGroupOffset is added to the owning FileGroup's ArchiveOffset to find
	// this file's first byte.
	InGroupOffset uint32

	// CompressedSize is the number of bytes to read. Equal to
	// DecompressedSize when FileIsCompressed is unset.
	CompressedSize uint32

	// DecompressedSize is the size of the buffer to allocate before
	// decompressing.
	DecompressedSize uint32

	// Flags is a bitmask of FileIs* constants.
	Flags uint32
}

// IsZSTDCompressed reports whether this data uses ZSTD framing.
func (d *FileData) IsZSTDCompressed() bool { return d.Flags&FileIsZSTDCompression != 0 }

// IsCompressed reports whether this data is compressed at all.
func (d *FileData) IsCompressed() bool { return d.Flags&FileIsCompressed != 0 }
