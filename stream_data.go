// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// StreamData locates one streamable file's bytes in the archive. Streamed
// files are always uncompressed and are never loaded directly by this
// package; the size and offset are handed off to the caller's own streaming
// reader. A leaf record: no references, no Reserve/Reinternalize.
type StreamData struct {
	// Size is the file's length in bytes.
	Size uint64

	// Offset is the position of the file's first byte in the archive.
	Offset uint64
}
