// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "fmt"

// Hash40 is a 40-bit path identifier: a 32-bit CRC of the path string plus
// its 8-bit length. It is kept as a single uint64 for easy comparison and
// map-keying; the wire representations below (hashRecord, HashWithData)
// split it back into its 4-byte-aligned parts for on-disk storage.
type Hash40 uint64

// NewHash40 packs a CRC and string length into a Hash40.
func NewHash40(crc uint32, length uint8) Hash40 {
	return Hash40(crc) | Hash40(length)<<32
}

// CRC returns the 32-bit CRC component.
func (h Hash40) CRC() uint32 { return uint32(h) }

// Length returns the 8-bit string-length component.
func (h Hash40) Length() uint8 { return uint8(h >> 32) }

func (h Hash40) String() string {
	return fmt.Sprintf("0x%02x%08x", h.Length(), h.CRC())
}

// hashRecord is the 8-byte wire layout of a bare Hash40 with no attached
// payload index (used for FilePath/FilePackage's name/parent/filename
// fields). It is padded to 8 bytes the same way the original record is,
// by accompanying the 4-byte CRC with a second 4-byte word whose only
// significant byte is the length; the remaining 3 bytes are unused.
type hashRecord struct {
	crc        uint32
	lengthWord uint32
}

func (h hashRecord) Hash40() Hash40 { return NewHash40(h.crc, uint8(h.lengthWord)) }

func newHashRecord(h Hash40) hashRecord {
	return hashRecord{crc: h.CRC(), lengthWord: uint32(h.Length())}
}

// HashWithData is the hash+payload composite word described in spec §6 and
// design note "Composite words": a 32-bit CRC plus a second 32-bit word
// whose low byte is the string length and whose high 24 bits are a payload
// index (or INVALID). It is modeled as two u32 fields rather than a single
// u64 because a native 64-bit field has different alignment requirements
// across host architectures.
type HashWithData struct {
	crc        uint32
	lenAndData uint32
}

// NewHashWithData packs a hash and a 24-bit payload index into one word.
func NewHashWithData(h Hash40, data uint32) HashWithData {
	return HashWithData{crc: h.CRC(), lenAndData: uint32(h.Length()) | (data << 8)}
}

func (h HashWithData) Hash40() Hash40 { return NewHash40(h.crc, uint8(h.lenAndData)) }

// Length returns the string-length component.
func (h HashWithData) Length() uint8 { return uint8(h.lenAndData) }

// Data returns the 24-bit payload index.
func (h HashWithData) Data() uint32 { return h.lenAndData >> 8 }

// SetData rewrites the payload index, leaving the hash untouched.
func (h *HashWithData) SetData(data uint32) {
	h.lenAndData = (h.lenAndData & 0xFF) | (data << 8)
}

func (h HashWithData) String() string {
	return fmt.Sprintf("HashWithData{hash: %s, data: %#x}", h.Hash40(), h.Data())
}
