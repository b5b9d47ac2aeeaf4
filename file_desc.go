// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FileDesc load-method tags, packed into the top 8 bits of LoadMethod (spec
// §4.5 / §9). Any tag outside this set is ErrCorruptLoadMethod.
const (
	loadMethodUnowned                 = 0x00
	loadMethodOwned                   = 0x01
	loadMethodPackageSkip              = 0x03
	loadMethodUnknown                  = 0x05
	loadMethodSharedButOwned           = 0x09
	loadMethodUnsupportedRegionLocale  = 0x10

	loadMethodPayloadMask = 0x00FF_FFFF
)

// FileDesc is the last point in the resource graph where a bad reference is
// still detectable before a loader commits to reading file bytes.
type FileDesc struct {
	// Group indexes the FileGroup that locates this descriptor's file data
	// chunk in the archive.
	Group uint32

	// FileData indexes the FileData describing how to read the bytes.
	FileData uint32

	// LoadMethod packs an 8-bit tag (top byte) and a 24-bit payload (low
	// bytes) describing how this descriptor should be used when loading.
	LoadMethod uint32
}

func (d *FileDesc) loadMethodTag() uint32 {
	return d.LoadMethod >> 24
}

func (d *FileDesc) loadMethodPayload() uint32 {
	return d.LoadMethod & loadMethodPayloadMask
}

func packLoadMethod(tag, payload uint32) uint32 {
	return (tag << 24) | (payload & loadMethodPayloadMask)
}

// Reserve marks this descriptor's FileData as referenced.
func (d *FileDesc) Reserve(state *SerState) {
	reserve[FileData](state, d.FileData)
}

// Reinternalize rewrites Group and FileData to their dense indices, and
// rewrites LoadMethod's payload according to its tag: Unowned and
// SharedButOwned payloads are FileEntity indices, PackageSkip payloads are
// FileInfo indices, Owned payloads are erased to InvalidIndex (versioned
// data is dropped by the rewriter), and Unknown/UnsupportedRegionLocale
// payloads pass through untouched. Any other tag is ErrCorruptLoadMethod.
func (d *FileDesc) Reinternalize(state *SerState) error {
	d.Group = get[FileGroup](state, d.Group)
	d.FileData = get[FileData](state, d.FileData)

	tag := d.loadMethodTag()
	payload := d.loadMethodPayload()

	switch tag {
	case loadMethodUnowned:
		payload = get[FileEntity](state, payload)
	case loadMethodOwned:
		payload = InvalidIndex
	case loadMethodPackageSkip:
		payload = get[FileInfo](state, payload)
	case loadMethodUnknown:
		// no payload
	case loadMethodSharedButOwned:
		payload = get[FileEntity](state, payload)
	case loadMethodUnsupportedRegionLocale:
		// payload is a region/locale value, not an index
	default:
		return ErrCorruptLoadMethod
	}

	d.LoadMethod = packLoadMethod(tag, payload)
	return nil
}
