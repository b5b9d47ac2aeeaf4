// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "testing"

func TestFileDescLoadMethodPacking(t *testing.T) {
	tests := []struct {
		name    string
		tag     uint32
		payload uint32
	}{
		{"unowned", loadMethodUnowned, 0x123},
		{"owned", loadMethodOwned, 0},
		{"package skip", loadMethodPackageSkip, 0xABCDEF},
		{"unknown", loadMethodUnknown, 0},
		{"shared but owned", loadMethodSharedButOwned, 42},
		{"unsupported region locale", loadMethodUnsupportedRegionLocale, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FileDesc{LoadMethod: packLoadMethod(tt.tag, tt.payload)}
			if got := d.loadMethodTag(); got != tt.tag {
				t.Errorf("loadMethodTag() = %#x, want %#x", got, tt.tag)
			}
			if got := d.loadMethodPayload(); got != tt.payload {
				t.Errorf("loadMethodPayload() = %#x, want %#x", got, tt.payload)
			}
		})
	}
}

func TestFileDescReinternalizeUnowned(t *testing.T) {
	state := newSerState()
	reserve[FileGroup](state, 5)
	reserve[FileData](state, 9)
	reserve[FileEntity](state, 2)

	d := FileDesc{Group: 5, FileData: 9, LoadMethod: packLoadMethod(loadMethodUnowned, 2)}
	if err := d.Reinternalize(state); err != nil {
		t.Fatalf("Reinternalize() error = %v", err)
	}
	if d.Group != 0 {
		t.Errorf("Group = %d, want 0", d.Group)
	}
	if d.FileData != 0 {
		t.Errorf("FileData = %d, want 0", d.FileData)
	}
	if tag, payload := d.loadMethodTag(), d.loadMethodPayload(); tag != loadMethodUnowned || payload != 0 {
		t.Errorf("LoadMethod = (tag %#x, payload %#x), want (unowned, 0)", tag, payload)
	}
}

func TestFileDescReinternalizeOwnedErasesPayload(t *testing.T) {
	state := newSerState()
	reserve[FileGroup](state, 1)
	reserve[FileData](state, 1)

	d := FileDesc{Group: 1, FileData: 1, LoadMethod: packLoadMethod(loadMethodOwned, 0x55)}
	if err := d.Reinternalize(state); err != nil {
		t.Fatalf("Reinternalize() error = %v", err)
	}
	if payload := d.loadMethodPayload(); payload != InvalidIndex {
		t.Errorf("Owned payload = %#x, want InvalidIndex", payload)
	}
}

func TestFileDescReinternalizeUnknownPreservesPayload(t *testing.T) {
	state := newSerState()
	reserve[FileGroup](state, 1)
	reserve[FileData](state, 1)

	d := FileDesc{Group: 1, FileData: 1, LoadMethod: packLoadMethod(loadMethodUnknown, 0xBEEF)}
	if err := d.Reinternalize(state); err != nil {
		t.Fatalf("Reinternalize() error = %v", err)
	}
	if payload := d.loadMethodPayload(); payload != 0xBEEF {
		t.Errorf("Unknown payload = %#x, want unchanged 0xBEEF", payload)
	}
}

func TestFileDescReinternalizeCorruptTag(t *testing.T) {
	state := newSerState()
	reserve[FileGroup](state, 1)
	reserve[FileData](state, 1)

	d := FileDesc{Group: 1, FileData: 1, LoadMethod: packLoadMethod(0x7F, 0)}
	if err := d.Reinternalize(state); err != ErrCorruptLoadMethod {
		t.Errorf("Reinternalize() error = %v, want ErrCorruptLoadMethod", err)
	}
}

func TestFileDescReserve(t *testing.T) {
	state := newSerState()
	d := FileDesc{FileData: 3}
	d.Reserve(state)

	if got := get[FileData](state, 3); got != 0 {
		t.Errorf("FileData not reserved: get(3) = %d", got)
	}
}
