// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// StreamPath is 1-1 with every streamable file path in the archive. A
// localized or regional stream still has exactly one StreamPath; it is the
// descriptor range behind it that fans out.
type StreamPath struct {
	// PathAndDesc packs this file's path hash together with the start index
	// into the StreamDesc table.
	PathAndDesc HashWithData

	// Flags is a bitmask of StreamIs* constants.
	Flags uint32
}

// Path returns the path hash, including the "stream:" prefix.
func (p *StreamPath) Path() Hash40 { return p.PathAndDesc.Hash40() }

// DescriptorRange returns the checked range of StreamDesc indices this path
// owns: LocaleCount if localized, RegionCount if regional, else 1.
func (p *StreamPath) DescriptorRange() (start, count uint32) {
	var n uint32
	switch {
	case p.Flags&StreamIsLocalized != 0:
		n = LocaleCount
	case p.Flags&StreamIsRegional != 0:
		n = RegionCount
	default:
		n = 1
	}
	return checkedRange(p.PathAndDesc.Data(), n)
}

// SetDescriptorStart rewrites the start index of the StreamDesc range.
func (p *StreamPath) SetDescriptorStart(index uint32) { p.PathAndDesc.SetData(index) }

// Reserve marks this path's StreamDesc range as referenced.
func (p *StreamPath) Reserve(state *SerState) {
	_, count := p.DescriptorRange()
	reserveRange[StreamDesc](state, p.PathAndDesc.Data(), count)
}

// Reinternalize rewrites the StreamDesc start index to its dense index.
func (p *StreamPath) Reinternalize(state *SerState) {
	index := p.PathAndDesc.Data()
	p.PathAndDesc.SetData(get[StreamDesc](state, index))
}
