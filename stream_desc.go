// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// StreamDesc is a single index redirection from a StreamPath to the
// StreamData describing one locale/region's copy of a streamable file.
type StreamDesc struct {
	// StreamDataIndex indexes the StreamData table.
	StreamDataIndex uint32
}

// Reserve marks this descriptor's StreamData as referenced. Multiple
// StreamDesc records legitimately share one StreamData (the same bytes
// streamed under more than one locale), so this is a try-reserve.
func (d *StreamDesc) Reserve(state *SerState) {
	tryReserve[StreamData](state, d.StreamDataIndex)
}

// Reinternalize rewrites StreamDataIndex to its dense index.
func (d *StreamDesc) Reinternalize(state *SerState) {
	d.StreamDataIndex = get[StreamData](state, d.StreamDataIndex)
}
