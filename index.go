// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// InvalidIndex is the sentinel value denoting "no index" in any 24-bit
// payload or 32-bit index field.
const InvalidIndex uint32 = 0x00FF_FFFF

// checkedRange returns the (start, count) of a start+count range, or (0, 0)
// if the range would reach or exceed InvalidIndex. A COUNT of 0 is always
// paired with an INVALID start on disk; this also guards against a
// corrupt/overflowing start+count silently wrapping into a valid-looking
// range.
func checkedRange(start, count uint32) (uint32, uint32) {
	if start+count >= InvalidIndex {
		return 0, 0
	}
	return start, count
}
