// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "errors"

// Errors returned by Load. These are input-validation
// failures reported to the caller, as opposed to the invariant-violation
// panics raised deep inside reservation/rewrite (see resource.go) which
// indicate a malformed archive or a bug in this package rather than a
// recoverable condition.
var (
	// ErrHeaderTooSmall is returned when the decompressed resource section
	// is smaller than a ResourceTableHeader.
	ErrHeaderTooSmall = errors.New("arcres: resource section smaller than header")

	// ErrLocaleCount is returned when the header's locale count is not
	// LocaleCount.
	ErrLocaleCount = errors.New("arcres: unexpected locale count in resource header")

	// ErrRegionCount is returned when the header's region count is not
	// RegionCount.
	ErrRegionCount = errors.New("arcres: unexpected region count in resource header")
)

// ErrCorruptLoadMethod indicates a FileDesc load-method tag outside the
// permitted set in spec §4.5. Unlike the errors above, this surfaces during
// reinternalization of a FileDesc, not during Load.
var ErrCorruptLoadMethod = errors.New("arcres: corrupt file descriptor load method tag")
