// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FileData flags. See spec §3's FileData row.
const (
	// FileIsZSTDCompression marks data compressed with ZSTD. Always set in
	// production archives; when set, FileIsCompressed must also be set.
	FileIsZSTDCompression uint32 = 1 << 0

	// FileIsCompressed marks data as compressed at all (ZSTD if
	// FileIsZSTDCompression is also set, an unspecified proprietary scheme
	// otherwise). If unset, CompressedSize must equal DecompressedSize.
	FileIsCompressed uint32 = 1 << 1

	// FileIsRegionalVersionedData is observed but never read by the
	// original loader (spec §9 open question (b)); preserved verbatim.
	FileIsRegionalVersionedData uint32 = 1 << 2

	// FileIsLocalizedVersionedData is observed but never read by the
	// original loader (spec §9 open question (b)); preserved verbatim.
	FileIsLocalizedVersionedData uint32 = 1 << 3
)

// FileInfo flags. See spec §3's FileInfo row.
const (
	// InfoIsRegularFile and InfoIsGraphicsArchive are mutually exclusive.
	InfoIsRegularFile     uint32 = 1 << 4
	InfoIsGraphicsArchive uint32 = 1 << 12

	// InfoIsLocalized indicates LocaleCount+1 consecutive FileDesc
	// children; InfoIsRegional indicates RegionCount+1. Neither set means
	// exactly one descriptor.
	InfoIsLocalized uint32 = 1 << 15
	InfoIsRegional  uint32 = 1 << 16

	// InfoIsShared marks a file shared across packages (not across a
	// package and a group).
	InfoIsShared uint32 = 1 << 20

	// InfoIsUnknownFlag usually co-occurs with InfoIsShared but has no
	// known effect in the original loader (spec §9 open question (c));
	// preserved verbatim.
	InfoIsUnknownFlag uint32 = 1 << 21
)

// FilePackage flags. See spec §3's FilePackage row.
const (
	// PackageIsLocalized and PackageIsRegional are mutually exclusive; one
	// of them yields LocaleCount+1/RegionCount+1 consecutive data groups,
	// neither means exactly one.
	PackageIsLocalized uint32 = 1 << 24
	PackageIsRegional  uint32 = 1 << 25

	// PackageHasSubPackage marks that the data group's Redirection field
	// names a subpackage (spec §4.4).
	PackageHasSubPackage uint32 = 1 << 26

	// PackageSymLinkIsRegional requires PackageHasSubPackage|PackageIsSymLink.
	PackageSymLinkIsRegional uint32 = 1 << 27

	// PackageIsSymLink, combined with PackageHasSubPackage, means the data
	// group's Redirection is another FilePackage index whose content
	// supersedes this one's (spec §4.4 case 2).
	PackageIsSymLink uint32 = 1 << 28
)

// StreamPath flags. See spec §3's StreamPath row.
const (
	// StreamIsLocalized and StreamIsRegional are mutually exclusive; one of
	// them yields LocaleCount/RegionCount descriptors, neither means
	// exactly one.
	StreamIsLocalized uint32 = 1 << 0
	StreamIsRegional  uint32 = 1 << 1
)
