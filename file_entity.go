// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// FileEntity tracks whether a file's underlying data has been loaded. It is
// 1-1 with actual binary content; multiple FilePath/FileInfo records can
// point at the same entity when their data is shared.
type FileEntity struct {
	// PackageOrGroup indexes either the FilePackage table or the FileGroup
	// table, disambiguated positionally: if this value is >= the number of
	// packages in the resource tables, it indexes FileGroup, otherwise
	// FilePackage.
	PackageOrGroup uint32

	// Info indexes the FileInfo that is the source of truth for this
	// entity's data.
	Info uint32
}

// Reinternalize rewrites PackageOrGroup and Info to their dense indices.
// packageLen is the pre-rewrite FilePackage table length, the same
// threshold used to disambiguate PackageOrGroup on load.
func (e *FileEntity) Reinternalize(state *SerState, packageLen uint32) {
	if e.PackageOrGroup >= packageLen {
		e.PackageOrGroup = get[FileGroup](state, e.PackageOrGroup)
	} else {
		e.PackageOrGroup = get[FilePackage](state, e.PackageOrGroup)
	}
	e.Info = get[FileInfo](state, e.Info)
}
