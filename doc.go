// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package arcres models the resource-table subsystem of a bulk asset
// archive: a set of cross-referenced, fixed-record tables describing
// packages, file groups, file descriptors and stream paths, plus the
// zero-copy loader (Load) and dense-compacting re-serializer
// (ResourceTables.Reserialize) that operate on them.
//
// Load itself only ever casts an already-decompressed resource section; the
// ZSTD block framing and outer archive metadata that produce one live in
// container.go (ReadArchive, OpenArchiveFile) and are a thin convenience
// layer on top, not something Load depends on.
package arcres
