// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// LocaleCount is the number of locales a localized FileInfo, FilePackage,
// or StreamPath fans out over. The loader rejects any resource section
// whose header disagrees with this constant (see ResourceTableHeader).
const LocaleCount = 14

// RegionCount is the number of regions a regional FileInfo, FilePackage, or
// StreamPath fans out over.
const RegionCount = 5
