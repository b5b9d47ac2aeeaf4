// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import (
	"fmt"

	"github.com/arclib/arcres/log"
)

// Options configures SafeReserialize.
type Options struct {
	// Logger receives diagnostics recovered from invariant-violation
	// panics during Reserialize. By default, errors are logged to
	// stderr.
	Logger log.Logger
}

func (o *Options) helper() *log.Helper {
	if o == nil || o.Logger == nil {
		return log.DefaultLogger()
	}
	return log.NewHelper(o.Logger)
}

// SafeReserialize runs Reserialize, recovering a panic raised by a corrupt
// resource graph (a reservation that never happened, a range that never
// resolves) into an error instead of crashing the caller. Use Reserialize
// directly when a corrupt graph should be a fatal condition instead.
func (r *ResourceTables) SafeReserialize(archive *Archive, opts *Options) (data []byte, err error) {
	helper := opts.helper()

	defer func() {
		if e := recover(); e != nil {
			helper.Errorf("unhandled exception while reserializing resource tables: %v", e)
			err = fmt.Errorf("arcres: reserialize failed: %v", e)
		}
	}()

	data, err = r.Reserialize(archive)
	if err != nil {
		helper.Warnf("failed to reserialize resource tables: %v", err)
	}
	return data, err
}
