// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import "unsafe"

// CastSanity gates the alignment and length preconditions that make the
// zero-copy table casts below sound. It defaults to on; a caller that has
// already validated a buffer (for example, bytes this package itself just
// emitted) may turn it off to skip the bounds/alignment checks; it is a
// package-wide setting that applies to every cast until it is turned back
// on. It is not an input-validation boundary — disabling it on
// untrusted input reintroduces the memory-safety hole it exists to close.
var CastSanity = true

func init() {
	// The wire format is fixed little-endian; every cast below reinterprets
	// raw bytes as host-native integers, so this package cannot run on a
	// big-endian host.
	var probe uint16 = 1
	if *(*byte)(unsafe.Pointer(&probe)) != 1 {
		panic("arcres: resource tables require a little-endian host")
	}
}

func sizeOf[T any]() uintptr { return unsafe.Sizeof(*new(T)) }
func alignOf[T any]() uintptr { return unsafe.Alignof(*new(T)) }

// castOne reinterprets the head of b as a *T.
func castOne[T any](b []byte) *T {
	size := sizeOf[T]()
	if CastSanity {
		if uintptr(len(b)) < size {
			panic("arcres: buffer too small for cast")
		}
	}
	ptr := unsafe.Pointer(&b[0])
	if CastSanity && uintptr(ptr)%alignOf[T]() != 0 {
		panic("arcres: buffer misaligned for cast")
	}
	return (*T)(ptr)
}

// castSlice reinterprets the first count*sizeof(T) bytes of b as a []T.
func castSlice[T any](b []byte, count int) []T {
	if count == 0 {
		return nil
	}
	size := sizeOf[T]()
	if CastSanity {
		if uintptr(len(b)) < size*uintptr(count) {
			panic("arcres: buffer too small for slice cast")
		}
	}
	ptr := unsafe.Pointer(&b[0])
	if CastSanity && uintptr(ptr)%alignOf[T]() != 0 {
		panic("arcres: buffer misaligned for slice cast")
	}
	return unsafe.Slice((*T)(ptr), count)
}

// castBytes is the inverse of castOne: it views a *T as its raw wire bytes.
func castBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), sizeOf[T]())
}

// castSliceBytes views a []T as its raw wire bytes.
func castSliceBytes[T any](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), sizeOf[T]()*uintptr(len(v)))
}
