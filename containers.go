// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

// cursor walks a decompressed resource section, handing out zero-copy
// views as it goes. It is the one place the loader's sequential table
// layout (spec §4.6) is expressed as code.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor { return &cursor{data: data} }

func (c *cursor) remaining() []byte { return c.data[c.pos:] }

func (c *cursor) takeBytes(n int) []byte {
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

func takeOne[T any](c *cursor) *T {
	v := castOne[T](c.remaining())
	c.pos += int(sizeOf[T]())
	return v
}

func takeSlice[T any](c *cursor, count int) []T {
	v := castSlice[T](c.remaining(), count)
	c.pos += int(sizeOf[T]()) * count
	return v
}

// Table is a fixed slice of T plus an optional dynamic extension slice.
// The loader always produces a Table whose dynamic slice is empty (real
// archives carry no appended records at load time). Reserialize reads
// records through Get and QuickSerialize writes the fixed slice followed by
// the dynamic one, so both cover every record.
type Table[T any] struct {
	fixed   []T
	dynamic []T
}

func newTable[T any](c *cursor, count int) Table[T] {
	return Table[T]{fixed: takeSlice[T](c, count)}
}

// Len returns the total number of records, fixed plus dynamic.
func (t Table[T]) Len() int { return len(t.fixed) + len(t.dynamic) }

// Fixed returns the on-disk fixed-size slice.
func (t Table[T]) Fixed() []T { return t.fixed }

// Dynamic returns the dynamic extension slice (always empty outside of
// values produced directly by table-construction helpers used in tests).
func (t Table[T]) Dynamic() []T { return t.dynamic }

// Get returns a pointer to the record at index, or (nil, false) if index is
// InvalidIndex or out of range.
func (t Table[T]) Get(index uint32) (*T, bool) {
	if index == InvalidIndex {
		return nil, false
	}
	i := int(index)
	if i < len(t.fixed) {
		return &t.fixed[i], true
	}
	i -= len(t.fixed)
	if i < len(t.dynamic) {
		return &t.dynamic[i], true
	}
	return nil, false
}

// Slice returns the count records starting at start, or (nil, false) if any
// index in that range is out of bounds. Unlike Get, a slice may not span the
// fixed/dynamic boundary: callers only ever request ranges reserved wholly
// within one disposition of a table, which in practice always lands in the
// fixed slice.
func (t Table[T]) Slice(start, count uint32) ([]T, bool) {
	if count == 0 {
		return nil, true
	}
	s, e := int(start), int(start+count)
	if s < 0 || e > len(t.fixed) {
		return nil, false
	}
	return t.fixed[s:e], true
}

// Iter calls fn for every (index, record) pair in on-disk order.
func (t Table[T]) Iter(fn func(index uint32, value *T)) {
	for i := range t.fixed {
		fn(uint32(i), &t.fixed[i])
	}
	base := uint32(len(t.fixed))
	for i := range t.dynamic {
		fn(base+uint32(i), &t.dynamic[i])
	}
}

// IndexLookup is an ordered array of HashWithData whose data field is an
// index into a parallel table. Iteration order is on-disk order; get is a
// linear search, which is acceptable since these tables are small and
// lookups only happen during loading/debugging (spec §4.2).
type IndexLookup struct {
	entries []HashWithData
}

func newIndexLookup(c *cursor, count int) IndexLookup {
	return IndexLookup{entries: takeSlice[HashWithData](c, count)}
}

// Len returns the number of entries.
func (l IndexLookup) Len() int { return len(l.entries) }

// Entries returns the lookup entries in on-disk order.
func (l IndexLookup) Entries() []HashWithData { return l.entries }

// Get returns the index paired with hash, if present.
func (l IndexLookup) Get(hash Hash40) (uint32, bool) {
	for _, e := range l.entries {
		if e.Hash40() == hash {
			return e.Data(), true
		}
	}
	return 0, false
}

// Bucket is a (start, length) pair into a BucketLookup's flat entry array.
type Bucket struct {
	Start uint32
	Len   uint32
}

// BucketLookup is a bucketed hash table: a directory of buckets plus a flat,
// bucket-major array of HashWithData entries. get routes to a bucket by
// hash % bucketCount, then scans that bucket's slice (spec §4.2).
type BucketLookup struct {
	buckets []Bucket
	entries []HashWithData
}

func newBucketLookup(c *cursor, entryCount, bucketCount int) BucketLookup {
	buckets := takeSlice[Bucket](c, bucketCount)
	entries := takeSlice[HashWithData](c, entryCount)
	return BucketLookup{buckets: buckets, entries: entries}
}

// Len returns the total number of entries across all buckets.
func (l BucketLookup) Len() int { return len(l.entries) }

// BucketCount returns the number of buckets in the directory.
func (l BucketLookup) BucketCount() int { return len(l.buckets) }

// Buckets returns the bucket directory, in bucket order.
func (l BucketLookup) Buckets() []Bucket { return l.buckets }

// Entries returns the flat, bucket-major entry array.
func (l BucketLookup) Entries() []HashWithData { return l.entries }

// Get routes hash to its bucket and scans it for a matching entry.
func (l BucketLookup) Get(hash Hash40) (uint32, bool) {
	if len(l.buckets) == 0 {
		return 0, false
	}
	bucket := l.buckets[uint64(hash)%uint64(len(l.buckets))]
	start := int(bucket.Start)
	end := start + int(bucket.Len)
	if start < 0 || end > len(l.entries) {
		return 0, false
	}
	for _, e := range l.entries[start:end] {
		if e.Hash40() == hash {
			return e.Data(), true
		}
	}
	return 0, false
}
