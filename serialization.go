// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package arcres

import (
	"fmt"
	"reflect"
)

// orderedSet is an insertion-ordered set of original table indices. Order
// of insertion is the dense index assigned to each original index, and is
// also the emission order for that type's table (spec §9, "ordered
// reservation set").
type orderedSet struct {
	indexOf map[uint32]uint32
	order   []uint32
}

func newOrderedSet() *orderedSet {
	return &orderedSet{indexOf: make(map[uint32]uint32, 4096)}
}

// insert adds original to the set if absent, returning its dense index and
// whether it was newly inserted.
func (s *orderedSet) insert(original uint32) (uint32, bool) {
	if dense, ok := s.indexOf[original]; ok {
		return dense, false
	}
	dense := uint32(len(s.order))
	s.indexOf[original] = dense
	s.order = append(s.order, original)
	return dense, true
}

// SerState is the serialization state described in spec §4.7 and §9: a
// per-type ordered set of reserved original indices, answering "what is
// the new dense index of original index i of type T". One SerState is
// built per call to ResourceTables.Reserialize.
type SerState struct {
	sets map[reflect.Type]*orderedSet
}

func newSerState() *SerState {
	return &SerState{sets: make(map[reflect.Type]*orderedSet, 16)}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName[T any]() string {
	return typeKey[T]().Name()
}

func (s *SerState) setFor(t reflect.Type) *orderedSet {
	set, ok := s.sets[t]
	if !ok {
		set = newOrderedSet()
		s.sets[t] = set
	}
	return set
}

// reserve records original as referenced, assigning it the next dense
// index for T. It panics if original is already reserved — most ranges are
// expected to be reserved exactly once.
func reserve[T any](s *SerState, original uint32) uint32 {
	if original == InvalidIndex {
		return original
	}
	dense, inserted := s.setFor(typeKey[T]()).insert(original)
	if !inserted {
		panic(fmt.Sprintf("arcres: index %d already reserved for %s", original, typeName[T]()))
	}
	return dense
}

// tryReserve records original as referenced if not already present,
// returning whether this call newly reserved it. Used where the same
// original index may legitimately be reserved from more than one path
// (FileData shared across data groups, StreamData shared across descs,
// FileGroup encountered multiple times as a subpackage).
func tryReserve[T any](s *SerState, original uint32) bool {
	if original == InvalidIndex {
		return false
	}
	_, inserted := s.setFor(typeKey[T]()).insert(original)
	return inserted
}

// reserveRange reserves every index in the checked range [start, start+count)
// for T, returning the dense index assigned to start. An INVALID start
// paired with a non-zero count is a corrupt-graph error.
func reserveRange[T any](s *SerState, start, count uint32) uint32 {
	if start == InvalidIndex {
		if count != 0 {
			panic("arcres: range points to an invalid start with a non-zero count")
		}
		return start
	}

	set := s.setFor(typeKey[T]())
	rangeStart, rangeCount := checkedRange(start, count)

	var firstDense uint32
	haveFirst := false
	for i := rangeStart; i < rangeStart+rangeCount; i++ {
		dense, inserted := set.insert(i)
		if !inserted {
			panic(fmt.Sprintf("arcres: index %d already reserved for %s (range)", i, typeName[T]()))
		}
		if !haveFirst {
			firstDense = dense
			haveFirst = true
		}
	}
	if !haveFirst {
		return 0
	}
	return firstDense
}

// get returns the dense index of original for T. It panics if T has no
// reservations at all, or if original was never reserved — both indicate a
// rewrite running ahead of a missing reservation, which spec §4.7 treats as
// a programmer/corrupt-graph error.
func get[T any](s *SerState, original uint32) uint32 {
	if original == InvalidIndex {
		return original
	}
	set, ok := s.sets[typeKey[T]()]
	if !ok {
		panic(fmt.Sprintf("arcres: no reservations recorded for %s", typeName[T]()))
	}
	dense, ok := set.indexOf[original]
	if !ok {
		panic(fmt.Sprintf("arcres: index %d was never reserved for %s", original, typeName[T]()))
	}
	return dense
}

// iterOriginal returns the original indices reserved for T, in dense-index
// (= insertion) order. This order is the emission order for T's table.
func iterOriginal[T any](s *SerState) []uint32 {
	set, ok := s.sets[typeKey[T]()]
	if !ok {
		return nil
	}
	return set.order
}
