// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord converts indices into a reference path to base-pair
// coordinates, and offers an indexed point-query variant for repeated
// lookups over large paths.
package coord

import (
	"errors"
	"fmt"

	"github.com/biogo/store/interval"
)

// ErrSegmentNotFound is returned when a segment identity in the path has
// no entry in the supplied length map.
var ErrSegmentNotFound = errors.New("coord: segment length not found")

// Lookup traverses path once, recording for each requested index the
// 1-based inclusive (startBp, endBp) range covered by the segment at that
// index. indices need not be sorted or unique.
func Lookup(path []int, lengths map[int]int, indices []int) (map[int][2]int, error) {
	want := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		want[i] = struct{}{}
	}

	result := make(map[int][2]int, len(want))
	pos := 0
	for i, seg := range path {
		length, ok := lengths[absInt(seg)]
		if !ok {
			return nil, fmt.Errorf("%w: segment %d", ErrSegmentNotFound, absInt(seg))
		}
		if _, ok := want[i]; ok {
			result[i] = [2]int{pos + 1, pos + length}
		}
		pos += length
	}
	return result, nil
}

// segmentSpan is an interval.IntTree entry mapping a path index to the
// half-open base-pair range it covers.
type segmentSpan struct {
	index      int
	start, end int
}

func (s segmentSpan) ID() uintptr { return uintptr(s.index) }

func (s segmentSpan) Range() interval.IntRange {
	return interval.IntRange{Start: s.start, End: s.end}
}

func (s segmentSpan) Overlap(b interval.IntRange) bool {
	return s.end > b.Start && s.start < b.End
}

// Index is a reusable interval index over a reference path, answering
// "which path index covers base pair bp" queries in O(log n + k) rather
// than Lookup's O(n) per batch.
type Index struct {
	tree *interval.IntTree
}

// NewIndex builds an Index over path. Every segment identity in path must
// have an entry in lengths.
func NewIndex(path []int, lengths map[int]int) (*Index, error) {
	tree := &interval.IntTree{}
	pos := 0
	for i, seg := range path {
		length, ok := lengths[absInt(seg)]
		if !ok {
			return nil, fmt.Errorf("%w: segment %d", ErrSegmentNotFound, absInt(seg))
		}
		span := segmentSpan{index: i, start: pos, end: pos + length}
		if err := tree.Insert(span, true); err != nil {
			return nil, fmt.Errorf("coord: indexing segment %d: %w", i, err)
		}
		pos += length
	}
	tree.AdjustRanges()
	return &Index{tree: tree}, nil
}

// SegmentAt returns the path index whose base-pair range contains bp
// (0-based), or ok=false if bp falls outside the indexed path.
func (idx *Index) SegmentAt(bp int) (index int, ok bool) {
	hits := idx.tree.Get(segmentSpan{start: bp, end: bp + 1})
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0].(segmentSpan).index, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
