// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers compare with errors.Is, never by string
// matching.
var (
	// ErrSegmentNotFound is returned when a signed segment value appearing
	// in a path has no entry in the SegmentLengths map given to an aligner.
	ErrSegmentNotFound = errors.New("align: segment length not found")

	// ErrPathNotFound is returned when a reference path name fails to
	// resolve against the known path names.
	ErrPathNotFound = errors.New("align: path not found")
)

// SegmentLengths maps a segment identity (always positive) to its length
// in base pairs.
type SegmentLengths map[int]int

// length returns the length of the segment named by the signed value s,
// ignoring its orientation.
func (m SegmentLengths) length(s int) (int64, error) {
	l, ok := m[absInt(s)]
	if !ok {
		return 0, fmt.Errorf("%w: segment %d", ErrSegmentNotFound, absInt(s))
	}
	return int64(l), nil
}

// Alignment is the result of aligning one subproblem. alignmentPath1 and
// alignmentPath2 are produced directly by traceback and are still relative
// to the subrange passed to the aligner; AlignPaths translates them to
// full-path coordinates and reverse-complements alignmentPath2 before
// returning to its own caller.
type Alignment struct {
	AlignmentPath1  []int
	AlignmentPath2  []int
	Path1StartIndex int
	Path1EndIndex   int
}

// Inversion is one reported inversion call against a single query path,
// with its reference coordinates resolved to base pairs.
type Inversion struct {
	QueryPath string
	StartBp   int
	EndBp     int
}

// Options carries the driver's tunables (spec.md §6.2).
type Options struct {
	MaxHighmemPathLength int
	MaxLowmemDrop        int
	MaxPathLength        int
}

// DefaultOptions returns the published defaults.
func DefaultOptions() Options {
	return Options{
		MaxHighmemPathLength: 10000,
		MaxLowmemDrop:        1000,
		MaxPathLength:        100000,
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// reverseComplement reverses a path and negates every element, i.e. it
// expresses the same walk read from the opposite end of the graph.
func reverseComplement(p []int) []int {
	out := make([]int, len(p))
	n := len(p)
	for i, s := range p {
		out[n-1-i] = -s
	}
	return out
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// validateSegments checks that every segment identity appearing in either
// path has a length entry, surfacing ErrSegmentNotFound on the first miss.
func validateSegments(path1, path2 []int, lengths SegmentLengths) error {
	for _, s := range path1 {
		if _, err := lengths.length(s); err != nil {
			return err
		}
	}
	for _, s := range path2 {
		if _, err := lengths.length(s); err != nil {
			return err
		}
	}
	return nil
}

// mustLength looks up a segment's length after validateSegments has already
// confirmed it is present; a miss at this point is an implementation bug.
func mustLength(lengths SegmentLengths, s int) int64 {
	l, err := lengths.length(s)
	if err != nil {
		panic(fmt.Sprintf("align: %v (segment length map checked inconsistently)", err))
	}
	return l
}
