// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"reflect"
	"testing"
)

// TestBandedMatchesFullMatrix is Scenario E: with drop large enough to cover
// the whole matrix, BandedAligner must agree with FullMatrixAligner exactly.
func TestBandedMatchesFullMatrix(t *testing.T) {
	p1 := []int{2, 3, 4, -5, 6}
	p2 := []int{6, 2, 7, -5}
	lengths := SegmentLengths{2: 100, 3: 10, 4: 10, 5: 100, 6: 100, 7: 10}

	drop := len(p1)
	if len(p2) > drop {
		drop = len(p2)
	}

	full, err := FullMatrixAligner{}.Align(p1, p2, lengths)
	if err != nil {
		t.Fatalf("FullMatrixAligner.Align: %v", err)
	}
	banded, err := BandedAligner{}.Align(p1, p2, lengths, drop)
	if err != nil {
		t.Fatalf("BandedAligner.Align: %v", err)
	}
	if !reflect.DeepEqual(full, banded) {
		t.Errorf("banded result %+v does not match full result %+v", banded, full)
	}

	want := Alignment{AlignmentPath1: []int{2, 3, 4, -5}, AlignmentPath2: []int{2, 7, -5}, Path1StartIndex: 0, Path1EndIndex: 3}
	if !reflect.DeepEqual(full, want) {
		t.Errorf("full result = %+v, want %+v", full, want)
	}
}

// TestBandedFindsRealAlignment confirms the banded out-of-band heuristic
// doesn't swamp a genuine multi-segment alignment: run Scenario A's
// subproblem entirely through the banded path with a small drop.
func TestBandedFindsRealAlignment(t *testing.T) {
	refPath := []int{1, 2, 3, 4, 5, 6}
	queryPath := []int{1, -5, -7, -2, 6}

	opts := Options{MaxHighmemPathLength: 0, MaxLowmemDrop: 1, MaxPathLength: 100}
	got, err := AlignPaths(refPath, queryPath, commonLengths, opts)
	if err != nil {
		t.Fatalf("AlignPaths: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(alignments) = %d, want 1", len(got))
	}

	want := Alignment{
		AlignmentPath1:  []int{2, 3, 4, 5},
		AlignmentPath2:  []int{-5, -7, -2},
		Path1StartIndex: 1,
		Path1EndIndex:   4,
	}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("alignment = %+v, want %+v", got[0], want)
	}
}

func TestBandedAlignerSegmentNotFound(t *testing.T) {
	_, err := BandedAligner{}.Align([]int{1, 2}, []int{1}, SegmentLengths{1: 10}, 5)
	if err == nil {
		t.Fatal("Align: expected an error for segment 2 missing from the length map")
	}
}

// TestBandedRowZeroRespectsBandGeometry guards against row 0 (and by
// symmetry column 0) silently ignoring the band and chaining through cells
// that should be scored as a fresh start. p1[0] (segment 100) matches
// p2 at both j=1 (in band) and j=3 (out of band, drop=1): a correct
// implementation restarts at j=3 rather than compounding the earlier
// match's score through the intervening out-of-band mismatch at j=2, so
// the global maximum stays at the first, in-band match.
func TestBandedRowZeroRespectsBandGeometry(t *testing.T) {
	p1 := []int{100, 50, 60, 70}
	p2 := []int{9, 100, 3, 100}
	lengths := SegmentLengths{100: 500, 9: 1, 3: 1, 50: 1, 60: 1, 70: 1}

	got, err := BandedAligner{}.Align(p1, p2, lengths, 1)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	want := Alignment{
		AlignmentPath1:  []int{100},
		AlignmentPath2:  []int{100},
		Path1StartIndex: 0,
		Path1EndIndex:   0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("alignment = %+v, want %+v (the out-of-band second match at j=3 must not inherit the first match's score through the unbanded chain)", got, want)
	}
}
