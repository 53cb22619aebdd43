// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"errors"
	"reflect"
	"testing"
)

// TestFullMatricesLengthWeighting is Scenario D: length weighting produces
// the published reference vector for row 0 and column 0.
func TestFullMatricesLengthWeighting(t *testing.T) {
	p1 := []int{2, 3, 4, -5}
	p2 := []int{2, 7, -5}
	lengths := SegmentLengths{2: 100, 3: 10, 4: 10, 5: 100, 7: 10}

	score, _ := fullMatrices(p1, p2, lengths)

	wantRow0 := []int64{100, 90, -10}
	gotRow0 := score[0]
	if !reflect.DeepEqual(gotRow0, wantRow0) {
		t.Errorf("row 0 = %v, want %v", gotRow0, wantRow0)
	}

	wantCol0 := []int64{100, 90, 80, -20}
	gotCol0 := make([]int64, len(score))
	for i := range score {
		gotCol0[i] = score[i][0]
	}
	if !reflect.DeepEqual(gotCol0, wantCol0) {
		t.Errorf("column 0 = %v, want %v", gotCol0, wantCol0)
	}
}

func hundredLengths(ids ...int) SegmentLengths {
	l := make(SegmentLengths, len(ids))
	for _, id := range ids {
		l[id] = 100
	}
	return l
}

// TestFullMatrixAlignerExactMatch covers the simplest case: two identical
// paths align end to end along the diagonal.
func TestFullMatrixAlignerExactMatch(t *testing.T) {
	p1 := []int{1, 2, 3}
	p2 := []int{1, 2, 3}
	lengths := hundredLengths(1, 2, 3)

	got, err := FullMatrixAligner{}.Align(p1, p2, lengths)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got.AlignmentPath1, want) {
		t.Errorf("AlignmentPath1 = %v, want %v", got.AlignmentPath1, want)
	}
	if !reflect.DeepEqual(got.AlignmentPath2, want) {
		t.Errorf("AlignmentPath2 = %v, want %v", got.AlignmentPath2, want)
	}
	if got.Path1StartIndex != 0 || got.Path1EndIndex != 2 {
		t.Errorf("indices = (%d, %d), want (0, 2)", got.Path1StartIndex, got.Path1EndIndex)
	}
}

// TestFullMatrixAlignerSegmentNotFound covers the failure contract of §4.2.
func TestFullMatrixAlignerSegmentNotFound(t *testing.T) {
	_, err := FullMatrixAligner{}.Align([]int{1, 2}, []int{1}, SegmentLengths{1: 10})
	if err == nil {
		t.Fatal("Align: expected an error for segment 2 missing from the length map")
	}
	if !errors.Is(err, ErrSegmentNotFound) {
		t.Errorf("Align error = %v, want wrapping %v", err, ErrSegmentNotFound)
	}
}

// TestCollapsedDuplicates is P1: no two consecutive equal entries in
// either output sequence, exercised via a run containing a vertical
// traceback move (a mismatched extra segment in p1 only).
func TestCollapsedDuplicates(t *testing.T) {
	p1 := []int{1, 2, 3}
	p2 := []int{1, 3}
	lengths := SegmentLengths{1: 100, 2: 10, 3: 100}

	got, err := FullMatrixAligner{}.Align(p1, p2, lengths)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	for _, seq := range [][]int{got.AlignmentPath1, got.AlignmentPath2} {
		for i := 1; i < len(seq); i++ {
			if seq[i] == seq[i-1] {
				t.Errorf("sequence %v has consecutive duplicate at index %d", seq, i)
			}
		}
	}
}

// TestArgMaxTieBreak is P6: with every segment the same length and
// multiple equal-scoring maxima, the traceback origin is the
// lexicographically smallest (i, j). p1=[1,2], p2=[2,1] scores 100 at both
// (0,1) and (1,0).
func TestArgMaxTieBreak(t *testing.T) {
	p1 := []int{1, 2}
	p2 := []int{2, 1}
	lengths := hundredLengths(1, 2)

	score, _ := fullMatrices(p1, p2, lengths)
	bestI, bestJ := 0, 0
	best := score[0][0]
	for i := range score {
		for j := range score[i] {
			if score[i][j] > best {
				best = score[i][j]
				bestI, bestJ = i, j
			}
		}
	}
	if bestI != 0 || bestJ != 1 {
		t.Errorf("argmax = (%d, %d), want (0, 1) as the lexicographically smallest tied maximum", bestI, bestJ)
	}
}
