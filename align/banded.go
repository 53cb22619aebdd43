// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

// BandedAligner performs the same scoring as FullMatrixAligner but keeps
// only two score rows and a sparse traceback table, for subproblems too
// large to matrix-align in memory. Cells far from the diagonal are scored
// as if starting a fresh alignment rather than consulting a predecessor.
type BandedAligner struct{}

// Align runs the banded DP over p1, p2 with the given drop (spec.md §4.3).
// p1 and p2 must be nonempty and every segment identity they contain must
// have an entry in lengths.
func (BandedAligner) Align(p1, p2 []int, lengths SegmentLengths, drop int) (Alignment, error) {
	if err := validateSegments(p1, p2, lengths); err != nil {
		return Alignment{}, err
	}

	n, m := len(p1), len(p2)

	maxRowDrop, maxColDrop := drop, drop
	if n > m {
		maxRowDrop = drop + (n - m)
	} else if m > n {
		maxColDrop = drop + (m - n)
	}

	trace := make(map[int64]int8)

	rowPrev := make([]int64, m)
	rowCurr := make([]int64, m)

	len0 := mustLength(lengths, p1[0])
	lenJ0 := mustLength(lengths, p2[0])
	if p1[0] == p2[0] {
		rowPrev[0] = len0
	} else {
		rowPrev[0] = -(len0 + lenJ0)
	}
	for j := 1; j < m; j++ {
		lenJ := mustLength(lengths, p2[j])
		match := p2[j] == p1[0]
		inBand := j <= maxColDrop

		if !inBand {
			if match {
				rowPrev[j] = len0
			} else {
				rowPrev[j] = -len0 - lenJ
			}
			continue
		}

		var cellScore int64
		if match {
			cellScore = lenJ
		} else {
			cellScore = -lenJ
		}
		candidates := [4]int64{0, -1, -1, rowPrev[j-1]}
		rowPrev[j] = Max(candidates) + cellScore
		if c := ArgMax(candidates); c != 0 {
			trace[packKey(0, j)] = c
		}
	}

	globalMax, argJ := rowArgMax(rowPrev)
	argI := 0

	for i := 1; i < n; i++ {
		lenI := mustLength(lengths, p1[i])

		match0 := p1[i] == p2[0]
		if i <= maxRowDrop {
			var cellScore int64
			if match0 {
				cellScore = lenI
			} else {
				cellScore = -lenI
			}
			candidates := [4]int64{0, -1, rowPrev[0], -1}
			rowCurr[0] = Max(candidates) + cellScore
			if c := ArgMax(candidates); c != 0 {
				trace[packKey(i, 0)] = c
			}
		} else {
			if match0 {
				rowCurr[0] = lenI
			} else {
				rowCurr[0] = -lenI - lenJ0
			}
		}

		for j := 1; j < m; j++ {
			lenJ := mustLength(lengths, p2[j])
			match := p1[i] == p2[j]
			inBand := (i <= j || i-j <= maxRowDrop) && (j <= i || j-i <= maxColDrop)

			if !inBand {
				if match {
					rowCurr[j] = lenI
				} else {
					rowCurr[j] = -lenI - lenJ
				}
				continue
			}

			var candidates [4]int64
			if match {
				candidates = [4]int64{lenI, rowPrev[j-1] + lenI, rowPrev[j] + lenI, rowCurr[j-1] + lenI}
			} else {
				candidates = [4]int64{-lenI - lenJ, rowPrev[j-1] - lenI - lenJ, rowPrev[j] - lenI, rowCurr[j-1] - lenJ}
			}
			rowCurr[j] = Max(candidates)
			if c := ArgMax(candidates); c != 0 {
				trace[packKey(i, j)] = c
			}
		}

		rowMax, rowJ := rowArgMax(rowCurr)
		if rowMax > globalMax {
			globalMax = rowMax
			argI, argJ = i, rowJ
		}

		rowPrev, rowCurr = rowCurr, rowPrev
	}

	return traceback(p1, p2, argI, argJ, func(i, j int) int8 {
		if c, ok := trace[packKey(i, j)]; ok {
			return c
		}
		return 0
	})
}

func packKey(i, j int) int64 {
	return int64(i)<<32 | int64(j)
}
