// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

// FullMatrixAligner performs dense O(|p1|·|p2|) local alignment, used for
// subproblems small enough to hold a full score and traceback matrix in
// memory.
type FullMatrixAligner struct{}

// Align runs the dense DP over p1, p2. p1 and p2 must be nonempty and every
// segment identity they contain must have an entry in lengths.
func (FullMatrixAligner) Align(p1, p2 []int, lengths SegmentLengths) (Alignment, error) {
	if err := validateSegments(p1, p2, lengths); err != nil {
		return Alignment{}, err
	}

	score, trace := fullMatrices(p1, p2, lengths)

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

	return traceback(p1, p2, bestI, bestJ, func(i, j int) int8 { return trace[i][j] })
}

// fullMatrices builds the dense score and traceback matrices for p1, p2.
// Every segment identity in either path must already be known to have an
// entry in lengths (validateSegments is the caller's responsibility).
func fullMatrices(p1, p2 []int, lengths SegmentLengths) ([][]int64, [][]int8) {
	n, m := len(p1), len(p2)
	score := make([][]int64, n)
	trace := make([][]int8, n)
	for i := range score {
		score[i] = make([]int64, m)
		trace[i] = make([]int8, m)
	}

	len0 := mustLength(lengths, p1[0])
	if p1[0] == p2[0] {
		score[0][0] = len0
	} else {
		score[0][0] = -(len0 + mustLength(lengths, p2[0]))
	}

	for i := 1; i < n; i++ {
		lenI := mustLength(lengths, p1[i])
		var cellScore int64
		if p1[i] == p2[0] {
			cellScore = lenI
		} else {
			cellScore = -lenI
		}
		candidates := [4]int64{0, -1, score[i-1][0], -1}
		score[i][0] = Max(candidates) + cellScore
		trace[i][0] = ArgMax(candidates)
	}

	for j := 1; j < m; j++ {
		lenJ := mustLength(lengths, p2[j])
		var cellScore int64
		if p2[j] == p1[0] {
			cellScore = lenJ
		} else {
			cellScore = -lenJ
		}
		candidates := [4]int64{0, -1, -1, score[0][j-1]}
		score[0][j] = Max(candidates) + cellScore
		trace[0][j] = ArgMax(candidates)
	}

	for i := 1; i < n; i++ {
		lenI := mustLength(lengths, p1[i])
		for j := 1; j < m; j++ {
			lenJ := mustLength(lengths, p2[j])

			var candidates [4]int64
			if p1[i] == p2[j] {
				candidates = [4]int64{lenI, score[i-1][j-1] + lenI, score[i-1][j] + lenI, score[i][j-1] + lenI}
			} else {
				candidates = [4]int64{-lenI - lenJ, score[i-1][j-1] - lenI - lenJ, score[i-1][j] - lenI, score[i][j-1] - lenJ}
			}
			score[i][j] = Max(candidates)
			trace[i][j] = ArgMax(candidates)
		}
	}

	return score, trace
}
