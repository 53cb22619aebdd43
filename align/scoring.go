// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

// Max returns the greatest of the four DP candidate scores. Scores are
// int64 because a long, highly-diverged path can accumulate a mismatch
// penalty (summed segment lengths in base pairs) well beyond int32's range.
func Max(scores [4]int64) int64 {
	m := scores[0]
	for _, s := range scores[1:] {
		if s > m {
			m = s
		}
	}
	return m
}

// ArgMax returns the index of the greatest of the four DP candidate
// scores. Ties resolve to the lowest index: 0 = start new alignment,
// 1 = diagonal, 2 = from above, 3 = from left. Both aligners rely on this
// ordering as their traceback alphabet.
func ArgMax(scores [4]int64) int8 {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return int8(best)
}

// rowArgMax returns the greatest value in row and the lowest index at
// which it occurs, using the same strict-greater-than tie-break as ArgMax.
func rowArgMax(row []int64) (int64, int) {
	best := row[0]
	idx := 0
	for j := 1; j < len(row); j++ {
		if row[j] > best {
			best = row[j]
			idx = j
		}
	}
	return best, idx
}
