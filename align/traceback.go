// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import "fmt"

// traceback walks a DP solution backward from (startI, startJ) using code,
// which must return the traceback alphabet of §4.1 (0 stop, 1 diagonal,
// 2 up, 3 left) for any cell it is asked about. It is shared by
// FullMatrixAligner (a dense matrix lookup) and BandedAligner (a sparse map
// lookup, defaulting to 0 for absent keys).
func traceback(path1, path2 []int, startI, startJ int, code func(i, j int) int8) (Alignment, error) {
	i, j := startI, startJ
	endIndex := i

	var a1, a2 []int
	for {
		s1, s2 := path1[i], path2[j]
		if len(a1) == 0 || a1[len(a1)-1] != s1 {
			a1 = append(a1, s1)
		}
		if len(a2) == 0 || a2[len(a2)-1] != s2 {
			a2 = append(a2, s2)
		}

		switch c := code(i, j); c {
		case 0:
			reverseInts(a1)
			reverseInts(a2)
			return Alignment{
				AlignmentPath1:  a1,
				AlignmentPath2:  a2,
				Path1StartIndex: i,
				Path1EndIndex:   endIndex,
			}, nil
		case 1:
			i--
			j--
		case 2:
			i--
		case 3:
			j--
		default:
			panic(fmt.Sprintf("align: invalid traceback code %d at (%d,%d)", c, i, j))
		}
	}
}
