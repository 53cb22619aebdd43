// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"strings"

	"github.com/esrice/inversion-finder/coord"
)

// AlignPaths partitions (refPath, queryPath) into independent subproblems
// (§4.4) and dispatches each to FullMatrixAligner or BandedAligner by size
// threshold (§4.5), returning one Alignment per subproblem actually
// aligned in ascending refPath order. A subproblem that is not small enough
// for the dense aligner and has either subrange at or above maxPathLength
// is skipped without error, and the scan resumes after its reference range.
func AlignPaths(refPath, queryPath []int, lengths SegmentLengths, opts Options) ([]Alignment, error) {
	if len(refPath) == 0 || len(queryPath) == 0 {
		panic("align: AlignPaths requires nonempty paths")
	}

	part := newPartitioner(refPath, queryPath)
	used := make(map[int]struct{})

	var out []Alignment
	for {
		sp, ok := part.next(used)
		if !ok {
			break
		}

		p1 := refPath[sp.refStart:sp.refEnd]
		p2 := part.queryRev[sp.queryStart:sp.queryEnd]

		var sub Alignment
		var err error
		switch {
		case len(p1) < opts.MaxHighmemPathLength && len(p2) < opts.MaxHighmemPathLength:
			sub, err = FullMatrixAligner{}.Align(p1, p2, lengths)
		case len(p1) < opts.MaxPathLength && len(p2) < opts.MaxPathLength:
			sub, err = BandedAligner{}.Align(p1, p2, lengths, opts.MaxLowmemDrop)
		default:
			part.i = sp.refEnd
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, s := range sub.AlignmentPath1 {
			used[absInt(s)] = struct{}{}
		}
		for _, s := range sub.AlignmentPath2 {
			used[absInt(s)] = struct{}{}
		}

		out = append(out, Alignment{
			AlignmentPath1:  sub.AlignmentPath1,
			AlignmentPath2:  reverseComplement(sub.AlignmentPath2),
			Path1StartIndex: sp.refStart + sub.Path1StartIndex,
			Path1EndIndex:   sp.refStart + sub.Path1EndIndex,
		})
	}
	return out, nil
}

// AlignAllQueries runs AlignPaths against every path in pathNames other
// than the resolved reference and any excluded path, resolving each
// alignment's reference indices to base-pair coordinates. It returns the
// inversions in query order, the keys of the queries actually aligned, and
// the resolved reference path key.
func AlignAllQueries(
	lengths SegmentLengths,
	paths map[string][]int,
	pathNames []string,
	excludedPaths []string,
	referencePathKey string,
	opts Options,
) (inversions []Inversion, queryPathKeys []string, resolvedRefKey string, err error) {
	refKey, err := resolveReferenceKey(paths, pathNames, referencePathKey)
	if err != nil {
		return nil, nil, "", err
	}
	refPath := paths[refKey]

	for _, name := range pathNames {
		if name == refKey || isExcluded(name, excludedPaths) {
			continue
		}
		queryPath, ok := paths[name]
		if !ok {
			return nil, nil, "", fmt.Errorf("%w: %s", ErrPathNotFound, name)
		}

		alignments, err := AlignPaths(refPath, queryPath, lengths, opts)
		if err != nil {
			return nil, nil, "", err
		}
		queryPathKeys = append(queryPathKeys, name)
		if len(alignments) == 0 {
			continue
		}

		indices := make([]int, 0, len(alignments)*2)
		for _, a := range alignments {
			indices = append(indices, a.Path1StartIndex, a.Path1EndIndex)
		}
		positions, err := coord.Lookup(refPath, lengths, indices)
		if err != nil {
			return nil, nil, "", err
		}

		for _, a := range alignments {
			start := positions[a.Path1StartIndex][0]
			end := positions[a.Path1EndIndex][1]
			inversions = append(inversions, Inversion{QueryPath: name, StartBp: start, EndBp: end})
		}
	}

	return inversions, queryPathKeys, refKey, nil
}

// resolveReferenceKey matches referencePathKey exactly first, then by the
// part of a path name before its first '#' (sample-name convention),
// taking the first such match in pathNames order for determinism.
func resolveReferenceKey(paths map[string][]int, pathNames []string, key string) (string, error) {
	if _, ok := paths[key]; ok {
		return key, nil
	}
	for _, name := range pathNames {
		if samplePrefix(name) == key {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPathNotFound, key)
}

// isExcluded reports whether name matches, exactly or by sample prefix,
// any entry in excluded.
func isExcluded(name string, excluded []string) bool {
	prefix := samplePrefix(name)
	for _, x := range excluded {
		if x == name || x == prefix {
			return true
		}
	}
	return false
}

func samplePrefix(name string) string {
	if i := strings.IndexByte(name, '#'); i >= 0 {
		return name[:i]
	}
	return name
}
