// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import "fmt"

// subproblem is one independent candidate-inversion region, expressed as
// half-open ranges into refPath and into the partitioner's queryRev view.
type subproblem struct {
	refStart, refEnd     int
	queryStart, queryEnd int
}

// partitioner enumerates subproblems for one (refPath, queryPath) pair, per
// spec.md §4.4. Its cursor persists across calls to next so that the
// driver's used-segments updates between subproblems are visible to later
// scans, exactly as the original single left-to-right pass over refPath
// does.
type partitioner struct {
	refPath    []int
	queryRev   []int
	conflicting map[int]struct{}
	candidate   map[int]struct{}
	i           int
}

func newPartitioner(refPath, queryPath []int) *partitioner {
	queryRev := reverseComplement(queryPath)

	refSet := signedSet(refPath)
	querySet := signedSet(queryPath)
	queryRevSet := signedSet(queryRev)

	conflicting := absIntersect(refSet, querySet)
	candidateAll := absIntersect(refSet, queryRevSet)
	candidate := make(map[int]struct{}, len(candidateAll))
	for s := range candidateAll {
		if _, ok := conflicting[s]; !ok {
			candidate[s] = struct{}{}
		}
	}

	return &partitioner{
		refPath:     refPath,
		queryRev:    queryRev,
		conflicting: conflicting,
		candidate:   candidate,
	}
}

// next returns the next subproblem not excluded by used, or ok=false once
// refPath is exhausted. used is consulted (not mutated) on every call, so
// driver updates made between calls take effect immediately.
func (p *partitioner) next(used map[int]struct{}) (subproblem, bool) {
	for p.i < len(p.refPath) {
		start := p.i
		p.i++

		seg := p.refPath[start]
		if _, isCandidate := p.candidate[absInt(seg)]; !isCandidate {
			continue
		}
		if _, isUsed := used[absInt(seg)]; isUsed {
			continue
		}

		end := start
		for end < len(p.refPath) && p.extendable(p.refPath[end], used) {
			end++
		}

		qStart := indexOfSigned(p.queryRev, seg)
		if qStart < 0 {
			panic(fmt.Sprintf("align: candidate segment %d not found in reverse-complemented query path", seg))
		}
		qEnd := qStart
		for qEnd < len(p.queryRev) && p.extendable(p.queryRev[qEnd], used) {
			qEnd++
		}

		return subproblem{refStart: start, refEnd: end, queryStart: qStart, queryEnd: qEnd}, true
	}
	return subproblem{}, false
}

func (p *partitioner) extendable(seg int, used map[int]struct{}) bool {
	a := absInt(seg)
	if _, conflicted := p.conflicting[a]; conflicted {
		return false
	}
	if _, isUsed := used[a]; isUsed {
		return false
	}
	return true
}

func signedSet(path []int) map[int]struct{} {
	set := make(map[int]struct{}, len(path))
	for _, s := range path {
		set[s] = struct{}{}
	}
	return set
}

// absIntersect returns the absolute values of the signed integers common
// to both a and b (i.e. appearing with the same orientation in both).
func absIntersect(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for s := range a {
		if _, ok := b[s]; ok {
			out[absInt(s)] = struct{}{}
		}
	}
	return out
}

func indexOfSigned(path []int, v int) int {
	for i, s := range path {
		if s == v {
			return i
		}
	}
	return -1
}
