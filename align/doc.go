// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align performs a specialized Smith-Waterman-style local alignment
// over sequences of signed-integer oriented segment identifiers, used to
// locate structural inversions between a reference and a query path through
// a pangenome variation graph.
//
// A path is represented as a []int in which the sign of each element
// encodes strand orientation and the magnitude identifies the segment; -s
// denotes the reverse complement of s. Two dynamic-programming variants are
// provided: FullMatrixAligner, a dense O(n·m) aligner for small subranges,
// and BandedAligner, a two-row, sparse-traceback variant for subranges too
// large to hold a full matrix in memory. AlignPaths partitions a
// (reference, query) pair into independent subproblems and dispatches each
// to the appropriate aligner.
package align
