// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfa reads the subset of the GFA (Graphical Fragment Assembly)
// format this project consumes: S-lines for segment length and P-lines for
// signed-integer paths.
package gfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
)

// ErrGfaParse is returned for any malformed token, missing field,
// unparseable integer, or invalid sequence content.
var ErrGfaParse = errors.New("gfa: parse error")

// SegmentLengths maps a segment identity to its length in base pairs.
type SegmentLengths map[int]int

// Paths maps a path name to its signed-integer segment sequence.
type Paths map[string][]int

// ReadGFA scans r for S and P lines, ignoring all others. Path names are
// returned in first-encountered order, which the driver relies on for
// deterministic iteration.
func ReadGFA(r io.Reader) (SegmentLengths, Paths, []string, error) {
	segmentLengths := make(SegmentLengths)
	paths := make(Paths)
	var pathNames []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")

		switch fields[0] {
		case "S":
			if len(fields) < 3 {
				return nil, nil, nil, fmt.Errorf("%w: line %d: S line requires at least 3 fields", ErrGfaParse, lineNo)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%w: line %d: invalid segment id %q: %v", ErrGfaParse, lineNo, fields[1], err)
			}
			seq := fields[2]
			if seq != "*" {
				if err := validateSequence(seq); err != nil {
					return nil, nil, nil, fmt.Errorf("%w: line %d: %v", ErrGfaParse, lineNo, err)
				}
			}
			segmentLengths[id] = len(seq)

		case "P":
			if len(fields) < 3 {
				return nil, nil, nil, fmt.Errorf("%w: line %d: P line requires at least 3 fields", ErrGfaParse, lineNo)
			}
			name := fields[1]
			path, err := ParsePathField(fields[2])
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%w: line %d: %v", ErrGfaParse, lineNo, err)
			}
			if _, seen := paths[name]; !seen {
				pathNames = append(pathNames, name)
			}
			paths[name] = path
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: reading input: %v", ErrGfaParse, err)
	}

	return segmentLengths, paths, pathNames, nil
}

// ParsePathField parses a comma-separated list of segment tokens, each a
// decimal segment id followed by a mandatory '+' or '-' orientation
// suffix, into a signed-integer path.
func ParsePathField(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	path := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < 2 {
			return nil, fmt.Errorf("%w: segment token %q missing orientation suffix", ErrGfaParse, tok)
		}
		sign := tok[len(tok)-1]
		if sign != '+' && sign != '-' {
			return nil, fmt.Errorf("%w: segment token %q missing orientation suffix", ErrGfaParse, tok)
		}
		idStr := tok[:len(tok)-1]
		for i := 0; i < len(idStr); i++ {
			if idStr[i] < '0' || idStr[i] > '9' {
				return nil, fmt.Errorf("%w: segment token %q: invalid id: not a decimal number", ErrGfaParse, tok)
			}
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: segment token %q: invalid id: %v", ErrGfaParse, tok, err)
		}
		if sign == '-' {
			id = -id
		}
		path = append(path, id)
	}
	return path, nil
}

// validateSequence rejects any byte that is not a valid (possibly gapped)
// nucleotide code.
func validateSequence(seq string) error {
	for i := 0; i < len(seq); i++ {
		if alphabet.DNAgapped.IndexOf(alphabet.Letter(seq[i])) < 0 {
			return fmt.Errorf("invalid nucleotide %q at sequence offset %d", seq[i], i)
		}
	}
	return nil
}
