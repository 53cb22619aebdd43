// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report collates inversion calls across query paths into the
// tabular output format and computes summary statistics for diagnostics.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Record is one reported inversion against a single query path, with
// reference coordinates already resolved to base pairs.
type Record struct {
	QueryPath string
	StartBp   int
	EndBp     int
}

type coordKey struct {
	start, end int
}

// WriteTable writes the collated table (spec.md §6.3): a header row
// ref/start/end plus one column per entry of queryPathKeys, then one row
// per distinct (start, end) pair surviving the minInversionLength filter,
// sorted by start ascending, with a 1/0 call per query column.
func WriteTable(w io.Writer, records []Record, queryPathKeys []string, refPathKey string, minInversionLength int) error {
	calls := make(map[coordKey]map[string]bool)
	for _, r := range records {
		k := coordKey{r.StartBp, r.EndBp}
		if calls[k] == nil {
			calls[k] = make(map[string]bool)
		}
		calls[k][r.QueryPath] = true
	}

	keys := make([]coordKey, 0, len(calls))
	for k := range calls {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].start < keys[j].start })

	header := append([]string{"ref", "start", "end"}, queryPathKeys...)
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}

	for _, k := range keys {
		if k.end-k.start < minInversionLength {
			continue
		}
		row := make([]string, 0, 3+len(queryPathKeys))
		row = append(row, refPathKey, fmt.Sprintf("%d", k.start), fmt.Sprintf("%d", k.end))
		for _, q := range queryPathKeys {
			if calls[k][q] {
				row = append(row, "1")
			} else {
				row = append(row, "0")
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Summarize computes the mean and standard deviation of distinct reported
// inversion lengths surviving minInversionLength, for verbose logging. It
// has no bearing on WriteTable's output.
func Summarize(records []Record, minInversionLength int) (mean, stdev float64, n int) {
	seen := make(map[coordKey]bool)
	var lengths []float64
	for _, r := range records {
		k := coordKey{r.StartBp, r.EndBp}
		if seen[k] {
			continue
		}
		seen[k] = true
		if r.EndBp-r.StartBp < minInversionLength {
			continue
		}
		lengths = append(lengths, float64(r.EndBp-r.StartBp))
	}
	if len(lengths) == 0 {
		return 0, 0, 0
	}
	if len(lengths) == 1 {
		return lengths[0], 0, 1
	}
	mean, stdev = stat.MeanStdDev(lengths, nil)
	return mean, stdev, len(lengths)
}
