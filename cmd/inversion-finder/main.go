// Copyright ©2026 The inversion-finder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command inversion-finder detects structural inversions between a
// reference path and one or more query paths through a pangenome
// variation graph given in GFA format.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/esrice/inversion-finder/align"
	"github.com/esrice/inversion-finder/coord"
	"github.com/esrice/inversion-finder/gfa"
	"github.com/esrice/inversion-finder/report"
)

// verbosity is a repeatable boolean flag: each -v increments it.
type verbosity int

func (v *verbosity) String() string   { return fmt.Sprintf("%d", int(*v)) }
func (v *verbosity) Set(string) error { *v++; return nil }
func (v *verbosity) IsBoolFlag() bool { return true }

var (
	maxHighmemPathLength = flag.Int("max-highmem-path-length", 10000, "subproblems with both subranges below this length use the dense aligner")
	maxPathLength        = flag.Int("max-path-length", 100000, "subproblems with either subrange at or above this length are skipped")
	minInversionLength   = flag.Int("min-inversion-length", 50, "minimum reported inversion length, in base pairs")
	maxLowmemDrop        = flag.Int("max-lowmem-drop", 1000, "banded aligner's maximum drop from the diagonal")
	exclude              = flag.String("exclude", "", "comma-separated list of query paths (or sample prefixes) to skip")
	outPath              = flag.String("out", "", "output file (default: stdout)")
	verbose              verbosity
)

func main() {
	flag.Var(&verbose, "v", "increase logging verbosity (repeatable; -v -v also annotates each inversion with its covering reference segment)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <gfa-file> <reference-path>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	gfaPath := flag.Arg(0)
	refPathArg := flag.Arg(1)

	in, err := os.Open(gfaPath)
	if err != nil {
		log.Fatalf("inversion-finder: opening %q: %v", gfaPath, err)
	}
	defer in.Close()

	if int(verbose) >= 1 {
		log.Printf("reading gfa %q", gfaPath)
	}
	segmentLengths, paths, pathNames, err := gfa.ReadGFA(in)
	if err != nil {
		log.Fatalf("inversion-finder: %v", err)
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("inversion-finder: creating %q: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	var excluded []string
	if *exclude != "" {
		excluded = strings.Split(*exclude, ",")
	}

	opts := align.Options{
		MaxHighmemPathLength: *maxHighmemPathLength,
		MaxLowmemDrop:        *maxLowmemDrop,
		MaxPathLength:        *maxPathLength,
	}

	alignLengths := align.SegmentLengths(segmentLengths)

	if int(verbose) >= 1 {
		log.Printf("aligning %d query paths against reference %q", len(pathNames)-1, refPathArg)
	}
	inversions, queryPathKeys, refKey, err := align.AlignAllQueries(alignLengths, paths, pathNames, excluded, refPathArg, opts)
	if err != nil {
		log.Fatalf("inversion-finder: %v", err)
	}

	records := make([]report.Record, len(inversions))
	for i, inv := range inversions {
		records[i] = report.Record{QueryPath: inv.QueryPath, StartBp: inv.StartBp, EndBp: inv.EndBp}
	}

	if int(verbose) >= 1 {
		mean, stdev, n := report.Summarize(records, *minInversionLength)
		log.Printf("%d inversions reported (mean length %.1fbp, stdev %.1fbp)", n, mean, stdev)
	}

	if int(verbose) >= 2 {
		logInversionSegments(paths[refKey], segmentLengths, inversions)
	}

	if err := report.WriteTable(out, records, queryPathKeys, refKey, *minInversionLength); err != nil {
		log.Fatalf("inversion-finder: writing output: %v", err)
	}
}

// logInversionSegments annotates each inversion's start/end base pair with
// the reference segment covering it, via one coord.Index built over
// refPath. It is only invoked at verbosity 2 and above (-v given twice).
func logInversionSegments(refPath []int, segmentLengths gfa.SegmentLengths, inversions []align.Inversion) {
	idx, err := coord.NewIndex(refPath, segmentLengths)
	if err != nil {
		log.Printf("inversion-finder: building coordinate index: %v", err)
		return
	}
	for _, inv := range inversions {
		startSeg, startOK := idx.SegmentAt(inv.StartBp - 1)
		endSeg, endOK := idx.SegmentAt(inv.EndBp - 1)
		if !startOK || !endOK {
			log.Printf("%s %d-%d: covering segment lookup out of range", inv.QueryPath, inv.StartBp, inv.EndBp)
			continue
		}
		log.Printf("%s %d-%d: covers segments %d..%d", inv.QueryPath, inv.StartBp, inv.EndBp, refPath[startSeg], refPath[endSeg])
	}
}
