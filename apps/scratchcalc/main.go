//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/fhe/scratch"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(),
		"worker count in parallel mode")
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr,
			"usage: scratchcalc [options] name:size:align[:w]...\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	seq := scratch.NewPlan(fhe.ParallelismNo, 1)
	par := scratch.NewPlan(fhe.ParallelismRayon, *workers)
	for _, arg := range flag.Args() {
		name, req, perWorker, err := parseSegment(arg)
		if err != nil {
			log.Fatalf("%s: %s", arg, err)
		}
		if perWorker {
			seq.AddPerWorker(name, req)
			par.AddPerWorker(name, req)
		} else {
			seq.Add(name, req)
			par.Add(name, req)
		}
	}

	par.Report(os.Stdout)

	seqSize, _, seqStatus := seq.Resolve()
	parSize, _, parStatus := par.Resolve()
	if seqStatus != fhe.ScratchValid || parStatus != fhe.ScratchValid {
		log.Fatal("scratch size overflow")
	}
	fmt.Printf("Sequential: %d bytes\n", seqSize)
	fmt.Printf("Parallel:   %d bytes (%d workers)\n", parSize, par.Workers())
}

// parseSegment parses a name:size:align[:w] segment argument. The :w
// suffix marks a per-worker segment.
func parseSegment(arg string) (string, scratch.Req, bool, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return "", scratch.Req{}, false,
			fmt.Errorf("expected name:size:align[:w]")
	}
	size, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", scratch.Req{}, false, fmt.Errorf("invalid size: %s", err)
	}
	align, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return "", scratch.Req{}, false,
			fmt.Errorf("invalid alignment: %s", err)
	}
	if align == 0 || align&(align-1) != 0 {
		return "", scratch.Req{}, false,
			fmt.Errorf("alignment %d is not a power of two", align)
	}
	var perWorker bool
	if len(parts) == 4 {
		if parts[3] != "w" {
			return "", scratch.Req{}, false, fmt.Errorf("expected :w suffix")
		}
		perWorker = true
	}
	return parts[0], scratch.Of(size, align), perWorker, nil
}
