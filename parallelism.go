//
// parallelism.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fhe

import (
	"fmt"
)

// Parallelism selects the execution mode of computation operations.
// The same selector value must be used for sizing the scratch memory
// of an operation and for running it; the scratch and eval packages
// both derive their replication counts through Workers so the two
// sides cannot diverge. The numeric codes are fixed.
type Parallelism uint32

// Execution modes.
const (
	ParallelismNo Parallelism = iota
	ParallelismRayon
)

func (p Parallelism) String() string {
	switch p {
	case ParallelismNo:
		return "No"
	case ParallelismRayon:
		return "Rayon"
	default:
		return fmt.Sprintf("{Parallelism %d}", uint32(p))
	}
}

// Workers returns the number of workers the mode runs with, given the
// worker hint n. Sequential mode always runs with one worker;
// parallel mode runs with max(n, 1).
func (p Parallelism) Workers(n int) int {
	if p != ParallelismRayon || n < 1 {
		return 1
	}
	return n
}
