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
	"log"
	"runtime"
	"time"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/fhe/csprng"
	"github.com/markkurossi/fhe/csprng/csprngtest"
	"github.com/markkurossi/fhe/eval"
)

func main() {
	seed := flag.String("seed", "",
		"deterministic seed (empty for the system generator)")
	count := flag.Int64("n", 1<<24, "number of bytes to draw")
	chunk := flag.Int("chunk", 4096, "draw size per call")
	parallel := flag.Bool("p", false, "parallel mode")
	workers := flag.Int("workers", runtime.NumCPU(),
		"worker count in parallel mode")
	digest := flag.Bool("digest", false,
		"BLAKE2b-256 digest of each worker stream")
	flag.Parse()

	log.SetFlags(0)

	if *count < 1 || *chunk < 1 {
		log.Fatal("invalid -n or -chunk")
	}

	mode := fhe.ParallelismNo
	if *parallel {
		mode = fhe.ParallelismRayon
	}
	pool := eval.NewPool(mode, *workers)

	// One generator per worker: the seeded source forks children from
	// the parent stream, the system generator is opened per worker.
	var children []*csprngtest.Source
	if len(*seed) > 0 {
		var err error
		children, err = csprngtest.New([]byte(*seed)).Fork(pool.Workers())
		if err != nil {
			log.Fatal(err)
		}
	}
	shares := split(*count, pool.Workers())
	gens := make([]csprng.CSPRNG, pool.Workers())
	counts := make([]*csprng.Counting, pool.Workers())
	for w := range gens {
		var src csprng.CSPRNG
		if children != nil {
			src = children[w]
		} else {
			src = csprng.System()
		}
		counts[w] = csprng.NewCounting(src)
		gens[w] = counts[w]
	}

	digests := make([][]byte, pool.Workers())
	start := time.Now()
	err := pool.RunWith(gens, func(worker int, c csprng.CSPRNG) error {
		sum, err := draw(c, shares[worker], *chunk, *digest)
		digests[worker] = sum
		return err
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Fatal(err)
	}
	report(pool, counts, digests, elapsed)
}

// split divides the byte count over the workers; the first worker
// takes the remainder.
func split(total int64, workers int) []int64 {
	shares := make([]int64, workers)
	for w := range shares {
		shares[w] = total / int64(workers)
	}
	shares[0] += total % int64(workers)
	return shares
}
