//
// eval.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package eval implements the execution side of the parallelism
// selector. A Pool binds one execution mode and worker count for an
// operation; the scratch plans it hands out are laid out for the same
// binding, so an operation is always run with the layout it was sized
// for. Operations run to completion; there is no cancellation at this
// layer.
package eval

import (
	"fmt"
	"sync/atomic"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/fhe/csprng"
	"github.com/markkurossi/fhe/scratch"
)

// Pool runs operation tasks under one execution mode and worker
// count. Sequential mode runs tasks on the calling goroutine;
// parallel mode runs one goroutine per worker. Callers typically pass
// runtime.NumCPU() as the worker hint for parallel execution.
type Pool struct {
	mode    fhe.Parallelism
	workers int
}

// NewPool creates an execution pool for the mode and worker hint n.
// It panics if mode is not a defined parallelism value.
func NewPool(mode fhe.Parallelism, n int) *Pool {
	switch mode {
	case fhe.ParallelismNo, fhe.ParallelismRayon:
	default:
		panic(fmt.Sprintf("eval: unknown parallelism %s", mode))
	}
	return &Pool{
		mode:    mode,
		workers: mode.Workers(n),
	}
}

// Mode returns the execution mode of the pool.
func (p *Pool) Mode() fhe.Parallelism {
	return p.mode
}

// Workers returns the number of workers the pool runs with.
func (p *Pool) Workers() int {
	return p.workers
}

// Plan returns a scratch plan laid out for the pool's mode and worker
// count.
func (p *Pool) Plan() *scratch.Plan {
	return scratch.NewPlan(p.mode, p.workers)
}

// Run runs task once per worker and returns the first error. With one
// worker the task runs on the calling goroutine.
func (p *Pool) Run(task func(worker int) error) error {
	if p.workers == 1 {
		return task(0)
	}
	done := make(chan error, p.workers)
	for w := 0; w < p.workers; w++ {
		go func(worker int) {
			done <- task(worker)
		}(w)
	}
	var first error
	for w := 0; w < p.workers; w++ {
		if err := <-done; err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RunWith runs task once per worker, handing each worker its own
// random generator. It panics if the number of generators does not
// match the worker count: one generator must never be drawn from by
// two workers.
func (p *Pool) RunWith(gens []csprng.CSPRNG,
	task func(worker int, c csprng.CSPRNG) error) error {

	if len(gens) != p.workers {
		panic(fmt.Sprintf("eval: %d generators for %d workers",
			len(gens), p.workers))
	}
	return p.Run(func(worker int) error {
		return task(worker, gens[worker])
	})
}

// ForEach runs fn for every index in [0, n), distributing the indices
// dynamically over the workers. An error stops the worker that hit
// it; the other workers drain the remaining indices, and the first
// error is returned.
func (p *Pool) ForEach(n int, fn func(worker, index int) error) error {
	if p.workers == 1 {
		for i := 0; i < n; i++ {
			if err := fn(0, i); err != nil {
				return err
			}
		}
		return nil
	}
	var next atomic.Int64
	done := make(chan error, p.workers)
	for w := 0; w < p.workers; w++ {
		go func(worker int) {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					done <- nil
					return
				}
				if err := fn(worker, i); err != nil {
					done <- err
					return
				}
			}
		}(w)
	}
	var first error
	for w := 0; w < p.workers; w++ {
		if err := <-done; err != nil && first == nil {
			first = err
		}
	}
	return first
}
