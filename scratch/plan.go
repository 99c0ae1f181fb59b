//
// plan.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package scratch

import (
	"fmt"

	"github.com/markkurossi/fhe"
)

// Segment is one named region of a scratch layout.
type Segment struct {
	Name      string
	Req       Req
	PerWorker bool
}

// Plan lays out the named scratch segments of one operation for an
// execution mode. Per-worker segments are replicated once per worker;
// sequential mode always has one worker, so a plan sized and an
// operation run with the same mode and worker hint agree on the
// layout.
type Plan struct {
	mode     fhe.Parallelism
	workers  int
	segments []Segment
}

// NewPlan creates a scratch plan for the execution mode. The worker
// hint n maps to the replication count with mode.Workers.
func NewPlan(mode fhe.Parallelism, n int) *Plan {
	return &Plan{
		mode:    mode,
		workers: mode.Workers(n),
	}
}

// Mode returns the execution mode of the plan.
func (p *Plan) Mode() fhe.Parallelism {
	return p.mode
}

// Workers returns the number of workers the plan is laid out for.
func (p *Plan) Workers() int {
	return p.workers
}

// Add adds a segment shared by all workers.
func (p *Plan) Add(name string, r Req) *Plan {
	p.segments = append(p.segments, Segment{
		Name: name,
		Req:  r,
	})
	return p
}

// AddPerWorker adds a segment replicated for each worker.
func (p *Plan) AddPerWorker(name string, r Req) *Plan {
	p.segments = append(p.segments, Segment{
		Name:      name,
		Req:       r,
		PerWorker: true,
	})
	return p
}

// Segments returns the segments of the plan.
func (p *Plan) Segments() []Segment {
	return p.segments
}

func (p *Plan) segmentReq(seg Segment) Req {
	if seg.PerWorker {
		return ArrayOf(seg.Req, uint64(p.workers))
	}
	return seg.Req
}

// Total returns the combined requirement of all segments.
func (p *Plan) Total() Req {
	var total Req
	for _, seg := range p.segments {
		total = total.And(p.segmentReq(seg))
	}
	return total
}

// Resolve resolves the combined requirement of all segments.
func (p *Plan) Resolve() (size, align uint64, status fhe.ScratchStatus) {
	return p.Total().Resolve()
}

// Carve splits buf into the plan's segments and returns the regions
// by segment name: one region per worker for per-worker segments, a
// single region for shared segments. It panics if the plan is
// poisoned or buf is smaller than the plan size; both are layout bugs
// in the caller.
func (p *Plan) Carve(buf []byte) map[string][][]byte {
	if uint64(len(buf)) < p.Total().Size() {
		panic(fmt.Sprintf("scratch: block of %d bytes for plan of %d",
			len(buf), p.Total().Size()))
	}
	s := NewStack(buf)
	regions := make(map[string][][]byte)
	for _, seg := range p.segments {
		if seg.PerWorker {
			for w := 0; w < p.workers; w++ {
				regions[seg.Name] = append(regions[seg.Name],
					s.Take(seg.Req))
			}
		} else {
			regions[seg.Name] = [][]byte{s.Take(seg.Req)}
		}
	}
	return regions
}
