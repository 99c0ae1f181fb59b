//
// scratch.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package scratch implements overflow-checked scratch memory sizing.
// Computation operations describe their working memory as requirement
// values (Req) combined with And, Or, and array forms, resolve the
// combined requirement into a byte size, and carve a caller-allocated
// block with a Stack. All requirement arithmetic is overflow-checked:
// a requirement whose size cannot be represented is poisoned, every
// requirement derived from it stays poisoned, and resolving it
// reports fhe.ScratchSizeOverflow instead of a wrapped or partial
// size.
//
// The Plan type lays out the named segments of one operation for an
// execution mode. A plan built for parallel execution replicates its
// per-worker segments; sizing and execution driven by the same mode
// value always agree on the layout.
package scratch

import (
	"fmt"
	"math/bits"

	"github.com/markkurossi/fhe"
)

// Req specifies a scratch memory requirement as a byte size and a
// power-of-two alignment. The zero value is the empty requirement.
type Req struct {
	size     uint64
	align    uint64
	overflow bool
}

var overflowed = Req{
	overflow: true,
}

// Of returns a requirement of size bytes aligned to align. It panics
// if align is not a power of two.
func Of(size, align uint64) Req {
	if align == 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("scratch: invalid alignment %d", align))
	}
	return Req{
		size:  size,
		align: align,
	}
}

// Bytes returns a byte-aligned requirement of size bytes.
func Bytes(size uint64) Req {
	return Req{
		size:  size,
		align: 1,
	}
}

func (r Req) alignment() uint64 {
	if r.align == 0 {
		return 1
	}
	return r.align
}

// And returns the requirement for r and o live at the same time: o
// placed after r at o's alignment.
func (r Req) And(o Req) Req {
	if r.overflow || o.overflow {
		return overflowed
	}
	offset, ok := alignUp(r.size, o.alignment())
	if !ok {
		return overflowed
	}
	size, carry := bits.Add64(offset, o.size, 0)
	if carry != 0 {
		return overflowed
	}
	return Req{
		size:  size,
		align: max(r.alignment(), o.alignment()),
	}
}

// Or returns the requirement for r or o live one at a time, sharing
// the same memory.
func (r Req) Or(o Req) Req {
	if r.overflow || o.overflow {
		return overflowed
	}
	return Req{
		size:  max(r.size, o.size),
		align: max(r.alignment(), o.alignment()),
	}
}

// ArrayOf returns the requirement for n sequential copies of r, each
// at r's alignment.
func ArrayOf(r Req, n uint64) Req {
	if r.overflow {
		return overflowed
	}
	stride, ok := alignUp(r.size, r.alignment())
	if !ok {
		return overflowed
	}
	hi, size := bits.Mul64(stride, n)
	if hi != 0 {
		return overflowed
	}
	return Req{
		size:  size,
		align: r.alignment(),
	}
}

// AllOf returns the requirement for all argument requirements live at
// the same time.
func AllOf(reqs ...Req) Req {
	var result Req
	for _, r := range reqs {
		result = result.And(r)
	}
	return result
}

// AnyOf returns the requirement for the argument requirements live
// one at a time.
func AnyOf(reqs ...Req) Req {
	var result Req
	for _, r := range reqs {
		result = result.Or(r)
	}
	return result
}

// Resolve returns the byte size and alignment of the requirement. The
// size and alignment are valid only if the status is
// fhe.ScratchValid; a poisoned requirement resolves to
// fhe.ScratchSizeOverflow and zero size.
func (r Req) Resolve() (size, align uint64, status fhe.ScratchStatus) {
	if r.overflow {
		return 0, 1, fhe.ScratchSizeOverflow
	}
	return r.size, r.alignment(), fhe.ScratchValid
}

// Status returns the requirement status.
func (r Req) Status() fhe.ScratchStatus {
	if r.overflow {
		return fhe.ScratchSizeOverflow
	}
	return fhe.ScratchValid
}

// Size returns the byte size of the requirement. It panics if the
// requirement is poisoned; callers must check Status or Resolve
// first when the inputs are not known to be in range.
func (r Req) Size() uint64 {
	if r.overflow {
		panic("scratch: size overflow")
	}
	return r.size
}

// Align returns the alignment of the requirement. It panics if the
// requirement is poisoned.
func (r Req) Align() uint64 {
	if r.overflow {
		panic("scratch: size overflow")
	}
	return r.alignment()
}

func (r Req) String() string {
	if r.overflow {
		return "overflow"
	}
	return fmt.Sprintf("%d/%d", r.size, r.alignment())
}

// alignUp rounds v up to a multiple of align. The second return value
// is false if the result does not fit into an uint64.
func alignUp(v, align uint64) (uint64, bool) {
	sum, carry := bits.Add64(v, align-1, 0)
	if carry != 0 {
		return 0, false
	}
	return sum &^ (align - 1), true
}
