//
// stack.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package scratch

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/markkurossi/fhe"
)

// Stack carves a scratch block into requirement-sized regions in
// order. Regions are aligned relative to the block start.
type Stack struct {
	buf []byte
	off uint64
}

// NewStack creates a stack carving buf.
func NewStack(buf []byte) *Stack {
	return &Stack{
		buf: buf,
	}
}

// Alloc allocates a block for the requirement and returns a stack
// carving it. The status is fhe.ScratchSizeOverflow if the
// requirement is poisoned or its size cannot be realized as a byte
// slice on this platform.
func Alloc(r Req) (*Stack, fhe.ScratchStatus) {
	size, _, status := r.Resolve()
	if status != fhe.ScratchValid {
		return nil, status
	}
	if size > math.MaxInt {
		return nil, fhe.ScratchSizeOverflow
	}
	return NewStack(make([]byte, size)), fhe.ScratchValid
}

// Take carves the next region for the requirement. It panics if the
// requirement is poisoned or does not fit into the remaining block;
// both are layout bugs in the caller.
func (s *Stack) Take(r Req) []byte {
	size := r.Size()
	off, ok := alignUp(s.off, r.alignment())
	if !ok {
		panic("scratch: block offset overflow")
	}
	end, carry := bits.Add64(off, size, 0)
	if carry != 0 || end > uint64(len(s.buf)) {
		panic(fmt.Sprintf("scratch: taking %d bytes at %d from block of %d",
			size, off, len(s.buf)))
	}
	s.off = end
	return s.buf[off:end:end]
}

// Remaining returns the number of bytes left in the block.
func (s *Stack) Remaining() uint64 {
	return uint64(len(s.buf)) - s.off
}
