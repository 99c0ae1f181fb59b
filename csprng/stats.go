//
// stats.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package csprng

import (
	"sync/atomic"

	"github.com/markkurossi/fhe"
)

// Counting counts the bytes produced from an underlying generator.
// Drawing stays single-owner like any CSPRNG, but the counter is safe
// to read from other goroutines while the owner draws.
type Counting struct {
	csprng   CSPRNG
	produced *atomic.Uint64
}

// NewCounting creates a counting wrapper around the generator.
func NewCounting(c CSPRNG) *Counting {
	return &Counting{
		csprng:   c,
		produced: new(atomic.Uint64),
	}
}

// RemainingBytes implements CSPRNG.RemainingBytes.
func (c *Counting) RemainingBytes() fhe.Uint128 {
	return c.csprng.RemainingBytes()
}

// NextBytes implements CSPRNG.NextBytes.
func (c *Counting) NextBytes(p []byte) int {
	n := c.csprng.NextBytes(p)
	c.produced.Add(uint64(n))
	return n
}

// Produced returns the number of bytes produced so far.
func (c *Counting) Produced() uint64 {
	return c.produced.Load()
}
