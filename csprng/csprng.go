//
// csprng.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package csprng defines the randomness capability of the computation
// backend. Cryptographic operations draw random bytes only through
// the CSPRNG interface; the application hosting the backend decides
// what generator stands behind it. The package also implements the
// plumbing around the capability: adapters between CSPRNG and
// io.Reader, a byte-budget wrapper, and a produced-bytes counter.
//
// A CSPRNG value is owned by one drawing goroutine at a time. The
// interface has no internal locking; concurrent NextBytes calls on
// one value are a caller error. RemainingBytes is read-only and safe
// to call concurrently with itself.
package csprng

import (
	"errors"
	"fmt"

	"github.com/markkurossi/fhe"
)

// CSPRNG defines the capability to produce cryptographically secure
// random bytes. Exhaustion is reported in-band as a short byte count;
// the interface has no error returns.
type CSPRNG interface {
	// RemainingBytes returns an upper bound on the number of bytes
	// the generator can still produce. Generators with effectively
	// unbounded capacity return fhe.MaxUint128. The call does not
	// change the generator state.
	RemainingBytes() fhe.Uint128

	// NextBytes fills p with random bytes and returns the number of
	// bytes produced. A count less than len(p) means the generator
	// is exhausted; bytes of p past the returned count are not valid
	// output. A len(p) == 0 call is a no-op returning 0.
	NextBytes(p []byte) int
}

// Funcs implements CSPRNG with explicit entry points, in the fixed
// order of the boundary contract: Remaining first, Next second. It
// adapts generators built from closures over private state. Both
// entry points must close over the same generator instance; mixing
// entry points of two generators violates the contract.
type Funcs struct {
	Remaining func() fhe.Uint128
	Next      func(p []byte) int
}

// RemainingBytes implements CSPRNG.RemainingBytes.
func (f Funcs) RemainingBytes() fhe.Uint128 {
	return f.Remaining()
}

// NextBytes implements CSPRNG.NextBytes.
func (f Funcs) NextBytes(p []byte) int {
	return f.Next(p)
}

// ErrExhausted means that a generator could not produce the requested
// number of bytes.
var ErrExhausted = errors.New("csprng: generator exhausted")

// Fill fills p with random bytes from the generator. It fails with an
// error wrapping ErrExhausted if the generator produces fewer than
// len(p) bytes. Fill does not retry; the caller must abort the
// operation that needed the bytes.
func Fill(c CSPRNG, p []byte) error {
	n := c.NextBytes(p)
	if n < len(p) {
		return fmt.Errorf("produced %d of %d bytes: %w",
			n, len(p), ErrExhausted)
	}
	return nil
}
