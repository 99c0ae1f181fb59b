//
// limit.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package csprng

import (
	"github.com/markkurossi/fhe"
)

// Limited draws from an underlying generator under a byte budget. It
// produces at most the budget; the underlying generator can run out
// earlier. The budget accounting is exact: remaining bytes decrease
// by exactly the count produced, and an exhausted budget stays at
// zero.
type Limited struct {
	csprng    CSPRNG
	remaining fhe.Uint128
}

// Limit returns a generator producing at most n bytes from c.
func Limit(c CSPRNG, n uint64) *Limited {
	return &Limited{
		csprng:    c,
		remaining: fhe.NewUint128(n, 0),
	}
}

// RemainingBytes implements CSPRNG.RemainingBytes.
func (l *Limited) RemainingBytes() fhe.Uint128 {
	r := l.csprng.RemainingBytes()
	if r.Cmp(l.remaining) < 0 {
		return r
	}
	return l.remaining
}

// NextBytes implements CSPRNG.NextBytes.
func (l *Limited) NextBytes(p []byte) int {
	if len(p) == 0 || l.remaining.IsZero() {
		return 0
	}
	count := uint64(len(p))
	if l.remaining.IsUint64() && l.remaining.Lo < count {
		count = l.remaining.Lo
	}
	n := l.csprng.NextBytes(p[:count])
	l.remaining = l.remaining.SubUint64(uint64(n))
	return n
}
