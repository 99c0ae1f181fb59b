//
// reader.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package csprng

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/fhe"
)

// NewReader returns an io.Reader drawing from the generator, for
// consumers that take their entropy as a reader. Read returns io.EOF
// when the generator is exhausted, with the partial count of the last
// bytes produced.
func NewReader(c CSPRNG) io.Reader {
	return &reader{
		csprng: c,
	}
}

type reader struct {
	csprng CSPRNG
}

func (r *reader) Read(p []byte) (int, error) {
	n := r.csprng.NextBytes(p)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReaderSource implements CSPRNG on top of an io.Reader. An io.Reader
// carries no capacity information, so the remaining count starts at
// fhe.MaxUint128 and decreases with production. A read error or short
// read latches exhaustion: the remaining count drops to zero and the
// underlying reader is not touched again.
type ReaderSource struct {
	r         io.Reader
	remaining fhe.Uint128
}

// NewReaderSource creates a CSPRNG drawing from the reader.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		r:         r,
		remaining: fhe.MaxUint128,
	}
}

// RemainingBytes implements CSPRNG.RemainingBytes.
func (s *ReaderSource) RemainingBytes() fhe.Uint128 {
	return s.remaining
}

// NextBytes implements CSPRNG.NextBytes.
func (s *ReaderSource) NextBytes(p []byte) int {
	if len(p) == 0 || s.remaining.IsZero() {
		return 0
	}
	n, err := io.ReadFull(s.r, p)
	if err != nil {
		s.remaining = fhe.Uint128{}
		return n
	}
	s.remaining = s.remaining.SubUint64(uint64(n))
	return n
}

// System returns the platform random generator as a CSPRNG.
func System() CSPRNG {
	return NewReaderSource(rand.Reader)
}
