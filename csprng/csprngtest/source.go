//
// source.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package csprngtest implements test support for CSPRNG providers and
// consumers: a deterministic seeded generator and conformance checks
// for the capability contract.
package csprngtest

import (
	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/fhe/csprng"
)

// Capacity is the byte capacity of a fresh Source: the length of the
// ChaCha20 keystream under one key and nonce.
const Capacity = (1<<32 - 1) * 64

// Source is a deterministic generator for tests: the same seed
// produces the same byte stream. The stream is the ChaCha20 keystream
// under a key derived from the seed, with the keystream length as a
// real, reproducible capacity.
type Source struct {
	cipher    *chacha20.Cipher
	remaining fhe.Uint128
}

// New creates a deterministic source seeded with seed. The seed is
// expanded to the 32-byte stream key by repetition; an empty seed
// gives the all-zero key.
func New(seed []byte) *Source {
	key := make([]byte, chacha20.KeySize)
	if len(seed) > 0 {
		for i := 0; i < len(key); i++ {
			key[i] = seed[i%len(seed)]
		}
	}
	nonce := make([]byte, chacha20.NonceSize)
	cipher, _ := chacha20.NewUnauthenticatedCipher(key, nonce)
	return &Source{
		cipher:    cipher,
		remaining: fhe.NewUint128(Capacity, 0),
	}
}

// Fork derives n child sources from s. Each child is keyed with bytes
// drawn from the parent stream and produces its own full-capacity
// stream, so every worker of a parallel operation can draw from its
// own generator. Forking is deterministic: the same parent seed gives
// the same children. Fork fails with an error wrapping
// csprng.ErrExhausted if the parent cannot produce the key bytes.
func (s *Source) Fork(n int) ([]*Source, error) {
	children := make([]*Source, n)
	for i := range children {
		key := make([]byte, chacha20.KeySize)
		if err := csprng.Fill(s, key); err != nil {
			return nil, err
		}
		children[i] = New(key)
	}
	return children, nil
}

// RemainingBytes implements csprng.CSPRNG.RemainingBytes.
func (s *Source) RemainingBytes() fhe.Uint128 {
	return s.remaining
}

// NextBytes implements csprng.CSPRNG.NextBytes.
func (s *Source) NextBytes(p []byte) int {
	if len(p) == 0 || s.remaining.IsZero() {
		return 0
	}
	count := uint64(len(p))
	if s.remaining.Lo < count {
		count = s.remaining.Lo
	}
	buf := p[:count]
	for i := range buf {
		buf[i] = 0
	}
	s.cipher.XORKeyStream(buf, buf)
	s.remaining = s.remaining.SubUint64(count)
	return int(count)
}
