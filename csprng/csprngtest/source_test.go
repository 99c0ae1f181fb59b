//
// source_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package csprngtest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/fhe/csprng"
)

func TestSourceDeterminism(t *testing.T) {
	seed := []byte("test seed")

	a := New(seed)
	b := New(seed)

	bufA := make([]byte, 1000)
	bufB := make([]byte, 1000)
	if n := a.NextBytes(bufA); n != 1000 {
		t.Fatalf("NextBytes: got %d", n)
	}

	// The stream does not depend on request sizes.
	var off int
	for _, n := range []int{1, 7, 64, 65, 863} {
		if got := b.NextBytes(bufB[off : off+n]); got != n {
			t.Fatalf("NextBytes: got %d, expected %d", got, n)
		}
		off += n
	}
	if !bytes.Equal(bufA, bufB) {
		t.Fatal("same seed produced different streams")
	}

	c := New([]byte("other seed"))
	bufC := make([]byte, 1000)
	c.NextBytes(bufC)
	if bytes.Equal(bufA, bufC) {
		t.Fatal("different seeds produced the same stream")
	}
}

func TestSourceSeedExpansion(t *testing.T) {
	// A seed repeats to the 32-byte key, so a seed and its
	// self-repetition give the same stream.
	a := New([]byte{1, 2, 3, 4})
	b := New([]byte{1, 2, 3, 4, 1, 2, 3, 4})

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	a.NextBytes(bufA)
	b.NextBytes(bufB)
	if !bytes.Equal(bufA, bufB) {
		t.Fatal("repeated seed produced a different stream")
	}

	empty := New(nil)
	if n := empty.NextBytes(bufA); n != 64 {
		t.Fatalf("NextBytes: got %d", n)
	}
}

func TestSourceFork(t *testing.T) {
	seed := []byte("fork seed")

	parent := New(seed)
	children, err := parent.Fork(3)
	if err != nil {
		t.Fatalf("Fork: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("Fork: got %d children", len(children))
	}

	// Forking consumed the child keys from the parent stream.
	expected := fhe.NewUint128(Capacity-3*32, 0)
	if r := parent.RemainingBytes(); !r.Equal(expected) {
		t.Fatalf("RemainingBytes: got %s, expected %s", r, expected)
	}

	// The child streams are mutually distinct and distinct from the
	// parent's continued stream.
	streams := make([][]byte, 0, 4)
	for _, child := range children {
		buf := make([]byte, 256)
		child.NextBytes(buf)
		streams = append(streams, buf)
	}
	buf := make([]byte, 256)
	parent.NextBytes(buf)
	streams = append(streams, buf)
	for i := 0; i < len(streams); i++ {
		for j := i + 1; j < len(streams); j++ {
			if bytes.Equal(streams[i], streams[j]) {
				t.Fatalf("streams %d and %d are equal", i, j)
			}
		}
	}

	// Forking is deterministic.
	again, err := New(seed).Fork(3)
	if err != nil {
		t.Fatalf("Fork: %v", err)
	}
	for i, child := range again {
		buf := make([]byte, 256)
		child.NextBytes(buf)
		if !bytes.Equal(buf, streams[i]) {
			t.Fatalf("child %d stream differs between forks", i)
		}
	}

	if _, err := parent.Fork(0); err != nil {
		t.Fatalf("Fork(0): %v", err)
	}
}

func TestSourceForkExhausted(t *testing.T) {
	parent := New([]byte("short"))
	parent.remaining = fhe.NewUint128(40, 0)

	// The first child key drains the parent; the second fails.
	if _, err := parent.Fork(2); err == nil {
		t.Fatal("Fork succeeded on an exhausted parent")
	} else if !errors.Is(err, csprng.ErrExhausted) {
		t.Fatalf("Fork: unexpected error: %v", err)
	}
}

func TestSourceCapacity(t *testing.T) {
	s := New([]byte("capacity"))
	if r := s.RemainingBytes(); !r.Equal(fhe.NewUint128(Capacity, 0)) {
		t.Fatalf("RemainingBytes: got %s", r)
	}
	buf := make([]byte, 12345)
	s.NextBytes(buf)
	expected := fhe.NewUint128(Capacity-12345, 0)
	if r := s.RemainingBytes(); !r.Equal(expected) {
		t.Fatalf("RemainingBytes: got %s, expected %s", r, expected)
	}
	if n := s.NextBytes(nil); n != 0 {
		t.Fatalf("zero-size request produced %d bytes", n)
	}
	if r := s.RemainingBytes(); !r.Equal(expected) {
		t.Fatalf("RemainingBytes changed on zero-size request: %s", r)
	}
}

func BenchmarkSource1K(b *testing.B) {
	benchmarkSource(b, 1000)
}

func BenchmarkSource10K(b *testing.B) {
	benchmarkSource(b, 10000)
}

func BenchmarkSource100K(b *testing.B) {
	benchmarkSource(b, 100000)
}

func benchmarkSource(b *testing.B, n int) {
	s := New([]byte("benchmark"))
	out := make([]byte, n)

	for b.Loop() {
		if got := s.NextBytes(out); got != n {
			b.Fatalf("NextBytes: got %d", got)
		}
	}
}
