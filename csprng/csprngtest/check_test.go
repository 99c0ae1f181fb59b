//
// check_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package csprngtest

import (
	"bytes"
	"testing"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/fhe/csprng"
)

func TestCheckSources(t *testing.T) {
	if err := Check(New([]byte("check"))); err != nil {
		t.Errorf("Check(Source): %v", err)
	}
	if err := CheckExact(New([]byte("check"))); err != nil {
		t.Errorf("CheckExact(Source): %v", err)
	}
	if err := Check(csprng.Limit(New([]byte("check")), 32)); err != nil {
		t.Errorf("Check(Limited): %v", err)
	}
	if err := CheckExact(csprng.Limit(New([]byte("check")), 2000)); err != nil {
		t.Errorf("CheckExact(Limited): %v", err)
	}
	if err := Check(csprng.NewCounting(New([]byte("check")))); err != nil {
		t.Errorf("Check(Counting): %v", err)
	}

	data := make([]byte, 4096)
	New([]byte("reader")).NextBytes(data)
	if err := Check(csprng.NewReaderSource(bytes.NewReader(data))); err != nil {
		t.Errorf("Check(ReaderSource): %v", err)
	}
	if err := CheckExact(csprng.System()); err != nil {
		t.Errorf("CheckExact(System): %v", err)
	}
}

func TestCheckBroken(t *testing.T) {
	// Reports one byte more than the buffer holds.
	overProducer := csprng.Funcs{
		Remaining: func() fhe.Uint128 {
			return fhe.MaxUint128
		},
		Next: func(p []byte) int {
			return len(p) + 1
		},
	}
	if err := Check(overProducer); err == nil {
		t.Error("Check passed a generator overshooting the buffer")
	}

	// Remaining count grows on every call.
	var calls uint64
	growing := csprng.Funcs{
		Remaining: func() fhe.Uint128 {
			calls++
			return fhe.NewUint128(calls, 0)
		},
		Next: func(p []byte) int {
			return len(p)
		},
	}
	if err := Check(growing); err == nil {
		t.Error("Check passed a generator with unstable remaining count")
	}

	// Produces more than the reported remaining count.
	overCommitted := csprng.Funcs{
		Remaining: func() fhe.Uint128 {
			return fhe.NewUint128(4, 0)
		},
		Next: func(p []byte) int {
			return len(p)
		},
	}
	if err := Check(overCommitted); err == nil {
		t.Error("Check passed a generator exceeding its remaining count")
	}

	// Returns short counts without being exhausted.
	flaky := csprng.Funcs{
		Remaining: func() fhe.Uint128 {
			return fhe.MaxUint128
		},
		Next: func(p []byte) int {
			if len(p) == 0 {
				return 0
			}
			return len(p) - 1
		},
	}
	if err := Check(flaky); err == nil {
		t.Error("Check passed a generator with spurious short counts")
	}

	// Accounts two bytes for every byte produced.
	src := New([]byte("double"))
	remaining := fhe.NewUint128(1000000, 0)
	doubleCounter := csprng.Funcs{
		Remaining: func() fhe.Uint128 {
			return remaining
		},
		Next: func(p []byte) int {
			n := src.NextBytes(p)
			remaining = remaining.SubUint64(2 * uint64(n))
			return n
		},
	}
	if err := CheckExact(doubleCounter); err == nil {
		t.Error("CheckExact passed a generator with inexact accounting")
	}
}

func TestDrain(t *testing.T) {
	l := csprng.Limit(New([]byte("drain")), 10000)
	total, err := Drain(l, 1<<20)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if total != 10000 {
		t.Fatalf("Drain: got %d bytes", total)
	}

	if _, err := Drain(New([]byte("endless")), 1<<20); err == nil {
		t.Fatal("Drain completed on a fresh source")
	}
}
