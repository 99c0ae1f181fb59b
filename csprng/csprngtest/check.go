//
// check.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package csprngtest

import (
	"fmt"

	"github.com/markkurossi/fhe/csprng"
)

// Check verifies that the generator honors the capability contract:
// zero-size requests are no-ops, the remaining count is stable
// without production and never increases, produced counts stay within
// both the buffer size and the reported remaining count, and a short
// count means the generator is exhausted for good. Check consumes
// bytes from c.
func Check(c csprng.CSPRNG) error {
	r0 := c.RemainingBytes()
	r1 := c.RemainingBytes()
	if !r1.Equal(r0) {
		return fmt.Errorf(
			"csprngtest: remaining changed from %s to %s without production",
			r0, r1)
	}
	if n := c.NextBytes(nil); n != 0 {
		return fmt.Errorf("csprngtest: nil request produced %d bytes", n)
	}
	if n := c.NextBytes([]byte{}); n != 0 {
		return fmt.Errorf("csprngtest: empty request produced %d bytes",
			n)
	}
	r1 = c.RemainingBytes()
	if !r1.Equal(r0) {
		return fmt.Errorf(
			"csprngtest: zero-size request changed remaining from %s to %s",
			r0, r1)
	}

	before := r0
	for _, size := range []int{1, 16, 63, 64, 65, 1000} {
		buf := make([]byte, size)
		n := c.NextBytes(buf)
		if n < 0 || n > size {
			return fmt.Errorf(
				"csprngtest: request of %d produced %d bytes", size, n)
		}
		if before.IsUint64() && uint64(n) > before.Lo {
			return fmt.Errorf(
				"csprngtest: produced %d bytes with %s remaining",
				n, before)
		}
		after := c.RemainingBytes()
		if after.Cmp(before) > 0 {
			return fmt.Errorf(
				"csprngtest: remaining grew from %s to %s", before, after)
		}
		if n < size {
			if !after.IsZero() {
				return fmt.Errorf(
					"csprngtest: short count %d of %d but %s remaining",
					n, size, after)
			}
			if m := c.NextBytes(make([]byte, 8)); m != 0 {
				return fmt.Errorf(
					"csprngtest: produced %d bytes after exhaustion", m)
			}
			return nil
		}
		before = after
	}
	return nil
}

// CheckExact verifies exact byte accounting on top of Check: every
// produced count is subtracted from the remaining count. All
// generators of this module account exactly. CheckExact consumes
// bytes from c.
func CheckExact(c csprng.CSPRNG) error {
	if err := Check(c); err != nil {
		return err
	}
	for _, size := range []int{1, 32, 256} {
		before := c.RemainingBytes()
		buf := make([]byte, size)
		n := c.NextBytes(buf)
		after := c.RemainingBytes()

		expected := before.SubUint64(uint64(n))
		if !after.Equal(expected) {
			return fmt.Errorf(
				"csprngtest: produced %d bytes, remaining %s to %s, expected %s",
				n, before, after, expected)
		}
		if n < size {
			if !after.IsZero() {
				return fmt.Errorf(
					"csprngtest: short count %d of %d but %s remaining",
					n, size, after)
			}
			return nil
		}
	}
	return nil
}

// Drain produces bytes from c until it is exhausted and returns the
// total byte count. It fails if c does not stop within limit bytes.
func Drain(c csprng.CSPRNG, limit uint64) (uint64, error) {
	var total uint64
	buf := make([]byte, 4096)
	for {
		n := c.NextBytes(buf)
		total += uint64(n)
		if n < len(buf) {
			if r := c.RemainingBytes(); !r.IsZero() {
				return total, fmt.Errorf(
					"csprngtest: exhausted after %d bytes but %s remaining",
					total, r)
			}
			return total, nil
		}
		if total >= limit {
			return total, fmt.Errorf(
				"csprngtest: not exhausted after %d bytes", total)
		}
	}
}
