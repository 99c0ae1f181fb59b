//
// uint128.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fhe

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 implements an unsigned 128 bit integer. It carries byte
// counts that can exceed 64 bits, such as the remaining capacity of a
// random generator.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Uint128Data contains the 16-byte little-endian encoding of a
// Uint128: byte 0 holds the least significant byte of Lo and byte 15
// the most significant byte of Hi, independent of host byte order.
// Every 16-byte pattern decodes to a valid value.
type Uint128Data [16]byte

// MaxUint128 is the largest Uint128 value. A generator whose capacity
// is effectively unbounded reports it as its remaining byte count.
var MaxUint128 = Uint128{
	Lo: math.MaxUint64,
	Hi: math.MaxUint64,
}

// NewUint128 creates a Uint128 from the low and high 64-bit words.
func NewUint128(lo, hi uint64) Uint128 {
	return Uint128{
		Lo: lo,
		Hi: hi,
	}
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(u.Lo))
	return v.String()
}

// Equal tests if the values are equal.
func (u Uint128) Equal(o Uint128) bool {
	return u.Lo == o.Lo && u.Hi == o.Hi
}

// IsZero tests if the value is zero.
func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// IsUint64 tests if the value fits into an uint64.
func (u Uint128) IsUint64() bool {
	return u.Hi == 0
}

// Uint64 returns the low 64 bits of the value.
func (u Uint128) Uint64() uint64 {
	return u.Lo
}

// Cmp compares the values and returns -1, 0, or 1 if u is smaller
// than, equal to, or greater than o.
func (u Uint128) Cmp(o Uint128) int {
	if u.Hi != o.Hi {
		if u.Hi < o.Hi {
			return -1
		}
		return 1
	}
	if u.Lo != o.Lo {
		if u.Lo < o.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// AddUint64 returns u+v. The result wraps around at 2^128.
func (u Uint128) AddUint64(v uint64) Uint128 {
	lo, carry := bits.Add64(u.Lo, v, 0)
	return Uint128{
		Lo: lo,
		Hi: u.Hi + carry,
	}
}

// SubUint64 returns u-v. The result wraps around below zero; callers
// must check u.Cmp first when v can exceed u.
func (u Uint128) SubUint64(v uint64) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v, 0)
	return Uint128{
		Lo: lo,
		Hi: u.Hi - borrow,
	}
}

// GetData gets the value as little-endian data.
func (u Uint128) GetData(buf *Uint128Data) {
	binary.LittleEndian.PutUint64(buf[0:8], u.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], u.Hi)
}

// SetData sets the value from little-endian data.
func (u *Uint128) SetData(data *Uint128Data) {
	u.Lo = binary.LittleEndian.Uint64((*data)[0:8])
	u.Hi = binary.LittleEndian.Uint64((*data)[8:16])
}

// Bytes returns the value data as bytes.
func (u Uint128) Bytes(buf *Uint128Data) []byte {
	u.GetData(buf)
	return buf[:]
}

// SetBytes sets the value from little-endian bytes.
func (u *Uint128) SetBytes(data []byte) {
	u.Lo = binary.LittleEndian.Uint64(data[0:8])
	u.Hi = binary.LittleEndian.Uint64(data[8:16])
}
