//
// status.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fhe

import (
	"fmt"
)

// ScratchStatus reports the outcome of a scratch size computation.
// The status is consumed right after the computation that produced
// it; it is never stored. A size accompanied by ScratchSizeOverflow
// is invalid and must not be used.
type ScratchStatus uint32

// Scratch size computation outcomes. The numeric codes are fixed.
const (
	ScratchValid ScratchStatus = iota
	ScratchSizeOverflow
)

func (s ScratchStatus) String() string {
	switch s {
	case ScratchValid:
		return "Valid"
	case ScratchSizeOverflow:
		return "SizeOverflow"
	default:
		return fmt.Sprintf("{ScratchStatus %d}", uint32(s))
	}
}
