//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fhe defines the value types of the computation backend
// boundary: the types that cross between cryptographic engine code
// and the application hosting it.
//
// The boundary has three concerns, each implemented in its own
// package on top of the types defined here:
//
//   - Randomness: engine code draws random bytes through the
//     csprng.CSPRNG capability. The host decides where the bytes come
//     from; the engine only counts and consumes them. Byte counts that
//     can exceed 64 bits (a generator's remaining capacity) travel as
//     Uint128 values with a fixed 16-byte little-endian encoding.
//
//   - Scratch sizing: operations compute their working-memory
//     requirements with the scratch package before running. Size
//     computations are overflow-checked and report a ScratchStatus;
//     a computation that cannot represent its result reports
//     ScratchSizeOverflow instead of a wrapped or partial size.
//
//   - Execution mode: the Parallelism selector chooses between
//     sequential and multi-worker execution. The same selector value
//     drives both scratch sizing and the eval execution pool, so a
//     layout is always sized for the mode it runs under.
//
// The numeric codes of ScratchStatus and Parallelism and the byte
// layout of Uint128 are fixed and stable across versions.
package fhe
