// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transcript implements the domain-separated Keccak-256
// accumulator every proof constructor hashes its challenge and rolling
// blinding-factor state over. It is modeled as an explicit stateful
// object rather than a pure function: a Finalize call replaces the
// buffer's contents with the digest, so a caller can keep appending and
// re-finalize, chaining hashes the way a rolling blinding-factor schema
// needs to.
package transcript

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"

	"github.com/luxfi/aztec/bn128"
)

// Buffer accumulates 32-byte big-endian chunks and finalizes them with
// Keccak-256. The zero value is ready to use.
type Buffer struct {
	chunks [][]byte
}

// New returns an empty transcript buffer.
func New() *Buffer {
	return &Buffer{}
}

// AppendBytes appends a pre-padded 32-byte chunk verbatim. The chunk is
// a fixed-size array, so its length is enforced by the type.
func (b *Buffer) AppendBytes(chunk [32]byte) {
	c := make([]byte, 32)
	copy(c, chunk[:])
	b.chunks = append(b.chunks, c)
}

// AppendScalar left-pads s to 32 bytes and appends it.
func (b *Buffer) AppendScalar(s bn128.Fr) {
	v := s.Bytes()
	b.AppendBytes(v)
}

// AppendCoordinate left-pads a field coordinate to 32 bytes and appends
// it — used for appending a point's x or y individually.
func (b *Buffer) AppendCoordinate(c bn128.Fp) {
	v := c.Bytes()
	b.AppendBytes(v)
}

// AppendPoint appends a group point as x then y, two 32-byte chunks.
func (b *Buffer) AppendPoint(p bn128.Point) {
	b.AppendCoordinate(p.X())
	b.AppendCoordinate(p.Y())
}

// AppendAddress left-pads a 20-byte address to 32 bytes and appends it.
func (b *Buffer) AppendAddress(addr common.Address) {
	var padded [32]byte
	copy(padded[12:], addr[:])
	b.AppendBytes(padded)
}

// AppendBigInt left-pads a non-negative integer of at most 32 bytes to
// 32 bytes and appends it; a longer value panics. Used for kPublic, m
// and similar raw scalars that have not yet been reduced into an Fr.
func (b *Buffer) AppendBigInt(v *big.Int) {
	var padded [32]byte
	vb := v.Bytes()
	copy(padded[32-len(vb):], vb)
	b.AppendBytes(padded)
}

// reseed hashes the accumulated chunks with Keccak-256 and replaces the
// buffer's contents with the raw digest, so a subsequent Append/
// Finalize chains from it.
func (b *Buffer) reseed() []byte {
	digest := crypto.Keccak256(b.chunks...)
	b.chunks = [][]byte{append([]byte(nil), digest...)}
	return digest
}

// FinalizeScalar finalizes the transcript into a scalar reduced mod n —
// the "groupReduction" context, used for challenges and blinding-factor
// rolling-hash outputs (bk_public, the private-range chaining scalar x).
func (b *Buffer) FinalizeScalar() bn128.Fr {
	digest := b.reseed()
	v := new(big.Int).SetBytes(digest)
	v.Mod(v, bn128.FrModulus)
	return bn128.FrFromBigInt(v)
}

// FinalizeCoordinate finalizes the transcript into a coordinate reduced
// mod p — the "red" context. Provided for completeness/testing; no
// proof constructor in this engine currently finalizes into Fp.
func (b *Buffer) FinalizeCoordinate() bn128.Fp {
	digest := b.reseed()
	v := new(big.Int).SetBytes(digest)
	v.Mod(v, bn128.FpModulus)
	return bn128.FpFromBigInt(v)
}
