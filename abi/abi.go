// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package abi serializes a proof transcript into the byte-precise blob
// the on-chain validator consumes, and parses it back. Every field is
// a 32-byte big-endian word; canonical left-padding and overflow
// checking go through github.com/holiman/uint256 rather than raw
// big.Int.
package abi

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/proof"
)

const wordSize = 32

// NoteMetadata is the tail-section payload attached to one output note:
// its public hash and the encrypted viewing key a recipient needs to
// spend it.
type NoteMetadata struct {
	NoteHash            [32]byte
	EncryptedViewingKey []byte
}

// ProofData is the fully decoded form of a proof blob.
type ProofData struct {
	Challenge    bn128.Fr
	M            *int
	PublicOwner  *common.Address
	KPublic      *big.Int
	Transcript   proof.Transcript
	InputOwners  []common.Address
	OutputOwners []common.Address
	OutputNotes  []NoteMetadata
}

// word left-pads v into a canonical 32-byte big-endian word, failing
// closed if v does not fit in 32 bytes.
func word(v *big.Int) ([32]byte, error) {
	var out [32]byte
	if v == nil {
		return out, nil
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return out, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "value exceeds 32 bytes")
	}
	return u.Bytes32(), nil
}

func wordUint64(n uint64) [32]byte {
	return new(uint256.Int).SetUint64(n).Bytes32()
}

func addressWord(a common.Address) [32]byte {
	var out [32]byte
	copy(out[wordSize-common.AddressLength:], a.Bytes())
	return out
}

// hexWordToBytes decodes one of proof.Record's "0x"-prefixed 32-byte
// hex fields back into a word, left-padding shorter values and failing
// with ENCODING_INVALID_LENGTH if it is malformed or longer than 32
// bytes once decoded.
func hexWordToBytes(s string) ([32]byte, error) {
	var out [32]byte
	b, ok := new(big.Int).SetString(trimHexPrefix(s), 16)
	if !ok {
		return out, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "malformed hex field")
	}
	raw := b.Bytes()
	if len(raw) > wordSize {
		return out, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "field exceeds 32 bytes")
	}
	copy(out[wordSize-len(raw):], raw)
	return out, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
