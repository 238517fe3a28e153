// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package eip712 verifies note-spending authorizations. AZTEC notes may
// be signed by their owner under the standard EIP-712 structured-data
// scheme; this package only recovers and checks the signer of an
// already-produced signature — it never signs, since wallet key
// custody is out of scope here.
package eip712

import (
	"errors"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
)

var domainTypeHash = crypto.Keccak256Hash([]byte(
	"EIP712Domain(string name,string version,address verifyingContract,uint256 chainId)",
))

var schemaTypeHash = crypto.Keccak256Hash([]byte(
	"NoteSignature(bytes32 noteHash,address spender,uint8 status)",
))

// ErrZeroSigner is returned when a signature recovers to the zero
// address — an invalid signature masquerading as valid input.
var ErrZeroSigner = errors.New("eip712: signer address cannot be 0")

// Domain is the EIP-712 domain separator's fields. Name is
// conventionally "AZTEC_MAIN"; Version, VerifyingContract and ChainID
// are deployment-specific.
type Domain struct {
	Name              string
	Version           string
	VerifyingContract common.Address
	ChainID           *big.Int
}

// Status is the note-spending authorization state a signature attests
// to.
type Status uint8

const (
	StatusUnspent Status = iota
	StatusSpent
)

// Signature is an opaque (v, r, s) triple as produced by a wallet;
// this package never constructs one.
type Signature struct {
	V byte
	R [32]byte
	S [32]byte
}

func (d Domain) separator() [32]byte {
	nameHash := crypto.Keccak256Hash([]byte(d.Name))
	versionHash := crypto.Keccak256Hash([]byte(d.Version))

	encoded := make([]byte, 5*32)
	copy(encoded[0:32], domainTypeHash[:])
	copy(encoded[32:64], nameHash[:])
	copy(encoded[64:96], versionHash[:])
	copy(encoded[128-common.AddressLength:128], d.VerifyingContract.Bytes())
	if d.ChainID != nil {
		d.ChainID.FillBytes(encoded[128:160])
	}
	return crypto.Keccak256Hash(encoded)
}

// StructHash hashes a NoteSignature struct per the EIP-712 schema
// {noteHash, spender, status}.
func StructHash(noteHash common.Hash, spender common.Address, status Status) [32]byte {
	encoded := make([]byte, 4*32)
	copy(encoded[0:32], schemaTypeHash[:])
	copy(encoded[32:64], noteHash[:])
	copy(encoded[96-common.AddressLength:96], spender.Bytes())
	encoded[127] = byte(status)
	return crypto.Keccak256Hash(encoded)
}

// Digest builds the final EIP-712 signing digest
// keccak256(0x1901 || domainSeparator || structHash).
func Digest(domain Domain, noteHash common.Hash, spender common.Address, status Status) [32]byte {
	sep := domain.separator()
	structHash := StructHash(noteHash, spender, status)

	msg := make([]byte, 2+32+32)
	msg[0] = 0x19
	msg[1] = 0x01
	copy(msg[2:34], sep[:])
	copy(msg[34:66], structHash[:])
	return crypto.Keccak256Hash(msg)
}

// Verify recovers the signer of sig over the note-signature digest and
// checks it is non-zero. It does not check the signer against any
// expected owner — that comparison belongs to the caller, which has
// the note's owner field available.
func Verify(domain Domain, noteHash common.Hash, spender common.Address, status Status, sig Signature) (common.Address, error) {
	// Solidity's ecrecover only accepts v in {27, 28}; any other value
	// recovers to the zero address on-chain, so we reject it the same
	// way here rather than feeding an out-of-convention recovery id to
	// SigToPub.
	if sig.V != 27 && sig.V != 28 {
		return common.Address{}, ErrZeroSigner
	}

	digest := Digest(domain, noteHash, spender, status)

	raw := make([]byte, 65)
	copy(raw[0:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = sig.V - 27

	pub, err := crypto.SigToPub(digest[:], raw)
	if err != nil {
		return common.Address{}, err
	}
	signer := crypto.PubkeyToAddress(*pub)
	if signer == (common.Address{}) {
		return common.Address{}, ErrZeroSigner
	}
	return signer, nil
}
