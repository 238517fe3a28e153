// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package note implements the AZTEC note primitive: a Pedersen-style
// commitment (γ, σ) to a confidential value k under viewing key a, with
// σ = k·h + a·γ.
package note

import (
	"crypto/ecdh"
	"io"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/ecies"
)

// KMax is the largest value a note may commit to, 2^32 - 1.
const KMax = (uint64(1) << 32) - 1

// Note is a confidential value commitment, (γ, σ), owned by an
// Ethereum address.
type Note struct {
	K     uint64
	A     bn128.Fr
	Gamma bn128.Point
	Sigma bn128.Point
	Owner common.Address
}

// Hash returns Keccak256(γ.x ‖ γ.y ‖ σ.x ‖ σ.y), the note's identity on
// the note registry.
func (n Note) Hash() [32]byte {
	gx := n.Gamma.X().Bytes()
	gy := n.Gamma.Y().Bytes()
	sx := n.Sigma.X().Bytes()
	sy := n.Sigma.Y().Bytes()
	digest := crypto.Keccak256(gx[:], gy[:], sx[:], sy[:])
	var out [32]byte
	copy(out[:], digest)
	return out
}

// Validate checks the invariants every note must satisfy: γ and σ lie
// on-curve and are non-identity, the viewing key is non-zero, and k does
// not exceed K_MAX. proof.ParseInputs runs this same check on every note
// it is given.
func (n Note) Validate() error {
	if err := n.Gamma.Validate(); err != nil {
		return err
	}
	if err := n.Sigma.Validate(); err != nil {
		return err
	}
	if n.A.IsZero() {
		return aztecerr.New(aztecerr.CodeViewingKeyMalformed, "viewing key a must be non-zero")
	}
	if n.K > KMax {
		return aztecerr.New(aztecerr.CodeNoteValueTooBig, "k exceeds K_MAX")
	}
	return nil
}

// commit computes σ = k·h + a·γ given the CRS generator h.
func commit(k uint64, a bn128.Fr, gamma, h bn128.Point) bn128.Point {
	kh := h.ScalarMul(bn128.FrFromUint64(k))
	ag := gamma.ScalarMul(a)
	return kh.Add(ag)
}

// FromViewingKey builds a note given an explicit viewing key a. γ is
// drawn fresh from rng; σ is derived from (k, a, γ, h).
func FromViewingKey(rng io.Reader, h bn128.Point, k uint64, a bn128.Fr, owner common.Address) (Note, error) {
	if k > KMax {
		return Note{}, aztecerr.New(aztecerr.CodeNoteValueTooBig, "k exceeds K_MAX")
	}
	if a.IsZero() {
		return Note{}, aztecerr.New(aztecerr.CodeViewingKeyMalformed, "viewing key a must be non-zero")
	}
	gamma, err := bn128.RandomPoint(rng)
	if err != nil {
		return Note{}, err
	}
	sigma := commit(k, a, gamma, h)
	return Note{K: k, A: a, Gamma: gamma, Sigma: sigma, Owner: owner}, nil
}

// FromPublicKey builds a note by deriving the viewing key a from an
// ephemeral/recipient ECDH shared secret plus a per-note nonce, via
// HKDF over the shared secret with the nonce as salt. This lets a sender commit to a
// note without ever learning the viewing key itself: the recipient
// rederives the same a from their private key, the sender's ephemeral
// public key, and the nonce.
func FromPublicKey(rng io.Reader, h bn128.Point, k uint64, recipientPub *ecdh.PublicKey, ephemeral *ecdh.PrivateKey, nonce []byte, owner common.Address) (Note, error) {
	shared, err := ephemeral.ECDH(recipientPub)
	if err != nil {
		return Note{}, aztecerr.New(aztecerr.CodeViewingKeyMalformed, "ecdh failed: "+err.Error())
	}

	kdf := hkdf.New(sha3.NewLegacyKeccak256, shared, nonce, []byte("AZTEC_VIEWING_KEY"))
	a, err := deriveScalar(kdf)
	if err != nil {
		return Note{}, err
	}

	return FromViewingKey(rng, h, k, a, owner)
}

// deriveScalar reads HKDF output, reject-sampling 32-byte blocks until
// one reduces to a non-zero scalar in (0, n) — the same rejection
// sampling bn128.RandomScalar uses for blinding factors, reused here so
// the derived viewing key has the same uniformity guarantee.
func deriveScalar(kdf io.Reader) (bn128.Fr, error) {
	return bn128.RandomScalar(kdf)
}

// EncryptViewingKey wraps a note's viewing key for its recipient under
// ECIES. Only the recipient can recover it, via DecryptViewingKey with
// the matching private key.
func EncryptViewingKey(rng io.Reader, recipientPub *ecdh.PublicKey, a bn128.Fr) ([]byte, error) {
	b := a.Bytes()
	return ecies.Encrypt(rng, recipientPub, b[:])
}

// DecryptViewingKey recovers a viewing key previously wrapped by
// EncryptViewingKey.
func DecryptViewingKey(recipientPriv *ecdh.PrivateKey, encrypted []byte) (bn128.Fr, error) {
	plaintext, err := ecies.Decrypt(recipientPriv, encrypted)
	if err != nil {
		return bn128.Fr{}, aztecerr.New(aztecerr.CodeViewingKeyMalformed, "decrypt failed: "+err.Error())
	}
	return bn128.FrFromCanonicalBytes(plaintext)
}
