// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ecies implements the Elliptic Curve Integrated Encryption
// Scheme used to wrap an AZTEC note's viewing key for its recipient:
// an ECDH shared secret, a NIST SP 800-56A Concat KDF splitting it
// into an AES key and a MAC key, AES-CTR for confidentiality and
// HMAC-SHA256 for integrity. This is a client-side library, not a
// gas-metered precompile, so it's exposed as plain encrypt/decrypt
// functions over crypto/ecdh rather than a stateful contract surface.
package ecies

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"hash"
	"io"
)

var (
	ErrCiphertextTooShort = errors.New("ecies: ciphertext too short")
	ErrMACMismatch        = errors.New("ecies: MAC verification failed")
)

const (
	aesKeyLen = 32
	macKeyLen = 32
)

// Encrypt wraps plaintext (an AZTEC note's viewing key, in practice)
// for recipientPub: an ephemeral P-256 key pair is generated, ECDH'd
// against recipientPub, and the shared secret fed through Concat KDF
// to derive an AES-256-CTR key and an HMAC-SHA256 key. The output is
// ephemeralPublicKey || iv || ciphertext || tag, exactly the format
// note.DecryptViewingKey expects back.
func Encrypt(rng io.Reader, recipientPub *ecdh.PublicKey, plaintext []byte) ([]byte, error) {
	curve := ecdh.P256()

	ephPriv, err := curve.GenerateKey(rng)
	if err != nil {
		return nil, err
	}

	shared, err := ephPriv.ECDH(recipientPub)
	if err != nil {
		return nil, err
	}

	derived := concatKDF(sha256.New, shared, nil, aesKeyLen+macKeyLen)
	encKey, macKey := derived[:aesKeyLen], derived[aesKeyLen:]

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rng, iv); err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	tag := mac.Sum(nil)

	ephPub := ephPriv.PublicKey().Bytes()

	out := make([]byte, 0, len(ephPub)+len(iv)+len(ciphertext)+len(tag))
	out = append(out, ephPub...)
	out = append(out, iv...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

// Decrypt is the inverse of Encrypt: it recovers the shared secret via
// ECDH against the embedded ephemeral public key, re-derives the AES
// and MAC keys, verifies the tag in constant time, and decrypts.
func Decrypt(recipientPriv *ecdh.PrivateKey, ciphertext []byte) ([]byte, error) {
	curve := ecdh.P256()

	ephPubLen := 65 // uncompressed P-256 point
	if len(ciphertext) < ephPubLen+aes.BlockSize+sha256.Size {
		return nil, ErrCiphertextTooShort
	}

	ephPubBytes := ciphertext[:ephPubLen]
	iv := ciphertext[ephPubLen : ephPubLen+aes.BlockSize]
	body := ciphertext[ephPubLen+aes.BlockSize : len(ciphertext)-sha256.Size]
	tag := ciphertext[len(ciphertext)-sha256.Size:]

	ephPub, err := curve.NewPublicKey(ephPubBytes)
	if err != nil {
		return nil, err
	}

	shared, err := recipientPriv.ECDH(ephPub)
	if err != nil {
		return nil, err
	}

	derived := concatKDF(sha256.New, shared, nil, aesKeyLen+macKeyLen)
	encKey, macKey := derived[:aesKeyLen], derived[aesKeyLen:]

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(body)
	expected := mac.Sum(nil)
	if subtle.ConstantTimeCompare(expected, tag) != 1 {
		return nil, ErrMACMismatch
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, len(body))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, body)
	return plaintext, nil
}

// concatKDF is the NIST SP 800-56A Concatenation Key Derivation
// Function.
func concatKDF(h func() hash.Hash, z, otherInfo []byte, keyLen int) []byte {
	hashSize := h().Size()
	reps := (keyLen + hashSize - 1) / hashSize

	derivedKey := make([]byte, 0, reps*hashSize)
	for counter := uint32(1); counter <= uint32(reps); counter++ {
		hasher := h()
		counterBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(counterBytes, counter)
		hasher.Write(counterBytes)
		hasher.Write(z)
		hasher.Write(otherInfo)
		derivedKey = hasher.Sum(derivedKey)
	}
	return derivedKey[:keyLen]
}
