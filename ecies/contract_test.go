// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import (
	"crypto/ecdh"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	curve := ecdh.P256()
	priv, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)

	plaintext := []byte("a 32-byte AZTEC note viewing key")

	ciphertext, err := Encrypt(rand.Reader, priv.PublicKey(), plaintext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	decrypted, err := Decrypt(priv, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	curve := ecdh.P256()
	priv, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)
	other, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ciphertext, err := Encrypt(rand.Reader, priv.PublicKey(), []byte("secret"))
	require.NoError(t, err)

	_, err = Decrypt(other, ciphertext)
	require.ErrorIs(t, err, ErrMACMismatch)
}

func TestDecryptTruncatedCiphertextFails(t *testing.T) {
	curve := ecdh.P256()
	priv, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, err = Decrypt(priv, []byte("too short"))
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}
