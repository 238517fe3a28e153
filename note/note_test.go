// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package note

import (
	"crypto/ecdh"
	"crypto/rand"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
)

func testCRS(t *testing.T) bn128.Point {
	t.Helper()
	return bn128.HashToPoint([]byte("test-generator-h"))
}

func TestFromViewingKeyValidatesAndCommits(t *testing.T) {
	h := testCRS(t)
	a, err := bn128.RandomScalar(rand.Reader)
	require.NoError(t, err)
	owner := common.HexToAddress("0xabc")

	n, err := FromViewingKey(rand.Reader, h, 42, a, owner)
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	require.Equal(t, uint64(42), n.K)
	require.Equal(t, owner, n.Owner)

	expectedSigma := h.ScalarMul(bn128.FrFromUint64(42)).Add(n.Gamma.ScalarMul(a))
	require.True(t, n.Sigma.Equal(expectedSigma))
}

func TestFromViewingKeyRejectsZeroA(t *testing.T) {
	h := testCRS(t)
	_, err := FromViewingKey(rand.Reader, h, 1, bn128.FrZero(), common.Address{})
	require.ErrorIs(t, err, aztecerr.ViewingKeyMalformed)
}

func TestFromViewingKeyRejectsKTooBig(t *testing.T) {
	h := testCRS(t)
	a, err := bn128.RandomScalar(rand.Reader)
	require.NoError(t, err)
	_, err = FromViewingKey(rand.Reader, h, KMax+1, a, common.Address{})
	require.ErrorIs(t, err, aztecerr.NoteValueTooBig)
}

func TestHashIsDeterministic(t *testing.T) {
	h := testCRS(t)
	a, err := bn128.RandomScalar(rand.Reader)
	require.NoError(t, err)
	n, err := FromViewingKey(rand.Reader, h, 7, a, common.Address{})
	require.NoError(t, err)

	require.Equal(t, n.Hash(), n.Hash())
}

func TestFromPublicKeyDerivesDeterministicViewingKeyFromSharedSecret(t *testing.T) {
	h := testCRS(t)
	curve := ecdh.P256()

	recipientPriv, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)
	ephemeral, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)
	nonce := []byte("note-nonce-1")

	n, err := FromPublicKey(rand.Reader, h, 10, recipientPriv.PublicKey(), ephemeral, nonce, common.Address{})
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	require.False(t, n.A.IsZero())

	again, err := FromPublicKey(rand.Reader, h, 10, recipientPriv.PublicKey(), ephemeral, nonce, common.Address{})
	require.NoError(t, err)
	require.True(t, n.A.Equal(again.A))
}

func TestEncryptDecryptViewingKeyRoundTrip(t *testing.T) {
	curve := ecdh.P256()
	recipientPriv, err := curve.GenerateKey(rand.Reader)
	require.NoError(t, err)

	a, err := bn128.RandomScalar(rand.Reader)
	require.NoError(t, err)

	encrypted, err := EncryptViewingKey(rand.Reader, recipientPriv.PublicKey(), a)
	require.NoError(t, err)

	recovered, err := DecryptViewingKey(recipientPriv, encrypted)
	require.NoError(t, err)
	require.True(t, a.Equal(recovered))
}

func TestValidateRejectsIdentityGamma(t *testing.T) {
	h := testCRS(t)
	a, err := bn128.RandomScalar(rand.Reader)
	require.NoError(t, err)
	n, err := FromViewingKey(rand.Reader, h, 1, a, common.Address{})
	require.NoError(t, err)

	n.Gamma = bn128.Point{}
	err = n.Validate()
	require.ErrorIs(t, err, aztecerr.PointAtInfinity)
}
