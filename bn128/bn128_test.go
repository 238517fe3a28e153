// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/aztec/aztecerr"
)

func TestFrArithmetic(t *testing.T) {
	a := FrFromUint64(5)
	b := FrFromUint64(3)

	require.True(t, a.Add(b).Equal(FrFromUint64(8)))
	require.True(t, a.Sub(b).Equal(FrFromUint64(2)))
	require.True(t, a.Mul(b).Equal(FrFromUint64(15)))
	require.True(t, a.Mul(a.Inverse()).Equal(FrOne()))
}

func TestFrFromCanonicalBytesRejectsOutOfRange(t *testing.T) {
	tooLarge := new(big.Int).Set(FrModulus)
	var b [32]byte
	tooLarge.FillBytes(b[:])

	_, err := FrFromCanonicalBytes(b[:])
	require.ErrorIs(t, err, aztecerr.ScalarTooBig)
}

func TestFrFromCanonicalBytesRejectsWrongLength(t *testing.T) {
	_, err := FrFromCanonicalBytes(make([]byte, 31))
	require.ErrorIs(t, err, aztecerr.ScalarTooBig)
}

func TestFrInRange(t *testing.T) {
	require.True(t, FrInRange(big.NewInt(0)))
	require.True(t, FrInRange(new(big.Int).Sub(FrModulus, big.NewInt(1))))
	require.False(t, FrInRange(FrModulus))
	require.False(t, FrInRange(big.NewInt(-1)))
}

func TestFrZeroize(t *testing.T) {
	f := FrFromUint64(42)
	require.False(t, f.IsZero())
	f.Zeroize()
	require.True(t, f.IsZero())
}

func TestPointGeneratorOnCurve(t *testing.T) {
	g := Generator()
	require.True(t, g.IsOnCurve())
	require.False(t, g.IsIdentity())
	require.NoError(t, g.Validate())
}

func TestPointAtInfinityRejected(t *testing.T) {
	zero, err := FpFromCanonicalBytes(make([]byte, 32))
	require.NoError(t, err)
	p, err := NewPoint(zero, zero)
	require.Error(t, err)
	require.Equal(t, Point{}, p)
	require.ErrorIs(t, err, aztecerr.PointAtInfinity)
}

func TestPointNotOnCurveRejected(t *testing.T) {
	x := FpFromBigInt(big.NewInt(1))
	y := FpFromBigInt(big.NewInt(3))
	_, err := NewPoint(x, y)
	require.ErrorIs(t, err, aztecerr.NotOnCurve)
}

func TestPointAddDoubleScalarMul(t *testing.T) {
	g := Generator()
	two := FrFromUint64(2)

	require.True(t, g.Add(g).Equal(g.Double()))
	require.True(t, g.ScalarMul(two).Equal(g.Double()))
	require.True(t, g.Add(g.Neg()).IsIdentity())
}

func TestHashToPointIsDeterministicAndOnCurve(t *testing.T) {
	p1 := HashToPoint([]byte("AZTEC_CRS_GENERATOR_H"))
	p2 := HashToPoint([]byte("AZTEC_CRS_GENERATOR_H"))
	require.True(t, p1.Equal(p2))
	require.True(t, p1.IsOnCurve())
	require.False(t, p1.IsIdentity())

	other := HashToPoint([]byte("something else"))
	require.False(t, p1.Equal(other))
}

func TestRandomScalarInRange(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	require.False(t, s.IsZero())
}

func TestRandomScalarDeterministicWithFixedReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, 64)
	s1, err := RandomScalar(bytes.NewReader(seed))
	require.NoError(t, err)
	s2, err := RandomScalar(bytes.NewReader(seed))
	require.NoError(t, err)
	require.True(t, s1.Equal(s2))
}

func TestRandomPointOnCurve(t *testing.T) {
	p, err := RandomPoint(rand.Reader)
	require.NoError(t, err)
	require.True(t, p.IsOnCurve())
	require.False(t, p.IsIdentity())
}
