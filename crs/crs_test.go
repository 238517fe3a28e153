// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
)

func sampleCRS(t *testing.T) *CRS {
	t.Helper()
	h := bn128.HashToPoint([]byte("sample-h"))
	return &CRS{
		H: h,
		T2: G2Point{
			Xi: bn128.FpFromBigInt(big.NewInt(1)),
			Xr: bn128.FpFromBigInt(big.NewInt(2)),
			Yi: bn128.FpFromBigInt(big.NewInt(3)),
			Yr: bn128.FpFromBigInt(big.NewInt(4)),
		},
	}
}

func TestDefaultReturnsProcessWideCRS(t *testing.T) {
	require.Same(t, current, Default())
}

func TestInitOverridesDefault(t *testing.T) {
	original := Default()
	c := sampleCRS(t)
	Init(c)
	require.Same(t, c, Default())
	Init(original)
}

func TestBytesLoadRoundTrip(t *testing.T) {
	c := sampleCRS(t)
	data := c.Bytes()
	require.Len(t, data, FileSize)

	loaded, err := Load(data)
	require.NoError(t, err)
	require.True(t, loaded.H.Equal(c.H))
	require.Equal(t, c.T2, loaded.T2)
}

func TestLoadRejectsWrongLength(t *testing.T) {
	_, err := Load(make([]byte, FileSize-1))
	require.ErrorIs(t, err, aztecerr.EncodingInvalidLength)

	_, err = Load(make([]byte, FileSize+1))
	require.ErrorIs(t, err, aztecerr.EncodingInvalidLength)
}
