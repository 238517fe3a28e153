// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/aztec/bn128"
)

func TestFinalizeScalarIsDeterministic(t *testing.T) {
	build := func() bn128.Fr {
		buf := New()
		buf.AppendAddress(common.HexToAddress("0x1234"))
		buf.AppendScalar(bn128.FrFromUint64(7))
		buf.AppendPoint(bn128.Generator())
		return buf.FinalizeScalar()
	}

	require.True(t, build().Equal(build()))
}

func TestFinalizeScalarOrderSensitive(t *testing.T) {
	buf1 := New()
	buf1.AppendScalar(bn128.FrFromUint64(1))
	buf1.AppendScalar(bn128.FrFromUint64(2))
	c1 := buf1.FinalizeScalar()

	buf2 := New()
	buf2.AppendScalar(bn128.FrFromUint64(2))
	buf2.AppendScalar(bn128.FrFromUint64(1))
	c2 := buf2.FinalizeScalar()

	require.False(t, c1.Equal(c2))
}

func TestFinalizeScalarReducedModN(t *testing.T) {
	buf := New()
	buf.AppendBigInt(big.NewInt(123456789))
	c := buf.FinalizeScalar()
	require.True(t, bn128.FrInRange(c.BigInt()))
}

func TestFinalizeCoordinateReducedModP(t *testing.T) {
	buf := New()
	buf.AppendBigInt(big.NewInt(987654321))
	c := buf.FinalizeCoordinate()
	require.Less(t, c.BigInt().Cmp(bn128.FpModulus), 1)
}

func TestReseedChains(t *testing.T) {
	buf := New()
	buf.AppendScalar(bn128.FrFromUint64(1))
	first := buf.FinalizeScalar()

	buf.AppendScalar(bn128.FrFromUint64(2))
	second := buf.FinalizeScalar()

	require.False(t, first.Equal(second))
}

func TestAppendAddressPadsTo32Bytes(t *testing.T) {
	addr := common.HexToAddress("0xffffffffffffffffffffffffffffffffffffff")
	buf := New()
	buf.AppendAddress(addr)
	require.Len(t, buf.chunks, 1)
	require.Len(t, buf.chunks[0], 32)
	require.Equal(t, make([]byte, 12), buf.chunks[0][:12])
}
