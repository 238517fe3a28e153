// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/proof"
)

func sampleRecord() proof.Record {
	return proof.Record{
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		"0x0000000000000000000000000000000000000000000000000000000000000002",
		"0x0000000000000000000000000000000000000000000000000000000000000003",
		"0x0000000000000000000000000000000000000000000000000000000000000004",
		"0x0000000000000000000000000000000000000000000000000000000000000005",
		"0x0000000000000000000000000000000000000000000000000000000000000006",
	}
}

func sampleProofData(t *testing.T) ProofData {
	t.Helper()
	m := 1
	owner := common.HexToAddress("0xabc")
	return ProofData{
		Challenge:    bn128.FrFromUint64(7),
		M:            &m,
		PublicOwner:  &owner,
		KPublic:      big.NewInt(42),
		Transcript:   proof.Transcript{sampleRecord(), sampleRecord()},
		InputOwners:  []common.Address{common.HexToAddress("0x1"), common.HexToAddress("0x2")},
		OutputOwners: []common.Address{common.HexToAddress("0x3")},
		OutputNotes: []NoteMetadata{
			{NoteHash: [32]byte{0xaa}, EncryptedViewingKey: []byte("encrypted-key-bytes")},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := sampleProofData(t)
	encoded, err := Encode(p)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	require.True(t, decoded.Challenge.Equal(p.Challenge))
	require.Equal(t, *p.M, *decoded.M)
	require.Equal(t, *p.PublicOwner, *decoded.PublicOwner)
	require.Equal(t, p.KPublic, decoded.KPublic)
	require.Equal(t, p.Transcript, decoded.Transcript)
	require.Equal(t, p.InputOwners, decoded.InputOwners)
	require.Equal(t, p.OutputOwners, decoded.OutputOwners)
	require.Equal(t, p.OutputNotes, decoded.OutputNotes)
}

func TestDecodeRejectsTruncatedLength(t *testing.T) {
	p := sampleProofData(t)
	encoded, err := Encode(p)
	require.NoError(t, err)

	_, err = Decode(encoded[:len(encoded)-1])
	require.ErrorIs(t, err, aztecerr.EncodingInvalidLength)
}

func TestEncodeRejectsOversizedKPublic(t *testing.T) {
	p := sampleProofData(t)
	huge := new(big.Int).Lsh(big.NewInt(1), 257)
	p.KPublic = huge

	_, err := Encode(p)
	require.ErrorIs(t, err, aztecerr.EncodingInvalidLength)
}

func TestEncodeProofOutputsDecodeRoundTrip(t *testing.T) {
	outputs := []ProofOutput{
		{
			InputNotes:  []NoteMetadata{{NoteHash: [32]byte{0x01}, EncryptedViewingKey: []byte("key-a")}},
			OutputNotes: []NoteMetadata{{NoteHash: [32]byte{0x02}, EncryptedViewingKey: []byte("key-b-longer")}},
			PublicOwner: common.HexToAddress("0xdead"),
			PublicValue: big.NewInt(1000),
		},
	}

	encoded, expectedOutput, err := EncodeProofOutputs(outputs)
	require.NoError(t, err)
	require.NotEqual(t, [32]byte{}, expectedOutput)

	decoded, err := DecodeProofOutputs(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, outputs[0].PublicOwner, decoded[0].PublicOwner)
	require.Equal(t, outputs[0].PublicValue, decoded[0].PublicValue)
	require.Equal(t, outputs[0].InputNotes, decoded[0].InputNotes)
	require.Equal(t, outputs[0].OutputNotes, decoded[0].OutputNotes)
}

func TestEncodeProofOutputsHashIsDeterministic(t *testing.T) {
	outputs := []ProofOutput{
		{PublicOwner: common.HexToAddress("0x1"), PublicValue: big.NewInt(5)},
	}

	_, h1, err := EncodeProofOutputs(outputs)
	require.NoError(t, err)
	_, h2, err := EncodeProofOutputs(outputs)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}
