// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"

	"github.com/luxfi/aztec/aztecerr"
)

// ProofOutput is one (inputNotes, outputNotes, publicOwner,
// publicValue) tuple — the unit the validator contract hashes to
// produce its "expected output" return value.
type ProofOutput struct {
	InputNotes  []NoteMetadata
	OutputNotes []NoteMetadata
	PublicOwner common.Address
	PublicValue *big.Int
}

// EncodeProofOutputs ABI-encodes outputs and Keccak-hashes the result,
// returning both: the encoded bytes (for DecodeProofOutputs / tests /
// relayers) and the 32-byte hash a proof embeds as its expectedOutput,
// so callers can cheaply compare it against the validator's return
// value without re-running the hash themselves.
func EncodeProofOutputs(outputs []ProofOutput) (encoded []byte, expectedOutput [32]byte, err error) {
	var body []byte
	body = append(body, wordUint64(uint64(len(outputs)))[:]...)

	for _, o := range outputs {
		chunk, err := encodeProofOutput(o)
		if err != nil {
			return nil, expectedOutput, err
		}
		body = append(body, wordUint64(uint64(len(chunk)))[:]...)
		body = append(body, chunk...)
	}

	total := wordUint64(uint64(wordSize + len(body)))
	encoded = make([]byte, 0, wordSize+len(body))
	encoded = append(encoded, total[:]...)
	encoded = append(encoded, body...)

	copy(expectedOutput[:], crypto.Keccak256(encoded))
	return encoded, expectedOutput, nil
}

func encodeProofOutput(o ProofOutput) ([]byte, error) {
	var out []byte
	out = append(out, noteMetadataArray(o.InputNotes)...)
	out = append(out, noteMetadataArray(o.OutputNotes)...)
	out = append(out, addressWord(o.PublicOwner)[:]...)
	valueWord, err := word(o.PublicValue)
	if err != nil {
		return nil, err
	}
	out = append(out, valueWord[:]...)
	return out, nil
}

func noteMetadataArray(notes []NoteMetadata) []byte {
	var out []byte
	out = append(out, wordUint64(uint64(len(notes)))[:]...)
	for _, n := range notes {
		out = append(out, n.NoteHash[:]...)
		keyLen := wordUint64(uint64(len(n.EncryptedViewingKey)))
		out = append(out, keyLen[:]...)
		out = append(out, padToWord(n.EncryptedViewingKey)...)
	}
	return out
}

// DecodeProofOutputs is the inverse of EncodeProofOutputs's ABI
// encoding (not of the Keccak hash, which is one-way): it parses the
// encoded bytes back into the declared ProofOutput tuples, used by
// tests and by relayers that need to inspect a validator call's
// calldata.
func DecodeProofOutputs(data []byte) ([]ProofOutput, error) {
	c := &cursor{data: data}

	totalWord, err := c.word()
	if err != nil {
		return nil, err
	}
	if int(wordToUint64(totalWord)) != len(data) {
		return nil, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "declared length does not match blob size")
	}

	countWord, err := c.word()
	if err != nil {
		return nil, err
	}
	count := wordToUint64(countWord)

	outputs := make([]ProofOutput, 0, count)
	for i := uint64(0); i < count; i++ {
		chunkLenWord, err := c.word()
		if err != nil {
			return nil, err
		}
		chunkLen := wordToUint64(chunkLenWord)
		chunkStart := c.pos

		input, err := decodeOutputNotes(c)
		if err != nil {
			return nil, err
		}
		output, err := decodeOutputNotes(c)
		if err != nil {
			return nil, err
		}
		ownerWord, err := c.word()
		if err != nil {
			return nil, err
		}
		var owner common.Address
		owner.SetBytes(ownerWord[wordSize-common.AddressLength:])

		valueWord, err := c.word()
		if err != nil {
			return nil, err
		}
		value := new(big.Int).SetBytes(valueWord[:])

		if consumed := uint64(c.pos - chunkStart); consumed != chunkLen {
			return nil, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "declared chunk length does not match bytes consumed")
		}

		outputs = append(outputs, ProofOutput{
			InputNotes:  input,
			OutputNotes: output,
			PublicOwner: owner,
			PublicValue: value,
		})
	}

	return outputs, nil
}
