// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"encoding/hex"
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/proof"
)

// cursor walks a []byte left to right, reading one 32-byte word at a
// time; every read fails closed with ENCODING_INVALID_LENGTH rather
// than panicking on a short slice.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) word() ([32]byte, error) {
	var out [32]byte
	if c.pos+wordSize > len(c.data) {
		return out, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "truncated word")
	}
	copy(out[:], c.data[c.pos:c.pos+wordSize])
	c.pos += wordSize
	return out, nil
}

func (c *cursor) bytesN(n int) ([]byte, error) {
	padded := n
	if rem := n % wordSize; rem != 0 {
		padded += wordSize - rem
	}
	if c.pos+padded > len(c.data) {
		return nil, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "truncated field")
	}
	out := append([]byte(nil), c.data[c.pos:c.pos+n]...)
	c.pos += padded
	return out, nil
}

func wordToUint64(w [32]byte) uint64 {
	return new(big.Int).SetBytes(w[:]).Uint64()
}

// Decode is the inverse of Encode: it parses a blob back into a
// ProofData, validating the declared total length against the actual
// slice length.
func Decode(data []byte) (*ProofData, error) {
	c := &cursor{data: data}

	totalWord, err := c.word()
	if err != nil {
		return nil, err
	}
	total := wordToUint64(totalWord)
	if int(total) != len(data) {
		return nil, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "declared length does not match blob size")
	}

	challengeWord, err := c.word()
	if err != nil {
		return nil, err
	}
	challenge, err := bn128.FrFromCanonicalBytes(challengeWord[:])
	if err != nil {
		return nil, err
	}

	mWord, err := c.word()
	if err != nil {
		return nil, err
	}
	m := int(wordToUint64(mWord))

	ownerWord, err := c.word()
	if err != nil {
		return nil, err
	}
	var publicOwner common.Address
	publicOwner.SetBytes(ownerWord[wordSize-common.AddressLength:])

	kPublicWord, err := c.word()
	if err != nil {
		return nil, err
	}
	kPublic := new(big.Int).SetBytes(kPublicWord[:])

	recordCountWord, err := c.word()
	if err != nil {
		return nil, err
	}
	recordCount := wordToUint64(recordCountWord)

	transcript := make(proof.Transcript, 0, recordCount)
	for i := uint64(0); i < recordCount; i++ {
		recLenWord, err := c.word()
		if err != nil {
			return nil, err
		}
		recLen := wordToUint64(recLenWord)
		if recLen != 6*wordSize {
			return nil, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "note record must be 6 words")
		}
		rec, err := decodeRecord(c)
		if err != nil {
			return nil, err
		}
		transcript = append(transcript, rec)
	}

	inputOwners, err := decodeAddressArray(c)
	if err != nil {
		return nil, err
	}
	outputOwners, err := decodeAddressArray(c)
	if err != nil {
		return nil, err
	}
	outputNotes, err := decodeOutputNotes(c)
	if err != nil {
		return nil, err
	}

	return &ProofData{
		Challenge:    challenge,
		M:            &m,
		PublicOwner:  &publicOwner,
		KPublic:      kPublic,
		Transcript:   transcript,
		InputOwners:  inputOwners,
		OutputOwners: outputOwners,
		OutputNotes:  outputNotes,
	}, nil
}

func decodeRecord(c *cursor) (proof.Record, error) {
	var rec proof.Record
	for i := range rec {
		w, err := c.word()
		if err != nil {
			return rec, err
		}
		rec[i] = "0x" + hex.EncodeToString(w[:])
	}
	return rec, nil
}

func decodeAddressArray(c *cursor) ([]common.Address, error) {
	countWord, err := c.word()
	if err != nil {
		return nil, err
	}
	count := wordToUint64(countWord)
	out := make([]common.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		w, err := c.word()
		if err != nil {
			return nil, err
		}
		var a common.Address
		a.SetBytes(w[wordSize-common.AddressLength:])
		out = append(out, a)
	}
	return out, nil
}

func decodeOutputNotes(c *cursor) ([]NoteMetadata, error) {
	countWord, err := c.word()
	if err != nil {
		return nil, err
	}
	count := wordToUint64(countWord)
	out := make([]NoteMetadata, 0, count)
	for i := uint64(0); i < count; i++ {
		hashWord, err := c.word()
		if err != nil {
			return nil, err
		}
		keyLenWord, err := c.word()
		if err != nil {
			return nil, err
		}
		keyLen := wordToUint64(keyLenWord)
		key, err := c.bytesN(int(keyLen))
		if err != nil {
			return nil, err
		}
		out = append(out, NoteMetadata{NoteHash: hashWord, EncryptedViewingKey: key})
	}
	return out, nil
}
