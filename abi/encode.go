// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/proof"
)

// Encode lays out p as:
//
//	[0x00..0x20]  total length
//	[0x20..0x40]  challenge
//	[0x40..0x60]  m (zero if not applicable)
//	[0x60..0x80]  publicOwner (left-padded to 32)
//	[0x80..0xA0]  kPublic (zero if not applicable)
//	[0xA0..]      length-prefixed array of note records, each record
//	              length-prefixed, each containing kBar, aBar, γ.x,
//	              γ.y, σ.x, σ.y as 32-byte fields
//	tail:         inputOwners[], outputOwners[], outputNotes metadata
func Encode(p ProofData) ([]byte, error) {
	var body []byte

	body = append(body, p.Challenge.Bytes()[:]...)

	mWord := wordUint64(0)
	if p.M != nil {
		mWord = wordUint64(uint64(*p.M))
	}
	body = append(body, mWord[:]...)

	var ownerWord [32]byte
	if p.PublicOwner != nil {
		ownerWord = addressWord(*p.PublicOwner)
	}
	body = append(body, ownerWord[:]...)

	kPublicWord, err := word(p.KPublic)
	if err != nil {
		return nil, err
	}
	body = append(body, kPublicWord[:]...)

	recordCount := wordUint64(uint64(len(p.Transcript)))
	body = append(body, recordCount[:]...)
	for _, rec := range p.Transcript {
		recWords, err := encodeRecord(rec)
		if err != nil {
			return nil, err
		}
		recLen := wordUint64(uint64(len(recWords)))
		body = append(body, recLen[:]...)
		body = append(body, recWords...)
	}

	tail, err := encodeTail(p.InputOwners, p.OutputOwners, p.OutputNotes)
	if err != nil {
		return nil, err
	}
	body = append(body, tail...)

	total := wordUint64(uint64(wordSize + len(body)))
	out := make([]byte, 0, wordSize+len(body))
	out = append(out, total[:]...)
	out = append(out, body...)
	return out, nil
}

// encodeRecord flattens one [kBar, aBar, γ.x, γ.y, σ.x, σ.y] record
// into 6 concatenated 32-byte words.
func encodeRecord(rec proof.Record) ([]byte, error) {
	out := make([]byte, 0, 6*wordSize)
	for _, field := range rec {
		w, err := hexWordToBytes(field)
		if err != nil {
			return nil, err
		}
		out = append(out, w[:]...)
	}
	return out, nil
}

// encodeTail appends the inputOwners/outputOwners/outputNotes section,
// each a length-prefixed array, outputNotes carrying noteHash plus a
// length-prefixed encrypted ephemeral key per note.
func encodeTail(inputOwners, outputOwners []common.Address, outputNotes []NoteMetadata) ([]byte, error) {
	var out []byte

	out = append(out, wordUint64(uint64(len(inputOwners)))[:]...)
	for _, a := range inputOwners {
		w := addressWord(a)
		out = append(out, w[:]...)
	}

	out = append(out, wordUint64(uint64(len(outputOwners)))[:]...)
	for _, a := range outputOwners {
		w := addressWord(a)
		out = append(out, w[:]...)
	}

	out = append(out, wordUint64(uint64(len(outputNotes)))[:]...)
	for _, n := range outputNotes {
		out = append(out, n.NoteHash[:]...)
		keyLen := wordUint64(uint64(len(n.EncryptedViewingKey)))
		out = append(out, keyLen[:]...)
		out = append(out, padToWord(n.EncryptedViewingKey)...)
	}

	return out, nil
}

// padToWord right-pads b to a multiple of 32 bytes, the convention the
// rest of this encoding uses for every variable-length field.
func padToWord(b []byte) []byte {
	rem := len(b) % wordSize
	if rem == 0 {
		return append([]byte(nil), b...)
	}
	padded := make([]byte, len(b)+(wordSize-rem))
	copy(padded, b)
	return padded
}
