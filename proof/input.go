// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proof implements the shared proof-construction skeleton
// (input validation, Fiat-Shamir challenge derivation, blinding-factor
// algebra) and the six sigma-protocol constructors built on it:
// join-split, bilateral-swap, dividend, private-range, mint and burn.
package proof

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/note"
)

// ParseInputs validates the notes, sender and public parameters common
// to every proof constructor. expectedCount is the exact note count a
// proof kind requires (e.g. 3 for dividend/private range, 4 for
// bilateral swap); pass -1 to skip the check for variable-length
// proofs (join-split, mint, burn).
func ParseInputs(sender common.Address, notes []note.Note, m int, kPublic *big.Int, expectedCount int) error {
	if expectedCount >= 0 && len(notes) != expectedCount {
		return aztecerr.New(aztecerr.CodeIncorrectNoteNumber, "unexpected note count")
	}
	if m < 0 || m > len(notes) {
		return aztecerr.New(aztecerr.CodeMTooBig, "m out of range")
	}
	if kPublic != nil && !bn128.FrInRange(kPublic) {
		return aztecerr.New(aztecerr.CodeKPublicMalformed, "kPublic out of range")
	}
	for _, n := range notes {
		if err := n.Validate(); err != nil {
			return err
		}
	}
	return nil
}
