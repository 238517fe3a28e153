// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"io"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"

	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/crs"
	"github.com/luxfi/aztec/note"
)

// Mint builds a proof that currentTotal + Σminted = newTotal, by
// delegating to JoinSplit with m=1 and kPublic repurposed as
// newTotal's note hash. Mint is a data shape over the join-split
// skeleton, not a separate constructor.
func Mint(rng io.Reader, c *crs.CRS, sender common.Address, currentTotal, newTotal note.Note, minted []note.Note, publicOwner common.Address, logger log.Logger) (Transcript, bn128.Fr, error) {
	return mintBurnJoinSplit(rng, c, sender, currentTotal, newTotal, minted, publicOwner, logger)
}

// Burn builds a proof that currentTotal = newTotal + Σburned, using
// the identical join-split-over-kPublic-as-hash shape as Mint — the
// two differ only in which side of the ledger the caller attributes
// the delta to, not in the proof's algebra.
func Burn(rng io.Reader, c *crs.CRS, sender common.Address, currentTotal, newTotal note.Note, burned []note.Note, publicOwner common.Address, logger log.Logger) (Transcript, bn128.Fr, error) {
	return mintBurnJoinSplit(rng, c, sender, currentTotal, newTotal, burned, publicOwner, logger)
}

func mintBurnJoinSplit(rng io.Reader, c *crs.CRS, sender common.Address, currentTotal, newTotal note.Note, adjustments []note.Note, publicOwner common.Address, logger log.Logger) (Transcript, bn128.Fr, error) {
	notes := make([]note.Note, 0, len(adjustments)+2)
	notes = append(notes, currentTotal, newTotal)
	notes = append(notes, adjustments...)

	hash := newTotal.Hash()
	kPublic := new(big.Int).SetBytes(hash[:])
	kPublic.Mod(kPublic, bn128.FrModulus)

	params := JoinSplitParams{M: 1, KPublic: kPublic, PublicOwner: publicOwner}
	return JoinSplit(rng, c, sender, notes, params, logger)
}
