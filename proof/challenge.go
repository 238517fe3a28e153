// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/note"
	"github.com/luxfi/aztec/transcript"
)

// ChallengeParams are the optional fields computeChallenge absorbs
// only for proof kinds that use them (kPublic and m for join-split and
// its mint/burn specializations; publicOwner for proofs with a single
// public-value recipient). A nil field is simply skipped, not encoded
// as zero, so different proof kinds produce genuinely different
// transcripts rather than colliding on a padded zero.
type ChallengeParams struct {
	KPublic     *big.Int
	M           *int
	PublicOwner *common.Address
}

// ComputeChallenge derives the Fiat-Shamir challenge c: Keccak over
// sender, kPublic?, m?, publicOwner?, every note's (γ, σ), then every
// blinding factor's B, reduced mod n. The append order is part of the
// protocol — a verifier must reproduce this exact sequence to recompute
// the same challenge.
func ComputeChallenge(sender common.Address, params ChallengeParams, notes []note.Note, bPoints []bn128.Point) bn128.Fr {
	t := transcript.New()
	t.AppendAddress(sender)
	if params.KPublic != nil {
		t.AppendBigInt(params.KPublic)
	}
	if params.M != nil {
		t.AppendBigInt(big.NewInt(int64(*params.M)))
	}
	if params.PublicOwner != nil {
		t.AppendAddress(*params.PublicOwner)
	}
	for _, n := range notes {
		t.AppendPoint(n.Gamma)
		t.AppendPoint(n.Sigma)
	}
	for _, b := range bPoints {
		t.AppendPoint(b)
	}
	return t.FinalizeScalar()
}
