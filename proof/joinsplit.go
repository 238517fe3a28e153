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
	"github.com/luxfi/aztec/transcript"
)

// JoinSplitParams are the public parameters of a join-split proof:
// which of notes are inputs (the first M), the public value difference
// kPublic, and the address kPublic is paid to or drawn from.
type JoinSplitParams struct {
	M           int
	KPublic     *big.Int
	PublicOwner common.Address
}

// JoinSplit builds the canonical AZTEC proof: a value-balance relation
// between M input notes and len(notes)-M output notes, with a public
// value kPublic bridging the two. logger, if non-nil, receives
// debug-level diagnostics about input validation (never the blinding
// scalars themselves).
func JoinSplit(rng io.Reader, c *crs.CRS, sender common.Address, notes []note.Note, params JoinSplitParams, logger log.Logger) (Transcript, bn128.Fr, error) {
	out, challenge, err := joinSplitTranscript(rng, c, sender, notes, params, logger)
	if err != nil {
		return nil, bn128.Fr{}, err
	}
	if len(out) > 0 && params.KPublic != nil {
		out[len(out)-1][0] = hexField(padBigInt(params.KPublic))
	}
	return out, challenge, nil
}

// joinSplitTranscript computes the same records JoinSplit returns,
// before the last record's kBar slot is overwritten with kPublic for
// wire encoding. Kept separate so the raw per-note kBar values stay
// available to anyone needing to check the value-balance relation
// directly against every note, not just the ones before the last.
func joinSplitTranscript(rng io.Reader, c *crs.CRS, sender common.Address, notes []note.Note, params JoinSplitParams, logger log.Logger) (Transcript, bn128.Fr, error) {
	if err := ParseInputs(sender, notes, params.M, params.KPublic, -1); err != nil {
		return nil, bn128.Fr{}, err
	}
	if logger != nil {
		logger.Debug("join-split: validated inputs", "notes", len(notes), "m", params.M)
	}

	bks := make([]bn128.Fr, len(notes))
	bas := make([]bn128.Fr, len(notes))
	constrainedIdx := -1
	if params.M >= 1 {
		constrainedIdx = params.M - 1
	}

	for i := range notes {
		if i == constrainedIdx {
			continue
		}
		bk, ba, err := drawPair(rng)
		if err != nil {
			return nil, bn128.Fr{}, err
		}
		bks[i], bas[i] = bk, ba
	}

	if constrainedIdx >= 0 {
		bkPublic := rollingHashBkPublic(notes, params.KPublic)

		sumInputs := bn128.FrZero()
		for i := 0; i < params.M-1; i++ {
			sumInputs = sumInputs.Add(bks[i])
		}
		sumOutputs := bn128.FrZero()
		for i := params.M; i < len(notes); i++ {
			sumOutputs = sumOutputs.Add(bks[i])
		}
		// Σ_{i<m} bk_i − Σ_{i≥m} bk_i ≡ bk_public  =>
		// bk_{m-1} = bk_public + sumOutputs − sumInputs
		bks[constrainedIdx] = bkPublic.Add(sumOutputs).Sub(sumInputs)

		ba, err := bn128.RandomScalar(rng)
		if err != nil {
			return nil, bn128.Fr{}, err
		}
		bas[constrainedIdx] = ba
	}

	bPoints := make([]bn128.Point, len(notes))
	for i, n := range notes {
		bPoints[i] = standardB(c, n, bks[i], bas[i])
	}

	m := params.M
	challengeParams := ChallengeParams{KPublic: params.KPublic, M: &m, PublicOwner: &params.PublicOwner}
	challenge := ComputeChallenge(sender, challengeParams, notes, bPoints)

	out := make(Transcript, len(notes))
	for i, n := range notes {
		kBar := bn128.FrFromUint64(n.K).Mul(challenge).Add(bks[i])
		aBar := n.A.Mul(challenge).Add(bas[i])
		out[i] = buildRecord(kBar, aBar, n)
	}

	for i := range bks {
		bks[i].Zeroize()
		bas[i].Zeroize()
	}

	return out, challenge, nil
}

// rollingHashBkPublic initializes the rolling hash over every note's
// (γ, σ) in order, then appends kPublic and finalizes it, deriving
// bk_public from the transcript so the public-value constraint is
// bound to every note in the proof.
func rollingHashBkPublic(notes []note.Note, kPublic *big.Int) bn128.Fr {
	t := transcript.New()
	for _, n := range notes {
		t.AppendPoint(n.Gamma)
		t.AppendPoint(n.Sigma)
	}
	if kPublic != nil {
		t.AppendBigInt(kPublic)
	}
	return t.FinalizeScalar()
}

func buildRecord(kBar, aBar bn128.Fr, n note.Note) Record {
	return Record{
		hexField(kBar.Bytes()),
		hexField(aBar.Bytes()),
		hexField(n.Gamma.X().Bytes()),
		hexField(n.Gamma.Y().Bytes()),
		hexField(n.Sigma.X().Bytes()),
		hexField(n.Sigma.Y().Bytes()),
	}
}

func padBigInt(v *big.Int) [32]byte {
	var out [32]byte
	if v == nil {
		return out
	}
	b := v.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(out[32-len(b):], b)
	return out
}
