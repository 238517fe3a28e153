// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"io"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/crs"
	"github.com/luxfi/aztec/note"
	"github.com/luxfi/aztec/transcript"
)

// PrivateRangeFillerIsZero records the convention this engine uses for
// the third record's kBar slot: the "utility" note's value response is
// unused by the verifier (it is reconstructed from kBar_0 and kBar_1,
// not read off the wire), so this engine emits a canonical zero there
// rather than a random value. A verifier that ever mistakenly treats
// the slot as meaningful fails closed instead of silently accepting
// garbage; a verifier implementation must still tolerate either
// convention.
const PrivateRangeFillerIsZero = true

// PrivateRange builds a proof that notes[0].K >= notes[1].K, with
// notes[2] the utility note completing the algebraic relation. The
// blinding factors are chained through a rolling-hash scalar x: B_0
// uses bk_0 directly, B_1 uses bk_1·x, B_2 uses (bk_0−bk_1)·x.
func PrivateRange(rng io.Reader, c *crs.CRS, sender common.Address, notes []note.Note) (Transcript, bn128.Fr, error) {
	if err := ParseInputs(sender, notes, 0, nil, 3); err != nil {
		return nil, bn128.Fr{}, err
	}

	bk0, ba0, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}
	bk1, ba1, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}
	_, ba2, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}

	x := rollingHashX(notes)

	bk1x := bk1.Mul(x)
	bkDiffX := bk0.Sub(bk1).Mul(x)

	b0 := standardB(c, notes[0], bk0, ba0)
	b1 := standardB(c, notes[1], bk1x, ba1)
	b2 := standardB(c, notes[2], bkDiffX, ba2)
	bPoints := []bn128.Point{b0, b1, b2}

	challenge := ComputeChallenge(sender, ChallengeParams{}, notes, bPoints)

	kBar0 := bn128.FrFromUint64(notes[0].K).Mul(challenge).Add(bk0)
	aBar0 := notes[0].A.Mul(challenge).Add(ba0)

	kBar1 := bn128.FrFromUint64(notes[1].K).Mul(challenge).Add(bk1x)
	aBar1 := notes[1].A.Mul(challenge).Add(ba1)

	aBar2 := notes[2].A.Mul(challenge).Add(ba2)
	kBar2 := bn128.FrZero()

	out := Transcript{
		buildRecord(kBar0, aBar0, notes[0]),
		buildRecord(kBar1, aBar1, notes[1]),
		buildRecord(kBar2, aBar2, notes[2]),
	}

	bk0.Zeroize()
	ba0.Zeroize()
	bk1.Zeroize()
	ba1.Zeroize()
	ba2.Zeroize()
	bk1x.Zeroize()
	bkDiffX.Zeroize()

	return out, challenge, nil
}

// rollingHashX derives the chaining scalar x by rolling-hashing the
// three notes' (γ,σ) points.
func rollingHashX(notes []note.Note) bn128.Fr {
	t := transcript.New()
	for _, n := range notes {
		t.AppendPoint(n.Gamma)
		t.AppendPoint(n.Sigma)
	}
	return t.FinalizeScalar()
}
