// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"io"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/crs"
	"github.com/luxfi/aztec/note"
)

// BilateralSwap builds a 2-in/2-out proof whose blinding factors
// enforce bk_0=bk_2 and bk_1=bk_3: two swapped pairs share blinding
// scalars, so the challenge can only be satisfied when each pair
// commits to equal values. notes must be exactly
// [input0, input1, output0, output1].
func BilateralSwap(rng io.Reader, c *crs.CRS, sender common.Address, notes []note.Note) (Transcript, bn128.Fr, error) {
	if err := ParseInputs(sender, notes, 2, nil, 4); err != nil {
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
	_, ba3, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}

	bks := []bn128.Fr{bk0, bk1, bk0, bk1}
	bas := []bn128.Fr{ba0, ba1, ba2, ba3}

	bPoints := make([]bn128.Point, len(notes))
	for i, n := range notes {
		bPoints[i] = standardB(c, n, bks[i], bas[i])
	}

	challenge := ComputeChallenge(sender, ChallengeParams{}, notes, bPoints)

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
