// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"io"
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/crs"
	"github.com/luxfi/aztec/note"
)

// DividendParams carries the public dividend-computation coefficients.
type DividendParams struct {
	Za *big.Int
	Zb *big.Int
}

// Dividend builds a proof that za·k_target = zb·k_principal +
// k_residual in zero knowledge. notes must be exactly
// [principal, residual, target].
func Dividend(rng io.Reader, c *crs.CRS, sender common.Address, notes []note.Note, params DividendParams) (Transcript, bn128.Fr, error) {
	if err := ParseInputs(sender, notes, 0, nil, 3); err != nil {
		return nil, bn128.Fr{}, err
	}
	if params.Za == nil || params.Za.Sign() == 0 {
		return nil, bn128.Fr{}, aztecerr.New(aztecerr.CodeBadBlindingFactor, "za must be non-zero")
	}

	za := bn128.FrFromBigInt(params.Za)
	zb := bn128.FrFromBigInt(params.Zb)

	bkPrincipal, baPrincipal, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}
	bkResidual, baResidual, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}
	_, baTarget, err := drawPair(rng)
	if err != nil {
		return nil, bn128.Fr{}, err
	}

	// za·bk_target = zb·bk_principal + bk_residual
	rhs := zb.Mul(bkPrincipal).Add(bkResidual)
	bkTarget := rhs.Mul(za.Inverse())

	bks := []bn128.Fr{bkPrincipal, bkResidual, bkTarget}
	bas := []bn128.Fr{baPrincipal, baResidual, baTarget}

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
