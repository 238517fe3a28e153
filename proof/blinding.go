// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"io"

	"github.com/luxfi/aztec/bn128"
	"github.com/luxfi/aztec/crs"
	"github.com/luxfi/aztec/note"
)

// standardB computes B = bk·γ + ba·h, the per-note commitment to a
// note's blinding factors that feeds the Fiat-Shamir challenge (spec
// §3/§4.E). Every constructor uses this same shape; what differs
// between join-split, bilateral-swap, dividend and private-range is
// only how bk/ba are derived before calling it.
func standardB(crs *crs.CRS, n note.Note, bk, ba bn128.Fr) bn128.Point {
	return n.Gamma.ScalarMul(bk).Add(crs.H.ScalarMul(ba))
}

// drawPair draws an independent (bk, ba) pair from rng — the
// unconstrained case every constructor falls back to for notes whose
// blinding factors are not algebraically constrained.
func drawPair(rng io.Reader) (bn128.Fr, bn128.Fr, error) {
	bk, err := bn128.RandomScalar(rng)
	if err != nil {
		return bn128.Fr{}, bn128.Fr{}, err
	}
	ba, err := bn128.RandomScalar(rng)
	if err != nil {
		return bn128.Fr{}, bn128.Fr{}, err
	}
	return bk, ba, nil
}
