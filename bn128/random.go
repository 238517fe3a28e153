// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"io"
	"math/big"

	"github.com/luxfi/aztec/aztecerr"
)

// RandomScalar draws a scalar in [1, n) from rng by reject-sampling 32
// random bytes until the resulting big-endian integer is both canonical
// (< n) and non-zero. Production callers must pass crypto/rand.Reader
// (or an equivalent CSPRNG); tests may inject a deterministic io.Reader
// so proof construction is reproducible. The randomness source is
// always threaded through the API, never defaulted internally.
func RandomScalar(rng io.Reader) (Fr, error) {
	buf := make([]byte, 32)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Fr{}, aztecerr.New(aztecerr.CodeBadBlindingFactor, "rng read failed: "+err.Error())
		}
		v := new(big.Int).SetBytes(buf)
		if v.Sign() == 0 || v.Cmp(FrModulus) >= 0 {
			continue
		}
		return FrFromBigInt(v), nil
	}
}

// RandomPoint draws a uniformly random on-curve, non-identity G1 point
// by sampling a random scalar and multiplying the fixed generator. The
// discrete log of the result relative to the generator is unknown to
// the caller, which is what makes it suitable as a note's γ.
func RandomPoint(rng io.Reader) (Point, error) {
	s, err := RandomScalar(rng)
	if err != nil {
		return Point{}, err
	}
	return Generator().ScalarMul(s), nil
}
