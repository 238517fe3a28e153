// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/luxfi/aztec/aztecerr"
)

// Fp is a coordinate modulo p, the BN254 base field. It backs point
// coordinates (γ.x, γ.y, σ.x, σ.y) only — it is never used for a scalar
// value, and Fr never backs a coordinate. The two types share no
// arithmetic operator on purpose.
type Fp struct {
	v fp.Element
}

// FpModulus is p, the BN254 base field prime.
var FpModulus = fp.Modulus()

// FpFromBigInt reduces v modulo p.
func FpFromBigInt(v *big.Int) Fp {
	var f Fp
	f.v.SetBigInt(v)
	return f
}

// FpFromCanonicalBytes decodes 32 big-endian bytes as a coordinate,
// requiring it to already be in [0, p).
func FpFromCanonicalBytes(b []byte) (Fp, error) {
	if len(b) != 32 {
		return Fp{}, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "coordinate must be 32 bytes")
	}
	bi := new(big.Int).SetBytes(b)
	if bi.Cmp(FpModulus) >= 0 {
		return Fp{}, aztecerr.New(aztecerr.CodeNotOnCurve, "coordinate >= p")
	}
	return FpFromBigInt(bi), nil
}

// Bytes encodes the coordinate as 32 canonical big-endian bytes.
func (f Fp) Bytes() [32]byte {
	return f.v.Bytes()
}

// BigInt returns the coordinate as a non-negative big.Int in [0, p).
func (f Fp) BigInt() *big.Int {
	return f.v.BigInt(new(big.Int))
}

// IsZero reports whether the coordinate is zero.
func (f Fp) IsZero() bool { return f.v.IsZero() }

// Equal reports whether two coordinates are the same field element.
func (f Fp) Equal(o Fp) bool { return f.v.Equal(&o.v) }

func (f Fp) add(o Fp) Fp {
	var r Fp
	r.v.Add(&f.v, &o.v)
	return r
}

func (f Fp) mul(o Fp) Fp {
	var r Fp
	r.v.Mul(&f.v, &o.v)
	return r
}

func (f Fp) square() Fp {
	var r Fp
	r.v.Square(&f.v)
	return r
}

func fpFromElement(e fp.Element) Fp { return Fp{v: e} }

func (f Fp) element() fp.Element { return f.v }
