// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bn128 implements BN128 (aka BN254, alt_bn128) field and group
// arithmetic for the proof-construction engine: the scalar field Fr (mod
// the curve order n, the "groupReduction" context) and the base field Fp
// (mod the prime p, the "red" context) are distinct Go types so the
// compiler rejects mixing a scalar into a coordinate slot or vice versa.
package bn128

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/luxfi/aztec/aztecerr"
)

// Fr is a scalar modulo n, the BN254 group order. It backs note values,
// viewing keys, blinding factors, challenges and kBar/aBar responses.
type Fr struct {
	v fr.Element
}

// FrModulus is n, the BN254 scalar field order.
var FrModulus = fr.Modulus()

// FrZero, FrOne are the additive and multiplicative identities.
func FrZero() Fr { return Fr{} }

func FrOne() Fr {
	var f Fr
	f.v.SetOne()
	return f
}

// FrFromUint64 builds a scalar from a small non-negative integer.
func FrFromUint64(v uint64) Fr {
	var f Fr
	f.v.SetUint64(v)
	return f
}

// FrFromBigInt reduces v modulo n and returns the resulting scalar. It
// never fails: out-of-range big.Int values are simply reduced, matching
// gnark-crypto's field element semantics.
func FrFromBigInt(v *big.Int) Fr {
	var f Fr
	f.v.SetBigInt(v)
	return f
}

// FrFromCanonicalBytes decodes 32 big-endian bytes as a scalar, requiring
// the value to already be canonically reduced (< n). Used for the ABI
// decoder and for challenge/response fields coming off the wire, where a
// non-canonical encoding is itself a protocol violation.
func FrFromCanonicalBytes(b []byte) (Fr, error) {
	if len(b) != 32 {
		return Fr{}, aztecerr.New(aztecerr.CodeScalarTooBig, "scalar must be 32 bytes")
	}
	bi := new(big.Int).SetBytes(b)
	if bi.Cmp(FrModulus) >= 0 {
		return Fr{}, aztecerr.New(aztecerr.CodeScalarTooBig, "scalar >= n")
	}
	return FrFromBigInt(bi), nil
}

// Bytes encodes the scalar as 32 canonical big-endian bytes.
func (f Fr) Bytes() [32]byte {
	return f.v.Bytes()
}

// BigInt returns the scalar as a non-negative big.Int in [0, n).
func (f Fr) BigInt() *big.Int {
	return f.v.BigInt(new(big.Int))
}

// IsZero reports whether the scalar is the additive identity.
func (f Fr) IsZero() bool { return f.v.IsZero() }

// Equal reports whether two scalars are the same field element.
func (f Fr) Equal(o Fr) bool { return f.v.Equal(&o.v) }

// Add returns f + o mod n.
func (f Fr) Add(o Fr) Fr {
	var r Fr
	r.v.Add(&f.v, &o.v)
	return r
}

// Sub returns f - o mod n.
func (f Fr) Sub(o Fr) Fr {
	var r Fr
	r.v.Sub(&f.v, &o.v)
	return r
}

// Mul returns f * o mod n.
func (f Fr) Mul(o Fr) Fr {
	var r Fr
	r.v.Mul(&f.v, &o.v)
	return r
}

// Neg returns -f mod n.
func (f Fr) Neg() Fr {
	var r Fr
	r.v.Neg(&f.v)
	return r
}

// Inverse returns f^-1 mod n. Callers must not call this on a zero
// scalar; gnark-crypto returns zero in that case rather than panicking,
// which would silently corrupt a proof, so validate with IsZero first.
func (f Fr) Inverse() Fr {
	var r Fr
	r.v.Inverse(&f.v)
	return r
}

// FrInRange reports whether v satisfies 0 <= v < n. Every Fr value
// constructed through this package already satisfies this by
// construction; FrInRange exists for validating raw big.Int input
// (e.g. a caller-supplied public value) before it is reduced.
func FrInRange(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(FrModulus) < 0
}

// Zeroize overwrites f's backing limbs with zero. Callers holding a
// blinding factor or viewing key should call this once it is no longer
// needed, so the secret scalar does not linger in memory.
func (f *Fr) Zeroize() {
	f.v.SetZero()
}
