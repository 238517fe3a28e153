// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import (
	"crypto/sha256"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/luxfi/aztec/aztecerr"
)

// Point is an affine BN128 (G1) group point. The zero value is NOT a
// valid point — it decodes to (0,0), which every constructor here
// rejects as the point at infinity.
type Point struct {
	aff bn254.G1Affine
}

// Generator returns the canonical BN254 G1 generator.
func Generator() Point {
	_, _, g1Aff, _ := bn254.Generators()
	return Point{aff: g1Aff}
}

// X, Y return the point's affine coordinates.
func (p Point) X() Fp { return fpFromElement(p.aff.X) }
func (p Point) Y() Fp { return fpFromElement(p.aff.Y) }

// IsIdentity reports whether the point is the all-zero sentinel used to
// encode the point at infinity (the (0,0) convention shared with the
// EVM's alt_bn128 precompiles).
func (p Point) IsIdentity() bool {
	return p.aff.X.IsZero() && p.aff.Y.IsZero()
}

// IsOnCurve reports whether y² = x³ + 3 (mod p) holds for this point.
func (p Point) IsOnCurve() bool {
	return p.aff.IsOnCurve()
}

// Validate enforces the two invariants every note point must satisfy:
// on-curve and non-identity.
func (p Point) Validate() error {
	if p.IsIdentity() {
		return aztecerr.New(aztecerr.CodePointAtInfinity, "point is (0,0)")
	}
	if !p.IsOnCurve() {
		return aztecerr.New(aztecerr.CodeNotOnCurve, "point not on curve")
	}
	return nil
}

// NewPoint builds a point from two coordinates and validates it.
func NewPoint(x, y Fp) (Point, error) {
	p := Point{aff: bn254.G1Affine{X: x.element(), Y: y.element()}}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	var r bn254.G1Affine
	r.Add(&p.aff, &o.aff)
	return Point{aff: r}
}

// Double returns p + p.
func (p Point) Double() Point {
	var r bn254.G1Affine
	r.Double(&p.aff)
	return Point{aff: r}
}

// Neg returns -p.
func (p Point) Neg() Point {
	var r bn254.G1Affine
	r.Neg(&p.aff)
	return Point{aff: r}
}

// ScalarMul returns s*p.
func (p Point) ScalarMul(s Fr) Point {
	var r bn254.G1Affine
	r.ScalarMultiplication(&p.aff, s.BigInt())
	return Point{aff: r}
}

// Equal reports whether two points are the same affine coordinates.
func (p Point) Equal(o Point) bool {
	return p.aff.Equal(&o.aff)
}

// HashToPoint derives a point deterministically from seed using
// try-and-increment: hash the seed with an incrementing counter until
// the digest, read as an x-coordinate, has a square root under the
// curve equation y² = x³+3. Anyone can re-derive the same point from
// the same seed, so this is the right construction for a
// nothing-up-my-sleeve generator rather than a cached or looked-up one.
func HashToPoint(seed []byte) Point {
	counter := byte(0)
	for {
		data := make([]byte, len(seed)+1)
		copy(data, seed)
		data[len(seed)] = counter
		digest := sha256.Sum256(data)

		var x fp.Element
		x.SetBytes(digest[:])

		var x2, x3, rhs fp.Element
		x2.Square(&x)
		x3.Mul(&x2, &x)
		var three fp.Element
		three.SetUint64(3)
		rhs.Add(&x3, &three)

		var y fp.Element
		if y.Sqrt(&rhs) != nil {
			return Point{aff: bn254.G1Affine{X: x, Y: y}}
		}
		counter++
	}
}
