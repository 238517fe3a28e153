// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crs holds the common reference string shared by every proof
// constructor: the second generator h and the G2 trusted-setup point
// t2. The process-wide singleton is a bare package-level var: by
// default it holds h derived from a fixed seed and a zero-valued t2 (no
// G2 coordinates are built in); an explicit Init call replaces it with
// a CRS loaded from the file format, and no running proof constructor
// mutates it.
package crs

import (
	"github.com/luxfi/aztec/aztecerr"
	"github.com/luxfi/aztec/bn128"
)

// FileSize is the fixed byte length of the CRS file format: h.x ‖ h.y ‖
// t2.xi ‖ t2.xr ‖ t2.yi ‖ t2.yr, six 32-byte big-endian fields.
const FileSize = 192

// G2Point is the G2 trusted-setup point, carried opaquely: this engine
// never performs G2 pairing arithmetic on it (that is the on-chain
// validator's job) — it only loads, stores and re-encodes the four
// coordinates byte-exactly.
type G2Point struct {
	Xi, Xr, Yi, Yr bn128.Fp
}

// CRS is the fixed pair (h, t2) every proof constructor consumes.
type CRS struct {
	H  bn128.Point
	T2 G2Point
}

// hashSeed is the nothing-up-my-sleeve domain-separation tag used to
// derive H when no CRS file is supplied (e.g. in tests). A production
// deployment loads H from the file format below instead, since H must
// match the value baked into the validator contract.
const hashSeed = "AZTEC_CRS_GENERATOR_H"

// current is the process-wide CRS. At package init it holds the
// hash-derived H and a zero T2; Init may replace it, and no running
// proof constructor mutates it.
var current = &CRS{H: bn128.HashToPoint([]byte(hashSeed))}

// Default returns the process-wide CRS.
func Default() *CRS {
	return current
}

// Init installs crs as the process-wide default, overriding the
// hash-derived placeholder. Callers must do this before any proof
// constructor runs — the CRS is immutable thereafter and this package
// applies no locking to the swap.
func Init(c *CRS) {
	current = c
}

// Load parses the fixed 192-byte CRS file format into a CRS.
func Load(data []byte) (*CRS, error) {
	if len(data) != FileSize {
		return nil, aztecerr.New(aztecerr.CodeEncodingInvalidLen, "CRS file must be 192 bytes")
	}
	hx, err := bn128.FpFromCanonicalBytes(data[0:32])
	if err != nil {
		return nil, err
	}
	hy, err := bn128.FpFromCanonicalBytes(data[32:64])
	if err != nil {
		return nil, err
	}
	h, err := bn128.NewPoint(hx, hy)
	if err != nil {
		return nil, err
	}
	xi, err := bn128.FpFromCanonicalBytes(data[64:96])
	if err != nil {
		return nil, err
	}
	xr, err := bn128.FpFromCanonicalBytes(data[96:128])
	if err != nil {
		return nil, err
	}
	yi, err := bn128.FpFromCanonicalBytes(data[128:160])
	if err != nil {
		return nil, err
	}
	yr, err := bn128.FpFromCanonicalBytes(data[160:192])
	if err != nil {
		return nil, err
	}
	return &CRS{
		H:  h,
		T2: G2Point{Xi: xi, Xr: xr, Yi: yi, Yr: yr},
	}, nil
}

// Bytes re-encodes the CRS into the fixed 192-byte file format.
func (c *CRS) Bytes() []byte {
	out := make([]byte, 0, FileSize)
	hx := c.H.X().Bytes()
	hy := c.H.Y().Bytes()
	xi := c.T2.Xi.Bytes()
	xr := c.T2.Xr.Bytes()
	yi := c.T2.Yi.Bytes()
	yr := c.T2.Yr.Bytes()
	out = append(out, hx[:]...)
	out = append(out, hy[:]...)
	out = append(out, xi[:]...)
	out = append(out, xr[:]...)
	out = append(out, yi[:]...)
	out = append(out, yr[:]...)
	return out
}
