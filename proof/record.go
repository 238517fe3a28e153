// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import "encoding/hex"

// Record is one per-note line of a proof transcript: [kBar, aBar, γ.x,
// γ.y, σ.x, σ.y], each a 0x-prefixed 32-byte hex scalar.
type Record [6]string

// Transcript is the ordered sequence of per-note Records a constructor
// returns, in the same order as the caller's notes slice.
type Transcript []Record

// FieldCount returns the total number of flattened hex fields across
// the transcript (len(Transcript)*6).
func (t Transcript) FieldCount() int {
	return len(t) * 6
}

func hexField(b [32]byte) string {
	return "0x" + hex.EncodeToString(b[:])
}
