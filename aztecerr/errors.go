// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package aztecerr defines the closed taxonomy of error codes returned by
// the proof-construction engine. Every public entry point in bn128, note,
// crs, proof and abi fails with exactly one of these, never a generic
// wrapped error, so callers (wallets, validators) can switch on a stable
// string.
package aztecerr

import "fmt"

// Code is one of the stable, closed set of error strings consumed by
// callers. New codes are never added silently: a code is part of the
// protocol surface.
type Code string

const (
	CodeKPublicMalformed     Code = "KPUBLIC_MALFORMED"
	CodeMTooBig              Code = "M_TOO_BIG"
	CodeNotOnCurve           Code = "NOT_ON_CURVE"
	CodePointAtInfinity      Code = "POINT_AT_INFINITY"
	CodeViewingKeyMalformed  Code = "VIEWING_KEY_MALFORMED"
	CodeNoteValueTooBig      Code = "NOTE_VALUE_TOO_BIG"
	CodeBadBlindingFactor    Code = "BAD_BLINDING_FACTOR"
	CodeIncorrectNoteNumber  Code = "INCORRECT_NOTE_NUMBER"
	CodeChallengeResponseErr Code = "CHALLENGE_RESPONSE_FAIL"
	CodeEncodingInvalidLen   Code = "ENCODING_INVALID_LENGTH"
	CodeScalarTooBig         Code = "SCALAR_TOO_BIG"
)

// Error is the concrete error type every public entry point returns.
// It satisfies error and carries exactly one Code plus an optional
// human-readable detail for logs (never surfaced to the caller as the
// primary signal — callers must switch on Code, not on Error()'s text).
type Error struct {
	Code   Code
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// New constructs an Error for the given code with an optional detail.
func New(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Is reports whether err carries the given code, so callers can use
// errors.Is(err, aztecerr.KPublicMalformed) in addition to matching on
// the stable Code string.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel values for errors.Is matching. Each wraps only its Code; the
// Detail field is ignored by Is, so any *Error with a matching Code is
// considered equal to these.
var (
	KPublicMalformed     = &Error{Code: CodeKPublicMalformed}
	MTooBig              = &Error{Code: CodeMTooBig}
	NotOnCurve           = &Error{Code: CodeNotOnCurve}
	PointAtInfinity      = &Error{Code: CodePointAtInfinity}
	ViewingKeyMalformed  = &Error{Code: CodeViewingKeyMalformed}
	NoteValueTooBig      = &Error{Code: CodeNoteValueTooBig}
	BadBlindingFactor    = &Error{Code: CodeBadBlindingFactor}
	IncorrectNoteNumber  = &Error{Code: CodeIncorrectNoteNumber}
	ChallengeResponseFail = &Error{Code: CodeChallengeResponseErr}
	EncodingInvalidLength = &Error{Code: CodeEncodingInvalidLen}
	ScalarTooBig          = &Error{Code: CodeScalarTooBig}
)
