// Package distmat: sentinel error set. All exported operations return
// these sentinels and tests check them via errors.Is. Context is added
// by wrapping with fmt.Errorf("...: %w", ErrX) at the outer boundary;
// callers still match with errors.Is. No operation panics on
// user-triggered conditions — panics are reserved for programmer errors
// in option constructors.

package distmat

import "errors"

var (
	// ErrInvalidIndex indicates a pair index below 1. Matrix indices are
	// 1-based corpus line numbers; anything smaller is a caller bug
	// surfaced as an error at the API boundary.
	ErrInvalidIndex = errors.New("distmat: index must be >= 1")

	// ErrSelfPair indicates an attempt to store a distance for (i, i).
	// Self-distances are implicitly zero and never materialized.
	ErrSelfPair = errors.New("distmat: self-pair not storable")

	// ErrPairNotFound indicates the requested pair has no stored
	// distance: it was never computed or never persisted. Lookups must
	// fail loudly here rather than return 0 or NaN.
	ErrPairNotFound = errors.New("distmat: pair not found")

	// ErrMalformedRecord indicates an artifact line that matches the
	// `(i,j) value` record shape but whose numeric fields do not parse.
	// Unlike unrecognized lines (skipped), this signals corruption of a
	// recognized record and aborts the read.
	ErrMalformedRecord = errors.New("distmat: malformed record")

	// ErrArtifactNotFound indicates the persisted distance file is
	// missing or unreadable.
	ErrArtifactNotFound = errors.New("distmat: artifact file not found")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("distmat: nil matrix")
)
