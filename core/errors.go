// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every lvlmesh stage.
// Algorithms return these sentinels (optionally wrapped with call-site
// context) and tests match them via errors.Is. No algorithm panics on
// user-triggered conditions.

package core

import "errors"

// ERROR PRIORITY (checked in this order by validators):
// nil table -> shape -> face width -> vertex indices -> cross-stage extents.

var (
	// ErrNilTable indicates that a nil *Table (receiver or argument) was used.
	ErrNilTable = errors.New("core: nil table")

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("core: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Checked accessors (At/Set) return it instead of panicking.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrRagged indicates that input rows have differing lengths.
	ErrRagged = errors.New("core: all rows must have the same length")

	// ErrFaceWidth indicates a face table whose column count does not meet
	// the operation's precondition (k == 3 for adjacency, k >= 2 for edges).
	ErrFaceWidth = errors.New("core: unsupported face width")

	// ErrNegativeIndex indicates a negative vertex index in a face table.
	ErrNegativeIndex = errors.New("core: negative vertex index")

	// ErrDimensionMismatch indicates incompatible extents between arrays
	// passed from one stage to the next (e.g., EMAP length != |F|*k).
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)
