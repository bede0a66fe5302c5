// SPDX-License-Identifier: MIT
// Package: core
//
// Purpose:
//  - Single source of truth for the preconditions every stage checks before
//    touching its input (nil → width → indices).
//  - Return sentinels wrapped with the validator tag so call sites can match
//    with errors.Is.

package core

import "github.com/pkg/errors"

// AnyWidth passed to ValidateFaces accepts every width that defines edges
// (k >= MinFaceWidth).
const AnyWidth = 0

// MinFaceWidth is the smallest face width with at least one edge.
const MinFaceWidth = 2

// TriangleWidth is the width required by triangle adjacency.
const TriangleWidth = 3

func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil ensures the table reference is non-nil.
func ValidateNotNil(t *Table) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTable)
	}

	return nil
}

// ValidateWidth ensures t has exactly k columns.
// Assumes t is not nil.
func ValidateWidth(t *Table, k int) error {
	if t.Cols() != k {
		return errors.Wrapf(ErrFaceWidth, "ValidateWidth: got %d columns, want %d", t.Cols(), k)
	}

	return nil
}

// ValidateIndices scans t for negative vertex indices. O(r*c).
// Assumes t is not nil.
func ValidateIndices(t *Table) error {
	for k, v := range t.data {
		if v < 0 {
			return errors.Wrapf(ErrNegativeIndex, "ValidateIndices: F[%d][%d] = %d", k/t.c, k%t.c, v)
		}
	}

	return nil
}

// ValidateFaces is the composite face-table precondition:
// NotNil → width (exactly width, or >= MinFaceWidth for AnyWidth) → indices.
func ValidateFaces(t *Table, width int) error {
	if err := ValidateNotNil(t); err != nil {
		return validatorErrorf("ValidateFaces", err)
	}
	if width == AnyWidth {
		if t.Cols() < MinFaceWidth {
			return errors.Wrapf(ErrFaceWidth, "ValidateFaces: got %d columns, want >= %d", t.Cols(), MinFaceWidth)
		}
	} else if err := ValidateWidth(t, width); err != nil {
		return validatorErrorf("ValidateFaces", err)
	}
	if err := ValidateIndices(t); err != nil {
		return validatorErrorf("ValidateFaces", err)
	}

	return nil
}

// ValidateLen ensures a derived array has the extent the next stage expects.
func ValidateLen(tag string, got, want int) error {
	if got != want {
		return errors.Wrapf(ErrDimensionMismatch, "%s: length %d, want %d", tag, got, want)
	}

	return nil
}
