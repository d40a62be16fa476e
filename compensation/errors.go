/*
errors.go - Centralized error types for the equalization core

PURPOSE:
  All error kinds in one place. Almost nothing here is fatal: per-row
  problems are recovered with documented defaults and surface as
  diagnostics, not errors. The one exception is batch integrity, where a
  structurally required column is missing from the whole input and the
  run cannot produce meaningful output.

USAGE:
  Callers should branch on fatality, not concrete types:

    if compensation.IsFatal(err) {
        return err // abort the run
    }

SEE ALSO:
  - diagnostics.go: the non-fatal side of error handling
*/
package compensation

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingColumn is returned when a structurally required column is
	// absent from every row of the input. Wrapped by BatchIntegrityError.
	ErrMissingColumn = errors.New("required column absent from input")

	// ErrMissingField marks a row that lacks a field one calculation step
	// needs. Recovered per row, reported as a diagnostic.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidDateRange marks a contractual period whose end precedes its
	// start or whose dates are absent. Tenure defaults to a full year.
	ErrInvalidDateRange = errors.New("invalid contract date range")

	// ErrUnknownComponent marks a component code the catalog cannot resolve.
	// The component passes through equalization unmodified.
	ErrUnknownComponent = errors.New("component code not in catalog")

	// ErrEmptyInput is returned when a run receives no rows at all.
	ErrEmptyInput = errors.New("input contains no rows")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// BatchIntegrityError reports a structurally broken input: a required
// column (employee identifier, gender) missing from all rows. This is the
// only error that aborts a run.
type BatchIntegrityError struct {
	Column string
	Rows   int
}

func (e *BatchIntegrityError) Error() string {
	return fmt.Sprintf("batch integrity: column %q absent from all %d rows", e.Column, e.Rows)
}

func (e *BatchIntegrityError) Unwrap() error {
	return ErrMissingColumn
}

// =============================================================================
// ERROR CLASSIFICATION
// =============================================================================

// IsFatal reports whether err must abort the whole run. Everything else is
// recoverable row-level noise.
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingColumn) || errors.Is(err, ErrEmptyInput)
}
