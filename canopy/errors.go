package canopy

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Fit is invoked on a matrix with no rows.
	// A failed fit yields no model.
	ErrEmptyInput = errors.New("canopy: input matrix has no rows")

	// ErrNoCenters is returned when Assign is invoked on a model without
	// centers.
	ErrNoCenters = errors.New("canopy: model has no centers")
)

// ErrInvalidThresholds indicates a threshold pair that violates the
// tight <= loose precondition, or a non-finite or negative threshold.
// Rejected at configuration time, before any data is touched.
type ErrInvalidThresholds struct {
	Phase string // "map" or "reduce"
	Loose float64
	Tight float64
}

func (e *ErrInvalidThresholds) Error() string {
	return fmt.Sprintf("canopy: invalid %s-phase thresholds: loose=%v tight=%v (want 0 <= tight <= loose, finite)", e.Phase, e.Loose, e.Tight)
}

// ErrDimensionMismatch indicates a row whose dimensionality does not match
// the fitted center matrix.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("canopy: row dimension %d does not match center dimension %d", e.Actual, e.Expected)
}
