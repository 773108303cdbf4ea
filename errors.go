package mahout

import (
	"github.com/Sathyasri1/mahout/canopy"
)

// Errors surfaced by the facade. The underlying canopy sentinels are
// re-exported so callers can match with errors.Is without importing the
// canopy package.
var (
	// ErrEmptyInput is returned when Fit is invoked on a matrix with no
	// rows. A failed fit yields no model.
	ErrEmptyInput = canopy.ErrEmptyInput

	// ErrNoCenters is returned when Assign is invoked on a model without
	// centers.
	ErrNoCenters = canopy.ErrNoCenters
)

// ErrInvalidThresholds indicates a threshold pair rejected at configuration
// time. See canopy.ErrInvalidThresholds for the fields.
type ErrInvalidThresholds = canopy.ErrInvalidThresholds

// ErrDimensionMismatch indicates an assignment row whose dimensionality
// does not match the fitted center matrix.
type ErrDimensionMismatch = canopy.ErrDimensionMismatch
