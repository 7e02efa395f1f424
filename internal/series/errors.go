package series

import "errors"

// Sentinel errors for derived-series computations. Callers test with
// errors.Is; wrapped messages carry the offending field or value.
var (
	// ErrUnknownField is returned when a requested field is not present.
	ErrUnknownField = errors.New("unknown field")

	// ErrDomain is returned when a value falls outside a transform's domain,
	// e.g. a non-positive price passed to the natural logarithm.
	ErrDomain = errors.New("value outside transform domain")

	// ErrInsufficientData is returned when an operation needs more
	// observations than the input supplies.
	ErrInsufficientData = errors.New("not enough observations")
)
