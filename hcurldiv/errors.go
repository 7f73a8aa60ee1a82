package hcurldiv

import "errors"

var (
	// ErrNotImplemented marks deliberately unsupported paths: the curved-map
	// divergence correction, mapped surface shapes and the enrichment
	// bubbles. These raise instead of returning wrong numeric data.
	ErrNotImplemented = errors.New("not implemented")

	// ErrSurfaceDiv is returned when a divergence is requested on a
	// surface/trace element, where it has no meaning.
	ErrSurfaceDiv = errors.New("divergence not available on surface elements")

	// ErrInvalidOrder is returned for order specifications with negative
	// entries.
	ErrInvalidOrder = errors.New("order specification must be non-negative")

	// ErrElementKind is returned when a constructor is handed an element
	// kind outside its closed variant set.
	ErrElementKind = errors.New("unsupported element kind")
)
