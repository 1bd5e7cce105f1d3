package coloring

import "errors"

// Sentinel errors for the coloring package.
var (
	// ErrInvalidColor is returned when a hex color cannot be parsed.
	ErrInvalidColor = errors.New("coloring: invalid color")

	// ErrUnknownShapeKind is returned by ParseShapeKind for an unknown name.
	ErrUnknownShapeKind = errors.New("coloring: unknown shape kind")
)
