package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when a family has no registered source.
	ErrUnknownFamily = errors.New("text: unknown font family")

	// ErrNilSource is returned when an operation receives a nil FontSource.
	ErrNilSource = errors.New("text: nil font source")
)

// FontError reports a failure to load or register a font file.
type FontError struct {
	Family string
	Path   string
	Err    error
}

func (e *FontError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("text: font %q (%s): %v", e.Family, e.Path, e.Err)
	}
	return fmt.Sprintf("text: font %q: %v", e.Family, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
