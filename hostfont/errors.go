package hostfont

import "errors"

// Sentinel errors for the hostfont package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("hostfont: empty font data")

	// ErrClosed is returned when a FontSource or Face is used after Close.
	ErrClosed = errors.New("hostfont: use after Close")
)
