package bmfont

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bmfont package.
var (
	// ErrNilOracle is returned when Generate is called without a metrics oracle.
	ErrNilOracle = errors.New("bmfont: metrics oracle is nil")

	// ErrNilPainter is returned when Generate is called without a painter.
	ErrNilPainter = errors.New("bmfont: painter is nil")
)

// OverflowError is returned when the oracle reports a line height or a
// bounding rectangle that does not fit the 100x100 raster buffer. The
// scan never reads outside the buffer; an oversized font fails the run.
type OverflowError struct {
	Index  int    // repertoire index, -1 for the line height check
	Char   string // textual form, empty for the line height check
	Rect   Rect   // oracle-reported bounding rect
	Height int    // line height in pixels
}

func (e *OverflowError) Error() string {
	if e.Char == "" {
		return fmt.Sprintf("bmfont: line height %d exceeds %dx%d raster buffer", e.Height, rasterSize, rasterSize)
	}
	return fmt.Sprintf("bmfont: glyph %q (index %d): bounding rect (%d,%d %dx%d) exceeds %dx%d raster buffer",
		e.Char, e.Index, e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H, rasterSize, rasterSize)
}

// OracleError wraps a metrics oracle failure for one character.
type OracleError struct {
	Index int
	Char  string
	Err   error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("bmfont: glyph %q (index %d): metrics: %v", e.Char, e.Index, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// PaintError wraps a painter failure for one character.
type PaintError struct {
	Index int
	Char  string
	Err   error
}

func (e *PaintError) Error() string {
	return fmt.Sprintf("bmfont: glyph %q (index %d): paint: %v", e.Char, e.Index, e.Err)
}

func (e *PaintError) Unwrap() error { return e.Err }
