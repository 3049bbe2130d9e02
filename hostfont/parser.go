package hostfont

import (
	"image"
	"image/color"

	"github.com/gogpu/bmfont"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font library
// (e.g., golang.org/x/image/font/opentype vs a FreeType binding).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// NewFace creates a sized face with full hinting at the given size
	// (in points) and DPI. The returned face is not safe for concurrent
	// use and must be closed when no longer needed.
	NewFace(size, dpi float64) (SizedFace, error)
}

// SizedFace measures and paints single characters at a fixed size.
// All values are in whole pixels, rounded outward so the reported
// bounding rect always encloses the painted ink.
type SizedFace interface {
	// Height returns the line height in pixels.
	Height() int

	// Ascent returns the baseline offset from the line top in pixels.
	Ascent() int

	// BoundingRect returns the tight pixel rectangle of the character's
	// ink relative to the pen origin. Empty for characters with no ink.
	BoundingRect(ch string) (bmfont.Rect, error)

	// Advance returns the horizontal advance in whole pixels.
	Advance(ch string) (int, error)

	// Paint draws ch into dst with pen as the text color, baseline at
	// Ascent, pen origin at x=0. dst is pre-filled with bg by the caller.
	Paint(dst *image.RGBA, ch string, pen, bg color.RGBA) error

	// Close releases backend resources held by the face.
	Close() error
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
