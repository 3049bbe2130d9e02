package bmfont

// Rect is an integer pixel rectangle, origin at the top-left.
// It mirrors what a host font metrics oracle reports for one character:
// X is the left edge of the glyph ink relative to the pen origin, W and H
// its horizontal and vertical extent.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle encloses no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// MaxX returns the exclusive right edge of the rectangle.
func (r Rect) MaxX() int {
	return r.X + r.W
}

// Glyph is the packed form of one repertoire character.
type Glyph struct {
	// Bitmap is the 1-bpp pixel data, packed row-major: Height rows of
	// ceil(Width/8) bytes each. Empty for characters with no ink (space).
	Bitmap []byte

	// Width is the rendered pixel width: the bounding rect's width with
	// its left edge forced to zero.
	Width int

	// Advance is the horizontal advance in whole pixels.
	Advance int
}

// Table is the complete serialized output of one generation run: the
// line height plus one glyph per repertoire entry, in repertoire order.
type Table struct {
	Height int
	Glyphs []Glyph
}
