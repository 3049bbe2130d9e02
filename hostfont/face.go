package hostfont

import (
	"image"
	"image/color"

	"github.com/gogpu/bmfont"
)

// Face represents a font face at a specific size.
// It implements both bmfont.MetricsOracle and bmfont.Painter, so one
// Face is everything a generation run needs from the host font stack.
//
// A Face is not safe for concurrent use; the underlying rasterizer has
// internal mutable state. Create one Face per goroutine if needed.
type Face interface {
	// Height returns the line height in pixels.
	Height() int

	// Ascent returns the baseline offset from the line top in pixels.
	Ascent() int

	// BoundingRect returns the tight pixel rectangle of the character's
	// ink relative to the pen origin.
	BoundingRect(ch string) (bmfont.Rect, error)

	// Advance returns the horizontal advance of the character in pixels.
	Advance(ch string) (int, error)

	// Paint draws ch into dst with pen as the text color. dst is
	// pre-filled with bg by the caller.
	Paint(dst *image.RGBA, ch string, pen, bg color.RGBA) error

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in points.
	Size() float64

	// Close releases backend resources held by the face.
	Close() error

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
	sized  SizedFace
}

// Height implements Face.Height.
func (f *sourceFace) Height() int {
	return f.sized.Height()
}

// Ascent implements Face.Ascent.
func (f *sourceFace) Ascent() int {
	return f.sized.Ascent()
}

// BoundingRect implements Face.BoundingRect.
func (f *sourceFace) BoundingRect(ch string) (bmfont.Rect, error) {
	return f.sized.BoundingRect(ch)
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(ch string) (int, error) {
	return f.sized.Advance(ch)
}

// Paint implements Face.Paint.
func (f *sourceFace) Paint(dst *image.RGBA, ch string, pen, bg color.RGBA) error {
	return f.sized.Paint(dst, ch, pen, bg)
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Close implements Face.Close.
func (f *sourceFace) Close() error {
	return f.sized.Close()
}

// private implements the Face interface.
func (f *sourceFace) private() {}
