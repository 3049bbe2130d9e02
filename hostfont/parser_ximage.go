package hostfont

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bmfont"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("hostfont: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// NewFace implements ParsedFont.NewFace.
func (f *ximageParsedFont) NewFace(size, dpi float64) (SizedFace, error) {
	otFace, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hostfont: failed to create face: %w", err)
	}

	m := otFace.Metrics()
	return &ximageFace{
		face:   otFace,
		ascent: m.Ascent.Ceil(),
		height: m.Ascent.Ceil() + m.Descent.Ceil(),
	}, nil
}

// ximageFace implements SizedFace over a font.Face.
// Not safe for concurrent use: font.Face has internal mutable state.
type ximageFace struct {
	face   font.Face
	ascent int
	height int
	closed bool
}

// Height implements SizedFace.Height.
//
// The line height is ceil(ascent) + ceil(descent). The generator paints
// the baseline at ceil(ascent) from the line top, so every glyph's ink
// falls inside the [0, Height) row range the packer scans.
func (f *ximageFace) Height() int {
	return f.height
}

// Ascent implements SizedFace.Ascent.
func (f *ximageFace) Ascent() int {
	return f.ascent
}

// BoundingRect implements SizedFace.BoundingRect.
func (f *ximageFace) BoundingRect(ch string) (bmfont.Rect, error) {
	if f.closed {
		return bmfont.Rect{}, ErrClosed
	}
	bounds, _ := font.BoundString(f.face, ch)
	if bounds.Empty() {
		return bmfont.Rect{}, nil
	}

	// Round outward so the rect encloses all painted pixels. Min.Y is
	// negative above the baseline; report Y relative to the line top.
	minX := bounds.Min.X.Floor()
	maxX := bounds.Max.X.Ceil()
	minY := bounds.Min.Y.Floor()
	maxY := bounds.Max.Y.Ceil()
	return bmfont.Rect{
		X: minX + inkShift(minX),
		Y: f.ascent + minY,
		W: maxX - minX,
		H: maxY - minY,
	}, nil
}

// inkShift returns the pen-origin shift, in pixels, that keeps a
// character's ink at non-negative columns. Glyphs with a negative left
// side bearing ("j", "ξ") would otherwise start left of the raster
// buffer. BoundingRect and Paint apply the same shift, so the reported
// rect and the painted ink stay in agreement.
func inkShift(minX int) int {
	if minX < 0 {
		return -minX
	}
	return 0
}

// Advance implements SizedFace.Advance.
func (f *ximageFace) Advance(ch string) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return font.MeasureString(f.face, ch).Ceil(), nil
}

// Paint implements SizedFace.Paint.
//
// The pen sits at x=0 with the baseline at Ascent, shifted right by
// inkShift for glyphs with a negative left side bearing, the same
// origin BoundingRect reports against. The rasterizer produces
// grayscale coverage between bg and pen; the generator's threshold
// binarization collapses it to 1-bpp deterministically.
func (f *ximageFace) Paint(dst *image.RGBA, ch string, pen, bg color.RGBA) error {
	if f.closed {
		return ErrClosed
	}
	bounds, _ := font.BoundString(f.face, ch)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(pen),
		Face: f.face,
		Dot:  fixed.P(inkShift(bounds.Min.X.Floor()), f.ascent),
	}
	d.DrawString(ch)
	return nil
}

// Close implements SizedFace.Close.
func (f *ximageFace) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.face.Close()
}
