package bmfont

import "image"

// packGlyph binarizes the painted raster and packs it into bytes.
//
// Rows cover the full line height, not the bounding rect's vertical
// span, so glyphs align vertically by line. Columns are walked in groups
// of eight starting at the rect's left edge; the reported glyph width is
// nevertheless the rect's width as if the left edge were zero. Both
// halves of that asymmetry are load-bearing: consumers decode exactly
// ceil(width/8) bytes per row.
//
// Within a full group the most significant bit is the leftmost pixel.
// A trailing partial group of k columns packs into the low k bits of its
// byte. A pixel is ink iff its blue channel is below blackThreshold.
func packGlyph(img *image.RGBA, r Rect, height int) []byte {
	if r.W <= 0 {
		return nil
	}
	out := make([]byte, 0, height*((r.W+7)/8))
	for y := 0; y < height; y++ {
		for xByte := r.X; xByte < r.MaxX(); xByte += 8 {
			left := r.MaxX() - xByte
			if left > 8 {
				left = 8
			}
			var value byte
			for x := 0; x < left; x++ {
				if img.RGBAAt(xByte+x, y).B < blackThreshold {
					value |= 1 << ((left - 1) - x)
				}
			}
			out = append(out, value)
		}
	}
	return out
}
