package bmfont

import (
	"bytes"
	"image"
	"testing"
)

// paintPixels draws a hand-drawn matrix into the raster buffer. Rows are
// strings of '#' (ink) and '.' (background), placed with the top-left
// corner at (x0, y0).
func paintPixels(img *image.RGBA, x0, y0 int, rows []string) {
	for dy, row := range rows {
		for dx, c := range row {
			if c == '#' {
				img.SetRGBA(x0+dx, y0+dy, penBlack)
			}
		}
	}
}

// newPaintedRaster returns a cleared raster with the matrix painted at
// the origin.
func newPaintedRaster(t *testing.T, rows []string) *image.RGBA {
	t.Helper()
	img := newRaster()
	clearRaster(img, bgWhite)
	paintPixels(img, 0, 0, rows)
	return img
}

func TestPackGlyphScenarios(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		rect   Rect
		height int
		want   []byte
	}{
		{
			name:   "single pixel, partial group of one",
			rows:   []string{"#"},
			rect:   Rect{X: 0, Y: 0, W: 1, H: 1},
			height: 1,
			want:   []byte{0x1},
		},
		{
			name:   "full 8-wide row",
			rows:   []string{"########"},
			rect:   Rect{X: 0, Y: 0, W: 8, H: 1},
			height: 1,
			want:   []byte{0xff},
		},
		{
			name:   "9-wide row spills one bit into the low bit of a second byte",
			rows:   []string{"#########"},
			rect:   Rect{X: 0, Y: 0, W: 9, H: 1},
			height: 1,
			want:   []byte{0xff, 0x1},
		},
		{
			name:   "left pixel of a 2-wide partial group lands in bit 1",
			rows:   []string{"#."},
			rect:   Rect{X: 0, Y: 0, W: 2, H: 1},
			height: 1,
			want:   []byte{0x2},
		},
		{
			name:   "full-height vertical line at x=0",
			rows:   []string{"#", "#", "#"},
			rect:   Rect{X: 0, Y: 0, W: 1, H: 3},
			height: 3,
			want:   []byte{0x1, 0x1, 0x1},
		},
		{
			name:   "MSB of a full group is the leftmost column",
			rows:   []string{"#......."},
			rect:   Rect{X: 0, Y: 0, W: 8, H: 1},
			height: 1,
			want:   []byte{0x80},
		},
		{
			name:   "rows cover the full line height, not the ink height",
			rows:   []string{"#"},
			rect:   Rect{X: 0, Y: 0, W: 1, H: 1},
			height: 4,
			want:   []byte{0x1, 0x0, 0x0, 0x0},
		},
		{
			name:   "empty rect produces no bytes",
			rows:   nil,
			rect:   Rect{},
			height: 8,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newPaintedRaster(t, tt.rows)
			got := packGlyph(img, tt.rect, tt.height)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("packGlyph() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

// TestPackGlyphScanStartsAtRectX covers the deliberate asymmetry: the
// column scan starts at the rect's left edge, so a glyph whose ink
// begins at x=3 is packed from column 3 even though its reported width
// implies origin 0.
func TestPackGlyphScanStartsAtRectX(t *testing.T) {
	img := newRaster()
	clearRaster(img, bgWhite)
	// Ink in columns 3..9 of row 0 (7 columns).
	paintPixels(img, 3, 0, []string{"#.#.#.#"})

	rect := Rect{X: 3, Y: 0, W: 7, H: 1}
	got := packGlyph(img, rect, 1)

	// One partial group of 7 columns starting at column 3:
	// columns 3,5,7,9 set -> bits 6,4,2,0.
	want := []byte{0x55}
	if !bytes.Equal(got, want) {
		t.Errorf("packGlyph() = %#v, want %#v", got, want)
	}

	// A pixel left of the rect must not be scanned.
	img.SetRGBA(2, 0, penBlack)
	if got := packGlyph(img, rect, 1); !bytes.Equal(got, want) {
		t.Errorf("pixel outside rect changed output: %#v", got)
	}
}

func TestPackGlyphByteCountLaw(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{1, 1}, {7, 3}, {8, 5}, {9, 2}, {16, 4}, {17, 10}, {25, 1},
	}

	for _, tt := range tests {
		img := newRaster()
		clearRaster(img, bgWhite)
		got := packGlyph(img, Rect{W: tt.w, H: tt.h}, tt.h)
		want := tt.h * ((tt.w + 7) / 8)
		if len(got) != want {
			t.Errorf("w=%d h=%d: len = %d, want %d", tt.w, tt.h, len(got), want)
		}
	}
}

// unpackGlyph is the inverse of packGlyph: it decodes the packed bytes
// back into a height x width pixel matrix.
func unpackGlyph(data []byte, width, height int) [][]bool {
	out := make([][]bool, height)
	groups := (width + 7) / 8
	for y := 0; y < height; y++ {
		out[y] = make([]bool, width)
		for g := 0; g < groups; g++ {
			left := width - g*8
			if left > 8 {
				left = 8
			}
			b := data[y*groups+g]
			for x := 0; x < left; x++ {
				out[y][g*8+x] = b&(1<<((left-1)-x)) != 0
			}
		}
	}
	return out
}

func TestPackGlyphRoundTrip(t *testing.T) {
	rows := []string{
		"..####....",
		".#....#...",
		"#......#..",
		"#.########",
		"#.........",
		".#....#...",
		"..####....",
	}
	img := newPaintedRaster(t, rows)
	rect := Rect{X: 0, Y: 0, W: 10, H: 7}

	packed := packGlyph(img, rect, 7)
	decoded := unpackGlyph(packed, 10, 7)

	for y := 0; y < 7; y++ {
		for x := 0; x < 10; x++ {
			want := rows[y][x] == '#'
			if decoded[y][x] != want {
				t.Errorf("pixel (%d,%d): decoded %v, want %v", x, y, decoded[y][x], want)
			}
		}
	}
}

// TestPackGlyphThreshold checks the binarization boundary: blue < 128 is
// ink, blue >= 128 is background.
func TestPackGlyphThreshold(t *testing.T) {
	img := newRaster()
	clearRaster(img, bgWhite)
	img.Pix[img.PixOffset(0, 0)+2] = 127 // blue channel just below the threshold
	img.Pix[img.PixOffset(1, 0)+2] = 128 // blue channel exactly at the threshold

	got := packGlyph(img, Rect{W: 2, H: 1}, 1)
	want := []byte{0x2}
	if !bytes.Equal(got, want) {
		t.Errorf("packGlyph() = %#v, want %#v", got, want)
	}
}
