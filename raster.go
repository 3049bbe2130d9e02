package bmfont

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	// rasterSize is the side length of the square raster buffer every
	// glyph is painted into. Bounding rects or line heights that do not
	// fit fail the run with an OverflowError.
	rasterSize = 100

	// blackThreshold binarizes the painted raster: a pixel is ink iff
	// its blue channel is below this value. The painter only produces
	// grayscale output between the white background and the black pen,
	// so thresholding a single channel is a luminance threshold.
	blackThreshold = 128
)

var (
	penBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	bgWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// newRaster allocates the reusable glyph raster buffer.
func newRaster() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, rasterSize, rasterSize))
}

// clearRaster refills the buffer with the background color. Must run
// before every paint; the buffer is reused across glyphs.
func clearRaster(img *image.RGBA, bg color.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}
