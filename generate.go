package bmfont

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

// MetricsOracle reports host font metrics for repertoire characters.
// It is one of the two capabilities the host font stack supplies; the
// generator itself never touches font files.
type MetricsOracle interface {
	// Height returns the line height in pixels, identical for every
	// glyph in the run.
	Height() int

	// BoundingRect returns the tight integer pixel rectangle containing
	// the rendered character, relative to the pen origin. An empty rect
	// means the character produces no ink (e.g. space).
	BoundingRect(ch string) (Rect, error)

	// Advance returns the horizontal advance in whole pixels.
	Advance(ch string) (int, error)
}

// Painter rasterizes one character into a caller-owned buffer.
// The caller pre-fills dst with bg; the painter draws ch with pen such
// that the ink agrees with the oracle's bounding rect (same origin) and
// produced pixels are either close to bg or close to pen.
type Painter interface {
	Paint(dst *image.RGBA, ch string, pen, bg color.RGBA) error
}

// Build runs the rasterization pipeline over the full repertoire and
// returns the assembled font table. Glyphs appear in strict repertoire
// order. Any oracle, painter, or overflow failure aborts the run.
func Build(oracle MetricsOracle, painter Painter) (*Table, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if painter == nil {
		return nil, ErrNilPainter
	}

	height := oracle.Height()
	if height <= 0 || height > rasterSize {
		return nil, &OverflowError{Index: -1, Height: height}
	}

	buf := newRaster()
	glyphs := make([]Glyph, 0, len(repertoire))
	for i, ch := range repertoire {
		rect, err := oracle.BoundingRect(ch)
		if err != nil {
			return nil, &OracleError{Index: i, Char: ch, Err: err}
		}
		advance, err := oracle.Advance(ch)
		if err != nil {
			return nil, &OracleError{Index: i, Char: ch, Err: err}
		}

		// No ink: record the advance only. Spaces still move the pen.
		if rect.Empty() {
			glyphs = append(glyphs, Glyph{Advance: advance})
			continue
		}

		// The packer walks the full line height and the rect's original
		// horizontal span, so both must fit the buffer. A negative left
		// edge would read outside the buffer as well.
		if rect.X < 0 || rect.MaxX() > rasterSize {
			return nil, &OverflowError{Index: i, Char: ch, Rect: rect, Height: height}
		}

		// The vertical span is the full line height regardless of the
		// ink's extent; glyphs align by line, not by bounding box.
		rect.Y = 0
		rect.H = height

		clearRaster(buf, bgWhite)
		if err := painter.Paint(buf, ch, penBlack, bgWhite); err != nil {
			return nil, &PaintError{Index: i, Char: ch, Err: err}
		}

		glyphs = append(glyphs, Glyph{
			Bitmap:  packGlyph(buf, rect, height),
			Width:   rect.W,
			Advance: advance,
		})
	}

	return &Table{Height: height, Glyphs: glyphs}, nil
}

// Generate runs Build and emits the artifact to w. Nothing is written
// before the whole table has been assembled, so a failing run leaves the
// sink untouched unless the sink itself fails mid-emission.
func Generate(w io.Writer, oracle MetricsOracle, painter Painter, opts ...Option) error {
	tbl, err := Build(oracle, painter)
	if err != nil {
		return err
	}
	return Emit(w, tbl, opts...)
}

// GenerateFile writes the artifact to path. On any failure the target
// file is removed; no partial artifact survives.
func GenerateFile(path string, oracle MetricsOracle, painter Painter, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bmfont: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return Generate(f, oracle, painter, opts...)
}
