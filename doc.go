// Package bmfont converts a vector font into a compact 1-bit-per-pixel
// bitmap font table, emitted as a Rust source artifact for an embedded
// renderer.
//
// The pipeline is deliberately small: a fixed character repertoire is
// rasterized one character at a time into a reusable 100x100 buffer,
// binarized with a fixed luminance threshold, and packed row-major into
// bytes. For every character the emitted table records the packed bitmap,
// the rendered pixel width, and the horizontal advance.
//
// The package is polymorphic over the host font stack through two small
// capability interfaces:
//
//   - MetricsOracle: line height, per-character bounding rect and advance
//   - Painter: paints one character into a caller-owned raster buffer
//
// Package hostfont provides the default implementation on top of
// golang.org/x/image/font/opentype. Headless tests drive the core with a
// mock oracle and painter backed by hand-drawn pixel matrices.
//
// # Example usage
//
//	source, err := hostfont.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face, err := source.Face(18)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	// face implements both MetricsOracle and Painter.
//	if err := bmfont.GenerateFile("font.rs", face, face); err != nil {
//	    log.Fatal(err)
//	}
//
// # Packing rule
//
// Each glyph is packed as Height rows of ceil(width/8) bytes. Within a
// full 8-column group the most significant bit is the leftmost pixel; a
// trailing partial group of k columns packs into the low k bits of its
// final byte. Consumers of the artifact rely on this exact layout.
package bmfont
