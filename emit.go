package bmfont

import (
	"bufio"
	"fmt"
	"io"
)

// widthsPerLine is how many width/advance entries share one source line.
const widthsPerLine = 32

// Emit writes the font table as a Rust constant declaration.
//
// The grammar is a firm contract with the embedded renderer: bytes as
// lowercase 0x%x with a trailing comma, one packed byte array per
// repertoire entry, and the width and advance arrays wrapped every 32
// entries. Two runs over the same table produce byte-identical output.
func Emit(w io.Writer, tbl *Table, opts ...Option) error {
	cfg := defaultEmitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// bufio keeps the first write error sticky; one check at Flush
	// covers the whole emission.
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#[allow(dead_code)]\n")
	fmt.Fprintf(bw, "pub const %s: %s = %s {\n", cfg.constName, cfg.typePath, cfg.typePath)
	fmt.Fprintf(bw, "    height: %d,\n", tbl.Height)

	fmt.Fprintf(bw, "    chars: &[\n")
	for _, g := range tbl.Glyphs {
		bw.WriteString("        &[")
		for _, b := range g.Bitmap {
			fmt.Fprintf(bw, "0x%x,", b)
		}
		bw.WriteString("],\n")
	}
	bw.WriteString("    ],\n")

	emitIntArray(bw, "width", tbl.Glyphs, func(g Glyph) int { return g.Width })
	emitIntArray(bw, "advance", tbl.Glyphs, func(g Glyph) int { return g.Advance })

	bw.WriteString("};\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmfont: emit: %w", err)
	}
	return nil
}

// emitIntArray writes one decimal array field, wrapped widthsPerLine
// entries per line with an eight-space continuation indent.
func emitIntArray(bw *bufio.Writer, name string, glyphs []Glyph, value func(Glyph) int) {
	fmt.Fprintf(bw, "    %s: &[\n        ", name)
	for i, g := range glyphs {
		if i > 0 && i%widthsPerLine == 0 {
			bw.WriteString("\n        ")
		}
		fmt.Fprintf(bw, "%d,", value(g))
	}
	bw.WriteString("\n    ],\n")
}
