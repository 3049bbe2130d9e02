// Package hostfont implements bmfont's metrics oracle and glyph painter
// on top of the host font stack.
//
// The package follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size; implements both
//     bmfont.MetricsOracle and bmfont.Painter
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//
// # Pluggable parser backend
//
// Font parsing and rasterization are abstracted through the FontParser
// interface. By default, golang.org/x/image/font/opentype is used.
// Custom backends can be registered for alternative implementations:
//
//	hostfont.RegisterParser("myparser", myCustomParser)
//	source, err := hostfont.NewFontSource(data, hostfont.WithParser("myparser"))
//
// # Coverage preflight
//
// CheckCoverage reports repertoire characters the font has no glyph for,
// so an operator can pick a different font before generating a table
// full of replacement boxes. It uses go-text/typesetting's cmap lookups,
// independent of the rasterization backend.
package hostfont
