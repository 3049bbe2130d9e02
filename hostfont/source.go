package hostfont

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name string

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hostfont: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in points).
// Multiple faces can be created from the same FontSource.
//
// The returned Face implements both bmfont.MetricsOracle and
// bmfont.Painter and is not safe for concurrent use.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) (Face, error) {
	if s == nil {
		panic("hostfont: FontSource is nil — did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	if s.parsed == nil {
		return nil, ErrClosed
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	sized, err := s.parsed.NewFace(size, config.dpi)
	if err != nil {
		return nil, err
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
		sized:  sized,
	}, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Data returns the raw font data the source was created from.
// This is used by CheckCoverage, which parses the font independently.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// Parsed returns the parsed font for advanced operations.
// This is primarily used by Face implementations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.data = nil
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("hostfont: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	return "Unknown Font"
}
