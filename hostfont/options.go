package hostfont

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi float64
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi: 72,
	}
}

// WithDPI sets the dots-per-inch resolution the face is sized at.
// At the default 72 DPI one point equals one pixel.
//
// Hinting is always full: the generator needs stable pixel positions,
// and the 1-bpp output has no use for subpixel placement.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}
