package bmfont

// Option configures artifact emission.
type Option func(*emitConfig)

// emitConfig holds configuration for the emitted artifact.
type emitConfig struct {
	constName string
	typePath  string
}

// defaultEmitConfig returns the configuration matching the table the
// embedded renderer ships with.
func defaultEmitConfig() emitConfig {
	return emitConfig{
		constName: "FONT",
		typePath:  "crate::screen::Font",
	}
}

// WithConstName sets the name of the emitted Rust constant.
// The default is "FONT".
func WithConstName(name string) Option {
	return func(c *emitConfig) {
		c.constName = name
	}
}

// WithTypePath sets the Rust path of the font table type the constant is
// declared with. The default is "crate::screen::Font".
func WithTypePath(path string) Option {
	return func(c *emitConfig) {
		c.typePath = path
	}
}
