package hostfont

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/runenames"
)

// Missing describes one repertoire character the font cannot display.
type Missing struct {
	// Index is the character's position in the repertoire.
	Index int

	// Char is the character's textual form.
	Char string

	// Rune is the first codepoint of Char with no glyph in the font.
	Rune rune

	// Name is the Unicode name of Rune, e.g. "LEFT-POINTING ANGLE BRACKET".
	Name string
}

func (m Missing) String() string {
	return fmt.Sprintf("%3d %q U+%04X %s", m.Index, m.Char, m.Rune, m.Name)
}

// CheckCoverage reports which entries of chars the font has no glyph
// for. A character is missing when any of its codepoints has no cmap
// entry; the rasterizer would paint a replacement box for it.
//
// The lookup goes through go-text/typesetting's character map directly
// and is independent of the rasterization backend, so it can run as a
// cheap preflight before a generation run.
func CheckCoverage(data []byte, chars []string) ([]Missing, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("hostfont: coverage: %w", err)
	}

	var missing []Missing
	for i, ch := range chars {
		for _, r := range ch {
			if _, ok := face.NominalGlyph(r); !ok {
				missing = append(missing, Missing{
					Index: i,
					Char:  ch,
					Rune:  r,
					Name:  runenames.Name(r),
				})
				break
			}
		}
	}
	return missing, nil
}

// CheckSourceCoverage runs CheckCoverage against a loaded FontSource.
func CheckSourceCoverage(s *FontSource, chars []string) ([]Missing, error) {
	return CheckCoverage(s.Data(), chars)
}
