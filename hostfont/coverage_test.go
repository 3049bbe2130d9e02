package hostfont

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestCheckCoverageEmptyData(t *testing.T) {
	if _, err := CheckCoverage(nil, []string{"A"}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
}

func TestCheckCoverageASCII(t *testing.T) {
	var ascii []string
	for r := rune(0x20); r <= 0x7e; r++ {
		ascii = append(ascii, string(r))
	}

	missing, err := CheckCoverage(goregular.TTF, ascii)
	if err != nil {
		t.Fatalf("CheckCoverage() error: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("Go Regular reported missing ASCII: %v", missing)
	}
}

func TestCheckCoverageReportsMissing(t *testing.T) {
	// U+E777 is a private use codepoint no shipped font maps.
	chars := []string{"A", "", "B"}

	missing, err := CheckCoverage(goregular.TTF, chars)
	if err != nil {
		t.Fatalf("CheckCoverage() error: %v", err)
	}
	if len(missing) != 1 {
		t.Fatalf("missing = %v, want exactly the private use entry", missing)
	}

	m := missing[0]
	if m.Index != 1 || m.Rune != '' {
		t.Errorf("Missing = %+v", m)
	}
}

func TestCheckCoverageFieldsAreConsistent(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		_ = source.Close()
	}()

	// The symbol block is not fully covered by Go Regular; whatever is
	// reported must be well-formed and in repertoire order.
	chars := []string{"∞", "⟪", "⬏", "Ω", "x"}
	missing, err := CheckSourceCoverage(source, chars)
	if err != nil {
		t.Fatalf("CheckSourceCoverage() error: %v", err)
	}

	prev := -1
	for _, m := range missing {
		if m.Index <= prev || m.Index >= len(chars) {
			t.Errorf("index %d out of order or range", m.Index)
		}
		prev = m.Index
		if m.Char != chars[m.Index] {
			t.Errorf("Char = %q, want %q", m.Char, chars[m.Index])
		}
		if m.Rune == 0 {
			t.Errorf("missing entry has zero rune: %+v", m)
		}
	}
}
