package bmfont

// repertoire is the fixed, ordered character set the generator emits.
// The first 95 entries are the printable ASCII range U+0020..U+007E,
// followed by the symbol block the embedded renderer needs: small capital
// E, math and arrow symbols, Greek letters, and geometric markers.
//
// The order is the emission order. Consumers of the artifact index the
// chars, width and advance arrays by position, so the order must never
// change.
var repertoire = []string{
	" ", "!", "\"", "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-", ".", "/",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ":", ";", "<", "=", ">", "?",
	"@", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "[", "\\", "]", "^", "_",
	"`", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "{", "|", "}", "~", "ᴇ",
	"∞", "×", "÷", "±", "°", "∀", "∅", "∈", "∉", "∙", "∫", "≈", "≤", "≥", "⋂", "⋃",
	"←", "↑", "→", "↓", "↵", "⬏", "α", "β", "Γ", "γ", "Δ", "δ", "ϵ", "ϝ", "ζ", "η",
	"Θ", "θ", "ι", "κ", "Λ", "λ", "μ", "ν", "Ξ", "ξ", "Π", "π", "ρ", "Σ", "σ", "τ",
	"υ", "Φ", "ϕ", "χ", "Ψ", "ψ", "Ω", "ω", "…", "▪", "◂", "▴", "▸", "▾", "≠", "≷",
	"∡", "²", "³", "ˣ", "₂", "ℹ", "⟪", "⟫", "⦗", "⦘",
}

// RepertoireLen is the number of characters in the repertoire.
var RepertoireLen = len(repertoire)

// Repertoire returns a copy of the fixed character repertoire, in
// emission order. Entries are strings rather than runes so a character
// may span more than one codepoint.
func Repertoire() []string {
	out := make([]string, len(repertoire))
	copy(out, repertoire)
	return out
}
