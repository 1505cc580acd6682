// Package render turns engine results into text for the TUI, CLI and the
// HTML report. Everything in here is pure: no I/O, no styling, deterministic
// output for a given input.
package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape makes text safe for interpolation into HTML markup. Only the three
// structurally significant characters are rewritten; everything else passes
// through untouched.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// Sanitize strips terminal escape sequences and non-printing control bytes
// from engine-supplied text before it is written to the screen. Newlines and
// tabs survive; CSI and OSC sequences are removed whole.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == 0x1b { // ESC: swallow the whole sequence
			i = skipEscapeSequence(runes, i)
			continue
		}
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// skipEscapeSequence returns the index of the last rune belonging to the
// escape sequence starting at i.
func skipEscapeSequence(runes []rune, i int) int {
	if i+1 >= len(runes) {
		return i
	}

	switch runes[i+1] {
	case '[': // CSI: parameters then a final byte in @-~
		j := i + 2
		for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
			j++
		}
		return j
	case ']': // OSC: terminated by BEL or ST
		j := i + 2
		for j < len(runes) {
			if runes[j] == 0x07 {
				return j
			}
			if runes[j] == 0x1b && j+1 < len(runes) && runes[j+1] == '\\' {
				return j + 1
			}
			j++
		}
		return j
	default: // two-byte sequence
		return i + 1
	}
}
