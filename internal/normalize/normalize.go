package normalize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Result holds the normalized text plus notices for anything removed.
type Result struct {
	// Text is the NFKC-folded, screened, whitespace-stripped input.
	Text string
	// Removed describes invisible or invalid sequences dropped from the
	// input, e.g. "zero-width character U+200B removed".
	Removed []string
}

// Normalize prepares raw input for detection. NFKC folding collapses
// full-width and compatibility forms so they cannot dodge patterns;
// zero-width, bidi-override, tag and control characters are removed so the
// output is always a sequence of printable characters.
func Normalize(input string) Result {
	folded := norm.NFKC.String(input)

	var (
		b       strings.Builder
		removed []string
	)
	b.Grow(len(folded))

	i := 0
	for i < len(folded) {
		r, size := utf8.DecodeRuneInString(folded[i:])

		if r == utf8.RuneError && size == 1 {
			removed = append(removed, fmt.Sprintf("invalid UTF-8 byte 0x%02X removed", folded[i]))
			i++
			continue
		}

		if label, drop := classifyRune(r); drop {
			removed = append(removed, fmt.Sprintf("%s U+%04X removed", label, r))
			i += size
			continue
		}

		b.WriteRune(r)
		i += size
	}

	return Result{
		Text:    strings.TrimSpace(b.String()),
		Removed: removed,
	}
}

// classifyRune reports whether a rune must be dropped, with a label for the
// removal notice. Newlines and tabs are ordinary whitespace and survive.
func classifyRune(r rune) (string, bool) {
	switch {
	case r == 0x200B || r == 0x200C || r == 0x200D || r == 0x2060 || r == 0xFEFF:
		return "zero-width character", true

	case (r >= 0x202A && r <= 0x202E) || (r >= 0x2066 && r <= 0x2069):
		return "bidi control character", true

	case r >= 0xE0000 && r <= 0xE007F:
		return "tag character", true

	case r == '\n' || r == '\t' || r == '\r':
		return "", false

	case unicode.IsControl(r):
		return "control character", true
	}

	return "", false
}
