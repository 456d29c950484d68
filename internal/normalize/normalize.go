package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Text uppercases raw input and, when stripNonLetters is set, drops
// everything outside A-Z. Without stripping, non-letters stay in place
// and take part in substring comparison.
func Text(raw string, stripNonLetters bool) string {
	if raw == "" {
		return ""
	}

	upper := cases.Upper(language.Und).String(raw)
	if !stripNonLetters {
		return upper
	}
	return Letters(upper)
}

// IsLetter reports whether r is in the analysis alphabet A-Z.
func IsLetter(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// Letters returns only the A-Z characters of already normalized text.
func Letters(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if IsLetter(rune(text[i])) {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}
