package render

import (
	"strings"

	"github.com/suykerbuyk/repeatseq/internal/kasiski"
)

// ImportantLength is the repeat length from which a span is rendered with
// the important style.
const ImportantLength = 5

type mark int

const (
	markNone mark = iota
	markNormal
	markImportant
)

// Marks returns, for every character of text, the length of the longest
// match covering it (0 when uncovered). Both occurrences of every match
// are marked.
func Marks(text string, matches []kasiski.Match) []int {
	n := len([]rune(text))
	owner := make([]int, n)
	for _, m := range matches {
		for _, start := range [2]int{m.FirstPos, m.SecondPos} {
			for i := start; i < start+m.Length && i < n; i++ {
				if i >= 0 && m.Length > owner[i] {
					owner[i] = m.Length
				}
			}
		}
	}
	return owner
}

// Highlight marks every repeated span of text. Where matches overlap the
// longest one decides the style.
func Highlight(text string, matches []kasiski.Match, s Style) string {
	owner := Marks(text, matches)
	p := s.palette()

	open := func(b *strings.Builder, k mark) {
		switch {
		case k == markNone:
		case s.Color && k == markImportant:
			b.WriteString(p.important)
		case s.Color:
			b.WriteString(p.normal)
		case k == markImportant:
			b.WriteByte('[')
		default:
			b.WriteByte('(')
		}
	}
	closeMark := func(b *strings.Builder, k mark) {
		switch {
		case k == markNone:
		case s.Color:
			b.WriteString(ansiReset)
		case k == markImportant:
			b.WriteByte(']')
		default:
			b.WriteByte(')')
		}
	}

	var b strings.Builder
	cur := markNone
	i := 0
	for _, r := range text {
		k := markNone
		switch {
		case owner[i] >= ImportantLength:
			k = markImportant
		case owner[i] > 0:
			k = markNormal
		}
		if k != cur {
			closeMark(&b, cur)
			open(&b, k)
			cur = k
		}
		b.WriteRune(r)
		i++
	}
	closeMark(&b, cur)
	return b.String()
}
