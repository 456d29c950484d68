package keylength

import (
	"fmt"
	"sort"

	"github.com/suykerbuyk/repeatseq/internal/kasiski"
)

// Default filter thresholds.
const (
	DefaultShortMax = 3
	DefaultLongMin  = 20
)

// Hint is a candidate key length and how many matches' divisor lists
// contain it.
type Hint struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Filter hides candidates from the ranked list. Zero thresholds fall back
// to DefaultShortMax and DefaultLongMin.
type Filter struct {
	HideShort bool
	HideLong  bool
	ShortMax  int // hide lengths <= ShortMax
	LongMin   int // hide lengths >= LongMin
}

// DefaultFilter hides nothing and uses the default thresholds.
func DefaultFilter() Filter {
	return Filter{ShortMax: DefaultShortMax, LongMin: DefaultLongMin}
}

func (f Filter) withDefaults() Filter {
	if f.ShortMax <= 0 {
		f.ShortMax = DefaultShortMax
	}
	if f.LongMin <= 0 {
		f.LongMin = DefaultLongMin
	}
	return f
}

// Summary holds the ranked hints and advisory warnings.
type Summary struct {
	Hints    []Hint   // filtered, ranked by count desc then length asc
	Warnings []string // computed from the unfiltered tally
}

// Tally counts every divisor of every match and ranks the results by count
// descending, ties broken by ascending length.
func Tally(matches []kasiski.Match) []Hint {
	counts := make(map[int]int)
	for _, m := range matches {
		for _, d := range m.Divisors {
			counts[d]++
		}
	}

	hints := make([]Hint, 0, len(counts))
	for length, count := range counts {
		hints = append(hints, Hint{Length: length, Count: count})
	}
	sort.Slice(hints, func(i, j int) bool {
		if hints[i].Count != hints[j].Count {
			return hints[i].Count > hints[j].Count
		}
		return hints[i].Length < hints[j].Length
	})
	return hints
}

// Aggregate tallies divisors, applies the filter to the displayed list, and
// warns about short or long candidates even when the filter hides them.
func Aggregate(matches []kasiski.Match, f Filter) Summary {
	f = f.withDefaults()
	all := Tally(matches)

	var s Summary
	s.Hints = make([]Hint, 0, len(all))
	var hasShort, hasLong bool
	for _, h := range all {
		short := h.Length <= f.ShortMax
		long := h.Length >= f.LongMin
		hasShort = hasShort || short
		hasLong = hasLong || long

		if (short && f.HideShort) || (long && f.HideLong) {
			continue
		}
		s.Hints = append(s.Hints, h)
	}

	if hasShort {
		s.Warnings = append(s.Warnings, ShortWarning(f.ShortMax))
	}
	if hasLong {
		s.Warnings = append(s.Warnings, LongWarning(f.LongMin))
	}
	return s
}

// ShortWarning is the advisory emitted when candidates <= max are present.
func ShortWarning(max int) string {
	return fmt.Sprintf("key length candidates <= %d present (short keys are often coincidental)", max)
}

// LongWarning is the advisory emitted when candidates >= min are present.
func LongWarning(min int) string {
	return fmt.Sprintf("key length candidates >= %d present (long keys need long ciphertext)", min)
}
