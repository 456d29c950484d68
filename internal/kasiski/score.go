package kasiski

// Sub-score caps for confidence scoring.
const (
	maxLengthScore    = 40
	maxFrequencyScore = 25
	maxGapScore       = 20
	maxDivisorScore   = 15

	// Divisors outside this range are rarely useful key lengths.
	meaningfulDivisorMin = 3
	meaningfulDivisorMax = 20
)

// Score returns a copy of matches with Confidence filled in. The frequency
// signal counts Matches sharing the same sequence, so the whole set is
// needed. The input slice is not modified.
func Score(matches []Match) []Match {
	if matches == nil {
		return nil
	}

	freq := make(map[string]int, len(matches))
	for _, m := range matches {
		freq[m.Sequence]++
	}

	scored := make([]Match, len(matches))
	for i, m := range matches {
		m.Confidence = Confidence(m, freq[m.Sequence])
		scored[i] = m
	}
	return scored
}

// Confidence computes the 0-100 score of a single match given how many
// matches share its sequence.
func Confidence(m Match, freq int) int {
	score := LengthScore(m.Length) +
		FrequencyScore(freq) +
		GapScore(m.Gap) +
		DivisorScore(m.Divisors)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// LengthScore rewards longer repeats, which are less likely to be chance.
func LengthScore(length int) int {
	switch {
	case length >= 8:
		return maxLengthScore
	case length >= 5:
		return 25 + 5*(length-5)
	case length > 0:
		return 5 * length
	default:
		return 0
	}
}

// FrequencyScore rewards sequences reported by several matches.
func FrequencyScore(freq int) int {
	switch {
	case freq >= 3:
		return maxFrequencyScore
	case freq == 2:
		return 15
	case freq == 1:
		return 5
	default:
		return 0
	}
}

// GapScore rates how plausible a gap is as a multiple of a key length.
// Rules are checked in order and the first match wins: a gap of 50 scores
// 20 even though it also lies in [5, 200].
func GapScore(gap int) int {
	switch {
	case gap >= 10 && gap <= 100:
		return maxGapScore
	case gap >= 5 && gap <= 200:
		return 15
	case gap >= 3:
		return 10
	default:
		return 0
	}
}

// DivisorScore counts divisors in the meaningful key-length range.
func DivisorScore(divisors []int) int {
	n := 0
	for _, d := range divisors {
		if d >= meaningfulDivisorMin && d <= meaningfulDivisorMax {
			n++
		}
	}
	switch {
	case n >= 3:
		return maxDivisorScore
	case n == 2:
		return 10
	case n == 1:
		return 5
	default:
		return 0
	}
}
