// Package coincidence computes the Index of Coincidence of ciphertext and
// makes a coarse guess at the cipher family from it.
//
// The thresholds come from English letter statistics: plain English and
// monoalphabetic substitutions sit near 0.066, uniformly random letters near
// 0.038. The guess is a heuristic, not proof.
package coincidence

import "github.com/suykerbuyk/repeatseq/internal/normalize"

// Type is the cipher-family hypothesis.
type Type string

const (
	InsufficientData Type = "insufficient_data"
	Monoalphabetic   Type = "monoalphabetic"
	Polyalphabetic   Type = "polyalphabetic"
	Uncertain        Type = "uncertain"
)

// Tier is how much weight the hypothesis deserves.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Classification thresholds.
const (
	MinTextLength = 100

	monoThreshold     = 0.060
	monoHighThreshold = 0.065
	polyThreshold     = 0.045
	polyHighThreshold = 0.040
)

// Result is the classifier output.
type Result struct {
	IC         float64 `json:"ic"`
	Type       Type    `json:"type"`
	Tier       Tier    `json:"confidence_tier"`
	TextLength int     `json:"text_length"` // letters counted
}

// IC returns sum(n_i*(n_i-1)) / (N*(N-1)) over the A-Z letters of text.
// Fewer than two letters yields 0.
func IC(text string) float64 {
	ic, _ := indexOfCoincidence(text)
	return ic
}

// Classify computes the IC of text and maps it to a cipher-family guess.
// It never fails; empty text is reported as insufficient data.
func Classify(text string) Result {
	ic, n := indexOfCoincidence(text)
	r := Result{IC: ic, TextLength: n}

	switch {
	case n < MinTextLength:
		r.Type, r.Tier = InsufficientData, TierLow
	case ic > monoThreshold:
		r.Type, r.Tier = Monoalphabetic, TierMedium
		if ic > monoHighThreshold {
			r.Tier = TierHigh
		}
	case ic < polyThreshold:
		r.Type, r.Tier = Polyalphabetic, TierMedium
		if ic < polyHighThreshold {
			r.Tier = TierHigh
		}
	default:
		r.Type, r.Tier = Uncertain, TierMedium
	}
	return r
}

func indexOfCoincidence(text string) (float64, int) {
	var counts [26]int
	n := 0
	for i := 0; i < len(text); i++ {
		if c := rune(text[i]); normalize.IsLetter(c) {
			counts[c-'A']++
			n++
		}
	}
	if n < 2 {
		return 0, n
	}

	sum := 0
	for _, f := range counts {
		sum += f * (f - 1)
	}
	return float64(sum) / (float64(n) * float64(n-1)), n
}
