package kasiski

// Default and extended repeat length bounds.
const (
	DefaultMinLength  = 3
	DefaultMaxLength  = 10
	ExtendedMaxLength = 25
)

// Match is one repeated sequence: the first two occurrences of a substring
// at a given length.
type Match struct {
	Sequence   string `json:"sequence"`
	Length     int    `json:"length"`
	FirstPos   int    `json:"first_pos"`  // 0-based offset into the normalized text
	SecondPos  int    `json:"second_pos"` // always > FirstPos
	Gap        int    `json:"gap"`        // SecondPos - FirstPos
	Divisors   []int  `json:"divisors"`   // ascending divisors of Gap in [2, Gap]
	Confidence int    `json:"confidence"` // 0-100, set by Score
}

// Tier is the display band for a confidence score.
type Tier string

const (
	TierHigh    Tier = "high"
	TierMedium  Tier = "medium"
	TierLow     Tier = "low"
	TierVeryLow Tier = "very-low"
)

// TierOf maps a confidence score to its display band.
func TierOf(confidence int) Tier {
	switch {
	case confidence >= 80:
		return TierHigh
	case confidence >= 60:
		return TierMedium
	case confidence >= 40:
		return TierLow
	default:
		return TierVeryLow
	}
}
