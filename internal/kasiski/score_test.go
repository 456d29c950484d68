package kasiski

import (
	"reflect"
	"testing"
)

func TestDivisors(t *testing.T) {
	tests := []struct {
		gap  int
		want []int
	}{
		{-3, []int{}},
		{0, []int{}},
		{1, []int{}},
		{2, []int{2}},
		{6, []int{2, 3, 6}},
		{7, []int{7}},
		{15, []int{3, 5, 15}},
		{60, []int{2, 3, 4, 5, 6, 10, 12, 15, 20, 30, 60}},
	}
	for _, tt := range tests {
		got := Divisors(tt.gap)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Divisors(%d) = %v, want %v", tt.gap, got, tt.want)
		}
	}
}

func TestLengthScore(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 5}, {3, 15}, {4, 20}, {5, 25}, {6, 30}, {7, 35}, {8, 40}, {12, 40}, {25, 40},
	}
	for _, tt := range tests {
		if got := LengthScore(tt.length); got != tt.want {
			t.Errorf("LengthScore(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestFrequencyScore(t *testing.T) {
	tests := []struct {
		freq int
		want int
	}{
		{0, 0}, {1, 5}, {2, 15}, {3, 25}, {10, 25},
	}
	for _, tt := range tests {
		if got := FrequencyScore(tt.freq); got != tt.want {
			t.Errorf("FrequencyScore(%d) = %d, want %d", tt.freq, got, tt.want)
		}
	}
}

func TestGapScore_RuleOrder(t *testing.T) {
	tests := []struct {
		gap  int
		want int
	}{
		{1, 0}, {2, 0}, {3, 10}, {4, 10},
		{5, 15}, {9, 15},
		{10, 20}, {50, 20}, {100, 20},
		{101, 15}, {200, 15},
		{201, 10}, {5000, 10},
	}
	for _, tt := range tests {
		if got := GapScore(tt.gap); got != tt.want {
			t.Errorf("GapScore(%d) = %d, want %d", tt.gap, got, tt.want)
		}
	}
}

func TestDivisorScore(t *testing.T) {
	tests := []struct {
		divisors []int
		want     int
	}{
		{nil, 0},
		{[]int{2}, 0},
		{[]int{2, 22}, 0},
		{[]int{3}, 5},
		{[]int{2, 3, 6}, 10},
		{[]int{3, 5, 15}, 15},
		{Divisors(60), 15},
		{[]int{2, 21, 42}, 0},
	}
	for _, tt := range tests {
		if got := DivisorScore(tt.divisors); got != tt.want {
			t.Errorf("DivisorScore(%v) = %d, want %d", tt.divisors, got, tt.want)
		}
	}
}

func TestConfidence_FullScore(t *testing.T) {
	m := Match{Sequence: "ABCDEFGH", Length: 8, Gap: 60, Divisors: Divisors(60)}
	if got := Confidence(m, 3); got != 100 {
		t.Errorf("Confidence = %d, want 100", got)
	}
	if got := Confidence(m, 2); got != 90 {
		t.Errorf("Confidence with freq 2 = %d, want 90", got)
	}
}

func TestConfidence_ClampsAt100(t *testing.T) {
	m := Match{Length: 40, Gap: 60, Divisors: Divisors(60)}
	if got := Confidence(m, 1000); got > 100 || got < 0 {
		t.Errorf("Confidence = %d, want within [0,100]", got)
	}
}

func TestScore_ABC(t *testing.T) {
	matches := Score(FindRepeats("ABCXYZABC", 3, 10))
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	// length 3 -> 15, freq 1 -> 5, gap 6 -> 15, divisors {3,6} -> 10
	if matches[0].Confidence != 45 {
		t.Errorf("confidence = %d, want 45", matches[0].Confidence)
	}
	if TierOf(matches[0].Confidence) != TierLow {
		t.Errorf("tier = %s, want low", TierOf(matches[0].Confidence))
	}
}

func TestScore_FrequencyFromMatchSet(t *testing.T) {
	in := []Match{
		{Sequence: "QQQ", Length: 3, Gap: 1},
		{Sequence: "QQQ", Length: 3, Gap: 1},
		{Sequence: "ZZZ", Length: 3, Gap: 1},
	}
	out := Score(in)
	// 15 (length) + 15 (freq 2) + 0 + 0
	if out[0].Confidence != 30 || out[1].Confidence != 30 {
		t.Errorf("shared sequence confidence = %d/%d, want 30", out[0].Confidence, out[1].Confidence)
	}
	if out[2].Confidence != 20 {
		t.Errorf("single sequence confidence = %d, want 20", out[2].Confidence)
	}
	if in[0].Confidence != 0 {
		t.Error("Score modified its input")
	}
}

func TestScore_Nil(t *testing.T) {
	if got := Score(nil); got != nil {
		t.Errorf("Score(nil) = %v, want nil", got)
	}
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{100, TierHigh}, {80, TierHigh},
		{79, TierMedium}, {60, TierMedium},
		{59, TierLow}, {40, TierLow},
		{39, TierVeryLow}, {0, TierVeryLow},
	}
	for _, tt := range tests {
		if got := TierOf(tt.score); got != tt.want {
			t.Errorf("TierOf(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
