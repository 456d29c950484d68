package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/suykerbuyk/repeatseq/internal/coincidence"
	"github.com/suykerbuyk/repeatseq/internal/kasiski"
	"github.com/suykerbuyk/repeatseq/internal/keylength"
)

func TestAnalyze_ABC(t *testing.T) {
	res := Analyze(DefaultRequest("ABCXYZABC"))

	if res.NormalizedText != "ABCXYZABC" {
		t.Errorf("NormalizedText = %q", res.NormalizedText)
	}
	if len(res.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(res.Matches))
	}
	m := res.Matches[0]
	if m.Sequence != "ABC" || m.Length != 3 || m.FirstPos != 0 || m.SecondPos != 6 || m.Gap != 6 {
		t.Errorf("match = %+v", m)
	}
	if !reflect.DeepEqual(m.Divisors, []int{2, 3, 6}) {
		t.Errorf("divisors = %v, want [2 3 6]", m.Divisors)
	}
	if m.Confidence != 45 {
		t.Errorf("confidence = %d, want 45", m.Confidence)
	}

	wantHints := []keylength.Hint{{Length: 2, Count: 1}, {Length: 3, Count: 1}, {Length: 6, Count: 1}}
	if !reflect.DeepEqual(res.KeyLengthHints, wantHints) {
		t.Errorf("hints = %v, want %v", res.KeyLengthHints, wantHints)
	}
	if len(res.Warnings) != 1 || res.Warnings[0] != keylength.ShortWarning(3) {
		t.Errorf("warnings = %q", res.Warnings)
	}
}

func TestAnalyze_ShortTextInsufficient(t *testing.T) {
	res := Analyze(DefaultRequest("XYZ"))
	if res.CipherType.Type != coincidence.InsufficientData {
		t.Errorf("type = %s, want insufficient_data", res.CipherType.Type)
	}
	if res.CipherType.TextLength != 3 {
		t.Errorf("text length = %d, want 3", res.CipherType.TextLength)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	res := Analyze(DefaultRequest(""))
	if res.Matches == nil || len(res.Matches) != 0 {
		t.Errorf("Matches = %v, want empty non-nil", res.Matches)
	}
	if res.KeyLengthHints == nil || len(res.KeyLengthHints) != 0 {
		t.Errorf("KeyLengthHints = %v, want empty non-nil", res.KeyLengthHints)
	}
	if res.Warnings == nil || len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want empty non-nil", res.Warnings)
	}
	if res.CipherType.Type != coincidence.InsufficientData || res.CipherType.IC != 0 {
		t.Errorf("CipherType = %+v", res.CipherType)
	}
}

func TestAnalyze_MinAboveMax(t *testing.T) {
	req := DefaultRequest("ABCXYZABC")
	req.MinLen, req.MaxLen = 6, 5
	res := Analyze(req)
	if len(res.Matches) != 0 {
		t.Errorf("expected no matches, got %+v", res.Matches)
	}
}

func TestAnalyze_LXFBounds(t *testing.T) {
	const text = "LXFOPVEFRNHRXYZLXFOPVEFRNHRYUL"
	tests := []struct {
		maxLen int
		want   bool
	}{
		{kasiski.DefaultMaxLength, false},
		{kasiski.ExtendedMaxLength, true},
	}
	for _, tt := range tests {
		req := DefaultRequest(text)
		req.MaxLen = tt.maxLen
		res := Analyze(req)

		found := false
		for _, m := range res.Matches {
			if m.Sequence == "LXFOPVEFRNHR" && m.Length == 12 {
				found = true
			}
		}
		if found != tt.want {
			t.Errorf("maxLen=%d: LXFOPVEFRNHR found = %v, want %v", tt.maxLen, found, tt.want)
		}
		if len(res.Matches) == 0 {
			t.Errorf("maxLen=%d: expected shorter repeats", tt.maxLen)
		}
	}
}

func TestAnalyze_IgnoreSymbols(t *testing.T) {
	req := DefaultRequest("abc xyz abc")
	res := Analyze(req)
	if res.NormalizedText != "ABCXYZABC" || len(res.Matches) != 1 || res.Matches[0].Gap != 6 {
		t.Errorf("stripped result = %q %+v", res.NormalizedText, res.Matches)
	}

	req.IgnoreSymbols = false
	res = Analyze(req)
	if res.NormalizedText != "ABC XYZ ABC" {
		t.Errorf("NormalizedText = %q, want %q", res.NormalizedText, "ABC XYZ ABC")
	}
	if len(res.Matches) != 1 || res.Matches[0].Gap != 8 {
		t.Errorf("retained result = %+v, want one match with gap 8", res.Matches)
	}
}

func TestAnalyze_HintFilters(t *testing.T) {
	req := DefaultRequest("ABCXYZABC")
	req.HideShortKeyCandidates = true
	res := Analyze(req)
	if !reflect.DeepEqual(res.KeyLengthHints, []keylength.Hint{{Length: 6, Count: 1}}) {
		t.Errorf("hints = %v, want [{6 1}]", res.KeyLengthHints)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("short warning should survive the filter, got %q", res.Warnings)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 5)
	req := DefaultRequest(text)
	a := Analyze(req)
	b := Analyze(req)
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical input differ")
	}
}

func TestAnalyze_ParallelThresholdSameResult(t *testing.T) {
	text := strings.Repeat("VIGENERECIPHERKEYLEMONATTACKATDAWN", 40)
	req := DefaultRequest(text)
	req.MaxLen = kasiski.ExtendedMaxLength
	seq := Analyze(req)

	req.ParallelThreshold = 10
	par := Analyze(req)
	if !reflect.DeepEqual(seq, par) {
		t.Error("parallel scan changed the result")
	}
}

func TestAnalyze_MatchInvariants(t *testing.T) {
	text := strings.Repeat("LXFOPVEFRNHRXYZ", 12) + "QWERTY"
	req := DefaultRequest(text)
	req.MaxLen = kasiski.ExtendedMaxLength
	res := Analyze(req)
	for _, m := range res.Matches {
		if m.FirstPos >= m.SecondPos || m.Gap < 1 || m.Gap != m.SecondPos-m.FirstPos {
			t.Fatalf("position invariant broken: %+v", m)
		}
		if m.Length < req.MinLen || m.Length > req.MaxLen {
			t.Fatalf("length %d outside bounds", m.Length)
		}
		if m.Confidence < 0 || m.Confidence > 100 {
			t.Fatalf("confidence %d out of range", m.Confidence)
		}
		for _, d := range m.Divisors {
			if m.Gap%d != 0 {
				t.Fatalf("%d does not divide %d", d, m.Gap)
			}
		}
	}
	if res.CipherType.IC < 0 || res.CipherType.IC > 1 {
		t.Errorf("IC = %v out of range", res.CipherType.IC)
	}
}
