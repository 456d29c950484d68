// Package analysis is the single entry point of the Kasiski engine. Analyze
// runs normalization, repeat detection, scoring, IC classification and key
// length aggregation, and returns one immutable Result per call.
package analysis

import (
	"unicode/utf8"

	"github.com/suykerbuyk/repeatseq/internal/coincidence"
	"github.com/suykerbuyk/repeatseq/internal/kasiski"
	"github.com/suykerbuyk/repeatseq/internal/keylength"
	"github.com/suykerbuyk/repeatseq/internal/normalize"
)

// Request is the input of one analysis run.
type Request struct {
	Text          string
	MinLen        int
	MaxLen        int
	IgnoreSymbols bool

	HideShortKeyCandidates bool
	HideLongKeyCandidates  bool
	ShortKeyMax            int // 0 means keylength.DefaultShortMax
	LongKeyMin             int // 0 means keylength.DefaultLongMin

	// ParallelThreshold is the normalized text length from which lengths
	// are scanned concurrently. 0 disables parallel scanning.
	ParallelThreshold int
}

// DefaultRequest returns a request for text with the default bounds.
func DefaultRequest(text string) Request {
	return Request{
		Text:          text,
		MinLen:        kasiski.DefaultMinLength,
		MaxLen:        kasiski.DefaultMaxLength,
		IgnoreSymbols: true,
		ShortKeyMax:   keylength.DefaultShortMax,
		LongKeyMin:    keylength.DefaultLongMin,
	}
}

// Result is the snapshot produced by one run. Callers must treat it as
// read-only; a new run replaces it wholesale.
type Result struct {
	NormalizedText string             `json:"normalized_text"`
	Matches        []kasiski.Match    `json:"matches"`
	CipherType     coincidence.Result `json:"cipher_type"`
	KeyLengthHints []keylength.Hint   `json:"key_length_hints"`
	Warnings       []string           `json:"warnings"`
}

// Analyze runs the whole engine over req. It never fails: degenerate input
// produces an empty match list and an insufficient_data classification.
func Analyze(req Request) Result {
	text := normalize.Text(req.Text, req.IgnoreSymbols)

	var found []kasiski.Match
	if req.ParallelThreshold > 0 && utf8.RuneCountInString(text) >= req.ParallelThreshold {
		found = kasiski.FindRepeatsParallel(text, req.MinLen, req.MaxLen, 0)
	} else {
		found = kasiski.FindRepeats(text, req.MinLen, req.MaxLen)
	}

	matches := kasiski.Score(found)
	if matches == nil {
		matches = []kasiski.Match{}
	}

	summary := keylength.Aggregate(matches, keylength.Filter{
		HideShort: req.HideShortKeyCandidates,
		HideLong:  req.HideLongKeyCandidates,
		ShortMax:  req.ShortKeyMax,
		LongMin:   req.LongKeyMin,
	})
	warnings := summary.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return Result{
		NormalizedText: text,
		Matches:        matches,
		CipherType:     coincidence.Classify(text),
		KeyLengthHints: summary.Hints,
		Warnings:       warnings,
	}
}
