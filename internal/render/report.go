package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/suykerbuyk/repeatseq/internal/analysis"
	"github.com/suykerbuyk/repeatseq/internal/coincidence"
	"github.com/suykerbuyk/repeatseq/internal/keylength"
)

// Options selects what the terminal report shows.
type Options struct {
	Style    Style
	Sort     string
	Order    string
	Page     int
	PageSize int
	Hidden   map[int]bool // detection indexes to leave out of the table
}

// Format renders a full analysis result for terminal output.
func Format(res analysis.Result, opts Options) string {
	var b strings.Builder

	b.WriteString("repeatseq\n")

	n := len([]rune(res.NormalizedText))
	fmt.Fprintf(&b, "\nText (%s characters)\n", humanize.Comma(int64(n)))
	if n == 0 {
		b.WriteString("  (empty)\n")
	} else {
		b.WriteString(Highlight(res.NormalizedText, res.Matches, opts.Style))
		b.WriteString("\n")
	}

	b.WriteString("\nCipher type\n")
	b.WriteString(FormatCipherType(res.CipherType))

	rows := HideRows(Rows(res.Matches), opts.Hidden)
	rows = SortRows(rows, opts.Sort, opts.Order)
	fmt.Fprintf(&b, "\nRepeated sequences (%s)\n", humanize.Comma(int64(len(res.Matches))))
	if hidden := len(res.Matches) - len(rows); hidden > 0 {
		fmt.Fprintf(&b, "  %d hidden\n", hidden)
	}
	b.WriteString(FormatTable(rows, Paginate(len(rows), opts.Page, opts.PageSize)))

	b.WriteString("\nKey length hints\n")
	b.WriteString("  " + FormatHints(res.KeyLengthHints) + "\n")

	if len(res.Warnings) > 0 {
		b.WriteString("\nWarnings\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  ! %s\n", w)
		}
	}

	return b.String()
}

// FormatCipherType describes the IC classification.
func FormatCipherType(r coincidence.Result) string {
	if r.Type == coincidence.InsufficientData {
		return fmt.Sprintf("  Ciphertext too short for IC classification (%s letters, at least %d needed).\n  IC = %.4f\n",
			humanize.Comma(int64(r.TextLength)), coincidence.MinTextLength, r.IC)
	}

	var desc string
	switch r.Type {
	case coincidence.Monoalphabetic:
		desc = "monoalphabetic substitution or transposition likely"
	case coincidence.Polyalphabetic:
		desc = "polyalphabetic cipher likely (e.g. Vigenere); see key length hints"
	default:
		desc = "between the monoalphabetic and polyalphabetic ranges"
	}
	return fmt.Sprintf("  IC = %.4f over %s letters\n  %s (%s confidence)\n",
		r.IC, humanize.Comma(int64(r.TextLength)), desc, r.Tier)
}

// FormatHints renders ranked key length hints on one line.
func FormatHints(hints []keylength.Hint) string {
	if len(hints) == 0 {
		return "No common divisors found."
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		unit := "times"
		if h.Count == 1 {
			unit = "time"
		}
		parts[i] = fmt.Sprintf("length %d (%d %s)", h.Length, h.Count, unit)
	}
	return strings.Join(parts, ", ")
}

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
