package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/suykerbuyk/repeatseq/internal/kasiski"
)

// Row is a match with its position in detection order, which stays stable
// across sorting and hiding.
type Row struct {
	Index int
	kasiski.Match
}

// Rows wraps matches in detection order.
func Rows(matches []kasiski.Match) []Row {
	rows := make([]Row, len(matches))
	for i, m := range matches {
		rows[i] = Row{Index: i, Match: m}
	}
	return rows
}

// HideRows drops rows whose detection index is in hidden.
func HideRows(rows []Row, hidden map[int]bool) []Row {
	if len(hidden) == 0 {
		return rows
	}
	kept := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !hidden[r.Index] {
			kept = append(kept, r)
		}
	}
	return kept
}

// SortRows returns a sorted copy of rows. key is one of sequence, length,
// first, second, gap, confidence; order is "asc" or "desc". Equal keys keep
// detection order. Unknown keys leave the order unchanged.
func SortRows(rows []Row, key, order string) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)

	cmp := compareBy(key)
	if cmp == nil {
		return sorted
	}
	desc := order != "asc"
	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func compareBy(key string) func(a, b Row) int {
	ints := func(f func(Row) int) func(a, b Row) int {
		return func(a, b Row) int { return f(a) - f(b) }
	}
	switch key {
	case "sequence":
		return func(a, b Row) int {
			return strings.Compare(strings.ToLower(a.Sequence), strings.ToLower(b.Sequence))
		}
	case "length":
		return ints(func(r Row) int { return r.Length })
	case "first":
		return ints(func(r Row) int { return r.FirstPos })
	case "second":
		return ints(func(r Row) int { return r.SecondPos })
	case "gap":
		return ints(func(r Row) int { return r.Gap })
	case "confidence":
		return ints(func(r Row) int { return r.Confidence })
	default:
		return nil
	}
}

// Page is one window of a paginated table. Number and Pages are 1-based.
type Page struct {
	Number int
	Pages  int
	Start  int
	End    int // exclusive
	Total  int
}

// Paginate clamps page into range and returns the window over total rows.
func Paginate(total, page, size int) Page {
	if size < 1 {
		size = 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return Page{Number: page, Pages: pages, Start: start, End: end, Total: total}
}

// FormatTable renders the rows of page p as an aligned table. The page
// footer only appears when there is more than one page.
func FormatTable(rows []Row, p Page) string {
	var b strings.Builder

	if len(rows) == 0 {
		b.WriteString("  No repeated sequences found.\n")
		return b.String()
	}

	seqWidth := len("sequence")
	for _, r := range rows[p.Start:p.End] {
		if n := len([]rune(r.Sequence)); n > seqWidth {
			seqWidth = n
		}
	}

	fmt.Fprintf(&b, "  %4s  %-*s  %3s  %6s  %6s  %5s  %-12s  %s\n",
		"#", seqWidth, "sequence", "len", "first", "second", "gap", "confidence", "divisors")
	for _, r := range rows[p.Start:p.End] {
		pad := seqWidth - len([]rune(r.Sequence))
		conf := fmt.Sprintf("%3d %s", r.Confidence, kasiski.TierOf(r.Confidence))
		fmt.Fprintf(&b, "  %4d  %s%s  %3d  %6d  %6d  %5d  %-12s  %s\n",
			r.Index, r.Sequence, strings.Repeat(" ", pad), r.Length, r.FirstPos, r.SecondPos, r.Gap,
			conf, joinInts(r.Divisors))
	}

	if p.Pages > 1 {
		fmt.Fprintf(&b, "\n  page %d / %d (%d matches)\n", p.Number, p.Pages, p.Total)
	}
	return b.String()
}

func joinInts(vals []int) string {
	if len(vals) == 0 {
		return "-"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
