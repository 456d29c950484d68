package check

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/suykerbuyk/repeatseq/internal/config"
	"github.com/suykerbuyk/repeatseq/internal/kasiski"
	"github.com/suykerbuyk/repeatseq/internal/render"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "repeatseq check\n\n  no checks ran\n"
	}

	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("repeatseq check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports which config file is in effect. loadErr is the error
// config.Load returned, if any.
func CheckConfig(cfg config.Config, loadErr error) Result {
	if loadErr != nil {
		return Result{Name: "config", Status: Fail, Detail: loadErr.Error()}
	}
	if src := cfg.Source(); src != "" {
		return Result{Name: "config", Status: Pass, Detail: config.CompressHome(src)}
	}
	cfgPath := filepath.Join(config.ConfigDir(), "config.toml")
	return Result{
		Name:   "config",
		Status: Pass,
		Detail: "defaults (" + config.CompressHome(cfgPath) + " not found)",
	}
}

// CheckLengths reports the repeat length range the analysis will scan.
func CheckLengths(cfg config.Config) Result {
	minLen, maxLen := cfg.Analysis.MinLength, cfg.EffectiveMaxLength()
	detail := fmt.Sprintf("repeats of %d to %d characters", minLen, maxLen)
	if cfg.Analysis.Extended {
		detail += " (extended)"
	}

	switch {
	case minLen > maxLen:
		return Result{Name: "lengths", Status: Fail, Detail: detail}
	case minLen < kasiski.DefaultMinLength:
		return Result{Name: "lengths", Status: Warn, Detail: detail + "; short repeats are mostly coincidence"}
	default:
		return Result{Name: "lengths", Status: Pass, Detail: detail}
	}
}

// CheckHints reports the key length warning thresholds and filters.
func CheckHints(h config.HintsConfig) Result {
	detail := fmt.Sprintf("short <= %d, long >= %d", h.ShortMax, h.LongMin)
	var hidden []string
	if h.HideShort {
		hidden = append(hidden, "short")
	}
	if h.HideLong {
		hidden = append(hidden, "long")
	}
	if len(hidden) > 0 {
		detail += ", hiding " + strings.Join(hidden, " and ")
	}

	if h.ShortMax >= h.LongMin {
		return Result{Name: "hints", Status: Warn, Detail: detail + "; ranges overlap"}
	}
	return Result{Name: "hints", Status: Pass, Detail: detail}
}

// CheckParallel reports when the analysis switches to the concurrent scan.
func CheckParallel(a config.AnalysisConfig) Result {
	if a.ParallelThreshold == 0 {
		return Result{Name: "parallel", Status: Pass, Detail: "disabled"}
	}
	return Result{
		Name:   "parallel",
		Status: Pass,
		Detail: fmt.Sprintf("from %s characters on %d CPUs",
			humanize.Comma(int64(a.ParallelThreshold)), runtime.GOMAXPROCS(0)),
	}
}

// CheckDisplay reports the theme and whether color will be used on out.
func CheckDisplay(d config.DisplayConfig, out *os.File) Result {
	s := render.NewStyle(d.Theme, d.Color, out)
	color := "off"
	if s.Color {
		color = "on"
	}
	return Result{
		Name:   "display",
		Status: Pass,
		Detail: fmt.Sprintf("%s theme, color %s (%s), %d rows per page, sorted by %s %s",
			d.Theme, color, d.Color, d.PageSize, d.Sort, d.Order),
	}
}

// Run executes all checks against the given config and returns a report.
func Run(cfg config.Config, loadErr error) Report {
	var results []Result

	results = append(results, CheckConfig(cfg, loadErr))
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	results = append(results, CheckLengths(cfg))
	results = append(results, CheckHints(cfg.Hints))
	results = append(results, CheckParallel(cfg.Analysis))
	results = append(results, CheckDisplay(cfg.Display, os.Stdout))

	return Report{Results: results}
}
