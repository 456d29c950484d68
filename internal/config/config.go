package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/suykerbuyk/repeatseq/internal/analysis"
	"github.com/suykerbuyk/repeatseq/internal/kasiski"
	"github.com/suykerbuyk/repeatseq/internal/keylength"
)

// Config holds all repeatseq configuration.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Hints    HintsConfig    `toml:"hints"`
	Display  DisplayConfig  `toml:"display"`

	// path of the file the config was read from; empty for defaults
	source string
}

type AnalysisConfig struct {
	MinLength         int  `toml:"min_length"`
	MaxLength         int  `toml:"max_length"`
	Extended          bool `toml:"extended"`
	IgnoreSymbols     bool `toml:"ignore_symbols"`
	ParallelThreshold int  `toml:"parallel_threshold"`
}

type HintsConfig struct {
	HideShort bool `toml:"hide_short"`
	HideLong  bool `toml:"hide_long"`
	ShortMax  int  `toml:"short_max"`
	LongMin   int  `toml:"long_min"`
}

type DisplayConfig struct {
	Theme    string `toml:"theme"`
	Color    string `toml:"color"`
	PageSize int    `toml:"page_size"`
	Sort     string `toml:"sort"`
	Order    string `toml:"order"`
}

// Accepted display values.
var (
	Themes     = []string{"dark", "light"}
	ColorModes = []string{"auto", "always", "never"}
	SortKeys   = []string{"sequence", "length", "first", "second", "gap", "confidence"}
	Orders     = []string{"asc", "desc"}
)

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			MinLength:         kasiski.DefaultMinLength,
			MaxLength:         kasiski.DefaultMaxLength,
			Extended:          false,
			IgnoreSymbols:     true,
			ParallelThreshold: 4096,
		},
		Hints: HintsConfig{
			ShortMax: keylength.DefaultShortMax,
			LongMin:  keylength.DefaultLongMin,
		},
		Display: DisplayConfig{
			Theme:    "dark",
			Color:    "auto",
			PageSize: 20,
			Sort:     "length",
			Order:    "desc",
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return DefaultConfig(), nil
}

// LoadFile decodes path over the defaults and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.source = path
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Source returns the file the config was loaded from, or "" for defaults.
func (c Config) Source() string {
	return c.source
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	a := c.Analysis
	if a.MinLength < 1 {
		return fmt.Errorf("analysis.min_length must be at least 1, got %d", a.MinLength)
	}
	if a.MaxLength < 1 {
		return fmt.Errorf("analysis.max_length must be at least 1, got %d", a.MaxLength)
	}
	if a.MinLength > c.EffectiveMaxLength() {
		return fmt.Errorf("analysis.min_length (%d) exceeds max length (%d)", a.MinLength, c.EffectiveMaxLength())
	}
	if a.ParallelThreshold < 0 {
		return fmt.Errorf("analysis.parallel_threshold must not be negative, got %d", a.ParallelThreshold)
	}
	if c.Hints.ShortMax < 0 || c.Hints.LongMin < 0 {
		return fmt.Errorf("hints thresholds must not be negative")
	}
	if c.Display.PageSize < 1 {
		return fmt.Errorf("display.page_size must be at least 1, got %d", c.Display.PageSize)
	}
	if err := oneOf("display.theme", c.Display.Theme, Themes); err != nil {
		return err
	}
	if err := oneOf("display.color", c.Display.Color, ColorModes); err != nil {
		return err
	}
	if err := oneOf("display.sort", c.Display.Sort, SortKeys); err != nil {
		return err
	}
	return oneOf("display.order", c.Display.Order, Orders)
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, "|"), value)
}

// EffectiveMaxLength is the upper repeat length, honoring extended mode.
func (c Config) EffectiveMaxLength() int {
	if c.Analysis.Extended && c.Analysis.MaxLength < kasiski.ExtendedMaxLength {
		return kasiski.ExtendedMaxLength
	}
	return c.Analysis.MaxLength
}

// Request builds an analysis request for text from the config.
func (c Config) Request(text string) analysis.Request {
	return analysis.Request{
		Text:                   text,
		MinLen:                 c.Analysis.MinLength,
		MaxLen:                 c.EffectiveMaxLength(),
		IgnoreSymbols:          c.Analysis.IgnoreSymbols,
		HideShortKeyCandidates: c.Hints.HideShort,
		HideLongKeyCandidates:  c.Hints.HideLong,
		ShortKeyMax:            c.Hints.ShortMax,
		LongKeyMin:             c.Hints.LongMin,
		ParallelThreshold:      c.Analysis.ParallelThreshold,
	}
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "repeatseq", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "repeatseq", "config.toml"))
	}

	return paths
}
