package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suykerbuyk/repeatseq/internal/config"
)

// options are the per-invocation settings that are not part of the config.
type options struct {
	path   string
	json   bool
	page   int
	hidden map[int]bool
}

// parseArgs applies command-line flags on top of cfg and returns the rest.
// The result is validated the same way a config file is.
func parseArgs(args []string, cfg *config.Config) (options, error) {
	opts := options{page: 1}

	value := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s needs a value", flag)
		}
		return args[i+1], nil
	}
	intValue := func(i int, flag string) (int, error) {
		v, err := value(i, flag)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", flag, v)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		var err error
		switch a {
		case "--min":
			cfg.Analysis.MinLength, err = intValue(i, a)
			i++
		case "--max":
			cfg.Analysis.MaxLength, err = intValue(i, a)
			i++
		case "--page":
			opts.page, err = intValue(i, a)
			i++
		case "--sort":
			cfg.Display.Sort, err = value(i, a)
			i++
		case "--color":
			cfg.Display.Color, err = value(i, a)
			i++
		case "--hide":
			var v string
			if v, err = value(i, a); err == nil {
				opts.hidden, err = parseIndexList(v)
			}
			i++
		case "--extended":
			cfg.Analysis.Extended = true
		case "--keep-symbols":
			cfg.Analysis.IgnoreSymbols = false
		case "--hide-short":
			cfg.Hints.HideShort = true
		case "--hide-long":
			cfg.Hints.HideLong = true
		case "--asc":
			cfg.Display.Order = "asc"
		case "--desc":
			cfg.Display.Order = "desc"
		case "--json":
			opts.json = true
		default:
			if strings.HasPrefix(a, "--") {
				return opts, fmt.Errorf("unknown flag: %s", a)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument: %s", a)
			}
			opts.path = a
		}
		if err != nil {
			return opts, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseIndexList parses "1,4,7" into a set of row indexes.
func parseIndexList(s string) (map[int]bool, error) {
	set := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("--hide: %q is not a row index", part)
		}
		set[n] = true
	}
	return set, nil
}
