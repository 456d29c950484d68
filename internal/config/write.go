package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the repeatseq config directory path.
// Uses $XDG_CONFIG_HOME/repeatseq if set, otherwise ~/.config/repeatseq.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "repeatseq")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "repeatseq")
}

const defaultTOML = `[analysis]
min_length = 3
max_length = 10
extended = false          # raise max_length to 25
ignore_symbols = true     # drop everything outside A-Z before scanning
parallel_threshold = 4096 # scan lengths concurrently from this many characters; 0 disables

[hints]
hide_short = false
hide_long = false
short_max = 3
long_min = 20

[display]
theme = "dark"            # dark | light
color = "auto"            # auto | always | never
page_size = 20
sort = "length"           # sequence | length | first | second | gap | confidence
order = "desc"
`

// WriteDefault writes a default config.toml. Returns the config file path
// and whether it was created; an existing file is left untouched.
func WriteDefault() (string, bool, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultTOML), 0o644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}

	return path, true, nil
}

// CompressHome replaces $HOME prefix with ~/ for display.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
