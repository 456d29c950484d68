package render

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Style controls how highlighted text is marked up.
type Style struct {
	Color bool
	Theme string // "dark" or "light"
}

const ansiReset = "\x1b[0m"

type palette struct {
	normal    string
	important string
}

var palettes = map[string]palette{
	"dark": {
		normal:    "\x1b[30;46m",   // black on cyan
		important: "\x1b[1;30;43m", // bold black on yellow
	},
	"light": {
		normal:    "\x1b[30;47m",   // black on light grey
		important: "\x1b[1;37;41m", // bold white on red
	},
}

func (s Style) palette() palette {
	if p, ok := palettes[s.Theme]; ok {
		return p
	}
	return palettes["dark"]
}

// NewStyle resolves a color mode ("auto", "always", "never") against f.
// Auto enables color only when f is a terminal and NO_COLOR is unset.
func NewStyle(theme, colorMode string, f *os.File) Style {
	s := Style{Theme: theme}
	switch colorMode {
	case "always":
		s.Color = true
	case "never":
		s.Color = false
	default:
		s.Color = f != nil && os.Getenv("NO_COLOR") == "" &&
			(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	return s
}
