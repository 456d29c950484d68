package help

import "strings"

// Version is the repeatseq release version, set at build time via -ldflags.
// Defaults to "dev" when built without version injection (e.g. `go run`).
var Version = "dev"

// Flag describes a command-line flag.
type Flag struct {
	Name string // e.g. "--extended" or "--min <n>"
	Desc string
}

// Arg describes a positional argument.
type Arg struct {
	Name     string // e.g. "file"
	Desc     string
	Optional bool
}

// Command describes a repeatseq subcommand (or the top-level binary when Name is "").
type Command struct {
	Name        string   // "analyze", "watch", etc; "" for top-level
	Synopsis    string   // one-line description (lowercase, for --help header)
	Brief       string   // short description for usage table (capitalized)
	Usage       string   // full usage line
	TableUsage  string   // shortened usage for the top-level table (if different from Usage)
	Args        []Arg
	Flags       []Flag
	Description string   // multi-line prose (stored verbatim)
	Examples    []string // one per line, without leading 2-space indent
	SeeAlso     []string // man page cross-refs, e.g. "repeatseq(1)"
}

// tableUsage returns TableUsage if set, otherwise Usage.
func (c Command) tableUsage() string {
	if c.TableUsage != "" {
		return c.TableUsage
	}
	return c.Usage
}

// ManName returns the man page name: "repeatseq" for top-level,
// "repeatseq-<name>" for subcommands.
func (c Command) ManName() string {
	if c.Name == "" {
		return "repeatseq"
	}
	return "repeatseq-" + strings.ReplaceAll(c.Name, " ", "-")
}

// TopLevel is the top-level repeatseq command (used by FormatUsage).
var TopLevel = Command{
	Name:     "",
	Synopsis: "Kasiski examination and index of coincidence",
}

// analysisFlags are shared by analyze and watch.
var analysisFlags = []Flag{
	{Name: "--min <n>", Desc: "Shortest repeat length to search (default: 3)"},
	{Name: "--max <n>", Desc: "Longest repeat length to search (default: 10)"},
	{Name: "--extended", Desc: "Search repeats up to 25 characters"},
	{Name: "--keep-symbols", Desc: "Keep spaces, digits and punctuation in the text"},
	{Name: "--hide-short", Desc: "Hide key length hints of 3 or less"},
	{Name: "--hide-long", Desc: "Hide key length hints of 20 or more"},
	{Name: "--sort <column>", Desc: "Sort the table by sequence, length, first, second, gap or confidence"},
	{Name: "--asc", Desc: "Sort ascending instead of descending"},
	{Name: "--color <mode>", Desc: "Color output: auto, always or never"},
}

var CmdAnalyze = Command{
	Name:       "analyze",
	Synopsis:   "find repeated sequences and estimate the key length",
	Brief:      "Analyze a ciphertext file or stdin",
	Usage:      "repeatseq analyze [file | -] [flags]",
	TableUsage: "repeatseq analyze [file]",
	Args: []Arg{
		{Name: "file", Desc: "Ciphertext file, optionally .zst compressed (default: stdin)", Optional: true},
	},
	Flags: append(append([]Flag{}, analysisFlags...),
		Flag{Name: "--page <n>", Desc: "Show page n of the match table"},
		Flag{Name: "--hide <i,j>", Desc: "Hide table rows by index"},
		Flag{Name: "--json", Desc: "Print the full result as JSON"},
	),
	Description: `Normalizes the ciphertext to uppercase, strips everything but the
letters A-Z (unless --keep-symbols is given), and searches for every
substring that occurs at least twice. For each repeat it reports both
positions, the gap between them, the divisors of the gap, and a
confidence score from 0 to 100.

The index of coincidence of the letters gives a guess at the cipher
family: monoalphabetic near 0.066, polyalphabetic near 0.038. At least
100 letters are needed for a classification.

Divisors shared by many gaps are listed as key length hints. Warnings
point out very short or very long candidates.`,
	Examples: []string{
		"repeatseq analyze cipher.txt              Analyze a file",
		"repeatseq analyze --extended cipher.txt   Search repeats up to 25 characters",
		"cat cipher.txt | repeatseq analyze -      Read from stdin",
		"repeatseq analyze --json cipher.txt.zst   JSON output from a compressed file",
	},
	SeeAlso: []string{"repeatseq(1)", "repeatseq-watch(1)"},
}

var CmdWatch = Command{
	Name:     "watch",
	Synopsis: "re-analyze a file whenever it changes",
	Brief:    "Re-analyze a file on every save",
	Usage:    "repeatseq watch <file> [flags]",
	Args: []Arg{
		{Name: "file", Desc: "Ciphertext file to watch"},
	},
	Flags: analysisFlags,
	Description: `Analyzes the file once, then again after every write to it, and
prints the full report each time. Useful while transcribing or editing
a ciphertext. Read errors after the first run are logged and the watch
continues. Stop with Ctrl-C.`,
	Examples: []string{
		"repeatseq watch cipher.txt",
	},
	SeeAlso: []string{"repeatseq(1)", "repeatseq-analyze(1)"},
}

var CmdCheck = Command{
	Name:     "check",
	Synopsis: "validate configuration",
	Brief:    "Validate configuration",
	Usage:    "repeatseq check",
	Description: `Runs diagnostic checks and prints a pass/warn/FAIL report:
  - Config file location and validity
  - Repeat length range
  - Key length hint thresholds
  - Parallel scan threshold
  - Display settings

Exit code 0 if all checks pass or warn, 1 if any check fails.`,
	SeeAlso: []string{"repeatseq(1)", "repeatseq-init-config(1)"},
}

var CmdInitConfig = Command{
	Name:     "init-config",
	Synopsis: "write a default config file",
	Brief:    "Write a default config file",
	Usage:    "repeatseq init-config",
	Description: `Writes the default configuration to
~/.config/repeatseq/config.toml (or $XDG_CONFIG_HOME/repeatseq).
An existing file is left unchanged.`,
	SeeAlso: []string{"repeatseq(1)", "repeatseq-check(1)"},
}

var CmdVersion = Command{
	Name:     "version",
	Synopsis: "print version",
	Brief:    "Print version",
	Usage:    "repeatseq version",
	SeeAlso:  []string{"repeatseq(1)"},
}

// Subcommands is the ordered list of all subcommands.
var Subcommands = []Command{
	CmdAnalyze,
	CmdWatch,
	CmdCheck,
	CmdInitConfig,
	CmdVersion,
}

// Lookup returns the subcommand called name.
func Lookup(name string) (Command, bool) {
	for _, c := range Subcommands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}
