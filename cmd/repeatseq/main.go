package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/suykerbuyk/repeatseq/internal/analysis"
	"github.com/suykerbuyk/repeatseq/internal/check"
	"github.com/suykerbuyk/repeatseq/internal/config"
	"github.com/suykerbuyk/repeatseq/internal/help"
	"github.com/suykerbuyk/repeatseq/internal/ingest"
	"github.com/suykerbuyk/repeatseq/internal/render"
	"github.com/suykerbuyk/repeatseq/internal/watch"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("repeatseq: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, help.FormatUsage(help.TopLevel, help.Subcommands))
		os.Exit(1)
	}

	name, args := os.Args[1], os.Args[2:]
	if hasHelpFlag(args) {
		if c, ok := help.Lookup(name); ok {
			fmt.Print(help.FormatTerminal(c))
			return
		}
	}

	switch name {
	case "analyze":
		runAnalyze(args)

	case "watch":
		runWatch(args)

	case "check":
		cfg, err := config.Load()
		report := check.Run(cfg, err)
		fmt.Print(report.Format())
		if report.HasFailures() {
			os.Exit(1)
		}

	case "init-config":
		path, created, err := config.WriteDefault()
		if err != nil {
			fatal("%v", err)
		}
		if created {
			fmt.Printf("created %s\n", config.CompressHome(path))
		} else {
			fmt.Printf("%s already exists (unchanged)\n", config.CompressHome(path))
		}

	case "version":
		fmt.Printf("repeatseq %s\n", help.Version)

	case "help", "--help", "-h":
		if len(args) > 0 {
			c, ok := help.Lookup(args[0])
			if !ok {
				fatal("unknown command: %s", args[0])
			}
			fmt.Print(help.FormatTerminal(c))
			return
		}
		fmt.Print(help.FormatUsage(help.TopLevel, help.Subcommands))

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", name)
		fmt.Fprint(os.Stderr, help.FormatUsage(help.TopLevel, help.Subcommands))
		os.Exit(1)
	}
}

func runAnalyze(args []string) {
	cfg := mustLoadConfig()
	opts, err := parseArgs(args, &cfg)
	if err != nil {
		fatal("analyze: %v", err)
	}
	if (opts.path == "" || opts.path == "-") && isatty.IsTerminal(os.Stdin.Fd()) {
		fatal("analyze: no input (pass a file or pipe ciphertext on stdin)")
	}

	text, err := ingest.Read(opts.path)
	if err != nil {
		fatal("analyze: %v", err)
	}
	res := analysis.Analyze(cfg.Request(text))

	if opts.json {
		if err := render.WriteJSON(os.Stdout, res); err != nil {
			fatal("%v", err)
		}
		return
	}
	fmt.Print(render.Format(res, reportOptions(cfg, opts)))
}

func runWatch(args []string) {
	cfg := mustLoadConfig()
	opts, err := parseArgs(args, &cfg)
	if err != nil {
		fatal("watch: %v", err)
	}
	if opts.path == "" || opts.path == "-" {
		fatal("usage: repeatseq watch <file>")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ropts := reportOptions(cfg, opts)
	err = watch.Watch(ctx, opts.path, cfg, func(path string, res analysis.Result) {
		fmt.Printf("\n== %s  %s ==\n\n", path, time.Now().Format("15:04:05"))
		fmt.Print(render.Format(res, ropts))
	})
	if err != nil {
		fatal("watch: %v", err)
	}
}

func reportOptions(cfg config.Config, opts options) render.Options {
	return render.Options{
		Style:    render.NewStyle(cfg.Display.Theme, cfg.Display.Color, os.Stdout),
		Sort:     cfg.Display.Sort,
		Order:    cfg.Display.Order,
		Page:     opts.page,
		PageSize: cfg.Display.PageSize,
		Hidden:   opts.hidden,
	}
}

func mustLoadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}
	return cfg
}

func hasHelpFlag(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "repeatseq: "+format+"\n", args...)
	os.Exit(1)
}
