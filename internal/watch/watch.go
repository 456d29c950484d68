// Package watch re-runs the analysis whenever a ciphertext file changes on
// disk.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/suykerbuyk/repeatseq/internal/analysis"
	"github.com/suykerbuyk/repeatseq/internal/config"
	"github.com/suykerbuyk/repeatseq/internal/ingest"
)

// Debounce is how long the watcher waits after the last write before it
// re-reads the file. Editors often save in several writes.
var Debounce = 150 * time.Millisecond

// Handler receives the result of every completed run.
type Handler func(path string, res analysis.Result)

// Run reads path once and analyzes it with cfg.
func Run(path string, cfg config.Config) (analysis.Result, error) {
	text, err := ingest.Read(path)
	if err != nil {
		return analysis.Result{}, err
	}
	return analysis.Analyze(cfg.Request(text)), nil
}

// Watch analyzes path once, then again after every write to it, until ctx
// is cancelled. The parent directory is watched so that editors replacing
// the file through a rename are still seen. A failing first read is
// returned; later read failures are logged and the watch continues.
func Watch(ctx context.Context, path string, cfg config.Config, fn Handler) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	res, err := Run(abs, cfg)
	if err != nil {
		return err
	}
	fn(path, res)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(Debounce)
			} else {
				timer.Reset(Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			res, err := Run(abs, cfg)
			if err != nil {
				log.Printf("watch: %v", err)
				continue
			}
			fn(path, res)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}
