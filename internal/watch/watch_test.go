package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/suykerbuyk/repeatseq/internal/analysis"
	"github.com/suykerbuyk/repeatseq/internal/config"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cipher.txt")
	os.WriteFile(path, []byte("abc xyz abc"), 0o644)

	res, err := Run(path, config.DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.NormalizedText != "ABCXYZABC" {
		t.Errorf("NormalizedText = %q", res.NormalizedText)
	}
	if len(res.Matches) != 1 || res.Matches[0].Gap != 6 {
		t.Errorf("Matches = %+v, want one ABC match with gap 6", res.Matches)
	}
}

func TestWatch_MissingFile(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), config.DefaultConfig(),
		func(string, analysis.Result) { t.Error("handler called for missing file") })
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatch_Rerun(t *testing.T) {
	old := Debounce
	Debounce = 10 * time.Millisecond
	defer func() { Debounce = old }()

	dir := t.TempDir()
	path := filepath.Join(dir, "cipher.txt")
	os.WriteFile(path, []byte("ABCXYZABC"), 0o644)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan analysis.Result, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, config.DefaultConfig(), func(_ string, res analysis.Result) {
			results <- res
		})
	}()

	first := waitResult(t, results)
	if first.NormalizedText != "ABCXYZABC" {
		t.Fatalf("first run text = %q", first.NormalizedText)
	}

	// an unrelated file in the same directory is ignored
	os.WriteFile(filepath.Join(dir, "other.txt"), []byte("QQQQ"), 0o644)

	// the watcher may attach just after the first run; keep writing until seen
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		os.WriteFile(path, []byte("DEFGHDEFGH"), 0o644)
		select {
		case res := <-results:
			if res.NormalizedText != "DEFGHDEFGH" {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-tick.C:
		case <-deadline:
			t.Fatal("timed out waiting for re-analysis")
		}
	}
}

func waitResult(t *testing.T, ch <-chan analysis.Result) analysis.Result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for analysis")
		return analysis.Result{}
	}
}
