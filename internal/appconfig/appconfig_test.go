package appconfig

import (
	"testing"
	"time"

	"github.com/mwiater/gauge/internal/store"
)

func TestResolvedDirsFallBackToDefaults(t *testing.T) {
	var cfg Config
	if got := cfg.ResolvedOutputDir(); got != store.DefaultOutputDir {
		t.Fatalf("output dir: %q", got)
	}
	if got := cfg.ResolvedRawDir(); got != store.DefaultRawDir {
		t.Fatalf("raw dir: %q", got)
	}

	cfg = Config{OutputDir: "out", RawDir: "out/raw"}
	if got := cfg.ResolvedOutputDir(); got != "out" {
		t.Fatalf("configured output dir: %q", got)
	}
	if got := cfg.ResolvedRawDir(); got != "out/raw" {
		t.Fatalf("configured raw dir: %q", got)
	}
}

func TestRunTimeout(t *testing.T) {
	cases := map[int]time.Duration{
		0:   300 * time.Second,
		-5:  300 * time.Second,
		30:  30 * time.Second,
		600: 600 * time.Second,
	}
	for seconds, want := range cases {
		cfg := Config{Timeout: seconds}
		if got := cfg.RunTimeout(); got != want {
			t.Fatalf("RunTimeout(%d) = %v, want %v", seconds, got, want)
		}
	}
}
