package gauge

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/mwiater/gauge/internal/appconfig"
)

func TestRootCommandWiring(t *testing.T) {
	want := map[string]bool{
		"run":     false,
		"compare": false,
		"report":  false,
		"list":    false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("subcommand %q not registered", name)
		}
	}
}

func TestPersistentFlagsRegistered(t *testing.T) {
	for _, name := range []string{"config", "debug", "progress", "outputDir", "rawDir", "format", "timeout", "logFile"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("persistent flag %q not registered", name)
		}
	}
}

func TestViperKeysUnmarshalIntoConfig(t *testing.T) {
	v := viper.New()
	v.Set("timeout", 7)
	v.Set("outputDir", "custom-results")
	v.Set("format", "csv")

	var cfg appconfig.Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if cfg.Timeout != 7 {
		t.Fatalf("timeout = %d, want 7", cfg.Timeout)
	}
	if got := cfg.RunTimeout(); got != 7*time.Second {
		t.Fatalf("RunTimeout() = %s, want 7s", got)
	}
	if cfg.OutputDir != "custom-results" {
		t.Fatalf("outputDir = %q, want %q", cfg.OutputDir, "custom-results")
	}
	if cfg.Format != "csv" {
		t.Fatalf("format = %q, want %q", cfg.Format, "csv")
	}
}
