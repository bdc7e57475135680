// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"time"

	"github.com/mwiater/gauge/internal/store"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRunTimeout bounds a single benchmark's measured body when
	// the config omits a timeout.
	defaultRunTimeout = 300 * time.Second
)

// Config represents the top-level application configuration.
// Field names must match the viper keys they are unmarshaled from.
type Config struct {
	OutputDir string `json:"outputDir,omitempty"`
	RawDir    string `json:"rawDir,omitempty"`
	Format    string `json:"format,omitempty"`
	// Timeout is the per-benchmark deadline in seconds.
	Timeout    int    `json:"timeout,omitempty"`
	Debug      bool   `json:"debug"`
	Progress   bool   `json:"progress"`
	LogFile    string `json:"logFile,omitempty"`
	ConfigPath string `json:"-"`
}

// ResolvedOutputDir returns the configured output directory, falling
// back to the store default.
func (c Config) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return store.DefaultOutputDir
}

// ResolvedRawDir returns the configured raw-results directory, falling
// back to the store default.
func (c Config) ResolvedRawDir() string {
	if c.RawDir != "" {
		return c.RawDir
	}
	return store.DefaultRawDir
}

// RunTimeout returns the per-benchmark deadline, falling back to the
// default when unset.
func (c Config) RunTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultRunTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// LogFilePath returns the configured log file path, or empty for
// stdout-only logging.
func (c Config) LogFilePath() string {
	return c.LogFile
}
