// internal/logging/logging.go
// Package logging routes suite output to stdout and, when configured,
// mirrors it into a log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init points the standard logger at stdout plus the optional log file.
// An empty path logs to stdout only. Parent directories are created as
// needed.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, restoring stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// Infof logs a formatted informational message.
func Infof(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...any) {
	log.Println("WARN: " + fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	log.Println("ERROR: " + fmt.Sprintf(format, args...))
}
