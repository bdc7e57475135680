package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "gauge.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	Infof("hello %s", "world")
	Warnf("teardown failed for %s", "cache.lookup")
	Errorf("bad %s", "thing")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected Infof content, got: %s", content)
	}
	if !strings.Contains(content, "WARN: teardown failed for cache.lookup") {
		t.Fatalf("expected Warnf content, got: %s", content)
	}
	if !strings.Contains(content, "ERROR: bad thing") {
		t.Fatalf("expected Errorf content, got: %s", content)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	log.SetOutput(&buf)
	Infof("stdout only")
	if !strings.Contains(buf.String(), "stdout only") {
		t.Fatalf("log output: %s", buf.String())
	}
}

func TestCloseWithoutInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close without file: %v", err)
	}
}
