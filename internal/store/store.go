// internal/store/store.go
// Package store persists benchmark results to disk and loads them back.
// Only the JSON array format round-trips; CSV is a write-only
// projection.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mwiater/gauge/internal/result"
)

const (
	// DefaultOutputDir is where timestamped result files are written.
	DefaultOutputDir = "gaugeData/results"
	// DefaultRawDir holds one JSON document per benchmark result.
	DefaultRawDir = "gaugeData/results/raw"

	timestampLayout = "20060102_150405"
)

// Format selects the on-disk encoding for a result collection.
type Format int

const (
	FormatJSON Format = iota
	FormatJSONPretty
	FormatCSV
)

// ParseFormat maps a CLI format name to a Format, defaulting to
// pretty-printed JSON for unknown names.
func ParseFormat(name string) Format {
	switch name {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	default:
		return FormatJSONPretty
	}
}

func (f Format) extension() string {
	if f == FormatCSV {
		return "csv"
	}
	return "json"
}

// SaveResults writes the collection to a timestamped file in dir and
// returns the path. The file appears atomically: data is written to a
// temp file first and renamed into place, so a failed write never
// leaves a truncated file behind.
func SaveResults(dir string, results []result.BenchmarkResult, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	filename := fmt.Sprintf("benchmark_results_%s.%s", time.Now().UTC().Format(timestampLayout), format.extension())
	path := filepath.Join(dir, filename)

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.Marshal(results)
	case FormatJSONPretty:
		data, err = json.MarshalIndent(results, "", "  ")
	case FormatCSV:
		data = encodeCSV(results)
	}
	if err != nil {
		return "", fmt.Errorf("serialize results: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// SaveRawResults writes one pretty JSON file per result into dir and
// returns the paths in result order.
func SaveRawResults(dir string, results []result.BenchmarkResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create raw output directory: %w", err)
	}

	timestamp := time.Now().UTC().Format(timestampLayout)
	paths := make([]string, 0, len(results))

	for _, r := range results {
		filename := fmt.Sprintf("%s_%s.json", SanitizeTargetID(r.TargetID), timestamp)
		path := filepath.Join(dir, filename)

		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("serialize result %s: %w", r.TargetID, err)
		}
		if err := writeFileAtomic(path, data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// LoadResults reads a JSON array of benchmark results from path. The
// payload is validated against the result schema before decoding so a
// malformed file fails with a descriptive error instead of a partially
// populated collection.
func LoadResults(path string) ([]result.BenchmarkResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	if err := validateResults(data); err != nil {
		return nil, fmt.Errorf("invalid results file %s: %w", path, err)
	}

	var results []result.BenchmarkResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decode results file %s: %w", path, err)
	}
	return results, nil
}

// ListResultFiles returns the sorted JSON result files under dir. A
// missing directory yields an empty list, not an error.
func ListResultFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// SanitizeTargetID makes a target identifier safe for use as a
// filename by replacing path separators and colons.
func SanitizeTargetID(id string) string {
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(id)
}

// encodeCSV renders one row per result. The status column uses the
// lowercase serialized form ("success"), matching the JSON encoding.
// Optional numerics are blank when absent; the error column is raw
// text and is not escaped, so embedded commas or newlines break
// parsing. Write-only projection.
func encodeCSV(results []result.BenchmarkResult) []byte {
	var b strings.Builder
	b.WriteString("target_id,status,duration_ms,throughput_ops_per_sec,memory_bytes,success_count,error_count,timestamp,error\n")

	for _, r := range results {
		fmt.Fprintf(&b, "%s,%s,%v,%s,%s,%s,%s,%s,%s\n",
			r.TargetID,
			r.Status,
			r.Metrics.DurationMS,
			formatFloatPtr(r.Metrics.ThroughputOpsPerSec),
			formatUintPtr(r.Metrics.MemoryBytes),
			formatUintPtr(r.Metrics.SuccessCount),
			formatUintPtr(r.Metrics.ErrorCount),
			r.Timestamp.Format(time.RFC3339),
			r.Error,
		)
	}
	return []byte(b.String())
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", *v)
}

func formatUintPtr(v *uint64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

// WriteFile writes data to path with the same temp-file-and-rename
// scheme used for result files, so report writes never leave a
// truncated file behind.
func WriteFile(path string, data []byte) error {
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temp file in the target directory
// and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gauge-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
