// internal/result/env.go
package result

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/google/uuid"
)

// EnvironmentInfo describes the machine and build a benchmark ran on.
// Every field is optional; presence is informational only.
type EnvironmentInfo struct {
	GoVersion   string            `json:"go_version,omitempty"`
	Platform    string            `json:"platform,omitempty"`
	CPUCores    int               `json:"cpu_cores,omitempty"`
	TotalMemory uint64            `json:"total_memory,omitempty"`
	GitCommit   string            `json:"git_commit,omitempty"`
	RunID       string            `json:"run_id,omitempty"`
	Custom      map[string]string `json:"custom,omitempty"`
}

// CollectEnvironment gathers what the Go runtime can report about the
// current process and stamps a fresh run identifier.
func CollectEnvironment() EnvironmentInfo {
	info := EnvironmentInfo{
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
		CPUCores:  runtime.NumCPU(),
		RunID:     uuid.NewString(),
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range build.Settings {
			if setting.Key == "vcs.revision" {
				info.GitCommit = setting.Value
				break
			}
		}
	}
	return info
}
