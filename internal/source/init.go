package source

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// InitName returns the command name of PID 1, or "" when it cannot be read.
func InitName() string {
	if runtime.GOOS == "darwin" {
		return "launchd"
	}
	data, err := os.ReadFile("/proc/1/comm")
	if err != nil {
		return ""
	}
	return filepath.Base(strings.TrimSpace(string(data)))
}
