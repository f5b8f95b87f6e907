package utils

import (
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory the running binary lives in.
// The config file and the log file are both resolved relative to it, so
// the tool behaves the same no matter which working directory the job
// runner launches it from. Falls back to "." if the executable path
// cannot be determined.
func ExecutableDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(execPath)
}
