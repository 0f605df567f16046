package service

import (
	"os"
	"strconv"
	"strings"
	"syscall"
)

// ReadPidFile reads a process id from the first line of a pid file.
// Returns (0, false) if the file is missing or does not hold a pid.
// Postgres-style pid files carry additional lines after the pid; only the
// first line is consulted.
func ReadPidFile(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	line, _, _ := strings.Cut(string(data), "\n")
	pid, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// ProcessRunning checks if a process with the given pid is running.
// Uses signal 0 to probe without affecting the process.
func ProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}

	// ESRCH means the process doesn't exist
	if err == syscall.ESRCH {
		return false
	}

	// Other errors (like EPERM) mean the process exists but we can't signal it
	return true
}
