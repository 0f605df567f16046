package service

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ToolNotFoundError indicates a required external executable is absent from PATH.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("'%s' not found in PATH", e.Tool)
}

// LookTool resolves an external tool on PATH.
func LookTool(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &ToolNotFoundError{Tool: name}
	}
	return path, nil
}

// Run invokes an external tool with the given arguments, inheriting stdio.
// Returns a ToolNotFoundError if the tool is not on PATH, or a wrapped error
// if the tool could not be spawned or exited non-zero.
func Run(name string, args ...string) error {
	bin, err := LookTool(name)
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
		}
		return fmt.Errorf("failed to execute %s (%s): %w", name, bin, err)
	}
	return nil
}

// RunCaptured invokes an external tool capturing its stdout and stderr,
// for tools that daemonize and report startup problems on the console.
func RunCaptured(name string, args ...string) (stdout, stderr string, err error) {
	bin, err := LookTool(name)
	if err != nil {
		return "", "", err
	}

	cmd := exec.Command(bin, args...)
	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stdout = strings.TrimSpace(outBuf.String())
	stderr = strings.TrimSpace(errBuf.String())

	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); ok {
			return stdout, stderr, fmt.Errorf("%s failed: %w", name, runErr)
		}
		return stdout, stderr, fmt.Errorf("failed to execute %s (%s): %w", name, bin, runErr)
	}
	return stdout, stderr, nil
}
