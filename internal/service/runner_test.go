package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeStub installs a fake executable into dir and returns its path.
func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("failed to write stub %s: %v", name, err)
	}
	return path
}

// stubPath prepends dir to PATH for the duration of the test.
func stubPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestLookToolNotFound(t *testing.T) {
	_, err := LookTool("definitely-not-a-real-tool-xyz")
	if err == nil {
		t.Fatal("LookTool() expected error for missing tool")
	}

	var notFound *ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("LookTool() error = %T, want *ToolNotFoundError", err)
	}
	if notFound.Tool != "definitely-not-a-real-tool-xyz" {
		t.Errorf("ToolNotFoundError.Tool = %q", notFound.Tool)
	}
}

func TestLookToolFound(t *testing.T) {
	binDir := t.TempDir()
	want := writeStub(t, binDir, "sometool", "exit 0\n")
	stubPath(t, binDir)

	got, err := LookTool("sometool")
	if err != nil {
		t.Fatalf("LookTool() error = %v", err)
	}
	if got != want {
		t.Errorf("LookTool() = %q, want %q", got, want)
	}
}

func TestRunSuccess(t *testing.T) {
	binDir := t.TempDir()
	marker := filepath.Join(binDir, "ran")
	writeStub(t, binDir, "oktool", fmt.Sprintf("echo \"$@\" > %s\nexit 0\n", marker))
	stubPath(t, binDir)

	if err := Run("oktool", "alpha", "beta"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("stub was not invoked: %v", err)
	}
	if got := string(data); got != "alpha beta\n" {
		t.Errorf("stub received args %q, want %q", got, "alpha beta\n")
	}
}

func TestRunFailure(t *testing.T) {
	binDir := t.TempDir()
	writeStub(t, binDir, "badtool", "exit 3\n")
	stubPath(t, binDir)

	err := Run("badtool")
	if err == nil {
		t.Fatal("Run() expected error for non-zero exit")
	}

	var notFound *ToolNotFoundError
	if errors.As(err, &notFound) {
		t.Error("non-zero exit should not be reported as tool-not-found")
	}
}

func TestRunToolNotFound(t *testing.T) {
	err := Run("definitely-not-a-real-tool-xyz")

	var notFound *ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Run() error = %v, want *ToolNotFoundError", err)
	}
}

func TestRunCaptured(t *testing.T) {
	binDir := t.TempDir()
	writeStub(t, binDir, "chatty", "echo out-line\necho err-line >&2\nexit 0\n")
	stubPath(t, binDir)

	stdout, stderr, err := RunCaptured("chatty")
	if err != nil {
		t.Fatalf("RunCaptured() error = %v", err)
	}
	if stdout != "out-line" {
		t.Errorf("stdout = %q, want %q", stdout, "out-line")
	}
	if stderr != "err-line" {
		t.Errorf("stderr = %q, want %q", stderr, "err-line")
	}
}

func TestRunCapturedFailureKeepsOutput(t *testing.T) {
	binDir := t.TempDir()
	writeStub(t, binDir, "failing", "echo diagnostic >&2\nexit 1\n")
	stubPath(t, binDir)

	_, stderr, err := RunCaptured("failing")
	if err == nil {
		t.Fatal("RunCaptured() expected error")
	}
	if stderr != "diagnostic" {
		t.Errorf("stderr = %q, want %q", stderr, "diagnostic")
	}
}
