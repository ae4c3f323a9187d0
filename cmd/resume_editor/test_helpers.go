package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_editor binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_editor"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_editor ./cmd/resume_editor'", binaryPath)
	}

	return binaryPath
}

// cliCommand prepares the binary to run against an isolated file store in dataDir.
func cliCommand(t *testing.T, dataDir string, args ...string) *exec.Cmd {
	binaryPath := getBinaryPath(t)

	full := append([]string{"--store", "file", "--data-dir", dataDir}, args...)
	cmd := exec.Command(binaryPath, full...)
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=")
	return cmd
}

// runCLI returns stdout and stderr combined.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	output, err := cliCommand(t, dataDir, args...).CombinedOutput()
	return string(output), err
}

// runCLIStdout returns stdout only, for commands that print JSON.
func runCLIStdout(t *testing.T, dataDir string, args ...string) (string, error) {
	output, err := cliCommand(t, dataDir, args...).Output()
	return string(output), err
}
