package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/joshuapare/nbtkit/internal/config"
)

// resetFlags restores every global flag to its default and disables color
// so output can be matched as plain text.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	color.NoColor = true
	configPath = ""
	logFile = ""
	logLevel = "info"

	rankTarget = ""
	deleteForce = false
	deleteBackup = true
	deleteLevel = 9
	deleteTarget = ""
	dumpPath = ""
	dumpDepth = 0

	t.Setenv(config.EnvVar, "")

	origStdin, origInteractive := stdin, interactive
	t.Cleanup(func() {
		stdin, interactive = origStdin, origInteractive
	})
	stdin = strings.NewReader("")
	interactive = func() bool { return false }
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
