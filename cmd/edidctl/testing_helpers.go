package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/edidkit/internal/config"
	"github.com/joshuapare/edidkit/internal/testutil"
)

// writeExport writes a registry export holding edid for the test monitor
// and returns its path.
func writeExport(t *testing.T, edid []byte) string {
	t.Helper()
	return testutil.WriteTemp(t, "monitor.reg", testutil.MonitorExport(testutil.DevicePath, edid).Bytes())
}

// resetFlags restores every command flag and the config to defaults.
func resetFlags(t *testing.T) {
	t.Helper()
	quiet, verbose, jsonOut, noColor = false, false, false, false
	configPath, devicePath, inputEncoding = "", "", ""
	cfg = config.Default()

	applyEdit.reset()
	applyOutput.reset()
	applyRemoval = false
	removeOutput.reset()
	hexEdit.reset()
	hexString, hexCopy, hexQR = false, false, ""
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

	// Drain concurrently so large outputs cannot block the writer.
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

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
