package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gpuboot"
	"github.com/gogpu/gpuboot/window"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != gpuboot.DefaultConfig() {
		t.Errorf("parseConfig(nil) = %+v, want defaults", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"--width", "1024", "--title", "probe", "--backend", "noop",
		"--headless", "--frames", "5", "--log-format", "json",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Errorf("size = %dx%d, want 1024x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "probe" || cfg.Backend != "noop" || !cfg.Headless || cfg.MaxFrames != 5 {
		t.Errorf("parseConfig() = %+v", cfg)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpuboot.toml")
	data := "[window]\ntitle = \"from file\"\nwidth = 640\n\n[gpu]\nbackend = \"noop\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseConfig([]string{"--config", path, "--width", "320"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "from file" || cfg.Backend != "noop" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Window.Width != 320 {
		t.Errorf("Width = %d, want flag value 320", cfg.Window.Width)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "0"},
		{"--frames", "-1"},
		{"--log-format", "xml"},
		{"--log-level", "bogus"},
		{"--no-such-flag"},
		{"--config", filepath.Join(t.TempDir(), "missing.toml")},
	} {
		if _, err := parseConfig(args); err == nil {
			t.Errorf("parseConfig(%v) succeeded, want error", args)
		}
	}
}

func TestRunHeadless(t *testing.T) {
	var stderr bytes.Buffer
	code := run([]string{"--headless", "--backend", "noop", "--frames", "3", "--log-level", "error"}, &stderr)
	if code != gpuboot.ExitSuccess {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected report on success: %q", stderr.String())
	}
}

func TestRunUnknownBackend(t *testing.T) {
	var stderr bytes.Buffer
	code := run([]string{"--headless", "--backend", "nope", "--log-level", "error"}, &stderr)
	if code != gpuboot.ExitFailure {
		t.Fatalf("run() = %d, want %d", code, gpuboot.ExitFailure)
	}
	if !strings.HasPrefix(stderr.String(), "gpuboot: ") {
		t.Errorf("stderr = %q, want gpuboot report", stderr.String())
	}
}

func TestNewLogger(t *testing.T) {
	for _, lc := range []gpuboot.LogConfig{
		{Level: "debug", Format: "console"},
		{Level: "warn", Format: "json"},
		{Level: "", Format: ""},
	} {
		var buf bytes.Buffer
		logger, err := newLogger(lc, &buf)
		if err != nil {
			t.Fatalf("newLogger(%+v) = %v", lc, err)
		}
		logger.Warn("hello")
		_ = logger.Sync()
		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("newLogger(%+v) wrote %q, want the warning", lc, buf.String())
		}
	}

	if _, err := newLogger(gpuboot.LogConfig{Level: "bogus"}, io.Discard); err == nil {
		t.Error("newLogger accepted an unknown level")
	}
}

func TestRunReportsFailureOnce(t *testing.T) {
	// Hold the windowing subsystem so the run fails to open its host.
	held, err := window.OpenHeadless(window.DefaultConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer held.Release()

	var stderr bytes.Buffer
	code := run([]string{"--headless", "--backend", "noop", "--frames", "1"}, &stderr)
	if code != gpuboot.ExitFailure {
		t.Fatalf("run() = %d, want %d; stderr: %s", code, gpuboot.ExitFailure, stderr.String())
	}
	if n := strings.Count(stderr.String(), window.ErrBusy.Error()); n != 1 {
		t.Errorf("failure printed %d times, want once:\n%s", n, stderr.String())
	}
	if strings.Contains(stderr.String(), "goroutine ") {
		t.Errorf("stderr carries a stack trace:\n%s", stderr.String())
	}
}

func TestRunHeadlessZeroFramesClosesAtOnce(t *testing.T) {
	var stderr bytes.Buffer
	code := run([]string{"--headless", "--backend", "noop", "--log-level", "error"}, &stderr)
	if code != gpuboot.ExitSuccess {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
}
