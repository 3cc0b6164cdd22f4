package gpuboot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gpuboot.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Vulkan" {
		t.Errorf("title = %q, want Vulkan", cfg.Window.Title)
	}
	if cfg.Window.Resizable {
		t.Error("default window must not be resizable")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigBuilders(t *testing.T) {
	cfg := DefaultConfig().WithTitle("demo").WithSize(1024, 768)
	if cfg.Window.Title != "demo" || cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("cfg.Window = %+v", cfg.Window)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"resizable", func(c *Config) { c.Window.Resizable = true }},
		{"negative frames", func(c *Config) { c.MaxFrames = -2 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Log.Level = "bogus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1280
title = "Triangle"

[gpu]
backend = " noop "

[run]
headless = true
max_frames = 10

[log]
format = "json"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 600 {
		t.Errorf("size = %dx%d, want 1280x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Triangle" {
		t.Errorf("title = %q, want Triangle", cfg.Window.Title)
	}
	if cfg.Backend != "noop" {
		t.Errorf("backend = %q, want noop", cfg.Backend)
	}
	if !cfg.Headless || cfg.MaxFrames != 10 {
		t.Errorf("run = headless:%v frames:%d, want true 10", cfg.Headless, cfg.MaxFrames)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v, want info/json", cfg.Log)
	}
}

func TestLoadConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(empty) = %+v, want defaults", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[window\nwidth = 1", "load config"},
		{"unknown key", "[window]\ndepth = 3\n", "unknown key"},
		{"resizable", "[window]\nresizable = true\n", "resizable"},
		{"log level", "[log]\nlevel = \"verbose\"\n", "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig(missing) = nil, want error")
	}
}
