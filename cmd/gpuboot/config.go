package main

import (
	"github.com/gogpu/gpuboot"
	"github.com/spf13/pflag"
)

// parseConfig loads the optional config file, then applies flags that were
// set explicitly on the command line.
func parseConfig(args []string) (gpuboot.Config, error) {
	fs := pflag.NewFlagSet("gpuboot", pflag.ContinueOnError)
	def := gpuboot.DefaultConfig()

	var (
		path      = fs.String("config", "", "TOML config file")
		width     = fs.Int("width", def.Window.Width, "window width")
		height    = fs.Int("height", def.Window.Height, "window height")
		title     = fs.String("title", def.Window.Title, "window title")
		backend   = fs.String("backend", def.Backend, "graphics backend (vulkan, noop; empty selects the best)")
		headless  = fs.Bool("headless", def.Headless, "run without a native window")
		frames    = fs.Int("frames", def.MaxFrames, "close after this many frames (0 = until the window is closed; with --headless, close at once)")
		logLevel  = fs.String("log-level", def.Log.Level, "log level (debug, info, warn, error)")
		logFormat = fs.String("log-format", def.Log.Format, "log format (console, json)")
	)
	if err := fs.Parse(args); err != nil {
		return gpuboot.Config{}, err
	}

	cfg := def
	if *path != "" {
		loaded, err := gpuboot.LoadConfig(*path)
		if err != nil {
			return gpuboot.Config{}, err
		}
		cfg = loaded
	}

	if fs.Changed("width") || fs.Changed("height") {
		w, h := cfg.Window.Width, cfg.Window.Height
		if fs.Changed("width") {
			w = *width
		}
		if fs.Changed("height") {
			h = *height
		}
		cfg = cfg.WithSize(w, h)
	}
	if fs.Changed("title") {
		cfg = cfg.WithTitle(*title)
	}
	if fs.Changed("backend") {
		cfg.Backend = *backend
	}
	if fs.Changed("headless") {
		cfg.Headless = *headless
	}
	if fs.Changed("frames") {
		cfg.MaxFrames = *frames
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = *logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = *logFormat
	}

	if err := cfg.Validate(); err != nil {
		return gpuboot.Config{}, err
	}
	return cfg, nil
}
