package gpuboot

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gpuboot/window"
)

// Config is the complete application configuration.
type Config struct {
	Window window.Config

	// Backend names the graphics backend ("vulkan", "noop").
	// Empty selects the best available backend.
	Backend string

	// Headless runs without a native window.
	Headless bool

	// MaxFrames requests close after this many run-loop iterations.
	// Zero means run until the user closes the window.
	MaxFrames int

	Log LogConfig
}

// LogConfig selects the log level and output format used by cmd/gpuboot.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// DefaultConfig returns the default configuration: an 800x600 window titled
// "Vulkan" on the best available backend.
func DefaultConfig() Config {
	return Config{
		Window: window.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Window = c.Window.WithTitle(title)
	return c
}

// WithSize returns a copy of c with the window size set.
func (c Config) WithSize(width, height int) Config {
	c.Window = c.Window.WithSize(width, height)
	return c
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("gpuboot: max_frames must not be negative, got %d", c.MaxFrames)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("gpuboot: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("gpuboot: unknown log format %q", c.Log.Format)
	}
	return nil
}

type fileConfig struct {
	Window struct {
		Width     int    `toml:"width"`
		Height    int    `toml:"height"`
		Title     string `toml:"title"`
		Resizable bool   `toml:"resizable"`
	} `toml:"window"`
	GPU struct {
		Backend string `toml:"backend"`
	} `toml:"gpu"`
	Run struct {
		Headless  bool `toml:"headless"`
		MaxFrames int  `toml:"max_frames"`
	} `toml:"run"`
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	cfg := DefaultConfig()
	if meta.IsDefined("window", "width") {
		cfg.Window.Width = raw.Window.Width
	}
	if meta.IsDefined("window", "height") {
		cfg.Window.Height = raw.Window.Height
	}
	if meta.IsDefined("window", "title") {
		cfg.Window.Title = raw.Window.Title
	}
	if meta.IsDefined("window", "resizable") {
		cfg.Window.Resizable = raw.Window.Resizable
	}
	if meta.IsDefined("gpu", "backend") {
		cfg.Backend = strings.TrimSpace(raw.GPU.Backend)
	}
	if meta.IsDefined("run", "headless") {
		cfg.Headless = raw.Run.Headless
	}
	if meta.IsDefined("run", "max_frames") {
		cfg.MaxFrames = raw.Run.MaxFrames
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "format") {
		cfg.Log.Format = strings.TrimSpace(raw.Log.Format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
