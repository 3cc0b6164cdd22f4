// Package window owns the native display surface and event source used by
// gpuboot applications.
//
// A Host is opened once per application run and released exactly once.
// Opening a Host initializes the process-wide windowing subsystem;
// releasing it tears the subsystem down again. Only one Host may be live at
// a time.
//
// Desktop builds with cgo use GLFW via [OpenGLFW]. [OpenHeadless] provides a
// Host without a native window for CI and tests.
package window

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
)

var (
	// ErrInit is returned when the windowing subsystem or the window
	// could not be created.
	ErrInit = errors.New("window: initialization failed")

	// ErrBusy is returned when a Host is opened while another is live.
	ErrBusy = errors.New("window: windowing subsystem already in use")

	// ErrUnsupported is returned by OpenGLFW on platforms without GLFW.
	ErrUnsupported = errors.New("window: native windows not supported on this platform")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("window: invalid config")

	// ErrSessionMismatch is returned by CheckSession when the native
	// handles belong to a different windowing system than the session the
	// graphics API will target.
	ErrSessionMismatch = errors.New("window: native handles do not match the windowing session")
)

// SessionChecker is implemented by hosts whose native handles are only
// usable under one kind of windowing session.
type SessionChecker interface {
	CheckSession() error
}

// Host is a native window plus the event source that drives it.
type Host interface {
	gpucontext.WindowProvider

	// ShouldClose reports whether termination has been requested.
	ShouldClose() bool

	// PollEvents drains pending events without blocking.
	PollEvents()

	// NativeHandles returns the platform display and window handles used
	// to create a presentation surface. Both are zero when the host has
	// no native window.
	NativeHandles() (display, window uintptr)

	// Release destroys the window and tears down the windowing subsystem.
	// It must be called exactly once.
	Release()
}

// Opener opens a Host for the given configuration.
type Opener func(Config) (Host, error)

// Config describes the initial window.
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

// DefaultConfig returns an 800x600 non-resizable window titled "Vulkan".
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "Vulkan",
	}
}

// WithSize returns a copy of c with the given size.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithTitle returns a copy of c with the given title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// Validate checks that c describes a window this package can open.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Resizable {
		return fmt.Errorf("%w: resizable windows are not supported", ErrInvalidConfig)
	}
	return nil
}

// subsystemLive guards the process-wide windowing subsystem.
var subsystemLive atomic.Bool

func acquireSubsystem() error {
	if !subsystemLive.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func releaseSubsystem() {
	subsystemLive.Store(false)
}

// released marks a host as released and panics on a second call.
type released struct {
	done atomic.Bool
}

func (r *released) mark() {
	if !r.done.CompareAndSwap(false, true) {
		panic("window: Release called twice")
	}
}
