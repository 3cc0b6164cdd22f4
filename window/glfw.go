//go:build cgo && (darwin || windows || (linux && !android))

package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpuboot/internal/logging"
)

// errNilWindow covers a native window call that returns no window and no error.
var errNilWindow = errors.New("glfw returned a nil window")

// GLFW is a Host backed by a GLFW window. All methods must be called from
// the main OS thread.
type GLFW struct {
	win *glfw.Window
	rel released
}

var _ Host = (*GLFW)(nil)

// OpenGLFW initializes GLFW and opens a window without a client API
// context.
//
// If the window cannot be created, GLFW is terminated again before
// returning, so a failed OpenGLFW leaves no process-wide state behind.
// GLFW reports some platform failures, such as a missing X display, only by
// panicking on the next call; those are returned as ErrInit too.
func OpenGLFW(cfg Config) (g *GLFW, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	if err := acquireSubsystem(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	defer func() {
		if r := recover(); r != nil {
			glfw.Terminate()
			releaseSubsystem()
			g, err = nil, fmt.Errorf("%w: glfw: %v", ErrInit, r)
		}
	}()

	if err := glfw.Init(); err != nil {
		releaseSubsystem()
		return nil, fmt.Errorf("%w: glfw.Init: %w", ErrInit, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err == nil && win == nil {
		err = errNilWindow
	}
	if err != nil {
		glfw.Terminate()
		releaseSubsystem()
		return nil, fmt.Errorf("%w: create window: %w", ErrInit, err)
	}

	logging.Get().Info("window: glfw window opened",
		slog.String("title", cfg.Title), slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))
	return &GLFW{win: win}, nil
}

// GLFWOpener opens GLFW hosts.
func GLFWOpener(cfg Config) (Host, error) {
	h, err := OpenGLFW(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (g *GLFW) Size() (width, height int) {
	return g.win.GetSize()
}

func (g *GLFW) ScaleFactor() float64 {
	x, _ := g.win.GetContentScale()
	if x <= 0 {
		return 1.0
	}
	return float64(x)
}

// RequestRedraw is a no-op: the run loop renders continuously.
func (g *GLFW) RequestRedraw() {}

func (g *GLFW) ShouldClose() bool {
	return g.win.ShouldClose()
}

func (g *GLFW) PollEvents() {
	glfw.PollEvents()
}

func (g *GLFW) NativeHandles() (display, window uintptr) {
	return nativeHandles(g.win)
}

// CheckSession reports whether the native handles match the running
// windowing session.
func (g *GLFW) CheckSession() error {
	return checkSession()
}

// Release destroys the window, then terminates GLFW.
func (g *GLFW) Release() {
	g.rel.mark()
	g.win.Destroy()
	g.win = nil
	glfw.Terminate()
	releaseSubsystem()
	logging.Get().Info("window: glfw window released")
}
