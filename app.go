package gpuboot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gpuboot/window"
)

// State is the lifecycle state of an App.
type State uint8

const (
	StateUninitialized State = iota
	StateRunning
	StateTornDown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTornDown:
		return "torn down"
	default:
		return "unknown"
	}
}

// Step creates one graphics object during setup. Create may return a zero
// Handle when there is nothing to record (an optional object was skipped).
type Step struct {
	Name   string
	Create func(host window.Host) (Handle, error)
}

// FrameFunc is called once per run-loop iteration after events are drained.
type FrameFunc func(frame uint64) error

// App drives the setup, run-loop and teardown lifecycle of a graphics
// program.
//
// Teardown runs exactly once on every exit path: recorded handles are
// released newest first, then the window host is released. Failures during
// setup or the run loop are converted into a single Outcome; nothing
// escapes Run.
type App struct {
	cfg      Config
	opts     appOptions
	registry *Registry
	host     window.Host
	state    State
	frames   uint64
}

// New creates an App. The window is not opened until Run.
func New(cfg Config, opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxFramesSet {
		cfg.MaxFrames = o.maxFrames
	}
	return &App{
		cfg:      cfg,
		opts:     o,
		registry: NewRegistry(),
	}
}

// State returns the current lifecycle state.
func (a *App) State() State { return a.state }

// Frames returns the number of completed run-loop iterations.
func (a *App) Frames() uint64 { return a.frames }

// Registry returns the registry holding the objects created during setup.
func (a *App) Registry() *Registry { return a.registry }

// Run executes the full lifecycle and returns its outcome. Run may be
// called only once; later calls fail with ErrAlreadyRun.
//
// Failures are logged at debug level only. The caller reports the Outcome.
func (a *App) Run() (out Outcome) {
	if a.state != StateUninitialized {
		return Outcome{Err: ErrAlreadyRun}
	}
	log := Logger()

	defer func() {
		if err := a.teardown(); err != nil {
			log.Debug("gpuboot: teardown aborted", slog.Any("err", err))
			out = Outcome{Err: err, Fatal: true}
		}
	}()

	if err := guard(a.setup); err != nil {
		log.Debug("gpuboot: setup failed", slog.Any("err", err))
		return Outcome{Err: err}
	}
	if err := guard(a.loop); err != nil {
		log.Debug("gpuboot: run failed", slog.Any("err", err))
		return Outcome{Err: err}
	}
	return Outcome{}
}

func (a *App) setup() error {
	log := Logger()
	log.Info("gpuboot: setup", slog.String("version", Version), slog.Int("steps", len(a.opts.steps)))

	host, err := openHost(a.opts.opener, a.cfg.Window)
	if err == nil && host == nil {
		err = window.ErrInit
	}
	if err != nil {
		return &InitError{Err: err}
	}
	a.host = host

	for _, step := range a.opts.steps {
		h, err := runStep(step, host)
		if err != nil {
			return &ResourceError{Step: step.Name, Err: err}
		}
		if h.IsZero() {
			log.Warn("gpuboot: step skipped", slog.String("step", step.Name))
			continue
		}
		if h.Label == "" {
			h.Label = step.Name
		}
		a.registry.Record(h)
	}

	a.state = StateRunning
	return nil
}

func (a *App) loop() error {
	Logger().Info("gpuboot: running")
	var maxFrames uint64
	if a.cfg.MaxFrames > 0 {
		maxFrames = uint64(a.cfg.MaxFrames)
	}

	for !a.host.ShouldClose() {
		if maxFrames > 0 && a.frames >= maxFrames {
			break
		}
		a.host.PollEvents()
		if a.opts.frame != nil {
			if err := runFrame(a.opts.frame, a.frames); err != nil {
				return &FrameError{Frame: a.frames, Err: err}
			}
		}
		a.frames++
	}
	Logger().Info("gpuboot: close requested", slog.Uint64("frames", a.frames))
	return nil
}

// teardown releases recorded handles in reverse order, then the host.
// A failing release aborts: the host is left alone and the error returned.
func (a *App) teardown() (fatal error) {
	defer func() {
		a.state = StateTornDown
		if r := recover(); r != nil {
			var te *TeardownError
			if err, ok := r.(error); ok && errors.As(err, &te) {
				fatal = te
				return
			}
			fatal = &TeardownError{Label: "teardown", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	Logger().Info("gpuboot: teardown", slog.Int("handles", a.registry.Len()))
	a.registry.TeardownAll(a.opts.destroy)
	if a.host != nil {
		a.host.Release()
		a.host = nil
	}
	return nil
}

// guard calls fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn()
}

// openHost calls opener and converts a panic into an error.
func openHost(opener window.Opener, cfg window.Config) (host window.Host, err error) {
	defer func() {
		if r := recover(); r != nil {
			host = nil
			err = panicError(r)
		}
	}()
	return opener(cfg)
}

// runStep calls step.Create and converts a panic into an error.
func runStep(step Step, host window.Host) (h Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	if step.Create == nil {
		return Handle{}, errors.New("step has no create function")
	}
	return step.Create(host)
}

// runFrame calls fn and converts a panic into an error.
func runFrame(fn FrameFunc, frame uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn(frame)
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
