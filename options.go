package gpuboot

import "github.com/gogpu/gpuboot/window"

// Option configures an App during creation.
//
// Example:
//
//	boot, _ := gpu.NewBootstrap("vulkan")
//	app := gpuboot.New(gpuboot.DefaultConfig(),
//	    gpuboot.WithOpener(window.GLFWOpener),
//	    gpuboot.WithSteps(boot.Steps()...),
//	    gpuboot.WithDestroy(boot.Destroy),
//	)
type Option func(*appOptions)

type appOptions struct {
	opener  window.Opener
	steps   []Step
	destroy DestroyFunc
	frame   FrameFunc

	maxFrames    int
	maxFramesSet bool
}

// defaultOptions opens a headless host that never closes on its own, runs
// no setup steps and releases nothing.
func defaultOptions() appOptions {
	return appOptions{
		opener:  window.HeadlessOpener(-1),
		destroy: func(Handle) error { return nil },
	}
}

// WithOpener sets how the window host is opened.
func WithOpener(o window.Opener) Option {
	return func(opts *appOptions) {
		opts.opener = o
	}
}

// WithSteps appends setup steps. Steps run in the order given.
func WithSteps(steps ...Step) Option {
	return func(opts *appOptions) {
		opts.steps = append(opts.steps, steps...)
	}
}

// WithDestroy sets the function that releases recorded handles.
func WithDestroy(fn DestroyFunc) Option {
	return func(opts *appOptions) {
		opts.destroy = fn
	}
}

// WithFrame sets the hook called once per run-loop iteration.
func WithFrame(fn FrameFunc) Option {
	return func(opts *appOptions) {
		opts.frame = fn
	}
}

// WithMaxFrames requests close after n run-loop iterations, overriding
// Config.MaxFrames. Zero runs until the host asks to close.
func WithMaxFrames(n int) Option {
	return func(opts *appOptions) {
		opts.maxFrames = n
		opts.maxFramesSet = true
	}
}
