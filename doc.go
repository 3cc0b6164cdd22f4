// Package gpuboot drives the lifecycle of a program built on an explicitly
// managed graphics API.
//
// # Overview
//
// A gpuboot App opens a window, runs a sequence of setup steps that each
// create one graphics object, loops until the window asks to close and
// then releases every object it created. Nothing is released implicitly:
// each object is recorded in a Registry in creation order and destroyed in
// exact reverse order, after which the window is released.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gpuboot"
//	    "github.com/gogpu/gpuboot/gpu"
//	    "github.com/gogpu/gpuboot/window"
//	)
//
//	boot, err := gpu.NewBootstrap(gpu.BackendVulkan)
//	if err != nil {
//	    return err
//	}
//	app := gpuboot.New(gpuboot.DefaultConfig(),
//	    gpuboot.WithOpener(window.GLFWOpener),
//	    gpuboot.WithSteps(boot.Steps()...),
//	    gpuboot.WithDestroy(boot.Destroy),
//	)
//	out := app.Run()
//	out.Report(os.Stderr)
//	os.Exit(out.ExitCode())
//
// # Ownership
//
// Objects come in two disciplines. Created objects are released by their
// own destroy call. Allocated objects are released by a free call on the
// parent they were allocated from, so their Handle carries that parent.
//
// # Outcomes
//
// Run never panics. Window and setup failures, run-loop errors and panics
// all become an Outcome with exit code 1. A release that fails during
// teardown is fatal: cleanup stops, the window is left alone and the
// Outcome carries exit code 2.
//
// # Architecture
//
// The module is organized into:
//   - gpuboot: App, Registry, Handle, Config, Outcome
//   - window: the Host abstraction with GLFW and headless implementations
//   - gpu: hal backend selection and the graphics bootstrap steps
//   - cmd/gpuboot: the command-line program
package gpuboot

// Version is the current version of the module.
const Version = "0.1.0"
