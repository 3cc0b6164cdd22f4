// Command gpuboot opens a window, creates the core graphics objects and
// runs until the window is closed, releasing everything in reverse order.
//
// Usage:
//
//	gpuboot [--config gpuboot.toml] [--width 800] [--height 600] [--title Vulkan]
//	        [--backend vulkan|noop] [--headless] [--frames N]
//	        [--log-level info] [--log-format console|json]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gpuboot"
	"github.com/gogpu/gpuboot/gpu"
	"github.com/gogpu/gpuboot/window"
	"go.uber.org/zap/exp/zapslog"
)

func init() {
	// GLFW calls must happen on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args)
	if err != nil {
		gpuboot.Outcome{Err: err}.Report(stderr)
		return gpuboot.ExitFailure
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		gpuboot.Outcome{Err: err}.Report(stderr)
		return gpuboot.ExitFailure
	}
	defer func() { _ = logger.Sync() }()
	gpuboot.SetLogger(slog.New(zapslog.NewHandler(logger.Core(), zapslog.WithName("gpuboot"))))
	if cfg.Log.Level == "debug" {
		gpu.SetHALLogger(slog.New(zapslog.NewHandler(logger.Core(), zapslog.WithName("hal"))))
	}

	boot, err := gpu.NewBootstrap(cfg.Backend)
	if err != nil {
		gpuboot.Outcome{Err: fmt.Errorf("%w (available: %v)", err, gpu.Available())}.Report(stderr)
		return gpuboot.ExitFailure
	}

	opener := window.GLFWOpener
	if cfg.Headless {
		// A headless host cannot be closed by the user, so --frames 0
		// closes it before the first frame.
		opener = window.HeadlessOpener(cfg.MaxFrames)
	}

	app := gpuboot.New(cfg,
		gpuboot.WithOpener(opener),
		gpuboot.WithSteps(boot.Steps()...),
		gpuboot.WithDestroy(boot.Destroy),
	)
	out := app.Run()
	out.Report(stderr)
	return out.ExitCode()
}
