package gpuboot

import (
	"log/slog"

	"github.com/gogpu/gpuboot/internal/logging"
)

// SetLogger configures the logger for gpuboot and its sub-packages.
// By default, gpuboot produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by gpuboot:
//   - [slog.LevelDebug]: per-object create and release events
//   - [slog.LevelInfo]: lifecycle phase changes, selected adapter
//   - [slog.LevelWarn]: skipped optional steps
//   - [slog.LevelError]: setup, run and teardown failures
//
// Example:
//
//	gpuboot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by gpuboot.
func Logger() *slog.Logger {
	return logging.Get()
}
