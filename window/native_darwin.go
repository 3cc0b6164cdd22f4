//go:build cgo && darwin

package window

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpuboot/internal/logging"
)

// nativeHandles returns zero handles, so the surface step skips itself.
// Surfaces on macOS need a CAMetalLayer, which GLFW 3.3 does not expose.
func nativeHandles(*glfw.Window) (display, window uintptr) {
	logging.Get().Warn("window: no surface handles on macOS",
		slog.String("reason", "GLFW 3.3 exposes no CAMetalLayer for the Cocoa window"))
	return 0, 0
}

func checkSession() error { return nil }
