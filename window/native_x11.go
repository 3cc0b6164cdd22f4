//go:build cgo && linux && !android && !wayland

package window

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetX11Display())), uintptr(w.GetX11Window())
}

// checkSession rejects Wayland sessions. Vulkan picks its Linux surface
// type from WAYLAND_DISPLAY, and this build only has X11 handles.
func checkSession() error {
	if d := os.Getenv("WAYLAND_DISPLAY"); d != "" {
		return fmt.Errorf("%w: X11 build under Wayland session %q (build with -tags wayland or unset WAYLAND_DISPLAY)",
			ErrSessionMismatch, d)
	}
	return nil
}
