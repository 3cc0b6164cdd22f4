//go:build cgo && linux && !android && wayland

package window

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetWaylandDisplay())), uintptr(unsafe.Pointer(w.GetWaylandWindow()))
}

// checkSession requires a Wayland session. Without WAYLAND_DISPLAY Vulkan
// treats the handles as X11.
func checkSession() error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: Wayland build without WAYLAND_DISPLAY", ErrSessionMismatch)
	}
	return nil
}
