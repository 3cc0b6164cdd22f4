//go:build cgo && windows

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// The HINSTANCE is left zero; the Vulkan backend resolves the current module.
func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return 0, uintptr(unsafe.Pointer(w.GetWin32Window()))
}

func checkSession() error { return nil }
