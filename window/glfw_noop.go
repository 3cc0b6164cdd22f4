//go:build !cgo || !(darwin || windows || (linux && !android))

package window

// GLFW is unavailable on this platform. OpenGLFW never returns one.
type GLFW struct {
	nullHost
}

// nullHost answers every Host call with zero values and asks to close.
type nullHost struct{}

func (nullHost) Size() (width, height int)                { return 0, 0 }
func (nullHost) ScaleFactor() float64                     { return 1.0 }
func (nullHost) RequestRedraw()                           {}
func (nullHost) ShouldClose() bool                        { return true }
func (nullHost) PollEvents()                              {}
func (nullHost) NativeHandles() (display, window uintptr) { return 0, 0 }
func (nullHost) Release()                                 {}
func (nullHost) CheckSession() error                      { return ErrUnsupported }

var _ Host = (*GLFW)(nil)

// OpenGLFW is not available on this platform.
func OpenGLFW(Config) (*GLFW, error) {
	return nil, ErrUnsupported
}

// GLFWOpener is not available on this platform.
func GLFWOpener(Config) (Host, error) {
	return nil, ErrUnsupported
}
