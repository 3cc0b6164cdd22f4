//go:build !cgo || !(darwin || windows || (linux && !android))

package window

import (
	"errors"
	"testing"
)

func TestOpenGLFWUnsupported(t *testing.T) {
	g, err := OpenGLFW(DefaultConfig())
	if g != nil || !errors.Is(err, ErrUnsupported) {
		t.Fatalf("OpenGLFW() = %v, %v, want nil, ErrUnsupported", g, err)
	}
	if _, err := GLFWOpener(DefaultConfig()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("GLFWOpener() = %v, want ErrUnsupported", err)
	}
	// The failed open must not hold the subsystem.
	openHeadless(t, 0).Release()
}
