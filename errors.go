package gpuboot

import (
	"errors"
	"fmt"
)

// ErrAlreadyRun is returned when Run is called on an App that has already
// completed its lifecycle.
var ErrAlreadyRun = errors.New("gpuboot: app already run")

// InitError reports that the windowing subsystem or the window itself could
// not be created. It is recoverable at the App boundary.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize window: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ResourceError reports that a graphics object create or allocate step
// failed. Step names the step that failed.
type ResourceError struct {
	Step string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("create %s: %v", e.Step, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// FrameError reports a failure returned by the per-frame hook.
type FrameError struct {
	Frame uint64
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// TeardownError reports that a destroy or free call failed. There is no
// recovery for an object that cannot be released, so a TeardownError is
// raised as a panic by Registry.TeardownAll and aborts any further cleanup.
type TeardownError struct {
	Label string
	Err   error
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("release %s: %v", e.Label, e.Err)
}

func (e *TeardownError) Unwrap() error { return e.Err }
