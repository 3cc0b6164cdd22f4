package gpuboot

import (
	"fmt"
	"io"
)

// Exit codes returned by Outcome.ExitCode.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitFatal   = 2
)

// Outcome is the terminal result of one App run.
type Outcome struct {
	// Err is nil on success and describes the failure otherwise.
	Err error

	// Fatal is set when teardown itself failed. Cleanup was abandoned.
	Fatal bool
}

// Success reports whether the run completed without error.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// ExitCode maps the outcome to a process exit status.
func (o Outcome) ExitCode() int {
	switch {
	case o.Err == nil:
		return ExitSuccess
	case o.Fatal:
		return ExitFatal
	default:
		return ExitFailure
	}
}

// Report writes the failure description to w as a single line.
// It writes nothing for a successful outcome.
func (o Outcome) Report(w io.Writer) {
	if o.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "gpuboot: %v\n", o.Err)
}

func (o Outcome) String() string {
	if o.Err == nil {
		return "success"
	}
	if o.Fatal {
		return "fatal: " + o.Err.Error()
	}
	return "failure: " + o.Err.Error()
}
