package gpuboot

import (
	"errors"
	"log/slog"
)

// Discipline describes how a graphics object was obtained and therefore how
// it must be released.
type Discipline uint8

const (
	// Created objects come from a standalone create call and are released
	// by the matching destroy call.
	Created Discipline = iota

	// Allocated objects are produced from a parent object and are released
	// by the matching free call on that parent.
	Allocated
)

// String returns the discipline name.
func (d Discipline) String() string {
	switch d {
	case Created:
		return "created"
	case Allocated:
		return "allocated"
	default:
		return "unknown"
	}
}

// errNoParent is reported for Allocated handles that carry no owner.
var errNoParent = errors.New("allocated handle has no parent")

// Handle identifies a single explicitly managed graphics object.
type Handle struct {
	// Label names the step that produced the object.
	Label string

	Discipline Discipline

	// Object is the graphics API object itself.
	Object any

	// Parent owns Allocated objects. Unused for Created objects.
	Parent any
}

// IsZero reports whether h carries no object.
func (h Handle) IsZero() bool {
	return h.Object == nil
}

// NewCreated returns a handle for a directly created object.
func NewCreated(label string, obj any) Handle {
	return Handle{Label: label, Discipline: Created, Object: obj}
}

// NewAllocated returns a handle for an object allocated from parent.
func NewAllocated(label string, obj, parent any) Handle {
	return Handle{Label: label, Discipline: Allocated, Object: obj, Parent: parent}
}

// DestroyFunc releases a single handle. It dispatches to the destroy or
// free call matching the handle's discipline. A non-nil error is fatal.
type DestroyFunc func(Handle) error

// Registry tracks graphics objects in creation order so they can be
// released in exact reverse order.
//
// Registry is not safe for concurrent use. Callers that record from more
// than one goroutine must synchronize externally.
type Registry struct {
	handles []Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Record appends h. It must be called immediately after h was created.
// Zero handles are ignored.
func (r *Registry) Record(h Handle) {
	if h.IsZero() {
		return
	}
	r.handles = append(r.handles, h)
	Logger().Debug("gpuboot: recorded", slog.String("label", h.Label), slog.String("discipline", h.Discipline.String()))
}

// Len returns the number of recorded handles.
func (r *Registry) Len() int {
	return len(r.handles)
}

// Labels returns the labels of recorded handles in creation order.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.handles))
	for i, h := range r.handles {
		labels[i] = h.Label
	}
	return labels
}

// TeardownAll calls destroy for every recorded handle, newest first, and
// then clears the registry.
//
// Destruction is infallible at this layer. If destroy returns an error, or
// an Allocated handle has no parent, TeardownAll panics with a
// *TeardownError and leaves the remaining handles untouched.
func (r *Registry) TeardownAll(destroy DestroyFunc) {
	for len(r.handles) > 0 {
		last := len(r.handles) - 1
		h := r.handles[last]
		r.handles = r.handles[:last]

		if h.Discipline == Allocated && h.Parent == nil {
			panic(&TeardownError{Label: h.Label, Err: errNoParent})
		}
		if err := destroy(h); err != nil {
			panic(&TeardownError{Label: h.Label, Err: err})
		}
		Logger().Debug("gpuboot: released", slog.String("label", h.Label))
	}
	r.handles = nil
}
