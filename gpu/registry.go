package gpu

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import the noop backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/noop"
)

// Backend names accepted by Lookup and NewBootstrap.
const (
	BackendVulkan = "vulkan"
	BackendNoop   = "noop"
)

// ErrBackendNotAvailable is returned when a requested backend is not registered.
var ErrBackendNotAvailable = errors.New("gpu: backend not available")

// backends holds the registered hal backends.
// Priority order: Vulkan first, noop as the last resort.
var backends = gpucontext.NewRegistry[hal.Backend](
	gpucontext.WithPriority(BackendVulkan, BackendNoop),
)

func init() {
	registerHal(BackendNoop, gputypes.BackendEmpty)
}

// registerHal registers the hal backend of the given variant under name,
// if the hal package has one.
func registerHal(name string, variant gputypes.Backend) {
	if b, ok := hal.GetBackend(variant); ok {
		Register(name, b)
	}
}

// Register makes a hal backend available under name.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, b hal.Backend) {
	backends.Register(name, func() hal.Backend { return b })
}

// Unregister removes a backend. This is useful for testing.
func Unregister(name string) {
	backends.Unregister(name)
}

// Available returns the registered backend names.
func Available() []string {
	return backends.Available()
}

// Best returns the name of the highest-priority registered backend, or ""
// if none is registered.
func Best() string {
	return backends.BestName()
}

// Lookup returns the backend registered under name. An empty name selects
// the highest-priority registered backend.
func Lookup(name string) (hal.Backend, error) {
	if name == "" {
		if b := backends.Best(); b != nil {
			return b, nil
		}
		return nil, ErrBackendNotAvailable
	}
	if !backends.Has(name) {
		return nil, ErrBackendNotAvailable
	}
	return backends.Get(name), nil
}
