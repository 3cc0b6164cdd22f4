// Package gpu creates the explicitly managed graphics objects a gpuboot
// application needs, using gogpu/wgpu's hal layer.
//
// Every object is created by one setup step and recorded by the App in
// creation order. Bootstrap.Destroy releases a single recorded handle and is
// passed to the App as its destroy function, so teardown runs newest first.
//
// Usage:
//
//	boot, err := gpu.NewBootstrap(gpu.BackendVulkan)
//	if err != nil {
//	    return err
//	}
//	app := gpuboot.New(cfg,
//	    gpuboot.WithSteps(boot.Steps()...),
//	    gpuboot.WithDestroy(boot.Destroy),
//	)
package gpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gpuboot"
	"github.com/gogpu/gpuboot/internal/logging"
	"github.com/gogpu/gpuboot/window"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Step names, in creation order. They double as handle labels.
const (
	StepInstance       = "instance"
	StepSurface        = "surface"
	StepAdapter        = "adapter"
	StepDevice         = "device"
	StepFence          = "fence"
	StepCommandEncoder = "command-encoder"
	StepCommandBuffer  = "command-buffer"
)

var (
	// ErrNoAdapter is returned when the instance exposes no adapters.
	ErrNoAdapter = errors.New("gpu: no GPU adapters found")

	// ErrMissingDependency is returned when a step runs before the step
	// that creates the object it needs.
	ErrMissingDependency = errors.New("gpu: required object not created")

	errUnknownHandle = errors.New("gpu: unknown handle")
)

// Bootstrap owns the hal objects created during setup.
//
// The zero value is not usable; create one with NewBootstrap.
type Bootstrap struct {
	name    string
	backend hal.Backend

	instance hal.Instance
	surface  hal.Surface
	adapter  hal.Adapter
	info     gputypes.AdapterInfo
	device   hal.Device
	queue    hal.Queue
	fence    hal.Fence
	encoder  hal.CommandEncoder
	cmdBuf   hal.CommandBuffer

	idle bool
}

// NewBootstrap selects the named backend. An empty name selects the best
// registered backend.
func NewBootstrap(name string) (*Bootstrap, error) {
	b, err := Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return &Bootstrap{name: name, backend: b}, nil
}

// Backend returns the graphics API variant in use.
func (b *Bootstrap) Backend() gputypes.Backend {
	return b.backend.Variant()
}

// Info returns the selected adapter's description. It is the zero value
// until the adapter step has run.
func (b *Bootstrap) Info() gputypes.AdapterInfo {
	return b.info
}

// Queue returns the device queue, or nil before the device step.
func (b *Bootstrap) Queue() hal.Queue {
	return b.queue
}

// Steps returns the setup steps in creation order.
func (b *Bootstrap) Steps() []gpuboot.Step {
	return []gpuboot.Step{
		{Name: StepInstance, Create: b.createInstance},
		{Name: StepSurface, Create: b.createSurface},
		{Name: StepAdapter, Create: b.createAdapter},
		{Name: StepDevice, Create: b.createDevice},
		{Name: StepFence, Create: b.createFence},
		{Name: StepCommandEncoder, Create: b.createCommandEncoder},
		{Name: StepCommandBuffer, Create: b.allocateCommandBuffer},
	}
}

func (b *Bootstrap) createInstance(window.Host) (gpuboot.Handle, error) {
	instance, err := b.backend.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	})
	if err != nil {
		return gpuboot.Handle{}, err
	}
	b.instance = instance
	return gpuboot.NewCreated(StepInstance, instance), nil
}

// createSurface is skipped for hosts without a native window. Hosts whose
// handles do not fit the running windowing session fail the step.
func (b *Bootstrap) createSurface(host window.Host) (gpuboot.Handle, error) {
	if b.instance == nil {
		return gpuboot.Handle{}, ErrMissingDependency
	}
	display, win := host.NativeHandles()
	if display == 0 && win == 0 {
		return gpuboot.Handle{}, nil
	}
	if sc, ok := host.(window.SessionChecker); ok {
		if err := sc.CheckSession(); err != nil {
			return gpuboot.Handle{}, err
		}
	}
	surface, err := b.instance.CreateSurface(display, win)
	if err != nil {
		return gpuboot.Handle{}, err
	}
	b.surface = surface
	return gpuboot.NewCreated(StepSurface, surface), nil
}

// createAdapter prefers discrete, then integrated GPUs.
func (b *Bootstrap) createAdapter(window.Host) (gpuboot.Handle, error) {
	if b.instance == nil {
		return gpuboot.Handle{}, ErrMissingDependency
	}
	adapters := b.instance.EnumerateAdapters(b.surface)
	if len(adapters) == 0 {
		return gpuboot.Handle{}, ErrNoAdapter
	}
	selected := selectAdapter(adapters)
	b.adapter = selected.Adapter
	b.info = selected.Info

	logging.Get().Info("gpu: adapter selected",
		slog.String("name", selected.Info.Name),
		slog.String("type", selected.Info.DeviceType.String()),
		slog.String("backend", selected.Info.Backend.String()))
	return gpuboot.NewCreated(StepAdapter, selected.Adapter), nil
}

func selectAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	for _, want := range []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU} {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}
	return &adapters[0]
}

// createDevice opens a logical device. The queue belongs to the device and
// is not recorded separately.
func (b *Bootstrap) createDevice(window.Host) (gpuboot.Handle, error) {
	if b.adapter == nil {
		return gpuboot.Handle{}, ErrMissingDependency
	}
	openDev, err := b.adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return gpuboot.Handle{}, err
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	return gpuboot.NewCreated(StepDevice, openDev.Device), nil
}

func (b *Bootstrap) createFence(window.Host) (gpuboot.Handle, error) {
	if b.device == nil {
		return gpuboot.Handle{}, ErrMissingDependency
	}
	fence, err := b.device.CreateFence()
	if err != nil {
		return gpuboot.Handle{}, err
	}
	b.fence = fence
	return gpuboot.NewCreated(StepFence, fence), nil
}

func (b *Bootstrap) createCommandEncoder(window.Host) (gpuboot.Handle, error) {
	if b.device == nil {
		return gpuboot.Handle{}, ErrMissingDependency
	}
	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gpuboot_encoder"})
	if err != nil {
		return gpuboot.Handle{}, err
	}
	b.encoder = encoder
	return gpuboot.NewCreated(StepCommandEncoder, encoder), nil
}

// allocateCommandBuffer records an empty command buffer. The buffer is
// owned by the device and released with FreeCommandBuffer.
func (b *Bootstrap) allocateCommandBuffer(window.Host) (gpuboot.Handle, error) {
	if b.encoder == nil || b.device == nil {
		return gpuboot.Handle{}, ErrMissingDependency
	}
	if err := b.encoder.BeginEncoding("gpuboot"); err != nil {
		return gpuboot.Handle{}, fmt.Errorf("begin encoding: %w", err)
	}
	cmdBuf, err := b.encoder.EndEncoding()
	if err != nil {
		b.encoder.DiscardEncoding()
		return gpuboot.Handle{}, fmt.Errorf("end encoding: %w", err)
	}
	b.cmdBuf = cmdBuf
	return gpuboot.NewAllocated(StepCommandBuffer, cmdBuf, b.device), nil
}

// Destroy releases one handle created by this Bootstrap's steps. The
// device is waited idle before the first release.
//
// A non-nil error means the handle could not be released and is fatal to
// the caller.
func (b *Bootstrap) Destroy(h gpuboot.Handle) error {
	if !b.idle && b.device != nil {
		if err := b.device.WaitIdle(); err != nil {
			return fmt.Errorf("wait idle: %w", err)
		}
		b.idle = true
	}

	if h.Discipline == gpuboot.Allocated {
		return b.free(h)
	}

	switch h.Label {
	case StepInstance:
		instance, ok := h.Object.(hal.Instance)
		if !ok {
			return wrongType(h)
		}
		instance.Destroy()
		b.instance = nil
	case StepSurface:
		surface, ok := h.Object.(hal.Surface)
		if !ok {
			return wrongType(h)
		}
		surface.Destroy()
		b.surface = nil
	case StepAdapter:
		adapter, ok := h.Object.(hal.Adapter)
		if !ok {
			return wrongType(h)
		}
		adapter.Destroy()
		b.adapter = nil
	case StepDevice:
		device, ok := h.Object.(hal.Device)
		if !ok {
			return wrongType(h)
		}
		device.Destroy()
		b.device = nil
		b.queue = nil
	case StepFence:
		fence, ok := h.Object.(hal.Fence)
		if !ok || b.device == nil {
			return wrongType(h)
		}
		b.device.DestroyFence(fence)
		b.fence = nil
	case StepCommandEncoder:
		encoder, ok := h.Object.(hal.CommandEncoder)
		if !ok {
			return wrongType(h)
		}
		encoder.Destroy()
		b.encoder = nil
	default:
		return fmt.Errorf("%w: %q", errUnknownHandle, h.Label)
	}
	return nil
}

// free releases an Allocated handle through its parent.
func (b *Bootstrap) free(h gpuboot.Handle) error {
	device, ok := h.Parent.(hal.Device)
	if !ok {
		return fmt.Errorf("%w: %q has parent %T", errUnknownHandle, h.Label, h.Parent)
	}
	cmdBuf, ok := h.Object.(hal.CommandBuffer)
	if !ok {
		return wrongType(h)
	}
	device.FreeCommandBuffer(cmdBuf)
	b.cmdBuf = nil
	return nil
}

func wrongType(h gpuboot.Handle) error {
	return fmt.Errorf("%w: %q holds %T", errUnknownHandle, h.Label, h.Object)
}
