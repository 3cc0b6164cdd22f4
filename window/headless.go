package window

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gpuboot/internal/logging"
	"github.com/gogpu/gpucontext"
)

// Headless is a Host without a native window. It requests close after a
// fixed number of polls, or when RequestClose is called.
type Headless struct {
	gpucontext.NullWindowProvider

	title      string
	closeAfter int
	polls      int
	closing    bool
	rel        released
}

var _ Host = (*Headless)(nil)

// OpenHeadless opens a headless host that requests close once PollEvents
// has been called closeAfter times. A closeAfter of zero requests close
// before the first poll; a negative value never closes on its own.
func OpenHeadless(cfg Config, closeAfter int) (*Headless, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	if err := acquireSubsystem(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	logging.Get().Info("window: headless host opened",
		slog.String("title", cfg.Title), slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))
	return &Headless{
		NullWindowProvider: gpucontext.NullWindowProvider{W: cfg.Width, H: cfg.Height},
		title:              cfg.Title,
		closeAfter:         closeAfter,
	}, nil
}

// HeadlessOpener returns an Opener for headless hosts.
func HeadlessOpener(closeAfter int) Opener {
	return func(cfg Config) (Host, error) {
		h, err := OpenHeadless(cfg, closeAfter)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}

// Title returns the configured window title.
func (h *Headless) Title() string { return h.title }

// Polls returns how many times PollEvents has been called.
func (h *Headless) Polls() int { return h.polls }

// RequestClose makes ShouldClose return true.
func (h *Headless) RequestClose() { h.closing = true }

func (h *Headless) ShouldClose() bool {
	if h.closing {
		return true
	}
	return h.closeAfter >= 0 && h.polls >= h.closeAfter
}

func (h *Headless) PollEvents() {
	h.polls++
}

func (h *Headless) NativeHandles() (display, window uintptr) {
	return 0, 0
}

func (h *Headless) Release() {
	h.rel.mark()
	releaseSubsystem()
	logging.Get().Info("window: headless host released", slog.Int("polls", h.polls))
}
