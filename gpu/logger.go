package gpu

import (
	"log/slog"

	"github.com/gogpu/wgpu/hal"
)

// SetHALLogger forwards l to the hal layer and its backends. The hal layer
// is silent by default; pass nil to silence it again.
func SetHALLogger(l *slog.Logger) {
	hal.SetLogger(l)
}
