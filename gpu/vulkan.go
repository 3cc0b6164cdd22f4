//go:build !nogpu

package gpu

import (
	"github.com/gogpu/gputypes"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

func init() {
	registerHal(BackendVulkan, gputypes.BackendVulkan)
}
