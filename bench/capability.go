package bench

import (
	"errors"
	"fmt"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/render"
)

// ErrGPUUnavailable is returned by CheckCapabilities when neither a host
// device nor a GPU adapter is available.
var ErrGPUUnavailable = errors.New("bench: GPU rendering capability unavailable")

// FallbackMessage is shown instead of the benchmark when the GPU check
// fails.
const FallbackMessage = "Your graphics card does not seem to support Vulkan. " +
	"Install a Vulkan driver for your GPU, or run without --require-gpu to " +
	"benchmark the software renderer."

// Prober detects GPU adapters. render.Probe is the default.
type Prober func() (render.DeviceCapabilities, error)

// CheckCapabilities reports the GPU available to the benchmark. An injected
// host device wins; otherwise probe is called (render.Probe when nil).
// The check runs once at setup.
func CheckCapabilities(device render.DeviceHandle, probe Prober) (render.DeviceCapabilities, error) {
	if render.HasDevice(device) {
		caps := render.DeviceCapabilities{
			Available: true,
			Backend:   "host",
			Adapters:  1,
		}
		fxbench.Logger().Info("bench: using host GPU device")
		return caps, nil
	}

	if probe == nil {
		probe = render.Probe
	}
	caps, err := probe()
	if err != nil {
		return caps, fmt.Errorf("%w: %w", ErrGPUUnavailable, err)
	}
	if !caps.Available {
		return caps, ErrGPUUnavailable
	}
	return caps, nil
}
