// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The renderer never creates a device itself. A host that already owns one
// (for example a gogpu window) passes it with WithDevice; the handle is
// reported by Renderer.Device and used for capability checks. Without a
// handle the renderer runs on NullDeviceHandle.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// package-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes the storage behind a render target.
// It mirrors the WebGPU GPUTextureDescriptor and is used to account for the
// memory a target would occupy on a device.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// SampleCount is the number of samples for multisampling.
	// Use 1 for no multisampling.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be used in a texture binding.
	TextureUsageTextureBinding

	// TextureUsageRenderAttachment allows the texture to be used as a render attachment.
	TextureUsageRenderAttachment
)

// DefaultTextureDescriptor returns a single-sampled descriptor usable as both
// a render attachment and a sampled texture.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:       width,
		Height:      height,
		SampleCount: 1,
		Format:      format,
		Usage:       TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// Bytes returns the size of the texture in bytes.
func (d TextureDescriptor) Bytes() int64 {
	samples := max(d.SampleCount, 1)
	return int64(d.Width) * int64(d.Height) * int64(samples) * int64(BytesPerPixel(d.Format))
}

// BytesPerPixel returns the storage size of one texel of format.
// Formats other than R8 are four bytes wide.
func BytesPerPixel(format gputypes.TextureFormat) int {
	if format == gputypes.TextureFormatR8Unorm {
		return 1
	}
	return 4
}

// DeviceCapabilities describes what a GPU adapter offers.
type DeviceCapabilities struct {
	// Available reports whether a usable adapter was found.
	Available bool

	// AdapterName is the adapter name reported by the driver.
	AdapterName string

	// DeviceType is a short description such as "discrete" or "integrated".
	DeviceType string

	// Backend names the graphics API used for the probe.
	Backend string

	// Adapters is the number of adapters enumerated.
	Adapters int
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// HasDevice reports whether h carries a real device.
func HasDevice(h DeviceHandle) bool {
	if h == nil {
		return false
	}
	if _, ok := h.(NullDeviceHandle); ok {
		return false
	}
	return h.Device() != nil
}
