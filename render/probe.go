// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/fxbench"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Probe enumerates GPU adapters through the Vulkan HAL and reports the
// preferred one. Discrete and integrated GPUs are preferred over software
// adapters. The instance is destroyed before Probe returns.
//
// Probe returns ErrNoAdapter, wrapped with the cause, when no adapter can
// be used.
func Probe() (DeviceCapabilities, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return DeviceCapabilities{}, fmt.Errorf("%w: vulkan backend not available", ErrNoAdapter)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return DeviceCapabilities{}, fmt.Errorf("%w: create instance: %w", ErrNoAdapter, err)
	}
	defer instance.Destroy()

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return DeviceCapabilities{}, fmt.Errorf("%w: no adapters enumerated", ErrNoAdapter)
	}

	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	deviceType := "other"
	switch selected.Info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		deviceType = "discrete"
	case gputypes.DeviceTypeIntegratedGPU:
		deviceType = "integrated"
	}

	caps := DeviceCapabilities{
		Available:   true,
		AdapterName: selected.Info.Name,
		DeviceType:  deviceType,
		Backend:     "vulkan",
		Adapters:    len(adapters),
	}
	fxbench.Logger().Info("render: GPU adapter found",
		"adapter", caps.AdapterName,
		"type", caps.DeviceType,
		"adapters", caps.Adapters)
	return caps, nil
}
