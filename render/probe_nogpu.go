// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nogpu

package render

import "fmt"

// Probe always fails in builds without GPU support.
func Probe() (DeviceCapabilities, error) {
	return DeviceCapabilities{}, fmt.Errorf("%w: built with nogpu", ErrNoAdapter)
}
