// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrInvalidSize is returned when a size is zero or negative.
	ErrInvalidSize = errors.New("render: invalid size")

	// ErrDisposed is returned when a disposed renderer is used.
	ErrDisposed = errors.New("render: renderer disposed")

	// ErrNilCamera is returned by Render without a camera.
	ErrNilCamera = errors.New("render: nil camera")

	// ErrNoAdapter is returned by Probe when no GPU adapter is available.
	ErrNoAdapter = errors.New("render: no GPU adapter")
)
