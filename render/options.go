// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/fxbench/internal/color"
	"github.com/gogpu/fxbench/scene"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.NewRenderer(canvas,
//	    render.WithAntialias(true),
//	    render.WithToneMapping(render.ACESFilmicToneMapping),
//	    render.WithWorkers(4),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	pixelRatio  float32
	antialias   bool
	alpha       bool
	clearColor  scene.Color
	clearAlpha  float32
	toneMapping ToneMapping
	exposure    float32
	outputSpace ColorSpace
	workers     int
	device      DeviceHandle
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		pixelRatio:  1,
		clearAlpha:  1,
		toneMapping: NoToneMapping,
		exposure:    1,
		outputSpace: SRGBColorSpace,
		workers:     1,
		device:      NullDeviceHandle{},
	}
}

// ToneMapping selects the curve applied when drawing to the canvas.
type ToneMapping = color.ToneMapping

// Tone mapping curves.
const (
	NoToneMapping         = color.NoToneMapping
	LinearToneMapping     = color.LinearToneMapping
	ACESFilmicToneMapping = color.ACESFilmicToneMapping
)

// ColorSpace selects the transfer function applied when drawing to the
// canvas.
type ColorSpace = color.Space

// Output color spaces.
const (
	SRGBColorSpace   = color.SpaceSRGB
	LinearColorSpace = color.SpaceLinear
)

// WithPixelRatio sets the device pixel ratio. Values <= 0 are ignored.
func WithPixelRatio(ratio float32) Option {
	return func(o *options) {
		if ratio > 0 {
			o.pixelRatio = ratio
		}
	}
}

// WithAntialias enables multisampling of the canvas drawing buffer.
func WithAntialias(enabled bool) Option {
	return func(o *options) {
		o.antialias = enabled
	}
}

// WithAlpha keeps the canvas alpha channel. When disabled the canvas is
// always opaque and the default clear alpha is 1.
func WithAlpha(enabled bool) Option {
	return func(o *options) {
		o.alpha = enabled
		if enabled {
			o.clearAlpha = 0
		}
	}
}

// WithClearColor sets the color and alpha used by Clear.
func WithClearColor(c scene.Color, alpha float32) Option {
	return func(o *options) {
		o.clearColor = c
		o.clearAlpha = alpha
	}
}

// WithToneMapping sets the tone mapping curve.
func WithToneMapping(t ToneMapping) Option {
	return func(o *options) {
		o.toneMapping = t
	}
}

// WithExposure sets the tone mapping exposure.
func WithExposure(exposure float32) Option {
	return func(o *options) {
		o.exposure = exposure
	}
}

// WithOutputColorSpace sets the canvas color space.
func WithOutputColorSpace(space ColorSpace) Option {
	return func(o *options) {
		o.outputSpace = space
	}
}

// WithWorkers sets the number of goroutines used for full-screen work.
// 1 renders serially; 0 or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithDevice injects a GPU device owned by the host application.
func WithDevice(h DeviceHandle) Option {
	return func(o *options) {
		if h != nil {
			o.device = h
		}
	}
}
