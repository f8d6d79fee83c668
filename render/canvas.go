// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Canvas is the host drawing buffer backed by *image.RGBA.
//
// The pixel size of the image is the drawing-buffer size (CSS size times
// pixel ratio). The style size is the CSS box the host lays the canvas out
// in; it is bookkeeping only and never affects rendering.
//
// Example:
//
//	canvas := render.NewCanvas(800, 600)
//	r := render.NewRenderer(canvas)
//	r.Render(sc, cam)
//	img := canvas.Image()
type Canvas struct {
	img                     *image.RGBA
	styleWidth, styleHeight int
}

// NewCanvas creates a canvas whose drawing buffer and style box are both
// width x height.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:         image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		styleWidth:  width,
		styleHeight: height,
	}
}

// NewCanvasFromImage wraps an existing *image.RGBA as a canvas.
// The image is used directly without copying.
func NewCanvasFromImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{img: img, styleWidth: b.Dx(), styleHeight: b.Dy()}
}

// Width returns the drawing-buffer width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the drawing-buffer height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (c *Canvas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (c *Canvas) Pixels() []byte {
	return c.img.Pix
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// StyleSize returns the CSS box size.
func (c *Canvas) StyleSize() (width, height int) {
	return c.styleWidth, c.styleHeight
}

// SetStyleSize sets the CSS box size.
func (c *Canvas) SetStyleSize(width, height int) {
	c.styleWidth, c.styleHeight = width, height
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(col color.Color) {
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
}

// RGBAAt returns the color at the given coordinates.
func (c *Canvas) RGBAAt(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Resize replaces the drawing buffer with one of the given dimensions.
// The contents are not preserved; a no-op when the size is unchanged.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.Width() && height == c.Height() {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Ensure Canvas implements Surface.
var _ Surface = (*Canvas)(nil)
