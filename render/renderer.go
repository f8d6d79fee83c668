// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/internal/color"
	"github.com/gogpu/fxbench/internal/parallel"
	"github.com/gogpu/fxbench/scene"
)

// Renderer draws scenes into a Canvas or into offscreen render targets.
//
// The renderer keeps the state a WebGL-style renderer keeps: a CSS size and
// pixel ratio that together define the drawing-buffer size, the current
// render target (nil means the canvas), auto-clear, clear color, tone mapping
// and output color space.
//
// Tone mapping and color space conversion are applied only when rendering to
// the canvas. Offscreen targets hold linear values.
//
// Thread Safety: Renderer is NOT thread-safe. It is driven from the render
// loop goroutine; full-screen work may fan out internally over a worker
// pool, but every call returns only when that work is complete.
type Renderer struct {
	canvas *Canvas
	opts   options

	width, height int
	autoClear     bool

	target *Target
	screen *Target

	pool     *parallel.WorkerPool
	info     Info
	disposed bool
	raster   rasterizer
}

// NewRenderer creates a renderer bound to canvas. The initial CSS size is the
// canvas style size.
func NewRenderer(canvas *Canvas, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		canvas:    canvas,
		opts:      o,
		autoClear: true,
	}
	if o.workers != 1 {
		r.pool = parallel.NewWorkerPool(o.workers)
	}

	w, h := canvas.StyleSize()
	r.setSize(w, h, false)

	fxbench.Logger().Debug("render: renderer created",
		"width", w, "height", h,
		"pixelRatio", o.pixelRatio,
		"workers", r.Workers(),
		"gpuDevice", HasDevice(o.device))
	return r
}

// Canvas returns the canvas the renderer presents to.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Device returns the injected device handle, or NullDeviceHandle.
func (r *Renderer) Device() DeviceHandle {
	return r.opts.device
}

// Workers returns the number of goroutines used for full-screen work.
func (r *Renderer) Workers() int {
	if r.pool == nil {
		return 1
	}
	return r.pool.Workers()
}

// Info returns a snapshot of memory and render statistics.
func (r *Renderer) Info() Info {
	return r.info
}

// ResetRenderInfo zeroes the render counters. Memory counters are kept.
func (r *Renderer) ResetRenderInfo() {
	r.info.Render = RenderInfo{}
}

// PixelRatio returns the device pixel ratio.
func (r *Renderer) PixelRatio() float32 {
	return r.opts.pixelRatio
}

// SetPixelRatio changes the device pixel ratio and resizes the drawing
// buffer. Values <= 0 are ignored.
func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		return
	}
	r.opts.pixelRatio = ratio
	r.setSize(r.width, r.height, false)
}

// SetSize sets the CSS size, resizes the drawing buffer to size times pixel
// ratio and updates the canvas style box.
func (r *Renderer) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	r.setSize(width, height, true)
	return nil
}

func (r *Renderer) setSize(width, height int, updateStyle bool) {
	r.width, r.height = max(width, 0), max(height, 0)
	w, h := r.DrawingBufferSize()
	r.canvas.Resize(w, h)
	if updateStyle {
		r.canvas.SetStyleSize(r.width, r.height)
	}
}

// Size returns the CSS size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// DrawingBufferSize returns the size in device pixels:
// floor(size * pixel ratio).
func (r *Renderer) DrawingBufferSize() (width, height int) {
	pr := r.opts.pixelRatio
	return int(math32.Floor(float32(r.width) * pr)), int(math32.Floor(float32(r.height) * pr))
}

// SetRenderTarget selects where Render, Clear and Shade draw. nil selects
// the canvas.
func (r *Renderer) SetRenderTarget(t *Target) {
	r.target = t
}

// RenderTarget returns the current render target, nil for the canvas.
func (r *Renderer) RenderTarget() *Target {
	return r.target
}

// AutoClear reports whether Render clears the destination first.
func (r *Renderer) AutoClear() bool {
	return r.autoClear
}

// SetAutoClear enables or disables clearing before each Render.
func (r *Renderer) SetAutoClear(enabled bool) {
	r.autoClear = enabled
}

// ClearColor returns the color and alpha used by Clear.
func (r *Renderer) ClearColor() (scene.Color, float32) {
	return r.opts.clearColor, r.opts.clearAlpha
}

// SetClearColor sets the color and alpha used by Clear.
func (r *Renderer) SetClearColor(c scene.Color, alpha float32) {
	r.opts.clearColor = c
	r.opts.clearAlpha = alpha
}

// ToneMapping returns the curve applied when drawing to the canvas.
func (r *Renderer) ToneMapping() ToneMapping {
	return r.opts.toneMapping
}

// SetToneMapping sets the curve applied when drawing to the canvas.
func (r *Renderer) SetToneMapping(t ToneMapping) {
	r.opts.toneMapping = t
}

// Exposure returns the tone mapping exposure.
func (r *Renderer) Exposure() float32 {
	return r.opts.exposure
}

// SetExposure sets the tone mapping exposure.
func (r *Renderer) SetExposure(exposure float32) {
	r.opts.exposure = exposure
}

// OutputColorSpace returns the canvas color space.
func (r *Renderer) OutputColorSpace() ColorSpace {
	return r.opts.outputSpace
}

// SetOutputColorSpace sets the canvas color space.
func (r *Renderer) SetOutputColorSpace(space ColorSpace) {
	r.opts.outputSpace = space
}

// Alpha reports whether the canvas keeps its alpha channel.
func (r *Renderer) Alpha() bool {
	return r.opts.alpha
}

// Clear clears the current render target, or the canvas, to the clear
// color and resets depth.
func (r *Renderer) Clear() {
	c, a := r.opts.clearColor, r.opts.clearAlpha
	if r.target != nil {
		r.target.allocate(r)
		r.target.clear(c, a)
		return
	}

	s := r.screenTarget()
	s.clear(c, a)
	space := r.opts.outputSpace
	alpha := uint8(255)
	if r.opts.alpha {
		alpha = color.ToByte(a)
	}
	pix := r.canvas.Pixels()
	cr, cg, cb := color.Encode(c.R, space), color.Encode(c.G, space), color.Encode(c.B, space)
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = cr, cg, cb, alpha
	}
}

// Texture returns the resolved pixels of t, allocating it on first use.
// Passes call it to sample a target they did not draw into.
func (r *Renderer) Texture(t *Target) []float32 {
	t.allocate(r)
	return t.Pixels()
}

// ShadeFunc computes one output pixel. dst holds the current RGBA value at
// (x, y) and receives the result. It may be called concurrently for
// different pixels.
type ShadeFunc func(x, y int, dst []float32)

// Shade runs fn for every pixel of the current render target, or of the
// canvas when no target is set. It is the full-screen quad of a pass.
//
// Values written to a target are linear. Values written to the canvas are
// display values in [0,1]; the pass is responsible for tone mapping and
// encoding.
func (r *Renderer) Shade(fn ShadeFunc) error {
	if r.disposed {
		return ErrDisposed
	}
	r.info.Render.Calls++

	if t := r.target; t != nil {
		t.allocate(r)
		w := t.width
		r.forRows(t.height, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := range w {
					i := (y*w + x) * 4
					fn(x, y, t.color[i:i+4:i+4])
				}
			}
		})
		t.samplesStale = t.samples > 1
		return nil
	}

	pix := r.canvas.Pixels()
	stride := r.canvas.Stride()
	w := r.canvas.Width()
	opaque := !r.opts.alpha
	r.forRows(r.canvas.Height(), func(y0, y1 int) {
		var px [4]float32
		for y := y0; y < y1; y++ {
			for x := range w {
				i := y*stride + x*4
				px[0] = float32(pix[i]) / 255
				px[1] = float32(pix[i+1]) / 255
				px[2] = float32(pix[i+2]) / 255
				px[3] = float32(pix[i+3]) / 255
				fn(x, y, px[:])
				pix[i] = color.ToByte(px[0])
				pix[i+1] = color.ToByte(px[1])
				pix[i+2] = color.ToByte(px[2])
				if opaque {
					pix[i+3] = 255
				} else {
					pix[i+3] = color.ToByte(px[3])
				}
			}
		}
	})
	return nil
}

// Render draws sc as seen from cam into the current render target, or into
// the canvas with tone mapping and color space conversion.
//
// The destination is cleared first when auto-clear is enabled. A scene
// background always clears the color buffer to the background color.
func (r *Renderer) Render(sc *scene.Scene, cam scene.Camera) error {
	if r.disposed {
		return ErrDisposed
	}
	if cam == nil {
		return ErrNilCamera
	}

	dst := r.target
	toCanvas := dst == nil
	if toCanvas {
		dst = r.screenTarget()
	} else {
		dst.allocate(r)
	}

	switch {
	case sc != nil && sc.Background != nil:
		dst.clear(*sc.Background, 1)
	case r.autoClear:
		dst.clear(r.opts.clearColor, r.opts.clearAlpha)
	default:
		dst.broadcast()
	}

	if sc != nil {
		r.raster.draw(dst, sc, cam, &r.info.Render)
	}
	r.resolve(dst)
	r.info.Render.Calls++

	if toCanvas {
		r.present(dst)
	}
	return nil
}

// Dispose releases the internal drawing buffer and stops the worker pool.
// Render targets created by callers must be disposed by them.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.screen != nil {
		r.screen.Dispose()
		r.screen = nil
	}
	if r.pool != nil {
		r.pool.Close()
	}
	fxbench.Logger().Debug("render: renderer disposed",
		"liveTargets", r.info.Memory.Targets,
		"liveBytes", r.info.Memory.Bytes)
}

// screenTarget returns the storage behind the canvas drawing buffer,
// recreating it when the drawing-buffer size changed. It is not counted in
// the memory info.
func (r *Renderer) screenTarget() *Target {
	w, h := r.DrawingBufferSize()
	if r.screen == nil {
		samples := 1
		if r.opts.antialias {
			samples = 4
		}
		r.screen = NewTarget(w, h, WithSamples(samples))
		r.screen.internal = true
	}
	r.screen.SetSize(w, h)
	r.screen.allocate(r)
	return r.screen
}

// resolve averages the samples of a multisampled target into its color
// buffer.
func (r *Renderer) resolve(t *Target) {
	if t.samples <= 1 {
		return
	}
	s := t.samples
	inv := 1 / float32(s)
	w := t.width
	r.forRows(t.height, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			var acc [4]float32
			base := i * s * 4
			for k := range s {
				j := base + k*4
				acc[0] += t.sampleColor[j]
				acc[1] += t.sampleColor[j+1]
				acc[2] += t.sampleColor[j+2]
				acc[3] += t.sampleColor[j+3]
			}
			o := i * 4
			t.color[o] = acc[0] * inv
			t.color[o+1] = acc[1] * inv
			t.color[o+2] = acc[2] * inv
			t.color[o+3] = acc[3] * inv
		}
	})
	t.samplesStale = false
}

// present tone maps and encodes the screen buffer into the canvas.
func (r *Renderer) present(src *Target) {
	pix := r.canvas.Pixels()
	stride := r.canvas.Stride()
	w := min(src.width, r.canvas.Width())
	h := min(src.height, r.canvas.Height())
	tm, exposure, space := r.opts.toneMapping, r.opts.exposure, r.opts.outputSpace
	opaque := !r.opts.alpha

	r.forRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range w {
				s := (y*src.width + x) * 4
				cr, cg, cb := tm.Apply(src.color[s], src.color[s+1], src.color[s+2], exposure)
				d := y*stride + x*4
				pix[d] = color.Encode(cr, space)
				pix[d+1] = color.Encode(cg, space)
				pix[d+2] = color.Encode(cb, space)
				if opaque {
					pix[d+3] = 255
				} else {
					pix[d+3] = color.ToByte(src.color[s+3])
				}
			}
		}
	})
}

// forRows runs fn over [0, height) on the worker pool, or inline when the
// renderer is serial.
func (r *Renderer) forRows(height int, fn func(y0, y1 int)) {
	if r.pool == nil {
		if height > 0 {
			fn(0, height)
		}
		return
	}
	r.pool.Rows(height, fn)
}
