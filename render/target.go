// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fxbench/scene"
)

// Surface is anything the renderer can draw into.
//
//   - Canvas: the host drawing buffer, 8-bit RGBA, display encoded
//   - Target: an offscreen render target, linear float RGBA
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the pixel format the surface represents.
	Format() gputypes.TextureFormat
}

// TargetOption configures a Target during creation.
type TargetOption func(*Target)

// WithSamples requests multisampling. The count is rounded up to 1, 2, 4,
// 8 or 16.
func WithSamples(n int) TargetOption {
	return func(t *Target) {
		t.samples = NormalizeSamples(n)
	}
}

// WithFormat sets the color format used for memory accounting.
func WithFormat(format gputypes.TextureFormat) TargetOption {
	return func(t *Target) {
		t.format = format
	}
}

// WithDepthBuffer enables or disables the depth buffer. It is enabled by
// default.
func WithDepthBuffer(enabled bool) TargetOption {
	return func(t *Target) {
		t.depthBuffer = enabled
	}
}

// Target is an offscreen render target.
//
// Storage is allocated lazily the first time a Renderer draws into or reads
// from the target, and is charged to that renderer's memory info. Dispose
// releases it; the target can be used again afterwards and will allocate
// anew. SetSize on an allocated target disposes it first.
//
// Colors are stored as linear RGBA float32. A multisampled target keeps one
// color and depth value per sample and a resolved color buffer that passes
// read from.
//
// Example:
//
//	rt := render.NewTarget(800, 600, render.WithSamples(8))
//	r.SetRenderTarget(rt)
//	r.Render(sc, cam)
//	pix := rt.Pixels()
//	rt.Dispose()
type Target struct {
	width, height int
	samples       int
	format        gputypes.TextureFormat
	depthBuffer   bool
	internal      bool

	owner        *Renderer
	samplesStale bool
	color        []float32
	sampleColor  []float32
	depth        []float32
	bytes        int64
}

// NewTarget creates an unallocated render target.
// Negative dimensions are treated as zero.
func NewTarget(width, height int, opts ...TargetOption) *Target {
	t := &Target{
		width:       max(width, 0),
		height:      max(height, 0),
		samples:     1,
		format:      gputypes.TextureFormatRGBA8Unorm,
		depthBuffer: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Width returns the target width in pixels.
func (t *Target) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *Target) Height() int {
	return t.height
}

// Format returns the color format.
func (t *Target) Format() gputypes.TextureFormat {
	return t.format
}

// Samples returns the number of samples per pixel.
func (t *Target) Samples() int {
	return t.samples
}

// Allocated reports whether the target currently holds storage.
func (t *Target) Allocated() bool {
	return t.color != nil
}

// Descriptors returns the textures backing the target: the color
// attachment, a resolve texture when multisampled, and the depth buffer.
func (t *Target) Descriptors() []TextureDescriptor {
	w, h := uint32(t.width), uint32(t.height) //nolint:gosec // non-negative by construction
	color := DefaultTextureDescriptor(w, h, t.format)
	color.Label = "color"
	color.SampleCount = uint32(t.samples) //nolint:gosec // at most 16
	descs := []TextureDescriptor{color}

	if t.samples > 1 {
		resolve := DefaultTextureDescriptor(w, h, t.format)
		resolve.Label = "resolve"
		descs = append(descs, resolve)
	}
	if t.depthBuffer {
		depth := DefaultTextureDescriptor(w, h, gputypes.TextureFormatDepth24PlusStencil8)
		depth.Label = "depth"
		depth.SampleCount = color.SampleCount
		depth.Usage = TextureUsageRenderAttachment
		descs = append(descs, depth)
	}
	return descs
}

// Bytes returns the device memory the target occupies when allocated.
func (t *Target) Bytes() int64 {
	var n int64
	for _, d := range t.Descriptors() {
		n += d.Bytes()
	}
	return n
}

// SetSize changes the dimensions. An allocated target is disposed first;
// a no-op when the size is unchanged.
func (t *Target) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == t.width && height == t.height {
		return
	}
	t.Dispose()
	t.width, t.height = width, height
}

// Clone returns an unallocated target with the same size and options.
func (t *Target) Clone() *Target {
	return &Target{
		internal:    t.internal,
		width:       t.width,
		height:      t.height,
		samples:     t.samples,
		format:      t.format,
		depthBuffer: t.depthBuffer,
	}
}

// Dispose releases the storage and reports it to the owning renderer.
// Calling Dispose on an unallocated target does nothing.
func (t *Target) Dispose() {
	if !t.Allocated() {
		return
	}
	if t.owner != nil {
		t.owner.info.release(t.bytes)
	}
	t.owner = nil
	t.samplesStale = false
	t.color = nil
	t.sampleColor = nil
	t.depth = nil
	t.bytes = 0
}

// Pixels returns the resolved linear RGBA values, four per pixel in row
// order. It returns nil while the target is unallocated.
func (t *Target) Pixels() []float32 {
	return t.color
}

// At returns the resolved color at (x, y). Out-of-range coordinates and
// unallocated targets yield zero.
func (t *Target) At(x, y int) [4]float32 {
	if !t.Allocated() || x < 0 || y < 0 || x >= t.width || y >= t.height {
		return [4]float32{}
	}
	i := (y*t.width + x) * 4
	return [4]float32{t.color[i], t.color[i+1], t.color[i+2], t.color[i+3]}
}

// allocate creates storage on first use and charges it to r.
func (t *Target) allocate(r *Renderer) {
	if t.Allocated() {
		return
	}
	n := t.width * t.height
	t.color = make([]float32, n*4)
	if t.samples > 1 {
		t.sampleColor = make([]float32, n*t.samples*4)
	}
	if t.depthBuffer {
		t.depth = make([]float32, n*t.samples)
		for i := range t.depth {
			t.depth[i] = 1
		}
	}
	t.samplesStale = false
	if t.internal {
		return
	}
	t.owner = r
	t.bytes = t.Bytes()
	r.info.acquire(t.bytes)
}

// clear fills color with (c, alpha) and depth with 1.
func (t *Target) clear(c scene.Color, alpha float32) {
	fill := func(buf []float32) {
		for i := 0; i+3 < len(buf); i += 4 {
			buf[i], buf[i+1], buf[i+2], buf[i+3] = c.R, c.G, c.B, alpha
		}
	}
	fill(t.color)
	fill(t.sampleColor)
	for i := range t.depth {
		t.depth[i] = 1
	}
	t.samplesStale = false
}

// broadcast copies resolved colors back into every sample after a
// full-screen pass wrote the resolved buffer directly.
func (t *Target) broadcast() {
	if !t.samplesStale {
		return
	}
	s := t.samples
	for i := 0; i < t.width*t.height; i++ {
		src := t.color[i*4 : i*4+4]
		for k := range s {
			copy(t.sampleColor[(i*s+k)*4:], src)
		}
	}
	t.samplesStale = false
}

// Ensure Target implements Surface.
var _ Surface = (*Target)(nil)
