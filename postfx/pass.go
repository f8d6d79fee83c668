package postfx

import (
	"github.com/gogpu/fxbench/render"
)

// Pass is one stage of a Composer.
type Pass interface {
	// State returns the flags the composer reads and writes.
	State() *PassState

	// SetSize is called with the composer's effective size in pixels.
	SetSize(width, height int)

	// Render draws the pass. write and read are the composer buffers;
	// delta is the frame time in seconds.
	Render(r *render.Renderer, write, read *render.Target, delta float32) error

	// Dispose releases render targets the pass owns.
	Dispose()
}

// PassState holds the flags shared by all passes.
type PassState struct {
	// Enabled passes run; disabled passes are skipped.
	Enabled bool

	// NeedsSwap swaps the composer buffers after the pass.
	NeedsSwap bool

	// Clear clears the destination before drawing.
	Clear bool

	// RenderToScreen draws to the canvas. The composer sets it on the
	// last enabled pass and clears it on the others.
	RenderToScreen bool
}

// State implements Pass.
func (s *PassState) State() *PassState {
	return s
}

func defaultPassState() PassState {
	return PassState{Enabled: true, NeedsSwap: true}
}

// destination selects the canvas or the write buffer.
func (s *PassState) destination(r *render.Renderer, write *render.Target) {
	if s.RenderToScreen {
		r.SetRenderTarget(nil)
		return
	}
	r.SetRenderTarget(write)
}

// sampler reads a target with nearest filtering into a destination of a
// possibly different size.
type sampler struct {
	pix           []float32
	width, height int
	dstW, dstH    int
}

func newSampler(r *render.Renderer, src *render.Target) sampler {
	w, h := destinationSize(r)
	return sampler{
		pix:    r.Texture(src),
		width:  src.Width(),
		height: src.Height(),
		dstW:   w,
		dstH:   h,
	}
}

// destinationSize returns the size of the renderer's current destination.
func destinationSize(r *render.Renderer) (int, int) {
	if t := r.RenderTarget(); t != nil {
		return t.Width(), t.Height()
	}
	return r.Canvas().Width(), r.Canvas().Height()
}

// at returns the source texel for destination pixel (x, y).
func (s sampler) at(x, y int) []float32 {
	if s.width == 0 || s.height == 0 {
		return zeroTexel[:]
	}
	sx, sy := x, y
	if s.dstW != s.width {
		sx = min(x*s.width/max(s.dstW, 1), s.width-1)
	}
	if s.dstH != s.height {
		sy = min(y*s.height/max(s.dstH, 1), s.height-1)
	}
	i := (sy*s.width + sx) * 4
	return s.pix[i : i+4 : i+4]
}

var zeroTexel [4]float32
