package postfx

import (
	"github.com/gogpu/fxbench/render"
	"github.com/gogpu/fxbench/scene"
)

// roundingRange spreads sample weights around 1/N so that accumulating in a
// low precision buffer does not bias the result.
const roundingRange = 1.0 / 32

// TAARenderPass renders the scene several times with sub-pixel camera jitter
// and averages the results.
//
// Without Accumulate every frame renders 2^SampleLevel jittered samples
// (supersampling). With Accumulate, frames of a static scene keep adding
// 2^SampleLevel samples from the 32-entry jitter table until it is
// exhausted, blended over a held full-weight render.
type TAARenderPass struct {
	PassState

	Scene  *scene.Scene
	Camera scene.Camera

	// SampleLevel selects 2^SampleLevel samples, clamped to [0, 5].
	SampleLevel int

	// Unbiased spreads sample weights by roundingRange.
	Unbiased bool

	// Accumulate enables progressive accumulation across frames.
	Accumulate bool

	ClearColor scene.Color
	ClearAlpha float32

	accumulateIndex int
	sampleTarget    *render.Target
	holdTarget      *render.Target
}

// NewTAARenderPass creates a pass with sample level 0 and accumulation off.
func NewTAARenderPass(sc *scene.Scene, cam scene.Camera, clearColor scene.Color, clearAlpha float32) *TAARenderPass {
	return &TAARenderPass{
		PassState:       defaultPassState(),
		Scene:           sc,
		Camera:          cam,
		Unbiased:        true,
		ClearColor:      clearColor,
		ClearAlpha:      clearAlpha,
		accumulateIndex: -1,
	}
}

// AccumulateIndex returns the number of accumulated samples, or -1 when
// accumulation has not started.
func (p *TAARenderPass) AccumulateIndex() int {
	return p.accumulateIndex
}

// ResetAccumulation restarts accumulation on the next frame.
func (p *TAARenderPass) ResetAccumulation() {
	p.accumulateIndex = -1
}

// SetSize implements Pass. Owned targets are resized and reallocated on
// next use.
func (p *TAARenderPass) SetSize(width, height int) {
	if p.sampleTarget != nil {
		p.sampleTarget.SetSize(width, height)
	}
	if p.holdTarget != nil {
		p.holdTarget.SetSize(width, height)
	}
	p.accumulateIndex = -1
}

// Dispose implements Pass.
func (p *TAARenderPass) Dispose() {
	if p.sampleTarget != nil {
		p.sampleTarget.Dispose()
	}
	if p.holdTarget != nil {
		p.holdTarget.Dispose()
	}
}

// Targets returns the targets owned by the pass, nil until first use.
func (p *TAARenderPass) Targets() (sample, hold *render.Target) {
	return p.sampleTarget, p.holdTarget
}

func (p *TAARenderPass) ensureTarget(t **render.Target, read *render.Target) {
	if *t == nil {
		*t = render.NewTarget(read.Width(), read.Height())
	}
}

// Render implements Pass.
func (p *TAARenderPass) Render(r *render.Renderer, write, read *render.Target, _ float32) error {
	if !p.Accumulate {
		p.accumulateIndex = -1
		return p.renderSupersampled(r, write, read, p.RenderToScreen)
	}
	return p.renderAccumulated(r, write, read)
}

// saveState captures renderer state the pass changes.
func saveState(r *render.Renderer) func() {
	autoClear := r.AutoClear()
	clearColor, clearAlpha := r.ClearColor()
	r.SetAutoClear(false)
	return func() {
		r.SetAutoClear(autoClear)
		r.SetClearColor(clearColor, clearAlpha)
	}
}

// renderSupersampled renders every jitter offset of the sample level into
// the sample target and adds it, weighted, to the destination.
func (p *TAARenderPass) renderSupersampled(r *render.Renderer, write, read *render.Target, toScreen bool) error {
	p.ensureTarget(&p.sampleTarget, read)
	restore := saveState(r)
	defer restore()

	offsets := render.JitterVectors(p.SampleLevel)
	base := 1 / float32(len(offsets))

	view := p.Camera.View()
	full := scene.ViewOffset{
		Enabled:    true,
		FullWidth:  float32(read.Width()),
		FullHeight: float32(read.Height()),
		Width:      float32(read.Width()),
		Height:     float32(read.Height()),
	}
	if view.Enabled {
		full = view
	}
	defer func() {
		if view.Enabled {
			p.Camera.SetViewOffset(view.FullWidth, view.FullHeight, view.X, view.Y, view.Width, view.Height)
		} else {
			p.Camera.ClearViewOffset()
		}
	}()

	for i, o := range offsets {
		p.Camera.SetViewOffset(full.FullWidth, full.FullHeight, full.X+o[0], full.Y+o[1], full.Width, full.Height)

		weight := base
		if p.Unbiased {
			weight += roundingRange * (-0.5 + (float32(i)+0.5)/float32(len(offsets)))
		}

		r.SetClearColor(p.ClearColor, p.ClearAlpha)
		r.SetRenderTarget(p.sampleTarget)
		r.Clear()
		if err := r.Render(p.Scene, p.Camera); err != nil {
			return err
		}

		if toScreen {
			r.SetRenderTarget(nil)
		} else {
			r.SetRenderTarget(write)
		}
		if i == 0 {
			r.SetClearColor(scene.Color{}, 0)
			r.Clear()
		}
		if err := addWeighted(r, p.sampleTarget, weight); err != nil {
			return err
		}
	}
	return nil
}

// renderAccumulated adds 2^SampleLevel samples per frame from the largest
// jitter table and blends the running sum over the held render.
func (p *TAARenderPass) renderAccumulated(r *render.Renderer, write, read *render.Target) error {
	offsets := render.JitterVectors(render.MaxJitterLevel)
	p.ensureTarget(&p.sampleTarget, read)
	p.ensureTarget(&p.holdTarget, read)

	if p.accumulateIndex == -1 {
		if err := p.renderSupersampled(r, p.holdTarget, read, false); err != nil {
			return err
		}
		p.accumulateIndex = 0
	}

	restore := saveState(r)
	defer restore()

	weight := 1 / float32(len(offsets))
	if p.accumulateIndex >= 0 && p.accumulateIndex < len(offsets) {
		perFrame := 1 << min(max(p.SampleLevel, 0), render.MaxJitterLevel)
		w, h := float32(read.Width()), float32(read.Height())
		for range perFrame {
			o := offsets[p.accumulateIndex]
			p.Camera.SetViewOffset(w, h, o[0], o[1], w, h)

			r.SetRenderTarget(write)
			r.SetClearColor(p.ClearColor, p.ClearAlpha)
			r.Clear()
			if err := r.Render(p.Scene, p.Camera); err != nil {
				return err
			}

			r.SetRenderTarget(p.sampleTarget)
			if p.accumulateIndex == 0 {
				r.SetClearColor(scene.Color{}, 0)
				r.Clear()
			}
			if err := addWeighted(r, write, weight); err != nil {
				return err
			}

			p.accumulateIndex++
			if p.accumulateIndex >= len(offsets) {
				break
			}
		}
		p.Camera.ClearViewOffset()
	}

	accumulated := float32(p.accumulateIndex) * weight
	if p.RenderToScreen {
		r.SetRenderTarget(nil)
	} else {
		r.SetRenderTarget(write)
	}
	r.SetClearColor(scene.Color{}, 0)
	r.Clear()
	if accumulated > 0 {
		if err := addWeighted(r, p.sampleTarget, 1); err != nil {
			return err
		}
	}
	if accumulated < 1 {
		if err := addWeighted(r, p.holdTarget, 1-accumulated); err != nil {
			return err
		}
	}
	return nil
}

// addWeighted adds src * weight to the current destination (additive
// blending of premultiplied colors).
func addWeighted(r *render.Renderer, src *render.Target, weight float32) error {
	s := newSampler(r, src)
	return r.Shade(func(x, y int, dst []float32) {
		texel := s.at(x, y)
		dst[0] += texel[0] * weight
		dst[1] += texel[1] * weight
		dst[2] += texel[2] * weight
		dst[3] += texel[3] * weight
	})
}
