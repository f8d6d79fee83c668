package postfx

import (
	"github.com/gogpu/fxbench/internal/color"
	"github.com/gogpu/fxbench/render"
)

// OutputPass converts the linear read buffer for display: exposure and tone
// mapping, then the output color space transfer. Tone mapping, exposure and
// color space are taken from the renderer on every frame.
type OutputPass struct {
	PassState
}

// NewOutputPass creates an output pass.
func NewOutputPass() *OutputPass {
	return &OutputPass{PassState: defaultPassState()}
}

// SetSize implements Pass. OutputPass owns no targets.
func (p *OutputPass) SetSize(int, int) {}

// Render implements Pass.
func (p *OutputPass) Render(r *render.Renderer, write, read *render.Target, _ float32) error {
	tm, exposure, space := r.ToneMapping(), r.Exposure(), r.OutputColorSpace()

	p.destination(r, write)
	if !p.RenderToScreen && p.Clear {
		r.Clear()
	}

	src := newSampler(r, read)
	return r.Shade(func(x, y int, dst []float32) {
		texel := src.at(x, y)
		cr, cg, cb := tm.Apply(texel[0], texel[1], texel[2], exposure)
		if space == color.SpaceSRGB {
			cr = color.LinearToSRGB(color.Saturate(cr))
			cg = color.LinearToSRGB(color.Saturate(cg))
			cb = color.LinearToSRGB(color.Saturate(cb))
		}
		dst[0], dst[1], dst[2], dst[3] = cr, cg, cb, texel[3]
	})
}

// Dispose implements Pass.
func (p *OutputPass) Dispose() {}
