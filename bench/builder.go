package bench

import (
	"github.com/gogpu/fxbench/postfx"
	"github.com/gogpu/fxbench/render"
)

// TargetSamples is the MSAA sample count of the composer target.
const TargetSamples = 8

// Bundle is a composer and the offscreen target it was created with.
// Both share one lifetime: the target is the composer's first buffer.
type Bundle struct {
	Composer *postfx.Composer
	Target   *render.Target
}

// CreateComposer builds a new bundle bound to r. The target is sized to the
// renderer's drawing buffer and multisampled. Every call creates a new
// target and composer; storage is allocated on the first render.
func CreateComposer(r *render.Renderer) *Bundle {
	w, h := r.DrawingBufferSize()
	target := render.NewTarget(w, h, render.WithSamples(TargetSamples))
	return &Bundle{
		Composer: postfx.NewComposer(r, target),
		Target:   target,
	}
}

// Dispose releases both composer buffers. The passes are left intact so
// they can be added to another bundle.
func (b *Bundle) Dispose() {
	if b == nil {
		return
	}
	b.Composer.Dispose()
}
