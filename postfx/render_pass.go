package postfx

import (
	"github.com/gogpu/fxbench/render"
	"github.com/gogpu/fxbench/scene"
)

// RenderPass renders a scene into the read buffer, or to the canvas when it
// is the last pass. It does not swap buffers.
type RenderPass struct {
	PassState

	Scene  *scene.Scene
	Camera scene.Camera

	// ClearColor, when set, overrides the renderer clear color for this
	// pass.
	ClearColor *scene.Color
	ClearAlpha float32
}

// NewRenderPass creates a pass that clears and renders sc through cam.
func NewRenderPass(sc *scene.Scene, cam scene.Camera) *RenderPass {
	p := &RenderPass{
		PassState: defaultPassState(),
		Scene:     sc,
		Camera:    cam,
	}
	p.NeedsSwap = false
	p.Clear = true
	return p
}

// SetSize implements Pass. RenderPass owns no targets.
func (p *RenderPass) SetSize(int, int) {}

// Render implements Pass.
func (p *RenderPass) Render(r *render.Renderer, _, read *render.Target, _ float32) error {
	oldAutoClear := r.AutoClear()
	r.SetAutoClear(false)
	defer r.SetAutoClear(oldAutoClear)

	if p.ClearColor != nil {
		oldColor, oldAlpha := r.ClearColor()
		r.SetClearColor(*p.ClearColor, p.ClearAlpha)
		defer r.SetClearColor(oldColor, oldAlpha)
	}

	if p.RenderToScreen {
		r.SetRenderTarget(nil)
	} else {
		r.SetRenderTarget(read)
	}
	if p.Clear {
		r.Clear()
	}
	return r.Render(p.Scene, p.Camera)
}

// Dispose implements Pass.
func (p *RenderPass) Dispose() {}
