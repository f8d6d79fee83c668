package bench

import (
	"errors"

	"github.com/gogpu/fxbench/postfx"
	"github.com/gogpu/fxbench/scene"
)

// TAASampleLevel is the sample level of the TAA pass (2^3 = 8 samples).
const TAASampleLevel = 3

// ErrAlreadyInitialized is returned by InitPostprocessing when the composer
// already has passes.
var ErrAlreadyInitialized = errors.New("bench: composer already initialized")

// PassSet holds the passes shared by every bundle. The passes reference the
// scene and camera; only their parameters change after creation.
type PassSet struct {
	Render *postfx.RenderPass
	TAA    *postfx.TAARenderPass
	Output *postfx.OutputPass
}

// NewPassSet creates the render, TAA and output passes for sc and cam.
func NewPassSet(sc *scene.Scene, cam scene.Camera) *PassSet {
	return &PassSet{
		Render: postfx.NewRenderPass(sc, cam),
		TAA:    postfx.NewTAARenderPass(sc, cam, scene.Color{}, 0),
		Output: postfx.NewOutputPass(),
	}
}

// Ordered returns the passes in their fixed execution order.
func (p *PassSet) Ordered() []postfx.Pass {
	return []postfx.Pass{p.Render, p.TAA, p.Output}
}

// Dispose releases targets owned by the passes.
func (p *PassSet) Dispose() {
	p.TAA.Dispose()
}

// InitPostprocessing sets the TAA sample level and adds the passes to c in
// the fixed order render, TAA, output.
func InitPostprocessing(c *postfx.Composer, p *PassSet) error {
	if len(c.Passes()) > 0 {
		return ErrAlreadyInitialized
	}
	p.TAA.SampleLevel = TAASampleLevel
	for _, pass := range p.Ordered() {
		c.AddPass(pass)
	}
	return nil
}
