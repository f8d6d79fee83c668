package bench

import (
	"fmt"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/render"
	"github.com/gogpu/fxbench/scene"
)

// Pipeline decides, frame by frame, which bundle renders.
//
// It keeps the dependency rules of a memoized UI component explicit:
//   - the bundle is rebuilt on every call in ModePerFrame and once in
//     ModeCached;
//   - passes are added whenever the bundle changes;
//   - UpdateSize runs whenever the bundle or the viewport size changes.
//
// A replaced bundle is disposed before the new one is created.
type Pipeline struct {
	mode     fxbench.Mode
	renderer *render.Renderer
	camera   *scene.PerspectiveCamera
	passes   *PassSet

	bundle   *Bundle
	initFor  *Bundle
	sizedFor *Bundle
	width    int
	height   int
	builds   int
}

// NewPipeline creates a pipeline that builds bundles for r.
func NewPipeline(mode fxbench.Mode, r *render.Renderer, cam *scene.PerspectiveCamera, passes *PassSet) *Pipeline {
	return &Pipeline{
		mode:     mode,
		renderer: r,
		camera:   cam,
		passes:   passes,
	}
}

// Mode returns the construction mode.
func (p *Pipeline) Mode() fxbench.Mode {
	return p.mode
}

// Builds returns the number of bundles created so far.
func (p *Pipeline) Builds() int {
	return p.builds
}

// Bundle returns the current bundle, or nil before the first Acquire.
func (p *Pipeline) Bundle() *Bundle {
	return p.bundle
}

// Acquire returns the bundle for a frame with the given viewport size.
func (p *Pipeline) Acquire(width, height int) (*Bundle, error) {
	if p.bundle == nil || p.mode == fxbench.ModePerFrame {
		if p.bundle != nil {
			p.bundle.Dispose()
		}
		p.bundle = CreateComposer(p.renderer)
		p.builds++
		fxbench.Logger().Debug("bench: bundle created", "mode", p.mode, "builds", p.builds)
	}

	if p.initFor != p.bundle {
		if err := InitPostprocessing(p.bundle.Composer, p.passes); err != nil {
			return nil, fmt.Errorf("bench: init postprocessing: %w", err)
		}
		p.initFor = p.bundle
	}

	if p.sizedFor != p.bundle || width != p.width || height != p.height {
		if err := UpdateSize(p.camera, p.renderer, p.renderer.Canvas(), p.bundle, width, height); err != nil {
			return nil, err
		}
		p.sizedFor = p.bundle
		p.width, p.height = width, height
	}
	return p.bundle, nil
}

// Dispose releases the current bundle. The pass set is owned by the caller.
func (p *Pipeline) Dispose() {
	p.bundle.Dispose()
	p.bundle, p.initFor, p.sizedFor = nil, nil, nil
}
