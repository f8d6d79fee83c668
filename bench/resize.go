package bench

import (
	"errors"
	"fmt"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/render"
	"github.com/gogpu/fxbench/scene"
)

// ErrInvalidSize is returned by UpdateSize for zero or negative dimensions.
var ErrInvalidSize = errors.New("bench: invalid viewport size")

// UpdateSize applies a viewport size in CSS pixels: camera aspect and
// projection, renderer size, bundle target and composer, then the canvas
// style box.
//
// The bundle target is disposed before it is resized so that its previous
// storage is released even when the size does not change.
func UpdateSize(cam *scene.PerspectiveCamera, r *render.Renderer, canvas *render.Canvas, b *Bundle, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	cam.Aspect = float32(width) / float32(height)
	cam.UpdateProjectionMatrix()

	if err := r.SetSize(width, height); err != nil {
		return fmt.Errorf("bench: resize renderer: %w", err)
	}

	w, h := r.DrawingBufferSize()
	b.Target.Dispose()
	b.Target.SetSize(w, h)
	b.Composer.SetSize(w, h)

	canvas.SetStyleSize(width, height)

	fxbench.Logger().Debug("bench: resized",
		"width", width, "height", height,
		"bufferWidth", w, "bufferHeight", h)
	return nil
}
