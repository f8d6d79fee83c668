package postfx

import (
	"fmt"
	"slices"
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/fxbench/render"
)

// Composer runs a chain of passes over two ping-pong render targets.
type Composer struct {
	renderer *render.Renderer

	target1, target2 *render.Target
	write, read      *render.Target

	passes []Pass

	width, height int
	pixelRatio    float32

	// RenderToScreen makes the last enabled pass draw to the canvas.
	RenderToScreen bool

	now  func() time.Time
	last time.Time
}

// NewComposer creates a composer bound to r.
//
// With a target, the composer uses its size with pixel ratio 1. With nil it
// allocates a target of the renderer's size times its pixel ratio. The
// second buffer is a clone of the first.
func NewComposer(r *render.Renderer, target *render.Target) *Composer {
	c := &Composer{
		renderer:       r,
		RenderToScreen: true,
		now:            time.Now,
	}

	if target == nil {
		c.pixelRatio = r.PixelRatio()
		c.width, c.height = r.Size()
		w, h := c.effectiveSize()
		target = render.NewTarget(w, h)
	} else {
		c.pixelRatio = 1
		c.width, c.height = target.Width(), target.Height()
	}

	c.target1 = target
	c.target2 = target.Clone()
	c.write = c.target1
	c.read = c.target2
	return c
}

// Renderer returns the renderer the composer draws with.
func (c *Composer) Renderer() *render.Renderer {
	return c.renderer
}

// Targets returns the two buffers.
func (c *Composer) Targets() (*render.Target, *render.Target) {
	return c.target1, c.target2
}

// ReadBuffer returns the buffer the next pass reads.
func (c *Composer) ReadBuffer() *render.Target {
	return c.read
}

// WriteBuffer returns the buffer the next pass writes.
func (c *Composer) WriteBuffer() *render.Target {
	return c.write
}

// Passes returns the passes in execution order.
func (c *Composer) Passes() []Pass {
	return c.passes
}

// Size returns the logical size.
func (c *Composer) Size() (width, height int) {
	return c.width, c.height
}

// PixelRatio returns the pixel ratio applied to the logical size.
func (c *Composer) PixelRatio() float32 {
	return c.pixelRatio
}

func (c *Composer) effectiveSize() (int, int) {
	return int(math32.Floor(float32(c.width) * c.pixelRatio)),
		int(math32.Floor(float32(c.height) * c.pixelRatio))
}

// SwapBuffers exchanges the read and write buffers.
func (c *Composer) SwapBuffers() {
	c.read, c.write = c.write, c.read
}

// AddPass appends pass and sizes it to the composer.
func (c *Composer) AddPass(pass Pass) {
	c.passes = append(c.passes, pass)
	pass.SetSize(c.effectiveSize())
}

// InsertPass inserts pass at index, clamped to the pass list, and sizes it.
func (c *Composer) InsertPass(pass Pass, index int) {
	index = min(max(index, 0), len(c.passes))
	c.passes = slices.Insert(c.passes, index, pass)
	pass.SetSize(c.effectiveSize())
}

// RemovePass removes pass. It reports whether pass was found.
func (c *Composer) RemovePass(pass Pass) bool {
	i := slices.Index(c.passes, pass)
	if i < 0 {
		return false
	}
	c.passes = slices.Delete(c.passes, i, i+1)
	return true
}

// isLastEnabledPass reports whether no pass after index is enabled.
func (c *Composer) isLastEnabledPass(index int) bool {
	for _, p := range c.passes[index+1:] {
		if p.State().Enabled {
			return false
		}
	}
	return true
}

// Render runs every enabled pass. A negative delta is measured from the
// previous Render call. The renderer's render target is restored afterwards.
func (c *Composer) Render(delta float32) error {
	if delta < 0 {
		t := c.now()
		if !c.last.IsZero() {
			delta = float32(t.Sub(c.last).Seconds())
		} else {
			delta = 0
		}
		c.last = t
	}

	current := c.renderer.RenderTarget()
	defer c.renderer.SetRenderTarget(current)

	for i, pass := range c.passes {
		state := pass.State()
		if !state.Enabled {
			continue
		}
		state.RenderToScreen = c.RenderToScreen && c.isLastEnabledPass(i)

		if err := pass.Render(c.renderer, c.write, c.read, delta); err != nil {
			return fmt.Errorf("postfx: pass %d: %w", i, err)
		}
		if state.NeedsSwap {
			c.SwapBuffers()
		}
	}
	return nil
}

// Reset replaces both buffers. With nil, a clone of the first buffer sized
// to the renderer is used. The old buffers are disposed.
func (c *Composer) Reset(target *render.Target) {
	if target == nil {
		c.width, c.height = c.renderer.Size()
		c.pixelRatio = c.renderer.PixelRatio()
		target = c.target1.Clone()
		target.SetSize(c.effectiveSize())
	}

	c.target1.Dispose()
	c.target2.Dispose()
	c.target1 = target
	c.target2 = target.Clone()
	c.write = c.target1
	c.read = c.target2
}

// SetSize resizes both buffers and every pass to size times pixel ratio.
// Allocated buffers are disposed by the resize.
func (c *Composer) SetSize(width, height int) {
	c.width, c.height = width, height
	w, h := c.effectiveSize()
	c.target1.SetSize(w, h)
	c.target2.SetSize(w, h)
	for _, p := range c.passes {
		p.SetSize(w, h)
	}
}

// SetPixelRatio changes the pixel ratio and resizes.
func (c *Composer) SetPixelRatio(ratio float32) {
	c.pixelRatio = ratio
	c.SetSize(c.width, c.height)
}

// Dispose releases both buffers. Passes are not disposed.
func (c *Composer) Dispose() {
	c.target1.Dispose()
	c.target2.Dispose()
}
