package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera supplies view and projection matrices to the renderer.
type Camera interface {
	Node
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4

	// SetViewOffset selects a sub-rectangle of a larger virtual view.
	// Anti-aliasing passes use it to jitter the projection by sub-pixel
	// amounts.
	SetViewOffset(fullWidth, fullHeight, x, y, width, height float32)
	ClearViewOffset()

	// View returns the current view offset.
	View() ViewOffset
}

// ViewOffset is a sub-rectangle of a larger virtual view, in pixels.
type ViewOffset struct {
	Enabled               bool
	FullWidth, FullHeight float32
	X, Y                  float32
	Width, Height         float32
}

// PerspectiveCamera is a pinhole camera with a vertical field of view.
//
// Fields may be changed freely; UpdateProjectionMatrix must be called
// afterwards for the projection to reflect them.
type PerspectiveCamera struct {
	Object

	Fov    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
	Zoom   float32

	Up mgl32.Vec3

	view       ViewOffset
	target     *mgl32.Vec3
	projection mgl32.Mat4
}

// NewPerspectiveCamera creates a camera and computes its projection.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Object: newObject(),
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Zoom:   1,
		Up:     mgl32.Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection from the camera fields
// and the current view offset.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	top := c.Near * math32.Tan(mgl32.DegToRad(0.5*c.Fov)) / zoom
	height := 2 * top
	width := c.Aspect * height
	left := -0.5 * width

	if v := c.view; v.Enabled && v.FullWidth > 0 && v.FullHeight > 0 {
		left += v.X * width / v.FullWidth
		top -= v.Y * height / v.FullHeight
		width *= v.Width / v.FullWidth
		height *= v.Height / v.FullHeight
	}

	c.projection = mgl32.Frustum(left, left+width, top-height, top, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix computed by the last
// UpdateProjectionMatrix.
func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// SetViewOffset implements Camera and updates the projection.
func (c *PerspectiveCamera) SetViewOffset(fullWidth, fullHeight, x, y, width, height float32) {
	c.view = ViewOffset{
		Enabled:    true,
		FullWidth:  fullWidth,
		FullHeight: fullHeight,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
	}
	c.UpdateProjectionMatrix()
}

// ClearViewOffset implements Camera and updates the projection.
func (c *PerspectiveCamera) ClearViewOffset() {
	c.view.Enabled = false
	c.UpdateProjectionMatrix()
}

// View implements Camera.
func (c *PerspectiveCamera) View() ViewOffset {
	return c.view
}

// LookAt orients the camera towards target. The orientation is kept until
// the next LookAt or ClearLookAt.
func (c *PerspectiveCamera) LookAt(target mgl32.Vec3) {
	c.target = &target
}

// ClearLookAt returns to Euler rotation.
func (c *PerspectiveCamera) ClearLookAt() {
	c.target = nil
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	world := c.WorldMatrix()
	if c.target == nil {
		return world.Inv()
	}
	eye := world.Col(3).Vec3()
	return mgl32.LookAtV(eye, *c.target, c.Up)
}

// Ensure PerspectiveCamera implements Camera.
var _ Camera = (*PerspectiveCamera)(nil)
