// Package host is a headless stand-in for the UI layer that owns the canvas:
// a window with a viewport size, a device pixel ratio and an animation loop
// that calls the frame callback once per refresh.
package host

import (
	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/render"
)

// ResizeFunc is called with the new viewport size in CSS pixels.
type ResizeFunc func(width, height int)

// Viewport is the visible area of a window in CSS pixels.
//
// Viewport is not safe for concurrent use. Resize is expected to be called
// from the goroutine that runs the animation loop.
type Viewport struct {
	width, height    int
	devicePixelRatio float32
	listeners        []ResizeFunc
}

// NewViewport creates a viewport. A device pixel ratio <= 0 is treated as 1.
func NewViewport(width, height int, devicePixelRatio float32) *Viewport {
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	return &Viewport{
		width:            max(width, 0),
		height:           max(height, 0),
		devicePixelRatio: devicePixelRatio,
	}
}

// Size returns the viewport size in CSS pixels.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// DevicePixelRatio returns the ratio of device pixels to CSS pixels.
func (v *Viewport) DevicePixelRatio() float32 {
	return v.devicePixelRatio
}

// OnResize registers fn to be called after every size change.
func (v *Viewport) OnResize(fn ResizeFunc) {
	if fn != nil {
		v.listeners = append(v.listeners, fn)
	}
}

// Resize changes the size and notifies listeners in registration order.
// It reports whether the size changed.
func (v *Viewport) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == v.width && height == v.height {
		return false
	}
	v.width, v.height = width, height
	fxbench.Logger().Debug("host: viewport resized", "width", width, "height", height)
	for _, fn := range v.listeners {
		fn(width, height)
	}
	return true
}

// Window pairs a viewport with the canvas it displays.
type Window struct {
	*Viewport
	canvas *render.Canvas
}

// NewWindow creates a window whose canvas style box fills the viewport.
// The canvas drawing buffer starts at the style size; the renderer resizes
// it to match its pixel ratio.
func NewWindow(width, height int, devicePixelRatio float32) *Window {
	return &Window{
		Viewport: NewViewport(width, height, devicePixelRatio),
		canvas:   render.NewCanvas(width, height),
	}
}

// Canvas returns the rendering surface of the window.
func (w *Window) Canvas() *render.Canvas {
	return w.canvas
}
