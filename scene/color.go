package scene

import "github.com/gogpu/fxbench/internal/color"

// Color is a linear RGB color.
type Color struct {
	R, G, B float32
}

// Hex converts a 0xRRGGBB sRGB value to a linear Color.
func Hex(hex uint32) Color {
	r, g, b := color.HexToLinear(hex)
	return Color{R: r, G: g, B: b}
}

// Ptr returns a pointer to a copy of c.
func (c Color) Ptr() *Color {
	return &c
}

// Scale returns c multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Add returns the component-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Lerp blends from c to o by t.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}
