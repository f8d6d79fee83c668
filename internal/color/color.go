// Package color provides color space conversions and tone mapping curves
// used by the renderer and the output pass.
//
// All float values are linear unless a function name says otherwise.
// Conversions to 8-bit sRGB go through a lookup table.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - ACES filmic fit: https://knarkowicz.wordpress.com/2016/01/06/aces-filmic-tone-mapping-curve/
package color

import "github.com/chewxy/math32"

// Space identifies the color space of output values.
type Space uint8

const (
	// SpaceSRGB encodes output with the sRGB transfer function.
	SpaceSRGB Space = iota
	// SpaceLinear writes linear values unchanged.
	SpaceLinear
)

// String returns the color space name.
func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "srgb"
	case SpaceLinear:
		return "srgb-linear"
	default:
		return "unknown"
	}
}

// SRGBToLinear converts an sRGB component in [0,1] to linear.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component in [0,1] to sRGB.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// HexToLinear splits a 0xRRGGBB value into linear RGB components.
// The hex value is interpreted as sRGB.
func HexToLinear(hex uint32) (r, g, b float32) {
	r = SRGBToLinear(float32((hex>>16)&0xFF) / 255)
	g = SRGBToLinear(float32((hex>>8)&0xFF) / 255)
	b = SRGBToLinear(float32(hex&0xFF) / 255)
	return r, g, b
}

// Saturate clamps v to [0,1].
func Saturate(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToByte maps a [0,1] value to [0,255] with rounding.
func ToByte(v float32) uint8 {
	v = Saturate(v)
	//nolint:gosec // G115: v is clamped to [0,1]
	return uint8(v*255 + 0.5)
}
