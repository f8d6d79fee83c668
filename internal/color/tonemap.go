package color

// ToneMapping selects the HDR to LDR curve.
type ToneMapping uint8

const (
	// NoToneMapping leaves values unchanged (they are clamped on encode).
	NoToneMapping ToneMapping = iota
	// LinearToneMapping scales by exposure and clamps.
	LinearToneMapping
	// ACESFilmicToneMapping applies the fitted ACES RRT+ODT curve.
	ACESFilmicToneMapping
)

// String returns the tone mapping name.
func (t ToneMapping) String() string {
	switch t {
	case NoToneMapping:
		return "none"
	case LinearToneMapping:
		return "linear"
	case ACESFilmicToneMapping:
		return "aces-filmic"
	default:
		return "unknown"
	}
}

// Apply maps a linear HDR color to [0,1] with the given exposure.
func (t ToneMapping) Apply(r, g, b, exposure float32) (float32, float32, float32) {
	switch t {
	case LinearToneMapping:
		return Saturate(r * exposure), Saturate(g * exposure), Saturate(b * exposure)
	case ACESFilmicToneMapping:
		return ACESFilmic(r, g, b, exposure)
	default:
		return r, g, b
	}
}

// rrtAndODTFit is the fitted reference rendering + output device transform.
func rrtAndODTFit(v float32) float32 {
	a := v*(v+0.0245786) - 0.000090537
	b := v*(0.983729*v+0.4329510) + 0.238081
	return a / b
}

// ACESFilmic applies the ACES filmic curve to a linear sRGB color.
// Exposure is divided by 0.6 to match the reference white point.
func ACESFilmic(r, g, b, exposure float32) (float32, float32, float32) {
	s := exposure / 0.6
	r, g, b = r*s, g*s, b*s

	// sRGB => XYZ => D65_2_D60 => AP1 => RRT_SAT
	ir := 0.59719*r + 0.35458*g + 0.04823*b
	ig := 0.07600*r + 0.90834*g + 0.01566*b
	ib := 0.02840*r + 0.13383*g + 0.83777*b

	ir, ig, ib = rrtAndODTFit(ir), rrtAndODTFit(ig), rrtAndODTFit(ib)

	// ODT_SAT => XYZ => D60_2_D65 => sRGB
	or := 1.60475*ir - 0.53108*ig - 0.07367*ib
	og := -0.10208*ir + 1.10813*ig - 0.00605*ib
	ob := -0.00327*ir - 0.07276*ig + 1.07602*ib

	return Saturate(or), Saturate(og), Saturate(ob)
}
