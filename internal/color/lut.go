package color

// lutSize is the number of entries of the linear to sRGB table.
// 12 bits of input precision keep the 8-bit output within one step of the
// exact conversion.
const lutSize = 4096

// linearToSRGB8 maps a quantized linear value to an sRGB byte.
var linearToSRGB8 [lutSize]uint8

func init() {
	for i := range lutSize {
		linearToSRGB8[i] = ToByte(LinearToSRGB(float32(i) / (lutSize - 1)))
	}
}

// LinearToSRGB8 converts a linear component to an sRGB byte using the
// lookup table. The input is clamped to [0,1].
func LinearToSRGB8(l float32) uint8 {
	l = Saturate(l)
	return linearToSRGB8[int(l*(lutSize-1)+0.5)]
}

// Encode converts a linear component to an output byte in the given space.
func Encode(l float32, space Space) uint8 {
	if space == SpaceSRGB {
		return LinearToSRGB8(l)
	}
	return ToByte(l)
}
