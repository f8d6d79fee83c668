package scene

// HemisphereLight lights surfaces with a sky color from above and a ground
// color from below. Its direction is the normalized position.
type HemisphereLight struct {
	Object
	SkyColor    Color
	GroundColor Color
	Intensity   float32
}

// NewHemisphereLight creates a light pointing straight up.
func NewHemisphereLight(sky, ground Color, intensity float32) *HemisphereLight {
	l := &HemisphereLight{
		Object:      newObject(),
		SkyColor:    sky,
		GroundColor: ground,
		Intensity:   intensity,
	}
	l.Position[1] = 1
	return l
}
