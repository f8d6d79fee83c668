package scene

// Material describes how a mesh is shaded.
type Material interface {
	// Params returns the rasterization parameters shared by all materials.
	Params() *MaterialParams
}

// MaterialParams holds rasterization state.
type MaterialParams struct {
	// Wireframe draws triangle edges instead of filled triangles.
	Wireframe bool

	// PolygonOffset pushes filled triangles away from the camera by
	// Factor * max depth slope + Units * minimum resolvable depth.
	// A positive offset lets coplanar wireframes win the depth test.
	PolygonOffset       bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32

	// DoubleSided disables back-face culling.
	DoubleSided bool
}

// Params implements Material.
func (p *MaterialParams) Params() *MaterialParams {
	return p
}

// LambertMaterial is a diffuse material lit by the scene lights.
type LambertMaterial struct {
	MaterialParams
	Color Color
}

// BasicMaterial is an unlit material with a constant color.
type BasicMaterial struct {
	MaterialParams
	Color Color
}
