package scene

// Mesh binds a geometry to a material.
type Mesh struct {
	Object
	Geometry *Geometry
	Material Material
}

// NewMesh creates a mesh with identity transform.
func NewMesh(geometry *Geometry, material Material) *Mesh {
	return &Mesh{
		Object:   newObject(),
		Geometry: geometry,
		Material: material,
	}
}
