package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is an indexed triangle list with per-vertex normals.
type Geometry struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32

	edges [][2]uint32
}

// Triangles returns the number of triangles.
func (g *Geometry) Triangles() int {
	return len(g.Indices) / 3
}

// Edges returns the unique triangle edges, used for wireframe rendering.
// The result is computed once and cached.
func (g *Geometry) Edges() [][2]uint32 {
	if g.edges != nil {
		return g.edges
	}

	seen := make(map[[2]uint32]struct{}, len(g.Indices))
	edges := make([][2]uint32, 0, len(g.Indices))
	for i := 0; i+2 < len(g.Indices); i += 3 {
		tri := [3]uint32{g.Indices[i], g.Indices[i+1], g.Indices[i+2]}
		for j := range 3 {
			a, b := tri[j], tri[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]uint32{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	g.edges = edges
	return edges
}

// NewSphereGeometry builds a UV sphere centered on the origin.
//
// widthSegments is clamped to at least 3 and heightSegments to at least 2.
// The poles are single-triangle fans, so the first and last rings emit one
// triangle per segment.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)

	g := &Geometry{}
	grid := make([][]uint32, 0, heightSegments+1)

	var index uint32
	for iy := 0; iy <= heightSegments; iy++ {
		row := make([]uint32, 0, widthSegments+1)
		v := float32(iy) / float32(heightSegments)
		theta := v * math32.Pi

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi

			p := mgl32.Vec3{
				-radius * math32.Cos(phi) * math32.Sin(theta),
				radius * math32.Cos(theta),
				radius * math32.Sin(phi) * math32.Sin(theta),
			}
			g.Positions = append(g.Positions, p)

			n := p
			if n.Len() > 0 {
				n = n.Normalize()
			}
			g.Normals = append(g.Normals, n)

			row = append(row, index)
			index++
		}
		grid = append(grid, row)
	}

	for iy := range heightSegments {
		for ix := range widthSegments {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	return g
}
