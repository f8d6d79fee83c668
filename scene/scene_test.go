package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestObjectAddReparents(t *testing.T) {
	a := NewGroup()
	b := NewGroup()
	m := NewMesh(NewSphereGeometry(1, 8, 6), &BasicMaterial{})

	a.Add(m)
	if m.Parent() != &a.Object {
		t.Fatal("mesh parent should be a")
	}
	b.Add(m)
	if len(a.Children()) != 0 {
		t.Errorf("a has %d children after move, want 0", len(a.Children()))
	}
	if m.Parent() != &b.Object {
		t.Error("mesh parent should be b after move")
	}

	b.Add(b)
	if len(b.Children()) != 1 {
		t.Errorf("self add changed children: %d", len(b.Children()))
	}

	if !b.Remove(m) {
		t.Error("Remove() = false, want true")
	}
	if b.Remove(m) {
		t.Error("second Remove() = true, want false")
	}
	if m.Parent() != nil {
		t.Error("parent not cleared")
	}
}

func TestWorldMatrix(t *testing.T) {
	g := NewGroup()
	g.Position = mgl32.Vec3{10, 0, 0}
	g.Scale = mgl32.Vec3{2, 2, 2}

	m := NewMesh(nil, &BasicMaterial{})
	m.Position = mgl32.Vec3{1, 0, 0}
	g.Add(m)

	p := m.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl32.Vec3{12, 0, 0}) {
		t.Errorf("world origin = %v, want (12,0,0)", p)
	}
}

func TestTraverseSkipsInvisible(t *testing.T) {
	sc := NewScene()
	visible := NewGroup()
	hidden := NewGroup()
	hidden.Visible = false
	hidden.Add(NewMesh(nil, &BasicMaterial{}))
	visible.Add(NewMesh(nil, &BasicMaterial{}), NewMesh(nil, &BasicMaterial{}))
	sc.Add(visible, hidden, NewHemisphereLight(Hex(0xffffff), Hex(0x222222), 5))

	if got := sc.Meshes(); got != 2 {
		t.Errorf("Meshes() = %d, want 2", got)
	}
	if got := len(sc.Lights()); got != 1 {
		t.Errorf("Lights() = %d, want 1", got)
	}
}

func TestSphereGeometry(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		vertices  int
		triangles int
	}{
		{"harness", 64, 40, 65 * 41, 2 * 64 * 39},
		{"small", 8, 6, 9 * 7, 2 * 8 * 5},
		{"clamped", 1, 1, 4 * 3, 2 * 3 * 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSphereGeometry(10, tt.w, tt.h)
			if len(g.Positions) != tt.vertices {
				t.Errorf("vertices = %d, want %d", len(g.Positions), tt.vertices)
			}
			if len(g.Normals) != len(g.Positions) {
				t.Errorf("normals = %d, want %d", len(g.Normals), len(g.Positions))
			}
			if g.Triangles() != tt.triangles {
				t.Errorf("triangles = %d, want %d", g.Triangles(), tt.triangles)
			}
			for i, p := range g.Positions {
				if l := p.Len(); l < 9.999 || l > 10.001 {
					t.Fatalf("vertex %d at distance %v, want 10", i, l)
				}
			}
			for _, idx := range g.Indices {
				if int(idx) >= len(g.Positions) {
					t.Fatalf("index %d out of range", idx)
				}
			}
		})
	}
}

func TestGeometryEdges(t *testing.T) {
	quad := &Geometry{
		Positions: make([]mgl32.Vec3, 4),
		Indices:   []uint32{0, 1, 2, 2, 1, 3},
	}
	edges := quad.Edges()
	if len(edges) != 5 {
		t.Fatalf("Edges() = %d, want 5", len(edges))
	}
	seen := map[[2]uint32]bool{}
	for _, e := range edges {
		if e[0] > e[1] {
			t.Errorf("edge %v not ordered", e)
		}
		if seen[e] {
			t.Errorf("duplicate edge %v", e)
		}
		seen[e] = true
	}
	if &quad.Edges()[0] != &edges[0] {
		t.Error("Edges() not cached")
	}
}

func TestHexIsLinear(t *testing.T) {
	c := Hex(0xffffff)
	if c.R < 0.999 || c.G < 0.999 || c.B < 0.999 {
		t.Errorf("Hex(white) = %v", c)
	}
	g := Hex(0x222222)
	if g.R <= 0 || g.R >= float32(0x22)/255 {
		t.Errorf("Hex(0x222222).R = %v, want linear value below sRGB value", g.R)
	}
}

func TestPerspectiveCameraProjection(t *testing.T) {
	cam := NewPerspectiveCamera(45, 2, 10, 200)

	near := cam.ProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	if z := near.Z() / near.W(); z < -1.0001 || z > -0.9999 {
		t.Errorf("near plane ndc z = %v, want -1", z)
	}
	far := cam.ProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, -200, 1})
	if z := far.Z() / far.W(); z < 0.9999 || z > 1.0001 {
		t.Errorf("far plane ndc z = %v, want 1", z)
	}

	base := cam.ProjectionMatrix()
	cam.SetViewOffset(200, 100, 0, 0, 200, 100)
	if !cam.ProjectionMatrix().ApproxEqual(base) {
		t.Error("full-size view offset changed projection")
	}

	cam.SetViewOffset(200, 100, 0.5, 0, 200, 100)
	if cam.ProjectionMatrix().ApproxEqual(base) {
		t.Error("jittered view offset did not change projection")
	}

	cam.ClearViewOffset()
	if !cam.ProjectionMatrix().ApproxEqual(base) {
		t.Error("ClearViewOffset did not restore projection")
	}
}

func TestPerspectiveCameraViewMatrix(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 10, 200)
	cam.Position = mgl32.Vec3{0, 0, 100}

	p := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl32.Vec3{0, 0, -100}) {
		t.Errorf("origin in view space = %v, want (0,0,-100)", p)
	}

	cam.Position = mgl32.Vec3{100, 0, 0}
	cam.LookAt(mgl32.Vec3{})
	p = cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -100}, 1e-3) {
		t.Errorf("look-at origin in view space = %v, want (0,0,-100)", p)
	}
}

func BenchmarkSphereGeometry(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = NewSphereGeometry(10, 64, 40)
	}
}
