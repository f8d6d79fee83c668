// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/fxbench/scene"
)

// depthUnit is the minimum resolvable difference of a 24-bit depth buffer,
// the "units" scale of polygon offset.
const depthUnit = 1.0 / (1 << 24)

// clipVertex is a vertex after the vertex stage.
type clipVertex struct {
	pos   mgl32.Vec4
	color scene.Color
}

// screenVertex is a vertex after perspective divide and viewport mapping.
type screenVertex struct {
	x, y, z float32
	invW    float32
	color   scene.Color
}

// rasterizer draws meshes into a Target. Scratch buffers are reused between
// calls.
type rasterizer struct {
	t       *Target
	pattern [][2]float32
	stats   *RenderInfo

	verts []clipVertex
	poly  []clipVertex
	tmp   []clipVertex
}

// draw renders every visible mesh of sc.
func (rs *rasterizer) draw(t *Target, sc *scene.Scene, cam scene.Camera, stats *RenderInfo) {
	rs.t = t
	rs.pattern = samplePattern(t.samples)
	rs.stats = stats

	vp := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	lights := sc.Lights()

	sc.Traverse(func(n scene.Node, world mgl32.Mat4) {
		m, ok := n.(*scene.Mesh)
		if !ok || m.Geometry == nil || m.Material == nil {
			return
		}
		rs.drawMesh(m, world, vp, lights)
	})
}

func (rs *rasterizer) drawMesh(m *scene.Mesh, world, vp mgl32.Mat4, lights []*scene.HemisphereLight) {
	g := m.Geometry
	params := m.Material.Params()

	var albedo scene.Color
	lit := false
	switch mat := m.Material.(type) {
	case *scene.LambertMaterial:
		albedo, lit = mat.Color, true
	case *scene.BasicMaterial:
		albedo = mat.Color
	}

	mvp := vp.Mul4(world)
	normalMatrix := world.Mat3().Inv().Transpose()

	if cap(rs.verts) < len(g.Positions) {
		rs.verts = make([]clipVertex, len(g.Positions))
	}
	verts := rs.verts[:len(g.Positions)]
	for i, p := range g.Positions {
		c := albedo
		if lit {
			var n mgl32.Vec3
			if i < len(g.Normals) {
				n = normalize(normalMatrix.Mul3x1(g.Normals[i]))
			}
			c = lambert(albedo, n, lights)
		}
		verts[i] = clipVertex{pos: mvp.Mul4x1(p.Vec4(1)), color: c}
	}

	if params.Wireframe {
		for _, e := range g.Edges() {
			rs.drawLine(verts[e[0]], verts[e[1]])
		}
		return
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		rs.drawTriangle(verts[g.Indices[i]], verts[g.Indices[i+1]], verts[g.Indices[i+2]], params)
	}
}

// lambert evaluates diffuse lighting from hemisphere lights:
// albedo / pi * sum(mix(ground, sky, 0.5*dot(n, dir)+0.5) * intensity).
func lambert(albedo scene.Color, n mgl32.Vec3, lights []*scene.HemisphereLight) scene.Color {
	var irradiance scene.Color
	for _, l := range lights {
		dir := normalize(l.WorldMatrix().Col(3).Vec3())
		weight := 0.5*n.Dot(dir) + 0.5
		irradiance = irradiance.Add(l.GroundColor.Lerp(l.SkyColor, weight).Scale(l.Intensity))
	}
	return albedo.Mul(irradiance).Scale(1 / math32.Pi)
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// clipNear clips a polygon against the near plane z >= -w.
func (rs *rasterizer) clipNear(in []clipVertex) []clipVertex {
	out := rs.tmp[:0]
	for i := range in {
		a, b := in[i], in[(i+1)%len(in)]
		da := a.pos.Z() + a.pos.W()
		db := b.pos.Z() + b.pos.W()
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			out = append(out, clipVertex{
				pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
				color: a.color.Lerp(b.color, t),
			})
		}
	}
	rs.tmp = out
	return out
}

func (rs *rasterizer) toScreen(v clipVertex) screenVertex {
	invW := 1 / v.pos.W()
	return screenVertex{
		x:     (v.pos.X()*invW*0.5 + 0.5) * float32(rs.t.width),
		y:     (0.5 - v.pos.Y()*invW*0.5) * float32(rs.t.height),
		z:     v.pos.Z()*invW*0.5 + 0.5,
		invW:  invW,
		color: v.color,
	}
}

func (rs *rasterizer) drawTriangle(a, b, c clipVertex, params *scene.MaterialParams) {
	rs.poly = append(rs.poly[:0], a, b, c)
	poly := rs.poly
	if a.pos.Z() < -a.pos.W() || b.pos.Z() < -b.pos.W() || c.pos.Z() < -c.pos.W() {
		poly = rs.clipNear(poly)
		if len(poly) < 3 {
			return
		}
	}

	s0 := rs.toScreen(poly[0])
	for i := 1; i+1 < len(poly); i++ {
		rs.fillTriangle(s0, rs.toScreen(poly[i]), rs.toScreen(poly[i+1]), params)
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (rs *rasterizer) fillTriangle(a, b, c screenVertex, params *scene.MaterialParams) {
	area := edge(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}
	// Counter-clockwise in NDC is clockwise once y points down, so front
	// faces have negative area here.
	if area > 0 && !params.DoubleSided {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	t := rs.t
	minX := max(int(math32.Floor(min(a.x, b.x, c.x))), 0)
	maxX := min(int(math32.Ceil(max(a.x, b.x, c.x))), t.width-1)
	minY := max(int(math32.Floor(min(a.y, b.y, c.y))), 0)
	maxY := min(int(math32.Ceil(max(a.y, b.y, c.y))), t.height-1)
	if minX > maxX || minY > maxY {
		return
	}
	rs.stats.Triangles++

	var offset float32
	if params.PolygonOffset {
		e1x, e1y, e1z := b.x-a.x, b.y-a.y, b.z-a.z
		e2x, e2y, e2z := c.x-a.x, c.y-a.y, c.z-a.z
		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x
		slope := max(math32.Abs(nx/nz), math32.Abs(ny/nz))
		offset = params.PolygonOffsetFactor*slope + params.PolygonOffsetUnits*depthUnit
	}

	inv := 1 / area
	flat := a.color == b.color && b.color == c.color
	samples := t.samples
	var covered [16]bool

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pixel := y*t.width + x
			hit := false
			for k, sp := range rs.pattern {
				px, py := float32(x)+sp[0], float32(y)+sp[1]
				w0 := edge(b.x, b.y, c.x, c.y, px, py)
				w1 := edge(c.x, c.y, a.x, a.y, px, py)
				w2 := edge(a.x, a.y, b.x, b.y, px, py)
				covered[k] = false
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				z := (w0*a.z+w1*b.z+w2*c.z)*inv + offset
				if z < 0 || z > 1 {
					continue
				}
				if t.depth != nil {
					di := pixel*samples + k
					if z > t.depth[di] {
						continue
					}
					t.depth[di] = z
				}
				covered[k] = true
				hit = true
			}
			if !hit {
				continue
			}

			col := a.color
			if !flat {
				// Shade once per pixel at its center, perspective correct.
				cx, cy := float32(x)+0.5, float32(y)+0.5
				l0 := max(edge(b.x, b.y, c.x, c.y, cx, cy)*inv, 0) * a.invW
				l1 := max(edge(c.x, c.y, a.x, a.y, cx, cy)*inv, 0) * b.invW
				l2 := max(edge(a.x, a.y, b.x, b.y, cx, cy)*inv, 0) * c.invW
				sum := l0 + l1 + l2
				if sum == 0 {
					l0, sum = 1, 1
				}
				col = a.color.Scale(l0 / sum).Add(b.color.Scale(l1 / sum)).Add(c.color.Scale(l2 / sum))
			}
			rs.write(pixel, covered[:samples], col)
		}
	}
}

// write stores col in the covered samples of pixel.
func (rs *rasterizer) write(pixel int, covered []bool, col scene.Color) {
	t := rs.t
	if t.samples == 1 {
		if covered[0] {
			i := pixel * 4
			t.color[i], t.color[i+1], t.color[i+2], t.color[i+3] = col.R, col.G, col.B, 1
		}
		return
	}
	for k, ok := range covered {
		if !ok {
			continue
		}
		i := (pixel*t.samples + k) * 4
		t.sampleColor[i], t.sampleColor[i+1], t.sampleColor[i+2], t.sampleColor[i+3] = col.R, col.G, col.B, 1
	}
}

// drawLine draws a one pixel wide line covering every sample of the pixels
// it crosses.
func (rs *rasterizer) drawLine(a, b clipVertex) {
	da := a.pos.Z() + a.pos.W()
	db := b.pos.Z() + b.pos.W()
	if da < 0 && db < 0 {
		return
	}
	if da < 0 || db < 0 {
		t := da / (da - db)
		mid := clipVertex{
			pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
			color: a.color.Lerp(b.color, t),
		}
		if da < 0 {
			a = mid
		} else {
			b = mid
		}
	}

	sa, sb := rs.toScreen(a), rs.toScreen(b)
	dx, dy := sb.x-sa.x, sb.y-sa.y
	steps := int(math32.Ceil(max(math32.Abs(dx), math32.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	rs.stats.Lines++

	t := rs.t
	samples := t.samples
	var covered [16]bool
	for i := 0; i <= steps; i++ {
		f := float32(i) / float32(steps)
		x := int(math32.Floor(sa.x + dx*f))
		y := int(math32.Floor(sa.y + dy*f))
		if x < 0 || y < 0 || x >= t.width || y >= t.height {
			continue
		}
		z := sa.z + (sb.z-sa.z)*f
		if z < 0 || z > 1 {
			continue
		}

		pixel := y*t.width + x
		hit := false
		for k := range samples {
			covered[k] = false
			if t.depth != nil {
				di := pixel*samples + k
				if z > t.depth[di] {
					continue
				}
				t.depth[di] = z
			}
			covered[k] = true
			hit = true
		}
		if hit {
			rs.write(pixel, covered[:samples], sa.color.Lerp(sb.color, f))
		}
	}
}
