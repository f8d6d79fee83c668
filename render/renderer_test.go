// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/fxbench/scene"
)

func quadGeometry(reversed bool) *scene.Geometry {
	g := &scene.Geometry{
		Positions: []mgl32.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		Normals:   []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
	if reversed {
		g.Indices = []uint32{0, 2, 1, 0, 3, 2}
	}
	return g
}

func testCamera(z float32) *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(45, 1, 1, 100)
	cam.Position = mgl32.Vec3{0, 0, z}
	return cam
}

func redSphereScene() *scene.Scene {
	sc := scene.NewScene()
	sc.Add(scene.NewMesh(scene.NewSphereGeometry(10, 32, 16), &scene.BasicMaterial{Color: scene.Color{R: 1}}))
	return sc
}

func TestRendererSize(t *testing.T) {
	r := newTestRenderer(t, 10, 10, WithPixelRatio(1.5))

	if err := r.SetSize(101, 51); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	if w, h := r.Size(); w != 101 || h != 51 {
		t.Errorf("Size() = %dx%d, want 101x51", w, h)
	}
	if w, h := r.DrawingBufferSize(); w != 151 || h != 76 {
		t.Errorf("DrawingBufferSize() = %dx%d, want 151x76", w, h)
	}
	if r.Canvas().Width() != 151 || r.Canvas().Height() != 76 {
		t.Errorf("canvas = %dx%d, want 151x76", r.Canvas().Width(), r.Canvas().Height())
	}
	if w, h := r.Canvas().StyleSize(); w != 101 || h != 51 {
		t.Errorf("style = %dx%d, want 101x51", w, h)
	}

	r.SetPixelRatio(2)
	if w, h := r.DrawingBufferSize(); w != 202 || h != 102 {
		t.Errorf("DrawingBufferSize() after ratio = %dx%d, want 202x102", w, h)
	}
	r.SetPixelRatio(0)
	if r.PixelRatio() != 2 {
		t.Errorf("PixelRatio() = %v, want 2", r.PixelRatio())
	}

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if err := r.SetSize(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("SetSize(%d, %d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestRenderToCanvas(t *testing.T) {
	r := newTestRenderer(t, 32, 32)

	if err := r.Render(redSphereScene(), testCamera(50)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	c := r.Canvas()
	if got := c.RGBAAt(16, 16); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("center = %v, want opaque red", got)
	}
	if got := c.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("corner = %v, want opaque black", got)
	}

	info := r.Info()
	if info.Render.Calls != 1 || info.Render.Triangles == 0 {
		t.Errorf("render info = %+v", info.Render)
	}
	if info.Memory.Targets != 0 {
		t.Errorf("canvas rendering should not count targets, got %d", info.Memory.Targets)
	}
}

func TestRenderBackground(t *testing.T) {
	r := newTestRenderer(t, 8, 8)
	r.SetAutoClear(false)

	sc := scene.NewScene()
	sc.Background = scene.Hex(0xffffff).Ptr()
	if err := r.Render(sc, testCamera(5)); err != nil {
		t.Fatal(err)
	}
	if got := r.Canvas().RGBAAt(3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v, want white", got)
	}
}

func TestRenderCulling(t *testing.T) {
	tests := []struct {
		name        string
		reversed    bool
		doubleSided bool
		visible     bool
	}{
		{"front", false, false, true},
		{"back culled", true, false, false},
		{"back double sided", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t, 16, 16)
			target := NewTarget(16, 16)
			defer target.Dispose()
			r.SetRenderTarget(target)

			mat := &scene.BasicMaterial{Color: scene.Color{G: 1}}
			mat.DoubleSided = tt.doubleSided
			sc := scene.NewScene()
			sc.Add(scene.NewMesh(quadGeometry(tt.reversed), mat))

			if err := r.Render(sc, testCamera(5)); err != nil {
				t.Fatal(err)
			}
			got := target.At(8, 8)[1] == 1
			if got != tt.visible {
				t.Errorf("visible = %v, want %v", got, tt.visible)
			}
		})
	}
}

func TestRenderDepthTest(t *testing.T) {
	r := newTestRenderer(t, 16, 16)
	target := NewTarget(16, 16)
	defer target.Dispose()
	r.SetRenderTarget(target)

	near := scene.NewMesh(quadGeometry(false), &scene.BasicMaterial{Color: scene.Color{R: 1}})
	near.Position = mgl32.Vec3{0, 0, 1}
	far := scene.NewMesh(quadGeometry(false), &scene.BasicMaterial{Color: scene.Color{B: 1}})

	sc := scene.NewScene()
	sc.Add(near, far)
	if err := r.Render(sc, testCamera(5)); err != nil {
		t.Fatal(err)
	}
	if got := target.At(8, 8); got[0] != 1 || got[2] != 0 {
		t.Errorf("center = %v, want the nearer red quad", got)
	}
}

func TestRenderWireframeOverPolygonOffset(t *testing.T) {
	r := newTestRenderer(t, 32, 32)
	target := NewTarget(32, 32)
	defer target.Dispose()
	r.SetRenderTarget(target)

	geom := quadGeometry(false)
	solid := &scene.BasicMaterial{Color: scene.Color{R: 1}}
	solid.PolygonOffset = true
	solid.PolygonOffsetFactor = 1
	solid.PolygonOffsetUnits = 1
	wire := &scene.BasicMaterial{Color: scene.Color{R: 1, G: 1, B: 1}}
	wire.Wireframe = true

	sc := scene.NewScene()
	sc.Add(scene.NewMesh(geom, solid), scene.NewMesh(geom, wire))
	if err := r.Render(sc, testCamera(3)); err != nil {
		t.Fatal(err)
	}

	white, red := 0, 0
	for y := range 32 {
		for x := range 32 {
			switch c := target.At(x, y); {
			case c[0] == 1 && c[1] == 1:
				white++
			case c[0] == 1:
				red++
			}
		}
	}
	if white == 0 || red == 0 {
		t.Errorf("white = %d, red = %d; want both wireframe and fill visible", white, red)
	}
	if r.Info().Render.Lines != len(geom.Edges()) {
		t.Errorf("Lines = %d, want %d", r.Info().Render.Lines, len(geom.Edges()))
	}
}

func TestRenderMultisampleResolve(t *testing.T) {
	r := newTestRenderer(t, 32, 32)
	target := NewTarget(32, 32, WithSamples(8))
	defer target.Dispose()
	r.SetRenderTarget(target)

	if err := r.Render(redSphereScene(), testCamera(50)); err != nil {
		t.Fatal(err)
	}

	partial := 0
	for y := range 32 {
		for x := range 32 {
			if v := target.At(x, y)[0]; v > 0 && v < 1 {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("expected partially covered pixels along the silhouette")
	}
	if target.At(16, 16)[0] != 1 {
		t.Errorf("center = %v, want fully covered", target.At(16, 16))
	}
}

func TestRenderAutoClearOff(t *testing.T) {
	r := newTestRenderer(t, 8, 8)
	target := NewTarget(8, 8)
	defer target.Dispose()
	r.SetRenderTarget(target)
	r.SetClearColor(scene.Color{B: 1}, 1)
	r.Clear()

	r.SetAutoClear(false)
	if err := r.Render(scene.NewScene(), testCamera(5)); err != nil {
		t.Fatal(err)
	}
	if got := target.At(1, 1); got[2] != 1 {
		t.Errorf("content lost without auto clear: %v", got)
	}

	r.SetAutoClear(true)
	r.SetClearColor(scene.Color{}, 1)
	if err := r.Render(scene.NewScene(), testCamera(5)); err != nil {
		t.Fatal(err)
	}
	if got := target.At(1, 1); got[2] != 0 {
		t.Errorf("auto clear did not clear: %v", got)
	}
}

func TestShade(t *testing.T) {
	r := newTestRenderer(t, 8, 4)
	target := NewTarget(8, 4)
	defer target.Dispose()

	r.SetRenderTarget(target)
	err := r.Shade(func(x, y int, dst []float32) {
		dst[0] = float32(x)
		dst[1] = float32(y)
		dst[2] = 2
		dst[3] = 1
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := target.At(5, 3); got != [4]float32{5, 3, 2, 1} {
		t.Errorf("target At(5,3) = %v", got)
	}

	r.SetRenderTarget(nil)
	if err := r.Shade(func(_, _ int, dst []float32) {
		dst[0], dst[1], dst[2], dst[3] = 1, 0.5, 0, 0
	}); err != nil {
		t.Fatal(err)
	}
	if got := r.Canvas().RGBAAt(0, 0); got != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("canvas = %v, want {255 128 0 255}", got)
	}
}

func TestToneMappingOnlyOnCanvas(t *testing.T) {
	r := newTestRenderer(t, 16, 16, WithToneMapping(ACESFilmicToneMapping))
	target := NewTarget(16, 16)
	defer target.Dispose()

	sc := scene.NewScene()
	sc.Add(scene.NewMesh(quadGeometry(false), &scene.BasicMaterial{Color: scene.Color{R: 4, G: 4, B: 4}}))

	r.SetRenderTarget(target)
	if err := r.Render(sc, testCamera(3)); err != nil {
		t.Fatal(err)
	}
	if got := target.At(8, 8)[0]; got != 4 {
		t.Errorf("target value = %v, want linear 4", got)
	}

	r.SetRenderTarget(nil)
	if err := r.Render(sc, testCamera(3)); err != nil {
		t.Fatal(err)
	}
	if got := r.Canvas().RGBAAt(8, 8); got.R == 0 || got.R == 255 {
		t.Errorf("canvas value = %v, want tone mapped below white", got)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := newTestRenderer(t, 48, 32)
	parallel := newTestRenderer(t, 48, 32, WithWorkers(4))
	if parallel.Workers() != 4 {
		t.Fatalf("Workers() = %d, want 4", parallel.Workers())
	}

	for _, r := range []*Renderer{serial, parallel} {
		if err := r.Render(redSphereScene(), testCamera(50)); err != nil {
			t.Fatal(err)
		}
	}

	a, b := serial.Canvas().Pixels(), parallel.Canvas().Pixels()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel byte %d differs: %d != %d", i, a[i], b[i])
		}
	}
}

func TestLambert(t *testing.T) {
	light := scene.NewHemisphereLight(scene.Color{R: 1, G: 1, B: 1}, scene.Color{}, math32.Pi)
	lights := []*scene.HemisphereLight{light}
	white := scene.Color{R: 1, G: 1, B: 1}

	up := lambert(white, mgl32.Vec3{0, 1, 0}, lights)
	if math32.Abs(up.R-1) > 1e-5 {
		t.Errorf("facing sky = %v, want 1", up.R)
	}
	side := lambert(white, mgl32.Vec3{1, 0, 0}, lights)
	if math32.Abs(side.R-0.5) > 1e-5 {
		t.Errorf("side = %v, want 0.5", side.R)
	}
	down := lambert(white, mgl32.Vec3{0, -1, 0}, lights)
	if down.R != 0 {
		t.Errorf("facing ground = %v, want 0", down.R)
	}
	if none := lambert(white, mgl32.Vec3{0, 1, 0}, nil); none != (scene.Color{}) {
		t.Errorf("no lights = %v, want black", none)
	}
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(NewCanvas(4, 4))
	if err := r.Render(scene.NewScene(), nil); !errors.Is(err, ErrNilCamera) {
		t.Errorf("nil camera error = %v", err)
	}
	r.Dispose()
	r.Dispose()
	if err := r.Render(scene.NewScene(), testCamera(5)); !errors.Is(err, ErrDisposed) {
		t.Errorf("disposed Render error = %v", err)
	}
	if err := r.Shade(func(int, int, []float32) {}); !errors.Is(err, ErrDisposed) {
		t.Errorf("disposed Shade error = %v", err)
	}
}

func TestDeviceHandle(t *testing.T) {
	r := newTestRenderer(t, 4, 4)
	if HasDevice(r.Device()) {
		t.Error("default renderer should run without a device")
	}
	if HasDevice(nil) {
		t.Error("HasDevice(nil) = true")
	}
	r2 := newTestRenderer(t, 4, 4, WithDevice(nil))
	if _, ok := r2.Device().(NullDeviceHandle); !ok {
		t.Error("WithDevice(nil) should keep the null device")
	}
}

func BenchmarkRenderSphere(b *testing.B) {
	r := NewRenderer(NewCanvas(128, 128))
	defer r.Dispose()
	sc := redSphereScene()
	cam := testCamera(50)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.Render(sc, cam)
	}
}

func BenchmarkRenderMultisampled(b *testing.B) {
	r := NewRenderer(NewCanvas(128, 128))
	defer r.Dispose()
	target := NewTarget(128, 128, WithSamples(8))
	defer target.Dispose()
	r.SetRenderTarget(target)
	sc := redSphereScene()
	cam := testCamera(50)

	b.ReportAllocs()
	for b.Loop() {
		_ = r.Render(sc, cam)
	}
}
