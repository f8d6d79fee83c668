package bench

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/fxbench/scene"
)

// SceneConfig describes the benchmark scene.
type SceneConfig struct {
	// Spheres is the number of lit spheres, each with a wireframe overlay.
	Spheres int `toml:"spheres"`

	WidthSegments  int `toml:"width_segments"`
	HeightSegments int `toml:"height_segments"`

	// Seed makes the random sphere scales reproducible.
	Seed uint64 `toml:"seed"`
}

// DefaultSceneConfig returns five 64x40 spheres.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Spheres:        5,
		WidthSegments:  64,
		HeightSegments: 40,
		Seed:           1,
	}
}

// Scene constants.
const (
	SphereRadius = 10

	CameraFov  = 45
	CameraNear = 10
	CameraFar  = 200

	// CameraDistance keeps the largest sphere inside the clip range.
	CameraDistance = 100

	// RotationStep is the group rotation per frame, in radians.
	RotationStep = 0.002
)

// World is the animated scene and its camera.
type World struct {
	Scene  *scene.Scene
	Camera *scene.PerspectiveCamera
	Group  *scene.Group
}

// BuildScene creates a white-background scene lit by a hemisphere light,
// with a rotating group of red Lambert spheres and white wireframe
// overlays sharing their transforms.
func BuildScene(cfg SceneConfig, aspect float32) *World {
	sc := scene.NewScene()
	sc.Background = scene.Hex(0xffffff).Ptr()

	light := scene.NewHemisphereLight(scene.Hex(0xffffff), scene.Hex(0x222222), 5)
	light.Position = mgl32.Vec3{1, 1, 1}
	sc.Add(light)

	geometry := scene.NewSphereGeometry(SphereRadius, cfg.WidthSegments, cfg.HeightSegments)
	solid := &scene.LambertMaterial{
		MaterialParams: scene.MaterialParams{
			PolygonOffset:       true,
			PolygonOffsetFactor: 1,
			PolygonOffsetUnits:  1,
		},
		Color: scene.Hex(0xee0808),
	}
	wire := &scene.BasicMaterial{
		MaterialParams: scene.MaterialParams{Wireframe: true},
		Color:          scene.Hex(0xffffff),
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	group := scene.NewGroup()
	for range max(cfg.Spheres, 0) {
		mesh := scene.NewMesh(geometry, solid)
		s := rng.Float32() + 2
		mesh.Scale = mgl32.Vec3{s, s, s}
		group.Add(mesh)

		overlay := scene.NewMesh(geometry, wire)
		overlay.CopyTransform(mesh.Base())
		group.Add(overlay)
	}
	sc.Add(group)

	if aspect <= 0 {
		aspect = 1
	}
	cam := scene.NewPerspectiveCamera(CameraFov, aspect, CameraNear, CameraFar)
	cam.Position = mgl32.Vec3{0, 0, CameraDistance}
	cam.LookAt(mgl32.Vec3{})

	return &World{Scene: sc, Camera: cam, Group: group}
}
