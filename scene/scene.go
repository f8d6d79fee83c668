// Package scene provides the 3D scene graph rendered by the harness.
//
// The graph is a tree of nodes. Every node embeds Object, which carries a
// transform (position, Euler rotation, scale) and children. Concrete node
// types are Group, Mesh, HemisphereLight and PerspectiveCamera; Scene is the
// root and optionally provides a background color.
//
//	sc := scene.NewScene()
//	sc.Background = scene.Hex(0xffffff).Ptr()
//	group := scene.NewGroup()
//	group.Add(scene.NewMesh(scene.NewSphereGeometry(10, 64, 40), &scene.LambertMaterial{...}))
//	sc.Add(group)
//
// Math uses float32 vectors and matrices from mgl32.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is the root of a scene graph.
type Scene struct {
	Object

	// Background, when set, clears the color buffer before every render
	// regardless of the renderer's auto-clear setting.
	Background *Color
}

// NewScene creates an empty scene without background.
func NewScene() *Scene {
	return &Scene{Object: newObject()}
}

// Lights returns all visible hemisphere lights in the scene.
func (s *Scene) Lights() []*HemisphereLight {
	var lights []*HemisphereLight
	s.Traverse(func(n Node, _ mgl32.Mat4) {
		if l, ok := n.(*HemisphereLight); ok {
			lights = append(lights, l)
		}
	})
	return lights
}

// Meshes returns the number of visible meshes in the scene.
func (s *Scene) Meshes() int {
	count := 0
	s.Traverse(func(n Node, _ mgl32.Mat4) {
		if _, ok := n.(*Mesh); ok {
			count++
		}
	})
	return count
}
