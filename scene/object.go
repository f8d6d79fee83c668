package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is implemented by everything that can be placed in a scene graph.
// All node types embed Object, which provides the implementation.
type Node interface {
	Base() *Object
}

// Object carries the transform and children shared by all scene nodes.
//
// Rotation is stored as XYZ Euler angles in radians. The local matrix is
// composed as Translate * RotateX * RotateY * RotateZ * Scale.
type Object struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Visible  bool

	parent   *Object
	children []Node
}

// newObject returns an Object with unit scale that is visible.
func newObject() Object {
	return Object{
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
	}
}

// Base returns the receiver. It makes *Object and every type embedding
// Object satisfy Node.
func (o *Object) Base() *Object {
	return o
}

// Add appends children to o. A node that already has a parent is moved.
// Adding o to itself is ignored.
func (o *Object) Add(children ...Node) {
	for _, child := range children {
		c := child.Base()
		if c == o {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(child)
		}
		c.parent = o
		o.children = append(o.children, child)
	}
}

// Remove detaches child from o. It reports whether child was found.
func (o *Object) Remove(child Node) bool {
	c := child.Base()
	for i, n := range o.children {
		if n.Base() == c {
			o.children = append(o.children[:i], o.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Children returns the direct children of o.
func (o *Object) Children() []Node {
	return o.children
}

// Parent returns the parent object or nil.
func (o *Object) Parent() *Object {
	return o.parent
}

// LocalMatrix returns the transform relative to the parent.
func (o *Object) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	r := mgl32.HomogRotate3DX(o.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(o.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(o.Rotation[2]))
	s := mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the transform relative to the scene root.
func (o *Object) WorldMatrix() mgl32.Mat4 {
	m := o.LocalMatrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// Traverse calls fn for every visible descendant of o together with its
// world matrix. Invisible nodes are skipped along with their subtrees.
func (o *Object) Traverse(fn func(n Node, world mgl32.Mat4)) {
	o.traverse(o.WorldMatrix(), fn)
}

func (o *Object) traverse(world mgl32.Mat4, fn func(Node, mgl32.Mat4)) {
	for _, child := range o.children {
		c := child.Base()
		if !c.Visible {
			continue
		}
		m := world.Mul4(c.LocalMatrix())
		fn(child, m)
		c.traverse(m, fn)
	}
}

// CopyTransform copies position, rotation and scale from src.
func (o *Object) CopyTransform(src *Object) {
	o.Position = src.Position
	o.Rotation = src.Rotation
	o.Scale = src.Scale
}

// Group is an empty node used to transform several children together.
type Group struct {
	Object
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{Object: newObject()}
}
