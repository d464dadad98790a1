package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Group is a shape containing child shapes. The group owns its children;
// each child holds a non-owning back-reference to the group used only to
// compose transforms.
type Group struct {
	baseShape
	children []Shape
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{baseShape: newBaseShape()}
}

// AddChild adds a shape to the group and records the group as its parent.
func (g *Group) AddChild(children ...Shape) {
	for _, child := range children {
		child.SetParent(g)
		g.children = append(g.children, child)
	}
}

// Children returns the group's child shapes.
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect intersects the object-space ray with every child and
// merges the results sorted by t.
func (g *Group) LocalIntersect(localRay core.Ray) []Intersection {
	var xs Intersections
	for _, child := range g.children {
		xs = xs.Merge(Intersect(child, localRay))
	}
	return xs
}

// LocalNormalAt is never meaningful for a group: normals are asked of the
// concrete child that was hit.
func (g *Group) LocalNormalAt(core.Tuple) core.Tuple {
	panic("group has no local normal; ask the intersected child")
}
