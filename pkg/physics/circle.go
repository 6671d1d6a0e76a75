// pkg/physics/circle.go
package physics

// Circle represents a circular zone such as a hover orbit or a landing deck
type Circle struct {
	Center Vector2D
	Radius float64
}

// Contains reports whether the point lies inside the circle. Points
// exactly on the boundary count as inside.
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Distance(point) <= c.Radius
}

// Expand returns a circle grown by the given margin. A negative margin
// shrinks the circle.
func (c Circle) Expand(margin float64) Circle {
	return Circle{
		Center: c.Center,
		Radius: c.Radius + margin,
	}
}
