// pkg/physics/motion.go
package physics

// MotionState tracks the pose of a vessel moving in the plane
type MotionState struct {
	Position Vector2D
	Heading  float64 // radians
}

// Advance integrates one simulation step. The heading turns first, then
// the position moves along the new heading.
func (m *MotionState) Advance(deltaTime, linearSpeed, angularSpeed float64) {
	m.Heading += angularSpeed * deltaTime
	m.Position = m.Position.Add(FromAngle(m.Heading, linearSpeed*deltaTime))
}
