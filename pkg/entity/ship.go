// pkg/entity/ship.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

// ShipStats contains the tuning parameters for the carrier
type ShipStats struct {
	LinearSpeed  float64 `json:"linearSpeed"`
	AngularSpeed float64 `json:"angularSpeed"`
}

// Ship represents the player-controlled carrier
type Ship struct {
	motion      physics.MotionState
	linearSpeed float64
	stats       ShipStats
	input       [KeyCount]bool
	planes      []*Aircraft
	visual      Visual
	scene       Scene
}

// NewShip creates a carrier in its uninitialized state. Init must be
// called before the first update.
func NewShip() *Ship {
	return &Ship{}
}

// Init binds the carrier to the scene and its squadron and resets the
// pose to the origin. Initializing a carrier that already owns a visual
// is a programming error and panics.
func (s *Ship) Init(planes []*Aircraft, stats ShipStats, scene Scene) {
	if s.visual != nil {
		panic("entity: ship already initialized")
	}
	s.scene = scene
	s.visual = scene.CreateShipVisual()
	s.motion = physics.MotionState{}
	s.stats = stats
	for i := range s.input {
		s.input[i] = false
	}
	s.planes = planes
}

// Deinit releases the carrier's visual. The carrier may be initialized
// again afterwards.
func (s *Ship) Deinit() {
	if s.visual != nil {
		s.visual.Destroy()
		s.visual = nil
	}
}

// Update advances the carrier one simulation step based on the keys
// currently held. Forward takes priority over backward, left over
// right, and the carrier only turns while it is moving.
func (s *Ship) Update(deltaTime float64) {
	s.linearSpeed = 0
	angularSpeed := 0.0

	if s.input[KeyForward] {
		s.linearSpeed = s.stats.LinearSpeed
	} else if s.input[KeyBackward] {
		s.linearSpeed = -s.stats.LinearSpeed
	}

	if s.input[KeyLeft] && s.linearSpeed != 0 {
		angularSpeed = s.stats.AngularSpeed
	} else if s.input[KeyRight] && s.linearSpeed != 0 {
		angularSpeed = -s.stats.AngularSpeed
	}

	s.motion.Advance(deltaTime, s.linearSpeed, angularSpeed)
	s.visual.Place(s.motion.Position, s.motion.Heading)
}

// KeyPressed marks a control key as held
func (s *Ship) KeyPressed(key Key) {
	if !key.Valid() {
		panic(fmt.Sprintf("entity: invalid key %d", key))
	}
	s.input[key] = true
}

// KeyReleased marks a control key as released
func (s *Ship) KeyReleased(key Key) {
	if !key.Valid() {
		panic(fmt.Sprintf("entity: invalid key %d", key))
	}
	s.input[key] = false
}

// MouseClicked handles a click already translated to world coordinates.
// A left click retargets the whole squadron, any other button launches
// the first aircraft that is ready to fly.
func (s *Ship) MouseClicked(worldPosition physics.Vector2D, isLeftButton bool) {
	if isLeftButton {
		s.scene.PlaceGoalMarker(worldPosition)
		for _, plane := range s.planes {
			plane.SetTarget(worldPosition)
		}
		return
	}

	for _, plane := range s.planes {
		if plane.ReadyToFly() {
			plane.Launch()
			break
		}
	}
}

// Position returns the carrier's current position
func (s *Ship) Position() physics.Vector2D {
	return s.motion.Position
}

// Angle returns the carrier's heading in radians
func (s *Ship) Angle() float64 {
	return s.motion.Heading
}

// LinearSpeed returns the carrier's signed speed from the last update
func (s *Ship) LinearSpeed() float64 {
	return s.linearSpeed
}
