// pkg/entity/aircraft.go
package entity

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

// AircraftState identifies a phase of the aircraft's flight cycle
type AircraftState int

const (
	Idle AircraftState = iota
	Takeoff
	Fly
	Hover
	Land
	Refuel
)

// String returns the state name for logs and status displays
func (s AircraftState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Takeoff:
		return "takeoff"
	case Fly:
		return "fly"
	case Hover:
		return "hover"
	case Land:
		return "land"
	case Refuel:
		return "refuel"
	default:
		return "unknown"
	}
}

// hoverTolerance absorbs float error when checking whether a hovering
// aircraft is still inside its zone
const hoverTolerance = 1e-6

// AircraftStats contains the tuning parameters for a squadron aircraft
type AircraftStats struct {
	MaxSpeed          float64 `json:"maxSpeed"`
	Acceleration      float64 `json:"acceleration"`
	TakeoffTime       float64 `json:"takeoffTime"`
	FlightTime        float64 `json:"flightTime"`
	RefuelTime        float64 `json:"refuelTime"`
	HoverRadius       float64 `json:"hoverRadius"`
	HoverAngularSpeed float64 `json:"hoverAngularSpeed"`
	LandingRadius     float64 `json:"landingRadius"`
}

// Aircraft is one squadron plane cycling through takeoff, free flight,
// hover, landing and refueling on the carrier deck
type Aircraft struct {
	motion      physics.MotionState
	linearSpeed float64
	stats       AircraftStats

	flightTime  float64
	landingTime float64

	target     physics.Vector2D
	hoverAngle float64

	ship   *Ship
	state  AircraftState
	visual Visual
	scene  Scene
}

// NewAircraft creates an aircraft in its uninitialized state. Init must
// be called before the first update.
func NewAircraft() *Aircraft {
	return &Aircraft{}
}

// Init resets the aircraft to idle on the given carrier's deck. The
// assigned target persists across reinitialization.
func (a *Aircraft) Init(owner *Ship, stats AircraftStats, scene Scene) {
	a.motion = physics.MotionState{}
	a.linearSpeed = 0
	a.stats = stats
	a.flightTime = 0
	a.landingTime = 0
	a.hoverAngle = 0
	a.ship = owner
	a.scene = scene
	a.state = Idle
}

// Deinit releases the aircraft's visual if it owns one
func (a *Aircraft) Deinit() {
	if a.visual != nil {
		a.visual.Destroy()
		a.visual = nil
	}
}

// Update advances the aircraft one simulation step. The handler for the
// current phase runs first, then the shared flight simulation.
func (a *Aircraft) Update(deltaTime float64) {
	switch a.state {
	case Takeoff:
		a.takeoff(deltaTime)
	case Fly:
		a.fly(deltaTime)
	case Hover:
		a.hover(deltaTime)
	case Land:
		a.land(deltaTime)
	case Refuel:
		a.refuel(deltaTime)
	}

	a.simulateFlight(deltaTime)
}

// SetTarget assigns the world position the aircraft flies to and
// patrols around
func (a *Aircraft) SetTarget(position physics.Vector2D) {
	a.target = position
}

// ReadyToFly reports whether the aircraft can be launched
func (a *Aircraft) ReadyToFly() bool {
	return a.state == Idle
}

// InFlight reports whether the aircraft is airborne. A refueling
// aircraft is back on deck and no longer counts as airborne.
func (a *Aircraft) InFlight() bool {
	return a.state != Idle && a.state != Refuel
}

// Launch puts an idle aircraft in the air at the carrier's pose.
// Launching an aircraft that is not ready to fly is a programming error
// and panics.
func (a *Aircraft) Launch() {
	if !a.ReadyToFly() {
		panic(fmt.Sprintf("entity: launch while %v", a.state))
	}
	a.visual = a.scene.CreateAircraftVisual()
	a.motion.Position = a.ship.Position()
	a.motion.Heading = a.ship.Angle()
	a.visual.Place(a.motion.Position, a.motion.Heading)
	a.state = Takeoff
}

// takeoff carries the aircraft along the carrier's heading until it has
// been airborne long enough to fly free. The carrier-relative movement
// still applies on the transition frame.
func (a *Aircraft) takeoff(deltaTime float64) {
	if a.flightTime >= a.stats.TakeoffTime {
		a.state = Fly
	}

	a.motion.Heading = a.ship.Angle()
	speed := a.linearSpeed + a.ship.LinearSpeed()
	a.motion.Advance(deltaTime, speed, 0)
}

// fly steers straight toward the assigned target and hands off to hover
// once inside the hover zone
func (a *Aircraft) fly(deltaTime float64) {
	zone := physics.Circle{Center: a.target, Radius: a.stats.HoverRadius}
	if zone.Contains(a.motion.Position) {
		a.state = Hover
		a.hoverAngle = a.motion.Heading + math.Pi
		return
	}

	a.motion.Heading = a.motion.Position.AngleTo(a.target)
	a.motion.Advance(deltaTime, a.linearSpeed, 0)
}

// hover orbits the target at the hover radius. Drifting outside the
// zone sends the aircraft back to fly; once flight time runs out it
// switches to land, finishing the orbit step first.
func (a *Aircraft) hover(deltaTime float64) {
	zone := physics.Circle{Center: a.target, Radius: a.stats.HoverRadius}
	if !zone.Expand(hoverTolerance).Contains(a.motion.Position) {
		a.state = Fly
		return
	}

	if a.flightTime >= a.stats.FlightTime {
		a.state = Land
	}

	a.motion.Heading = a.hoverAngle + math.Pi/2
	a.hoverAngle += a.stats.HoverAngularSpeed * deltaTime
	a.motion.Position = a.target.Add(physics.FromAngle(a.hoverAngle, a.stats.HoverRadius))
}

// land heads straight for the carrier deck. Touchdown drops the visual
// and starts refueling; the closing movement still applies on the
// touchdown frame.
func (a *Aircraft) land(deltaTime float64) {
	deck := physics.Circle{Center: a.ship.Position(), Radius: a.stats.LandingRadius}
	if deck.Contains(a.motion.Position) {
		a.state = Refuel
		a.landingTime = a.flightTime
		a.visual.Destroy()
		a.visual = nil
	}

	a.motion.Heading = a.motion.Position.AngleTo(a.ship.Position())
	a.motion.Advance(deltaTime, a.linearSpeed, 0)
}

// refuel counts down on deck, then returns the aircraft to idle with
// its speed and timers cleared
func (a *Aircraft) refuel(deltaTime float64) {
	a.landingTime += deltaTime
	if a.landingTime > a.flightTime+a.stats.RefuelTime {
		a.state = Idle
		a.linearSpeed = 0
		a.flightTime = 0
		a.landingTime = 0
	}
}

// simulateFlight applies acceleration, accrues flight time and places
// the visual. It runs after every state handler and does nothing while
// the aircraft is on deck.
func (a *Aircraft) simulateFlight(deltaTime float64) {
	if !a.InFlight() {
		return
	}

	newSpeed := a.linearSpeed + a.stats.Acceleration*deltaTime
	if newSpeed <= a.stats.MaxSpeed {
		a.linearSpeed = newSpeed
	} else {
		a.linearSpeed = a.stats.MaxSpeed
	}

	a.flightTime += deltaTime

	a.visual.Place(a.motion.Position, a.motion.Heading)
}

// State returns the aircraft's current flight phase
func (a *Aircraft) State() AircraftState {
	return a.state
}

// Position returns the aircraft's current position
func (a *Aircraft) Position() physics.Vector2D {
	return a.motion.Position
}

// Angle returns the aircraft's heading in radians
func (a *Aircraft) Angle() float64 {
	return a.motion.Heading
}

// LinearSpeed returns the aircraft's current speed
func (a *Aircraft) LinearSpeed() float64 {
	return a.linearSpeed
}

// FlightTime returns the time the aircraft has been airborne since its
// last launch
func (a *Aircraft) FlightTime() float64 {
	return a.flightTime
}

// Target returns the aircraft's assigned patrol target
func (a *Aircraft) Target() physics.Vector2D {
	return a.target
}
