// pkg/engine/game.go
package engine

import (
	"context"
	"sync"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// SquadronSize is the number of aircraft stationed on the carrier.
const SquadronSize = 5

// Simulation owns the carrier, its squadron, and the event plumbing
// around them. It is the single entry point renderers and frontends
// talk to.
type Simulation struct {
	Config   *config.GameConfig
	EventBus *event.Bus
	Ship     *entity.Ship
	Planes   [SquadronSize]*entity.Aircraft

	scene   entity.Scene
	logger  *logging.Logger
	ctx     context.Context
	tick    uint64
	running bool
	mu      sync.RWMutex
}

// NewSimulation creates a simulation bound to scene and initializes it.
// Every run gets its own correlation ID for log lines.
func NewSimulation(cfg *config.GameConfig, scene entity.Scene) *Simulation {
	if scene == nil {
		panic("engine: simulation requires a scene")
	}

	sim := &Simulation{
		Config:   cfg,
		EventBus: event.NewEventBus(),
		Ship:     entity.NewShip(),
		scene:    scene,
		logger:   logging.NewLogger(),
		ctx:      logging.WithCorrelationID(context.Background(), ""),
	}
	for i := range sim.Planes {
		sim.Planes[i] = entity.NewAircraft()
	}

	sim.registerEventHandlers()
	sim.Initialize()

	return sim
}

// Initialize places the ship at the origin, binds the squadron to it, and
// starts the clock. NewSimulation calls it once; call it again to restart
// after Shutdown. Aircraft keep their last assigned target across restarts.
func (s *Simulation) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.Ship.Init(s.Planes[:], s.Config.Ship, s.scene)
	for _, plane := range s.Planes {
		plane.Init(s.Ship, s.Config.Aircraft, s.scene)
	}

	s.tick = 0
	s.running = true
	s.EventBus.Publish(event.NewSimulationEvent(event.SimulationStarted, s, s.inFlightCountLocked()))
}

// Shutdown stops the clock and frees every visual the simulation holds.
// Only aircraft in flight own one; parked and refueling aircraft do not.
// Calling Shutdown on a stopped simulation is a no-op.
func (s *Simulation) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	inFlight := s.inFlightCountLocked()
	s.Ship.Deinit()
	for _, plane := range s.Planes {
		if plane.InFlight() {
			plane.Deinit()
		}
	}

	s.running = false
	s.EventBus.Publish(event.NewSimulationEvent(event.SimulationStopped, s, inFlight))
}

// Update advances the simulation by deltaTime seconds. The ship moves
// first so aircraft launched this frame ride its current pose, then each
// aircraft updates in slot order.
func (s *Simulation) Update(deltaTime float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.Ship.Update(deltaTime)
	s.updatePlanes(deltaTime)
	s.tick++
}

// updatePlanes steps each aircraft and emits events for the transitions
// that happen inside Update: touchdown and return to ready.
func (s *Simulation) updatePlanes(deltaTime float64) {
	for slot, plane := range s.Planes {
		before := plane.State()
		plane.Update(deltaTime)
		s.publishStateChange(slot, before, plane)
	}
}

func (s *Simulation) publishStateChange(slot int, before entity.AircraftState, plane *entity.Aircraft) {
	after := plane.State()
	if after == before {
		return
	}

	switch {
	case before == entity.Land && after == entity.Refuel:
		s.EventBus.Publish(event.NewAircraftEvent(event.AircraftLanded, s, slot, plane.FlightTime()))
	case before == entity.Refuel && after == entity.Idle:
		s.EventBus.Publish(event.NewAircraftEvent(event.AircraftRecovered, s, slot, plane.FlightTime()))
	}
}

// KeyPressed forwards a movement key press to the ship.
func (s *Simulation) KeyPressed(key entity.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.Ship.KeyPressed(key)
}

// KeyReleased forwards a movement key release to the ship.
func (s *Simulation) KeyReleased(key entity.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.Ship.KeyReleased(key)
}

// MouseClicked routes a click at screen coordinates into the game. A left
// click retargets the whole squadron at the clicked point, a right click
// launches the next ready aircraft.
func (s *Simulation) MouseClicked(screen physics.Vector2D, leftButton bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	world := s.scene.ScreenToWorld(screen)
	if leftButton {
		s.Ship.MouseClicked(world, true)
		s.EventBus.Publish(event.NewTargetEvent(s, world.X, world.Y))
		return
	}

	var ready [SquadronSize]bool
	for i, plane := range s.Planes {
		ready[i] = plane.ReadyToFly()
	}

	s.Ship.MouseClicked(world, false)

	for i, plane := range s.Planes {
		if ready[i] && !plane.ReadyToFly() {
			s.EventBus.Publish(event.NewAircraftEvent(event.AircraftLaunched, s, i, plane.FlightTime()))
			return
		}
	}
}

// Running reports whether the simulation clock is advancing.
func (s *Simulation) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Tick returns the number of completed update steps.
func (s *Simulation) Tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// InFlightCount returns how many aircraft are currently airborne.
func (s *Simulation) InFlightCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlightCountLocked()
}

func (s *Simulation) inFlightCountLocked() int {
	count := 0
	for _, plane := range s.Planes {
		if plane.InFlight() {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the observable simulation state.
func (s *Simulation) Snapshot() GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := GameState{
		Tick:    s.tick,
		Running: s.running,
		Ship: ShipState{
			Position: s.Ship.Position(),
			Heading:  s.Ship.Angle(),
			Speed:    s.Ship.LinearSpeed(),
		},
	}
	for i, plane := range s.Planes {
		state.Planes[i] = PlaneState{
			Slot:       i,
			State:      plane.State(),
			Position:   plane.Position(),
			Heading:    plane.Angle(),
			Speed:      plane.LinearSpeed(),
			FlightTime: plane.FlightTime(),
			Target:     plane.Target(),
		}
	}
	return state
}

// GameState represents a snapshot of the simulation state
type GameState struct {
	Tick    uint64
	Running bool
	Ship    ShipState
	Planes  [SquadronSize]PlaneState
}

// ShipState represents a snapshot of the carrier's pose
type ShipState struct {
	Position physics.Vector2D
	Heading  float64
	Speed    float64
}

// PlaneState represents a snapshot of one squadron slot
type PlaneState struct {
	Slot       int
	State      entity.AircraftState
	Position   physics.Vector2D
	Heading    float64
	Speed      float64
	FlightTime float64
	Target     physics.Vector2D
}

// registerEventHandlers wires the simulation's own logging onto the bus.
// Handlers run synchronously inside Publish and must not touch s.mu.
func (s *Simulation) registerEventHandlers() {
	s.EventBus.Subscribe(event.SimulationStarted, s.handleLifecycleEvent)
	s.EventBus.Subscribe(event.SimulationStopped, s.handleLifecycleEvent)
	s.EventBus.Subscribe(event.AircraftLaunched, s.handleAircraftEvent)
	s.EventBus.Subscribe(event.AircraftLanded, s.handleAircraftEvent)
	s.EventBus.Subscribe(event.AircraftRecovered, s.handleAircraftEvent)
	s.EventBus.Subscribe(event.TargetAssigned, s.handleTargetEvent)
}

func (s *Simulation) handleLifecycleEvent(e event.Event) {
	se, ok := e.(*event.SimulationEvent)
	if !ok {
		return
	}
	s.logger.Info(s.ctx, string(se.GetType()), "aircraft_in_flight", se.Planes)
}

func (s *Simulation) handleAircraftEvent(e event.Event) {
	ae, ok := e.(*event.AircraftEvent)
	if !ok {
		return
	}
	s.logger.Info(s.ctx, string(ae.GetType()), "slot", ae.Slot, "flight_time", ae.FlightTime)
}

func (s *Simulation) handleTargetEvent(e event.Event) {
	te, ok := e.(*event.TargetEvent)
	if !ok {
		return
	}
	s.logger.Debug(s.ctx, string(te.GetType()), "x", te.X, "y", te.Y)
}
