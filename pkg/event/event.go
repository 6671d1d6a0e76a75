// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	SimulationStarted Type = "simulation_started"
	SimulationStopped Type = "simulation_stopped"
	AircraftLaunched  Type = "aircraft_launched"
	AircraftLanded    Type = "aircraft_landed"
	AircraftRecovered Type = "aircraft_recovered"
	TargetAssigned    Type = "target_assigned"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// subscriber pairs a handler with the id it was registered under
type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscription identifies a registered handler. Cancel removes the
// handler from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

// Subscribe registers a handler for a specific event type and returns
// a subscription that can cancel it
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

// unsubscribe removes the handler registered under the given id
func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, ok := b.handlers[eventType]
	if !ok {
		return
	}

	for i, s := range subscribers {
		if s.id == id {
			b.handlers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on
// the caller's goroutine outside the bus lock.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subscribers := b.handlers[event.GetType()]
	handlers := make([]Handler, len(subscribers))
	for i, s := range subscribers {
		handlers[i] = s.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// AircraftEvent contains information about one squadron aircraft
type AircraftEvent struct {
	BaseEvent
	Slot       int
	FlightTime float64
}

// NewAircraftEvent creates a new aircraft event
func NewAircraftEvent(eventType Type, source interface{}, slot int, flightTime float64) *AircraftEvent {
	return &AircraftEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Slot:       slot,
		FlightTime: flightTime,
	}
}

// TargetEvent contains the world position assigned to the squadron
type TargetEvent struct {
	BaseEvent
	X float64
	Y float64
}

// NewTargetEvent creates a new target assignment event
func NewTargetEvent(source interface{}, x, y float64) *TargetEvent {
	return &TargetEvent{
		BaseEvent: BaseEvent{
			EventType: TargetAssigned,
			Source:    source,
		},
		X: x,
		Y: y,
	}
}

// SimulationEvent contains information about simulation lifecycle
// changes
type SimulationEvent struct {
	BaseEvent
	Planes int
}

// NewSimulationEvent creates a new simulation lifecycle event
func NewSimulationEvent(eventType Type, source interface{}, planes int) *SimulationEvent {
	return &SimulationEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Planes: planes,
	}
}
