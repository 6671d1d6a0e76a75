// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestNewEventBus_InitialState(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBusSubscribe_SingleHandler_ReturnsValidSubscription(t *testing.T) {
	bus := NewEventBus()

	handler := func(e Event) {
		// Handler for testing subscription
	}

	sub := bus.Subscribe(AircraftLaunched, handler)

	if sub == nil {
		t.Fatal("Subscribe() returned nil subscription")
	}
	if sub.ID == 0 {
		t.Error("subscription ID should not be 0")
	}
	if sub.Cancel == nil {
		t.Error("subscription Cancel function should not be nil")
	}

	bus.mu.RLock()
	handlers := bus.handlers[AircraftLaunched]
	bus.mu.RUnlock()

	if len(handlers) != 1 {
		t.Errorf("expected 1 handler, got %d", len(handlers))
	}
}

func TestBusSubscribe_MultipleHandlers_AllRegistered(t *testing.T) {
	bus := NewEventBus()

	handler := func(e Event) {}

	sub1 := bus.Subscribe(AircraftLaunched, handler)
	sub2 := bus.Subscribe(AircraftLaunched, handler)
	_ = bus.Subscribe(TargetAssigned, handler)

	if sub1.ID == sub2.ID {
		t.Error("subscriptions should have unique IDs")
	}

	bus.mu.RLock()
	launchHandlers := bus.handlers[AircraftLaunched]
	targetHandlers := bus.handlers[TargetAssigned]
	bus.mu.RUnlock()

	if len(launchHandlers) != 2 {
		t.Errorf("expected 2 launch handlers, got %d", len(launchHandlers))
	}
	if len(targetHandlers) != 1 {
		t.Errorf("expected 1 target handler, got %d", len(targetHandlers))
	}
}

func TestBusPublish_WithSubscribers_CallsAllHandlers(t *testing.T) {
	bus := NewEventBus()

	called1 := false
	called2 := false
	bus.Subscribe(AircraftLaunched, func(e Event) { called1 = true })
	bus.Subscribe(AircraftLaunched, func(e Event) { called2 = true })

	bus.Publish(NewAircraftEvent(AircraftLaunched, "test", 0, 0))

	if !called1 || !called2 {
		t.Errorf("expected both handlers called, got %v and %v", called1, called2)
	}
}

func TestBusPublish_NoSubscribers_NoError(t *testing.T) {
	bus := NewEventBus()

	bus.Publish(&BaseEvent{EventType: SimulationStarted, Source: "test"})
}

func TestBusPublish_WrongEventType_HandlersNotCalled(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.Subscribe(AircraftLaunched, func(e Event) { called = true })

	bus.Publish(&BaseEvent{EventType: AircraftLanded, Source: "test"})

	if called {
		t.Error("handler for a different event type should not be called")
	}
}

func TestBusPublish_PayloadDelivered(t *testing.T) {
	bus := NewEventBus()

	var received *AircraftEvent
	bus.Subscribe(AircraftLanded, func(e Event) {
		received = e.(*AircraftEvent)
	})

	bus.Publish(NewAircraftEvent(AircraftLanded, "sim", 3, 11.5))

	if received == nil {
		t.Fatal("handler did not receive the event")
	}
	if received.Slot != 3 {
		t.Errorf("expected slot 3, got %d", received.Slot)
	}
	if received.FlightTime != 11.5 {
		t.Errorf("expected flight time 11.5, got %f", received.FlightTime)
	}
	if received.GetSource() != "sim" {
		t.Errorf("expected source %q, got %v", "sim", received.GetSource())
	}
}

func TestSubscriptionCancel_ValidSubscription_RemovesHandler(t *testing.T) {
	bus := NewEventBus()
	handlerCalled := false

	sub := bus.Subscribe(AircraftLaunched, func(e Event) {
		handlerCalled = true
	})

	sub.Cancel()

	bus.mu.RLock()
	handlersAfter := len(bus.handlers[AircraftLaunched])
	bus.mu.RUnlock()

	if handlersAfter != 0 {
		t.Errorf("expected 0 handlers after cancel, got %d", handlersAfter)
	}

	bus.Publish(NewAircraftEvent(AircraftLaunched, "test", 0, 0))

	if handlerCalled {
		t.Error("handler should not be called after cancellation")
	}
}

func TestSubscriptionCancel_OnlyTargetRemoved(t *testing.T) {
	bus := NewEventBus()

	firstCalled := false
	secondCalled := false
	sub1 := bus.Subscribe(AircraftLaunched, func(e Event) { firstCalled = true })
	_ = bus.Subscribe(AircraftLaunched, func(e Event) { secondCalled = true })

	sub1.Cancel()
	bus.Publish(NewAircraftEvent(AircraftLaunched, "test", 0, 0))

	if firstCalled {
		t.Error("cancelled handler should not be called")
	}
	if !secondCalled {
		t.Error("remaining handler should still be called")
	}
}

func TestSubscriptionCancel_TwiceIsHarmless(t *testing.T) {
	bus := NewEventBus()

	sub := bus.Subscribe(TargetAssigned, func(e Event) {})
	sub.Cancel()
	sub.Cancel()

	bus.mu.RLock()
	remaining := len(bus.handlers[TargetAssigned])
	bus.mu.RUnlock()

	if remaining != 0 {
		t.Errorf("expected 0 handlers, got %d", remaining)
	}
}

func TestBusSubscribe_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe(AircraftLaunched, func(e Event) {})
		}()
	}
	wg.Wait()

	bus.mu.RLock()
	handlers := bus.handlers[AircraftLaunched]
	bus.mu.RUnlock()

	if len(handlers) != 50 {
		t.Errorf("expected 50 handlers, got %d", len(handlers))
	}

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewAircraftEvent(AircraftLaunched, "test", 0, 0))
		}()
	}
	wg.Wait()
}

func TestNewTargetEvent(t *testing.T) {
	evt := NewTargetEvent("ship", 3.5, -2.0)

	if evt.GetType() != TargetAssigned {
		t.Errorf("expected type %q, got %q", TargetAssigned, evt.GetType())
	}
	if evt.X != 3.5 || evt.Y != -2.0 {
		t.Errorf("expected position (3.5, -2), got (%f, %f)", evt.X, evt.Y)
	}
}

func TestNewSimulationEvent(t *testing.T) {
	evt := NewSimulationEvent(SimulationStarted, "sim", 5)

	if evt.GetType() != SimulationStarted {
		t.Errorf("expected type %q, got %q", SimulationStarted, evt.GetType())
	}
	if evt.Planes != 5 {
		t.Errorf("expected 5 planes, got %d", evt.Planes)
	}
}
