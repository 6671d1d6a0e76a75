package render

import (
	"bytes"
	"testing"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// TestTerminalSceneIntegration drives a real simulation through the
// terminal scene and checks the composed frames.
func TestTerminalSceneIntegration(t *testing.T) {
	var out bytes.Buffer
	scene := NewTerminalSceneWithOutput(41, 21, 0.5, &out)

	sim := engine.NewSimulation(config.DefaultConfig(), scene)

	recovered := 0
	sim.EventBus.Subscribe(event.AircraftRecovered, func(e event.Event) {
		recovered++
	})

	deckX, deckY := scene.worldToScreen(physics.Vector2D{X: 0, Y: 0})

	t.Run("first frame shows the carrier", func(t *testing.T) {
		sim.Update(0.1)
		scene.SetCenter(sim.Ship.Position())
		scene.Present()

		if scene.buffer[deckY][deckX] != 'S' {
			t.Fatalf("expected carrier glyph at cell (%d, %d), got %c", deckX, deckY, scene.buffer[deckY][deckX])
		}
	})

	t.Run("launch puts an aircraft on the deck", func(t *testing.T) {
		// Screen (36.5, 0.5) maps to world (8, 5) at this scale
		sim.MouseClicked(physics.Vector2D{X: 36.5, Y: 0.5}, true)
		sim.MouseClicked(physics.Vector2D{X: 0, Y: 0}, false)
		sim.Update(0.1)
		scene.Present()

		if scene.buffer[deckY][deckX] != 'A' {
			t.Errorf("expected aircraft glyph over the deck cell (%d, %d), got %c", deckX, deckY, scene.buffer[deckY][deckX])
		}

		markerX, markerY := scene.worldToScreen(physics.Vector2D{X: 8, Y: 5})
		if scene.buffer[markerY][markerX] != '+' {
			t.Errorf("expected goal marker at cell (%d, %d), got %c", markerX, markerY, scene.buffer[markerY][markerX])
		}
	})

	t.Run("full sortie returns the deck to the carrier", func(t *testing.T) {
		for i := 0; i < 20000 && recovered == 0; i++ {
			sim.Update(0.05)
		}

		if recovered != 1 {
			t.Fatalf("expected 1 recovered aircraft, got %d", recovered)
		}

		if !sim.Planes[0].ReadyToFly() {
			t.Error("expected recovered aircraft to be ready to fly")
		}

		scene.Present()
		if got := countGlyph(scene, 'A'); got != 0 {
			t.Errorf("expected no aircraft glyphs after recovery, got %d", got)
		}
		if got := countGlyph(scene, 'S'); got != 1 {
			t.Errorf("expected exactly one carrier glyph, got %d", got)
		}
	})

	t.Run("shutdown clears the entities from the view", func(t *testing.T) {
		sim.Shutdown()
		scene.Present()

		if got := countGlyph(scene, 'S'); got != 0 {
			t.Errorf("expected carrier glyph to be gone after shutdown, got %d", got)
		}

		// The goal marker is scene state and outlives the run
		if got := countGlyph(scene, '+'); got != 1 {
			t.Errorf("expected goal marker to survive shutdown, got %d", got)
		}
	})
}

// TestNullSceneIntegration runs a headless simulation against the null scene
func TestNullSceneIntegration(t *testing.T) {
	sim := engine.NewSimulation(config.DefaultConfig(), NewNullScene())

	sim.MouseClicked(physics.Vector2D{X: 12, Y: -7}, true)
	sim.MouseClicked(physics.Vector2D{X: 0, Y: 0}, false)

	for i := 0; i < 100; i++ {
		sim.Update(0.1)
	}

	if sim.InFlightCount() != 1 {
		t.Errorf("expected 1 aircraft in flight, got %d", sim.InFlightCount())
	}

	sim.Shutdown()

	if sim.Running() {
		t.Error("expected simulation to stop after shutdown")
	}
}

func countGlyph(scene *TerminalScene, glyph rune) int {
	count := 0
	for y := range scene.buffer {
		for x := range scene.buffer[y] {
			if scene.buffer[y][x] == glyph {
				count++
			}
		}
	}
	return count
}
