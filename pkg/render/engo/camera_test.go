// pkg/render/engo/camera_test.go
package engo

import (
	"math"
	"testing"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

func TestNewCameraSystem_Defaults(t *testing.T) {
	cs := NewCameraSystem(48)

	if cs.GetZoom() != 1.0 {
		t.Errorf("Expected default zoom 1.0, got %f", cs.GetZoom())
	}

	minZoom, maxZoom := cs.GetZoomLimits()
	if minZoom != 0.25 || maxZoom != 4.0 {
		t.Errorf("Expected zoom limits (0.25, 4.0), got (%f, %f)", minZoom, maxZoom)
	}

	if cs.GetFollowSpeed() != 4.0 {
		t.Errorf("Expected follow speed 4.0, got %f", cs.GetFollowSpeed())
	}

	if !cs.IsSmoothing() {
		t.Error("Expected smoothing enabled by default")
	}

	if cs.targetSet {
		t.Error("Expected no target on a new camera")
	}

	if cs.Scale() != 48 {
		t.Errorf("Expected scale 48 at zoom 1.0, got %f", cs.Scale())
	}
}

func TestNewCameraSystem_RejectsInvalidPixelsPerUnit(t *testing.T) {
	tests := []struct {
		name          string
		pixelsPerUnit float64
	}{
		{"zero", 0},
		{"negative", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCameraSystem(tt.pixelsPerUnit)
			if cs.Scale() != 48 {
				t.Errorf("Expected fallback scale 48, got %f", cs.Scale())
			}
		})
	}
}

func TestCameraSystem_SetTarget_PositionsImmediatelyOnFirstTarget(t *testing.T) {
	cs := NewCameraSystem(48)

	target := physics.Vector2D{X: 100, Y: 200}
	cs.SetTarget(target)

	if !cs.targetSet {
		t.Error("Expected target to be set")
	}

	if cs.GetCurrentPosition() != target {
		t.Errorf("Expected camera to jump to first target %v, got %v", target, cs.GetCurrentPosition())
	}
}

func TestCameraSystem_ClearTarget(t *testing.T) {
	cs := NewCameraSystem(48)

	cs.SetTarget(physics.Vector2D{X: 5, Y: 5})
	cs.ClearTarget()

	if cs.targetSet {
		t.Error("Expected target to be cleared")
	}

	// The camera stays where it was
	if cs.GetCurrentPosition() != (physics.Vector2D{X: 5, Y: 5}) {
		t.Errorf("Expected camera to hold position after ClearTarget, got %v", cs.GetCurrentPosition())
	}
}

func TestCameraSystem_SetZoom_ClampsToLimits(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float32
		expected float32
	}{
		{"within limits", 2.0, 2.0},
		{"at minimum", 0.25, 0.25},
		{"at maximum", 4.0, 4.0},
		{"below minimum", 0.1, 0.25},
		{"above maximum", 10.0, 4.0},
		{"zero", 0, 0.25},
		{"negative", -1.0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCameraSystem(48)
			cs.SetZoom(tt.zoom)

			if cs.GetZoom() != tt.expected {
				t.Errorf("Expected zoom %f, got %f", tt.expected, cs.GetZoom())
			}
		})
	}
}

func TestCameraSystem_SetZoomLimits_ReclampsCurrentZoom(t *testing.T) {
	cs := NewCameraSystem(48)

	cs.SetZoom(4.0)
	cs.SetZoomLimits(0.5, 2.0)

	minZoom, maxZoom := cs.GetZoomLimits()
	if minZoom != 0.5 || maxZoom != 2.0 {
		t.Errorf("Expected limits (0.5, 2.0), got (%f, %f)", minZoom, maxZoom)
	}

	if cs.GetZoom() != 2.0 {
		t.Errorf("Expected zoom reclamped to 2.0, got %f", cs.GetZoom())
	}
}

func TestCameraSystem_ZoomScalesPixelsPerUnit(t *testing.T) {
	cs := NewCameraSystem(48)

	cs.SetZoom(2.0)

	if cs.Scale() != 96 {
		t.Errorf("Expected scale 96 at zoom 2.0, got %f", cs.Scale())
	}
}

func TestCameraSystem_FollowSpeedAccessors(t *testing.T) {
	cs := NewCameraSystem(48)

	cs.SetFollowSpeed(7.5)

	if cs.GetFollowSpeed() != 7.5 {
		t.Errorf("Expected follow speed 7.5, got %f", cs.GetFollowSpeed())
	}
}

func TestCameraSystem_SmoothingAccessors(t *testing.T) {
	cs := NewCameraSystem(48)

	cs.EnableSmoothing(false)
	if cs.IsSmoothing() {
		t.Error("Expected smoothing disabled")
	}

	cs.EnableSmoothing(true)
	if !cs.IsSmoothing() {
		t.Error("Expected smoothing enabled")
	}
}

func TestUpdateCameraPosition_SmoothingMovesPartway(t *testing.T) {
	cs := NewCameraSystem(48)

	// First target snaps, second engages smoothing
	cs.SetTarget(physics.Vector2D{X: 10, Y: 0})
	cs.SetTarget(physics.Vector2D{X: 20, Y: 0})

	// followSpeed 4 over dt 0.125 covers half the remaining distance
	cs.updateCameraPosition(0.125)

	if cs.GetCurrentPosition().X != 15 {
		t.Errorf("Expected camera at x=15 after half step, got %f", cs.GetCurrentPosition().X)
	}
}

func TestUpdateCameraPosition_ImmediateWithoutSmoothing(t *testing.T) {
	cs := NewCameraSystem(48)
	cs.EnableSmoothing(false)

	cs.SetTarget(physics.Vector2D{X: 10, Y: 0})
	cs.SetTarget(physics.Vector2D{X: -30, Y: 12})

	if cs.GetCurrentPosition() != (physics.Vector2D{X: -30, Y: 12}) {
		t.Errorf("Expected camera at target without smoothing, got %v", cs.GetCurrentPosition())
	}
}

func TestWorldToScreen_ProjectsThroughViewport(t *testing.T) {
	cs := NewCameraSystem(50)
	cs.SetViewport(800, 600)

	tests := []struct {
		name     string
		camera   physics.Vector2D
		world    physics.Vector2D
		expected physics.Vector2D
	}{
		{"origin at center", physics.Vector2D{}, physics.Vector2D{}, physics.Vector2D{X: 400, Y: 300}},
		{"east is right", physics.Vector2D{}, physics.Vector2D{X: 1, Y: 0}, physics.Vector2D{X: 450, Y: 300}},
		{"north is up", physics.Vector2D{}, physics.Vector2D{X: 0, Y: 2}, physics.Vector2D{X: 400, Y: 200}},
		{"camera offset cancels", physics.Vector2D{X: 1, Y: 2}, physics.Vector2D{X: 1, Y: 2}, physics.Vector2D{X: 400, Y: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs.EnableSmoothing(false)
			cs.SetTarget(tt.camera)

			got := cs.WorldToScreen(tt.world)
			if got != tt.expected {
				t.Errorf("Expected screen %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScreenToWorld_InvertsWorldToScreen(t *testing.T) {
	cs := NewCameraSystem(48)
	cs.SetViewport(1024, 768)
	cs.EnableSmoothing(false)
	cs.SetTarget(physics.Vector2D{X: -3.5, Y: 7.25})

	worldPoints := []physics.Vector2D{
		{X: 0, Y: 0},
		{X: 12.5, Y: -4},
		{X: -3.5, Y: 7.25},
		{X: 100, Y: 100},
	}

	zooms := []float32{0.5, 1.0, 2.0}

	for _, zoom := range zooms {
		cs.SetZoom(zoom)
		for _, world := range worldPoints {
			screen := cs.WorldToScreen(world)
			back := cs.ScreenToWorld(screen)

			if math.Abs(back.X-world.X) > 1e-9 || math.Abs(back.Y-world.Y) > 1e-9 {
				t.Errorf("Zoom %f: round trip of %v returned %v", zoom, world, back)
			}
		}
	}
}

func TestCameraSystem_ECSInterface(t *testing.T) {
	cs := NewCameraSystem(48)

	// Add and Remove are no-ops and must not panic
	cs.Add(nil, nil, nil)
	cs.Remove(ecs.BasicEntity{})
}
