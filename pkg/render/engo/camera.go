// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

// CameraSystem manages the view transform, following the carrier. Engo's
// built-in camera stays at its default; every visual is projected into
// screen space through this system instead.
type CameraSystem struct {
	// Target to follow
	target    physics.Vector2D
	targetSet bool

	// Camera properties
	zoom    float32
	minZoom float32
	maxZoom float32

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state
	currentPos physics.Vector2D

	// View transform. A zero viewport falls back to the engo window size.
	pixelsPerUnit float64
	viewportW     float64
	viewportH     float64
}

// NewCameraSystem creates a camera with the given world-to-pixel scale
func NewCameraSystem(pixelsPerUnit float64) *CameraSystem {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 48
	}
	return &CameraSystem{
		zoom:          1.0,
		minZoom:       0.25,
		maxZoom:       4.0,
		followSpeed:   4.0,
		smoothing:     true,
		pixelsPerUnit: pixelsPerUnit,
	}
}

// Add satisfies the ecs.System interface
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for camera system
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {
	// Not used for camera system
}

// Update processes zoom input and moves the camera toward its target
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}
}

// handleZoomInput processes zoom-related input. Only runs under engo.Run.
func (cs *CameraSystem) handleZoomInput() {
	scrollY := engo.Input.Mouse.ScrollY
	if scrollY != 0 {
		zoomFactor := float32(1.0 + scrollY*0.1)
		cs.SetZoom(cs.zoom * zoomFactor)
	}

	if engo.Input.Button("zoomIn").Down() {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if engo.Input.Button("zoomOut").Down() {
		cs.SetZoom(cs.zoom * 0.98)
	}

	if engo.Input.Button("resetZoom").JustPressed() {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition smoothly moves the camera toward the target
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if cs.smoothing {
		dx := cs.target.X - cs.currentPos.X
		dy := cs.target.Y - cs.currentPos.Y

		cs.currentPos.X += dx * float64(cs.followSpeed) * float64(dt)
		cs.currentPos.Y += dy * float64(cs.followSpeed) * float64(dt)
	} else {
		cs.currentPos = cs.target
	}
}

// SetTarget sets the world position for the camera to follow
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true

	// The first target positions the camera immediately
	if !cs.smoothing || (cs.currentPos.X == 0 && cs.currentPos.Y == 0) {
		cs.currentPos = target
	}
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

// clampZoom ensures zoom is within valid bounds
func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// SetFollowSpeed sets the camera follow speed
func (cs *CameraSystem) SetFollowSpeed(speed float32) {
	cs.followSpeed = speed
}

// GetFollowSpeed returns the current follow speed
func (cs *CameraSystem) GetFollowSpeed() float32 {
	return cs.followSpeed
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// IsSmoothing returns whether camera smoothing is enabled
func (cs *CameraSystem) IsSmoothing() bool {
	return cs.smoothing
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// SetViewport overrides the screen dimensions used by the view
// transform. Headless callers must set this; under engo.Run the window
// size is used when no viewport is set.
func (cs *CameraSystem) SetViewport(width, height float64) {
	cs.viewportW = width
	cs.viewportH = height
}

func (cs *CameraSystem) viewport() (float64, float64) {
	if cs.viewportW > 0 && cs.viewportH > 0 {
		return cs.viewportW, cs.viewportH
	}
	return float64(engo.GameWidth()), float64(engo.GameHeight())
}

// Scale returns the effective pixels per world unit at the current zoom
func (cs *CameraSystem) Scale() float64 {
	return cs.pixelsPerUnit * float64(cs.zoom)
}

// WorldToScreen converts world coordinates to screen coordinates. World
// +Y points up while screen +Y points down, so the vertical axis flips.
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) physics.Vector2D {
	width, height := cs.viewport()
	scale := cs.Scale()

	return physics.Vector2D{
		X: (worldPos.X-cs.currentPos.X)*scale + width/2,
		Y: height/2 - (worldPos.Y-cs.currentPos.Y)*scale,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates. It is
// the exact inverse of WorldToScreen.
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	width, height := cs.viewport()
	scale := cs.Scale()

	return physics.Vector2D{
		X: (screenPos.X-width/2)/scale + cs.currentPos.X,
		Y: (height/2-screenPos.Y)/scale + cs.currentPos.Y,
	}
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(min, max float32) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}

// GetZoomLimits returns the current zoom limits
func (cs *CameraSystem) GetZoomLimits() (float32, float32) {
	return cs.minZoom, cs.maxZoom
}
