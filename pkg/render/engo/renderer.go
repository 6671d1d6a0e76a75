// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// Display sizes in world units. The hover orbit has radius one, so the
// carrier must read clearly at that scale.
const (
	carrierWorldLength = 1.4
	carrierWorldBeam   = 0.7
	aircraftWorldSize  = 0.5
	markerWorldSize    = 0.4
)

// Draw order, back to front
const (
	zMarker   = 1
	zCarrier  = 2
	zAircraft = 3
	zHUD      = 10
)

var (
	seaColor      = color.RGBA{R: 12, G: 36, B: 68, A: 255}
	carrierColor  = color.RGBA{R: 210, G: 215, B: 220, A: 255}
	aircraftColor = color.RGBA{R: 255, G: 204, B: 77, A: 255}
	markerColor   = color.RGBA{R: 96, G: 220, B: 128, A: 255}
)

// EngoScene renders the simulation through engo. It creates sprite
// entities for the carrier and its aircraft and keeps them projected
// into screen space as the camera moves.
type EngoScene struct {
	renderSystem *common.RenderSystem
	camera       *CameraSystem
	assets       *AssetManager

	visuals []*engoVisual
	marker  *engoVisual
}

// NewEngoScene creates a scene backed by the given render system,
// camera and loaded assets
func NewEngoScene(renderSystem *common.RenderSystem, camera *CameraSystem, assets *AssetManager) *EngoScene {
	return &EngoScene{
		renderSystem: renderSystem,
		camera:       camera,
		assets:       assets,
	}
}

// CreateShipVisual creates the carrier sprite
func (s *EngoScene) CreateShipVisual() entity.Visual {
	return s.addVisual(s.assets.CarrierSprite(), carrierWorldLength, carrierWorldBeam, carrierColor, zCarrier)
}

// CreateAircraftVisual creates a squadron aircraft sprite
func (s *EngoScene) CreateAircraftVisual() entity.Visual {
	return s.addVisual(s.assets.AircraftSprite(), aircraftWorldSize, aircraftWorldSize, aircraftColor, zAircraft)
}

// PlaceGoalMarker draws the squadron target marker at the given world
// position. The marker entity is created on first use and moves on
// every later call.
func (s *EngoScene) PlaceGoalMarker(position physics.Vector2D) {
	if s.marker == nil {
		s.marker = s.addVisual(s.assets.MarkerSprite(), markerWorldSize, markerWorldSize, markerColor, zMarker)
	}
	s.marker.Place(position, 0)
}

// ScreenToWorld converts a screen position to world coordinates
func (s *EngoScene) ScreenToWorld(screen physics.Vector2D) physics.Vector2D {
	return s.camera.ScreenToWorld(screen)
}

// Sync reprojects every live visual with the current camera transform
// and drops visuals destroyed since the last frame. Runs once per frame
// after the simulation steps.
func (s *EngoScene) Sync() {
	live := s.visuals[:0]
	for _, v := range s.visuals {
		if v.destroyed {
			continue
		}
		live = append(live, v)
		if v.placed {
			v.project()
		}
	}
	s.visuals = live
}

func (s *EngoScene) addVisual(drawable common.Drawable, worldW, worldH float64, tint color.RGBA, z float32) *engoVisual {
	v := &engoVisual{
		scene:  s,
		worldW: worldW,
		worldH: worldH,
		basic:  ecs.NewBasic(),
	}
	v.render = common.RenderComponent{
		Drawable: drawable,
		Color:    tint,
	}
	v.render.SetZIndex(z)

	s.renderSystem.Add(&v.basic, &v.render, &v.space)
	s.visuals = append(s.visuals, v)
	return v
}

// engoVisual is one sprite entity. It stores the world pose from the
// last Place call; project maps it into screen space.
type engoVisual struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent

	scene  *EngoScene
	worldW float64
	worldH float64

	worldPos  physics.Vector2D
	angle     float64
	placed    bool
	destroyed bool
}

// Place records the visual's world pose and projects it immediately
func (v *engoVisual) Place(position physics.Vector2D, angle float64) {
	v.worldPos = position
	v.angle = angle
	v.placed = true
	v.project()
}

// Destroy removes the sprite from the render system. Safe to call more
// than once.
func (v *engoVisual) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.placed = false
	v.scene.renderSystem.Remove(v.basic)
}

// project maps the stored world pose into the space component. Screen
// rotation runs clockwise while world angles run counterclockwise, so
// the angle negates, in degrees.
func (v *engoVisual) project() {
	screen := v.scene.camera.WorldToScreen(v.worldPos)
	scale := v.scene.camera.Scale()

	width := float32(v.worldW * scale)
	height := float32(v.worldH * scale)

	v.space.Width = width
	v.space.Height = height
	v.space.Rotation = float32(-v.angle * 180 / math.Pi)
	v.space.SetCenter(engo.Point{X: float32(screen.X), Y: float32(screen.Y)})

	if v.render.Drawable != nil {
		texW := v.render.Drawable.Width()
		texH := v.render.Drawable.Height()
		if texW > 0 && texH > 0 {
			v.render.Scale = engo.Point{X: width / texW, Y: height / texH}
		}
	}
}
