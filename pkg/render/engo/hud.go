// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/entity"
)

// Status dot layout, in screen pixels from the top-left corner
const (
	dotSize   = 14
	dotGap    = 8
	dotMargin = 12
)

// HUDSystem shows one status dot per squadron slot. Dot color tracks
// the aircraft's flight phase.
type HUDSystem struct {
	sim  *engine.Simulation
	dots [engine.SquadronSize]*statusDot
}

// statusDot is one HUD rectangle entity
type statusDot struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// NewHUDSystem creates a HUD for the given simulation
func NewHUDSystem(sim *engine.Simulation) *HUDSystem {
	return &HUDSystem{sim: sim}
}

// attach creates the dot entities and registers them with the render
// system. The HUD shader pins them to the window regardless of camera.
func (hud *HUDSystem) attach(renderSystem *common.RenderSystem) {
	for i := range hud.dots {
		dot := &statusDot{basic: ecs.NewBasic()}
		dot.render = common.RenderComponent{
			Drawable: common.Rectangle{
				BorderWidth: 1,
				BorderColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			},
			Color: stateColor(entity.Idle),
		}
		dot.render.SetZIndex(zHUD)
		dot.render.SetShader(common.HUDShader)
		dot.space = common.SpaceComponent{
			Position: dotPosition(i),
			Width:    dotSize,
			Height:   dotSize,
		}
		renderSystem.Add(&dot.basic, &dot.render, &dot.space)
		hud.dots[i] = dot
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update refreshes each dot's color from its aircraft's state
func (hud *HUDSystem) Update(dt float32) {
	for i, dot := range hud.dots {
		if dot == nil {
			continue
		}
		dot.render.Color = stateColor(hud.sim.Planes[i].State())
	}
}

// dotPosition returns the top-left corner of a slot's status dot
func dotPosition(slot int) engo.Point {
	return engo.Point{
		X: float32(dotMargin + slot*(dotSize+dotGap)),
		Y: float32(dotMargin),
	}
}

// stateColor maps a flight phase to its HUD color
func stateColor(state entity.AircraftState) color.RGBA {
	switch state {
	case entity.Idle:
		return color.RGBA{R: 86, G: 196, B: 110, A: 255}
	case entity.Takeoff:
		return color.RGBA{R: 255, G: 214, B: 90, A: 255}
	case entity.Fly:
		return color.RGBA{R: 90, G: 180, B: 255, A: 255}
	case entity.Hover:
		return color.RGBA{R: 130, G: 130, B: 255, A: 255}
	case entity.Land:
		return color.RGBA{R: 255, G: 150, B: 70, A: 255}
	case entity.Refuel:
		return color.RGBA{R: 235, G: 90, B: 90, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
