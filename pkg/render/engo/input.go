// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// controlButtons maps engo button names to simulation keys
var controlButtons = []struct {
	name string
	key  entity.Key
}{
	{"forward", entity.KeyForward},
	{"backward", entity.KeyBackward},
	{"left", entity.KeyLeft},
	{"right", entity.KeyRight},
}

// InputSystem forwards keyboard and mouse input to the simulation. Key
// presses and releases pass through as edges; the simulation keeps its
// own held-key state.
type InputSystem struct {
	sim *engine.Simulation

	// tracker receives every mouse event regardless of hover
	tracker mouseTracker
}

type mouseTracker struct {
	ecs.BasicEntity
	common.MouseComponent
}

// NewInputSystem creates an input system driving the given simulation
func NewInputSystem(sim *engine.Simulation) *InputSystem {
	return &InputSystem{sim: sim}
}

// attachMouse registers the tracker entity with the mouse system so
// clicks anywhere in the window reach the simulation
func (is *InputSystem) attachMouse(mouse *common.MouseSystem) {
	is.tracker.BasicEntity = ecs.NewBasic()
	is.tracker.MouseComponent = common.MouseComponent{Track: true}
	mouse.Add(&is.tracker.BasicEntity, &is.tracker.MouseComponent, nil, nil)
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update forwards this frame's input edges to the simulation
func (is *InputSystem) Update(dt float32) {
	for _, b := range controlButtons {
		button := engo.Input.Button(b.name)
		if button.JustPressed() {
			is.sim.KeyPressed(b.key)
		}
		if button.JustReleased() {
			is.sim.KeyReleased(b.key)
		}
	}

	if engo.Input.Button("quit").JustPressed() {
		engo.Exit()
	}

	is.handleMouse()
}

// handleMouse turns tracked clicks into simulation commands. The mouse
// system resets the click flags every frame, so each click fires once.
func (is *InputSystem) handleMouse() {
	if is.tracker.MouseComponent.Clicked {
		is.sim.MouseClicked(is.mousePosition(), true)
	}
	if is.tracker.MouseComponent.RightClicked {
		is.sim.MouseClicked(is.mousePosition(), false)
	}
}

func (is *InputSystem) mousePosition() physics.Vector2D {
	return physics.Vector2D{
		X: float64(is.tracker.MouseComponent.MouseX),
		Y: float64(is.tracker.MouseComponent.MouseY),
	}
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	// Carrier steering
	engo.Input.RegisterButton("forward", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("backward", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("left", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("right", engo.KeyD, engo.KeyArrowRight)

	// Camera zoom
	engo.Input.RegisterButton("zoomIn", engo.KeyZ)
	engo.Input.RegisterButton("zoomOut", engo.KeyX)
	engo.Input.RegisterButton("resetZoom", engo.KeyR)

	engo.Input.RegisterButton("quit", engo.KeyEscape)
}
