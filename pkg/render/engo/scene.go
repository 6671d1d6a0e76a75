// pkg/render/engo/scene.go
package engo

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/engine"
)

// maxFrameDelta caps a single simulation step in seconds. Frame deltas
// above this, from pauses or window drags, are clamped before stepping.
const maxFrameDelta = 0.1

// GameScene is the engo scene running the carrier simulation. The
// simulation itself is created in Setup, after the GL context exists.
type GameScene struct {
	cfg         *config.GameConfig
	runDuration time.Duration

	world  *ecs.World
	view   *EngoScene
	sim    *engine.Simulation
	camera *CameraSystem
}

// NewGameScene creates a game scene for the given configuration. A
// positive runDuration closes the window after that much wall time.
func NewGameScene(cfg *config.GameConfig, runDuration time.Duration) *GameScene {
	return &GameScene{
		cfg:         cfg,
		runDuration: runDuration,
	}
}

// Type uniquely identifies the scene within engo
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before Setup. All sprites are generated in memory,
// so there is nothing to load from disk.
func (scene *GameScene) Preload() {}

// Setup builds the world: render and mouse systems first, then the
// camera, the simulation with its visuals, input forwarding and HUD
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	scene.world = world

	common.SetBackground(seaColor)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	mouseSystem := &common.MouseSystem{}
	world.AddSystem(mouseSystem)

	assets := NewAssetManager()
	if err := assets.LoadAssets(); err != nil {
		panic("engo: loading assets: " + err.Error())
	}

	scene.camera = NewCameraSystem(scene.cfg.Display.PixelsPerUnit)
	world.AddSystem(scene.camera)

	scene.view = NewEngoScene(renderSystem, scene.camera, assets)
	scene.sim = engine.NewSimulation(scene.cfg, scene.view)

	SetupInputBindings()
	input := NewInputSystem(scene.sim)
	input.attachMouse(mouseSystem)
	world.AddSystem(input)

	world.AddSystem(&simSystem{
		sim:      scene.sim,
		view:     scene.view,
		camera:   scene.camera,
		duration: scene.runDuration,
	})

	hud := NewHUDSystem(scene.sim)
	hud.attach(renderSystem)
	world.AddSystem(hud)
}

// Exit stops the simulation when the window closes
func (scene *GameScene) Exit() {
	if scene.sim != nil {
		scene.sim.Shutdown()
	}
}

// simSystem steps the simulation once per frame, points the camera at
// the carrier and reprojects the visuals
type simSystem struct {
	sim      *engine.Simulation
	view     *EngoScene
	camera   *CameraSystem
	duration time.Duration
	elapsed  float64
}

// Remove satisfies the ecs.System interface
func (ss *simSystem) Remove(basic ecs.BasicEntity) {
	// Not used for simulation system
}

// Update advances the simulation by the clamped frame delta
func (ss *simSystem) Update(dt float32) {
	ss.sim.Update(clampDelta(float64(dt)))
	ss.camera.SetTarget(ss.sim.Ship.Position())
	ss.view.Sync()

	if ss.duration > 0 {
		ss.elapsed += float64(dt)
		if ss.elapsed >= ss.duration.Seconds() {
			engo.Exit()
		}
	}
}

// clampDelta limits one step to maxFrameDelta seconds
func clampDelta(dt float64) float64 {
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// Run opens the game window and blocks until the player closes it,
// presses escape, or the run duration elapses
func Run(cfg *config.GameConfig, runDuration time.Duration) {
	opts := engo.RunOptions{
		Title:      cfg.Display.Title,
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	}

	engo.Run(opts, NewGameScene(cfg, runDuration))
}
