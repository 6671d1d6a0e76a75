// cmd/carrier/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
	"github.com/opd-ai/go-carrier/pkg/render"
	engorender "github.com/opd-ai/go-carrier/pkg/render/engo"
)

// Terminal viewport. Rows are taller than columns, so the world scale
// is per cell, not per pixel.
const (
	terminalWidth  = 80
	terminalHeight = 24
	terminalScale  = 0.5
)

// maxStepSeconds caps one simulation step in the fixed-step loops
const maxStepSeconds = 0.1

// Scripted demo for the non-interactive renderers: one patrol target,
// one launch attempt every launchInterval seconds of simulation time
var patrolTarget = physics.Vector2D{X: 8, Y: 5}

const launchInterval = 2.0

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	scenario := flag.String("scenario", "", "Scenario template to apply (see pkg/config)")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'null'")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (engo only)")
	duration := flag.Duration("duration", 0, "Stop after this long (0 runs until interrupted)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig := loadConfiguration(ctx, logger, *configPath, *scenario)

	if *width > 0 {
		gameConfig.Display.Width = *width
	}
	if *height > 0 {
		gameConfig.Display.Height = *height
	}
	if *fullscreen {
		gameConfig.Display.Fullscreen = true
	}

	switch *renderer {
	case "engo":
		// Blocks until the window closes or the duration elapses
		engorender.Run(gameConfig, *duration)
	case "terminal":
		runTerminal(ctx, logger, gameConfig, *duration)
	case "null":
		runHeadless(ctx, logger, gameConfig, *duration)
	default:
		logger.Error(ctx, "Unknown renderer", nil,
			"renderer", *renderer,
		)
		os.Exit(1)
	}
}

// loadConfiguration resolves the effective configuration: file or
// defaults, then the scenario template, then environment overrides
func loadConfiguration(ctx context.Context, logger *logging.Logger, path, scenario string) *config.GameConfig {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if scenario != "" {
		if err := config.ApplyScenarioTemplate(gameConfig, scenario); err != nil {
			logger.Error(ctx, "Failed to apply scenario template", err,
				"scenario", scenario,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Applied scenario template",
			"scenario", scenario,
		)
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	return gameConfig
}

// runTerminal drives the simulation with the ASCII renderer and the
// scripted patrol demo
func runTerminal(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, duration time.Duration) {
	scene := render.NewTerminalScene(terminalWidth, terminalHeight, terminalScale)
	sim := engine.NewSimulation(cfg, scene)

	// The carrier sits still in the demo, so the view center stays at
	// the origin and the click mapping is stable
	script := newDemoScript(func(world physics.Vector2D) physics.Vector2D {
		return physics.Vector2D{
			X: world.X/terminalScale + terminalWidth/2,
			Y: terminalHeight/2 - world.Y/terminalScale,
		}
	})

	logger.Info(ctx, "Starting terminal renderer",
		"width", terminalWidth,
		"height", terminalHeight,
		"tick_rate", cfg.Simulation.TickRate,
	)

	runFixedStep(ctx, logger, cfg, sim, duration, script, func(tick uint64) {
		scene.SetCenter(sim.Ship.Position())

		// Redraw at roughly 10 fps; full-rate ANSI redraws just flicker
		if every := uint64(cfg.Simulation.TickRate / 10); every < 2 || tick%every == 0 {
			scene.Present()
		}
	})
}

// runHeadless drives the simulation against the null renderer, logging
// a periodic squadron status instead of drawing
func runHeadless(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, duration time.Duration) {
	sim := engine.NewSimulation(cfg, render.NewNullScene())

	// The null scene maps screen to world as identity
	script := newDemoScript(func(world physics.Vector2D) physics.Vector2D {
		return world
	})

	logger.Info(ctx, "Starting headless run",
		"tick_rate", cfg.Simulation.TickRate,
	)

	const statusEvery = 5 * time.Second
	nextStatus := time.Now().Add(statusEvery)

	runFixedStep(ctx, logger, cfg, sim, duration, script, func(tick uint64) {
		if time.Now().Before(nextStatus) {
			return
		}
		nextStatus = time.Now().Add(statusEvery)

		logger.Info(ctx, "Squadron status",
			"tick", tick,
			"in_flight", sim.InFlightCount(),
		)
	})
}

// runFixedStep is the shared simulation loop: wall-clock deltas capped
// at maxStepSeconds, graceful stop on SIGINT/SIGTERM or after duration
func runFixedStep(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, sim *engine.Simulation, duration time.Duration, script *demoScript, present func(tick uint64)) {
	tickRate := cfg.Simulation.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var timeout <-chan time.Time
	if duration > 0 {
		timeout = time.After(duration)
	}

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-sigChan:
			logger.Info(ctx, "Interrupted, shutting down")
			sim.Shutdown()
			return
		case <-timeout:
			logger.Info(ctx, "Run duration elapsed, shutting down",
				"duration", duration.String(),
			)
			sim.Shutdown()
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxStepSeconds {
				dt = maxStepSeconds
			}

			script.advance(sim, dt)
			sim.Update(dt)
			present(sim.Tick())
		}
	}
}

// demoScript assigns the patrol target on the first step and then
// requests a launch every launchInterval seconds. Launch requests with
// no aircraft ready do nothing, so the squadron rotates continuously.
type demoScript struct {
	clock      float64
	nextLaunch float64
	targeted   bool
	toScreen   func(physics.Vector2D) physics.Vector2D
}

func newDemoScript(toScreen func(physics.Vector2D) physics.Vector2D) *demoScript {
	return &demoScript{toScreen: toScreen}
}

func (d *demoScript) advance(sim *engine.Simulation, dt float64) {
	d.clock += dt

	if !d.targeted {
		sim.MouseClicked(d.toScreen(patrolTarget), true)
		d.targeted = true
	}

	if d.clock >= d.nextLaunch {
		sim.MouseClicked(d.toScreen(patrolTarget), false)
		d.nextLaunch += launchInterval
	}
}
