// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/go-carrier/pkg/entity"
)

// GameConfig contains configuration for a carrier simulation
type GameConfig struct {
	Ship       entity.ShipStats     `json:"ship"`
	Aircraft   entity.AircraftStats `json:"aircraft"`
	Simulation SimulationConfig     `json:"simulation"`
	Display    DisplayConfig        `json:"display"`
}

// SimulationConfig contains simulation loop configuration
type SimulationConfig struct {
	TickRate int `json:"tickRate"`
}

// DisplayConfig contains window and rendering configuration
type DisplayConfig struct {
	Title         string  `json:"title"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Fullscreen    bool    `json:"fullscreen"`
	VSync         bool    `json:"vsync"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Ship: entity.ShipStats{
			LinearSpeed:  0.5,
			AngularSpeed: 0.5,
		},
		Aircraft: entity.AircraftStats{
			MaxSpeed:          2,
			Acceleration:      1,
			TakeoffTime:       2,
			FlightTime:        10,
			RefuelTime:        3,
			HoverRadius:       1,
			HoverAngularSpeed: 2.5,
			LandingRadius:     0.1,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
		},
		Display: DisplayConfig{
			Title:         "Carrier",
			Width:         1024,
			Height:        768,
			Fullscreen:    false,
			VSync:         true,
			PixelsPerUnit: 48,
		},
	}
}
