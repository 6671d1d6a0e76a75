// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig contains runtime settings sourced from CARRIER_*
// environment variables.
type EnvironmentConfig struct {
	Renderer      string
	TickRate      int
	WindowWidth   int
	WindowHeight  int
	Fullscreen    bool
	PixelsPerUnit float64
	RunDuration   time.Duration

	ShipLinearSpeed      float64
	ShipAngularSpeed     float64
	AircraftMaxSpeed     float64
	AircraftAcceleration float64
	TakeoffTime          float64
	FlightTime           float64
	RefuelTime           float64
	HoverRadius          float64
	HoverAngularSpeed    float64
	LandingRadius        float64
}

// ValidationError reports a configuration value outside its allowed range
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config field %s=%v: %s", e.Field, e.Value, e.Message)
}

// LoadConfigFromEnv builds an EnvironmentConfig from the environment,
// falling back to defaults for anything unset, and validates the result.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	config := &EnvironmentConfig{
		Renderer:      getEnvOrDefault("CARRIER_RENDERER", "engo"),
		TickRate:      getEnvAsIntOrDefault("CARRIER_TICK_RATE", 60),
		WindowWidth:   getEnvAsIntOrDefault("CARRIER_WINDOW_WIDTH", 1024),
		WindowHeight:  getEnvAsIntOrDefault("CARRIER_WINDOW_HEIGHT", 768),
		Fullscreen:    getEnvAsBoolOrDefault("CARRIER_FULLSCREEN", false),
		PixelsPerUnit: getEnvAsFloatOrDefault("CARRIER_PIXELS_PER_UNIT", 48),
		RunDuration:   getEnvAsDurationOrDefault("CARRIER_RUN_DURATION", 0),

		ShipLinearSpeed:      getEnvAsFloatOrDefault("CARRIER_SHIP_SPEED", 0.5),
		ShipAngularSpeed:     getEnvAsFloatOrDefault("CARRIER_SHIP_TURN_RATE", 0.5),
		AircraftMaxSpeed:     getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_MAX_SPEED", 2),
		AircraftAcceleration: getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_ACCELERATION", 1),
		TakeoffTime:          getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_TAKEOFF_TIME", 2),
		FlightTime:           getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_FLIGHT_TIME", 10),
		RefuelTime:           getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_REFUEL_TIME", 3),
		HoverRadius:          getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_HOVER_RADIUS", 1),
		HoverAngularSpeed:    getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_HOVER_TURN_RATE", 2.5),
		LandingRadius:        getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_LANDING_RADIUS", 0.1),
	}

	if err := validateEnvironmentConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnvironmentOverrides overwrites config fields for which a CARRIER_*
// environment variable is set, then validates the merged result.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	config.Ship.LinearSpeed = getEnvAsFloatOrDefault("CARRIER_SHIP_SPEED", config.Ship.LinearSpeed)
	config.Ship.AngularSpeed = getEnvAsFloatOrDefault("CARRIER_SHIP_TURN_RATE", config.Ship.AngularSpeed)

	config.Aircraft.MaxSpeed = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_MAX_SPEED", config.Aircraft.MaxSpeed)
	config.Aircraft.Acceleration = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_ACCELERATION", config.Aircraft.Acceleration)
	config.Aircraft.TakeoffTime = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_TAKEOFF_TIME", config.Aircraft.TakeoffTime)
	config.Aircraft.FlightTime = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_FLIGHT_TIME", config.Aircraft.FlightTime)
	config.Aircraft.RefuelTime = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_REFUEL_TIME", config.Aircraft.RefuelTime)
	config.Aircraft.HoverRadius = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_HOVER_RADIUS", config.Aircraft.HoverRadius)
	config.Aircraft.HoverAngularSpeed = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_HOVER_TURN_RATE", config.Aircraft.HoverAngularSpeed)
	config.Aircraft.LandingRadius = getEnvAsFloatOrDefault("CARRIER_AIRCRAFT_LANDING_RADIUS", config.Aircraft.LandingRadius)

	config.Simulation.TickRate = getEnvAsIntOrDefault("CARRIER_TICK_RATE", config.Simulation.TickRate)

	config.Display.Width = getEnvAsIntOrDefault("CARRIER_WINDOW_WIDTH", config.Display.Width)
	config.Display.Height = getEnvAsIntOrDefault("CARRIER_WINDOW_HEIGHT", config.Display.Height)
	config.Display.Fullscreen = getEnvAsBoolOrDefault("CARRIER_FULLSCREEN", config.Display.Fullscreen)
	config.Display.PixelsPerUnit = getEnvAsFloatOrDefault("CARRIER_PIXELS_PER_UNIT", config.Display.PixelsPerUnit)

	merged := &EnvironmentConfig{
		Renderer:      getEnvOrDefault("CARRIER_RENDERER", "engo"),
		TickRate:      config.Simulation.TickRate,
		WindowWidth:   config.Display.Width,
		WindowHeight:  config.Display.Height,
		Fullscreen:    config.Display.Fullscreen,
		PixelsPerUnit: config.Display.PixelsPerUnit,
		RunDuration:   getEnvAsDurationOrDefault("CARRIER_RUN_DURATION", 0),

		ShipLinearSpeed:      config.Ship.LinearSpeed,
		ShipAngularSpeed:     config.Ship.AngularSpeed,
		AircraftMaxSpeed:     config.Aircraft.MaxSpeed,
		AircraftAcceleration: config.Aircraft.Acceleration,
		TakeoffTime:          config.Aircraft.TakeoffTime,
		FlightTime:           config.Aircraft.FlightTime,
		RefuelTime:           config.Aircraft.RefuelTime,
		HoverRadius:          config.Aircraft.HoverRadius,
		HoverAngularSpeed:    config.Aircraft.HoverAngularSpeed,
		LandingRadius:        config.Aircraft.LandingRadius,
	}

	return validateEnvironmentConfig(merged)
}

func validateEnvironmentConfig(config *EnvironmentConfig) error {
	switch config.Renderer {
	case "engo", "terminal", "null":
	default:
		return &ValidationError{Field: "Renderer", Value: config.Renderer, Message: "must be one of engo, terminal, null"}
	}
	if config.TickRate < 1 || config.TickRate > 240 {
		return &ValidationError{Field: "TickRate", Value: config.TickRate, Message: "must be between 1 and 240"}
	}
	if config.WindowWidth < 320 || config.WindowWidth > 7680 {
		return &ValidationError{Field: "WindowWidth", Value: config.WindowWidth, Message: "must be between 320 and 7680"}
	}
	if config.WindowHeight < 240 || config.WindowHeight > 4320 {
		return &ValidationError{Field: "WindowHeight", Value: config.WindowHeight, Message: "must be between 240 and 4320"}
	}
	if config.PixelsPerUnit < 1 || config.PixelsPerUnit > 512 {
		return &ValidationError{Field: "PixelsPerUnit", Value: config.PixelsPerUnit, Message: "must be between 1 and 512"}
	}
	if config.RunDuration != 0 && (config.RunDuration < time.Second || config.RunDuration > 24*time.Hour) {
		return &ValidationError{Field: "RunDuration", Value: config.RunDuration, Message: "must be zero or between 1s and 24h"}
	}
	if config.ShipLinearSpeed <= 0 || config.ShipLinearSpeed > 100 {
		return &ValidationError{Field: "ShipLinearSpeed", Value: config.ShipLinearSpeed, Message: "must be between 0 and 100"}
	}
	if config.ShipAngularSpeed <= 0 || config.ShipAngularSpeed > 100 {
		return &ValidationError{Field: "ShipAngularSpeed", Value: config.ShipAngularSpeed, Message: "must be between 0 and 100"}
	}
	if config.AircraftMaxSpeed <= 0 || config.AircraftMaxSpeed > 1000 {
		return &ValidationError{Field: "AircraftMaxSpeed", Value: config.AircraftMaxSpeed, Message: "must be between 0 and 1000"}
	}
	if config.AircraftAcceleration <= 0 {
		return &ValidationError{Field: "AircraftAcceleration", Value: config.AircraftAcceleration, Message: "must be positive"}
	}
	if config.TakeoffTime < 0 {
		return &ValidationError{Field: "TakeoffTime", Value: config.TakeoffTime, Message: "cannot be negative"}
	}
	if config.FlightTime <= config.TakeoffTime {
		return &ValidationError{Field: "FlightTime", Value: config.FlightTime, Message: "must be longer than the takeoff time"}
	}
	if config.RefuelTime < 0 {
		return &ValidationError{Field: "RefuelTime", Value: config.RefuelTime, Message: "cannot be negative"}
	}
	if config.HoverRadius <= 0 {
		return &ValidationError{Field: "HoverRadius", Value: config.HoverRadius, Message: "must be positive"}
	}
	if config.HoverAngularSpeed <= 0 {
		return &ValidationError{Field: "HoverAngularSpeed", Value: config.HoverAngularSpeed, Message: "must be positive"}
	}
	if config.LandingRadius <= 0 {
		return &ValidationError{Field: "LandingRadius", Value: config.LandingRadius, Message: "must be positive"}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
