// pkg/config/scenario_template.go
package config

import (
	"fmt"

	"github.com/opd-ai/go-carrier/pkg/entity"
)

// ScenarioTemplate is a named preset of ship and aircraft tuning
type ScenarioTemplate struct {
	Name        string
	Description string
	Ship        entity.ShipStats
	Aircraft    entity.AircraftStats
}

// Built-in scenario templates, keyed by the identifier used on the
// command line and in LoadConfigWithTemplate.
var scenarioTemplates = map[string]*ScenarioTemplate{
	"flight_deck": {
		Name:        "Flight Deck",
		Description: "Standard carrier operations with the stock squadron",
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
	},
	"sport": {
		Name:        "Sport",
		Description: "Fast, twitchy aircraft on short sorties",
		Ship: entity.ShipStats{
			LinearSpeed:  0.8,
			AngularSpeed: 0.9,
		},
		Aircraft: entity.AircraftStats{
			MaxSpeed:          3.5,
			Acceleration:      2.5,
			TakeoffTime:       1,
			FlightTime:        6,
			RefuelTime:        1.5,
			HoverRadius:       0.8,
			HoverAngularSpeed: 4,
			LandingRadius:     0.15,
		},
	},
	"patrol": {
		Name:        "Patrol",
		Description: "Long-endurance sorties around a slow carrier",
		Ship: entity.ShipStats{
			LinearSpeed:  0.3,
			AngularSpeed: 0.4,
		},
		Aircraft: entity.AircraftStats{
			MaxSpeed:          1.6,
			Acceleration:      0.6,
			TakeoffTime:       3,
			FlightTime:        30,
			RefuelTime:        6,
			HoverRadius:       1.5,
			HoverAngularSpeed: 1.8,
			LandingRadius:     0.1,
		},
	},
	"training": {
		Name:        "Training",
		Description: "Forgiving tuning for learning the controls",
		Ship: entity.ShipStats{
			LinearSpeed:  0.25,
			AngularSpeed: 0.35,
		},
		Aircraft: entity.AircraftStats{
			MaxSpeed:          1.2,
			Acceleration:      0.8,
			TakeoffTime:       2,
			FlightTime:        15,
			RefuelTime:        2,
			HoverRadius:       1.2,
			HoverAngularSpeed: 2,
			LandingRadius:     0.3,
		},
	},
}

// GetScenarioTemplate returns the named template, or nil if unknown
func GetScenarioTemplate(name string) *ScenarioTemplate {
	return scenarioTemplates[name]
}

// ListScenarioTemplates returns the available templates keyed by identifier
func ListScenarioTemplates() map[string]*ScenarioTemplate {
	templates := make(map[string]*ScenarioTemplate, len(scenarioTemplates))
	for name, template := range scenarioTemplates {
		templates[name] = template
	}
	return templates
}

// ApplyScenarioTemplate overwrites the ship and aircraft tuning in config
// with the named template's values
func ApplyScenarioTemplate(config *GameConfig, name string) error {
	template := GetScenarioTemplate(name)
	if template == nil {
		return fmt.Errorf("unknown scenario template: %q", name)
	}

	config.Ship = template.Ship
	config.Aircraft = template.Aircraft
	return nil
}

// LoadConfigWithTemplate loads a config file and applies the named template
// on top. A missing or unreadable config file falls back to the defaults.
func LoadConfigWithTemplate(path, templateName string) (*GameConfig, error) {
	config, err := LoadConfig(path)
	if err != nil {
		config = DefaultConfig()
	}

	if err := ApplyScenarioTemplate(config, templateName); err != nil {
		return nil, err
	}

	return config, nil
}
