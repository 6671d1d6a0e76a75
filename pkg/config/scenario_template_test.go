package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenarioTemplateSystem(t *testing.T) {
	// Test 1: Verify we can get a scenario template
	template := GetScenarioTemplate("flight_deck")
	if template == nil {
		t.Fatal("Expected to get flight_deck template, got nil")
	}

	if template.Name != "Flight Deck" {
		t.Errorf("Expected template name 'Flight Deck', got '%s'", template.Name)
	}

	if template.Aircraft.FlightTime != 10 {
		t.Errorf("Expected flight_deck flight time 10, got %f", template.Aircraft.FlightTime)
	}

	if template.Aircraft.MaxSpeed != 2 {
		t.Errorf("Expected flight_deck aircraft max speed 2, got %f", template.Aircraft.MaxSpeed)
	}

	// Test 2: Verify we can list available templates
	templates := ListScenarioTemplates()
	if len(templates) == 0 {
		t.Error("Expected to get list of scenario templates")
	}

	expectedTemplates := []string{"flight_deck", "sport", "patrol", "training"}
	for _, expected := range expectedTemplates {
		if _, ok := templates[expected]; !ok {
			t.Errorf("Expected template '%s' to be available", expected)
		}
	}

	// Test 3: Verify we can apply a template to config
	cfg := DefaultConfig()
	err := ApplyScenarioTemplate(cfg, "sport")
	if err != nil {
		t.Fatalf("Failed to apply scenario template: %v", err)
	}

	if cfg.Aircraft.MaxSpeed != 3.5 {
		t.Errorf("Expected aircraft max speed 3.5 from sport template, got %f", cfg.Aircraft.MaxSpeed)
	}

	if cfg.Ship.LinearSpeed != 0.8 {
		t.Errorf("Expected ship speed 0.8 from sport template, got %f", cfg.Ship.LinearSpeed)
	}

	// Display settings are not part of a template
	if cfg.Display.Width != 1024 {
		t.Errorf("Expected display width 1024 after template application, got %d", cfg.Display.Width)
	}

	// Test 4: Verify unknown template returns error
	err = ApplyScenarioTemplate(cfg, "unknown_template")
	if err == nil {
		t.Error("Expected error for unknown template")
	}

	// Test 5: Test LoadConfigWithTemplate function
	cfg2, err := LoadConfigWithTemplate("nonexistent.json", "patrol")
	if err != nil {
		t.Fatalf("LoadConfigWithTemplate should fall back to default config, got error: %v", err)
	}

	if cfg2.Aircraft.FlightTime != 30 {
		t.Errorf("Expected flight time 30 after template application, got %f", cfg2.Aircraft.FlightTime)
	}
}

func TestLoadConfigWithTemplate_ExistingFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "base_config.json")

	base := DefaultConfig()
	base.Ship.LinearSpeed = 9.9
	base.Display.Width = 800
	if err := SaveConfig(base, configPath); err != nil {
		t.Fatalf("Failed to save base config: %v", err)
	}

	cfg, err := LoadConfigWithTemplate(configPath, "training")
	if err != nil {
		t.Fatalf("LoadConfigWithTemplate failed: %v", err)
	}

	// Template replaces the tuning, file keeps everything else.
	if cfg.Ship.LinearSpeed != 0.25 {
		t.Errorf("Expected ship speed 0.25 from training template, got %f", cfg.Ship.LinearSpeed)
	}
	if cfg.Display.Width != 800 {
		t.Errorf("Expected display width 800 from file, got %d", cfg.Display.Width)
	}

	// Sanity: the file really existed
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Base config file missing: %v", err)
	}
}

func TestScenarioTemplateValidation(t *testing.T) {
	// Every built-in template has to produce a config that passes the
	// same validation as environment-sourced values.
	for name, template := range scenarioTemplates {
		t.Run(name, func(t *testing.T) {
			if template.Name == "" {
				t.Error("Template name should not be empty")
			}

			if template.Description == "" {
				t.Error("Template description should not be empty")
			}

			env := createValidConfig()
			env.ShipLinearSpeed = template.Ship.LinearSpeed
			env.ShipAngularSpeed = template.Ship.AngularSpeed
			env.AircraftMaxSpeed = template.Aircraft.MaxSpeed
			env.AircraftAcceleration = template.Aircraft.Acceleration
			env.TakeoffTime = template.Aircraft.TakeoffTime
			env.FlightTime = template.Aircraft.FlightTime
			env.RefuelTime = template.Aircraft.RefuelTime
			env.HoverRadius = template.Aircraft.HoverRadius
			env.HoverAngularSpeed = template.Aircraft.HoverAngularSpeed
			env.LandingRadius = template.Aircraft.LandingRadius

			if err := validateEnvironmentConfig(env); err != nil {
				t.Errorf("Template '%s' fails validation: %v", name, err)
			}

			// An aircraft slower than the ship could never land back on it
			if template.Aircraft.MaxSpeed <= template.Ship.LinearSpeed {
				t.Errorf("Template '%s' aircraft cannot catch the ship", name)
			}
		})
	}
}
