package flock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.WorldWidth = 0 }},
		{"negative height", func(c *Config) { c.WorldHeight = -1 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"zero max speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"zero max accel", func(c *Config) { c.MaxAccel = 0 }},
		{"negative separation radius", func(c *Config) { c.SeparationRadius = -5 }},
		{"negative weight", func(c *Config) { c.AlignmentWeight = -0.1 }},
		{"negative agents", func(c *Config) { c.NumAgents = -1 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "flock.json", `{
		"worldWidth": 1024,
		"numAgents": 250,
		"seed": 42,
		"workers": 4,
		"behaviors": {"cohesion": true, "separation": true, "alignment": false}
	}`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.WorldWidth != 1024 || cfg.NumAgents != 250 || cfg.Seed != 42 || cfg.Workers != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Behaviors.Alignment {
		t.Error("alignment should be disabled")
	}
	// untouched keys keep their defaults
	def := DefaultConfig()
	if cfg.WorldHeight != def.WorldHeight || cfg.CellSize != def.CellSize || cfg.MaxSpeed != def.MaxSpeed {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "flock.toml", `
worldWidth = 640
worldHeight = 480
numAgents = 30
cellSize = 40
wrapNeighborhood = true
logLevel = "debug"

[behaviors]
cohesion = false
separation = true
alignment = true
`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.WorldWidth != 640 || cfg.WorldHeight != 480 || cfg.NumAgents != 30 || cfg.CellSize != 40 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.WrapNeighborhood || cfg.LogLevel != "debug" {
		t.Errorf("wrapNeighborhood/logLevel not applied: %+v", cfg)
	}
	if cfg.Behaviors.Cohesion || !cfg.Behaviors.Separation {
		t.Errorf("behaviors not applied: %+v", cfg.Behaviors)
	}
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"negative cell size", "bad.json", `{"cellSize": -1}`},
		{"unknown key", "bad.json", `{"gravity": 9.81}`},
		{"wrong type", "bad.json", `{"numAgents": "many"}`},
		{"unknown log level", "bad.json", `{"logLevel": "loud"}`},
		{"malformed json", "bad.json", `{"numAgents": `},
		{"malformed toml", "bad.toml", `numAgents = = 3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := LoadConfig(path, ""); err == nil {
				t.Errorf("LoadConfig(%s) succeeded; want an error", tt.content)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v; want os.ErrNotExist", err)
	}
}

func TestLoadConfig_ExternalSchema(t *testing.T) {
	schema := writeFile(t, "strict.schema.json", `{
		"type": "object",
		"properties": {"numAgents": {"type": "integer", "maximum": 10}}
	}`)
	path := writeFile(t, "flock.json", `{"numAgents": 50}`)

	if _, err := LoadConfig(path, schema); err == nil {
		t.Error("LoadConfig() should apply the external schema")
	}
}

func TestLoadConfig_ShippedConfigs(t *testing.T) {
	for _, path := range []string{"../../configs/flock.json", "../../configs/flock.toml"} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			if _, err := LoadConfig(path, ""); err != nil {
				t.Errorf("LoadConfig(%s) error = %v", path, err)
			}
		})
	}
}
