package flock

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed flock.schema.json
var defaultSchema string

// ErrInvalidConfig wraps every error returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid flock config")

// Behaviors are the flocking rule toggles, flipped by the input layer between ticks.
type Behaviors struct {
	Cohesion   bool `json:"cohesion"`
	Separation bool `json:"separation"`
	Alignment  bool `json:"alignment"`
}

type Config struct {
	// World Dimensions (toroidal)
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumAgents int    `json:"numAgents"`
	Seed      uint64 `json:"seed"` // 0 picks a time based seed

	// Spatial index
	CellSize         float64 `json:"cellSize"`         // should approximate the largest interaction radius
	WrapNeighborhood bool    `json:"wrapNeighborhood"` // look across the world seam when querying

	// Activation distances
	SeparationRadius   float64 `json:"separationRadius"`
	PointerRepelRadius float64 `json:"pointerRepelRadius"`
	AttractorRadius    float64 `json:"attractorRadius"`

	// Force scales
	CohesionWeight       float64 `json:"cohesionWeight"`
	SeparationWeight     float64 `json:"separationWeight"`
	AlignmentWeight      float64 `json:"alignmentWeight"`
	PointerRepelStrength float64 `json:"pointerRepelStrength"`
	AttractorStrength    float64 `json:"attractorStrength"`

	// Kinematic clamps
	MaxSpeed float64 `json:"maxSpeed"`
	MaxAccel float64 `json:"maxAccel"`

	Behaviors Behaviors `json:"behaviors"`

	// Steering pass goroutines, 0 or 1 runs it inline
	Workers  int    `json:"workers"`
	LogLevel string `json:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:           800,
		WorldHeight:          600,
		NumAgents:            100,
		CellSize:             50,
		SeparationRadius:     25,
		PointerRepelRadius:   100,
		AttractorRadius:      200,
		CohesionWeight:       0.05,
		SeparationWeight:     0.05,
		AlignmentWeight:      0.05,
		PointerRepelStrength: 1.0,
		AttractorStrength:    0.8,
		MaxSpeed:             5.0,
		MaxAccel:             0.5,
		Behaviors: Behaviors{
			Cohesion:   true,
			Separation: true,
			Alignment:  true,
		},
		Workers:  1,
		LogLevel: "info",
	}
}

// Validate checks the invariants the engine relies on.
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"worldWidth", c.WorldWidth},
		{"worldHeight", c.WorldHeight},
		{"cellSize", c.CellSize},
		{"maxSpeed", c.MaxSpeed},
		{"maxAccel", c.MaxAccel},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"separationRadius", c.SeparationRadius},
		{"pointerRepelRadius", c.PointerRepelRadius},
		{"attractorRadius", c.AttractorRadius},
		{"cohesionWeight", c.CohesionWeight},
		{"separationWeight", c.SeparationWeight},
		{"alignmentWeight", c.AlignmentWeight},
		{"pointerRepelStrength", c.PointerRepelStrength},
		{"attractorStrength", c.AttractorStrength},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.NumAgents < 0 {
		return fmt.Errorf("%w: numAgents must be >= 0, got %d", ErrInvalidConfig, c.NumAgents)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// LoadConfig loads a JSON or TOML configuration file, validates it against
// the JSON schema and overlays it on DefaultConfig.
// An empty schemaFile selects the schema embedded in this package.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	var (
		sch *jsonschema.Schema
		err error
	)
	if schemaFile == "" {
		sch, err = jsonschema.CompileString("flock.schema.json", defaultSchema)
	} else {
		sch, err = jsonschema.Compile(schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File, TOML is normalised to JSON so one schema covers both
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(configFile), ".toml") {
		b, err = tomlToJSON(b)
		if err != nil {
			return nil, err
		}
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func tomlToJSON(b []byte) ([]byte, error) {
	var doc map[string]interface{}
	if _, err := toml.Decode(string(b), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return out, nil
}
