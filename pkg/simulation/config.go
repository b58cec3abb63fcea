package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownVariant = errors.New("unknown simulation variant")
)

type Config struct {
	Variant string `json:"variant" yaml:"variant"`

	// Arena: square of side ArenaSize
	ArenaSize float64 `json:"arenaSize" yaml:"arenaSize"`

	// Population
	PopulationSize int `json:"populationSize" yaml:"populationSize"`
	MaxPopulation  int `json:"maxPopulation" yaml:"maxPopulation"`

	// Capture threshold and the range offered by the slider
	SafetyDistance    float64 `json:"safetyDistance" yaml:"safetyDistance"`
	SafetyDistanceMin float64 `json:"safetyDistanceMin" yaml:"safetyDistanceMin"`
	SafetyDistanceMax float64 `json:"safetyDistanceMax" yaml:"safetyDistanceMax"`

	// Motion, per step
	PursuerSpeed      float64           `json:"pursuerSpeed" yaml:"pursuerSpeed"`
	TargetSpeed       float64           `json:"targetSpeed" yaml:"targetSpeed"` // prey or lead
	RepulsionStrength float64           `json:"repulsionStrength" yaml:"repulsionStrength"`
	NeighborRadius    float64           `json:"neighborRadius" yaml:"neighborRadius"`
	LeadDirection     geometry.Vector2D `json:"leadDirection" yaml:"leadDirection"`

	FrameIntervalMs int `json:"frameIntervalMs" yaml:"frameIntervalMs"`

	// Seed is optional; nil means a fresh random source per reset.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:           string(VariantPursuit),
		ArenaSize:         10,
		PopulationSize:    3,
		MaxPopulation:     5,
		SafetyDistance:    1.0,
		SafetyDistanceMin: 0.5,
		SafetyDistanceMax: 5.0,
		PursuerSpeed:      0.05,
		TargetSpeed:       0.03,
		RepulsionStrength: 0.1,
		NeighborRadius:    1.0,
		LeadDirection:     geometry.Vector2D{X: 1, Y: 0},
		FrameIntervalMs:   50,
	}
}

// Dynamics returns the per-run constants derived from c.
func (c *Config) Dynamics() Dynamics {
	return Dynamics{
		PursuerSpeed:      c.PursuerSpeed,
		TargetSpeed:       c.TargetSpeed,
		RepulsionStrength: c.RepulsionStrength,
		NeighborRadius:    c.NeighborRadius,
		MaxPopulation:     c.MaxPopulation,
		LeadDirection:     c.LeadDirection,
	}
}

// FrameInterval is the pacing the presentation layer should call Step at.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// Validate checks the rules the schema cannot express.
func (c *Config) Validate() error {
	switch {
	case c.MaxPopulation < MinPopulation:
		return fmt.Errorf("%w: maxPopulation %d < %d", ErrInvalidConfig, c.MaxPopulation, MinPopulation)
	case c.PopulationSize < MinPopulation || c.PopulationSize > c.MaxPopulation:
		return fmt.Errorf("%w: populationSize %d outside [%d, %d]", ErrInvalidConfig, c.PopulationSize, MinPopulation, c.MaxPopulation)
	case c.SafetyDistanceMin > c.SafetyDistanceMax:
		return fmt.Errorf("%w: safetyDistanceMin %.3f > safetyDistanceMax %.3f", ErrInvalidConfig, c.SafetyDistanceMin, c.SafetyDistanceMax)
	case c.ArenaSize <= 0:
		return fmt.Errorf("%w: arenaSize must be positive", ErrInvalidConfig)
	}
	switch Variant(c.Variant) {
	case VariantPursuit, VariantFollow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}
	return nil
}

// LoadConfig reads a JSON or YAML file, lays it over DefaultConfig, validates the
// merged document against the embedded schema and returns the result.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	overrides, err := decodeDocument(configFile, b)
	if err != nil {
		return nil, err
	}

	// 3. Merge over defaults
	merged, err := toDocument(DefaultConfig())
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		merged[k] = v
	}

	// 4. Validate
	if err := sch.Validate(merged); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 5. Unmarshal into Struct
	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeDocument turns the file content into the generic JSON shape the schema
// validator expects (float64 numbers, string keyed maps).
func decodeDocument(name string, b []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var y map[string]interface{}
		if err := yaml.Unmarshal(b, &y); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
		// round trip through JSON so YAML ints become JSON numbers
		j, err := json.Marshal(y)
		if err != nil {
			return nil, fmt.Errorf("failed to convert config yaml: %w", err)
		}
		b = j
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}

func toDocument(cfg *Config) (map[string]interface{}, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode default config: %w", err)
	}
	return doc, nil
}

// WriteYAML saves c to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
