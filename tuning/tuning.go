package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning holds the movement scalars for the player controller.
type Tuning struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	TimeToMaxSpeed float64 `yaml:"time_to_max_speed"`
	TimeToMinSpeed float64 `yaml:"time_to_min_speed"`
	MaxJumpHeight  float64 `yaml:"max_jump_height"`
	CrawlSpeed     float64 `yaml:"crawl_speed"`
}

// Load reads and validates a tuning file, preferring an on-disk copy over
// the embedded default.
func Load(filename string) (*Tuning, error) {
	spec, err := LoadSpec[Tuning](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", filename, err)
	}
	return &spec, nil
}

// LoadSpec unmarshals a yaml spec file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := read(filename)
	if err != nil {
		return zero, fmt.Errorf("tuning: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Validate rejects values that would divide by zero or produce a negative
// radicand in the jump impulse.
func (t *Tuning) Validate() error {
	if t.MaxSpeed <= 0 {
		return fmt.Errorf("max_speed must be positive, got %v", t.MaxSpeed)
	}
	if t.TimeToMaxSpeed <= 0 {
		return fmt.Errorf("time_to_max_speed must be positive, got %v", t.TimeToMaxSpeed)
	}
	if t.TimeToMinSpeed <= 0 {
		return fmt.Errorf("time_to_min_speed must be positive, got %v", t.TimeToMinSpeed)
	}
	if t.MaxJumpHeight < 0 {
		return fmt.Errorf("max_jump_height must not be negative, got %v", t.MaxJumpHeight)
	}
	if t.CrawlSpeed < 0 {
		return fmt.Errorf("crawl_speed must not be negative, got %v", t.CrawlSpeed)
	}
	return nil
}
