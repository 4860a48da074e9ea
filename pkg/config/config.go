package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// ErrConfigMissing indicates that the config file does not exist.
	ErrConfigMissing = errors.New("config file not found")
)

func init() {
	validate = validator.New()
}

// Config holds the benchmark sweep settings. Zero values are filled in
// from Default before validation, so a partial YAML file is fine.
type Config struct {
	// DataDir is the directory holding the edge-list files.
	DataDir string `yaml:"data_dir" validate:"required"`

	// Backends selects which implementations to measure, in registry
	// order. Empty means all of them.
	Backends []string `yaml:"backends" validate:"omitempty,dive,oneof=gonum louvain storage"`

	// Resolution is the modularity resolution parameter.
	Resolution float64 `yaml:"resolution" validate:"gt=0"`

	// Seed feeds the seeded random source where a backend uses one.
	Seed uint64 `yaml:"seed"`

	// MinQualityGain stops level iteration once improvement falls below it.
	MinQualityGain float64 `yaml:"min_quality_gain" validate:"gt=0"`

	// MaxLevels bounds the number of aggregation levels.
	MaxLevels int `yaml:"max_levels" validate:"min=1"`

	// Metrics enables Prometheus instrumentation of the sweep.
	Metrics bool `yaml:"metrics"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		DataDir:        "data",
		Resolution:     1.0,
		Seed:           1,
		MinQualityGain: 1e-7,
		MaxLevels:      64,
		Metrics:        true,
	}
}

// Load reads a YAML config file, fills unset fields from Default, and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults restores defaults for fields an explicit YAML zero or null
// would otherwise leave unusable.
func (c *Config) applyDefaults() {
	d := Default()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.Resolution == 0 {
		c.Resolution = d.Resolution
	}
	if c.MinQualityGain == 0 {
		c.MinQualityGain = d.MinQualityGain
	}
	if c.MaxLevels == 0 {
		c.MaxLevels = d.MaxLevels
	}
}

// Validate checks the config using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}
	return err
}
