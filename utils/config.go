package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const envPrefix = "GOL_"

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" env:"WIDTH"`
	Height              int           `json:"height" env:"HEIGHT"`
	FrameRate           time.Duration `json:"frame_rate" env:"FRAME_RATE"`
	AutoRestart         bool          `json:"auto_restart" env:"AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"STAGNATION_THRESHOLD"`
	UseMemoryPool       bool          `json:"use_memory_pool" env:"USE_MEMORY_POOL"`
	MaxGenerations      int           `json:"max_generations" env:"MAX_GENERATIONS"`
	RandomDensity       float64       `json:"random_density" env:"RANDOM_DENSITY"`
	InjectionCount      int           `json:"injection_count" env:"INJECTION_COUNT"`
	Interactive         bool          `json:"interactive" env:"INTERACTIVE"`
	Seed                int64         `json:"seed" env:"SEED"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.2,
		InjectionCount:      3,
		Interactive:         false,
	}
}

// LoadConfig loads configuration from a JSON file, then applies GOL_* environment overrides.
// An empty filename skips the file.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}

		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err := ApplyEnv(&config); err != nil {
		return config, err
	}

	return config, config.Validate()
}

// ApplyEnv overrides fields of config from GOL_* environment variables.
// Fields without a matching variable keep their value.
func ApplyEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate rejects configurations the game loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] grid dimensions must be non-negative, got %dx%d", c.Height, c.Width)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame rate must be positive, got %s", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.New("[Validate] thresholds and counts must be non-negative")
	}
	return nil
}
