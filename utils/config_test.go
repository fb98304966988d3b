package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if config != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", config)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "height": 8, "random_density": 0.5, "seed": 99}`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if config.Width != 12 || config.Height != 8 {
		t.Fatalf("expected 8x12 grid, got %dx%d", config.Height, config.Width)
	}
	if config.RandomDensity != 0.5 || config.Seed != 99 {
		t.Fatalf("expected density 0.5 and seed 99, got %v and %d", config.RandomDensity, config.Seed)
	}
	if config.FrameRate != DefaultConfig().FrameRate {
		t.Fatalf("expected default frame rate to survive, got %s", config.FrameRate)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GOL_WIDTH", "33")
	t.Setenv("GOL_FRAME_RATE", "20ms")
	t.Setenv("GOL_INTERACTIVE", "true")

	config, err := LoadConfig(writeConfig(t, `{"width": 12, "height": 8}`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if config.Width != 33 {
		t.Fatalf("expected env width 33, got %d", config.Width)
	}
	if config.Height != 8 {
		t.Fatalf("expected file height 8, got %d", config.Height)
	}
	if config.FrameRate != 20*time.Millisecond || !config.Interactive {
		t.Fatalf("expected 20ms interactive, got %s interactive=%v", config.FrameRate, config.Interactive)
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("GOL_HEIGHT", "tall")
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected env parse error")
	}
}

func TestValidate(t *testing.T) {
	mutations := map[string]func(*Config){
		"negative width":   func(c *Config) { c.Width = -1 },
		"negative height":  func(c *Config) { c.Height = -1 },
		"zero frame rate":  func(c *Config) { c.FrameRate = 0 },
		"density too high": func(c *Config) { c.RandomDensity = 1.5 },
		"negative count":   func(c *Config) { c.InjectionCount = -3 },
	}
	for name, mutate := range mutations {
		config := DefaultConfig()
		mutate(&config)
		if err := config.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	zero := DefaultConfig()
	zero.Width, zero.Height = 0, 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("expected empty grid to be valid, got %v", err)
	}
}
