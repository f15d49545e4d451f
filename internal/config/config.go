// Package config provides the puzzle's tunables with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 700
	defaultRingCount    = 5

	// defaultRotationSpeed divides horizontal pointer travel in pixels to
	// produce radians; larger values make rotation less sensitive.
	defaultRotationSpeed = 50

	// Toolbar geometry, above the board.
	ToolbarHeight = 60
	ButtonWidth   = 120
	ButtonHeight  = 40
	ButtonX       = 20
	ButtonY       = 10
)

// Config holds the application configuration.
type Config struct {
	WindowWidth   int
	WindowHeight  int
	RingCount     int
	RotationSpeed float64
	Sound         bool
}

// Load builds a Config from defaults and CIRCLE_PUZZLE_* environment
// variables.
func Load() (*Config, error) {
	cfg := &Config{
		WindowWidth:   getEnvInt("CIRCLE_PUZZLE_WIDTH", defaultWindowWidth),
		WindowHeight:  getEnvInt("CIRCLE_PUZZLE_HEIGHT", defaultWindowHeight),
		RingCount:     getEnvInt("CIRCLE_PUZZLE_RINGS", defaultRingCount),
		RotationSpeed: getEnvFloat("CIRCLE_PUZZLE_ROTATION_SPEED", defaultRotationSpeed),
		Sound:         getEnv("CIRCLE_PUZZLE_SOUND", "1") != "0",
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.RingCount < 1 {
		return fmt.Errorf("ring count must be at least 1, got %d", c.RingCount)
	}
	if c.WindowWidth < 1 || c.WindowHeight <= ToolbarHeight {
		return fmt.Errorf("window %dx%d leaves no room for the board", c.WindowWidth, c.WindowHeight)
	}
	if c.RotationSpeed <= 0 {
		return fmt.Errorf("rotation speed must be positive, got %v", c.RotationSpeed)
	}
	return nil
}

// BoardSize returns the pixel dimensions of the puzzle board below the
// toolbar.
func (c *Config) BoardSize() (int, int) {
	return c.WindowWidth, c.WindowHeight - ToolbarHeight
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
