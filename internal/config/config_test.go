package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultWindowWidth, cfg.WindowWidth)
	assert.Equal(t, defaultWindowHeight, cfg.WindowHeight)
	assert.Equal(t, defaultRingCount, cfg.RingCount)
	assert.Equal(t, float64(defaultRotationSpeed), cfg.RotationSpeed)
	assert.True(t, cfg.Sound)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CIRCLE_PUZZLE_WIDTH", "800")
	t.Setenv("CIRCLE_PUZZLE_HEIGHT", "900")
	t.Setenv("CIRCLE_PUZZLE_RINGS", "7")
	t.Setenv("CIRCLE_PUZZLE_ROTATION_SPEED", "25.5")
	t.Setenv("CIRCLE_PUZZLE_SOUND", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 900, cfg.WindowHeight)
	assert.Equal(t, 7, cfg.RingCount)
	assert.Equal(t, 25.5, cfg.RotationSpeed)
	assert.False(t, cfg.Sound)
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	t.Setenv("CIRCLE_PUZZLE_RINGS", "many")
	t.Setenv("CIRCLE_PUZZLE_ROTATION_SPEED", "fast")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultRingCount, cfg.RingCount)
	assert.Equal(t, float64(defaultRotationSpeed), cfg.RotationSpeed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero rings", mutate: func(c *Config) { c.RingCount = 0 }, wantErr: true},
		{name: "negative rings", mutate: func(c *Config) { c.RingCount = -1 }, wantErr: true},
		{name: "window height only fits the toolbar", mutate: func(c *Config) { c.WindowHeight = ToolbarHeight }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.WindowWidth = 0 }, wantErr: true},
		{name: "zero rotation speed", mutate: func(c *Config) { c.RotationSpeed = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				WindowWidth:   defaultWindowWidth,
				WindowHeight:  defaultWindowHeight,
				RingCount:     defaultRingCount,
				RotationSpeed: defaultRotationSpeed,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBoardSize(t *testing.T) {
	cfg := &Config{WindowWidth: 640, WindowHeight: 700}
	w, h := cfg.BoardSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 700-ToolbarHeight, h)
}
