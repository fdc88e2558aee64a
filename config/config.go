// Package config loads lucky-lotto settings from YAML with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lucky-lotto/audio"
	"github.com/lixenwraith/lucky-lotto/constants"
	"github.com/lixenwraith/lucky-lotto/engine"
)

// Config is the full program configuration
type Config struct {
	Draw      DrawConfig      `yaml:"draw"`
	Animation AnimationConfig `yaml:"animation"`
	Layout    LayoutConfig    `yaml:"layout"`
	Audio     AudioConfig     `yaml:"audio"`
}

type DrawConfig struct {
	Count int `yaml:"count"`
	Pool  int `yaml:"pool"`
}

type AnimationConfig struct {
	Tick    time.Duration `yaml:"tick"`
	Speed   int           `yaml:"speed"`
	Stagger time.Duration `yaml:"stagger"`
}

type LayoutConfig struct {
	Gap int `yaml:"gap"`
}

type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MasterVolume  float64 `yaml:"master_volume"`
	LandingVolume float64 `yaml:"landing_volume"`
	LandingSample string  `yaml:"landing_sample"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Draw: DrawConfig{
			Count: constants.BallsToPick,
			Pool:  constants.TotalBalls,
		},
		Animation: AnimationConfig{
			Tick:    constants.AnimationTickInterval,
			Speed:   constants.DropSpeed,
			Stagger: constants.StaggerDelay,
		},
		Layout: LayoutConfig{
			Gap: constants.CellGap,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MasterVolume:  0.8,
			LandingVolume: 1.0,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from LUCKY_LOTTO_* variables, unparsable values are ignored
func applyEnv(cfg *Config) {
	if v := os.Getenv("LUCKY_LOTTO_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v := os.Getenv("LUCKY_LOTTO_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v := os.Getenv("LUCKY_LOTTO_DRAW_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Draw.Count = n
		}
	}

	if v := os.Getenv("LUCKY_LOTTO_DRAW_POOL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Draw.Pool = n
		}
	}
}

// Validate checks ranges
func (c *Config) Validate() error {
	switch {
	case c.Draw.Count < 1:
		return fmt.Errorf("draw.count must be at least 1, got %d", c.Draw.Count)
	case c.Draw.Pool < c.Draw.Count:
		return fmt.Errorf("draw.pool (%d) must be at least draw.count (%d)", c.Draw.Pool, c.Draw.Count)
	case c.Draw.Pool > constants.MaxPool:
		return fmt.Errorf("draw.pool must be at most %d, got %d", constants.MaxPool, c.Draw.Pool)
	case c.Animation.Tick <= 0:
		return fmt.Errorf("animation.tick must be positive, got %s", c.Animation.Tick)
	case c.Animation.Speed < 1:
		return fmt.Errorf("animation.speed must be at least 1, got %d", c.Animation.Speed)
	case c.Animation.Stagger < 0:
		return fmt.Errorf("animation.stagger must not be negative, got %s", c.Animation.Stagger)
	case c.Layout.Gap < 0:
		return fmt.Errorf("layout.gap must not be negative, got %d", c.Layout.Gap)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("audio.master_volume must be in [0,1], got %g", c.Audio.MasterVolume)
	case c.Audio.LandingVolume < 0 || c.Audio.LandingVolume > 1:
		return fmt.Errorf("audio.landing_volume must be in [0,1], got %g", c.Audio.LandingVolume)
	}
	return nil
}

// Board returns the board parameters
func (c *Config) Board() engine.BoardConfig {
	return engine.BoardConfig{
		Count:   c.Draw.Count,
		Pool:    c.Draw.Pool,
		Speed:   c.Animation.Speed,
		Gap:     c.Layout.Gap,
		Stagger: c.Animation.Stagger,
	}
}

// Sound returns the audio parameters
func (c *Config) Sound() audio.Config {
	return audio.Config{
		Enabled:       c.Audio.Enabled,
		MasterVolume:  c.Audio.MasterVolume,
		LandingVolume: c.Audio.LandingVolume,
		LandingSample: c.Audio.LandingSample,
	}
}
