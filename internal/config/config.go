// Package config loads the optional TOML settings file. It holds the
// tunables the games share: scoring parameters, clock durations, and
// the tolerance constants for pi-based geometry answers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/game"
)

// Config is the resolved application configuration.
type Config struct {
	Scoring   ScoringConfig   `toml:"scoring"`
	Tolerance ToleranceConfig `toml:"tolerance"`
}

// ScoringConfig maps the scoring formula parameters.
type ScoringConfig struct {
	BasePoints          int `toml:"base-points"`
	CapMultiplier       int `toml:"cap-multiplier"`
	MilestoneEvery      int `toml:"milestone-every"`
	DoubleWindowSeconds int `toml:"double-window-seconds"`
}

// ToleranceConfig maps the decimal-answer tolerance knobs. The source
// games hardcoded a different constant per game; here they are
// explicit settings with one default.
type ToleranceConfig struct {
	CirclePct    float64 `toml:"circle-pct"`
	DecimalFloor float64 `toml:"decimal-floor"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := game.DefaultScoring()
	g := challenge.DefaultConfig()
	return Config{
		Scoring: ScoringConfig{
			BasePoints:          s.BasePoints,
			CapMultiplier:       s.CapMultiplier,
			MilestoneEvery:      s.MilestoneEvery,
			DoubleWindowSeconds: s.DoubleWindowSeconds,
		},
		Tolerance: ToleranceConfig{
			CirclePct:    g.CircleTolerancePct,
			DecimalFloor: g.MinDecimalTolerance,
		},
	}
}

// Load reads the TOML config at path, filling unset or invalid fields
// from the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	cfg.clamp()
	return cfg, nil
}

// clamp replaces nonsense values with the defaults.
func (c *Config) clamp() {
	d := Default()
	if c.Scoring.BasePoints <= 0 {
		c.Scoring.BasePoints = d.Scoring.BasePoints
	}
	if c.Scoring.CapMultiplier <= 0 {
		c.Scoring.CapMultiplier = d.Scoring.CapMultiplier
	}
	if c.Scoring.MilestoneEvery <= 0 {
		c.Scoring.MilestoneEvery = d.Scoring.MilestoneEvery
	}
	if c.Scoring.DoubleWindowSeconds < 0 {
		c.Scoring.DoubleWindowSeconds = d.Scoring.DoubleWindowSeconds
	}
	if c.Tolerance.CirclePct <= 0 || c.Tolerance.CirclePct > 0.5 {
		c.Tolerance.CirclePct = d.Tolerance.CirclePct
	}
	if c.Tolerance.DecimalFloor < 0 {
		c.Tolerance.DecimalFloor = d.Tolerance.DecimalFloor
	}
}

// GameScoring converts to the session machine's scoring parameters.
func (c Config) GameScoring() game.Scoring {
	return game.Scoring{
		BasePoints:          c.Scoring.BasePoints,
		CapMultiplier:       c.Scoring.CapMultiplier,
		MilestoneEvery:      c.Scoring.MilestoneEvery,
		DoubleWindowSeconds: c.Scoring.DoubleWindowSeconds,
	}
}

// GeneratorConfig converts to the challenge generator's config.
func (c Config) GeneratorConfig() challenge.Config {
	return challenge.Config{
		CircleTolerancePct:  c.Tolerance.CirclePct,
		MinDecimalTolerance: c.Tolerance.DecimalFloor,
	}
}

// DefaultPath returns the TOML config path under XDG config home.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "matharcade", "config.toml")
}
