package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[scoring]
base-points = 25
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Scoring.BasePoints)
	require.Equal(t, Default().Scoring.CapMultiplier, cfg.Scoring.CapMultiplier)
	require.Equal(t, Default().Tolerance.CirclePct, cfg.Tolerance.CirclePct)
}

func TestLoad_ClampsNonsenseValues(t *testing.T) {
	path := writeConfig(t, `
[scoring]
base-points = -5
milestone-every = 0

[tolerance]
circle-pct = 0.9
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().Scoring.BasePoints, cfg.Scoring.BasePoints)
	require.Equal(t, Default().Scoring.MilestoneEvery, cfg.Scoring.MilestoneEvery)
	require.Equal(t, Default().Tolerance.CirclePct, cfg.Tolerance.CirclePct)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "this is not toml [[[")
	cfg, err := Load(path)
	require.Error(t, err)
	require.Equal(t, Default(), cfg)
}

func TestConversions(t *testing.T) {
	cfg := Default()
	require.Equal(t, cfg.Scoring.BasePoints, cfg.GameScoring().BasePoints)
	require.Equal(t, cfg.Tolerance.CirclePct, cfg.GeneratorConfig().CircleTolerancePct)
}
