package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/adapters/outbound/config"
	"github.com/menurota/menurota/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".menurota.yaml"), []byte(content), 0644))
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_PartialOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "user: alice\nplan:\n  weeks: 6\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, 6, cfg.Plan.Weeks)
	assert.Equal(t, 4, cfg.Plan.PerWeek, "untouched knobs keep their defaults")
	assert.Equal(t, 0.5, cfg.Scoring.CuisineBonus)
}

func TestLoad_VarietyWeightsReplaceAsAGroup(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "variety:\n  uniqueness: 50\n  cuisine_variety: 25\n  region_balance: 25\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.VarietyWeights{Uniqueness: 50, CuisineVariety: 25, RegionBalance: 25}, cfg.Variety)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "plan: [not a mapping\n")

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidWeightsRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "variety:\n  uniqueness: 90\n  cuisine_variety: 30\n  region_balance: 30\n")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 100")
}

func TestLoad_ScoringOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scoring:\n  cuisine_bonus: 1.5\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Scoring.CuisineBonus)
	assert.Equal(t, 1.0, cfg.Scoring.RecencyPenalty)
}
