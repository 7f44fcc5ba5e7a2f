package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "default", cfg.User)
	assert.Equal(t, 4, cfg.Plan.Weeks)
	assert.Equal(t, 4, cfg.Plan.PerWeek)
	assert.Equal(t, 2, cfg.Plan.EasternPerWeek)
	assert.Equal(t, 2, cfg.Plan.WesternPerWeek)
	assert.Equal(t, 0.5, cfg.Scoring.CuisineBonus)
	assert.Equal(t, 1.0, cfg.Scoring.RecencyPenalty)
	assert.Equal(t, 100.0, cfg.Variety.Uniqueness+cfg.Variety.CuisineVariety+cfg.Variety.RegionBalance)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Scoring.CuisineBonus = -1
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.Scoring.RecencyPenalty = -0.5
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.Variety.Uniqueness = 50
	assert.Error(t, cfg.Validate(), "weights no longer sum to 100")

	cfg = domain.DefaultConfig()
	cfg.Variety = domain.VarietyWeights{}
	assert.NoError(t, cfg.Validate(), "all-zero weights mean use defaults")
}
