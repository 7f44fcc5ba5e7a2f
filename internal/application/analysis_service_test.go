package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/distribute"
)

func generatedPlan(t *testing.T, svc *testServices) domain.Plan {
	t.Helper()
	shortlistFixture(t, svc)
	params := distribute.Params{Weeks: 1, PerWeek: 4, EasternPerWeek: 2, WesternPerWeek: 2}
	plan, _, err := svc.planning.Generate("July", params, domain.DefaultConfig().Scoring)
	require.NoError(t, err)
	return plan
}

func TestAnalysisService_Assess(t *testing.T) {
	svc := newTestServices()
	plan := generatedPlan(t, svc)

	report, err := svc.analysis.Assess(plan.ID, domain.DefaultConfig().Variety)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalDishCount)
	assert.Equal(t, 4, report.UniqueDishCount)
	assert.Equal(t, 2, report.RegionDistribution[domain.RegionEastern])
	assert.Equal(t, 2, report.RegionDistribution[domain.RegionWestern])
	assert.Greater(t, report.VarietyScore, 70, "an all-unique balanced week scores well")
}

func TestAnalysisService_AssessUnknownPlan(t *testing.T) {
	svc := newTestServices()
	_, err := svc.analysis.Assess("PLAN-missing", domain.DefaultConfig().Variety)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisService_AssessRecordsHistory(t *testing.T) {
	svc := newTestServices()
	plan := generatedPlan(t, svc)
	weights := domain.DefaultConfig().Variety

	_, err := svc.analysis.Assess(plan.ID, weights)
	require.NoError(t, err)
	report, err := svc.analysis.Assess(plan.ID, weights)
	require.NoError(t, err)

	entries, err := svc.analysis.History()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, plan.ID, e.PlanID)
		assert.Equal(t, "July", e.PlanName)
		assert.Equal(t, report.VarietyScore, e.Score)
		_, err := time.Parse(time.RFC3339, e.Timestamp)
		assert.NoError(t, err)
	}
}

func TestAnalysisService_HistoryEmpty(t *testing.T) {
	svc := newTestServices()
	entries, err := svc.analysis.History()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAnalysisService_Suggest(t *testing.T) {
	svc := newTestServices()
	plan := generatedPlan(t, svc)

	// Collapse the plan to a single dish so the cuisine rule fires.
	id := plan.AllDishIDs()[0]
	_, err := svc.planning.SetWeek(plan.ID, 1, domain.WeekPlan{Dishes: []string{id}})
	require.NoError(t, err)

	report, suggestions, err := svc.analysis.Suggest(plan.ID, domain.DefaultConfig().Variety)
	require.NoError(t, err)
	assert.Len(t, report.CuisineDistribution, 1)
	assert.Contains(t, suggestions, "Only 1 cuisine(s) used. Consider adding more variety.")
}
