package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menurota/menurota/internal/adapters/outbound/tui"
	"github.com/menurota/menurota/internal/application"
	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/distribute"
	"github.com/menurota/menurota/internal/domain/shopping"
	"github.com/menurota/menurota/internal/domain/variety"
)

func sampleDishes() []domain.Dish {
	return []domain.Dish{
		{ID: "a", Name: "Bibimbap", Cuisine: domain.CuisineKorean,
			Categories: []domain.Category{domain.CategoryGrains, domain.CategoryFermented}},
		{ID: "b", Name: "Risotto", Cuisine: domain.CuisineItalian,
			Categories: []domain.Category{domain.CategoryGrains, domain.CategoryDairy}},
	}
}

func samplePlan() domain.Plan {
	p := domain.NewPlan("January", 2)
	p.Weeks[0] = domain.WeekPlan{Dishes: []string{"a", "b"}}
	return p
}

func TestRenderPlan(t *testing.T) {
	out := tui.RenderPlan(samplePlan(), sampleDishes())
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Bibimbap")
	assert.Contains(t, out, "korean")
	assert.Contains(t, out, "(empty)")
}

func TestRenderPlan_UnknownDishID(t *testing.T) {
	p := samplePlan()
	p.Weeks[0] = domain.WeekPlan{Dishes: []string{"gone"}}
	out := tui.RenderPlan(p, sampleDishes())
	assert.Contains(t, out, "? gone")
}

func TestRenderDistribution_CleanRun(t *testing.T) {
	out := tui.RenderDistribution(distribute.Result{}, sampleDishes())
	assert.Contains(t, out, "placed exactly once")
}

func TestRenderDistribution_Diagnostics(t *testing.T) {
	result := distribute.Result{Discarded: []string{"a"}, Reused: []string{"b"}}
	out := tui.RenderDistribution(result, sampleDishes())
	assert.Contains(t, out, "Not placed:")
	assert.Contains(t, out, "Bibimbap")
	assert.Contains(t, out, "Reused across weeks:")
	assert.Contains(t, out, "Risotto")
}

func TestRenderReport(t *testing.T) {
	report := variety.Report{
		CuisineDistribution: map[domain.Cuisine]int{domain.CuisineKorean: 1, domain.CuisineItalian: 1},
		RegionDistribution: map[domain.Region]int{
			domain.RegionEastern: 1, domain.RegionWestern: 1,
		},
		CategoryDistribution: map[domain.Category]int{domain.CategoryGrains: 2},
		RepeatedDishes:       map[string]int{"a": 3},
		UniqueDishCount:      2,
		TotalDishCount:       2,
		VarietyScore:         85,
	}

	out := tui.RenderReport(report, sampleDishes())
	assert.Contains(t, out, "85 / 100")
	assert.Contains(t, out, "good variety")
	assert.Contains(t, out, "2 scheduled, 2 unique")
	assert.Contains(t, out, "korean")
	assert.Contains(t, out, "grains")
	assert.Contains(t, out, "Bibimbap ×3")
}

func TestRenderSuggestions(t *testing.T) {
	assert.Contains(t, tui.RenderSuggestions(nil), "well balanced")

	out := tui.RenderSuggestions([]string{"Add more cuisines."})
	assert.Contains(t, out, "Suggestions")
	assert.Contains(t, out, "Add more cuisines.")
}

func TestRenderShoppingList(t *testing.T) {
	list := shopping.List{
		Bulk:   []domain.Category{domain.CategoryGrains},
		Weekly: []domain.Category{domain.CategoryGreens},
	}
	out := tui.RenderShoppingList(list)
	assert.Contains(t, out, "Bulk (monthly)")
	assert.Contains(t, out, "grains")
	assert.Contains(t, out, "Weekly (fresh)")
	assert.Contains(t, out, "greens")

	empty := tui.RenderShoppingList(shopping.List{})
	assert.Contains(t, empty, "(nothing)")
}

func TestRenderDishes(t *testing.T) {
	sl := domain.Shortlist{}.Add("a")
	out := tui.RenderDishes(sampleDishes(), sl)
	assert.Contains(t, out, "Bibimbap")
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "grains, fermented")

	assert.Contains(t, tui.RenderDishes(nil, domain.Shortlist{}), "Catalogue is empty")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No score history yet")

	entries := []application.ScoreEntry{
		{Timestamp: "2026-08-01T10:00:00Z", PlanID: "PLAN-1", PlanName: "January", Score: 82},
	}
	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "Score history")
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "82")
}
