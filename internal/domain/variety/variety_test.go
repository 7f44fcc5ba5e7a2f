package variety_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/variety"
)

func dish(id string, cuisine domain.Cuisine, categories ...domain.Category) domain.Dish {
	return domain.Dish{ID: id, Name: id, Cuisine: cuisine, Categories: categories}
}

func defaultWeights() domain.VarietyWeights {
	return domain.DefaultConfig().Variety
}

func planOf(weeks ...[]string) domain.Plan {
	p := domain.NewPlan("test", len(weeks))
	for i, week := range weeks {
		p.Weeks[i] = domain.WeekPlan{Dishes: week}
	}
	return p
}

func TestScore_EmptyPlanIsPerfect(t *testing.T) {
	assert.Equal(t, 100, variety.Score(0, 0, nil, nil, defaultWeights()))
}

func TestScore_Bounds(t *testing.T) {
	cuisines := map[domain.Cuisine]int{}
	for _, c := range domain.AllCuisines() {
		cuisines[c] = 1
	}
	regions := map[domain.Region]int{domain.RegionEastern: 6, domain.RegionWestern: 5}

	score := variety.Score(11, 11, cuisines, regions, defaultWeights())
	assert.LessOrEqual(t, score, 100)
	assert.GreaterOrEqual(t, score, 90, "all-unique, all-cuisine, near-balanced plan scores high")
}

func TestScore_SingleRepeatedDish(t *testing.T) {
	// One dish five times: uniqueness 1/5, one cuisine, one region.
	cuisines := map[domain.Cuisine]int{domain.CuisineKorean: 5}
	regions := map[domain.Region]int{domain.RegionEastern: 5}

	score := variety.Score(1, 5, cuisines, regions, defaultWeights())
	// 40*(1/5) + 30*(1/11) + 30*(0/5) = 8 + 2.72 + 0, floored.
	assert.Equal(t, 10, score)
}

func TestScore_UntouchedRegionsCountAsBalanced(t *testing.T) {
	score := variety.Score(2, 2, map[domain.Cuisine]int{domain.CuisineKorean: 2}, nil, defaultWeights())
	// 40 + 30/11 + 30 full balance, floored.
	assert.Equal(t, 72, score)
}

func TestAssess(t *testing.T) {
	dishes := []domain.Dish{
		dish("a", domain.CuisineKorean, domain.CategoryFermented, domain.CategoryGreens),
		dish("b", domain.CuisineItalian, domain.CategoryDairy),
		dish("c", domain.CuisineThai, domain.CategoryFreshHerbs),
	}
	plan := planOf([]string{"a", "b"}, []string{"a", "c"})

	report := variety.Assess(plan, dishes, defaultWeights())

	assert.Equal(t, 3, report.UniqueDishCount)
	assert.Equal(t, 4, report.TotalDishCount)
	assert.Equal(t, map[domain.Cuisine]int{
		domain.CuisineKorean:  2,
		domain.CuisineItalian: 1,
		domain.CuisineThai:    1,
	}, report.CuisineDistribution)
	assert.Equal(t, map[domain.Region]int{
		domain.RegionEastern: 3,
		domain.RegionWestern: 1,
	}, report.RegionDistribution)
	assert.Equal(t, 2, report.CategoryDistribution[domain.CategoryFermented])
	assert.Empty(t, report.RepeatedDishes, "twice in a plan is not over-repetition")
}

func TestAssess_FlagsDishesAboveThreshold(t *testing.T) {
	dishes := []domain.Dish{dish("a", domain.CuisineKorean, domain.CategoryGreens)}
	plan := planOf([]string{"a"}, []string{"a"}, []string{"a"}, []string{"a"}, []string{"a"})

	report := variety.Assess(plan, dishes, defaultWeights())
	assert.Equal(t, map[string]int{"a": 5}, report.RepeatedDishes)
	assert.Equal(t, 1, report.UniqueDishCount)
	assert.Equal(t, 5, report.TotalDishCount)
	assert.InDelta(t, 1.0/5.0, report.RepetitionRatio(), 1e-9)
}

func TestAssess_StaleDishIDsAreSkipped(t *testing.T) {
	dishes := []domain.Dish{dish("a", domain.CuisineKorean, domain.CategoryGreens)}
	plan := planOf([]string{"a", "deleted"})

	report := variety.Assess(plan, dishes, defaultWeights())

	assert.Equal(t, 2, report.TotalDishCount, "stale IDs still count as scheduled slots")
	assert.Equal(t, 2, report.UniqueDishCount)
	require.Len(t, report.CuisineDistribution, 1)
	assert.Equal(t, 1, report.CuisineDistribution[domain.CuisineKorean])
}

func TestAssess_EmptyPlan(t *testing.T) {
	report := variety.Assess(domain.NewPlan("empty", 4), nil, defaultWeights())
	assert.Equal(t, 100, report.VarietyScore)
	assert.Equal(t, 0, report.TotalDishCount)
	assert.Equal(t, 0.0, report.RepetitionRatio())
}
