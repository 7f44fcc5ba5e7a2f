package shopping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/shopping"
)

func fixtures() ([]domain.Dish, domain.Plan) {
	dishes := []domain.Dish{
		{ID: "a", Name: "Dal", Cuisine: domain.CuisineIndian,
			Categories: []domain.Category{domain.CategoryLegumes, domain.CategoryAlliums}},
		{ID: "b", Name: "Risotto", Cuisine: domain.CuisineItalian,
			Categories: []domain.Category{domain.CategoryGrains, domain.CategoryDairy}},
		{ID: "c", Name: "Kimchi Fried Rice", Cuisine: domain.CuisineKorean,
			Categories: []domain.Category{domain.CategoryGrains, domain.CategoryFermented}},
	}
	plan := domain.NewPlan("test", 2)
	plan.Weeks[0] = domain.WeekPlan{Dishes: []string{"a", "b"}}
	plan.Weeks[1] = domain.WeekPlan{Dishes: []string{"c"}}
	return dishes, plan
}

func TestForWeek(t *testing.T) {
	dishes, plan := fixtures()

	list, err := shopping.ForWeek(plan, 1, dishes)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{domain.CategoryGrains, domain.CategoryLegumes}, list.Bulk)
	assert.Equal(t, []domain.Category{domain.CategoryAlliums, domain.CategoryDairy}, list.Weekly)
}

func TestForWeek_OutOfRange(t *testing.T) {
	dishes, plan := fixtures()

	_, err := shopping.ForWeek(plan, 0, dishes)
	var rangeErr *domain.WeekRangeError
	assert.ErrorAs(t, err, &rangeErr)

	_, err = shopping.ForWeek(plan, 3, dishes)
	assert.ErrorAs(t, err, &rangeErr)
}

func TestForPlan_DeduplicatesAcrossWeeks(t *testing.T) {
	dishes, plan := fixtures()

	list := shopping.ForPlan(plan, dishes)
	assert.Equal(t, []domain.Category{domain.CategoryGrains, domain.CategoryLegumes}, list.Bulk,
		"grains appears once despite two grain dishes")
	assert.Equal(t, []domain.Category{domain.CategoryAlliums, domain.CategoryDairy, domain.CategoryFermented}, list.Weekly)
}

func TestForPlan_SkipsStaleDishIDs(t *testing.T) {
	dishes, plan := fixtures()
	plan.Weeks[1] = domain.WeekPlan{Dishes: []string{"c", "deleted"}}

	list := shopping.ForPlan(plan, dishes)
	assert.Len(t, list.All(), 5)
}

func TestList_All(t *testing.T) {
	list := shopping.List{
		Bulk:   []domain.Category{domain.CategoryGrains},
		Weekly: []domain.Category{domain.CategoryGreens},
	}
	assert.Equal(t, []domain.Category{domain.CategoryGrains, domain.CategoryGreens}, list.All())
}
