package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/domain"
)

func TestShoppingService_ForPlan(t *testing.T) {
	svc := newTestServices()
	plan := generatedPlan(t, svc)

	list, err := svc.shopping.ForPlan(plan.ID)
	require.NoError(t, err)

	// The fixture covers grains, fermented, fresh_herbs, seeds, dairy,
	// legumes, and alliums across its four dishes.
	assert.Contains(t, list.Bulk, domain.CategoryGrains)
	assert.Contains(t, list.Bulk, domain.CategoryLegumes)
	assert.Contains(t, list.Weekly, domain.CategoryFermented)
	assert.Contains(t, list.Weekly, domain.CategoryDairy)
	assert.Len(t, list.All(), 7)
}

func TestShoppingService_ForWeek(t *testing.T) {
	svc := newTestServices()
	plan := generatedPlan(t, svc)

	list, err := svc.shopping.ForWeek(plan.ID, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, list.All())

	_, err = svc.shopping.ForWeek(plan.ID, 5)
	var rangeErr *domain.WeekRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestShoppingService_UnknownPlan(t *testing.T) {
	svc := newTestServices()

	_, err := svc.shopping.ForPlan("PLAN-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.shopping.ForWeek("PLAN-missing", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
