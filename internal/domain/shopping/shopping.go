// Package shopping derives shopping lists from a plan. In the dishes-only
// model there is no ingredient table; the list is built from the food
// categories of the scheduled dishes, split by how each category is bought
// (bulk monthly vs fresh weekly).
package shopping

import (
	"sort"

	"github.com/menurota/menurota/internal/domain"
)

// List is a shopping list split by purchase cadence. Both sections are
// de-duplicated and name-sorted.
type List struct {
	Bulk   []domain.Category `json:"bulk"`
	Weekly []domain.Category `json:"weekly"`
}

// All returns the combined sections, bulk first.
func (l List) All() []domain.Category {
	out := make([]domain.Category, 0, len(l.Bulk)+len(l.Weekly))
	out = append(out, l.Bulk...)
	return append(out, l.Weekly...)
}

// ForWeek builds the list for one 1-indexed week of the plan. Dish IDs that
// no longer resolve against the catalogue are skipped.
func ForWeek(plan domain.Plan, weekNum int, dishes []domain.Dish) (List, error) {
	week, err := plan.Week(weekNum)
	if err != nil {
		return List{}, err
	}
	return fromDishIDs(week.Dishes, dishes), nil
}

// ForPlan builds one combined list for the whole plan, useful for bulk
// purchasing at the start of the month.
func ForPlan(plan domain.Plan, dishes []domain.Dish) List {
	return fromDishIDs(plan.AllDishIDs(), dishes)
}

func fromDishIDs(ids []string, dishes []domain.Dish) List {
	byID := make(map[string]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	seen := make(map[domain.Category]bool)
	var bulk, weekly []domain.Category
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			continue
		}
		for _, c := range d.Categories {
			if seen[c] {
				continue
			}
			seen[c] = true
			if domain.CategoryPurchaseType[c] == domain.PurchaseBulk {
				bulk = append(bulk, c)
			} else {
				weekly = append(weekly, c)
			}
		}
	}

	sort.Slice(bulk, func(i, j int) bool { return bulk[i] < bulk[j] })
	sort.Slice(weekly, func(i, j int) bool { return weekly[i] < weekly[j] })
	return List{Bulk: bulk, Weekly: weekly}
}
