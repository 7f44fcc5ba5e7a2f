// Package variety scores how varied a finished plan is and explains how to
// improve it. The assessment is a pure function of the plan and the dish
// catalogue; stale dish IDs in the plan are skipped, never an error.
package variety

import "github.com/menurota/menurota/internal/domain"

// RepeatThreshold is the occurrence count above which a dish is flagged as
// over-repeated. Twice in a plan is fine; three times gets reported.
const RepeatThreshold = 2

// Report summarizes a plan's dietary spread.
type Report struct {
	CuisineDistribution  map[domain.Cuisine]int  `json:"cuisine_distribution"`
	RegionDistribution   map[domain.Region]int   `json:"region_distribution"`
	CategoryDistribution map[domain.Category]int `json:"category_distribution"`
	RepeatedDishes       map[string]int          `json:"repeated_dishes"`
	UniqueDishCount      int                     `json:"unique_dish_count"`
	TotalDishCount       int                     `json:"total_dish_count"`
	VarietyScore         int                     `json:"variety_score"`
}

// RepetitionRatio is the share of flagged dishes among all scheduled slots.
func (r Report) RepetitionRatio() float64 {
	if r.TotalDishCount == 0 {
		return 0
	}
	return float64(len(r.RepeatedDishes)) / float64(r.TotalDishCount)
}

// Score computes the 0-100 variety score from the tallies.
//
// Three weighted components (40/30/30 by default):
//   - uniqueness: unique dishes over total scheduled slots
//   - cuisine variety: distinct cuisines over all available cuisines
//   - region balance: min(east, west) over max(east, west); an untouched
//     region pair counts as fully balanced
//
// An empty plan scores 100: nothing scheduled is nothing repeated.
func Score(uniqueCount, totalCount int, cuisines map[domain.Cuisine]int, regions map[domain.Region]int, w domain.VarietyWeights) int {
	if totalCount == 0 {
		return 100
	}

	uniqueness := float64(uniqueCount) / float64(totalCount) * w.Uniqueness

	cuisineScore := float64(len(cuisines)) / float64(len(domain.AllCuisines())) * w.CuisineVariety
	if cuisineScore > w.CuisineVariety {
		cuisineScore = w.CuisineVariety
	}

	eastern := regions[domain.RegionEastern]
	western := regions[domain.RegionWestern]
	balanceScore := w.RegionBalance
	if eastern+western > 0 {
		balanceScore = float64(min(eastern, western)) / float64(max(eastern, western)) * w.RegionBalance
	}

	return int(uniqueness + cuisineScore + balanceScore)
}

// Assess tallies the plan against the catalogue and scores it. Dish IDs
// that no longer resolve (the dish was deleted after planning) contribute
// to the repetition counts but not to the distributions.
func Assess(plan domain.Plan, dishes []domain.Dish, w domain.VarietyWeights) Report {
	byID := make(map[string]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	allIDs := plan.AllDishIDs()

	counts := make(map[string]int)
	for _, id := range allIDs {
		counts[id]++
	}

	repeated := make(map[string]int)
	for id, n := range counts {
		if n > RepeatThreshold {
			repeated[id] = n
		}
	}

	cuisines := make(map[domain.Cuisine]int)
	regions := make(map[domain.Region]int)
	categories := make(map[domain.Category]int)
	for _, id := range allIDs {
		d, ok := byID[id]
		if !ok {
			continue
		}
		cuisines[d.Cuisine]++
		regions[d.Region()]++
		for _, c := range d.Categories {
			categories[c]++
		}
	}

	return Report{
		CuisineDistribution:  cuisines,
		RegionDistribution:   regions,
		CategoryDistribution: categories,
		RepeatedDishes:       repeated,
		UniqueDishCount:      len(counts),
		TotalDishCount:       len(allIDs),
		VarietyScore:         Score(len(counts), len(allIDs), cuisines, regions, w),
	}
}
