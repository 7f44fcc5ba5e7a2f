// Package distribute packs a shortlist of dishes into a fixed number of
// weeks. It is a greedy, week-by-week heuristic: each slot takes the dish
// that brings the most new food categories to the week, with a bonus for a
// cuisine the week has not seen and a penalty for dishes cooked the week
// before. It does not backtrack and does not claim optimality; it is linear
// in pool size per slot and produces intuitively varied plans.
package distribute

import "github.com/menurota/menurota/internal/domain"

// Params shapes the plan being generated. Values at or below zero degrade
// gracefully: zero weeks means an empty result, zero per-week means empty
// weeks. If the regional quotas exceed PerWeek the remainder fill simply has
// no slots left.
type Params struct {
	Weeks          int
	PerWeek        int
	EasternPerWeek int
	WesternPerWeek int
}

// DefaultParams is the documented 4 weeks x 4 dishes, 2 Eastern + 2 Western.
func DefaultParams() Params {
	return Params{Weeks: 4, PerWeek: 4, EasternPerWeek: 2, WesternPerWeek: 2}
}

// Result pairs the generated weeks with diagnostics for the caller:
// Discarded holds input dish IDs that were never placed, Reused holds IDs
// placed more than once. Both keep the input's order.
type Result struct {
	Weeks     [][]string
	Discarded []string
	Reused    []string
}

// weekState tracks what one week has accumulated so far.
type weekState struct {
	categories map[domain.Category]bool
	cuisines   map[domain.Cuisine]bool
	inWeek     map[string]bool
	dishIDs    []string
}

func newWeekState() *weekState {
	return &weekState{
		categories: make(map[domain.Category]bool),
		cuisines:   make(map[domain.Cuisine]bool),
		inWeek:     make(map[string]bool),
		dishIDs:    []string{},
	}
}

func (w *weekState) add(d domain.Dish) {
	w.dishIDs = append(w.dishIDs, d.ID)
	w.inWeek[d.ID] = true
	for _, c := range d.Categories {
		w.categories[c] = true
	}
	w.cuisines[d.Cuisine] = true
}

// scoreDish is the per-slot greedy score: one point per category the dish
// would newly bring to the week, plus the cuisine-novelty bonus, minus the
// spacing penalty when the dish was cooked the previous week.
func scoreDish(d domain.Dish, state *weekState, recent map[string]bool, w domain.DistributionWeights) float64 {
	score := 0.0
	for _, c := range d.Categories {
		if !state.categories[c] {
			score++
		}
	}
	if !state.cuisines[d.Cuisine] {
		score += w.CuisineBonus
	}
	if recent[d.ID] {
		score -= w.RecencyPenalty
	}
	return score
}

// pickBest returns the highest-scoring candidate not already in the week.
// Ties go to the earliest candidate, which keeps the algorithm deterministic
// for a given input order. Returns false when every candidate is already
// placed this week or the pool is empty.
func pickBest(pool []domain.Dish, state *weekState, recent map[string]bool, w domain.DistributionWeights) (domain.Dish, bool) {
	var best domain.Dish
	bestScore, found := 0.0, false
	for _, d := range pool {
		if state.inWeek[d.ID] {
			continue
		}
		s := scoreDish(d, state, recent, w)
		if !found || s > bestScore {
			best, bestScore, found = d, s, true
		}
	}
	return best, found
}

// splitByRegion partitions the pool into Eastern and Western lists,
// preserving input order within each.
func splitByRegion(dishes []domain.Dish) (eastern, western []domain.Dish) {
	for _, d := range dishes {
		if d.Region() == domain.RegionEastern {
			eastern = append(eastern, d)
		} else {
			western = append(western, d)
		}
	}
	return eastern, western
}

// Distribute assigns dishes to weeks under the regional quota. Unused dishes
// are always preferred; once a region's (or the whole) unused pool runs dry
// the full pool is offered again so reuse across weeks beats leaving a slot
// empty. A dish never appears twice within the same week, so a week only
// ends short when no eligible dish exists at all.
func Distribute(dishes []domain.Dish, params Params, weights domain.DistributionWeights) Result {
	eastern, western := splitByRegion(dishes)

	usedCount := make(map[string]int)
	recent := make(map[string]bool)

	weeks := make([][]string, 0, max(params.Weeks, 0))

	for range params.Weeks {
		state := newWeekState()

		unused := func(pool []domain.Dish) []domain.Dish {
			out := make([]domain.Dish, 0, len(pool))
			for _, d := range pool {
				if usedCount[d.ID] == 0 {
					out = append(out, d)
				}
			}
			return out
		}

		place := func(pool []domain.Dish) bool {
			candidates := unused(pool)
			if len(candidates) == 0 {
				// Region exhausted: offer the full pool so reuse across
				// weeks beats an empty slot.
				candidates = pool
			}
			best, ok := pickBest(candidates, state, recent, weights)
			if !ok {
				return false
			}
			state.add(best)
			usedCount[best.ID]++
			return true
		}

		for i := 0; i < params.EasternPerWeek; i++ {
			if !place(eastern) {
				break
			}
		}
		for i := 0; i < params.WesternPerWeek; i++ {
			if !place(western) {
				break
			}
		}
		for len(state.dishIDs) < params.PerWeek {
			if !place(dishes) {
				break
			}
		}

		weeks = append(weeks, state.dishIDs)
		recent = state.inWeek
	}

	var discarded, reused []string
	for _, d := range dishes {
		switch {
		case usedCount[d.ID] == 0:
			discarded = append(discarded, d.ID)
		case usedCount[d.ID] > 1:
			reused = append(reused, d.ID)
		}
	}

	return Result{Weeks: weeks, Discarded: discarded, Reused: reused}
}
