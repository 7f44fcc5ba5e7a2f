package variety

import (
	"fmt"
	"sort"

	"github.com/menurota/menurota/internal/domain"
)

// Suggest turns a report into human-readable improvement hints. Every rule
// fires independently; none short-circuits another. An empty slice means the
// plan looks fine.
func Suggest(report Report, dishes []domain.Dish) []string {
	byID := make(map[string]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	var suggestions []string

	// Over-repeated dishes, in a stable order for reproducible output.
	repeatedIDs := make([]string, 0, len(report.RepeatedDishes))
	for id := range report.RepeatedDishes {
		repeatedIDs = append(repeatedIDs, id)
	}
	sort.Strings(repeatedIDs)
	for _, id := range repeatedIDs {
		d, ok := byID[id]
		if !ok {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"'%s' appears %d times. Consider reducing to 1-2 times.", d.Name, report.RepeatedDishes[id]))
	}

	eastern := report.RegionDistribution[domain.RegionEastern]
	western := report.RegionDistribution[domain.RegionWestern]
	if eastern > 0 && western > 0 {
		dominant, minor := eastern, western
		label := "Eastern"
		if western > eastern {
			dominant, minor = western, eastern
			label = "Western"
		}
		if float64(dominant)/float64(minor) > 2 {
			suggestions = append(suggestions, fmt.Sprintf(
				"%s dishes are dominant (%d vs %d). Consider balancing regions.", label, dominant, minor))
		}
	}

	if len(report.CuisineDistribution) < 3 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Only %d cuisine(s) used. Consider adding more variety.", len(report.CuisineDistribution)))
	}

	switch {
	case report.VarietyScore < 50:
		suggestions = append(suggestions, "Variety score is low. Try adding more unique dishes.")
	case report.VarietyScore < 70:
		suggestions = append(suggestions, "Good variety, but room for improvement.")
	}

	return suggestions
}
