package domain

// Shortlist is the user's standing selection of dish IDs to plan with.
// It behaves as a set but keeps insertion order so plan generation is
// reproducible. All operations are total and return new values.
type Shortlist struct {
	DishIDs []string `json:"dish_ids,omitempty"`
}

// Add returns a copy with the dish added; adding a present dish is a no-op.
func (s Shortlist) Add(dishID string) Shortlist {
	if s.Contains(dishID) {
		return s
	}
	out := Shortlist{DishIDs: make([]string, 0, len(s.DishIDs)+1)}
	out.DishIDs = append(append(out.DishIDs, s.DishIDs...), dishID)
	return out
}

// Remove returns a copy with the dish removed; removing an absent dish is a
// no-op.
func (s Shortlist) Remove(dishID string) Shortlist {
	out := Shortlist{DishIDs: make([]string, 0, len(s.DishIDs))}
	for _, id := range s.DishIDs {
		if id != dishID {
			out.DishIDs = append(out.DishIDs, id)
		}
	}
	return out
}

// Clear returns an empty shortlist.
func (s Shortlist) Clear() Shortlist { return Shortlist{} }

// Contains reports whether the dish is shortlisted.
func (s Shortlist) Contains(dishID string) bool {
	for _, id := range s.DishIDs {
		if id == dishID {
			return true
		}
	}
	return false
}

// Len is the number of shortlisted dishes.
func (s Shortlist) Len() int { return len(s.DishIDs) }
