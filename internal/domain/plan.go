package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// WeekRangeError reports a week index outside [1, Weeks]. Asking for a week
// a plan does not have is a caller bug, so it fails loudly instead of
// clamping.
type WeekRangeError struct {
	Week  int
	Weeks int
}

func (e *WeekRangeError) Error() string {
	return fmt.Sprintf("week number must be 1-%d, got %d", e.Weeks, e.Week)
}

// WeekPlan is one week's worth of dishes: an ordered list of dish IDs with
// no day-of-week structure.
type WeekPlan struct {
	Dishes []string `json:"dishes,omitempty"`
}

// WithDish returns a copy with the dish appended. Appending a dish already
// in the week is a no-op.
func (w WeekPlan) WithDish(dishID string) WeekPlan {
	for _, id := range w.Dishes {
		if id == dishID {
			return w
		}
	}
	out := WeekPlan{Dishes: make([]string, 0, len(w.Dishes)+1)}
	out.Dishes = append(append(out.Dishes, w.Dishes...), dishID)
	return out
}

// WithoutDish returns a copy with the dish removed.
func (w WeekPlan) WithoutDish(dishID string) WeekPlan {
	out := WeekPlan{Dishes: make([]string, 0, len(w.Dishes))}
	for _, id := range w.Dishes {
		if id != dishID {
			out.Dishes = append(out.Dishes, id)
		}
	}
	return out
}

// DishCount is the number of dishes scheduled this week.
func (w WeekPlan) DishCount() int { return len(w.Dishes) }

// Plan is a complete meal plan: a fixed number of weeks, each holding an
// ordered dish list. Weeks are 1-indexed at the API surface.
type Plan struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Weeks []WeekPlan `json:"weeks"`
}

// NewPlanID generates an opaque plan identifier.
func NewPlanID() string {
	return "PLAN-" + uuid.NewString()[:8]
}

// NewPlan creates a plan with the given number of empty weeks.
func NewPlan(name string, weeks int) Plan {
	if weeks < 0 {
		weeks = 0
	}
	return Plan{
		ID:    NewPlanID(),
		Name:  name,
		Weeks: make([]WeekPlan, weeks),
	}
}

// NumWeeks is the number of weeks in the plan.
func (p Plan) NumWeeks() int { return len(p.Weeks) }

// TotalDishes is the number of filled dish slots across all weeks.
func (p Plan) TotalDishes() int {
	total := 0
	for _, w := range p.Weeks {
		total += w.DishCount()
	}
	return total
}

// AllDishIDs flattens every week's dishes in order, preserving duplicates.
func (p Plan) AllDishIDs() []string {
	out := make([]string, 0, p.TotalDishes())
	for _, w := range p.Weeks {
		out = append(out, w.Dishes...)
	}
	return out
}

// Week returns the 1-indexed week.
func (p Plan) Week(n int) (WeekPlan, error) {
	if n < 1 || n > len(p.Weeks) {
		return WeekPlan{}, &WeekRangeError{Week: n, Weeks: len(p.Weeks)}
	}
	return p.Weeks[n-1], nil
}

// WithWeek returns a copy with the 1-indexed week replaced.
func (p Plan) WithWeek(n int, week WeekPlan) (Plan, error) {
	if n < 1 || n > len(p.Weeks) {
		return Plan{}, &WeekRangeError{Week: n, Weeks: len(p.Weeks)}
	}
	out := p
	out.Weeks = append([]WeekPlan{}, p.Weeks...)
	out.Weeks[n-1] = week
	return out, nil
}
