package application

import (
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/domain/shopping"
)

// ShoppingService derives shopping lists from stored plans.
type ShoppingService struct {
	catalogue *CatalogueService
	planning  *PlanningService
	log       zerolog.Logger
}

func NewShoppingService(catalogue *CatalogueService, planning *PlanningService, log zerolog.Logger) *ShoppingService {
	return &ShoppingService{catalogue: catalogue, planning: planning, log: log}
}

// ForWeek builds the list for one 1-indexed week of a stored plan.
func (s *ShoppingService) ForWeek(planID string, weekNum int) (shopping.List, error) {
	plan, err := s.planning.Get(planID)
	if err != nil {
		return shopping.List{}, err
	}
	dishes, err := s.catalogue.List()
	if err != nil {
		return shopping.List{}, err
	}
	return shopping.ForWeek(plan, weekNum, dishes)
}

// ForPlan builds one combined list for the whole plan.
func (s *ShoppingService) ForPlan(planID string) (shopping.List, error) {
	plan, err := s.planning.Get(planID)
	if err != nil {
		return shopping.List{}, err
	}
	dishes, err := s.catalogue.List()
	if err != nil {
		return shopping.List{}, err
	}
	return shopping.ForPlan(plan, dishes), nil
}
