package application

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/distribute"
)

const plansBlob = "plans.json"

// PlanningService generates plans from the shortlist and persists them.
type PlanningService struct {
	store     domain.BlobStore
	catalogue *CatalogueService
	shortlist *ShortlistService
	user      string
	log       zerolog.Logger
}

func NewPlanningService(store domain.BlobStore, catalogue *CatalogueService, shortlist *ShortlistService, user string, log zerolog.Logger) *PlanningService {
	return &PlanningService{
		store:     store,
		catalogue: catalogue,
		shortlist: shortlist,
		user:      user,
		log:       log,
	}
}

func (s *PlanningService) key() string { return s.user + "/" + plansBlob }

func (s *PlanningService) load() (map[string]domain.Plan, error) {
	data, err := s.store.Load(s.key())
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}
	plans := make(map[string]domain.Plan)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &plans); err != nil {
			return nil, fmt.Errorf("decoding plans: %w", err)
		}
	}
	return plans, nil
}

func (s *PlanningService) save(plans map[string]domain.Plan) error {
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plans: %w", err)
	}
	if err := s.store.Save(s.key(), data); err != nil {
		return fmt.Errorf("saving plans: %w", err)
	}
	return nil
}

// Generate runs the distribution engine over the current shortlist and
// persists the resulting plan. The shortlist's insertion order is the
// engine's tie-break order, so repeated runs over the same shortlist
// produce the same plan.
func (s *PlanningService) Generate(name string, params distribute.Params, weights domain.DistributionWeights) (domain.Plan, distribute.Result, error) {
	sl, err := s.shortlist.Show()
	if err != nil {
		return domain.Plan{}, distribute.Result{}, err
	}

	// Resolve shortlisted IDs against the catalogue; stale entries are
	// dropped rather than failing the run.
	var candidates []domain.Dish
	for _, id := range sl.DishIDs {
		d, err := s.catalogue.Get(id)
		if err != nil {
			s.log.Warn().Str("dish_id", id).Msg("shortlisted dish missing from catalogue")
			continue
		}
		candidates = append(candidates, d)
	}

	result := distribute.Distribute(candidates, params, weights)

	plan := domain.NewPlan(name, params.Weeks)
	for i, weekDishes := range result.Weeks {
		week := domain.WeekPlan{Dishes: weekDishes}
		plan, err = plan.WithWeek(i+1, week)
		if err != nil {
			return domain.Plan{}, distribute.Result{}, fmt.Errorf("building plan: %w", err)
		}
	}

	plans, err := s.load()
	if err != nil {
		return domain.Plan{}, distribute.Result{}, err
	}
	plans[plan.ID] = plan
	if err := s.save(plans); err != nil {
		return domain.Plan{}, distribute.Result{}, err
	}

	s.log.Info().
		Str("plan_id", plan.ID).
		Int("weeks", plan.NumWeeks()).
		Int("candidates", len(candidates)).
		Int("discarded", len(result.Discarded)).
		Int("reused", len(result.Reused)).
		Msg("generated plan")
	return plan, result, nil
}

// Get returns a plan by ID.
func (s *PlanningService) Get(id string) (domain.Plan, error) {
	plans, err := s.load()
	if err != nil {
		return domain.Plan{}, err
	}
	p, ok := plans[id]
	if !ok {
		return domain.Plan{}, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// List returns all plans, name-sorted.
func (s *PlanningService) List() ([]domain.Plan, error) {
	plans, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// SetWeek replaces one 1-indexed week of a stored plan.
func (s *PlanningService) SetWeek(planID string, weekNum int, week domain.WeekPlan) (domain.Plan, error) {
	plans, err := s.load()
	if err != nil {
		return domain.Plan{}, err
	}
	p, ok := plans[planID]
	if !ok {
		return domain.Plan{}, fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound)
	}
	updated, err := p.WithWeek(weekNum, week)
	if err != nil {
		return domain.Plan{}, err
	}
	plans[planID] = updated
	return updated, s.save(plans)
}

// Delete removes a plan by ID.
func (s *PlanningService) Delete(id string) error {
	plans, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := plans[id]; !ok {
		return fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
	}
	delete(plans, id)
	return s.save(plans)
}
