// Package application wires the pure planning engines to persistence and
// presentation. Each service owns one blob under the user's data directory
// and keeps the domain packages free of I/O.
package application

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/domain"
)

const dishesBlob = "dishes.json"

// CatalogueService manages the dish catalogue with JSON persistence.
type CatalogueService struct {
	store domain.BlobStore
	user  string
	log   zerolog.Logger
}

func NewCatalogueService(store domain.BlobStore, user string, log zerolog.Logger) *CatalogueService {
	return &CatalogueService{store: store, user: user, log: log}
}

func (s *CatalogueService) key() string { return s.user + "/" + dishesBlob }

func (s *CatalogueService) load() (map[string]domain.Dish, error) {
	data, err := s.store.Load(s.key())
	if err != nil {
		return nil, fmt.Errorf("loading catalogue: %w", err)
	}
	dishes := make(map[string]domain.Dish)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &dishes); err != nil {
			return nil, fmt.Errorf("decoding catalogue: %w", err)
		}
	}
	return dishes, nil
}

func (s *CatalogueService) save(dishes map[string]domain.Dish) error {
	data, err := json.MarshalIndent(dishes, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}
	if err := s.store.Save(s.key(), data); err != nil {
		return fmt.Errorf("saving catalogue: %w", err)
	}
	return nil
}

// Seed adds the default starter dishes, skipping any already present.
// Returns how many were added.
func (s *CatalogueService) Seed() (int, error) {
	dishes, err := s.load()
	if err != nil {
		return 0, err
	}
	added := 0
	for _, d := range domain.DefaultDishes() {
		if _, ok := dishes[d.ID]; ok {
			continue
		}
		dishes[d.ID] = d
		added++
	}
	if added > 0 {
		if err := s.save(dishes); err != nil {
			return 0, err
		}
	}
	s.log.Debug().Int("added", added).Msg("seeded default dishes")
	return added, nil
}

// Add stores a dish keyed by its ID.
func (s *CatalogueService) Add(dish domain.Dish) error {
	dishes, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := dishes[dish.ID]; ok {
		return fmt.Errorf("dish %s: %w", dish.ID, domain.ErrDuplicate)
	}
	dishes[dish.ID] = dish
	return s.save(dishes)
}

// Update replaces an existing dish.
func (s *CatalogueService) Update(dish domain.Dish) error {
	dishes, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := dishes[dish.ID]; !ok {
		return fmt.Errorf("dish %s: %w", dish.ID, domain.ErrNotFound)
	}
	dishes[dish.ID] = dish
	return s.save(dishes)
}

// Get returns a dish by ID.
func (s *CatalogueService) Get(id string) (domain.Dish, error) {
	dishes, err := s.load()
	if err != nil {
		return domain.Dish{}, err
	}
	d, ok := dishes[id]
	if !ok {
		return domain.Dish{}, fmt.Errorf("dish %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

// GetByName returns a dish by its normalized name.
func (s *CatalogueService) GetByName(name string) (domain.Dish, error) {
	dishes, err := s.load()
	if err != nil {
		return domain.Dish{}, err
	}
	want := domain.NormalizeName(name)
	for _, d := range dishes {
		if d.Name == want {
			return d, nil
		}
	}
	return domain.Dish{}, fmt.Errorf("dish %q: %w", name, domain.ErrNotFound)
}

// List returns every dish, name-sorted for stable output.
func (s *CatalogueService) List() ([]domain.Dish, error) {
	dishes, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Remove deletes a dish by ID.
func (s *CatalogueService) Remove(id string) error {
	dishes, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := dishes[id]; !ok {
		return fmt.Errorf("dish %s: %w", id, domain.ErrNotFound)
	}
	delete(dishes, id)
	return s.save(dishes)
}

// Count returns the catalogue size.
func (s *CatalogueService) Count() (int, error) {
	dishes, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(dishes), nil
}
