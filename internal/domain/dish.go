package domain

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dish is an entity: identity is its ID, not its content. Two dishes with
// the same ID are the same dish regardless of edits. All mutation happens
// through With* methods returning copies.
type Dish struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories,omitempty"`
	Cuisine    Cuisine    `json:"cuisine"`
	Tags       []string   `json:"tags,omitempty"`
	RecipeRef  string     `json:"recipe_ref,omitempty"`
}

// NewDishID generates an opaque dish identifier.
func NewDishID() string {
	return "DISH-" + uuid.NewString()[:8]
}

// NewDish builds a dish with a fresh ID, a normalized name, and duplicate
// categories collapsed. Cuisine is required; region is always derived from
// it, never stored.
func NewDish(name string, cuisine Cuisine, categories ...Category) Dish {
	return Dish{
		ID:         NewDishID(),
		Name:       NormalizeName(name),
		Categories: dedupeCategories(categories),
		Cuisine:    cuisine,
	}
}

// NormalizeName trims and title-cases a dish or tag name so lookups by name
// are stable regardless of how the user typed it.
func NormalizeName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(strings.ToLower(name)))
}

// Region derives the dish's region from its cuisine. There is deliberately
// no region field: the two can never diverge.
func (d Dish) Region() Region {
	return RegionOf(d.Cuisine)
}

// HasCategory reports whether the dish covers the given category.
func (d Dish) HasCategory(c Category) bool {
	for _, have := range d.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// WithCategory returns a copy with the category added. Adding a category the
// dish already has is a no-op.
func (d Dish) WithCategory(c Category) Dish {
	if d.HasCategory(c) {
		return d
	}
	out := d
	out.Categories = append(append([]Category{}, d.Categories...), c)
	return out
}

// WithoutCategory returns a copy with the category removed.
func (d Dish) WithoutCategory(c Category) Dish {
	out := d
	out.Categories = make([]Category, 0, len(d.Categories))
	for _, have := range d.Categories {
		if have != c {
			out.Categories = append(out.Categories, have)
		}
	}
	return out
}

// WithCuisine returns a copy with the cuisine (and therefore the derived
// region) replaced.
func (d Dish) WithCuisine(c Cuisine) Dish {
	out := d
	out.Cuisine = c
	return out
}

// WithTags returns a copy with the tag set replaced. Tags are normalized the
// same way names are.
func (d Dish) WithTags(tags ...string) Dish {
	out := d
	out.Tags = make([]string, 0, len(tags))
	for _, t := range tags {
		if t = NormalizeName(t); t != "" {
			out.Tags = append(out.Tags, t)
		}
	}
	return out
}

// WithRecipeRef returns a copy with the recipe reference replaced.
func (d Dish) WithRecipeRef(ref string) Dish {
	out := d
	out.RecipeRef = ref
	return out
}

func dedupeCategories(categories []Category) []Category {
	seen := make(map[Category]bool, len(categories))
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
