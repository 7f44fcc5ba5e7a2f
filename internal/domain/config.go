package domain

import "fmt"

// Config holds the tunable knobs of the two engines, loaded from
// .menurota.yaml. Zero values mean "use the default"; DefaultConfig returns
// the documented defaults.
type Config struct {
	User    string              `yaml:"user"     json:"user,omitempty"`
	DataDir string              `yaml:"data_dir" json:"data_dir,omitempty"`
	Plan    PlanConfig          `yaml:"plan"     json:"plan,omitempty"`
	Scoring DistributionWeights `yaml:"scoring"  json:"scoring,omitempty"`
	Variety VarietyWeights      `yaml:"variety"  json:"variety,omitempty"`
}

// PlanConfig sets the default shape of a generated plan.
type PlanConfig struct {
	Weeks          int `yaml:"weeks"            json:"weeks,omitempty"`
	PerWeek        int `yaml:"per_week"         json:"per_week,omitempty"`
	EasternPerWeek int `yaml:"eastern_per_week" json:"eastern_per_week,omitempty"`
	WesternPerWeek int `yaml:"western_per_week" json:"western_per_week,omitempty"`
}

// DistributionWeights tunes the per-slot greedy score used while packing
// dishes into weeks. Each new category a dish brings to the week is always
// worth 1.0; these two knobs scale against that.
type DistributionWeights struct {
	CuisineBonus   float64 `yaml:"cuisine_bonus"   json:"cuisine_bonus,omitempty"`
	RecencyPenalty float64 `yaml:"recency_penalty" json:"recency_penalty,omitempty"`
}

// VarietyWeights splits the 100-point variety score across its three
// components. The weights must sum to 100.
type VarietyWeights struct {
	Uniqueness     float64 `yaml:"uniqueness"      json:"uniqueness,omitempty"`
	CuisineVariety float64 `yaml:"cuisine_variety" json:"cuisine_variety,omitempty"`
	RegionBalance  float64 `yaml:"region_balance"  json:"region_balance,omitempty"`
}

// DefaultConfig returns the documented defaults: 4 weeks of 4 dishes with a
// 2+2 regional quota, a 0.5 cuisine-novelty bonus, a 1.0 spacing penalty,
// and the 40/30/30 variety split.
func DefaultConfig() Config {
	return Config{
		User: "default",
		Plan: PlanConfig{
			Weeks:          4,
			PerWeek:        4,
			EasternPerWeek: 2,
			WesternPerWeek: 2,
		},
		Scoring: DistributionWeights{
			CuisineBonus:   0.5,
			RecencyPenalty: 1.0,
		},
		Variety: VarietyWeights{
			Uniqueness:     40,
			CuisineVariety: 30,
			RegionBalance:  30,
		},
	}
}

// Validate rejects configs that would make the scoring formulas meaningless.
func (c Config) Validate() error {
	if c.Scoring.CuisineBonus < 0 {
		return fmt.Errorf("scoring.cuisine_bonus must be >= 0, got %v", c.Scoring.CuisineBonus)
	}
	if c.Scoring.RecencyPenalty < 0 {
		return fmt.Errorf("scoring.recency_penalty must be >= 0, got %v", c.Scoring.RecencyPenalty)
	}
	v := c.Variety
	if v.Uniqueness < 0 || v.CuisineVariety < 0 || v.RegionBalance < 0 {
		return fmt.Errorf("variety weights must be >= 0")
	}
	if sum := v.Uniqueness + v.CuisineVariety + v.RegionBalance; sum != 0 && sum != 100 {
		return fmt.Errorf("variety weights must sum to 100, got %v", sum)
	}
	return nil
}
