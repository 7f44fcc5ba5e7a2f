// Package config reads .menurota.yaml from a working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/menurota/menurota/internal/domain"
)

const fileName = ".menurota.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .menurota.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .menurota.yaml from dir. A missing file yields the documented
// defaults; a present file overlays the defaults field by field, so users
// only write the knobs they want to change.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	defaults := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg = merge(defaults, cfg)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// merge overlays explicit (non-zero) values on top of the defaults.
func merge(base, override domain.Config) domain.Config {
	out := base

	if override.User != "" {
		out.User = override.User
	}
	if override.DataDir != "" {
		out.DataDir = override.DataDir
	}
	if override.Plan.Weeks > 0 {
		out.Plan.Weeks = override.Plan.Weeks
	}
	if override.Plan.PerWeek > 0 {
		out.Plan.PerWeek = override.Plan.PerWeek
	}
	if override.Plan.EasternPerWeek > 0 {
		out.Plan.EasternPerWeek = override.Plan.EasternPerWeek
	}
	if override.Plan.WesternPerWeek > 0 {
		out.Plan.WesternPerWeek = override.Plan.WesternPerWeek
	}
	if override.Scoring.CuisineBonus != 0 {
		out.Scoring.CuisineBonus = override.Scoring.CuisineBonus
	}
	if override.Scoring.RecencyPenalty != 0 {
		out.Scoring.RecencyPenalty = override.Scoring.RecencyPenalty
	}
	zero := domain.VarietyWeights{}
	if override.Variety != zero {
		out.Variety = override.Variety
	}
	return out
}
