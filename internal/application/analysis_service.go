package application

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/variety"
)

const historyBlob = "history.json"

// ScoreEntry is one line of the variety-score history kept per user.
type ScoreEntry struct {
	Timestamp string `json:"timestamp"`
	PlanID    string `json:"plan_id"`
	PlanName  string `json:"plan_name"`
	Score     int    `json:"score"`
}

// AnalysisService runs the variety engine over stored plans and keeps a
// score history so improvement over time is visible.
type AnalysisService struct {
	store     domain.BlobStore
	catalogue *CatalogueService
	planning  *PlanningService
	user      string
	log       zerolog.Logger
	now       func() time.Time
}

func NewAnalysisService(store domain.BlobStore, catalogue *CatalogueService, planning *PlanningService, user string, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		store:     store,
		catalogue: catalogue,
		planning:  planning,
		user:      user,
		log:       log,
		now:       time.Now,
	}
}

func (s *AnalysisService) key() string { return s.user + "/" + historyBlob }

// Assess scores a stored plan against the full catalogue and appends the
// result to the score history (best effort).
func (s *AnalysisService) Assess(planID string, weights domain.VarietyWeights) (variety.Report, error) {
	plan, err := s.planning.Get(planID)
	if err != nil {
		return variety.Report{}, err
	}
	dishes, err := s.catalogue.List()
	if err != nil {
		return variety.Report{}, err
	}

	report := variety.Assess(plan, dishes, weights)

	entry := ScoreEntry{
		Timestamp: s.now().Format(time.RFC3339),
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		Score:     report.VarietyScore,
	}
	if err := s.appendHistory(entry); err != nil {
		s.log.Warn().Err(err).Msg("could not record score history")
	}

	return report, nil
}

// Suggest assesses a plan and derives improvement hints from the report.
func (s *AnalysisService) Suggest(planID string, weights domain.VarietyWeights) (variety.Report, []string, error) {
	report, err := s.Assess(planID, weights)
	if err != nil {
		return variety.Report{}, nil, err
	}
	dishes, err := s.catalogue.List()
	if err != nil {
		return variety.Report{}, nil, err
	}
	return report, variety.Suggest(report, dishes), nil
}

// History returns the recorded score entries, oldest first.
func (s *AnalysisService) History() ([]ScoreEntry, error) {
	data, err := s.store.Load(s.key())
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	var entries []ScoreEntry
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding history: %w", err)
		}
	}
	return entries, nil
}

func (s *AnalysisService) appendHistory(entry ScoreEntry) error {
	entries, err := s.History()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return s.store.Save(s.key(), data)
}
