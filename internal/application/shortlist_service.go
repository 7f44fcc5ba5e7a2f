package application

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/domain"
)

const shortlistBlob = "shortlist.json"

// ShortlistService persists the user's standing dish selection. The
// shortlist operations themselves are total; only persistence can fail.
type ShortlistService struct {
	store domain.BlobStore
	user  string
	log   zerolog.Logger
}

func NewShortlistService(store domain.BlobStore, user string, log zerolog.Logger) *ShortlistService {
	return &ShortlistService{store: store, user: user, log: log}
}

func (s *ShortlistService) key() string { return s.user + "/" + shortlistBlob }

// Show returns the current shortlist, empty when none was saved yet.
func (s *ShortlistService) Show() (domain.Shortlist, error) {
	data, err := s.store.Load(s.key())
	if err != nil {
		return domain.Shortlist{}, fmt.Errorf("loading shortlist: %w", err)
	}
	var sl domain.Shortlist
	if len(data) > 0 {
		if err := json.Unmarshal(data, &sl); err != nil {
			return domain.Shortlist{}, fmt.Errorf("decoding shortlist: %w", err)
		}
	}
	return sl, nil
}

func (s *ShortlistService) put(sl domain.Shortlist) error {
	data, err := json.MarshalIndent(sl, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding shortlist: %w", err)
	}
	if err := s.store.Save(s.key(), data); err != nil {
		return fmt.Errorf("saving shortlist: %w", err)
	}
	return nil
}

// Add shortlists a dish; already-present IDs are a no-op.
func (s *ShortlistService) Add(dishID string) (domain.Shortlist, error) {
	sl, err := s.Show()
	if err != nil {
		return domain.Shortlist{}, err
	}
	sl = sl.Add(dishID)
	return sl, s.put(sl)
}

// Remove drops a dish; absent IDs are a no-op.
func (s *ShortlistService) Remove(dishID string) (domain.Shortlist, error) {
	sl, err := s.Show()
	if err != nil {
		return domain.Shortlist{}, err
	}
	sl = sl.Remove(dishID)
	return sl, s.put(sl)
}

// Clear empties the shortlist.
func (s *ShortlistService) Clear() error {
	s.log.Debug().Msg("clearing shortlist")
	return s.put(domain.Shortlist{})
}
