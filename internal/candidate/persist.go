package candidate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/pkg/models"
	"go.uber.org/zap"
)

// LoadResult describes what Load found in storage
type LoadResult struct {
	Loaded  int
	Dropped int
	// Corrupt is set when the stored entry could not be read or decoded
	// and the board started empty instead.
	Corrupt bool
}

// Load replaces the in-memory list with the persisted one. A missing entry
// gives an empty board; an unreadable one is logged and also gives an
// empty board.
func (s *Store) Load() LoadResult {
	var res LoadResult

	s.mu.Lock()
	data, ok, err := s.storage.Get(s.key)
	switch {
	case err != nil:
		s.logger.Warn("failed to read stored candidates", zap.String("key", s.key), zap.Error(err))
		s.candidates = nil
		res.Corrupt = true
	case !ok:
		s.candidates = nil
	default:
		var dropped int
		s.candidates, dropped, err = Decode(data)
		if err != nil {
			s.logger.Warn("stored candidates are unparsable, starting empty", zap.String("key", s.key), zap.Error(err))
			s.candidates = nil
			res.Corrupt = true
		}
		if dropped > 0 {
			s.logger.Warn("dropped invalid stored candidates", zap.Int("dropped", dropped))
		}
		res.Dropped = dropped
	}
	res.Loaded = len(s.candidates)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("candidates loaded", zap.Int("count", res.Loaded))
	s.notify(snapshot)
	return res
}

// Subscribe registers fn to receive a snapshot of the list after every
// change. Snapshots are copies and may be kept.
func (s *Store) Subscribe(fn func([]models.Candidate)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(snapshot []models.Candidate) {
	s.mu.Lock()
	listeners := make([]func([]models.Candidate), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// persistLocked writes the whole list under the store key
func (s *Store) persistLocked() error {
	data, err := Encode(s.candidates)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	if err := s.storage.Put(s.key, data); err != nil {
		return fmt.Errorf("save candidates: %w", err)
	}
	return nil
}

// Encode serializes candidates as a JSON array in list order
func Encode(candidates []models.Candidate) ([]byte, error) {
	stored := make([]models.StoredCandidate, len(candidates))
	for i, c := range candidates {
		stored[i] = c.Stored()
	}
	return json.Marshal(stored)
}

// Decode parses a persisted JSON array and normalizes every record.
// Only a malformed array is an error; a record that cannot be decoded or
// normalized is dropped and counted.
func Decode(data []byte) ([]models.Candidate, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, err
	}

	stored := make([]models.StoredCandidate, 0, len(raw))
	undecodable := 0
	for _, r := range raw {
		var sc models.StoredCandidate
		if err := json.Unmarshal(r, &sc); err != nil {
			undecodable++
			continue
		}
		stored = append(stored, sc)
	}

	out, dropped := Normalize(stored)
	return out, dropped + undecodable, nil
}

// Normalize converts persisted records to the current schema: a missing or
// out-of-range rating becomes 3, status is matched ignoring case, and
// records with an unknown status, an empty name or role, or a repeated id
// are dropped.
func Normalize(stored []models.StoredCandidate) ([]models.Candidate, int) {
	out := make([]models.Candidate, 0, len(stored))
	seen := make(map[int64]bool, len(stored))
	dropped := 0

	for _, r := range stored {
		status, err := pipeline.Parse(r.Status)
		name := strings.TrimSpace(r.Name)
		role := strings.TrimSpace(r.Role)
		if err != nil || name == "" || role == "" || seen[r.ID] {
			dropped++
			continue
		}
		seen[r.ID] = true

		rating := models.DefaultRating
		if r.Rating != nil && *r.Rating >= 1 && *r.Rating <= 5 {
			rating = *r.Rating
		}

		out = append(out, models.Candidate{
			ID:     r.ID,
			Name:   name,
			Role:   role,
			Skill:  strings.TrimSpace(r.Skill),
			Rating: rating,
			Status: status,
			Date:   r.Date,
		})
	}
	return out, dropped
}
