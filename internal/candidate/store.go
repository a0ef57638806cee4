// Package candidate owns the list of candidates on the board and keeps its
// persisted copy in sync after every change.
package candidate

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/pkg/models"
	"go.uber.org/zap"
)

// Storage is durable named-entry storage
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Store is the single owner of the candidate list
type Store struct {
	mu         sync.Mutex
	storage    Storage
	key        string
	logger     *zap.Logger
	now        func() time.Time
	candidates []models.Candidate
	listeners  []func([]models.Candidate)
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the store's logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for ids and creation dates
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store persisting under key. Call Load to read
// the persisted list.
func NewStore(storage Storage, key string, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     key,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates and appends a new candidate in the applied stage.
// A rating of 0 means no rating was given and defaults to 3.
func (s *Store) Add(name, role, skill string, rating int) (models.Candidate, error) {
	c, err := newCandidate(name, role, skill, rating, models.StatusApplied)
	if err != nil {
		return models.Candidate{}, err
	}

	s.mu.Lock()
	now := s.now().UTC()
	c.ID = s.nextIDLocked(now)
	c.Date = now.Truncate(time.Millisecond)

	s.candidates = append(s.candidates, c)
	if err := s.persistLocked(); err != nil {
		s.candidates = s.candidates[:len(s.candidates)-1]
		s.mu.Unlock()
		return models.Candidate{}, err
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("candidate added", zap.Int64("id", c.ID), zap.String("name", c.Name))
	s.notify(snapshot)
	return c, nil
}

// Import appends records as new candidates with fresh ids and creation
// dates, keeping their stage, skill and rating. Every record is validated
// first and the whole batch is written once: on any error nothing is added.
func (s *Store) Import(records []models.Candidate) ([]models.Candidate, error) {
	added := make([]models.Candidate, 0, len(records))
	for i, r := range records {
		c, err := newCandidate(r.Name, r.Role, r.Skill, r.Rating, r.Status)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		added = append(added, c)
	}
	if len(added) == 0 {
		return added, nil
	}

	s.mu.Lock()
	now := s.now().UTC()
	old := s.candidates
	next := make([]models.Candidate, len(old), len(old)+len(added))
	copy(next, old)
	s.candidates = next
	for i := range added {
		added[i].ID = s.nextIDLocked(now)
		added[i].Date = now.Truncate(time.Millisecond)
		s.candidates = append(s.candidates, added[i])
	}
	if err := s.persistLocked(); err != nil {
		s.candidates = old
		s.mu.Unlock()
		return nil, err
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("candidates imported", zap.Int("count", len(added)))
	s.notify(snapshot)
	return added, nil
}

// SetStatus moves a candidate to status. It reports whether anything
// changed: an unknown id or an unchanged status is a no-op with no write.
func (s *Store) SetStatus(id int64, status models.Status) (bool, error) {
	if !pipeline.IsValid(status) {
		return false, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown stage %q", status)}
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 || s.candidates[i].Status == status {
		s.mu.Unlock()
		return false, nil
	}

	old := s.candidates[i].Status
	s.candidates[i].Status = status
	if err := s.persistLocked(); err != nil {
		s.candidates[i].Status = old
		s.mu.Unlock()
		return false, err
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("candidate moved",
		zap.Int64("id", id),
		zap.String("from", string(old)),
		zap.String("to", string(status)))
	s.notify(snapshot)
	return true, nil
}

// Move shifts a candidate one stage along the pipeline. Moving past either
// end is a no-op.
func (s *Store) Move(id int64, d pipeline.Direction) (bool, error) {
	c, ok := s.Get(id)
	if !ok {
		return false, nil
	}
	return s.SetStatus(id, pipeline.Step(c.Status, d))
}

// Remove deletes a candidate. An unknown id is a no-op.
func (s *Store) Remove(id int64) (bool, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}

	old := s.candidates
	next := make([]models.Candidate, 0, len(old)-1)
	next = append(next, old[:i]...)
	next = append(next, old[i+1:]...)
	s.candidates = next
	if err := s.persistLocked(); err != nil {
		s.candidates = old
		s.mu.Unlock()
		return false, err
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("candidate removed", zap.Int64("id", id))
	s.notify(snapshot)
	return true, nil
}

// ClearAll empties the list and erases the persisted entry
func (s *Store) ClearAll() error {
	s.mu.Lock()
	if err := s.storage.Delete(s.key); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("clear storage: %w", err)
	}
	n := len(s.candidates)
	s.candidates = nil
	s.mu.Unlock()

	s.logger.Info("board cleared", zap.Int("removed", n))
	s.notify([]models.Candidate{})
	return nil
}

// List returns the candidates in insertion order. The slice is a copy.
func (s *Store) List() []models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Filter returns candidates whose name or role contains term, ignoring case
func (s *Store) Filter(term string) []models.Candidate {
	out := []models.Candidate{}
	for _, c := range s.List() {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}

// Get looks up a candidate by id
func (s *Store) Get(id int64) (models.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.Candidate{}, false
	}
	return s.candidates[i], true
}

// Len returns the number of candidates
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.candidates)
}

// newCandidate trims and validates the user-supplied fields. A rating of 0
// means none was given.
func newCandidate(name, role, skill string, rating int, status models.Status) (models.Candidate, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	skill = strings.TrimSpace(skill)

	if name == "" {
		return models.Candidate{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	if role == "" {
		return models.Candidate{}, &ValidationError{Field: "role", Reason: "is required"}
	}
	if rating == 0 {
		rating = models.DefaultRating
	}
	if rating < 1 || rating > 5 {
		return models.Candidate{}, &ValidationError{Field: "rating", Reason: fmt.Sprintf("must be between 1 and 5, got %d", rating)}
	}
	if !pipeline.IsValid(status) {
		return models.Candidate{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown stage %q", status)}
	}

	return models.Candidate{
		Name:   name,
		Role:   role,
		Skill:  skill,
		Rating: rating,
		Status: status,
	}, nil
}

func (s *Store) indexLocked(id int64) int {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			return i
		}
	}
	return -1
}

// nextIDLocked uses the creation time in milliseconds, bumped past the
// largest existing id so ids stay unique when the clock repeats.
func (s *Store) nextIDLocked(now time.Time) int64 {
	id := now.UnixMilli()
	for _, c := range s.candidates {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	return id
}

func (s *Store) snapshotLocked() []models.Candidate {
	out := make([]models.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}
