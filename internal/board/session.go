// Package board implements the input events a board UI sends, and hands
// the UI a fresh projection after each one.
package board

import (
	"fmt"

	"github.com/khrees2412/talentflow/internal/candidate"
	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/pkg/models"
	"go.uber.org/zap"
)

// Confirmer asks the user to approve a destructive action
type Confirmer func(prompt string) bool

// Renderer receives the projection after every change
type Renderer func(projection.View)

// AlwaysConfirm approves every prompt
func AlwaysConfirm(string) bool { return true }

// Session tracks the search term and view mode for one UI and funnels its
// events into the store.
type Session struct {
	store   *candidate.Store
	logger  *zap.Logger
	confirm Confirmer
	render  Renderer
	term    string
	mode    projection.Mode
	view    projection.View
}

// NewSession wires a session to store. The session re-projects whenever
// the store reports a change.
func NewSession(store *candidate.Store, mode projection.Mode, confirm Confirmer, logger *zap.Logger) *Session {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode != projection.ModeList {
		mode = projection.ModeBoard
	}
	s := &Session{
		store:   store,
		logger:  logger,
		confirm: confirm,
		mode:    mode,
	}
	store.Subscribe(s.refresh)
	s.refresh(store.List())
	return s
}

// OnRender registers the renderer and immediately renders the current view
func (s *Session) OnRender(r Renderer) {
	s.render = r
	if r != nil {
		r(s.view)
	}
}

// View returns the current projection
func (s *Session) View() projection.View {
	return s.view
}

// Term returns the current search term
func (s *Session) Term() string {
	return s.term
}

// Mode returns the current view mode
func (s *Session) Mode() projection.Mode {
	return s.mode
}

// SubmitNewCandidate adds a candidate. Validation errors are returned so the
// UI can decide whether to show them.
func (s *Session) SubmitNewCandidate(name, role, skill string, rating int) (models.Candidate, error) {
	return s.store.Add(name, role, skill, rating)
}

// RequestMove moves a candidate one stage in direction
func (s *Session) RequestMove(id int64, d pipeline.Direction) (bool, error) {
	return s.store.Move(id, d)
}

// RequestMoveTo drops a candidate onto the column for status
func (s *Session) RequestMoveTo(id int64, status models.Status) (bool, error) {
	return s.store.SetStatus(id, status)
}

// RequestDelete removes a candidate after confirmation. It reports whether
// the candidate was removed.
func (s *Session) RequestDelete(id int64) (bool, error) {
	c, ok := s.store.Get(id)
	if !ok {
		return false, nil
	}
	if !s.confirm(fmt.Sprintf("Are you sure you want to remove %s?", c.Name)) {
		s.logger.Debug("delete cancelled", zap.Int64("id", id))
		return false, nil
	}
	return s.store.Remove(id)
}

// RequestClearAll empties the board after confirmation
func (s *Session) RequestClearAll() (bool, error) {
	if !s.confirm("Are you sure you want to delete all candidates?") {
		s.logger.Debug("clear cancelled")
		return false, nil
	}
	if err := s.store.ClearAll(); err != nil {
		return false, err
	}
	return true, nil
}

// SetSearchTerm filters the view. It does not touch storage.
func (s *Session) SetSearchTerm(term string) {
	if term == s.term {
		return
	}
	s.term = term
	s.refresh(s.store.List())
}

// SetViewMode switches between board and list layouts
func (s *Session) SetViewMode(mode projection.Mode) {
	if mode != projection.ModeList {
		mode = projection.ModeBoard
	}
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.refresh(s.store.List())
}

// ToggleViewMode flips between board and list
func (s *Session) ToggleViewMode() {
	if s.mode == projection.ModeBoard {
		s.SetViewMode(projection.ModeList)
		return
	}
	s.SetViewMode(projection.ModeBoard)
}

func (s *Session) refresh(candidates []models.Candidate) {
	s.view = projection.Project(candidates, s.term, s.mode)
	if s.render != nil {
		s.render(s.view)
	}
}
