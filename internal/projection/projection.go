// Package projection derives the read-only render model for the board from
// the candidate list, a search term, and a view mode.
package projection

import (
	"fmt"
	"strings"
	"time"

	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/pkg/models"
)

// Mode selects how candidates are laid out
type Mode string

const (
	ModeBoard Mode = "board"
	ModeList  Mode = "list"
)

// ParseMode validates a view mode name
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeBoard:
		return ModeBoard, nil
	case ModeList:
		return ModeList, nil
	default:
		return "", fmt.Errorf("invalid view mode %q: must be board or list", raw)
	}
}

// Counts are the board-wide aggregates
type Counts struct {
	Total   int
	Hired   int
	Pending int
	// Matched is the number of candidates passing the search term
	Matched int
}

// Card is one candidate annotated for display
type Card struct {
	ID         int64
	Name       string
	Role       string
	Skill      string
	SkillColor SkillColor
	Stars      int
	Initial    string
	Status     models.Status
	Date       time.Time
	// Next and Prev are the stages a move button would target, nil when
	// the move would not change anything.
	Next *models.Status
	Prev *models.Status
}

// Column is one pipeline stage on the board
type Column struct {
	Status models.Status
	Title  string
	Cards  []Card
	Count  int
}

// View is the complete render model
type View struct {
	Mode    Mode
	Term    string
	Counts  Counts
	Columns []Column // board mode
	Cards   []Card   // list mode
}

// Project builds the view. It never modifies candidates.
func Project(candidates []models.Candidate, term string, mode Mode) View {
	v := View{
		Mode:   mode,
		Term:   term,
		Counts: Aggregate(candidates),
	}

	filtered := make([]Card, 0, len(candidates))
	for _, c := range candidates {
		if c.Matches(term) {
			filtered = append(filtered, NewCard(c))
		}
	}
	v.Counts.Matched = len(filtered)

	if mode == ModeList {
		v.Cards = filtered
		return v
	}

	v.Mode = ModeBoard
	for _, status := range pipeline.Stages() {
		col := Column{Status: status, Title: pipeline.Label(status), Cards: []Card{}}
		for _, card := range filtered {
			if card.Status == status {
				col.Cards = append(col.Cards, card)
			}
		}
		col.Count = len(col.Cards)
		v.Columns = append(v.Columns, col)
	}
	return v
}

// Aggregate counts every candidate regardless of any search term
func Aggregate(candidates []models.Candidate) Counts {
	c := Counts{Total: len(candidates)}
	for _, cand := range candidates {
		if cand.Status == models.StatusHired {
			c.Hired++
		}
	}
	c.Pending = c.Total - c.Hired
	return c
}

// NewCard annotates a single candidate
func NewCard(c models.Candidate) Card {
	card := Card{
		ID:         c.ID,
		Name:       c.Name,
		Role:       c.Role,
		Skill:      c.Skill,
		SkillColor: ColorForSkill(c.Skill),
		Stars:      Stars(c.Rating),
		Initial:    initial(c.Name),
		Status:     c.Status,
		Date:       c.Date,
	}
	if next := pipeline.Next(c.Status); next != c.Status {
		card.Next = &next
	}
	if prev := pipeline.Prev(c.Status); prev != c.Status {
		card.Prev = &prev
	}
	return card
}

// Stars resolves the star count shown for a rating
func Stars(rating int) int {
	if rating < 1 || rating > 5 {
		return models.DefaultRating
	}
	return rating
}

// Column returns the column for status, if the view is in board mode
func (v View) Column(status models.Status) (Column, bool) {
	for _, col := range v.Columns {
		if col.Status == status {
			return col, true
		}
	}
	return Column{}, false
}

// AllCards returns the visible cards in display order for either mode
func (v View) AllCards() []Card {
	if v.Mode == ModeList {
		return v.Cards
	}
	var out []Card
	for _, col := range v.Columns {
		out = append(out, col.Cards...)
	}
	return out
}

func initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}
