package models

import "time"

// Status is a pipeline stage
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusHired     Status = "hired"
)

// DefaultRating is used when a record carries no rating
const DefaultRating = 3

// Candidate represents one applicant on the board
type Candidate struct {
	ID     int64     `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Role   string    `json:"role" yaml:"role"`
	Skill  string    `json:"skill" yaml:"skill"`
	Rating int       `json:"rating" yaml:"rating"` // 1-5
	Status Status    `json:"status" yaml:"status"` // applied, interview, hired
	Date   time.Time `json:"date" yaml:"date"`
}

// StoredCandidate is the persisted shape of a candidate. Older entries
// were written before ratings existed, so Rating may be missing.
type StoredCandidate struct {
	ID     int64     `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Role   string    `json:"role" yaml:"role"`
	Skill  string    `json:"skill" yaml:"skill"`
	Rating *int      `json:"rating,omitempty" yaml:"rating,omitempty"`
	Status string    `json:"status" yaml:"status"`
	Date   time.Time `json:"date" yaml:"date"`
}

// Stored converts a candidate to its persisted shape
func (c Candidate) Stored() StoredCandidate {
	rating := c.Rating
	return StoredCandidate{
		ID:     c.ID,
		Name:   c.Name,
		Role:   c.Role,
		Skill:  c.Skill,
		Rating: &rating,
		Status: string(c.Status),
		Date:   c.Date,
	}
}
