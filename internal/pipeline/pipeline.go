// Package pipeline defines the fixed order of hiring stages.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/khrees2412/talentflow/pkg/models"
)

// Direction is a relative move along the pipeline
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

var stages = []models.Status{
	models.StatusApplied,
	models.StatusInterview,
	models.StatusHired,
}

// Stages returns the ordered stage sequence
func Stages() []models.Status {
	out := make([]models.Status, len(stages))
	copy(out, stages)
	return out
}

// Index returns the position of s in the pipeline, or -1
func Index(s models.Status) int {
	for i, stage := range stages {
		if stage == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is one of the pipeline stages
func IsValid(s models.Status) bool {
	return Index(s) >= 0
}

// Next returns the following stage. The last stage maps to itself.
func Next(s models.Status) models.Status {
	return Step(s, Forward)
}

// Prev returns the preceding stage. The first stage maps to itself.
func Prev(s models.Status) models.Status {
	return Step(s, Backward)
}

// Step moves s one stage in the given direction, stopping at either end.
// Unknown statuses are returned unchanged.
func Step(s models.Status, d Direction) models.Status {
	i := Index(s)
	if i < 0 {
		return s
	}
	j := i + int(d)
	if j < 0 || j >= len(stages) {
		return s
	}
	return stages[j]
}

// Parse validates user input and returns the matching stage
func Parse(raw string) (models.Status, error) {
	s := models.Status(strings.ToLower(strings.TrimSpace(raw)))
	if !IsValid(s) {
		return "", fmt.Errorf("invalid status %q: must be one of %v", raw, stages)
	}
	return s, nil
}

// Label is the display heading for a stage
func Label(s models.Status) string {
	switch s {
	case models.StatusApplied:
		return "Applied"
	case models.StatusInterview:
		return "Interview"
	case models.StatusHired:
		return "Hired"
	default:
		return string(s)
	}
}

// ActionLabel describes the forward move out of a stage, as shown on the
// card's move button. The terminal stage has no action.
func ActionLabel(s models.Status) string {
	switch s {
	case models.StatusApplied:
		return "Move to Interview"
	case models.StatusInterview:
		return "Hire Candidate"
	default:
		return ""
	}
}
