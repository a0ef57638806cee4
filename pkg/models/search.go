package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matches reports whether term appears, ignoring case, in the candidate's
// name or role. A blank term matches every candidate; any other term is
// matched as typed, surrounding spaces included.
func (c Candidate) Matches(term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	lower := cases.Lower(language.Und)
	t := lower.String(term)
	return strings.Contains(lower.String(c.Name), t) ||
		strings.Contains(lower.String(c.Role), t)
}
