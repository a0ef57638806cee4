package models

import "testing"

func TestCandidateMatches(t *testing.T) {
	ada := Candidate{Name: "Ada", Role: "Engineer"}
	lee := Candidate{Name: "Lee", Role: "Designer"}
	strauss := Candidate{Name: "Strauß", Role: "Développeur"}

	tests := []struct {
		name     string
		term     string
		c        Candidate
		expected bool
	}{
		{name: "empty term matches", term: "", c: lee, expected: true},
		{name: "whitespace term matches", term: "   ", c: ada, expected: true},
		{name: "role substring", term: "eng", c: ada, expected: true},
		{name: "role substring other candidate", term: "eng", c: lee, expected: false},
		{name: "name uppercase term", term: "ADA", c: ada, expected: true},
		{name: "mixed case role", term: "sIGn", c: lee, expected: true},
		{name: "no match", term: "python", c: ada, expected: false},
		{name: "trailing space is part of the term", term: "Ada ", c: ada, expected: false},
		{name: "leading space is part of the term", term: " eng", c: ada, expected: false},
		{name: "inner space matches", term: "ng man", c: Candidate{Name: "Sam", Role: "Engineering Manager"}, expected: true},
		{name: "unicode uppercase term", term: "STRAUß", c: strauss, expected: true},
		{name: "no full case folding", term: "ss", c: strauss, expected: false},
		{name: "accented role", term: "DÉV", c: strauss, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Matches(tt.term); got != tt.expected {
				t.Errorf("Matches(%q) = %v, expected %v", tt.term, got, tt.expected)
			}
		})
	}
}

func TestStoredKeepsRating(t *testing.T) {
	c := Candidate{ID: 7, Name: "Ada", Role: "Engineer", Rating: 5, Status: StatusHired}
	s := c.Stored()
	if s.Rating == nil || *s.Rating != 5 {
		t.Fatalf("expected rating 5, got %v", s.Rating)
	}
	if s.Status != "hired" {
		t.Errorf("unexpected status %q", s.Status)
	}
}
