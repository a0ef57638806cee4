package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/talentflow/internal/projection"
)

// Styles holds the lipgloss styles for the board
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Count        lipgloss.Style
	Column       lipgloss.Style
	FocusColumn  lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Avatar       lipgloss.Style
	Name         lipgloss.Style
	Muted        lipgloss.Style
	Stars        lipgloss.Style
	Action       lipgloss.Style
	Hired        lipgloss.Style
	Message      lipgloss.Style
	Error        lipgloss.Style
	Prompt       lipgloss.Style
}

// DefaultStyles returns the board's color scheme
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Count:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		FocusColumn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
		Avatar:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1),
		Name:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Stars:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Action:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Hired:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

var badgeColors = map[projection.SkillColor]lipgloss.Color{
	projection.ColorBlue:   lipgloss.Color("33"),
	projection.ColorPurple: lipgloss.Color("135"),
	projection.ColorYellow: lipgloss.Color("220"),
	projection.ColorGray:   lipgloss.Color("245"),
}

// BadgeStyle renders a skill tag in its color
func BadgeStyle(c projection.SkillColor) lipgloss.Style {
	color, ok := badgeColors[c]
	if !ok {
		color = badgeColors[projection.ColorGray]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(color).Padding(0, 1)
}

// SkillText is the badge label, with a placeholder for untagged candidates
func SkillText(skill string) string {
	if skill == "" {
		return "Other"
	}
	return skill
}

// StarString draws a five-star rating
func StarString(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// FormatDate shows a creation date, or a dash for legacy records without one
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("Jan 2, 2006")
}
