// Package tui is the interactive terminal board.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/talentflow/internal/board"
	"github.com/khrees2412/talentflow/internal/candidate"
	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/pkg/models"
	"go.uber.org/zap"
)

type state int

const (
	stateBrowse state = iota
	stateSearch
	stateAdd
	stateConfirm
)

const (
	fieldName = iota
	fieldRole
	fieldSkill
	fieldRating
)

// gate approves exactly one confirmation after the user answers y
type gate struct {
	approved bool
}

func (g *gate) confirm(string) bool {
	ok := g.approved
	g.approved = false
	return ok
}

// Model is the bubbletea model for the board
type Model struct {
	session *board.Session
	view    *projection.View
	gate    *gate
	keys    keyMap
	help    help.Model
	styles  Styles

	state  state
	column int
	row    int

	search textinput.Model
	form   []textinput.Model
	field  int

	prompt  string
	pending func() (bool, error)
	message string
	isError bool

	width  int
	height int
}

// New creates the board UI over store. Destructive actions are confirmed
// inside the UI with a y/n prompt.
func New(store *candidate.Store, mode projection.Mode, logger *zap.Logger) Model {
	g := &gate{}
	session := board.NewSession(store, mode, g.confirm, logger)

	view := &projection.View{}
	session.OnRender(func(v projection.View) { *view = v })

	search := textinput.New()
	search.Placeholder = "name or role"
	search.Prompt = "/ "

	return Model{
		session: session,
		view:    view,
		gate:    g,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
		search:  search,
		form:    newForm(),
	}
}

func newForm() []textinput.Model {
	labels := []string{"Name", "Role", "Skill", "Rating (1-5)"}
	placeholders := []string{"Ada Lovelace", "Engineer", "React, Design, Python...", "3"}
	form := make([]textinput.Model, len(labels))
	for i := range labels {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-13s", labels[i]+":")
		ti.Placeholder = placeholders[i]
		form[i] = ti
	}
	form[fieldRating].CharLimit = 1
	return form
}

// Session exposes the underlying board session
func (m Model) Session() *board.Session {
	return m.session
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// ctrl+c quits from every state; q is only a quit key while browsing
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateSearch:
			return m.updateSearch(msg)
		case stateAdd:
			return m.updateAdd(msg)
		case stateConfirm:
			return m.updateConfirm(msg), nil
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	m.isError = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.view.Mode == projection.ModeBoard && m.column > 0 {
			m.column--
			m.row = 0
		}
	case key.Matches(msg, m.keys.Right):
		if m.view.Mode == projection.ModeBoard && m.column < len(m.view.Columns)-1 {
			m.column++
			m.row = 0
		}
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		m.row++
	case key.Matches(msg, m.keys.Next):
		m.move(pipeline.Forward)
	case key.Matches(msg, m.keys.Prev):
		m.move(pipeline.Backward)
	case key.Matches(msg, m.keys.Applied):
		m.moveTo(models.StatusApplied)
	case key.Matches(msg, m.keys.Interview):
		m.moveTo(models.StatusInterview)
	case key.Matches(msg, m.keys.Hired):
		m.moveTo(models.StatusHired)
	case key.Matches(msg, m.keys.Add):
		m.state = stateAdd
		m.form = newForm()
		m.field = fieldName
		cmd := m.form[fieldName].Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		m.state = stateSearch
		m.search.SetValue(m.session.Term())
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		m.session.ToggleViewMode()
		m.row = 0
	case key.Matches(msg, m.keys.Delete):
		if card, ok := m.selected(); ok {
			session := m.session
			id := card.ID
			m.ask(fmt.Sprintf("Remove %s? (y/n)", card.Name), func() (bool, error) {
				return session.RequestDelete(id)
			})
		}
	case key.Matches(msg, m.keys.Clear):
		if m.view.Counts.Total > 0 {
			m.ask("Delete all candidates? (y/n)", m.session.RequestClearAll)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clamp()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.SetValue("")
		m.session.SetSearchTerm("")
		m.search.Blur()
		m.state = stateBrowse
		m.clamp()
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		m.state = stateBrowse
		m.clamp()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.session.SetSearchTerm(m.search.Value())
	m.row = 0
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateBrowse
		m.message = ""
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		cmd := m.focusField((m.field + 1) % len(m.form))
		return m, cmd
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := m.focusField((m.field + len(m.form) - 1) % len(m.form))
		return m, cmd
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.form[m.field], cmd = m.form[m.field].Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.gate.approved = true
		done, err := m.pending()
		m.gate.approved = false
		switch {
		case err != nil:
			m.setError(err)
		case done:
			m.setMessage("Done")
		}
	case "n", "esc", "q":
		m.setMessage("Cancelled")
	default:
		return m
	}
	m.state = stateBrowse
	m.pending = nil
	m.prompt = ""
	m.clamp()
	return m
}

func (m *Model) focusField(i int) tea.Cmd {
	m.form[m.field].Blur()
	m.field = i
	return m.form[i].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	rating := 0
	if raw := strings.TrimSpace(m.form[fieldRating].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.setError(fmt.Errorf("rating must be a number"))
			return m, nil
		}
		rating = n
	}

	c, err := m.session.SubmitNewCandidate(
		m.form[fieldName].Value(),
		m.form[fieldRole].Value(),
		m.form[fieldSkill].Value(),
		rating,
	)
	if err != nil {
		// Validation failures keep the form open so the user can fix them
		m.setError(err)
		return m, nil
	}

	m.state = stateBrowse
	m.focus(c.ID)
	m.setMessage(fmt.Sprintf("Added %s", c.Name))
	return m, nil
}

func (m *Model) ask(prompt string, action func() (bool, error)) {
	m.state = stateConfirm
	m.prompt = prompt
	m.pending = action
}

func (m *Model) move(d pipeline.Direction) {
	card, ok := m.selected()
	if !ok {
		return
	}
	changed, err := m.session.RequestMove(card.ID, d)
	m.afterMove(card.ID, changed, err)
}

func (m *Model) moveTo(status models.Status) {
	card, ok := m.selected()
	if !ok {
		return
	}
	changed, err := m.session.RequestMoveTo(card.ID, status)
	m.afterMove(card.ID, changed, err)
}

func (m *Model) afterMove(id int64, changed bool, err error) {
	if err != nil {
		m.setError(err)
		return
	}
	if changed {
		m.focus(id)
	}
}

// focus puts the cursor on the card with id, following it across columns
func (m *Model) focus(id int64) {
	if m.view.Mode == projection.ModeList {
		for i, c := range m.view.Cards {
			if c.ID == id {
				m.row = i
			}
		}
		return
	}
	for ci, col := range m.view.Columns {
		for ri, c := range col.Cards {
			if c.ID == id {
				m.column = ci
				m.row = ri
				return
			}
		}
	}
}

func (m Model) cards() []projection.Card {
	if m.view.Mode == projection.ModeList {
		return m.view.Cards
	}
	if m.column >= 0 && m.column < len(m.view.Columns) {
		return m.view.Columns[m.column].Cards
	}
	return nil
}

func (m Model) selected() (projection.Card, bool) {
	cards := m.cards()
	if m.row < 0 || m.row >= len(cards) {
		return projection.Card{}, false
	}
	return cards[m.row], true
}

func (m *Model) clamp() {
	n := len(m.cards())
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.isError = false
}

func (m *Model) setError(err error) {
	m.message = err.Error()
	m.isError = true
}

// View implements tea.Model
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")

	if m.view.Mode == projection.ModeList {
		sb.WriteString(m.renderList())
	} else {
		sb.WriteString(m.renderBoard())
	}
	sb.WriteString("\n")

	switch m.state {
	case stateSearch:
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	case stateAdd:
		sb.WriteString(m.styles.Header.Render("New Candidate"))
		sb.WriteString("\n")
		for i := range m.form {
			sb.WriteString(m.form[i].View())
			sb.WriteString("\n")
		}
	case stateConfirm:
		sb.WriteString(m.styles.Prompt.Render(m.prompt))
		sb.WriteString("\n")
	}

	if m.message != "" {
		style := m.styles.Message
		if m.isError {
			style = m.styles.Error
		}
		sb.WriteString(style.Render(m.message))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderHeader() string {
	c := m.view.Counts
	title := m.styles.Title.Render("TalentFlow")
	counts := m.styles.Count.Render(fmt.Sprintf("Total %d · Hired %d · Pending %d", c.Total, c.Hired, c.Pending))
	header := title + "  " + counts
	if term := m.session.Term(); term != "" {
		header += m.styles.Muted.Render(fmt.Sprintf("  search %q: %d match", term, c.Matched))
	}
	return header
}

func (m Model) columnWidth() int {
	width := m.width
	if width == 0 {
		width = 96
	}
	w := (width - 6) / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) renderBoard() string {
	width := m.columnWidth()
	cols := make([]string, 0, len(m.view.Columns))
	for ci, col := range m.view.Columns {
		var sb strings.Builder
		sb.WriteString(m.styles.Header.Render(col.Title))
		sb.WriteString(m.styles.Count.Render(fmt.Sprintf(" (%d)", col.Count)))
		for ri, card := range col.Cards {
			sb.WriteString("\n")
			sb.WriteString(m.renderCard(card, width-4, m.state != stateAdd && ci == m.column && ri == m.row))
		}
		if col.Count == 0 {
			sb.WriteString("\n")
			sb.WriteString(m.styles.Muted.Render("No candidates"))
		}

		style := m.styles.Column
		if ci == m.column {
			style = m.styles.FocusColumn
		}
		cols = append(cols, style.Width(width).Render(sb.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderList() string {
	if len(m.view.Cards) == 0 {
		return m.styles.Muted.Render("No candidates")
	}
	var rows []string
	for i, card := range m.view.Cards {
		cursor := "  "
		if i == m.row {
			cursor = m.styles.Action.Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %-20s %-22s %s %s %s",
			cursor,
			m.styles.Avatar.Render(card.Initial),
			card.Name,
			card.Role,
			BadgeStyle(card.SkillColor).Render(SkillText(card.Skill)),
			m.styles.Stars.Render(StarString(card.Stars)),
			m.styles.Muted.Render(pipeline.Label(card.Status)),
		))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCard(c projection.Card, width int, selected bool) string {
	lines := []string{
		m.styles.Avatar.Render(c.Initial) + " " + m.styles.Name.Render(c.Name),
		m.styles.Muted.Render(c.Role),
		BadgeStyle(c.SkillColor).Render(SkillText(c.Skill)) + " " + m.styles.Stars.Render(StarString(c.Stars)),
		m.styles.Muted.Render(FormatDate(c.Date)),
	}
	if c.Next != nil {
		lines = append(lines, m.styles.Action.Render("→ "+pipeline.ActionLabel(c.Status)))
	} else {
		lines = append(lines, m.styles.Hired.Render("✓ Hired"))
	}

	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
