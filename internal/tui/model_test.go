package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/talentflow/internal/candidate"
	"github.com/khrees2412/talentflow/internal/database"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) (Model, *candidate.Store) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := candidate.NewStore(database.NewKV(db), "talentFlowData")
	store.Load()
	return New(store, projection.ModeBoard, nil), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(Model)
}

func TestAddCandidateThroughForm(t *testing.T) {
	m, store := newTestModel(t)

	m = send(m,
		runes("a"),
		runes("Ada"), tea.KeyMsg{Type: tea.KeyTab},
		runes("Engineer"), tea.KeyMsg{Type: tea.KeyTab},
		runes("Python"), tea.KeyMsg{Type: tea.KeyTab},
		runes("5"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].Name)
	assert.Equal(t, "Engineer", list[0].Role)
	assert.Equal(t, 5, list[0].Rating)
	assert.Equal(t, models.StatusApplied, list[0].Status)

	view := m.View()
	assert.Contains(t, view, "Ada")
	assert.Contains(t, view, "Move to Interview")
	assert.Contains(t, view, "Total 1")
}

func TestAddWithoutNameShowsError(t *testing.T) {
	m, store := newTestModel(t)

	m = send(m, runes("a"), tea.KeyMsg{Type: tea.KeyTab}, runes("Engineer"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Zero(t, store.Len())
	assert.Equal(t, stateAdd, m.state)
	assert.Contains(t, m.View(), "invalid name")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateBrowse, m.state)
}

func TestMoveSelectedCard(t *testing.T) {
	m, store := newTestModel(t)
	c, err := store.Add("Ada", "Engineer", "Python", 3)
	require.NoError(t, err)

	m = send(m, runes("]"))
	got, _ := store.Get(c.ID)
	assert.Equal(t, models.StatusInterview, got.Status)
	assert.Equal(t, 1, m.column, "cursor should follow the card")

	m = send(m, runes("]"))
	got, _ = store.Get(c.ID)
	assert.Equal(t, models.StatusHired, got.Status)
	assert.Contains(t, m.View(), "✓ Hired")

	m = send(m, runes("]"))
	got, _ = store.Get(c.ID)
	assert.Equal(t, models.StatusHired, got.Status)

	m = send(m, runes("["))
	got, _ = store.Get(c.ID)
	assert.Equal(t, models.StatusInterview, got.Status)
}

func TestDropOnColumn(t *testing.T) {
	m, store := newTestModel(t)
	c, _ := store.Add("Ada", "Engineer", "Python", 3)

	m = send(m, runes("3"))
	got, _ := store.Get(c.ID)
	assert.Equal(t, models.StatusHired, got.Status)
	assert.Equal(t, 2, m.column)

	send(m, runes("1"))
	got, _ = store.Get(c.ID)
	assert.Equal(t, models.StatusApplied, got.Status)
}

func TestDeleteAsksFirst(t *testing.T) {
	m, store := newTestModel(t)
	store.Add("Ada", "Engineer", "Python", 3)

	m = send(m, runes("d"))
	assert.Equal(t, stateConfirm, m.state)
	assert.Contains(t, m.View(), "Remove Ada?")

	m = send(m, runes("n"))
	assert.Equal(t, stateBrowse, m.state)
	assert.Equal(t, 1, store.Len())

	m = send(m, runes("d"), runes("y"))
	assert.Zero(t, store.Len())
	assert.NotContains(t, m.View(), "Engineer")
}

func TestClearAllAsksFirst(t *testing.T) {
	m, store := newTestModel(t)
	store.Add("Ada", "Engineer", "Python", 3)
	store.Add("Lee", "Designer", "Design", 4)

	m = send(m, runes("C"), runes("y"))
	assert.Zero(t, store.Len())
	assert.Contains(t, m.View(), "Total 0")
}

func TestSearchFiltersBoard(t *testing.T) {
	m, store := newTestModel(t)
	store.Add("Ada", "Engineer", "Python", 3)
	store.Add("Lee", "Designer", "Design", 4)

	m = send(m, runes("/"), runes("eng"), tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "Ada")
	assert.NotContains(t, view, "Lee")
	assert.Contains(t, view, "Total 2")

	m = send(m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "Lee")
}

func TestToggleListView(t *testing.T) {
	m, store := newTestModel(t)
	store.Add("Ada", "Engineer", "Python", 3)
	c, _ := store.Add("Lee", "Designer", "Design", 4)
	store.SetStatus(c.ID, models.StatusHired)

	m = send(m, runes("v"))
	assert.Equal(t, projection.ModeList, m.Session().Mode())

	view := m.View()
	assert.Contains(t, view, "Ada")
	assert.Contains(t, view, "Lee")
	assert.Contains(t, view, "Hired")
	assert.False(t, strings.Contains(view, "No candidates"))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestCtrlCQuitsFromEveryState(t *testing.T) {
	m, store := newTestModel(t)
	store.Add("Ada", "Engineer", "Python", 3)

	states := map[string]Model{
		"search":  send(m, runes("/")),
		"add":     send(m, runes("a")),
		"confirm": send(m, runes("d")),
	}
	for name, sm := range states {
		t.Run(name, func(t *testing.T) {
			require.NotEqual(t, stateBrowse, sm.state)
			_, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
		})
	}

	// q is typed into the search box instead of quitting
	sm := send(m, runes("/"), runes("q"))
	assert.Equal(t, stateSearch, sm.state)
	assert.Equal(t, "q", sm.search.Value())
}

func TestStarString(t *testing.T) {
	assert.Equal(t, "★★★☆☆", StarString(3))
	assert.Equal(t, "☆☆☆☆☆", StarString(0))
	assert.Equal(t, "★★★★★", StarString(9))
}
