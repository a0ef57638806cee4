package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/khrees2412/talentflow/internal/candidate"
	"github.com/khrees2412/talentflow/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears flag values left over from a previous run
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("TALENTFLOW_HOME", home)
	return home
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := run(context.Background(), args)
	return out.String(), err
}

var idPattern = regexp.MustCompile(`ID: (\d+)`)

func addCandidate(t *testing.T, name, role, skill string) int64 {
	t.Helper()
	out, err := execute(t, "", "add", "--name", name, "--role", role, "--skill", skill)
	require.NoError(t, err)

	m := idPattern.FindStringSubmatch(out)
	require.Len(t, m, 2, "add output should contain the new ID: %s", out)
	id, err := strconv.ParseInt(m[1], 10, 64)
	require.NoError(t, err)
	return id
}

func TestAddAndList(t *testing.T) {
	setupHome(t)

	addCandidate(t, "Ada", "Engineer", "Python")
	addCandidate(t, "Lee", "Designer", "Design")

	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Lee")
	assert.Contains(t, out, "Applied (2)")
	assert.Contains(t, out, "Interview (0)")
	assert.Contains(t, out, "Move to Interview")
}

func TestAddRejectsMissingName(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "", "add", "--role", "Engineer")
	require.Error(t, err)

	var verr *candidate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)

	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No candidates yet")
}

func TestListSearchAndView(t *testing.T) {
	setupHome(t)
	addCandidate(t, "Ada", "Engineer", "Python")
	addCandidate(t, "Lee", "Designer", "Design")

	out, err := execute(t, "", "list", "--search", "ENG", "--view", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "Lee")
	assert.Contains(t, out, `Search "ENG" matched 1`)

	_, err = execute(t, "", "list", "--view", "grid")
	assert.Error(t, err)
}

func TestMoveCommand(t *testing.T) {
	setupHome(t)
	id := addCandidate(t, "Ada", "Engineer", "Python")
	sid := strconv.FormatInt(id, 10)

	out, err := execute(t, "", "move", sid, "--next")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved Ada to Interview")

	out, err = execute(t, "", "move", sid, "--to", "HIRED")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved Ada to Hired")

	out, err = execute(t, "", "move", sid, "--next")
	require.NoError(t, err)
	assert.Contains(t, out, "already in Hired")

	out, err = execute(t, "", "move", sid, "--prev")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved Ada to Interview")

	_, err = execute(t, "", "move", sid, "--to", "offer")
	assert.Error(t, err)

	_, err = execute(t, "", "move", sid)
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestMoveUnknownID(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "", "move", "42", "--next")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = execute(t, "", "move", "abc", "--next")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestShow(t *testing.T) {
	setupHome(t)
	id := addCandidate(t, "Ada", "Engineer", "React")

	out, err := execute(t, "", "show", strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "★★★☆☆")
	assert.Contains(t, out, "Applied")
	assert.Contains(t, out, "Move to Interview")

	_, err = execute(t, "", "show", "7")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestRemoveAsksForConfirmation(t *testing.T) {
	setupHome(t)
	id := addCandidate(t, "Ada", "Engineer", "Python")
	sid := strconv.FormatInt(id, 10)

	out, err := execute(t, "n\n", "remove", sid)
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to remove Ada?")
	assert.Contains(t, out, "Cancelled")

	out, err = execute(t, "y\n", "remove", sid)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed Ada")

	_, err = execute(t, "", "remove", sid)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestRemoveWithYes(t *testing.T) {
	setupHome(t)
	id := addCandidate(t, "Ada", "Engineer", "Python")

	out, err := execute(t, "", "remove", strconv.FormatInt(id, 10), "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "Are you sure")
	assert.Contains(t, out, "Removed Ada")
}

func TestClear(t *testing.T) {
	setupHome(t)
	addCandidate(t, "Ada", "Engineer", "Python")
	addCandidate(t, "Lee", "Designer", "Design")

	out, err := execute(t, "", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	out, err = execute(t, "", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All candidates deleted")

	out, err = execute(t, "", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "already empty")
}

func TestConfirmDestructiveDisabled(t *testing.T) {
	setupHome(t)
	id := addCandidate(t, "Ada", "Engineer", "Python")

	_, err := execute(t, "", "config", "set", "--key", "confirm_destructive", "--value", "false")
	require.NoError(t, err)

	out, err := execute(t, "", "remove", strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Contains(t, out, "Removed Ada")
}

func TestExportImportJSON(t *testing.T) {
	setupHome(t)
	addCandidate(t, "Ada", "Engineer", "Python")
	id := addCandidate(t, "Lee", "Designer", "Design")
	_, err := execute(t, "", "move", strconv.FormatInt(id, 10), "--to", "hired")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "board.json")
	_, err = execute(t, "", "export", "--output", file)
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	exported, dropped, err := candidate.Decode(data)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, exported, 2)

	// Import into a fresh board
	setupHome(t)
	out, err := execute(t, "", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 candidates")

	out, err = execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied (1)")
	assert.Contains(t, out, "Hired (1)")
}

func TestExportImportYAML(t *testing.T) {
	setupHome(t)
	addCandidate(t, "Ada", "Engineer", "Python")

	out, err := execute(t, "", "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Ada")
	assert.Contains(t, out, "status: applied")

	file := filepath.Join(t.TempDir(), "board.yaml")
	content := `- name: Lee
  role: Designer
  skill: Design
  status: Interview
- name: ""
  role: Nobody
  status: applied
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	out, err = execute(t, "", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 candidates (1 skipped)")

	out, err = execute(t, "", "list", "--search", "lee")
	require.NoError(t, err)
	assert.Contains(t, out, "Interview (1)")
	assert.Contains(t, out, "Hire Candidate")

	_, err = execute(t, "", "export", "--format", "xml")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestStatsCommand(t *testing.T) {
	setupHome(t)
	addCandidate(t, "Ada", "Engineer", "Python")
	id := addCandidate(t, "Lee", "Designer", "Design")
	_, err := execute(t, "", "move", strconv.FormatInt(id, 10), "--to", "hired")
	require.NoError(t, err)

	out, err := execute(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Candidates: 2")
	assert.Contains(t, out, "Hire Rate: 50.0%")
	assert.Contains(t, out, "Python: 1")
	assert.Contains(t, out, "Last Saved: ")
}

func TestCalculateStats(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	candidates := []models.Candidate{
		{ID: 1, Name: "Ada", Role: "Engineer", Skill: "python", Rating: 5, Status: models.StatusApplied, Date: now.Add(-time.Hour)},
		{ID: 2, Name: "Lee", Role: "Designer", Skill: "Python", Rating: 3, Status: models.StatusInterview, Date: now.Add(-48 * time.Hour)},
		{ID: 3, Name: "Kim", Role: "Manager", Rating: 4, Status: models.StatusHired},
		{ID: 4, Name: "Old", Role: "Intern", Skill: "React", Status: models.StatusApplied, Date: now.Add(-60 * 24 * time.Hour)},
	}

	stats := calculateStats(candidates, now)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Hired)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 2, stats.ByStage[models.StatusApplied])
	assert.InDelta(t, 50.0, stats.InterviewRate, 0.001)
	assert.InDelta(t, 25.0, stats.HireRate, 0.001)
	// A zero rating counts as the default of 3
	assert.InDelta(t, 3.75, stats.AvgRating, 0.001)

	require.NotEmpty(t, stats.Skills)
	assert.Equal(t, SkillCount{Skill: "Python", Count: 2}, stats.Skills[0])

	require.Len(t, stats.RecentActivity, 2)
	assert.Contains(t, stats.RecentActivity[0].Description, "Ada")
}

func TestConfigSetAndShow(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "", "config", "set", "--key", "default_view", "--value", "list")
	require.NoError(t, err)

	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "talentFlowData")
	assert.Contains(t, out, "list")

	_, err = execute(t, "", "config", "set", "--key", "default_view", "--value", "grid")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)

	_, err = execute(t, "", "config", "set", "--key", "openai_key", "--value", "x")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}
