package cmd

import (
	"fmt"
	"io"

	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/internal/tui"
)

func printCounts(w io.Writer, v projection.View) {
	c := v.Counts
	fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
		labelStyle.Render("Total:"), c.Total,
		labelStyle.Render("Hired:"), c.Hired,
		labelStyle.Render("Pending:"), c.Pending)
	if v.Term != "" {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Search %q matched %d", v.Term, c.Matched)))
	}
}

// printBoard prints one section per pipeline stage
func printBoard(w io.Writer, v projection.View) {
	for _, col := range v.Columns {
		fmt.Fprintf(w, "\n%s (%d)\n", labelStyle.Render(col.Title), col.Count)
		if col.Count == 0 {
			fmt.Fprintln(w, mutedStyle.Render("  No candidates"))
			continue
		}
		for _, card := range col.Cards {
			printCard(w, card)
		}
	}
}

func printCard(w io.Writer, card projection.Card) {
	fmt.Fprintf(w, "  • %s %s\n", card.Name, mutedStyle.Render(card.Role))
	fmt.Fprintf(w, "    %s %d | %s %s | %s\n",
		labelStyle.Render("ID:"), card.ID,
		tui.BadgeStyle(card.SkillColor).Render(tui.SkillText(card.Skill)),
		tui.StarString(card.Stars),
		tui.FormatDate(card.Date))
	if card.Next != nil {
		fmt.Fprintf(w, "    → %s\n", pipeline.ActionLabel(card.Status))
	} else {
		fmt.Fprintln(w, "    ✓ Hired")
	}
}

// printList prints the flat list in board order
func printList(w io.Writer, v projection.View) {
	if len(v.Cards) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No candidates"))
		return
	}
	fmt.Fprintln(w)
	for _, card := range v.Cards {
		fmt.Fprintf(w, "%-15d %-20s %-22s %s %s %s\n",
			card.ID,
			card.Name,
			card.Role,
			tui.BadgeStyle(card.SkillColor).Render(tui.SkillText(card.Skill)),
			tui.StarString(card.Stars),
			pipeline.Label(card.Status))
	}
}
