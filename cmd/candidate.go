package cmd

import (
	"fmt"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/khrees2412/talentflow/internal/board"
	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/internal/tui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a candidate to the Applied column",
	Example: `  talentflow add --name "Ada Lovelace" --role Engineer --skill Python --rating 5
  talentflow add --name Lee --role Designer`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")
		skill, _ := cmd.Flags().GetString("skill")
		rating, _ := cmd.Flags().GetInt("rating")

		c, err := a.Store.Add(name, role, skill, rating)
		if err != nil {
			return err
		}

		cmd.Printf("✓ Added %s as %s (ID: %d)\n", c.Name, c.Role, c.ID)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		c, ok := a.Store.Get(id)
		if !ok {
			return fmt.Errorf("%w: %d", app.ErrNotFound, id)
		}
		card := projection.NewCard(c)

		cmd.Println(titleStyle.Render(c.Name))
		cmd.Printf("%s %s\n", labelStyle.Render("Role:"), valueStyle.Render(c.Role))
		cmd.Printf("%s %s\n", labelStyle.Render("Skill:"), tui.BadgeStyle(card.SkillColor).Render(tui.SkillText(c.Skill)))
		cmd.Printf("%s %s\n", labelStyle.Render("Rating:"), tui.StarString(card.Stars))
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), pipeline.Label(c.Status))
		cmd.Printf("%s %s\n", labelStyle.Render("Added:"), tui.FormatDate(c.Date))
		cmd.Printf("%s %d\n", labelStyle.Render("ID:"), c.ID)
		if card.Next != nil {
			cmd.Printf("\nNext step: %s (talentflow move %d --next)\n", pipeline.ActionLabel(c.Status), c.ID)
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a candidate from the board",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		c, ok := a.Store.Get(id)
		if !ok {
			return fmt.Errorf("%w: %d", app.ErrNotFound, id)
		}

		session := board.NewSession(a.Store, projection.ModeBoard, confirmer(cmd, a), a.Logger)
		removed, err := session.RequestDelete(id)
		if err != nil {
			return fmt.Errorf("remove candidate: %w", err)
		}
		if !removed {
			cmd.Println("Cancelled")
			return nil
		}

		cmd.Printf("✓ Removed %s\n", c.Name)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every candidate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if a.Store.Len() == 0 {
			cmd.Println("The board is already empty")
			return nil
		}

		session := board.NewSession(a.Store, projection.ModeBoard, confirmer(cmd, a), a.Logger)
		cleared, err := session.RequestClearAll()
		if err != nil {
			return fmt.Errorf("clear candidates: %w", err)
		}
		if !cleared {
			cmd.Println("Cancelled")
			return nil
		}

		cmd.Println("✓ All candidates deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)

	addCmd.Flags().String("name", "", "Candidate name (required)")
	addCmd.Flags().String("role", "", "Role applied for (required)")
	addCmd.Flags().String("skill", "", "Primary skill, e.g. React, Design, Python")
	addCmd.Flags().Int("rating", 0, "Rating from 1 to 5 (default 3)")

	removeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	clearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
