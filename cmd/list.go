package cmd

import (
	"github.com/khrees2412/talentflow/internal/board"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the board",
	Long:    "Show candidates grouped by pipeline stage, or as a flat list with --view list",
	Example: `  talentflow list
  talentflow list --search eng
  talentflow list --view list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetString("view")
		if raw == "" {
			raw = a.Config.DefaultView
		}
		mode, err := projection.ParseMode(raw)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetString("search")

		session := board.NewSession(a.Store, mode, nil, a.Logger)
		session.SetSearchTerm(term)
		v := session.View()

		if v.Counts.Total == 0 {
			cmd.Println("No candidates yet. Add one with 'talentflow add --name NAME --role ROLE'")
			return nil
		}

		out := cmd.OutOrStdout()
		cmd.Println(titleStyle.Render("TalentFlow"))
		printCounts(out, v)
		if mode == projection.ModeList {
			printList(out, v)
		} else {
			printBoard(out, v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("search", "s", "", "Filter by name or role")
	listCmd.Flags().String("view", "", "Layout: board or list (default from config)")
}
