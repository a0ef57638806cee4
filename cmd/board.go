package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/internal/tui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"tui", "ui"},
	Short:   "Open the interactive board",
	Long: `Launch the interactive board. Use the arrow keys to pick a card,
] or enter to advance it, [ to move it back, 1/2/3 to drop it on a column,
a to add, / to search, v to switch layouts and d to delete.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		mode, err := projection.ParseMode(a.Config.DefaultView)
		if err != nil {
			mode = projection.ModeBoard
		}

		p := tea.NewProgram(tui.New(a.Store, mode, a.Logger), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run board: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
