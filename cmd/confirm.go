package cmd

import (
	"bufio"
	"strings"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/khrees2412/talentflow/internal/board"
	"github.com/spf13/cobra"
)

// confirmer asks on stdin before destructive actions unless --yes was
// given or confirm_destructive is off.
func confirmer(cmd *cobra.Command, a *app.App) board.Confirmer {
	yes, _ := cmd.Flags().GetBool("yes")
	if yes || (a.Config != nil && !a.Config.ConfirmDestructive) {
		return board.AlwaysConfirm
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return func(prompt string) bool {
		cmd.Printf("%s [y/N]: ", prompt)
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
