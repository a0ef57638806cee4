package cmd

import (
	"fmt"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/khrees2412/talentflow/internal/board"
	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a candidate through the pipeline",
	Example: `  talentflow move 1717171717171 --next
  talentflow move 1717171717171 --prev
  talentflow move 1717171717171 --to hired`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		next, _ := cmd.Flags().GetBool("next")
		prev, _ := cmd.Flags().GetBool("prev")
		to, _ := cmd.Flags().GetString("to")

		if _, ok := a.Store.Get(id); !ok {
			return fmt.Errorf("%w: %d", app.ErrNotFound, id)
		}

		session := board.NewSession(a.Store, projection.ModeBoard, nil, a.Logger)
		var changed bool
		switch {
		case to != "":
			status, err := pipeline.Parse(to)
			if err != nil {
				return err
			}
			changed, err = session.RequestMoveTo(id, status)
			if err != nil {
				return err
			}
		case prev:
			changed, err = session.RequestMove(id, pipeline.Backward)
		case next:
			changed, err = session.RequestMove(id, pipeline.Forward)
		default:
			return fmt.Errorf("%w: one of --next, --prev or --to is required", app.ErrInvalidArgument)
		}
		if err != nil {
			return err
		}

		c, _ := a.Store.Get(id)
		if !changed {
			cmd.Printf("%s is already in %s\n", c.Name, pipeline.Label(c.Status))
			return nil
		}
		cmd.Printf("✓ Moved %s to %s\n", c.Name, pipeline.Label(c.Status))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)

	moveCmd.Flags().Bool("next", false, "Advance one stage")
	moveCmd.Flags().Bool("prev", false, "Go back one stage")
	moveCmd.Flags().String("to", "", "Move to a stage: applied, interview or hired")
	moveCmd.MarkFlagsMutuallyExclusive("next", "prev", "to")
}
