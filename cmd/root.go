package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentflow",
	Short: "Hiring pipeline board for the terminal",
	Long: `TalentFlow tracks candidates through a three-stage hiring pipeline:
applied, interview and hired. Add candidates, move them between stages,
search the board and open the interactive board with 'talentflow board'.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes one command line and releases the app it opened
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	executed, err := rootCmd.ExecuteContextC(ctx)

	// Cleanup: close app resources
	if executed != nil && executed.Context() != nil {
		if a := app.GetAppFromContext(executed.Context()); a != nil {
			if cerr := a.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close app: %w", cerr)
			}
		}
	}
	return err
}

// getApp returns the app stored by PersistentPreRunE
func getApp(cmd *cobra.Command) (*app.App, error) {
	a := app.GetAppFromContext(cmd.Context())
	if a == nil {
		return nil, app.ErrNotInitialized
	}
	return a, nil
}

// parseID reads a candidate id argument
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: candidate ID must be a number, got %q", app.ErrInvalidArgument, raw)
	}
	return id, nil
}
