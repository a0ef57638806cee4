package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/khrees2412/talentflow/internal/config"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		cfg := a.Config

		cmd.Println(titleStyle.Render("Configuration"))
		cmd.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		cmd.Printf("%s %s\n", labelStyle.Render("Storage Key:"), cfg.StorageKey)
		cmd.Printf("%s %s\n", labelStyle.Render("Database:"), config.ResolvePath(cfg.DatabaseFile))
		cmd.Printf("%s %s\n", labelStyle.Render("Default View:"), cfg.DefaultView)
		cmd.Printf("%s %s\n", labelStyle.Render("Log Level:"), cfg.LogLevel)
		cmd.Printf("%s %s\n", labelStyle.Render("Log File:"), config.ResolvePath(cfg.LogFile))
		if cfg.ConfirmDestructive {
			cmd.Printf("%s %s\n", labelStyle.Render("Confirm Deletes:"), "✓ Enabled")
		} else {
			cmd.Printf("%s %s\n", labelStyle.Render("Confirm Deletes:"), "✗ Disabled")
		}
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  talentflow config set --key default_view --value list
  talentflow config set --key log_level --value debug
  talentflow config set --key confirm_destructive --value false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("%w: both --key and --value are required", app.ErrInvalidArgument)
		}

		// Validate key
		if !slices.Contains(config.ValidKeys, key) {
			return fmt.Errorf("%w: key must be one of %v", app.ErrInvalidArgument, config.ValidKeys)
		}
		if err := validateConfigValue(key, value); err != nil {
			return err
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("update config: %w", err)
		}
		a.Logger.Info("config updated", zap.String("key", key))

		cmd.Printf("✓ Configuration updated: %s\n", key)

		// Reload config
		if err := config.Initialize(); err != nil {
			cmd.PrintErrf("Warning: Could not reload config: %v\n", err)
		}
		return nil
	},
}

func validateConfigValue(key, value string) error {
	switch key {
	case "default_view":
		if _, err := projection.ParseMode(value); err != nil {
			return fmt.Errorf("%w: %v", app.ErrInvalidArgument, err)
		}
	case "confirm_destructive":
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: confirm_destructive must be true or false", app.ErrInvalidArgument)
		}
	case "log_level":
		if !slices.Contains([]string{"debug", "info", "warn", "error"}, value) {
			return fmt.Errorf("%w: log_level must be debug, info, warn or error", app.ErrInvalidArgument)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	// Flags for set command
	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
