package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	StorageKey         string `mapstructure:"storage_key"`
	DatabaseFile       string `mapstructure:"database_file"`
	DefaultView        string `mapstructure:"default_view"` // board, list
	LogLevel           string `mapstructure:"log_level"`    // debug, info, warn, error
	LogFile            string `mapstructure:"log_file"`
	ConfirmDestructive bool   `mapstructure:"confirm_destructive"`
}

// ValidKeys are the keys accepted by Set
var ValidKeys = []string{"storage_key", "database_file", "default_view", "log_level", "log_file", "confirm_destructive"}

var AppConfig *Config

// HomeDir returns the talentflow data directory. TALENTFLOW_HOME overrides
// the default of ~/.talentflow.
func HomeDir() (string, error) {
	if dir := os.Getenv("TALENTFLOW_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".talentflow"), nil
}

// Initialize loads or creates the configuration file
func Initialize() error {
	configDir, err := HomeDir()
	if err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.Reset()
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Environment overrides, e.g. TALENTFLOW_LOG_LEVEL=debug
	viper.SetEnvPrefix("TALENTFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("storage_key", "talentFlowData")
	viper.SetDefault("database_file", "talentflow.db")
	viper.SetDefault("default_view", "board")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "talentflow.log")
	viper.SetDefault("confirm_destructive", true)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if strings.TrimSpace(cfg.StorageKey) == "" {
		return fmt.Errorf("storage_key must not be empty")
	}
	AppConfig = cfg

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# TalentFlow Configuration
# Name of the storage entry holding the candidate list
storage_key: talentFlowData
database_file: talentflow.db

# Initial layout: board or list
default_view: board

# Logging: debug, info, warn, error
log_level: info
log_file: talentflow.log

# Ask before removing candidates or clearing the board
confirm_destructive: true
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	dir, _ := HomeDir()
	return filepath.Join(dir, "config.yaml")
}

// ResolvePath places relative file names inside the data directory
func ResolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	dir, _ := HomeDir()
	return filepath.Join(dir, name)
}
