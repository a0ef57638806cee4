package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/khrees2412/talentflow/internal/candidate"
	"github.com/khrees2412/talentflow/internal/config"
	"github.com/khrees2412/talentflow/internal/database"
	"github.com/khrees2412/talentflow/internal/logging"
	"go.uber.org/zap"
)

// App is the dependency container for the CLI application
type App struct {
	DB     *sql.DB
	Config *config.Config
	Logger *zap.Logger
	Store  *candidate.Store
}

// NewApp initializes and returns a new App instance with the candidate
// list already loaded.
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig

	logger, err := logging.New(cfg.LogLevel, config.ResolvePath(cfg.LogFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Open(config.ResolvePath(cfg.DatabaseFile))
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store := candidate.NewStore(database.NewKV(db), cfg.StorageKey, candidate.WithLogger(logger))
	res := store.Load()
	logger.Debug("app initialized",
		zap.Int("candidates", res.Loaded),
		zap.Int("dropped", res.Dropped),
		zap.Bool("corrupt", res.Corrupt))

	return &App{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Store:  store,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
