// Package app defines the core App struct that composes the layer's main
// dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - the shared database handle
//   - repositories and services
//
// It provides constructors and shutdown logic so an embedding program can
// bring the whole data-access layer up and down cleanly.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/questions/internal/config"
	"github.com/deppfellow/questions/internal/database"
	"github.com/deppfellow/questions/internal/logger"
	"github.com/deppfellow/questions/internal/repository"
	"github.com/deppfellow/questions/internal/service"
)

// App is the application container that holds shared resources.
type App struct {
	// Config holds all environment/config values.
	Config *config.Config

	// Logger is the process-wide structured logger.
	Logger *zerolog.Logger

	// DB holds the shared SQLite handle.
	DB *database.Database

	// Repositories and Services are the two query layers; Services is what
	// embedding code normally talks to.
	Repositories *repository.Repositories
	Services     *service.Services
}

// New loads configuration from the environment and wires every layer.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig wires every layer on top of an already-built config.
// Tests use this to point the layer at a throwaway database.
func NewWithConfig(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.Log.Level, cfg.Primary.Env)

	db, err := database.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repos := repository.NewRepositories(db, log)
	services := service.NewServices(repos)

	return &App{
		Config:       cfg,
		Logger:       log,
		DB:           db,
		Repositories: repos,
		Services:     services,
	}, nil
}

// Shutdown releases the layer's resources. Currently that is the database
// handle.
func (a *App) Shutdown() error {
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
