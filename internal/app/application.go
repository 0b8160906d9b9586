package app

import (
	"fmt"
	"log/slog"

	"github.com/drodr32/CTA-Database-App/ctadb"
	"github.com/drodr32/CTA-Database-App/internal/analysis"
)

// Config holds all the configuration settings for our Application. They are
// read from command-line flags and the environment when the Application
// starts.
type Config struct {
	DBPath string
	Env    ctadb.Env
}

// Application holds the dependencies for the command loop: configuration, a
// logger, the shared read-only store handle, and the analysis core built on
// top of it.
type Application struct {
	Config   Config
	Logger   *slog.Logger
	Store    *ctadb.Client
	Analyzer *analysis.Analyzer
}

// New opens the ridership store and wires the analyzer. Close releases the
// store once the session ends.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	store, err := ctadb.NewClient(ctadb.NewConfig(cfg.DBPath, cfg.Env, false))
	if err != nil {
		return nil, fmt.Errorf("error opening ridership store: %w", err)
	}

	return &Application{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Analyzer: analysis.NewAnalyzer(store, logger),
	}, nil
}

func (a *Application) Close() error {
	return a.Store.Close()
}
