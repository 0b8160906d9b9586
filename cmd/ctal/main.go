package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/drodr32/CTA-Database-App/ctadb"
	"github.com/drodr32/CTA-Database-App/internal/app"
	"github.com/drodr32/CTA-Database-App/internal/cli"
	"github.com/drodr32/CTA-Database-App/internal/logging"
)

func main() {
	// Optional .env next to the binary; flags still win over it.
	_ = godotenv.Load()

	defaultDB := os.Getenv("CTA_DB")
	if defaultDB == "" {
		defaultDB = "CTA2_L_daily_ridership.db"
	}

	var cfg app.Config
	var env string
	var verbose bool

	flag.StringVar(&cfg.DBPath, "db", defaultDB, "Path to the CTA ridership SQLite database")
	flag.StringVar(&env, "env", string(ctadb.EnvDevelopment), "Environment (development|production)")
	flag.BoolVar(&verbose, "verbose", false, "Log at debug level")
	flag.Parse()
	cfg.Env = ctadb.Env(env)

	// Logs go to stderr so they never interleave with the report text.
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stderr, level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to open the ridership database", err,
			slog.String("db", cfg.DBPath))
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(application, logger, "application shutdown")

	session := cli.New(application, os.Stdin, os.Stdout)
	if err := session.Run(context.Background()); err != nil {
		logging.LogError(logger, "session ended with error", err)
		os.Exit(1)
	}
}
