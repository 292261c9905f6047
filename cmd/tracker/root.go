package main

import (
	"fmt"

	"github.com/sajeel/daily-tracker/internal/config"
	"github.com/sajeel/daily-tracker/internal/database"
	"github.com/sajeel/daily-tracker/internal/logger"
	"github.com/sajeel/daily-tracker/internal/services"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Daily salah, quran and habit tracker for Sajeel and Mahrukh",
	Long: `Tracker records each day's prayers, Quran reading, habits, mood, notes
and goals for two people, and serves them to the web view over a JSON API.

COMMANDS:

  tracker serve      Run the HTTP API (default)
  tracker migrate    Create or update the database tables
  tracker mcp        Run the MCP server on stdio

CONFIGURATION (environment or .env):

  DATABASE_URL   SQLite file or postgres:// URL (default tracker.db)
  PORT           HTTP port (default 8080)
  TIMEZONE       IANA zone used for "today" (default Local)
  LOG_LEVEL      debug, info, warn or error (default info)
  LOG_FILE       Also write logs to this rotating file
  STATIC_DIR     Serve the web view from this directory`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := database.Connect(cfg); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		services.InitTrackers(database.DB, cfg.Location())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return database.Close()
	},
	RunE: runServe,
}
