package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sajeel/daily-tracker/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Migrate(database.DB); err != nil {
			color.Red("✗ Migration failed")
			return fmt.Errorf("migrate: %w", err)
		}
		color.Green("✓ Database is up to date")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint("tables: daily_trackers, tracker_goals"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
