package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sajeel/daily-tracker/internal/database"
	"github.com/sajeel/daily-tracker/internal/mcp"
	"github.com/sajeel/daily-tracker/internal/services"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server on stdin/stdout.

AVAILABLE TOOLS:

  get_tracker    Get a person's record for a day
  save_tracker   Replace a person's record for a day
  get_streaks    Salah, quran and exercise streaks
  get_weekly     Seven day overview
  get_partner    Partner's summary for today`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Migrate(database.DB); err != nil {
			return err
		}

		server, err := mcp.NewServer(services.Trackers)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
