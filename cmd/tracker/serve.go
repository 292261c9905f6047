package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sajeel/daily-tracker/internal/database"
	"github.com/sajeel/daily-tracker/internal/logger"
	"github.com/sajeel/daily-tracker/internal/routes"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := database.Migrate(database.DB); err != nil {
		return err
	}

	app := routes.NewApp(cfg.StaticDir)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port, "timezone", cfg.Location().String())
		errCh <- app.Listen(":" + cfg.Port)
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(5 * time.Second)
	}
}
