package cmd

import (
	"log/slog"
	"net/http"

	"github.com/routinely/routinely/internal/config"
	"github.com/routinely/routinely/internal/logger"
	"github.com/routinely/routinely/internal/server"
	"github.com/routinely/routinely/internal/storage"
	"github.com/routinely/routinely/internal/storage/bolt"
	"github.com/routinely/routinely/internal/storage/sqlite"
	"github.com/routinely/routinely/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	serveLogJSON bool
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startServer()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "emit logs as JSON")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DBDriver == "sqlite" {
		return sqlite.Open(cfg.DBPath)
	}
	return bolt.Open(cfg.DBPath)
}

func startServer() error {
	level := slog.LevelInfo
	if serveDebug {
		level = slog.LevelDebug
	}
	if serveLogJSON {
		logger.InitJSON(level)
	} else {
		logger.Init(level)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tr, err := tracker.Open(store)
	if err != nil {
		return err
	}

	srv := server.New(tr)
	logger.Info("Starting server", "addr", cfg.ListenAddr, "driver", cfg.DBDriver, "db", cfg.DBPath)
	return http.ListenAndServe(cfg.ListenAddr, srv.Router())
}
