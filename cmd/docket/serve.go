package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/docketlabs/docket/docs/swagger" // generated swagger spec
	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/home"
	"github.com/docketlabs/docket/internal/server"
	"github.com/docketlabs/docket/internal/server/endpoints"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Docket server",
	Long: `Start the Docket HTTP server.

The server hosts the review UI and the review API. Submitted documents are
classified and analyzed by the configured extraction service; without
credentials the server still supports offline review of saved results.

The server provides:
  - /            - Review UI
  - /api/review  - Review session API
  - /health      - Basic server health check
  - /ready       - Readiness check (includes extraction service status)

Examples:
  docket serve                    # Start on default port 8080
  docket serve --port 3000        # Start on custom port
  docket serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Without --config, prefer the home config file when it exists.
		path := cfgFile
		if path == "" && h.ConfigExists() {
			path = h.ConfigPath()
		}
		mgr, err := config.NewManager(path)
		if err != nil {
			return err
		}
		mgr.WatchConfig()

		// Create server
		srv, err := server.New(server.Config{
			Host:            serveHost,
			Port:            servePort,
			ConfigManager:   mgr,
			Home:            h,
			SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
			Logger:          logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
