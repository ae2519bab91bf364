package main

import (
	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/server/endpoints"
)

var serverURL string

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review session commands",
}

var analyzersCmd = &cobra.Command{
	Use:   "analyzers",
	Short: "Analyzer management commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Health and swagger commands sit directly under api; review and
	// analyzer commands get their own groups.
	top := api.NewRegistry()
	top.Register(&endpoints.HealthEndpoint{})
	top.Register(&endpoints.ReadyEndpoint{})
	top.Register(&endpoints.StatusEndpoint{})
	top.Register(&endpoints.SwaggerEndpoint{})
	top.Register(&endpoints.SwaggerUIEndpoint{})
	top.Register(&endpoints.StaticEndpoint{})
	apiCmd := top.BuildCommands(getServerURL)

	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	for _, ep := range endpoints.ReviewCommands() {
		reviewCmd.AddCommand(ep.Command(getServerURL))
	}
	for _, ep := range endpoints.AnalyzerCommands() {
		analyzersCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(reviewCmd)
	apiCmd.AddCommand(analyzersCmd)
	rootCmd.AddCommand(apiCmd)
}
