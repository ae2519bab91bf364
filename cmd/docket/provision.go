package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/extraction"
	"github.com/docketlabs/docket/internal/home"
)

var provisionReplace bool

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the classifier and analyzers on the extraction service",
	Long: `Provision creates the document classifier and the field-extraction
analyzers on the configured extraction service. It talks to the service
directly and does not need a running docket server.

Provisioning is idempotent: analyzers that already exist are left alone.
With --replace, existing analyzers are deleted and recreated from the
current templates instead.

Requires service credentials:
  export AZURE_AI_ENDPOINT=https://<resource>.services.ai.azure.com
  export AZURE_AI_API_KEY=xxx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if h.ConfigExists() {
				path = h.ConfigPath()
			}
		}
		mgr, err := config.NewManager(path)
		if err != nil {
			return err
		}

		extCfg := mgr.Get().ExtractionConfig()
		if extCfg.Endpoint == "" {
			return errors.New("extraction service not configured: set AZURE_AI_ENDPOINT and AZURE_AI_API_KEY")
		}
		client, err := extraction.New(extCfg)
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		run := extraction.Provision
		if provisionReplace {
			run = extraction.Reprovision
		}
		results, err := run(cmd.Context(), client, logger)
		if err != nil {
			return err
		}

		for _, res := range results {
			state := "exists"
			switch {
			case res.Replaced:
				state = "replaced"
			case res.Created:
				state = "created"
			}
			fmt.Printf("%-30s %s\n", res.AnalyzerID, state)
		}
		return nil
	},
}

func init() {
	provisionCmd.Flags().BoolVar(&provisionReplace, "replace", false, "delete and recreate analyzers that already exist")
	rootCmd.AddCommand(provisionCmd)
}
