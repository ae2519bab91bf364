package main

import (
	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "docket",
	Short: "Interactive review of AI-extracted fields from scanned documents",
	Long: `Docket runs scanned documents (invoices, bank statements, loan forms)
through a classification and field-extraction service and serves the results
for interactive review.

The review flow includes:
  - Document classification with per-label analyzer routing
  - Field extraction with page regions for every value
  - Page rendering with extracted regions drawn on the source document
  - Offline review of previously saved analyzer results`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.docket/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "docket home directory (default: ~/.docket)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
