package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/home"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the docket home",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		if h.ConfigExists() && !configForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", h.ConfigPath())
		}

		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", h.ConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
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

		cfg := mgr.Get()
		cmd.Printf("classifier_id: %s\n", cfg.ClassifierID)
		cmd.Printf("analyzers:\n")
		for label, id := range cfg.Analyzers {
			cmd.Printf("  %s: %s\n", label, id)
		}
		cmd.Printf("review:\n")
		cmd.Printf("  zoom: %g\n", cfg.Review.Zoom)
		cmd.Printf("  max_file_mb: %d\n", cfg.Review.MaxFileMB)
		// Secrets stay as ${ENV_VAR} references; never print resolved values.
		cmd.Printf("service:\n")
		cmd.Printf("  endpoint: %s\n", cfg.Service.Endpoint)
		cmd.Printf("  api_version: %s\n", cfg.Service.APIVersion)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
