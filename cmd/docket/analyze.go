package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/extraction"
	"github.com/docketlabs/docket/internal/home"
	"github.com/docketlabs/docket/internal/review"
)

var analyzeSave string

type analyzeField struct {
	Name    string `json:"name" yaml:"name"`
	Value   any    `json:"value" yaml:"value"`
	Regions int    `json:"regions" yaml:"regions"`
}

type analyzeResult struct {
	Label        string         `json:"label" yaml:"label"`
	Confidence   *float64       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	AnalyzerID   string         `json:"analyzer_id" yaml:"analyzer_id"`
	Fields       []analyzeField `json:"fields" yaml:"fields"`
	InputTokens  int            `json:"input_tokens" yaml:"input_tokens"`
	OutputTokens int            `json:"output_tokens" yaml:"output_tokens"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf>",
	Short: "Classify and extract a document without a running server",
	Long: `Analyze runs a document through the review pipeline directly: classify,
route the label to an analyzer, extract fields, and print them.

Use --save to keep the raw analyzer result; a saved result can be reloaded
later with "docket api review offline".`,
	Args: cobra.ExactArgs(1),
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

		pdf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg := mgr.Get()
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		runner := review.NewRunner(client, cfg.ClassifierID, cfg.Analyzers, logger)
		a, err := runner.Run(cmd.Context(), pdf)
		if err != nil {
			return err
		}

		if analyzeSave != "" {
			if err := os.WriteFile(analyzeSave, []byte(a.Result.Raw), 0o644); err != nil {
				return fmt.Errorf("failed to save result: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Saved raw result to %s\n", analyzeSave)
		}

		out := analyzeResult{
			Label:        a.Label,
			Confidence:   a.Confidence,
			AnalyzerID:   a.AnalyzerID,
			Fields:       make([]analyzeField, 0, len(a.Fields)),
			InputTokens:  a.Usage.InputTokens,
			OutputTokens: a.Usage.OutputTokens,
		}
		for _, f := range a.Fields {
			out.Fields = append(out.Fields, analyzeField{
				Name:    f.Name,
				Value:   f.Value,
				Regions: len(f.Regions),
			})
		}
		return api.Output(out)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSave, "save", "", "Write the raw analyzer result JSON to this file")
	rootCmd.AddCommand(analyzeCmd)
}
