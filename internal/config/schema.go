package config

import (
	"github.com/docketlabs/docket/internal/extraction"
)

// Config holds docket configuration.
// Loaded from config.yaml in the working directory or ~/.docket.
type Config struct {
	Service      ServiceCfg        `mapstructure:"service" yaml:"service"`
	ClassifierID string            `mapstructure:"classifier_id" yaml:"classifier_id"`
	Analyzers    map[string]string `mapstructure:"analyzers" yaml:"analyzers"`
	Review       ReviewCfg         `mapstructure:"review" yaml:"review"`
	Pricing      PricingCfg        `mapstructure:"pricing" yaml:"pricing"`
}

// ServiceCfg configures the extraction service connection.
type ServiceCfg struct {
	// Endpoint is the extraction service base URL (supports ${ENV_VAR} syntax)
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// APIKey is the subscription key (supports ${ENV_VAR} syntax)
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	// APIVersion is the service API version query parameter
	APIVersion string `mapstructure:"api_version" yaml:"api_version"`
	// UserAgent is sent as x-ms-useragent on every request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// ReviewCfg tunes the review pipeline.
type ReviewCfg struct {
	// Zoom is the page render zoom factor (1.0 = 72 DPI)
	Zoom float64 `mapstructure:"zoom" yaml:"zoom"`
	// MaxFileMB caps uploaded PDF size in megabytes
	MaxFileMB int `mapstructure:"max_file_mb" yaml:"max_file_mb"`
}

// PricingCfg holds per-1K-token prices for cost estimates.
// Estimates are produced only when both prices are set positive.
type PricingCfg struct {
	InputPer1K  float64 `mapstructure:"input_per_1k" yaml:"input_per_1k"`
	OutputPer1K float64 `mapstructure:"output_per_1k" yaml:"output_per_1k"`
}

// DefaultConfig returns configuration with sensible defaults. The analyzer
// map routes each classifier label to the analyzer that extracts its fields.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceCfg{
			Endpoint:   "${AZURE_AI_ENDPOINT}",
			APIKey:     "${AZURE_AI_API_KEY}",
			APIVersion: extraction.DefaultAPIVersion,
			UserAgent:  extraction.DefaultUserAgent,
		},
		ClassifierID: extraction.ClassifierID,
		Analyzers: map[string]string{
			"Invoices":              extraction.AnalyzerInvoicesID,
			"Bank Statements":       extraction.AnalyzerBankStatementsID,
			"Loan Application Form": extraction.AnalyzerLoanID,
		},
		Review: ReviewCfg{
			Zoom:      2.0,
			MaxFileMB: 20,
		},
	}
}

// MaxFileBytes returns the upload size cap in bytes.
func (c *Config) MaxFileBytes() int64 {
	return int64(c.Review.MaxFileMB) << 20
}
