package endpoints

import (
	"github.com/docketlabs/docket/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},

		// Review session endpoints
		&SubmitReviewEndpoint{},
		&OfflineReviewEndpoint{},
		&GetReviewEndpoint{},
		&ClearReviewEndpoint{},

		// Field endpoints
		&ListFieldsEndpoint{},
		&GetFieldEndpoint{},

		// Page endpoints
		&ListReviewPagesEndpoint{},
		&ReviewPageImageEndpoint{},

		// Result and usage endpoints
		&ReviewResultEndpoint{},
		&ReviewUsageEndpoint{},

		// Analyzer management endpoints
		&ListAnalyzersEndpoint{},
		&ProvisionAnalyzersEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}

// ReviewCommands returns endpoints for review operations.
// This groups review-related commands under the "review" subcommand.
func ReviewCommands() []api.Endpoint {
	return []api.Endpoint{
		&SubmitReviewEndpoint{},
		&OfflineReviewEndpoint{},
		&GetReviewEndpoint{},
		&ClearReviewEndpoint{},
		&ListFieldsEndpoint{},
		&GetFieldEndpoint{},
		&ListReviewPagesEndpoint{},
		&ReviewPageImageEndpoint{},
		&ReviewResultEndpoint{},
		&ReviewUsageEndpoint{},
	}
}

// AnalyzerCommands returns endpoints for analyzer management.
// This groups analyzer-related commands under the "analyzers" subcommand.
func AnalyzerCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListAnalyzersEndpoint{},
		&ProvisionAnalyzersEndpoint{},
	}
}
