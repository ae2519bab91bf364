// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/extraction"
	"github.com/docketlabs/docket/internal/home"
	"github.com/docketlabs/docket/internal/render"
	"github.com/docketlabs/docket/internal/review"
)

// Renderer rasterizes PDF pages for review display.
type Renderer interface {
	Validate(pdf []byte) (int, error)
	Pages(ctx context.Context, pdf []byte, zoom float64) ([]render.Page, error)
}

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Config *config.Manager
	// Session is the single active review slot.
	Session *review.Session
	// Analyzer submits documents for live analysis. Nil when the
	// extraction service is not configured (offline-only mode).
	Analyzer review.Analyzer
	// Extraction manages analyzers on the remote service. Nil when the
	// extraction service is not configured.
	Extraction *extraction.Client
	Renderer   Renderer
	Logger     *slog.Logger
	Home       *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// SessionFrom extracts the review session from context.
func SessionFrom(ctx context.Context) *review.Session {
	if s := ServicesFrom(ctx); s != nil {
		return s.Session
	}
	return nil
}

// AnalyzerFrom extracts the live analyzer from context.
func AnalyzerFrom(ctx context.Context) review.Analyzer {
	if s := ServicesFrom(ctx); s != nil {
		return s.Analyzer
	}
	return nil
}

// ExtractionFrom extracts the analyzer management client from context.
func ExtractionFrom(ctx context.Context) *extraction.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.Extraction
	}
	return nil
}

// RendererFrom extracts the page renderer from context.
func RendererFrom(ctx context.Context) Renderer {
	if s := ServicesFrom(ctx); s != nil {
		return s.Renderer
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
