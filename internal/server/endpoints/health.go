package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/svcctx"
)

// HealthResponse is the response for health check endpoints.
type HealthResponse struct {
	Status     string `json:"status"`
	Extraction string `json:"extraction,omitempty"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresInit() bool { return false }

func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// ReadyEndpoint handles GET /ready.
type ReadyEndpoint struct{}

func (e *ReadyEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/ready", e.handler
}

func (e *ReadyEndpoint) RequiresInit() bool { return false }

func (e *ReadyEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Extraction: "ok"}

	// Offline review still works without the extraction service, but a
	// server without it is degraded for live analysis.
	if svcctx.AnalyzerFrom(r.Context()) == nil {
		resp.Status = "degraded"
		resp.Extraction = "not_configured"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ReadyEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check server readiness (includes extraction service)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/ready", &resp); err != nil {
				return err
			}
			fmt.Printf("Status:     %s\n", resp.Status)
			if resp.Extraction != "" {
				fmt.Printf("Extraction: %s\n", resp.Extraction)
			}
			return nil
		},
	}
}

// StatusResponse is the detailed status response.
type StatusResponse struct {
	Server     string           `json:"server"`
	Extraction ExtractionStatus `json:"extraction"`
	Session    SessionStatus    `json:"session"`
}

// ExtractionStatus shows extraction service configuration.
type ExtractionStatus struct {
	Configured bool   `json:"configured"`
	Endpoint   string `json:"endpoint,omitempty"`
	Classifier string `json:"classifier"`
	Analyzers  int    `json:"analyzers"`
}

// SessionStatus shows the active review session, if any.
type SessionStatus struct {
	Active bool   `json:"active"`
	Label  string `json:"label,omitempty"`
	Fields int    `json:"fields"`
}

// StatusEndpoint handles GET /status.
type StatusEndpoint struct{}

func (e *StatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/status", e.handler
}

func (e *StatusEndpoint) RequiresInit() bool { return false }

func (e *StatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{Server: "running"}

	if mgr := svcctx.ConfigFrom(r.Context()); mgr != nil {
		cfg := mgr.Get()
		resp.Extraction.Endpoint = config.ResolveEnvVars(cfg.Service.Endpoint)
		resp.Extraction.Classifier = cfg.ClassifierID
		resp.Extraction.Analyzers = len(cfg.Analyzers)
	}
	resp.Extraction.Configured = svcctx.AnalyzerFrom(r.Context()) != nil

	if session := svcctx.SessionFrom(r.Context()); session != nil {
		if a, _, ok := session.Current(); ok {
			resp.Session.Active = true
			resp.Session.Label = a.Label
			resp.Session.Fields = len(a.Fields)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *StatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get detailed server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StatusResponse
			if err := client.Get(cmd.Context(), "/status", &resp); err != nil {
				return err
			}
			fmt.Printf("Server: %s\n", resp.Server)
			fmt.Printf("Extraction:\n")
			fmt.Printf("  Configured: %t\n", resp.Extraction.Configured)
			if resp.Extraction.Endpoint != "" {
				fmt.Printf("  Endpoint:   %s\n", resp.Extraction.Endpoint)
			}
			fmt.Printf("  Classifier: %s\n", resp.Extraction.Classifier)
			fmt.Printf("  Analyzers:  %d\n", resp.Extraction.Analyzers)
			fmt.Printf("Session:\n")
			fmt.Printf("  Active: %t\n", resp.Session.Active)
			if resp.Session.Active {
				fmt.Printf("  Label:  %s\n", resp.Session.Label)
				fmt.Printf("  Fields: %d\n", resp.Session.Fields)
			}
			return nil
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
