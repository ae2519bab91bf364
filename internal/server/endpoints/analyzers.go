package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/extraction"
	"github.com/docketlabs/docket/internal/svcctx"
)

// AnalyzerSummary is one analyzer known to the extraction service.
type AnalyzerSummary struct {
	ID          string `json:"analyzer_id"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ListAnalyzersResponse is the response for listing analyzers.
type ListAnalyzersResponse struct {
	Analyzers []AnalyzerSummary `json:"analyzers"`
	Total     int               `json:"total"`
}

// ListAnalyzersEndpoint handles GET /api/analyzers.
type ListAnalyzersEndpoint struct{}

var _ api.Endpoint = (*ListAnalyzersEndpoint)(nil)

func (e *ListAnalyzersEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/analyzers", e.handler
}

func (e *ListAnalyzersEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List analyzers
//	@Description	List the analyzers registered with the extraction service
//	@Tags			analyzers
//	@Produce		json
//	@Success		200	{object}	ListAnalyzersResponse
//	@Failure		502	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/analyzers [get]
func (e *ListAnalyzersEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	client := svcctx.ExtractionFrom(r.Context())
	if client == nil {
		writeError(w, http.StatusServiceUnavailable, "extraction service not configured")
		return
	}

	result, err := client.ListAnalyzers(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to list analyzers: %v", err))
		return
	}

	var summaries []AnalyzerSummary
	for _, item := range result.Get("value").Array() {
		summaries = append(summaries, AnalyzerSummary{
			ID:          item.Get("analyzerId").String(),
			Description: item.Get("description").String(),
			Status:      item.Get("status").String(),
		})
	}
	writeJSON(w, http.StatusOK, ListAnalyzersResponse{Analyzers: summaries, Total: len(summaries)})
}

func (e *ListAnalyzersEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List analyzers registered with the extraction service",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListAnalyzersResponse
			if err := client.Get(cmd.Context(), "/api/analyzers", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ProvisionResponse reports the outcome of analyzer provisioning.
type ProvisionResponse struct {
	Results []extraction.ProvisionResult `json:"results"`
	Created int                          `json:"created"`
}

// ProvisionAnalyzersEndpoint handles POST /api/analyzers/provision.
type ProvisionAnalyzersEndpoint struct{}

var _ api.Endpoint = (*ProvisionAnalyzersEndpoint)(nil)

func (e *ProvisionAnalyzersEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/analyzers/provision", e.handler
}

func (e *ProvisionAnalyzersEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Provision analyzers
//	@Description	Register the review pipeline's analyzers and classifier with the extraction service, skipping any that already exist
//	@Tags			analyzers
//	@Produce		json
//	@Success		200	{object}	ProvisionResponse
//	@Failure		502	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/analyzers/provision [post]
func (e *ProvisionAnalyzersEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	client := svcctx.ExtractionFrom(r.Context())
	if client == nil {
		writeError(w, http.StatusServiceUnavailable, "extraction service not configured")
		return
	}

	results, err := extraction.Provision(r.Context(), client, svcctx.LoggerFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("provisioning failed: %v", err))
		return
	}

	created := 0
	for _, res := range results {
		if res.Created {
			created++
		}
	}
	writeJSON(w, http.StatusOK, ProvisionResponse{Results: results, Created: created})
}

func (e *ProvisionAnalyzersEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "Provision the review pipeline's analyzers on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ProvisionResponse
			if err := client.Post(cmd.Context(), "/api/analyzers/provision", nil, &resp); err != nil {
				return err
			}

			for _, res := range resp.Results {
				state := "exists"
				if res.Created {
					state = "created"
				}
				fmt.Printf("%-30s %s\n", res.AnalyzerID, state)
			}
			return nil
		},
	}
}
