package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/review"
	"github.com/docketlabs/docket/internal/svcctx"
)

// UsageResponse reports token usage for the active analysis. CostUSD is set
// only when both token prices are configured.
type UsageResponse struct {
	Models       []string `json:"models"`
	InputTokens  int      `json:"input_tokens"`
	OutputTokens int      `json:"output_tokens"`
	CostUSD      *float64 `json:"cost_usd,omitempty"`
}

func usageResponse(a *review.Analysis, cfg *config.Config) UsageResponse {
	resp := UsageResponse{
		Models:       a.Usage.Models,
		InputTokens:  a.Usage.InputTokens,
		OutputTokens: a.Usage.OutputTokens,
	}
	if cost, ok := review.EstimateCost(a.Usage, cfg.Pricing.InputPer1K, cfg.Pricing.OutputPer1K); ok {
		resp.CostUSD = &cost
	}
	return resp
}

// ReviewUsageEndpoint handles GET /api/review/usage.
type ReviewUsageEndpoint struct{}

var _ api.Endpoint = (*ReviewUsageEndpoint)(nil)

func (e *ReviewUsageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/usage", e.handler
}

func (e *ReviewUsageEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Get token usage
//	@Description	Summarize token usage for the active analysis, with a cost estimate when prices are configured
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	UsageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/usage [get]
func (e *ReviewUsageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	mgr := svcctx.ConfigFrom(r.Context())
	session := svcctx.SessionFrom(r.Context())
	if mgr == nil || session == nil {
		writeError(w, http.StatusServiceUnavailable, "review services not initialized")
		return
	}

	a, _, ok := session.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no active review session")
		return
	}

	writeJSON(w, http.StatusOK, usageResponse(a, mgr.Get()))
}

func (e *ReviewUsageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show token usage for the active review",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp UsageResponse
			if err := client.Get(cmd.Context(), "/api/review/usage", &resp); err != nil {
				return err
			}

			fmt.Printf("Models:         %s\n", strings.Join(resp.Models, ", "))
			fmt.Printf("Input tokens:   %d\n", resp.InputTokens)
			fmt.Printf("Output tokens:  %d\n", resp.OutputTokens)
			if resp.CostUSD != nil {
				fmt.Printf("Estimated cost: $%.4f\n", *resp.CostUSD)
			}
			return nil
		},
	}
}
