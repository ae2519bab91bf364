package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/svcctx"
)

// SessionResponse is the full state of the active review session.
type SessionResponse struct {
	ReviewResponse
	PageCount int           `json:"page_count"`
	Usage     UsageResponse `json:"usage"`
}

// GetReviewEndpoint handles GET /api/review.
type GetReviewEndpoint struct{}

var _ api.Endpoint = (*GetReviewEndpoint)(nil)

func (e *GetReviewEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review", e.handler
}

func (e *GetReviewEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Get the active review session
//	@Description	Summarize the analysis currently loaded for review, with page count, usage, and cost estimate
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review [get]
func (e *GetReviewEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, SessionResponse{
		ReviewResponse: reviewSummary(a, true),
		PageCount:      session.PageCount(),
		Usage:          usageResponse(a, mgr.Get()),
	})
}

func (e *GetReviewEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active review session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SessionResponse
			if err := client.Get(cmd.Context(), "/api/review", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ClearResponse confirms a session clear.
type ClearResponse struct {
	Status string `json:"status"`
}

// ClearReviewEndpoint handles DELETE /api/review.
type ClearReviewEndpoint struct{}

var _ api.Endpoint = (*ClearReviewEndpoint)(nil)

func (e *ClearReviewEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/review", e.handler
}

func (e *ClearReviewEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Clear the review session
//	@Description	Drop the loaded analysis and any rendered pages
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	ClearResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review [delete]
func (e *ClearReviewEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	session := svcctx.SessionFrom(r.Context())
	if session == nil {
		writeError(w, http.StatusServiceUnavailable, "session not initialized")
		return
	}

	session.Clear()
	writeJSON(w, http.StatusOK, ClearResponse{Status: "cleared"})
}

func (e *ClearReviewEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the active review session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/review"); err != nil {
				return err
			}
			cmd.Println("Review session cleared")
			return nil
		},
	}
}
