package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/svcctx"
)

// ReviewResultEndpoint handles GET /api/review/result. It returns the raw
// analyzer result document exactly as the service produced it, so a live
// run can be saved and reloaded offline later.
type ReviewResultEndpoint struct{}

var _ api.Endpoint = (*ReviewResultEndpoint)(nil)

func (e *ReviewResultEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/result", e.handler
}

func (e *ReviewResultEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Download the raw analyzer result
//	@Description	Return the analyzer result document for the active review as produced by the service
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	object
//	@Failure		404	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/result [get]
func (e *ReviewResultEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	session := svcctx.SessionFrom(r.Context())
	if session == nil {
		writeError(w, http.StatusServiceUnavailable, "session not initialized")
		return
	}

	a, _, ok := session.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no active review session")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(a.Result.Raw))
}

func (e *ReviewResultEndpoint) Command(getServerURL func() string) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Download the raw analyzer result document",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/review/result")
			if err != nil {
				return err
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", output, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")
	return cmd
}
