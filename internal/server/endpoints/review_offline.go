package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/review"
	"github.com/docketlabs/docket/internal/svcctx"
)

// OfflineReviewEndpoint handles POST /api/review/offline. It loads a saved
// analyzer result document into the session without calling the extraction
// service, optionally alongside the source PDF for page rendering.
type OfflineReviewEndpoint struct{}

var _ api.Endpoint = (*OfflineReviewEndpoint)(nil)

func (e *OfflineReviewEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/review/offline", e.handler
}

func (e *OfflineReviewEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Load a saved analysis result
//	@Description	Load a previously saved analyzer result JSON into the review session, optionally with the source PDF
//	@Tags			review
//	@Accept			mpfd
//	@Produce		json
//	@Param			result	formData	file	true	"Saved analyzer result JSON"
//	@Param			file	formData	file	false	"Source PDF document"
//	@Success		200		{object}	ReviewResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/review/offline [post]
func (e *OfflineReviewEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	mgr := svcctx.ConfigFrom(r.Context())
	session := svcctx.SessionFrom(r.Context())
	renderer := svcctx.RendererFrom(r.Context())
	if mgr == nil || session == nil || renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "review services not initialized")
		return
	}

	cfg := mgr.Get()
	maxBytes := cfg.MaxFileBytes()

	// Result documents run large; allow the JSON and the PDF each up to the
	// document limit.
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxBytes+(1<<20))

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %dMB limit", 2*cfg.Review.MaxFileMB))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	result, _, err := readFilePart(r, "result")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no result file uploaded")
		return
	}
	if !gjson.ValidBytes(result) {
		writeError(w, http.StatusBadRequest, "result is not valid JSON")
		return
	}

	var pdf []byte
	if data, _, err := readFilePart(r, "file"); err == nil {
		pdf = data
	} else if !errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read file: %v", err))
		return
	}
	pageCount := 0
	if len(pdf) > 0 {
		if int64(len(pdf)) > maxBytes {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %dMB limit", cfg.Review.MaxFileMB))
			return
		}
		pageCount, err = renderer.Validate(pdf)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("not a valid PDF: %v", err))
			return
		}
	}

	key := review.OfflineKey(result, pdf)
	if a, _, ok := session.Analysis(key); ok {
		writeJSON(w, http.StatusOK, reviewSummary(a, true))
		return
	}

	a, err := review.Offline(gjson.ParseBytes(result))
	if err != nil {
		writeRunError(w, err)
		return
	}

	session.SetAnalysis(key, a, pdf, pageCount)
	writeJSON(w, http.StatusOK, reviewSummary(a, false))
}

func (e *OfflineReviewEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "offline <result.json> [document.pdf]",
		Short: "Load a saved analysis result for review",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			files := []api.FileField{{Field: "result", Filename: filepath.Base(args[0]), Content: result}}
			if len(args) == 2 {
				pdf, err := os.ReadFile(args[1])
				if err != nil {
					return err
				}
				files = append(files, api.FileField{Field: "file", Filename: filepath.Base(args[1]), Content: pdf})
			}

			client := api.NewClient(getServerURL())
			var resp ReviewResponse
			if err := client.PostMultipart(cmd.Context(), "/api/review/offline", files, nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
