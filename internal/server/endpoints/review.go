package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/review"
	"github.com/docketlabs/docket/internal/svcctx"
)

// ReviewResponse summarizes the analysis loaded into the review session.
type ReviewResponse struct {
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence,omitempty"`
	AnalyzerID string   `json:"analyzer_id"`
	FieldCount int      `json:"field_count"`
	Cached     bool     `json:"cached"`
}

func reviewSummary(a *review.Analysis, cached bool) ReviewResponse {
	return ReviewResponse{
		Label:      a.Label,
		Confidence: a.Confidence,
		AnalyzerID: a.AnalyzerID,
		FieldCount: len(a.Fields),
		Cached:     cached,
	}
}

// readFilePart reads one uploaded file from a parsed multipart form.
func readFilePart(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

// writeRunError maps pipeline failures to HTTP statuses. Documents the
// pipeline cannot review are 422; upstream service failures are 502.
func writeRunError(w http.ResponseWriter, err error) {
	var unmapped *review.UnmappedLabelError
	switch {
	case errors.Is(err, review.ErrNoLabel), errors.Is(err, review.ErrNoFields), errors.As(err, &unmapped):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

// SubmitReviewEndpoint handles POST /api/review with a multipart PDF upload.
type SubmitReviewEndpoint struct{}

var _ api.Endpoint = (*SubmitReviewEndpoint)(nil)

func (e *SubmitReviewEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/review", e.handler
}

func (e *SubmitReviewEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Submit a document for review
//	@Description	Classify an uploaded PDF, run the matching analyzer, and load the result into the review session
//	@Tags			review
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF document to analyze"
//	@Param			zoom	formData	number	false	"Pre-render pages at this zoom factor"
//	@Success		200		{object}	ReviewResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/review [post]
func (e *SubmitReviewEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	mgr := svcctx.ConfigFrom(r.Context())
	session := svcctx.SessionFrom(r.Context())
	renderer := svcctx.RendererFrom(r.Context())
	if mgr == nil || session == nil || renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "review services not initialized")
		return
	}
	analyzer := svcctx.AnalyzerFrom(r.Context())
	if analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, "extraction service not configured")
		return
	}

	cfg := mgr.Get()
	maxBytes := cfg.MaxFileBytes()

	// Cap the request body a little above the document limit so multipart
	// framing doesn't trip the cap before the explicit size check.
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %dMB limit", cfg.Review.MaxFileMB))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	pdf, filename, err := readFilePart(r, "file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", filename))
		return
	}
	if int64(len(pdf)) > maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %dMB limit", cfg.Review.MaxFileMB))
		return
	}

	// Validate the optional pre-render zoom before any expensive work.
	zoom := 0.0
	if zs := r.FormValue("zoom"); zs != "" {
		z, err := strconv.ParseFloat(zs, 64)
		if err != nil || z <= 0 {
			writeError(w, http.StatusBadRequest, "zoom must be a positive number")
			return
		}
		zoom = z
	}

	pageCount, err := renderer.Validate(pdf)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("not a valid PDF: %v", err))
		return
	}

	key := review.LiveKey(pdf, cfg.ClassifierID, cfg.Analyzers)
	if a, _, ok := session.Analysis(key); ok {
		e.preRender(r, session, renderer, pdf, zoom)
		writeJSON(w, http.StatusOK, reviewSummary(a, true))
		return
	}

	runner := review.NewRunner(analyzer, cfg.ClassifierID, cfg.Analyzers, svcctx.LoggerFrom(r.Context()))
	a, err := runner.Run(r.Context(), pdf)
	if err != nil {
		writeRunError(w, err)
		return
	}

	session.SetAnalysis(key, a, pdf, pageCount)
	e.preRender(r, session, renderer, pdf, zoom)
	writeJSON(w, http.StatusOK, reviewSummary(a, false))
}

// preRender warms the render slot when the submitter asked for a zoom.
// Best effort: the pages endpoints retry and surface any render error.
func (e *SubmitReviewEndpoint) preRender(r *http.Request, session *review.Session, renderer svcctx.Renderer, pdf []byte, zoom float64) {
	if zoom <= 0 {
		return
	}
	if _, err := ensurePages(r.Context(), session, renderer, pdf, zoom); err != nil {
		if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
			logger.Warn("pre-render failed", "error", err)
		}
	}
}

func (e *SubmitReviewEndpoint) Command(getServerURL func() string) *cobra.Command {
	var zoom float64
	cmd := &cobra.Command{
		Use:   "submit <file.pdf>",
		Short: "Analyze a PDF document for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			files := []api.FileField{{Field: "file", Filename: filepath.Base(args[0]), Content: pdf}}
			var form map[string]string
			if cmd.Flags().Changed("zoom") {
				form = map[string]string{"zoom": strconv.FormatFloat(zoom, 'g', -1, 64)}
			}
			var resp ReviewResponse
			if err := client.PostMultipart(cmd.Context(), "/api/review", files, form, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Pre-render pages at this zoom factor")
	return cmd
}
