package endpoints

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/fields"
	"github.com/docketlabs/docket/internal/overlay"
	"github.com/docketlabs/docket/internal/render"
	"github.com/docketlabs/docket/internal/review"
	"github.com/docketlabs/docket/internal/svcctx"
)

// parseZoom reads the zoom query parameter, falling back to the configured
// review zoom.
func parseZoom(r *http.Request, fallback float64) (float64, error) {
	raw := r.URL.Query().Get("zoom")
	if raw == "" {
		return fallback, nil
	}
	zoom, err := strconv.ParseFloat(raw, 64)
	if err != nil || zoom <= 0 {
		return 0, fmt.Errorf("zoom must be a positive number")
	}
	return zoom, nil
}

// ensurePages returns the session's rendered pages for the document at the
// requested zoom, rendering on first use.
func ensurePages(ctx context.Context, session *review.Session, renderer svcctx.Renderer, pdf []byte, zoom float64) ([]render.Page, error) {
	key := review.RenderKey(pdf, zoom)
	if pages, ok := session.Pages(key); ok {
		return pages, nil
	}

	pages, err := renderer.Pages(ctx, pdf, zoom)
	if err != nil {
		return nil, err
	}
	session.SetPages(key, pages)
	return pages, nil
}

// PageSummary is a brief summary of one rendered page.
type PageSummary struct {
	Page   int `json:"page"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ListPagesResponse is the response for listing rendered pages.
type ListPagesResponse struct {
	Pages []PageSummary `json:"pages"`
	Total int           `json:"total"`
	Zoom  float64       `json:"zoom"`
}

// ListReviewPagesEndpoint handles GET /api/review/pages.
type ListReviewPagesEndpoint struct{}

var _ api.Endpoint = (*ListReviewPagesEndpoint)(nil)

func (e *ListReviewPagesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/pages", e.handler
}

func (e *ListReviewPagesEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		List rendered pages
//	@Description	Render the review document's pages and list their dimensions
//	@Tags			pages
//	@Produce		json
//	@Param			zoom	query		number	false	"Zoom factor (default from config)"
//	@Success		200		{object}	ListPagesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/review/pages [get]
func (e *ListReviewPagesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	mgr := svcctx.ConfigFrom(r.Context())
	session := svcctx.SessionFrom(r.Context())
	renderer := svcctx.RendererFrom(r.Context())
	if mgr == nil || session == nil || renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "review services not initialized")
		return
	}

	_, pdf, ok := session.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no active review session")
		return
	}
	if len(pdf) == 0 {
		writeError(w, http.StatusNotFound, "no document attached to this review")
		return
	}

	zoom, err := parseZoom(r, mgr.Get().Review.Zoom)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pages, err := ensurePages(r.Context(), session, renderer, pdf, zoom)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render pages: %v", err))
		return
	}

	summaries := make([]PageSummary, len(pages))
	for i, p := range pages {
		summaries[i] = PageSummary{Page: p.Number, Width: p.Width, Height: p.Height}
	}
	writeJSON(w, http.StatusOK, ListPagesResponse{Pages: summaries, Total: len(summaries), Zoom: zoom})
}

func (e *ListReviewPagesEndpoint) Command(getServerURL func() string) *cobra.Command {
	var zoom float64
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List rendered pages for the active review",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/review/pages"
			if zoom > 0 {
				path += fmt.Sprintf("?zoom=%g", zoom)
			}

			client := api.NewClient(getServerURL())
			var resp ListPagesResponse
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Zoom factor for rendering (default from config)")
	return cmd
}

// ReviewPageImageEndpoint handles GET /api/review/pages/{page_num}/image.
type ReviewPageImageEndpoint struct{}

var _ api.Endpoint = (*ReviewPageImageEndpoint)(nil)

func (e *ReviewPageImageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/pages/{page_num}/image", e.handler
}

func (e *ReviewPageImageEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Get a page image
//	@Description	Get the PNG raster for one page, optionally with a field's regions highlighted or scaled to a maximum width
//	@Tags			pages
//	@Produce		image/png
//	@Param			page_num	path	int		true	"Page number (1-indexed)"
//	@Param			field		query	int		false	"Highlight this field's regions (0-based index)"
//	@Param			width		query	int		false	"Scale down to at most this width in pixels"
//	@Param			zoom		query	number	false	"Zoom factor (default from config)"
//	@Success		200			{file}	binary
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Failure		503			{object}	ErrorResponse
//	@Router			/api/review/pages/{page_num}/image [get]
func (e *ReviewPageImageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	mgr := svcctx.ConfigFrom(r.Context())
	session := svcctx.SessionFrom(r.Context())
	renderer := svcctx.RendererFrom(r.Context())
	if mgr == nil || session == nil || renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "review services not initialized")
		return
	}

	pageNum, err := strconv.Atoi(r.PathValue("page_num"))
	if err != nil || pageNum < 1 {
		writeError(w, http.StatusBadRequest, "page_num must be a positive integer")
		return
	}

	a, pdf, ok := session.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no active review session")
		return
	}
	if len(pdf) == 0 {
		writeError(w, http.StatusNotFound, "no document attached to this review")
		return
	}

	zoom, err := parseZoom(r, mgr.Get().Review.Zoom)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pages, err := ensurePages(r.Context(), session, renderer, pdf, zoom)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render pages: %v", err))
		return
	}
	if pageNum > len(pages) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("page %d not found", pageNum))
		return
	}
	page := pages[pageNum-1]

	fieldParam := r.URL.Query().Get("field")
	widthParam := r.URL.Query().Get("width")

	// Untouched pages are served as stored, without a decode round trip.
	if fieldParam == "" && widthParam == "" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(page.PNG)
		return
	}

	img, err := png.Decode(bytes.NewReader(page.PNG))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to decode page: %v", err))
		return
	}

	if fieldParam != "" {
		idx, err := strconv.Atoi(fieldParam)
		if err != nil || idx < 0 {
			writeError(w, http.StatusBadRequest, "field must be a non-negative integer")
			return
		}
		if idx >= len(a.Fields) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("field %d not found", idx))
			return
		}

		var regions []fields.Region
		for _, reg := range a.Fields[idx].Regions {
			if reg.PageNumber == pageNum {
				regions = append(regions, reg)
			}
		}
		pw, ph, _ := fields.PageDimensions(a.Result, pageNum)
		img = overlay.DrawRegions(img, regions, pw, ph)
	}

	if widthParam != "" {
		maxWidth, err := strconv.Atoi(widthParam)
		if err != nil || maxWidth < 1 {
			writeError(w, http.StatusBadRequest, "width must be a positive integer")
			return
		}
		img = overlay.Thumbnail(img, maxWidth)
	}

	// Rendered pages are session-scoped, so proxies must not cache them.
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	png.Encode(w, img)
}

func (e *ReviewPageImageEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		field  int
		width  int
		zoom   float64
		output string
	)
	cmd := &cobra.Command{
		Use:   "page <page_num>",
		Short: "Fetch one rendered page as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if cmd.Flags().Changed("field") {
				params.Set("field", strconv.Itoa(field))
			}
			if width > 0 {
				params.Set("width", strconv.Itoa(width))
			}
			if zoom > 0 {
				params.Set("zoom", fmt.Sprintf("%g", zoom))
			}

			path := "/api/review/pages/" + args[0] + "/image"
			if len(params) > 0 {
				path += "?" + params.Encode()
			}

			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), path)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("page_%s.png", args[0])
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", output, len(data))
			return nil
		},
	}
	cmd.Flags().IntVar(&field, "field", 0, "Highlight this field's regions (0-based index)")
	cmd.Flags().IntVar(&width, "width", 0, "Scale down to at most this width in pixels")
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Zoom factor for rendering (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default page_<n>.png)")
	return cmd
}
