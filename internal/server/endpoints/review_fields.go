package endpoints

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/fields"
	"github.com/docketlabs/docket/internal/svcctx"
)

// FieldSummary is one extracted field in list form.
type FieldSummary struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Value   any    `json:"value"`
	Regions int    `json:"regions"`
	Pages   []int  `json:"pages,omitempty"`
}

// ListFieldsResponse is the response for listing extracted fields.
type ListFieldsResponse struct {
	Fields []FieldSummary `json:"fields"`
	Total  int            `json:"total"`
}

// regionPages lists the distinct page numbers a field's regions fall on, in
// first-seen order.
func regionPages(regions []fields.Region) []int {
	var pages []int
	seen := make(map[int]bool)
	for _, reg := range regions {
		if !seen[reg.PageNumber] {
			seen[reg.PageNumber] = true
			pages = append(pages, reg.PageNumber)
		}
	}
	return pages
}

// ListFieldsEndpoint handles GET /api/review/fields.
type ListFieldsEndpoint struct{}

var _ api.Endpoint = (*ListFieldsEndpoint)(nil)

func (e *ListFieldsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/fields", e.handler
}

func (e *ListFieldsEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		List extracted fields
//	@Description	List the fields extracted by the analysis loaded for review
//	@Tags			fields
//	@Produce		json
//	@Success		200	{object}	ListFieldsResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/fields [get]
func (e *ListFieldsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	summaries := make([]FieldSummary, len(a.Fields))
	for i, f := range a.Fields {
		summaries[i] = FieldSummary{
			Index:   i,
			Name:    f.Name,
			Value:   f.Value,
			Regions: len(f.Regions),
			Pages:   regionPages(f.Regions),
		}
	}
	writeJSON(w, http.StatusOK, ListFieldsResponse{Fields: summaries, Total: len(summaries)})
}

func (e *ListFieldsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List fields extracted by the active review",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListFieldsResponse
			if err := client.Get(cmd.Context(), "/api/review/fields", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// RegionView is one region of a field in response form.
type RegionView struct {
	Page int     `json:"page"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
}

// FieldDetail is the full view of one extracted field.
type FieldDetail struct {
	Index   int          `json:"index"`
	Name    string       `json:"name"`
	Value   any          `json:"value"`
	Regions []RegionView `json:"regions"`
}

// GetFieldEndpoint handles GET /api/review/fields/{index}.
type GetFieldEndpoint struct{}

var _ api.Endpoint = (*GetFieldEndpoint)(nil)

func (e *GetFieldEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/fields/{index}", e.handler
}

func (e *GetFieldEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Get an extracted field
//	@Description	Get one extracted field with its page regions
//	@Tags			fields
//	@Produce		json
//	@Param			index	path		int	true	"Field index (0-based)"
//	@Success		200		{object}	FieldDetail
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/review/fields/{index} [get]
func (e *GetFieldEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || idx < 0 {
		writeError(w, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}

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
	if idx >= len(a.Fields) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("field %d not found", idx))
		return
	}

	f := a.Fields[idx]
	views := make([]RegionView, len(f.Regions))
	for i, reg := range f.Regions {
		views[i] = RegionView{
			Page: reg.PageNumber,
			X0:   reg.BBox.X0,
			Y0:   reg.BBox.Y0,
			X1:   reg.BBox.X1,
			Y1:   reg.BBox.Y1,
		}
	}
	writeJSON(w, http.StatusOK, FieldDetail{Index: idx, Name: f.Name, Value: f.Value, Regions: views})
}

func (e *GetFieldEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "field <index>",
		Short: "Get one extracted field with its regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp FieldDetail
			if err := client.Get(cmd.Context(), "/api/review/fields/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
