package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/render"
	"github.com/docketlabs/docket/internal/review"
	"github.com/docketlabs/docket/internal/svcctx"
)

const classifierResult = `{"result":{"contents":[{"category":"Invoices","confidence":0.9}]}}`

const analyzerResult = `{
	"result":{
		"contents":[{
			"fields":{
				"VendorName":{"valueString":"Acme Corp","source":"D(1,10,10,90,10,90,20,10,20)"},
				"InvoiceTotal":{"valueNumber":1250.5,"source":"D(2,5,5,50,5,50,15,5,15)"}
			},
			"pages":[{"pageNumber":1,"width":100,"height":120},{"pageNumber":2,"width":100,"height":120}]
		}],
		"usage":{"tokens":{"gpt-4.1-mini-input":1200,"gpt-4.1-mini-output":340}}
	}
}`

const testConfigYAML = "review:\n  zoom: 1\n  max_file_mb: 1\n"

type stubAnalyzer struct {
	results map[string]string
	errs    map[string]error
	calls   int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, analyzerID string, doc []byte) (gjson.Result, error) {
	s.calls++
	if err := s.errs[analyzerID]; err != nil {
		return gjson.Result{}, err
	}
	return gjson.Parse(s.results[analyzerID]), nil
}

func newStubAnalyzer() *stubAnalyzer {
	return &stubAnalyzer{
		results: map[string]string{
			"classifier_idp":    classifierResult,
			"analyzer_invoices": analyzerResult,
		},
		errs: map[string]error{},
	}
}

type stubRenderer struct {
	pageCount   int
	png         []byte
	validateErr error
	renderErr   error
	renders     int
}

func (s *stubRenderer) Validate(pdf []byte) (int, error) {
	if s.validateErr != nil {
		return 0, s.validateErr
	}
	return s.pageCount, nil
}

func (s *stubRenderer) Pages(ctx context.Context, pdf []byte, zoom float64) ([]render.Page, error) {
	s.renders++
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	pages := make([]render.Page, s.pageCount)
	for i := range pages {
		pages[i] = render.Page{Number: i + 1, PNG: s.png, Width: 40, Height: 60}
	}
	return pages, nil
}

// tinyPNG returns a small encoded raster for renderer stubs.
func tinyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestConfig(t *testing.T, yaml string) *config.Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	mgr, err := config.NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return mgr
}

type testEnv struct {
	services *svcctx.Services
	analyzer *stubAnalyzer
	renderer *stubRenderer
	handler  http.Handler
}

// newTestEnv wires every endpoint into a mux the way the server does, with
// stub collaborators behind the service context.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	analyzer := newStubAnalyzer()
	renderer := &stubRenderer{pageCount: 2, png: tinyPNG(t, 40, 60)}
	services := &svcctx.Services{
		Config:   newTestConfig(t, testConfigYAML),
		Session:  review.NewSession(),
		Analyzer: analyzer,
		Renderer: renderer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	reg := api.NewRegistry()
	for _, ep := range All(Config{}) {
		reg.Register(ep)
	}
	mux := http.NewServeMux()
	reg.RegisterRoutes(mux, func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if svcctx.AnalyzerFrom(r.Context()) == nil {
				writeError(w, http.StatusServiceUnavailable, "extraction service not configured")
				return
			}
			next(w, r)
		}
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r.WithContext(svcctx.WithServices(r.Context(), services)))
	})

	return &testEnv{services: services, analyzer: analyzer, renderer: renderer, handler: handler}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

// submit runs a live analysis so later requests have an active session.
func (env *testEnv) submit(t *testing.T) {
	t.Helper()
	rec := env.do(multipartRequest(t, "/api/review", formFile{"file", "doc.pdf", []byte("%PDF-1.4 test")}))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", rec.Code, rec.Body.String())
	}
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

func multipartRequest(t *testing.T, path string, files ...formFile) *http.Request {
	return multipartRequestForm(t, path, nil, files...)
}

func multipartRequestForm(t *testing.T, path string, values map[string]string, files ...formFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := form.CreateFormFile(f.field, f.filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(f.content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range values {
		if err := form.WriteField(k, v); err != nil {
			t.Fatalf("write form field: %v", err)
		}
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decode(t, rec, &resp)
	return resp.Error
}
