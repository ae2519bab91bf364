package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientPostMultipart(t *testing.T) {
	var gotFile, gotZoom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		buf := make([]byte, 16)
		n, _ := file.Read(buf)
		gotFile = header.Filename + ":" + string(buf[:n])
		gotZoom = r.FormValue("zoom")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"label":"Invoices"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	files := []FileField{{Field: "file", Filename: "doc.pdf", Content: []byte("%PDF-1.4")}}
	var result struct {
		Label string `json:"label"`
	}
	if err := client.PostMultipart(context.Background(), "/api/review", files, map[string]string{"zoom": "2"}, &result); err != nil {
		t.Fatalf("PostMultipart() error = %v", err)
	}

	if gotFile != "doc.pdf:%PDF-1.4" {
		t.Errorf("file part = %q", gotFile)
	}
	if gotZoom != "2" {
		t.Errorf("zoom field = %q", gotZoom)
	}
	if result.Label != "Invoices" {
		t.Errorf("Label = %q", result.Label)
	}
}

func TestClientGetRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/image" {
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte{0x89, 'P', 'N', 'G'})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no page"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	body, err := client.GetRaw(context.Background(), "/image")
	if err != nil {
		t.Fatalf("GetRaw() error = %v", err)
	}
	if len(body) != 4 || body[1] != 'P' {
		t.Errorf("body = %v", body)
	}

	_, err = client.GetRaw(context.Background(), "/missing")
	if err == nil || !strings.Contains(err.Error(), "server error (404): no page") {
		t.Errorf("error = %v", err)
	}
}

func TestClientErrorShaping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		if r.URL.Path == "/json" {
			w.Write([]byte(`{"error":"analysis failed"}`))
			return
		}
		w.Write([]byte("plain failure"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	err := client.Get(context.Background(), "/json", nil)
	if err == nil || !strings.Contains(err.Error(), "server error (502): analysis failed") {
		t.Errorf("json error = %v", err)
	}

	err = client.Get(context.Background(), "/plain", nil)
	if err == nil || !strings.Contains(err.Error(), "server error (502): plain failure") {
		t.Errorf("plain error = %v", err)
	}
}
