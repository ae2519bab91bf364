package review

import (
	"testing"

	"github.com/docketlabs/docket/internal/render"
)

func TestKeys(t *testing.T) {
	pdf := []byte("%PDF-1.7 doc")

	t.Run("live key independent of map order", func(t *testing.T) {
		a := map[string]string{"Invoices": "x", "Bank Statements": "y"}
		b := map[string]string{"Bank Statements": "y", "Invoices": "x"}
		if LiveKey(pdf, "c", a) != LiveKey(pdf, "c", b) {
			t.Error("key depends on map iteration order")
		}
	})

	t.Run("live key changes with inputs", func(t *testing.T) {
		base := LiveKey(pdf, "c", map[string]string{"A": "x"})
		if LiveKey([]byte("other"), "c", map[string]string{"A": "x"}) == base {
			t.Error("key ignores document bytes")
		}
		if LiveKey(pdf, "c2", map[string]string{"A": "x"}) == base {
			t.Error("key ignores classifier")
		}
		if LiveKey(pdf, "c", map[string]string{"A": "y"}) == base {
			t.Error("key ignores analyzer routing")
		}
	})

	t.Run("render key changes with zoom", func(t *testing.T) {
		if RenderKey(pdf, 2.0) == RenderKey(pdf, 1.5) {
			t.Error("key ignores zoom")
		}
		if RenderKey(pdf, 2.0) != RenderKey(pdf, 2.0) {
			t.Error("key not deterministic")
		}
	})

	t.Run("offline key distinct from live", func(t *testing.T) {
		result := []byte(`{"result":{}}`)
		if OfflineKey(result, pdf) == LiveKey(pdf, "c", nil) {
			t.Error("offline and live keys collide")
		}
	})
}

func TestSessionMemo(t *testing.T) {
	s := NewSession()
	pdf := []byte("doc-a")
	a := &Analysis{Label: "Invoices"}

	if _, _, ok := s.Analysis("k1"); ok {
		t.Error("empty session reported a hit")
	}
	if s.Active() {
		t.Error("empty session reported active")
	}

	s.SetAnalysis("k1", a, pdf, 3)

	got, gotPDF, ok := s.Analysis("k1")
	if !ok || got != a || string(gotPDF) != "doc-a" {
		t.Errorf("Analysis(k1) = %v, %q, %v", got, gotPDF, ok)
	}
	if _, _, ok := s.Analysis("k2"); ok {
		t.Error("mismatched key reported a hit")
	}
	if !s.Active() {
		t.Error("session with analysis not active")
	}
	if s.PageCount() != 3 {
		t.Errorf("PageCount() = %d, want 3", s.PageCount())
	}

	// Replacement is wholesale: the old slot is gone.
	b := &Analysis{Label: "Bank Statements"}
	s.SetAnalysis("k2", b, []byte("doc-b"), 1)
	if _, _, ok := s.Analysis("k1"); ok {
		t.Error("replaced slot still serves old key")
	}
	if got, _, _ := s.Current(); got != b {
		t.Error("Current() does not see the new analysis")
	}
	if s.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", s.PageCount())
	}
}

func TestSessionPages(t *testing.T) {
	s := NewSession()
	pages := []render.Page{{Number: 1, PNG: []byte("png"), Width: 100, Height: 140}}

	if _, ok := s.Pages("r1"); ok {
		t.Error("empty render slot reported a hit")
	}

	s.SetPages("r1", pages)
	if got, ok := s.Pages("r1"); !ok || len(got) != 1 {
		t.Errorf("Pages(r1) = %v, %v", got, ok)
	}
	if _, ok := s.Pages("r2"); ok {
		t.Error("mismatched render key reported a hit")
	}
	if got, ok := s.CurrentPages(); !ok || len(got) != 1 {
		t.Errorf("CurrentPages() = %v, %v", got, ok)
	}

	// A new analysis drops rasters from the previous document.
	s.SetAnalysis("k1", &Analysis{}, []byte("doc"), 1)
	if _, ok := s.Pages("r1"); ok {
		t.Error("render slot survived analysis replacement")
	}

	s.SetPages("r1", pages)
	s.Clear()
	if s.Active() {
		t.Error("cleared session reports active")
	}
	if _, ok := s.CurrentPages(); ok {
		t.Error("cleared session still has pages")
	}
	if s.PageCount() != 0 {
		t.Error("cleared session still reports pages")
	}
}
