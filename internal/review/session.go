package review

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/docketlabs/docket/internal/render"
)

// Session is the single-slot memo for the active review: one analysis and
// one rendered page set at a time. Re-running with an equal key reuses the
// slot; a different key replaces it wholesale. There is no eviction policy
// beyond replacement.
type Session struct {
	mu sync.Mutex

	analysisKey string
	analysis    *Analysis
	pdf         []byte
	pageCount   int

	renderKey string
	pages     []render.Page
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// LiveKey identifies a live pipeline run: same document, classifier, and
// routing map mean the same analysis.
func LiveKey(pdf []byte, classifierID string, analyzers map[string]string) string {
	return fmt.Sprintf("live:%s:%s:%s", hashBytes(pdf), classifierID, sortedMap(analyzers))
}

// OfflineKey identifies an offline review of a saved result document.
func OfflineKey(result, pdf []byte) string {
	return fmt.Sprintf("offline:%s:%s", hashBytes(result), hashBytes(pdf))
}

// RenderKey identifies a rendered page set for a document at a zoom level.
func RenderKey(pdf []byte, zoom float64) string {
	return fmt.Sprintf("%s:%g", hashBytes(pdf), zoom)
}

// Analysis returns the memoized analysis and document when key matches the
// slot.
func (s *Session) Analysis(key string) (*Analysis, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil || s.analysisKey != key {
		return nil, nil, false
	}
	return s.analysis, s.pdf, true
}

// SetAnalysis replaces the analysis slot. pageCount is the attached
// document's page count, 0 when no document is attached. Rendered pages are
// dropped so a new document cannot serve a previous document's rasters.
func (s *Session) SetAnalysis(key string, a *Analysis, pdf []byte, pageCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysisKey = key
	s.analysis = a
	s.pdf = pdf
	s.pageCount = pageCount
	s.renderKey = ""
	s.pages = nil
}

// Current returns the active analysis and document regardless of key.
func (s *Session) Current() (*Analysis, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return nil, nil, false
	}
	return s.analysis, s.pdf, true
}

// PageCount returns the attached document's page count, 0 without a document.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageCount
}

// Pages returns the memoized page set when key matches the render slot.
func (s *Session) Pages(key string) ([]render.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pages == nil || s.renderKey != key {
		return nil, false
	}
	return s.pages, true
}

// SetPages replaces the render slot.
func (s *Session) SetPages(key string, pages []render.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderKey = key
	s.pages = pages
}

// CurrentPages returns the active page set regardless of key.
func (s *Session) CurrentPages() ([]render.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pages == nil {
		return nil, false
	}
	return s.pages, true
}

// Clear empties both slots.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysisKey = ""
	s.analysis = nil
	s.pdf = nil
	s.pageCount = 0
	s.renderKey = ""
	s.pages = nil
}

// Active reports whether an analysis is loaded.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis != nil
}

func hashBytes(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// sortedMap renders a routing map deterministically for key building.
func sortedMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(m[k])
	}
	return b.String()
}
