// Package render rasterizes PDF pages to PNG for review display.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Page is one rendered PDF page.
type Page struct {
	Number int    // 1-indexed page number
	PNG    []byte // encoded raster
	Width  int    // raster width in pixels
	Height int    // raster height in pixels
}

// Service adapts the package functions to the renderer dependency carried
// by the HTTP layer, so handler tests can substitute a stub.
type Service struct{}

func (Service) Pages(ctx context.Context, pdf []byte, zoom float64) ([]Page, error) {
	return Pages(ctx, pdf, zoom)
}

func (Service) Validate(pdf []byte) (int, error) {
	return Validate(pdf)
}

// Validate checks that the bytes parse as a PDF and returns the page count.
func Validate(pdf []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdf), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("PDF has no pages")
	}
	return count, nil
}

// Pages renders every page of the PDF at the given zoom factor, one page
// per pdftoppm invocation in page order. A zoom of 1.0 renders at the
// PDF's natural 72 DPI user space.
func Pages(ctx context.Context, pdf []byte, zoom float64) ([]Page, error) {
	pageCount, err := Validate(pdf)
	if err != nil {
		return nil, err
	}

	tmpFile, err := os.CreateTemp("", "docket-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.Write(pdf); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp PDF: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to write temp PDF: %w", err)
	}

	res := dpi(zoom)
	pages := make([]Page, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		data, err := renderPage(ctx, tmpFile.Name(), page, res)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", page, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode page %d: %w", page, err)
		}
		pages = append(pages, Page{
			Number: page,
			PNG:    data,
			Width:  cfg.Width,
			Height: cfg.Height,
		})
	}
	return pages, nil
}

// dpi converts a display zoom factor to a pdftoppm resolution.
func dpi(zoom float64) int {
	if zoom <= 0 {
		zoom = 1.0
	}
	return int(math.Round(72 * zoom))
}

// renderPage renders a single page using pdftoppm (poppler-utils).
func renderPage(ctx context.Context, pdfPath string, page, dpi int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "docket-page-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "page")

	// -png: output PNG format
	// -f N / -l N: first and last page to render
	// -r N: resolution in DPI
	// -singlefile: don't add page number suffix
	pageStr := fmt.Sprintf("%d", page)
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", fmt.Sprintf("%d", dpi),
		"-singlefile",
		pdfPath,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	data, err := os.ReadFile(outputPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return data, nil
}
