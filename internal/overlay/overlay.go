// Package overlay projects extracted field regions onto rendered page
// rasters and draws review highlights.
package overlay

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/docketlabs/docket/internal/fields"
)

// strokeWidth is the highlight outline thickness in pixels.
const strokeWidth = 3

var strokeColor = color.RGBA{R: 0xff, A: 0xff}

// DrawRegions copies the page raster and strokes each region's bounding box
// as a non-filled red rectangle. Region coordinates are in document units;
// pageW and pageH are the page's document-unit dimensions used to project
// them onto the raster. A non-positive page dimension disables scaling on
// that axis, so rasters without page metadata still get highlights at the
// raw coordinates.
func DrawRegions(src image.Image, regions []fields.Region, pageW, pageH float64) *image.RGBA {
	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)

	sx, sy := 1.0, 1.0
	if pageW > 0 {
		sx = float64(bounds.Dx()) / pageW
	}
	if pageH > 0 {
		sy = float64(bounds.Dy()) / pageH
	}

	for _, r := range regions {
		x0 := int(math.Round(r.BBox.X0 * sx))
		y0 := int(math.Round(r.BBox.Y0 * sy))
		x1 := int(math.Round(r.BBox.X1 * sx))
		y1 := int(math.Round(r.BBox.Y1 * sy))
		strokeRect(img, image.Rect(x0, y0, x1, y1))
	}
	return img
}

// strokeRect draws a rectangle outline as four bars expanding inward from
// the edges, clipped to the image bounds. image.Rect canonicalizes inverted
// boxes.
func strokeRect(img *image.RGBA, r image.Rectangle) {
	bars := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+strokeWidth),
		image.Rect(r.Min.X, r.Max.Y-strokeWidth, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+strokeWidth, r.Max.Y),
		image.Rect(r.Max.X-strokeWidth, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, b := range bars {
		draw.Draw(img, b.Intersect(img.Bounds()), &image.Uniform{C: strokeColor}, image.Point{}, draw.Src)
	}
}
