package overlay

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail downscales src to at most maxWidth pixels wide, preserving the
// aspect ratio. Images already within the limit are returned unchanged.
func Thumbnail(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || w <= maxWidth {
		return src
	}

	targetH := int(float64(h) * float64(maxWidth) / float64(w))
	if targetH < 1 {
		targetH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
