package fields

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseSourceString decodes the compact source reference format
// "K(page,x1,y1,x2,y2,x3,y3,x4,y4)" where K is a one-character kind tag and
// the parenthesized list holds a page number followed by at least eight
// polygon coordinates. The page token tolerates a float spelling ("2.0")
// and is truncated to an integer. Tokens past the first eight coordinates
// are ignored but must still be numeric. Any malformation returns ok=false.
func ParseSourceString(source string) (Region, bool) {
	s := strings.TrimSpace(source)
	if len(s) < 4 || !strings.Contains(s, "(") || !strings.HasSuffix(s, ")") {
		return Region{}, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	kind := string(r)

	inner := s[strings.Index(s, "(")+1 : len(s)-1]
	var parts []string
	for _, p := range strings.Split(inner, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 9 {
		return Region{}, false
	}

	pageF, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || math.IsNaN(pageF) || math.IsInf(pageF, 0) {
		return Region{}, false
	}
	page := int(pageF)
	if page < 1 {
		return Region{}, false
	}

	coords := make([]float64, 0, len(parts)-1)
	for _, p := range parts[1:] {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Region{}, false
		}
		coords = append(coords, f)
	}
	if len(coords) < 8 {
		return Region{}, false
	}
	coords = coords[:8]

	return Region{
		Kind:       kind,
		PageNumber: page,
		Polygon:    coords,
		BBox:       polygonBBox(coords),
	}, true
}
