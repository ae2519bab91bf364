// Package fields normalizes heterogeneous analysis results into a flat,
// typed field list with resolved page regions.
//
// The extraction service's result schema varies across analyzer and document
// kinds: field maps nest at different depths, bounding regions hide behind
// several alternate key names, and provenance ("source") references appear as
// compact strings, structured objects, or lists of either. Everything in this
// package is tolerant by construction: malformed items are skipped, absent
// data yields empty results, and no function here returns an error.
//
// All traversal is done over gjson values because gjson iterates object
// members in document order, which keeps the "first match wins" heuristics
// deterministic.
package fields

// BBox is an axis-aligned bounding box in document units.
// For polygon-derived regions it is the min/max over the x and y coordinates
// independently, not a rotated-rectangle fit.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Region is a page-located rectangle indicating where a field value was
// found. Kind carries the single-character source tag when the region came
// from a compact source string (e.g. "D" for document). Polygon holds the
// original coordinate sequence when one was present; BBox is always set.
type Region struct {
	Kind       string    `json:"kind,omitempty"`
	PageNumber int       `json:"pageNumber"`
	Polygon    []float64 `json:"polygon,omitempty"`
	BBox       BBox      `json:"bbox"`
}

// Field is one extracted field: its name from the source mapping, the picked
// scalar or composite value, and the page regions that support it.
type Field struct {
	Name    string   `json:"name"`
	Value   any      `json:"value"`
	Regions []Region `json:"regions"`
}

// polygonBBox collapses an x,y coordinate sequence to its axis-aligned
// bounding box.
func polygonBBox(poly []float64) BBox {
	var b BBox
	if len(poly) < 2 {
		return b
	}
	b = BBox{X0: poly[0], Y0: poly[1], X1: poly[0], Y1: poly[1]}
	for i := 2; i+1 < len(poly); i += 2 {
		x, y := poly[i], poly[i+1]
		if x < b.X0 {
			b.X0 = x
		}
		if x > b.X1 {
			b.X1 = x
		}
		if y < b.Y0 {
			b.Y0 = y
		}
		if y > b.Y1 {
			b.Y1 = y
		}
	}
	return b
}

// dedupeRegions drops regions whose (page, bbox) pair was already seen,
// preserving first-seen order. The same physical region is frequently
// referenced from multiple evidence slots.
func dedupeRegions(regions []Region) []Region {
	type key struct {
		page int
		bbox BBox
	}
	seen := make(map[key]struct{}, len(regions))
	out := regions[:0]
	for _, r := range regions {
		k := key{page: r.PageNumber, bbox: r.BBox}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
