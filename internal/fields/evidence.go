package fields

import (
	"github.com/tidwall/gjson"
)

// regionsFromSource normalizes one structured source object into regions.
// Page numbers hide behind pageNumber/page/pageIndex, region lists behind
// boundingRegions/regions, and each region carries either a polygon
// (polygon/points, >=8 coords, kept whole) or a boundingBox (exactly 4
// values). Polygon wins over box. A region without a resolvable page
// number anywhere in the chain is dropped rather than guessed.
func regionsFromSource(src gjson.Result) []Region {
	if !src.IsObject() {
		return nil
	}

	outerPage := firstTruthy(src, "pageNumber", "page", "pageIndex")
	list := firstTruthy(src, "boundingRegions", "regions")

	if list.IsArray() {
		var regions []Region
		list.ForEach(func(_, br gjson.Result) bool {
			pageVal := firstTruthy(br, "pageNumber", "page")
			if !pageVal.Exists() {
				pageVal = outerPage
			}
			page, ok := pageNum(pageVal)
			if !ok {
				return true
			}
			if r, ok := regionAt(page, br); ok {
				regions = append(regions, r)
			}
			return true
		})
		return regions
	}

	page, ok := pageNum(outerPage)
	if !ok {
		return nil
	}
	if r, ok := regionAt(page, src); ok {
		return []Region{r}
	}
	return nil
}

// regionAt builds a region on the given page from an object carrying
// polygon/points or boundingBox data.
func regionAt(page int, obj gjson.Result) (Region, bool) {
	if poly, ok := floatSlice(firstTruthy(obj, "polygon", "points")); ok && len(poly) >= 8 {
		return Region{PageNumber: page, Polygon: poly, BBox: polygonBBox(poly)}, true
	}
	if box, ok := floatSlice(obj.Get("boundingBox")); ok && len(box) == 4 {
		return Region{PageNumber: page, BBox: BBox{X0: box[0], Y0: box[1], X1: box[2], Y1: box[3]}}, true
	}
	return Region{}, false
}

// gatherEvidence deep-searches a field object's nested structure for every
// value reachable under a source, sources, or evidence key at any depth.
// The provenance schema is not fixed across analyzer kinds, so the search
// is unconditional and follows document order; duplicates collapse later
// at the region level.
func gatherEvidence(node gjson.Result) []gjson.Result {
	var out []gjson.Result
	var walk func(n gjson.Result)
	walk = func(n gjson.Result) {
		switch {
		case n.IsObject():
			for _, k := range []string{"source", "sources", "evidence"} {
				if v := n.Get(k); v.Exists() {
					out = append(out, v)
				}
			}
			n.ForEach(func(_, v gjson.Result) bool {
				if v.IsObject() || v.IsArray() {
					walk(v)
				}
				return true
			})
		case n.IsArray():
			n.ForEach(func(_, v gjson.Result) bool {
				walk(v)
				return true
			})
		}
	}
	walk(node)
	return out
}

// resolveRegions turns raw evidence items into a deduplicated region list.
// Strings go through the compact source parser, objects through the region
// extractor, and lists are flattened recursively. Anything else (nulls,
// numbers) is skipped.
func resolveRegions(items []gjson.Result) []Region {
	var regions []Region
	var consume func(item gjson.Result)
	consume = func(item gjson.Result) {
		switch {
		case item.Type == gjson.String:
			if r, ok := ParseSourceString(item.Str); ok {
				regions = append(regions, r)
			}
		case item.IsObject():
			regions = append(regions, regionsFromSource(item)...)
		case item.IsArray():
			item.ForEach(func(_, v gjson.Result) bool {
				consume(v)
				return true
			})
		}
	}
	for _, it := range items {
		consume(it)
	}
	return dedupeRegions(regions)
}
