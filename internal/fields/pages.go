package fields

import (
	"github.com/tidwall/gjson"
)

// PageDimensions reads the document-unit width and height of a page from
// the result's page metadata (result.contents[0].pages, 1-indexed). ok is
// false when no metadata exists for the page; width or height may still be
// zero when the service omits one, and callers should treat zero as
// unavailable.
func PageDimensions(result gjson.Result, pageNum int) (w, h float64, ok bool) {
	contents := result.Get("result.contents")
	if !contents.IsArray() {
		return 0, 0, false
	}
	arr := contents.Array()
	if len(arr) == 0 {
		return 0, 0, false
	}

	pages := arr[0].Get("pages")
	if !pages.IsArray() {
		return 0, 0, false
	}
	metas := pages.Array()
	if pageNum < 1 || pageNum > len(metas) {
		return 0, 0, false
	}

	meta := metas[pageNum-1]
	w, _ = floatVal(meta.Get("width"))
	h, _ = floatVal(meta.Get("height"))
	return w, h, true
}
