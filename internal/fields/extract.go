package fields

import (
	"github.com/tidwall/gjson"
)

// valueKeys is the priority order for picking a field's value. Typed keys
// win over the generic "value"; the first key present wins even when its
// value is null.
var valueKeys = []string{
	"valueString",
	"valueNumber",
	"valueBoolean",
	"valueDate",
	"valueArray",
	"valueObject",
	"value",
}

// markerKeys identify a field object during the recursive fields-map search.
var markerKeys = []string{"value", "valueString", "sources", "source"}

// Extract normalizes an analysis result into a flat field list with
// resolved page regions. It never fails: an unrecognizable result shape
// yields an empty list, malformed evidence items are skipped, and a field
// without locatable regions simply has none. Running it twice on the same
// result produces identical output.
func Extract(result gjson.Result) []Field {
	fieldsMap := locateFieldsMap(result)
	if !fieldsMap.IsObject() {
		return nil
	}

	var out []Field
	fieldsMap.ForEach(func(name, fieldObj gjson.Result) bool {
		if !fieldObj.IsObject() {
			return true
		}

		regions := resolveRegions(shallowEvidence(fieldObj))
		if len(regions) == 0 {
			regions = resolveRegions(gatherEvidence(fieldObj))
		}
		if regions == nil {
			regions = []Region{}
		}

		out = append(out, Field{
			Name:    name.String(),
			Value:   pickValue(fieldObj),
			Regions: regions,
		})
		return true
	})
	return out
}

// pickValue resolves a field object's value by key priority. Absence of
// every value key yields nil.
func pickValue(fieldObj gjson.Result) any {
	for _, k := range valueKeys {
		if v := fieldObj.Get(k); v.Exists() {
			return v.Value()
		}
	}
	return nil
}

// shallowEvidence returns the field object's own evidence, preferred over
// the deep search because it is where well-formed results keep provenance.
func shallowEvidence(fieldObj gjson.Result) []gjson.Result {
	ev := firstTruthy(fieldObj, "sources", "source", "evidence")
	switch {
	case ev.IsArray():
		return ev.Array()
	case ev.Exists():
		return []gjson.Result{ev}
	default:
		return nil
	}
}

// locateFieldsMap finds the field dictionary inside an analysis result.
// The dictionary nests at different depths depending on result shape, so
// a fixed list of known paths is tried under the first document-like
// content entry, falling back to an unconstrained recursive search. First
// structural match wins; when several candidates exist the traversal
// order decides, which is accepted fuzziness against an evolving service
// schema.
func locateFieldsMap(result gjson.Result) gjson.Result {
	contents := result.Get("result.contents")
	if !truthy(contents) {
		contents = result.Get("contents")
	}

	var content gjson.Result
	if contents.IsArray() {
		contents.ForEach(func(_, c gjson.Result) bool {
			if c.IsObject() && documentLike(c) {
				content = c
				return false
			}
			return true
		})
		if !content.Exists() {
			if arr := contents.Array(); len(arr) > 0 {
				content = arr[0]
			}
		}
	}

	if content.IsObject() {
		for _, k := range []string{"fields", "extractedFields", "output", "data"} {
			if v := content.Get(k); v.IsObject() {
				return v
			}
		}
		ext := firstTruthy(content, "extraction", "result")
		if f := ext.Get("fields"); f.IsObject() {
			return f
		}
	}

	return findFieldsMap(result)
}

// documentLike reports whether a content entry holds document fields:
// kind is "document", "text", or absent entirely.
func documentLike(c gjson.Result) bool {
	kind := c.Get("kind")
	if !kind.Exists() || kind.Type == gjson.Null {
		return true
	}
	return kind.Type == gjson.String && (kind.Str == "document" || kind.Str == "text")
}

// findFieldsMap recursively searches for any mapping whose values are all
// mappings and whose first value carries a field-object marker key. The
// first match in document order wins.
func findFieldsMap(node gjson.Result) gjson.Result {
	switch {
	case node.IsObject():
		if isFieldsMap(node) {
			return node
		}
		var found gjson.Result
		node.ForEach(func(_, v gjson.Result) bool {
			if f := findFieldsMap(v); f.Exists() {
				found = f
				return false
			}
			return true
		})
		return found
	case node.IsArray():
		var found gjson.Result
		node.ForEach(func(_, v gjson.Result) bool {
			if f := findFieldsMap(v); f.Exists() {
				found = f
				return false
			}
			return true
		})
		return found
	}
	return gjson.Result{}
}

// isFieldsMap reports whether obj is a plausible fields dictionary: it is
// non-empty, every value is an object, and the first value looks like a
// field object. Only the first value is sampled, mirroring the tolerance
// of the rest of this package: a wrong guess costs a skipped field, not
// a failure.
func isFieldsMap(obj gjson.Result) bool {
	empty := true
	allObjects := true
	var sample gjson.Result
	obj.ForEach(func(_, v gjson.Result) bool {
		if empty {
			sample = v
			empty = false
		}
		if !v.IsObject() {
			allObjects = false
			return false
		}
		return true
	})
	if empty || !allObjects {
		return false
	}
	for _, k := range markerKeys {
		if sample.Get(k).Exists() {
			return true
		}
	}
	return false
}
