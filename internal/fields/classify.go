package fields

import (
	"github.com/tidwall/gjson"
)

// ParseClassifierOutput pulls a document-type label and optional confidence
// out of a classification result. The label comes from the first mapping in
// document order holding a category or label string (category checked
// first); confidence comes from the first present of confidence, score, or
// probability on the same mapping, nil when absent or non-coercible.
//
// Only the first candidate encountered is used. When a result carries
// multiple classifications there is no "best" pick here, just the earliest.
func ParseClassifierOutput(result gjson.Result) (string, *float64) {
	label, conf, ok := findCategory(result)
	if !ok {
		return "", nil
	}
	return label, conf
}

func findCategory(node gjson.Result) (string, *float64, bool) {
	switch {
	case node.IsObject():
		for _, k := range []string{"category", "label"} {
			if v := node.Get(k); v.Type == gjson.String {
				return v.Str, confidenceOf(node), true
			}
		}
		var (
			label string
			conf  *float64
			found bool
		)
		node.ForEach(func(_, v gjson.Result) bool {
			if l, c, ok := findCategory(v); ok {
				label, conf, found = l, c, true
				return false
			}
			return true
		})
		return label, conf, found
	case node.IsArray():
		var (
			label string
			conf  *float64
			found bool
		)
		node.ForEach(func(_, v gjson.Result) bool {
			if l, c, ok := findCategory(v); ok {
				label, conf, found = l, c, true
				return false
			}
			return true
		})
		return label, conf, found
	}
	return "", nil, false
}

// confidenceOf reads the confidence companion of a classification label.
// The first key present and non-null is taken; a value that does not
// coerce to a float means no confidence, not "try the next key".
func confidenceOf(node gjson.Result) *float64 {
	for _, k := range []string{"confidence", "score", "probability"} {
		v := node.Get(k)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if f, ok := floatVal(v); ok {
			return &f
		}
		return nil
	}
	return nil
}
