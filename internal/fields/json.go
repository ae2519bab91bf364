package fields

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// truthy reports whether a JSON value is non-empty in the loose sense used
// throughout result traversal: empty strings, empty objects, empty arrays,
// zero, false, and null all count as absent so that alternate-key fallback
// chains keep looking.
func truthy(v gjson.Result) bool {
	if !v.Exists() {
		return false
	}
	switch v.Type {
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	case gjson.True:
		return true
	case gjson.JSON:
		empty := true
		v.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return !empty
	default:
		return false
	}
}

// firstTruthy returns the value of the first named member of obj that is
// truthy, in the given key order.
func firstTruthy(obj gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := obj.Get(k); truthy(v) {
			return v
		}
	}
	return gjson.Result{}
}

// pageNum coerces a JSON value to a page number. Numbers are truncated,
// strings must parse as plain integers. Zero and negative values are
// rejected so a region is never emitted without a real page to land on.
func pageNum(v gjson.Result) (int, bool) {
	switch v.Type {
	case gjson.Number:
		n := int(v.Num)
		return n, n > 0
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, false
		}
		return n, n > 0
	default:
		return 0, false
	}
}

// floatVal coerces a JSON scalar to float64. Booleans map to 0/1 and
// numeric strings are parsed, everything else fails.
func floatVal(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case gjson.True:
		return 1, true
	case gjson.False:
		return 0, true
	default:
		return 0, false
	}
}

// floatSlice converts a JSON array to a float slice. It fails if any
// element is not a number.
func floatSlice(v gjson.Result) ([]float64, bool) {
	if !v.IsArray() {
		return nil, false
	}
	elems := v.Array()
	out := make([]float64, 0, len(elems))
	for _, e := range elems {
		if e.Type != gjson.Number {
			return nil, false
		}
		out = append(out, e.Num)
	}
	return out, true
}
