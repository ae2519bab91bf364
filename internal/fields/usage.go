package fields

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// UsageSummary aggregates the token accounting block of an analysis result.
// The service reports per-model counters keyed "<model>-input" and
// "<model>-output" under a usage.tokens mapping; everything else in the
// usage block is retained raw for display.
type UsageSummary struct {
	Models       []string        `json:"models"`
	InputTokens  int             `json:"input_tokens"`
	OutputTokens int             `json:"output_tokens"`
	Raw          json.RawMessage `json:"raw_usage,omitempty"`
}

// ExtractUsage locates the first usage mapping in the result and sums its
// token counters. A result without a usage block yields a zero summary.
func ExtractUsage(result gjson.Result) UsageSummary {
	summary := UsageSummary{Models: []string{}}

	usage := findUsageBlock(result)
	if !usage.Exists() {
		return summary
	}
	summary.Raw = json.RawMessage(usage.Raw)

	tokens := usage.Get("tokens")
	if !tokens.IsObject() {
		return summary
	}

	names := make(map[string]struct{})
	tokens.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.Number {
			return true
		}
		key := k.String()
		switch {
		case strings.HasSuffix(key, "-input"):
			summary.InputTokens += int(v.Num)
			names[strings.TrimSuffix(key, "-input")] = struct{}{}
		case strings.HasSuffix(key, "-output"):
			summary.OutputTokens += int(v.Num)
			names[strings.TrimSuffix(key, "-output")] = struct{}{}
		}
		return true
	})

	delete(names, "")
	for n := range names {
		summary.Models = append(summary.Models, n)
	}
	sort.Strings(summary.Models)
	return summary
}

// findUsageBlock returns the first mapping found in document order under a
// "usage" key whose value is itself a mapping.
func findUsageBlock(node gjson.Result) gjson.Result {
	switch {
	case node.IsObject():
		if u := node.Get("usage"); u.IsObject() {
			return u
		}
		var found gjson.Result
		node.ForEach(func(_, v gjson.Result) bool {
			if f := findUsageBlock(v); f.Exists() {
				found = f
				return false
			}
			return true
		})
		return found
	case node.IsArray():
		var found gjson.Result
		node.ForEach(func(_, v gjson.Result) bool {
			if f := findUsageBlock(v); f.Exists() {
				found = f
				return false
			}
			return true
		})
		return found
	}
	return gjson.Result{}
}
