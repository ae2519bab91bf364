package review

import "github.com/docketlabs/docket/internal/fields"

// EstimateCost computes the analysis cost in USD from per-1K-token prices.
// Estimation is off unless both prices are configured positive.
func EstimateCost(usage fields.UsageSummary, inputPer1K, outputPer1K float64) (float64, bool) {
	if inputPer1K <= 0 || outputPer1K <= 0 {
		return 0, false
	}
	cost := float64(usage.InputTokens)/1000.0*inputPer1K + float64(usage.OutputTokens)/1000.0*outputPer1K
	return cost, true
}
