package review

import (
	"math"
	"testing"

	"github.com/docketlabs/docket/internal/fields"
)

func TestEstimateCost(t *testing.T) {
	usage := fields.UsageSummary{InputTokens: 1200, OutputTokens: 340}

	t.Run("both prices set", func(t *testing.T) {
		got, ok := EstimateCost(usage, 0.4, 1.6)
		if !ok {
			t.Fatal("estimation disabled with both prices set")
		}
		want := 1.2*0.4 + 0.34*1.6
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("cost = %v, want %v", got, want)
		}
	})

	t.Run("disabled without both prices", func(t *testing.T) {
		tests := []struct {
			name    string
			in, out float64
		}{
			{"both zero", 0, 0},
			{"input missing", 0, 1.6},
			{"output missing", 0.4, 0},
			{"negative price", -1, 1.6},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, ok := EstimateCost(usage, tt.in, tt.out); ok {
					t.Error("estimation enabled, want disabled")
				}
			})
		}
	})

	t.Run("zero usage costs nothing", func(t *testing.T) {
		got, ok := EstimateCost(fields.UsageSummary{}, 0.4, 1.6)
		if !ok || got != 0 {
			t.Errorf("cost = %v, %v, want 0, true", got, ok)
		}
	})
}
