package fields

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestPageDimensions(t *testing.T) {
	result := gjson.Parse(`{"result":{"contents":[{"pages":[
		{"pageNumber":1,"width":8.5,"height":11},
		{"pageNumber":2,"width":11,"height":8.5},
		{"pageNumber":3}
	]}]}}`)

	t.Run("first page", func(t *testing.T) {
		w, h, ok := PageDimensions(result, 1)
		if !ok || w != 8.5 || h != 11 {
			t.Errorf("got (%v, %v, %v), want (8.5, 11, true)", w, h, ok)
		}
	})

	t.Run("second page", func(t *testing.T) {
		w, h, ok := PageDimensions(result, 2)
		if !ok || w != 11 || h != 8.5 {
			t.Errorf("got (%v, %v, %v), want (11, 8.5, true)", w, h, ok)
		}
	})

	t.Run("page without dimensions", func(t *testing.T) {
		w, h, ok := PageDimensions(result, 3)
		if !ok || w != 0 || h != 0 {
			t.Errorf("got (%v, %v, %v), want (0, 0, true)", w, h, ok)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, n := range []int{0, -1, 4} {
			if _, _, ok := PageDimensions(result, n); ok {
				t.Errorf("PageDimensions(_, %d) ok = true, want false", n)
			}
		}
	})

	t.Run("missing metadata", func(t *testing.T) {
		tests := []struct {
			name string
			json string
		}{
			{"empty result", `{}`},
			{"contents not array", `{"result":{"contents":{}}}`},
			{"empty contents", `{"result":{"contents":[]}}`},
			{"no pages key", `{"result":{"contents":[{"fields":{}}]}}`},
			{"pages not array", `{"result":{"contents":[{"pages":{}}]}}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, _, ok := PageDimensions(gjson.Parse(tt.json), 1); ok {
					t.Error("ok = true, want false")
				}
			})
		}
	})
}
