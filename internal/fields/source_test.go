package fields

import (
	"reflect"
	"testing"
)

func TestParseSourceString(t *testing.T) {
	t.Run("four point polygon", func(t *testing.T) {
		r, ok := ParseSourceString("D(2,1.0,2.0,3.0,2.0,3.0,4.0,1.0,4.0)")
		if !ok {
			t.Fatal("expected a region")
		}
		if r.Kind != "D" {
			t.Errorf("Kind = %q, want %q", r.Kind, "D")
		}
		if r.PageNumber != 2 {
			t.Errorf("PageNumber = %d, want 2", r.PageNumber)
		}
		wantPoly := []float64{1, 2, 3, 2, 3, 4, 1, 4}
		if !reflect.DeepEqual(r.Polygon, wantPoly) {
			t.Errorf("Polygon = %v, want %v", r.Polygon, wantPoly)
		}
		want := BBox{X0: 1, Y0: 2, X1: 3, Y1: 4}
		if r.BBox != want {
			t.Errorf("BBox = %+v, want %+v", r.BBox, want)
		}
	})

	t.Run("bbox is axis aligned min max", func(t *testing.T) {
		// Rotated quad: bbox must be the axis-aligned hull, not a fit.
		r, ok := ParseSourceString("D(1, 5,0, 10,5, 5,10, 0,5)")
		if !ok {
			t.Fatal("expected a region")
		}
		want := BBox{X0: 0, Y0: 0, X1: 10, Y1: 10}
		if r.BBox != want {
			t.Errorf("BBox = %+v, want %+v", r.BBox, want)
		}
	})

	t.Run("float page is truncated", func(t *testing.T) {
		r, ok := ParseSourceString("D(2.0,1,1,2,1,2,2,1,2)")
		if !ok {
			t.Fatal("expected a region")
		}
		if r.PageNumber != 2 {
			t.Errorf("PageNumber = %d, want 2", r.PageNumber)
		}
	})

	t.Run("extra numeric tokens ignored", func(t *testing.T) {
		r, ok := ParseSourceString("D(1,1,1,2,1,2,2,1,2,9.9,8.8)")
		if !ok {
			t.Fatal("expected a region")
		}
		if len(r.Polygon) != 8 {
			t.Errorf("Polygon has %d coords, want 8", len(r.Polygon))
		}
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		r, ok := ParseSourceString("  D( 3 , 1,1, 2,1, 2,2, 1,2 )  ")
		if !ok {
			t.Fatal("expected a region")
		}
		if r.PageNumber != 3 {
			t.Errorf("PageNumber = %d, want 3", r.PageNumber)
		}
	})

	t.Run("malformed inputs yield no region", func(t *testing.T) {
		malformed := []struct {
			name string
			in   string
		}{
			{"empty", ""},
			{"too short", "D()"},
			{"no parens", "D 1,1,1,2,1,2,2,1,2"},
			{"no closing paren", "D(1,1,1,2,1,2,2,1,2"},
			{"trailing text", "D(1,1,1,2,1,2,2,1,2) extra"},
			{"eight tokens", "D(1,1,1,2,1,2,2,1)"},
			{"non numeric page", "D(p,1,1,2,1,2,2,1,2)"},
			{"non numeric coord", "D(1,a,1,2,1,2,2,1,2)"},
			{"non numeric extra token", "D(1,1,1,2,1,2,2,1,2,x)"},
			{"zero page", "D(0,1,1,2,1,2,2,1,2)"},
			{"negative page", "D(-1,1,1,2,1,2,2,1,2)"},
		}
		for _, tt := range malformed {
			t.Run(tt.name, func(t *testing.T) {
				if r, ok := ParseSourceString(tt.in); ok {
					t.Errorf("ParseSourceString(%q) = %+v, want no region", tt.in, r)
				}
			})
		}
	})
}
