package fields

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

func TestExtract_FieldsMapLocation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "result contents fields",
			json: `{"result":{"contents":[{"kind":"document","fields":{"Foo":{"valueString":"bar"}}}]}}`,
		},
		{
			name: "top level contents",
			json: `{"contents":[{"fields":{"Foo":{"valueString":"bar"}}}]}`,
		},
		{
			name: "extractedFields key",
			json: `{"result":{"contents":[{"extractedFields":{"Foo":{"valueString":"bar"}}}]}}`,
		},
		{
			name: "output key",
			json: `{"result":{"contents":[{"output":{"Foo":{"valueString":"bar"}}}]}}`,
		},
		{
			name: "data key",
			json: `{"result":{"contents":[{"data":{"Foo":{"valueString":"bar"}}}]}}`,
		},
		{
			name: "nested extraction object",
			json: `{"result":{"contents":[{"extraction":{"fields":{"Foo":{"valueString":"bar"}}}}]}}`,
		},
		{
			name: "nested result object",
			json: `{"result":{"contents":[{"result":{"fields":{"Foo":{"valueString":"bar"}}}}]}}`,
		},
		{
			name: "recursive fallback",
			json: `{"deeply":{"buried":{"Foo":{"valueString":"bar"}}}}`,
		},
		{
			name: "skips non document content",
			json: `{"result":{"contents":[{"kind":"audioVisual"},{"kind":"document","fields":{"Foo":{"valueString":"bar"}}}]}}`,
		},
		{
			name: "text kind counts as document like",
			json: `{"result":{"contents":[{"kind":"text","fields":{"Foo":{"valueString":"bar"}}}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(gjson.Parse(tt.json))
			if len(got) != 1 {
				t.Fatalf("Extract() returned %d fields, want 1", len(got))
			}
			if got[0].Name != "Foo" {
				t.Errorf("Name = %q, want %q", got[0].Name, "Foo")
			}
			if got[0].Value != "bar" {
				t.Errorf("Value = %v, want %q", got[0].Value, "bar")
			}
			if len(got[0].Regions) != 0 {
				t.Errorf("Regions = %v, want empty", got[0].Regions)
			}
		})
	}
}

func TestExtract_NoFieldsMap(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty object", `{}`},
		{"no recognizable shape", `{"result":{"status":"Succeeded"}}`},
		{"fields map with scalar values", `{"result":{"contents":[{"fields":{"Foo":"bar"}}]}}`},
		{"field objects without markers", `{"a":{"b":{"x":1}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(gjson.Parse(tt.json)); len(got) != 0 {
				t.Errorf("Extract() = %v, want empty", got)
			}
		})
	}
}

func TestExtract_ValuePriority(t *testing.T) {
	t.Run("valueString beats value", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{"F":{"valueString":"typed","value":"generic"}}}]}}`)
		got := Extract(result)
		if len(got) != 1 {
			t.Fatalf("got %d fields, want 1", len(got))
		}
		if got[0].Value != "typed" {
			t.Errorf("Value = %v, want %q", got[0].Value, "typed")
		}
	})

	t.Run("typed keys in priority order", func(t *testing.T) {
		tests := []struct {
			name string
			obj  string
			want any
		}{
			{"valueNumber", `{"valueNumber":12.5,"value":"x"}`, 12.5},
			{"valueBoolean", `{"valueBoolean":true,"value":"x"}`, true},
			{"valueDate", `{"valueDate":"2024-01-31","value":"x"}`, "2024-01-31"},
			{"valueArray", `{"valueArray":[1,2],"value":"x"}`, []any{1.0, 2.0}},
			{"valueObject", `{"valueObject":{"a":1},"value":"x"}`, map[string]any{"a": 1.0}},
			{"generic value", `{"value":42}`, 42.0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := pickValue(gjson.Parse(tt.obj))
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("pickValue() = %#v, want %#v", got, tt.want)
				}
			})
		}
	})

	t.Run("present null wins over later keys", func(t *testing.T) {
		got := pickValue(gjson.Parse(`{"valueString":null,"value":"fallback"}`))
		if got != nil {
			t.Errorf("pickValue() = %v, want nil", got)
		}
	})

	t.Run("no value keys yields nil", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{"F":{"source":"D(1,0,0,1,0,1,1,0,1)"}}}]}}`)
		got := Extract(result)
		if len(got) != 1 {
			t.Fatalf("got %d fields, want 1", len(got))
		}
		if got[0].Value != nil {
			t.Errorf("Value = %v, want nil", got[0].Value)
		}
	})
}

func TestExtract_FieldOrderAndSkips(t *testing.T) {
	result := gjson.Parse(`{"result":{"contents":[{"fields":{
		"B":{"valueString":"2"},
		"A":{"valueString":"1"},
		"skipped":"not an object",
		"C":{"valueNumber":3}
	}}]}}`)
	got := Extract(result)
	if len(got) != 3 {
		t.Fatalf("got %d fields, want 3", len(got))
	}
	wantOrder := []string{"B", "A", "C"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("field[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestExtract_RegionsFromSourceString(t *testing.T) {
	result := gjson.Parse(`{"result":{"contents":[{"fields":{
		"Total":{"valueNumber":99.5,"source":"D(2,10,20,30,20,30,40,10,40)"}
	}}]}}`)
	got := Extract(result)
	if len(got) != 1 {
		t.Fatalf("got %d fields, want 1", len(got))
	}
	regions := got[0].Regions
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].PageNumber != 2 {
		t.Errorf("PageNumber = %d, want 2", regions[0].PageNumber)
	}
	want := BBox{X0: 10, Y0: 20, X1: 30, Y1: 40}
	if regions[0].BBox != want {
		t.Errorf("BBox = %+v, want %+v", regions[0].BBox, want)
	}
}

func TestExtract_RegionDedup(t *testing.T) {
	t.Run("repeated source string collapses", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{
			"F":{
				"valueString":"v",
				"sources":["D(1,0,0,5,0,5,5,0,5)","D(2,0,0,5,0,5,5,0,5)","D(1,0,0,5,0,5,5,0,5)"]
			}
		}}]}}`)
		got := Extract(result)
		if len(got) != 1 {
			t.Fatalf("got %d fields, want 1", len(got))
		}
		regions := got[0].Regions
		if len(regions) != 2 {
			t.Fatalf("got %d regions, want 2 after dedup: %+v", len(regions), regions)
		}
		if regions[0].PageNumber != 1 || regions[1].PageNumber != 2 {
			t.Errorf("region pages = %d,%d, want 1,2", regions[0].PageNumber, regions[1].PageNumber)
		}
	})

	t.Run("same region from two evidence slots collapses", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{
			"Items":{
				"valueArray":[
					{"valueObject":{"A":{"valueString":"x","source":"D(1,0,0,5,0,5,5,0,5)"}}},
					{"valueObject":{"B":{"valueString":"y","evidence":"D(1,0,0,5,0,5,5,0,5)"}}}
				]
			}
		}}]}}`)
		got := Extract(result)
		if len(got) != 1 {
			t.Fatalf("got %d fields, want 1", len(got))
		}
		if len(got[0].Regions) != 1 {
			t.Errorf("got %d regions, want 1 after dedup: %+v", len(got[0].Regions), got[0].Regions)
		}
	})
}

func TestExtract_DeepEvidenceFallback(t *testing.T) {
	t.Run("nested evidence found when shallow absent", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{
			"Items":{
				"valueArray":[
					{"valueObject":{"Description":{"valueString":"Widget","source":"D(1,0,0,2,0,2,2,0,2)"}}}
				]
			}
		}}]}}`)
		got := Extract(result)
		if len(got) != 1 {
			t.Fatalf("got %d fields, want 1", len(got))
		}
		if len(got[0].Regions) != 1 {
			t.Fatalf("got %d regions, want 1 from deep search", len(got[0].Regions))
		}
	})

	t.Run("shallow evidence preferred when it resolves", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{
			"F":{
				"valueString":"v",
				"source":"D(1,0,0,1,0,1,1,0,1)",
				"nested":{"source":"D(9,0,0,1,0,1,1,0,1)"}
			}
		}}]}}`)
		got := Extract(result)
		if len(got) != 1 {
			t.Fatalf("got %d fields, want 1", len(got))
		}
		regions := got[0].Regions
		if len(regions) != 1 {
			t.Fatalf("got %d regions, want 1 (deep search must not run)", len(regions))
		}
		if regions[0].PageNumber != 1 {
			t.Errorf("PageNumber = %d, want 1", regions[0].PageNumber)
		}
	})

	t.Run("unparseable shallow falls back to deep", func(t *testing.T) {
		result := gjson.Parse(`{"result":{"contents":[{"fields":{
			"F":{
				"valueString":"v",
				"source":"not a region",
				"nested":{"evidence":"D(3,0,0,1,0,1,1,0,1)"}
			}
		}}]}}`)
		got := Extract(result)
		if len(got[0].Regions) != 1 || got[0].Regions[0].PageNumber != 3 {
			t.Errorf("Regions = %+v, want one region on page 3", got[0].Regions)
		}
	})
}

func TestExtract_Idempotent(t *testing.T) {
	raw := `{"result":{"contents":[{"fields":{
		"A":{"valueString":"x","source":"D(1,0,0,2,0,2,2,0,2)"},
		"B":{"valueNumber":7}
	}}]}}`
	result := gjson.Parse(raw)
	first := Extract(result)
	second := Extract(result)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestRegionsFromSource(t *testing.T) {
	t.Run("bounding regions list", func(t *testing.T) {
		src := gjson.Parse(`{"boundingRegions":[
			{"pageNumber":1,"polygon":[0,0,4,0,4,4,0,4]},
			{"pageNumber":2,"boundingBox":[1,2,3,4]}
		]}`)
		got := regionsFromSource(src)
		if len(got) != 2 {
			t.Fatalf("got %d regions, want 2", len(got))
		}
		if got[0].PageNumber != 1 || len(got[0].Polygon) != 8 {
			t.Errorf("region[0] = %+v, want polygon region on page 1", got[0])
		}
		if got[1].PageNumber != 2 || got[1].Polygon != nil {
			t.Errorf("region[1] = %+v, want box region on page 2", got[1])
		}
		if (got[1].BBox != BBox{X0: 1, Y0: 2, X1: 3, Y1: 4}) {
			t.Errorf("region[1].BBox = %+v", got[1].BBox)
		}
	})

	t.Run("alternate key names", func(t *testing.T) {
		tests := []struct {
			name string
			json string
		}{
			{"page and points", `{"page":3,"points":[0,0,1,0,1,1,0,1]}`},
			{"pageIndex and polygon", `{"pageIndex":3,"polygon":[0,0,1,0,1,1,0,1]}`},
			{"regions list key", `{"regions":[{"page":3,"points":[0,0,1,0,1,1,0,1]}]}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := regionsFromSource(gjson.Parse(tt.json))
				if len(got) != 1 {
					t.Fatalf("got %d regions, want 1", len(got))
				}
				if got[0].PageNumber != 3 {
					t.Errorf("PageNumber = %d, want 3", got[0].PageNumber)
				}
			})
		}
	})

	t.Run("list entries inherit outer page", func(t *testing.T) {
		src := gjson.Parse(`{"pageNumber":5,"boundingRegions":[{"polygon":[0,0,1,0,1,1,0,1]}]}`)
		got := regionsFromSource(src)
		if len(got) != 1 || got[0].PageNumber != 5 {
			t.Errorf("got %+v, want one region on page 5", got)
		}
	})

	t.Run("polygon preferred over box", func(t *testing.T) {
		src := gjson.Parse(`{"pageNumber":1,"polygon":[0,0,8,0,8,8,0,8],"boundingBox":[1,1,2,2]}`)
		got := regionsFromSource(src)
		if len(got) != 1 {
			t.Fatalf("got %d regions, want 1", len(got))
		}
		if (got[0].BBox != BBox{X0: 0, Y0: 0, X1: 8, Y1: 8}) {
			t.Errorf("BBox = %+v, polygon should win over box", got[0].BBox)
		}
	})

	t.Run("no page means no region", func(t *testing.T) {
		tests := []struct {
			name string
			json string
		}{
			{"bare box", `{"boundingBox":[1,2,3,4]}`},
			{"bare polygon", `{"polygon":[0,0,1,0,1,1,0,1]}`},
			{"region list without pages", `{"boundingRegions":[{"boundingBox":[1,2,3,4]}]}`},
			{"zero page", `{"pageNumber":0,"boundingBox":[1,2,3,4]}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := regionsFromSource(gjson.Parse(tt.json)); len(got) != 0 {
					t.Errorf("got %+v, want none", got)
				}
			})
		}
	})

	t.Run("short polygon falls back to box", func(t *testing.T) {
		src := gjson.Parse(`{"pageNumber":1,"polygon":[0,0,1,1],"boundingBox":[1,2,3,4]}`)
		got := regionsFromSource(src)
		if len(got) != 1 {
			t.Fatalf("got %d regions, want 1", len(got))
		}
		if (got[0].BBox != BBox{X0: 1, Y0: 2, X1: 3, Y1: 4}) {
			t.Errorf("BBox = %+v, want the boundingBox values", got[0].BBox)
		}
	})

	t.Run("box must have exactly four values", func(t *testing.T) {
		src := gjson.Parse(`{"pageNumber":1,"boundingBox":[1,2,3]}`)
		if got := regionsFromSource(src); len(got) != 0 {
			t.Errorf("got %+v, want none", got)
		}
	})

	t.Run("string page numbers coerce", func(t *testing.T) {
		src := gjson.Parse(`{"pageNumber":"4","boundingBox":[1,2,3,4]}`)
		got := regionsFromSource(src)
		if len(got) != 1 || got[0].PageNumber != 4 {
			t.Errorf("got %+v, want one region on page 4", got)
		}
	})
}

func TestGatherEvidence(t *testing.T) {
	node := gjson.Parse(`{
		"source":"first",
		"inner":{"sources":["second"],"deeper":[{"evidence":"third"}]}
	}`)
	got := gatherEvidence(node)
	if len(got) != 3 {
		t.Fatalf("gathered %d items, want 3", len(got))
	}
	wantOrder := []string{`"first"`, `["second"]`, `"third"`}
	for i, want := range wantOrder {
		if got[i].Raw != want {
			t.Errorf("item[%d].Raw = %s, want %s", i, got[i].Raw, want)
		}
	}
}

func TestResolveRegions_NestedLists(t *testing.T) {
	items := []gjson.Result{gjson.Parse(`[["D(1,0,0,1,0,1,1,0,1)"],{"pageNumber":2,"boundingBox":[0,0,1,1]}]`)}
	got := resolveRegions(items)
	if len(got) != 2 {
		t.Fatalf("got %d regions, want 2", len(got))
	}
	if got[0].PageNumber != 1 || got[1].PageNumber != 2 {
		t.Errorf("pages = %d,%d, want 1,2", got[0].PageNumber, got[1].PageNumber)
	}
}
