package extraction

import "testing"

func TestTemplatesValidate(t *testing.T) {
	for id, tpl := range Templates() {
		t.Run(id, func(t *testing.T) {
			if err := ValidateTemplate(tpl); err != nil {
				t.Errorf("template %s does not validate: %v", id, err)
			}
		})
	}
}

func TestTemplates(t *testing.T) {
	templates := Templates()
	want := []string{ClassifierID, AnalyzerInvoicesID, AnalyzerBankStatementsID, AnalyzerLoanID}
	if len(templates) != len(want) {
		t.Fatalf("got %d templates, want %d", len(templates), len(want))
	}
	for _, id := range want {
		tpl, ok := templates[id]
		if !ok {
			t.Errorf("missing template %s", id)
			continue
		}
		if tpl["baseAnalyzerId"] != "prebuilt-document" {
			t.Errorf("%s baseAnalyzerId = %v", id, tpl["baseAnalyzerId"])
		}
	}

	// The classifier routes to the three labels the default analyzer map
	// covers.
	cfg, ok := ClassifierTemplate()["config"].(map[string]any)
	if !ok {
		t.Fatal("classifier template has no config")
	}
	categories, ok := cfg["contentCategories"].(map[string]any)
	if !ok {
		t.Fatal("classifier template has no content categories")
	}
	for _, label := range []string{"Invoices", "Bank Statements", "Loan Application Form"} {
		if _, ok := categories[label]; !ok {
			t.Errorf("missing content category %q", label)
		}
	}
}

func TestValidateTemplate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		template map[string]any
	}{
		{
			name:     "missing base analyzer",
			template: map[string]any{"description": "x"},
		},
		{
			name: "bad field method",
			template: map[string]any{
				"baseAnalyzerId": "prebuilt-document",
				"fieldSchema": map[string]any{
					"fields": map[string]any{
						"F": map[string]any{"type": "string", "method": "hallucinate"},
					},
				},
			},
		},
		{
			name: "field schema without fields",
			template: map[string]any{
				"baseAnalyzerId": "prebuilt-document",
				"fieldSchema":    map[string]any{"name": "X"},
			},
		},
		{
			name: "empty fields map",
			template: map[string]any{
				"baseAnalyzerId": "prebuilt-document",
				"fieldSchema":    map[string]any{"fields": map[string]any{}},
			},
		},
		{
			name: "field without type",
			template: map[string]any{
				"baseAnalyzerId": "prebuilt-document",
				"fieldSchema": map[string]any{
					"fields": map[string]any{
						"F": map[string]any{"method": "extract"},
					},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateTemplate(tt.template); err == nil {
				t.Error("ValidateTemplate() succeeded, want error")
			}
		})
	}
}
