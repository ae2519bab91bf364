package extraction

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// IDs of the analyzers the review pipeline provisions and uses.
const (
	ClassifierID             = "classifier_idp"
	AnalyzerInvoicesID       = "analyzer_invoices"
	AnalyzerBankStatementsID = "analyzer_bank_statements"
	AnalyzerLoanID           = "analyzer_loan"
)

// completionModel is the generative model the templates bind to.
const completionModel = "gpt-4.1-mini"

//go:embed template_schema.json
var templateSchema []byte

// InvoiceTemplate extracts vendor, line items, and billing identifiers
// from invoices.
func InvoiceTemplate() map[string]any {
	return map[string]any{
		"baseAnalyzerId": "prebuilt-document",
		"description":    "Invoice analyzer that extracts vendor and line items",
		"config": map[string]any{
			"returnDetails":                    true,
			"enableOcr":                        true,
			"enableLayout":                     true,
			"estimateFieldSourceAndConfidence": true,
		},
		"fieldSchema": map[string]any{
			"name": "InvoiceFields",
			"fields": map[string]any{
				"VendorName": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Name of the vendor or supplier, typically in the header.",
				},
				"Items": map[string]any{
					"type":        "array",
					"method":      "generate",
					"description": "List of items or services on the invoice.",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"Description": map[string]any{"type": "string", "description": "Item description"},
							"Amount":      map[string]any{"type": "number", "description": "Line total amount"},
						},
					},
				},
				"InvoiceNumber": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Invoice identifier (e.g., INV-100).",
				},
				"InvoiceDate": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Invoice issue date.",
				},
				"DueDate": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Invoice due date.",
				},
				"CustomerName": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Customer name (top-right block).",
				},
				"ServicePeriod": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Service period range (e.g., 10/14/2019 to 11/14/2019).",
				},
				"CustomerId": map[string]any{
					"type":        "string",
					"method":      "extract",
					"description": "Customer identifier (e.g., CID-12345).",
				},
			},
		},
		"models": map[string]any{"completion": completionModel},
		"tags":   map[string]any{"doc_type": "Invoices", "demo": "invoice"},
	}
}

// BankStatementTemplate extracts account and balance details from bank
// statements.
func BankStatementTemplate() map[string]any {
	return map[string]any{
		"baseAnalyzerId": "prebuilt-document",
		"description":    "Bank statement analyzer that extracts account and balance details",
		"config": map[string]any{
			"returnDetails":                    true,
			"enableOcr":                        true,
			"enableLayout":                     true,
			"estimateFieldSourceAndConfidence": true,
		},
		"fieldSchema": map[string]any{
			"name": "BankStatementFields",
			"fields": map[string]any{
				"BankName": map[string]any{
					"type":        "string",
					"method":      "generate",
					"description": "Name of the bank issuing the statement.",
				},
				"AccountHolder": map[string]any{
					"type":        "string",
					"method":      "generate",
					"description": "Account holder name.",
				},
				"AccountNumber": map[string]any{
					"type":        "string",
					"method":      "generate",
					"description": "Account number shown on the statement.",
				},
				"StatementStartDate": map[string]any{
					"type":        "date",
					"method":      "generate",
					"description": "Statement period start date.",
				},
				"StatementEndDate": map[string]any{
					"type":        "date",
					"method":      "generate",
					"description": "Statement period end date.",
				},
				"BeginningBalance": map[string]any{
					"type":        "number",
					"method":      "generate",
					"description": "Opening balance for the period.",
				},
				"EndingBalance": map[string]any{
					"type":        "number",
					"method":      "generate",
					"description": "Closing balance for the period.",
				},
				"TotalDeposits": map[string]any{
					"type":        "number",
					"method":      "generate",
					"description": "Sum of deposits in the statement period.",
				},
				"TotalWithdrawals": map[string]any{
					"type":        "number",
					"method":      "generate",
					"description": "Sum of withdrawals in the statement period.",
				},
			},
		},
		"models": map[string]any{"completion": completionModel},
		"tags":   map[string]any{"doc_type": "Bank Statements", "demo": "bank-statement"},
	}
}

// LoanTemplate extracts key information from loan application forms.
func LoanTemplate() map[string]any {
	return map[string]any{
		"baseAnalyzerId": "prebuilt-document",
		"description":    "Loan application analyzer - extracts key information",
		"config": map[string]any{
			"returnDetails":                    true,
			"enableLayout":                     true,
			"enableFormula":                    false,
			"estimateFieldSourceAndConfidence": true,
		},
		"fieldSchema": map[string]any{
			"fields": map[string]any{
				"ApplicationDate": map[string]any{
					"type":        "date",
					"method":      "generate",
					"description": "Date when the loan application was submitted.",
				},
				"ApplicantName": map[string]any{
					"type":        "string",
					"method":      "generate",
					"description": "Full name of the loan applicant or company.",
				},
				"LoanAmountRequested": map[string]any{
					"type":        "number",
					"method":      "generate",
					"description": "Total loan amount requested by the applicant.",
				},
				"LoanPurpose": map[string]any{
					"type":        "string",
					"method":      "generate",
					"description": "Stated purpose or reason for the loan.",
				},
				"CreditScore": map[string]any{
					"type":        "number",
					"method":      "generate",
					"description": "Credit score of the applicant, if available.",
				},
				"Summary": map[string]any{
					"type":        "string",
					"method":      "generate",
					"description": "Brief summary overview of the loan application details.",
				},
			},
		},
		"models": map[string]any{"completion": completionModel},
		"tags":   map[string]any{"doc_type": "Loan Application Form", "demo": "loan-application"},
	}
}

// ClassifierTemplate routes documents to one of the three content
// categories the default analyzer map covers.
func ClassifierTemplate() map[string]any {
	return map[string]any{
		"baseAnalyzerId": "prebuilt-document",
		"description":    "Classifier for Invoices, Bank Statements, and Loan Application Forms",
		"config": map[string]any{
			"returnDetails": true,
			"enableSegment": true,
			"contentCategories": map[string]any{
				"Invoices": map[string]any{
					"description": "Invoices and billing documents.",
				},
				"Bank Statements": map[string]any{
					"description": "Bank statements and account activity summaries.",
				},
				"Loan Application Form": map[string]any{
					"description": "Loan or application forms and related submissions.",
				},
			},
		},
		"models": map[string]any{"completion": completionModel},
		"tags":   map[string]any{"demo_type": "idp-classifier"},
	}
}

// Templates returns every provisionable template keyed by analyzer ID.
func Templates() map[string]map[string]any {
	return map[string]map[string]any{
		AnalyzerInvoicesID:       InvoiceTemplate(),
		AnalyzerBankStatementsID: BankStatementTemplate(),
		AnalyzerLoanID:           LoanTemplate(),
		ClassifierID:             ClassifierTemplate(),
	}
}

// ValidateTemplate checks an analyzer template against the embedded
// template schema before upload, catching malformed templates locally
// instead of as opaque service rejections.
func ValidateTemplate(template map[string]any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("template.json", bytes.NewReader(templateSchema)); err != nil {
		return fmt.Errorf("failed to load template schema: %w", err)
	}
	schema, err := compiler.Compile("template.json")
	if err != nil {
		return fmt.Errorf("failed to compile template schema: %w", err)
	}

	// Round-trip so the validator sees plain decoded JSON values.
	raw, err := json.Marshal(template)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode template for validation: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("template does not match schema: %w", err)
	}
	return nil
}
