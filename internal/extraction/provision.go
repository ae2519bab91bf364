package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// ProvisionResult reports what Provision did for one analyzer.
type ProvisionResult struct {
	AnalyzerID string `json:"analyzer_id"`
	Created    bool   `json:"created"`            // false when it already existed
	Replaced   bool   `json:"replaced,omitempty"` // true when an existing analyzer was deleted first
}

// Provision registers the three analyzers and the classifier the review
// pipeline expects. It is safe to run repeatedly: analyzers that already
// exist are skipped. Templates are validated locally before any upload.
func Provision(ctx context.Context, client *Client, logger *slog.Logger) ([]ProvisionResult, error) {
	return provision(ctx, client, logger, false)
}

// Reprovision is Provision with replacement: analyzers that already exist
// are deleted and recreated from the current templates.
func Reprovision(ctx context.Context, client *Client, logger *slog.Logger) ([]ProvisionResult, error) {
	return provision(ctx, client, logger, true)
}

func provision(ctx context.Context, client *Client, logger *slog.Logger, replace bool) ([]ProvisionResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ids := []string{AnalyzerInvoicesID, AnalyzerBankStatementsID, AnalyzerLoanID, ClassifierID}
	templates := Templates()

	for _, id := range ids {
		if err := ValidateTemplate(templates[id]); err != nil {
			return nil, fmt.Errorf("invalid template %s: %w", id, err)
		}
	}

	results := make([]ProvisionResult, 0, len(ids))
	for _, id := range ids {
		exists, err := analyzerExists(ctx, client, id)
		if err != nil {
			return results, err
		}
		if exists && !replace {
			logger.Info("analyzer already exists", "analyzer_id", id)
			results = append(results, ProvisionResult{AnalyzerID: id})
			continue
		}
		if exists {
			logger.Info("deleting analyzer", "analyzer_id", id)
			if err := client.DeleteAnalyzer(ctx, id); err != nil {
				return results, fmt.Errorf("failed to delete analyzer %s: %w", id, err)
			}
		}

		logger.Info("creating analyzer", "analyzer_id", id)
		if err := client.CreateAnalyzer(ctx, id, templates[id]); err != nil {
			return results, fmt.Errorf("failed to create analyzer %s: %w", id, err)
		}
		logger.Info("analyzer created", "analyzer_id", id)
		results = append(results, ProvisionResult{AnalyzerID: id, Created: true, Replaced: exists})
	}
	return results, nil
}

// analyzerExists distinguishes "not found" from real failures.
func analyzerExists(ctx context.Context, client *Client, analyzerID string) (bool, error) {
	_, err := client.GetAnalyzer(ctx, analyzerID)
	if err == nil {
		return true, nil
	}
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("failed to check analyzer %s: %w", analyzerID, err)
}
