// Package review runs the document review pipeline (classify, route,
// extract, normalize) and memoizes the active session.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/docketlabs/docket/internal/fields"
)

// Analyzer submits a document to a remote analyzer and returns the terminal
// result document. *extraction.Client satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, analyzerID string, doc []byte) (gjson.Result, error)
}

// Pipeline failure modes callers branch on for status mapping.
var (
	ErrNoLabel  = errors.New("could not determine document type from classifier output")
	ErrNoFields = errors.New("no fields found in analyzer output")
)

// UnmappedLabelError reports a classifier label with no configured analyzer.
type UnmappedLabelError struct {
	Label string
}

func (e *UnmappedLabelError) Error() string {
	return fmt.Sprintf("no analyzer mapped for document label %q", e.Label)
}

// Analysis is the outcome of one pipeline run.
type Analysis struct {
	Label          string
	Confidence     *float64
	AnalyzerID     string
	Result         gjson.Result // raw analyzer result document
	Classification gjson.Result // raw classifier result document, zero offline
	Fields         []fields.Field
	Usage          fields.UsageSummary
}

// Runner executes the sequential review pipeline against a classifier and
// a label-to-analyzer routing map.
type Runner struct {
	analyzer     Analyzer
	classifierID string
	analyzers    map[string]string
	logger       *slog.Logger
}

// NewRunner creates a pipeline runner. analyzers maps classifier labels to
// analyzer IDs. Labels match case-insensitively since config loaders may
// lowercase map keys.
func NewRunner(analyzer Analyzer, classifierID string, analyzers map[string]string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	routes := make(map[string]string, len(analyzers))
	for label, id := range analyzers {
		routes[strings.ToLower(label)] = id
	}
	return &Runner{
		analyzer:     analyzer,
		classifierID: classifierID,
		analyzers:    routes,
		logger:       logger,
	}
}

// Run classifies the document, routes the label to an analyzer, extracts
// fields, and normalizes the output. Every stage failure is a hard error;
// nothing is retried here.
func (r *Runner) Run(ctx context.Context, pdf []byte) (*Analysis, error) {
	r.logger.Info("classifying document", "classifier_id", r.classifierID, "bytes", len(pdf))
	classification, err := r.analyzer.Analyze(ctx, r.classifierID, pdf)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	label, conf := fields.ParseClassifierOutput(classification)
	if label == "" {
		return nil, ErrNoLabel
	}

	analyzerID := r.analyzers[strings.ToLower(label)]
	if analyzerID == "" {
		return nil, &UnmappedLabelError{Label: label}
	}

	r.logger.Info("extracting fields", "label", label, "analyzer_id", analyzerID)
	result, err := r.analyzer.Analyze(ctx, analyzerID, pdf)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	extracted := fields.Extract(result)
	if len(extracted) == 0 {
		return nil, ErrNoFields
	}

	r.logger.Info("review ready", "label", label, "fields", len(extracted))
	return &Analysis{
		Label:          label,
		Confidence:     conf,
		AnalyzerID:     analyzerID,
		Result:         result,
		Classification: classification,
		Fields:         extracted,
		Usage:          fields.ExtractUsage(result),
	}, nil
}

// Offline builds an analysis from a saved result document without any
// remote calls. Label and analyzer are reported as "Offline" since the
// saved result carries no classification.
func Offline(result gjson.Result) (*Analysis, error) {
	extracted := fields.Extract(result)
	if len(extracted) == 0 {
		return nil, ErrNoFields
	}
	return &Analysis{
		Label:      "Offline",
		AnalyzerID: "Offline",
		Result:     result,
		Fields:     extracted,
		Usage:      fields.ExtractUsage(result),
	}, nil
}
