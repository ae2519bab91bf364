// Package extraction is the HTTP client for the content-extraction
// service's analyzer API: long-running document analyses, analyzer
// lifecycle, and provisioning of the review templates.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	// DefaultAPIVersion is the service API version the analyzer templates
	// target.
	DefaultAPIVersion = "2025-11-01"

	// DefaultUserAgent identifies this client to the service.
	DefaultUserAgent = "docket-review"
)

// TokenProvider supplies a bearer token per request. It is consulted only
// when no subscription key is configured.
type TokenProvider func(ctx context.Context) (string, error)

// Config holds client construction parameters.
type Config struct {
	Endpoint      string // service base URL, required
	APIVersion    string
	Key           string // subscription key; wins over TokenProvider when both are set
	TokenProvider TokenProvider
	UserAgent     string
	Timeout       time.Duration // per-request timeout
	PollInterval  time.Duration // delay between result polls
	PollAttempts  uint          // maximum result polls per operation
}

// Client talks to the extraction service. All methods are safe for
// concurrent use.
type Client struct {
	endpoint      string
	apiVersion    string
	key           string
	tokenProvider TokenProvider
	userAgent     string
	pollInterval  time.Duration
	pollAttempts  uint
	client        *http.Client
}

// New creates an extraction service client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("extraction service endpoint is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.PollAttempts == 0 {
		cfg.PollAttempts = 120
	}

	return &Client{
		endpoint:      strings.TrimRight(cfg.Endpoint, "/"),
		apiVersion:    cfg.APIVersion,
		key:           cfg.Key,
		tokenProvider: cfg.TokenProvider,
		userAgent:     cfg.UserAgent,
		pollInterval:  cfg.PollInterval,
		pollAttempts:  cfg.PollAttempts,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Operation is a handle to an in-flight long-running analysis.
type Operation struct {
	Location string // polling URL from the Operation-Location header
}

// StatusError is the error returned for non-2xx service responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("extraction service error (status %d): %s", e.StatusCode, e.Message)
}

// BeginAnalyze submits a document for analysis and returns the operation
// handle without waiting for completion.
func (c *Client) BeginAnalyze(ctx context.Context, analyzerID string, doc []byte) (*Operation, error) {
	u := fmt.Sprintf("%s/analyzers/%s:analyze?api-version=%s", c.endpoint, analyzerID, c.apiVersion)
	req, err := c.newRequest(ctx, http.MethodPost, u, bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	_, resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	loc := resp.Header.Get("Operation-Location")
	if loc == "" {
		return nil, fmt.Errorf("no Operation-Location header in analyze response")
	}
	return &Operation{Location: loc}, nil
}

// PollResult polls the operation until it reaches a terminal status and
// returns the parsed result document. A failed analysis is an error; it is
// never retried here.
func (c *Client) PollResult(ctx context.Context, op *Operation) (gjson.Result, error) {
	var result gjson.Result
	err := retry.Do(
		func() error {
			req, err := c.newRequest(ctx, http.MethodGet, op.Location, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			body, _, err := c.doRequest(req)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			parsed := gjson.ParseBytes(body)
			switch strings.ToLower(parsed.Get("status").String()) {
			case "succeeded":
				result = parsed
				return nil
			case "failed":
				msg := parsed.Get("error.message").String()
				if msg == "" {
					msg = "no failure detail provided"
				}
				return retry.Unrecoverable(fmt.Errorf("analysis failed: %s", msg))
			default:
				return fmt.Errorf("operation still running")
			}
		},
		retry.Context(ctx),
		retry.Attempts(c.pollAttempts),
		retry.Delay(c.pollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return gjson.Result{}, err
	}
	return result, nil
}

// Analyze submits a document and waits for the terminal result.
func (c *Client) Analyze(ctx context.Context, analyzerID string, doc []byte) (gjson.Result, error) {
	op, err := c.BeginAnalyze(ctx, analyzerID, doc)
	if err != nil {
		return gjson.Result{}, err
	}
	return c.PollResult(ctx, op)
}

// CreateAnalyzer registers an analyzer template under the given ID and
// waits for the creation to complete.
func (c *Client) CreateAnalyzer(ctx context.Context, analyzerID string, template map[string]any) error {
	payload, err := json.Marshal(template)
	if err != nil {
		return fmt.Errorf("failed to marshal analyzer template: %w", err)
	}

	u := fmt.Sprintf("%s/analyzers/%s?api-version=%s", c.endpoint, analyzerID, c.apiVersion)
	req, err := c.newRequest(ctx, http.MethodPut, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, resp, err := c.doRequest(req)
	if err != nil {
		return err
	}

	// Creation completes synchronously when no operation handle comes back.
	loc := resp.Header.Get("Operation-Location")
	if loc == "" {
		return nil
	}
	if _, err := c.PollResult(ctx, &Operation{Location: loc}); err != nil {
		return fmt.Errorf("analyzer creation did not complete: %w", err)
	}
	return nil
}

// GetAnalyzer fetches an analyzer's descriptor.
func (c *Client) GetAnalyzer(ctx context.Context, analyzerID string) (gjson.Result, error) {
	u := fmt.Sprintf("%s/analyzers/%s?api-version=%s", c.endpoint, analyzerID, c.apiVersion)
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	body, _, err := c.doRequest(req)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

// DeleteAnalyzer removes an analyzer.
func (c *Client) DeleteAnalyzer(ctx context.Context, analyzerID string) error {
	u := fmt.Sprintf("%s/analyzers/%s?api-version=%s", c.endpoint, analyzerID, c.apiVersion)
	req, err := c.newRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	_, _, err = c.doRequest(req)
	return err
}

// ListAnalyzers fetches every analyzer registered on the service. The
// descriptors sit under the response's "value" key.
func (c *Client) ListAnalyzers(ctx context.Context) (gjson.Result, error) {
	u := fmt.Sprintf("%s/analyzers?api-version=%s", c.endpoint, c.apiVersion)
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	body, _, err := c.doRequest(req)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

// newRequest builds a request carrying auth and service headers.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	switch {
	case c.key != "":
		req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	case c.tokenProvider != nil:
		token, err := c.tokenProvider(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	req.Header.Set("x-ms-useragent", c.userAgent)
	req.Header.Set("x-ms-client-request-id", uuid.New().String())
	return req, nil
}

// doRequest executes the request, reads the body, and shapes non-2xx
// responses into StatusError carrying the service's message.
func (c *Client) doRequest(req *http.Request) ([]byte, *http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &StatusError{StatusCode: resp.StatusCode, Message: serviceMessage(body)}
	}
	return body, resp, nil
}

// serviceMessage extracts the service's structured error message, falling
// back to the raw body.
func serviceMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return string(body)
}
