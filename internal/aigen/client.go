// Package aigen talks to an external text-generation endpoint that can
// write richer appeal letters than the built-in templates. The capability
// is optional: when it is not configured, or the call fails, callers fall
// back to the template draft. Absence is a recoverable condition.
package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"safet-backend/internal/claims"
)

// All generator failures are returned as values so the core stays free
// of panics and of hard dependencies on the upstream service.
var (
	// ErrUnavailable means no generation endpoint is configured.
	ErrUnavailable = errors.New("draft generator is not configured")

	// ErrMissingCredential means an endpoint is configured but no API key was provided.
	ErrMissingCredential = errors.New("draft generator API key is missing")
)

// CallError reports an upstream failure with its message preserved.
type CallError struct {
	StatusCode int // 0 for transport-level failures
	Message    string
}

func (e *CallError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("draft generator returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("draft generator call failed: %s", e.Message)
}

// Generator produces an appeal letter for a disputed return.
// Implementations must not require network access to construct.
type Generator interface {
	GenerateAppeal(ctx context.Context, reason, orderID string) (string, error)
}

// New picks the right Generator variant for the given configuration:
// an HTTP client when an endpoint is set, the Unavailable stub otherwise.
func New(endpoint, apiKey string, timeout time.Duration) Generator {
	if endpoint == "" {
		return Unavailable{}
	}
	return NewHTTPGenerator(endpoint, apiKey, timeout)
}

// ── Unavailable variant ──────────────────────────────────────────

// Unavailable is the Generator used when no endpoint is configured.
type Unavailable struct{}

// GenerateAppeal always reports the capability as missing.
func (Unavailable) GenerateAppeal(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

// ── HTTP variant ─────────────────────────────────────────────────

// HTTPGenerator calls a text-generation endpoint over HTTP.
type HTTPGenerator struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPGenerator creates a client for the given endpoint.
func NewHTTPGenerator(endpoint, apiKey string, timeout time.Duration) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPGenerator{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateAppeal asks the upstream service for an appeal letter.
// Returns ErrMissingCredential without making a request when no API key
// is set, and a *CallError for any upstream or transport failure.
func (g *HTTPGenerator) GenerateAppeal(ctx context.Context, reason, orderID string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}

	payload, err := json.Marshal(generateRequest{Prompt: buildPrompt(reason, orderID)})
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &CallError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &CallError{Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &CallError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &CallError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}
	if out.Text == "" {
		return "", &CallError{StatusCode: resp.StatusCode, Message: "empty generation result"}
	}
	return out.Text, nil
}

// buildPrompt describes the dispute to the generator. The template
// draft carries the factual skeleton; the generator is asked to expand
// it into a full letter.
func buildPrompt(reason, orderID string) string {
	return fmt.Sprintf(
		"Write a professional marketplace SAFE-T appeal letter for order %s. "+
			"Dispute reason code: %s. Base it on the following summary and keep "+
			"all factual statements:\n\n%s",
		orderID, reason, claims.AppealDraft(reason, orderID),
	)
}
