package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"spendtrack/internal/config"

	"github.com/avast/retry-go"
)

var (
	ErrDisabled      = errors.New("ai client is disabled")
	ErrEmptyResponse = errors.New("ai response contained no text")
)

// ClientInterface is the surface the services depend on. A nil-safe
// disabled client satisfies it when no API key is configured.
type ClientInterface interface {
	Enabled() bool
	SuggestCategory(ctx context.Context, description string, existing []string) (string, error)
	GenerateInsight(ctx context.Context, summary InsightSummary) (string, error)
}

// InsightSummary carries the aggregated numbers the insight prompt is
// built from. Totals are pre-formatted decimal strings. PreviousTotal
// is nil when there is no previous window to compare against
// (all-time ranges).
type InsightSummary struct {
	PeriodLabel   string
	Total         string
	PreviousTotal *string
	Count         int
	ByCategory    []CategoryLine
}

type CategoryLine struct {
	Name  string
	Total string
}

// Client talks to the Gemini generateContent REST endpoint.
type Client struct {
	config     config.AIConfig
	httpClient *http.Client
	breaker    *CircuitBreaker
	logger     *slog.Logger
}

func NewClient(cfg config.AIConfig, logger *slog.Logger) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		logger:  logger,
	}
}

// Enabled reports whether the client has credentials to call out with.
func (c *Client) Enabled() bool {
	return c != nil && c.config.APIKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// SuggestCategory asks the model to pick or invent a category name for
// an expense description. Returns the bare name.
func (c *Client) SuggestCategory(ctx context.Context, description string, existing []string) (string, error) {
	text, err := c.generate(ctx, buildCategoryPrompt(description, existing))
	if err != nil {
		return "", err
	}

	var parsed struct {
		Category string `json:"category"`
	}
	if extractJSON(text, &parsed) && parsed.Category != "" {
		return strings.TrimSpace(parsed.Category), nil
	}

	// Some model replies skip the JSON wrapper entirely. A short bare
	// line is still usable as a category name.
	line := strings.TrimSpace(text)
	if line != "" && !strings.ContainsAny(line, "{}\n") && len(line) <= 60 {
		return line, nil
	}

	return "", fmt.Errorf("unusable category suggestion: %q", text)
}

// GenerateInsight asks the model for a short narrative about the
// period's spending.
func (c *Client) GenerateInsight(ctx context.Context, summary InsightSummary) (string, error) {
	text, err := c.generate(ctx, buildInsightPrompt(summary))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	if !c.breaker.Allow() {
		return "", ErrCircuitOpen
	}

	attempts := c.config.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var text string
	err := retry.Do(
		func() error {
			var err error
			text, err = c.doGenerate(ctx, prompt)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
	)
	if err != nil {
		c.breaker.RecordFailure()
		c.logger.Warn("ai generate failed", "error", err)
		return "", err
	}

	c.breaker.RecordSuccess()
	return text, nil
}

func (c *Client) doGenerate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.Model, c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
